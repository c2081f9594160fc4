package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SAM_KEY", "sam-key")
	t.Setenv("WEBFLOW_SITE_ID", "site-1")
	t.Setenv("WEBFLOW_KEY", "wf-key")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, SchemaStore, cfg.SAMSchema)
	assert.Equal(t, "AUD", cfg.Currency)
	assert.Equal(t, 5, cfg.PublishRetryMax)
	assert.Equal(t, 5*time.Second, cfg.PublishRetryDelay)
	assert.Equal(t, "8080", cfg.APIPort)
}

func TestLoad_CatalogueSchemaWithLoginCredentials(t *testing.T) {
	t.Setenv("SAM_USERNAME", "gallery")
	t.Setenv("SAM_PASSWORD", "secret")
	t.Setenv("SAM_SCHEMA", "catalogue")
	t.Setenv("WEBFLOW_SITE_ID", "site-1")
	t.Setenv("WEBFLOW_KEY", "wf-key")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, SchemaCatalogue, cfg.SAMSchema)
	assert.Empty(t, cfg.SAMAPIKey)
}

func TestLoad_RejectsUnknownSchema(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SAM_SCHEMA", "graphql")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_RequiresSomeSAMCredential(t *testing.T) {
	t.Setenv("WEBFLOW_SITE_ID", "site-1")
	t.Setenv("WEBFLOW_KEY", "wf-key")
	t.Setenv("SAM_USERNAME", "gallery") // password missing

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_RequiresWebflowSettings(t *testing.T) {
	t.Setenv("SAM_KEY", "sam-key")
	t.Setenv("WEBFLOW_KEY", "wf-key")

	_, err := Load()
	assert.Error(t, err)
}
