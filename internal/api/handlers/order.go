package handlers

import (
	"context"
	"net/http"
	"strings"

	"artsync/internal/services/sam"
	"artsync/internal/services/webflow"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CustomerOrderService is the slice of the SAM API the order flow
// needs: customer creation followed by order creation.
type CustomerOrderService interface {
	CreateCustomer(ctx context.Context, customer sam.CustomerPayload) (string, error)
	CreateOrder(ctx context.Context, order sam.OrderPayload) (string, error)
}

// OrderHandler receives new-order notifications from the destination
// platform and mirrors them into SAM: first a customer, then an order
// referencing the new customer id. The handler is stateless and does
// not retry; a failed notification is reported back to the caller.
type OrderHandler struct {
	sam    CustomerOrderService
	logger *zap.Logger
}

func NewOrderHandler(samService CustomerOrderService, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		sam:    samService,
		logger: logger,
	}
}

// HandleNewOrder processes one new-order event.
func (h *OrderHandler) HandleNewOrder(c *gin.Context) {
	eventID := uuid.New().String()
	log := h.logger.With(zap.String("event_id", eventID))

	var event webflow.OrderEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order payload", "details": err.Error()})
		return
	}

	customer := buildCustomerPayload(event)

	customerID, err := h.sam.CreateCustomer(c.Request.Context(), customer)
	if err != nil {
		// Never create an order without its customer.
		log.Error("customer creation failed",
			zap.String("order_id", event.OrderID),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to create customer",
			"details": err.Error(),
		})
		return
	}

	order := buildOrderPayload(event, customerID)

	orderID, err := h.sam.CreateOrder(c.Request.Context(), order)
	if err != nil {
		log.Error("order creation failed",
			zap.String("order_id", event.OrderID),
			zap.String("customer_id", customerID),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to create order",
			"details": err.Error(),
		})
		return
	}

	log.Info("order mirrored",
		zap.String("customer_id", customerID),
		zap.String("sam_order_id", orderID),
		zap.String("webflow_order_id", event.OrderID),
	)
	c.JSON(http.StatusOK, gin.H{
		"message":    "order created",
		"customerId": customerID,
		"orderId":    orderID,
	})
}

func buildCustomerPayload(event webflow.OrderEvent) sam.CustomerPayload {
	first, last := splitName(event.CustomerInfo.FullName)

	addresses := []sam.CustomerAddress{
		toAddress(sam.AddressShipping, event.ShippingAddress),
	}
	// A billing address is only sent when it differs from shipping.
	if event.BillingAddress != event.ShippingAddress {
		addresses = append(addresses, toAddress(sam.AddressBilling, event.BillingAddress))
	}

	return sam.CustomerPayload{
		FirstName: first,
		LastName:  last,
		Email:     event.CustomerInfo.Email,
		Addresses: addresses,
	}
}

func buildOrderPayload(event webflow.OrderEvent, customerID string) sam.OrderPayload {
	lines := make([]sam.OrderLine, len(event.PurchasedItems))
	for i, item := range event.PurchasedItems {
		lines[i] = sam.OrderLine{
			Product:         item.ProductName,
			Quantity:        item.Count,
			PriceMinorUnits: item.RowTotal.Value,
		}
	}

	return sam.OrderPayload{
		CustomerID:    customerID,
		PaymentMethod: event.PaymentMethod,
		Lines:         lines,
	}
}

// splitName divides a full name into first name (first token) and last
// name (everything after it).
func splitName(fullName string) (string, string) {
	name := strings.TrimSpace(fullName)
	if name == "" {
		return "", ""
	}

	parts := strings.SplitN(name, " ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.TrimSpace(parts[1])
}

func toAddress(addrType string, addr webflow.OrderAddress) sam.CustomerAddress {
	return sam.CustomerAddress{
		Type:     addrType,
		Line1:    addr.Line1,
		Line2:    addr.Line2,
		City:     addr.City,
		State:    addr.State,
		Postcode: addr.Postcode,
		Country:  addr.Country,
	}
}
