package handlers

import (
	_ "embed"
	"errors"

	"astroleap/internal/services"
	"astroleap/pkg/paypal"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

var (
	//go:embed views/paypal_success.html
	successView []byte
	//go:embed views/paypal_cancel.html
	cancelView []byte
)

// PaymentHandler handles HTTP requests for gateway orders.
type PaymentHandler struct {
	service  *services.PaymentService
	validate *validator.Validate
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(service *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		service:  service,
		validate: NewValidator(),
	}
}

// RegisterRoutes registers the payment routes with the Fiber app.
func (h *PaymentHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/create-paypal-order", h.HandleCreateOrder)
	router.Get("/check-paypal-order-status/:order_id", h.HandleCheckStatus)
	router.Get("/paypal-success", h.HandleSuccess)
	router.Get("/paypal-cancel", h.HandleCancel)
	router.Get("/get-orders-by-email/:email", h.HandleGetOrdersByEmail)
}

// CreateOrderRequest is the body of /create-paypal-order. amount is the money
// charged in USD, amountAurum the in-game currency bought.
type CreateOrderRequest struct {
	Amount      *decimal.Decimal `json:"amount" validate:"required"`
	AmountAurum *decimal.Decimal `json:"amountAurum"`
	Email       string           `json:"email" validate:"required"`
}

// HandleCreateOrder opens a gateway order and records it locally. The
// gateway's order object is passed through.
func (h *PaymentHandler) HandleCreateOrder(c *fiber.Ctx) error {
	const message = "Amount and email_client are required"
	var req CreateOrderRequest
	if err := bind(c, h.validate, &req); err != nil {
		return badRequest(c, message, err)
	}
	aurum := decimal.Zero
	if req.AmountAurum != nil {
		aurum = *req.AmountAurum
	}

	order, err := h.service.CreateOrder(c.UserContext(), *req.Amount, aurum, req.Email)
	if err != nil {
		var apiErr *paypal.APIError
		switch {
		case errors.Is(err, services.ErrInvalidAmount):
			return badRequest(c, message, nil)
		case errors.Is(err, services.ErrGatewayToken):
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":   "Failed to fetch PayPal token",
				"details": err.Error(),
			})
		case errors.As(err, &apiErr):
			return c.Status(apiErr.StatusCode).JSON(fiber.Map{
				"error":   "PayPal order creation failed",
				"details": apiErr.Body,
			})
		default:
			return internalError(c, "creating PayPal order", err)
		}
	}

	if len(order.Raw) > 0 {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Send(order.Raw)
	}
	return c.JSON(order)
}

// HandleCheckStatus reports whether the order completed, capturing it first
// when the buyer has approved it.
func (h *PaymentHandler) HandleCheckStatus(c *fiber.Ctx) error {
	status, err := h.service.CheckStatus(c.UserContext(), c.Params("order_id"))
	if err != nil {
		return internalError(c, "checking PayPal order status", err)
	}
	if status.Completed {
		return c.JSON(fiber.Map{"completed": true})
	}
	return c.JSON(fiber.Map{"completed": false, "status": status.Status})
}

// HandleSuccess is the gateway return URL. The view renders even when the
// bookkeeping fails.
func (h *PaymentHandler) HandleSuccess(c *fiber.Ctx) error {
	token := c.Query("token")
	payerID := c.Query("PayerID")
	if token == "" || payerID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing token or payer ID"})
	}

	h.service.Success(c.UserContext(), token)
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(successView)
}

// HandleCancel is the gateway cancel URL.
func (h *PaymentHandler) HandleCancel(c *fiber.Ctx) error {
	if token := c.Query("token"); token != "" {
		h.service.Cancel(c.UserContext(), token)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(cancelView)
}

// HandleGetOrdersByEmail lists a buyer's orders, newest first.
func (h *PaymentHandler) HandleGetOrdersByEmail(c *fiber.Ctx) error {
	orders, err := h.service.ListByEmail(c.UserContext(), c.Params("email"))
	if err != nil {
		return internalError(c, "getting orders by email", err)
	}
	return c.JSON(orEmpty(orders))
}
