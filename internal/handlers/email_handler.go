package handlers

import (
	"astroleap/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// EmailHandler handles HTTP requests that send transactional mail.
type EmailHandler struct {
	service  *services.NotificationService
	validate *validator.Validate
}

// NewEmailHandler creates a new EmailHandler.
func NewEmailHandler(service *services.NotificationService) *EmailHandler {
	return &EmailHandler{
		service:  service,
		validate: NewValidator(),
	}
}

// RegisterRoutes registers the mail routes with the Fiber app.
func (h *EmailHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/send-verification-email", h.HandleSendVerification)
	router.Post("/send-forgot-password", h.HandleSendForgotPassword)
	router.Post("/send-email-buy-product", h.HandleSendPurchase)
}

// CodeEmailRequest is the body of the verification and password reset mails.
type CodeEmailRequest struct {
	Email    string `json:"email" validate:"required"`
	Username string `json:"username" validate:"required"`
	Code     string `json:"code" validate:"required"`
}

// HandleSendVerification sends the welcome mail with its verification code.
func (h *EmailHandler) HandleSendVerification(c *fiber.Ctx) error {
	var req CodeEmailRequest
	if err := bind(c, h.validate, &req); err != nil {
		return badRequest(c, "email, username and code are required", err)
	}
	if err := h.service.SendVerification(c.UserContext(), req.Email, req.Username, req.Code); err != nil {
		return internalError(c, "sending verification email", err)
	}
	return c.JSON(fiber.Map{"message": "Verification email sent successfully"})
}

// HandleSendForgotPassword sends the password reset code.
func (h *EmailHandler) HandleSendForgotPassword(c *fiber.Ctx) error {
	var req CodeEmailRequest
	if err := bind(c, h.validate, &req); err != nil {
		return badRequest(c, "email, username and code are required", err)
	}
	if err := h.service.SendForgotPassword(c.UserContext(), req.Email, req.Username, req.Code); err != nil {
		return internalError(c, "sending password reset email", err)
	}
	return c.JSON(fiber.Map{"message": "Password reset email sent successfully"})
}

// PurchaseEmailRequest is the body of /send-email-buy-product.
type PurchaseEmailRequest struct {
	Email   string           `json:"email" validate:"required"`
	OrderID string           `json:"order_id"`
	Ammount *decimal.Decimal `json:"ammount"`
}

// HandleSendPurchase sends a purchase receipt.
func (h *EmailHandler) HandleSendPurchase(c *fiber.Ctx) error {
	var req PurchaseEmailRequest
	if err := bind(c, h.validate, &req); err != nil {
		return badRequest(c, "email is required", err)
	}
	receipt := services.Receipt{OrderID: req.OrderID, Ammount: req.Ammount}
	if err := h.service.SendPurchaseReceipt(c.UserContext(), req.Email, receipt); err != nil {
		return internalError(c, "sending purchase email", err)
	}
	return c.JSON(fiber.Map{"message": "Purchase email sent successfully"})
}
