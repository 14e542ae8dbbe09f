package services

import (
	"context"
	"fmt"
	"log"

	"astroleap/pkg/mailer"

	"github.com/shopspring/decimal"
)

// Mail subjects.
const (
	SubjectWelcome        = "¡Welcome to AstroLeap! 🚀"
	SubjectForgotPassword = "🚀Did you forget your password? AstroLeap has got you covered!"
	SubjectPurchase       = "Thanks for your purchase 🚀"
)

// Mailer delivers a single message.
type Mailer interface {
	Send(ctx context.Context, msg mailer.Message) error
}

// Receipt describes a purchase for the receipt mail. Empty fields are left
// out of the text.
type Receipt struct {
	OrderID string
	Ammount *decimal.Decimal
}

// NotificationService sends transactional mail. Every send blocks until the
// relay answers and returns its error to the caller.
type NotificationService struct {
	mailer Mailer
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(m Mailer) *NotificationService {
	return &NotificationService{mailer: m}
}

// SendVerification sends the welcome mail with the email verification code.
func (s *NotificationService) SendVerification(ctx context.Context, email, username, code string) error {
	body := fmt.Sprintf(`Hi %s!

We are thrilled to have you on board 🚀🌌
But first, you need to verify your email to start playing AstroLeap.

Here is your verification code: %s

Get ready to leap through the stars and discover new worlds! 🌠

The AstroLeap Team
`, username, code)
	return s.send(ctx, email, SubjectWelcome, body)
}

// SendForgotPassword sends the password reset code.
func (s *NotificationService) SendForgotPassword(ctx context.Context, email, username, code string) error {
	body := fmt.Sprintf(`Hi %s,

It seems like you've forgotten your password. Don't worry, we're here to help! 🚀🌌
Here is the code to reset your password:

Your verification code is: %s

Get ready to run among the stars and discover new worlds! 🌠

The AstroLeap Team
`, username, code)
	return s.send(ctx, email, SubjectForgotPassword, body)
}

// SendPurchaseReceipt thanks the buyer for an order.
func (s *NotificationService) SendPurchaseReceipt(ctx context.Context, email string, receipt Receipt) error {
	return s.send(ctx, email, SubjectPurchase, PurchaseReceiptBody(receipt))
}

// PurchaseReceiptBody renders the receipt text.
func PurchaseReceiptBody(receipt Receipt) string {
	order := "Your order"
	if receipt.OrderID != "" {
		order = fmt.Sprintf("Your order (ID: %s)", receipt.OrderID)
	}
	if receipt.Ammount != nil {
		order = fmt.Sprintf("%s for %s USD", order, receipt.Ammount.StringFixed(2))
	}

	return fmt.Sprintf(`Dear AstroLeap Adventurer,

Thank you for your purchase! 🌟✨

We are thrilled to have you as part of our cosmic journey. Your support helps us continue creating stellar experiences for explorers like you.

%s has been received and is being processed. 🚀💸

Get ready to leap through the stars and uncover new worlds!

If you have any questions or need assistance, feel free to reach out to us.

Clear skies and happy exploring! 🌠

The AstroLeap Team
`, order)
}

func (s *NotificationService) send(ctx context.Context, to, subject, body string) error {
	if err := s.mailer.Send(ctx, mailer.Message{To: to, Subject: subject, Body: body}); err != nil {
		return fmt.Errorf("failed to send %q to %s: %w", subject, to, err)
	}
	log.Printf("Sent %q to %s", subject, to)
	return nil
}
