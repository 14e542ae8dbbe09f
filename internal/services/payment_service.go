package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"astroleap/internal/models"
	"astroleap/internal/repositories"
	"astroleap/pkg/paypal"
	"astroleap/pkg/rabbitmq"

	"github.com/shopspring/decimal"
)

// Gateway is the subset of the payment gateway the service needs.
type Gateway interface {
	AccessToken(ctx context.Context) (string, error)
	CreateOrder(ctx context.Context, token string, amount decimal.Decimal) (*paypal.Order, error)
	GetOrder(ctx context.Context, token, orderID string) (*paypal.Order, error)
	CaptureOrder(ctx context.Context, token, orderID string) (*paypal.Order, error)
}

// EventPublisher publishes order lifecycle events.
type EventPublisher interface {
	PublishOrderEvent(event rabbitmq.OrderEvent) error
}

// OrderStatus is the outcome of a status check.
type OrderStatus struct {
	Completed bool
	Status    string
}

// PaymentService runs the order lifecycle against the gateway and keeps the
// local order ledger.
type PaymentService struct {
	orderRepo repositories.OrderRepository
	gateway   Gateway
	notifier  *NotificationService
	publisher EventPublisher
	now       func() time.Time
}

// NewPaymentService creates a new PaymentService. notifier and publisher may
// be nil.
func NewPaymentService(orderRepo repositories.OrderRepository, gateway Gateway, notifier *NotificationService, publisher EventPublisher) *PaymentService {
	return &PaymentService{
		orderRepo: orderRepo,
		gateway:   gateway,
		notifier:  notifier,
		publisher: publisher,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// CreateOrder opens a gateway order for amount and records it locally with
// the in-game quantity ammount. The gateway's order object is returned as is.
func (s *PaymentService) CreateOrder(ctx context.Context, amount, ammount decimal.Decimal, email string) (*paypal.Order, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	token, err := s.gateway.AccessToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGatewayToken, err)
	}
	gwOrder, err := s.gateway.CreateOrder(ctx, token, amount)
	if err != nil {
		return nil, fmt.Errorf("PayPal order creation failed: %w", err)
	}
	if gwOrder.ID == "" {
		log.Printf("Gateway returned an order without id for %s", email)
		return gwOrder, nil
	}

	order := &models.Order{
		OrderID:     gwOrder.ID,
		EmailClient: email,
		Ammount:     ammount,
		State:       models.OrderStatePending,
	}
	if err := s.orderRepo.CreateWithRetention(ctx, order, s.now()); err != nil {
		return nil, err
	}
	log.Printf("Created order %s for %s", order.OrderID, email)
	s.publish(rabbitmq.EventOrderCreated, order.OrderID, order.EmailClient, &order.Ammount)
	return gwOrder, nil
}

// CheckStatus asks the gateway for the order status, captures approved
// orders and drops completed ones from the ledger.
func (s *PaymentService) CheckStatus(ctx context.Context, orderID string) (OrderStatus, error) {
	token, err := s.gateway.AccessToken(ctx)
	if err != nil {
		return OrderStatus{}, fmt.Errorf("%w: %w", ErrGatewayToken, err)
	}
	gwOrder, err := s.gateway.GetOrder(ctx, token, orderID)
	if err != nil {
		return OrderStatus{}, err
	}

	status := gwOrder.Status
	if status == paypal.StatusApproved {
		captured, err := s.gateway.CaptureOrder(ctx, token, orderID)
		if err != nil {
			log.Printf("Error capturing order %s: %v", orderID, err)
		} else if captured.Status != "" {
			status = captured.Status
		}
	}

	if status != paypal.StatusCompleted {
		return OrderStatus{Completed: false, Status: status}, nil
	}

	if err := s.orderRepo.Delete(ctx, orderID); err != nil {
		log.Printf("Error deleting completed order %s: %v", orderID, err)
	}
	s.publish(rabbitmq.EventOrderCompleted, orderID, "", nil)
	return OrderStatus{Completed: true, Status: status}, nil
}

// Success handles the buyer returning from an approved payment. The receipt
// is best effort and the order is marked done, not deleted.
func (s *PaymentService) Success(ctx context.Context, orderID string) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	switch {
	case err == nil:
		if s.notifier != nil {
			receipt := Receipt{OrderID: orderID, Ammount: &order.Ammount}
			if err := s.notifier.SendPurchaseReceipt(ctx, order.EmailClient, receipt); err != nil {
				log.Printf("Error sending receipt for order %s: %v", orderID, err)
			}
		}
	case errors.Is(err, repositories.ErrNotFound):
		log.Printf("Success callback for unknown order %s", orderID)
	default:
		log.Printf("Error loading order %s: %v", orderID, err)
	}

	if err := s.orderRepo.MarkDone(ctx, orderID); err != nil {
		log.Printf("Error marking order %s done: %v", orderID, err)
		return
	}
	if order != nil {
		s.publish(rabbitmq.EventOrderDone, orderID, order.EmailClient, &order.Ammount)
	} else {
		s.publish(rabbitmq.EventOrderDone, orderID, "", nil)
	}
}

// Cancel drops an abandoned order from the ledger.
func (s *PaymentService) Cancel(ctx context.Context, orderID string) {
	if err := s.orderRepo.Delete(ctx, orderID); err != nil {
		log.Printf("Error deleting cancelled order %s: %v", orderID, err)
		return
	}
	s.publish(rabbitmq.EventOrderCancelled, orderID, "", nil)
}

// ListByEmail returns the buyer's orders, newest first.
func (s *PaymentService) ListByEmail(ctx context.Context, email string) ([]models.Order, error) {
	return s.orderRepo.GetByEmail(ctx, email)
}

func (s *PaymentService) publish(eventType, orderID, email string, ammount *decimal.Decimal) {
	if s.publisher == nil {
		return
	}
	event := rabbitmq.OrderEvent{
		Type:        eventType,
		OrderID:     orderID,
		EmailClient: email,
		OccurredAt:  s.now(),
	}
	if ammount != nil {
		event.Ammount = ammount.String()
	}
	if err := s.publisher.PublishOrderEvent(event); err != nil {
		log.Printf("Warning: failed to publish %s for order %s: %v", eventType, orderID, err)
	}
}
