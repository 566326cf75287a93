package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/novakart/storefront/internal/client/api"
	"github.com/novakart/storefront/internal/client/models"
	"github.com/novakart/storefront/internal/logging"
)

// ErrReasonRequired is returned when a cancel or return is submitted
// without a usable reason.
var ErrReasonRequired = errors.New("a reason is required")

// OrderService drives the customer order lifecycle: history, tracking,
// cancellation and returns. The history is cached until a lifecycle
// mutation succeeds.
type OrderService struct {
	api   api.Client
	guard *Guard
	log   logging.Logger
	now   func() time.Time

	mu     sync.Mutex
	cached []models.Order
	fresh  bool
}

func NewOrderService(client api.Client, guard *Guard, log logging.Logger) *OrderService {
	return &OrderService{api: client, guard: guard, log: log, now: time.Now}
}

// List returns the order history, newest first as the server sends it.
// The cached copy is reused until a mutation invalidates it; pass
// force to bypass the cache.
func (s *OrderService) List(ctx context.Context, force bool) ([]models.Order, error) {
	s.mu.Lock()
	if s.fresh && !force {
		orders := s.cached
		s.mu.Unlock()
		return orders, nil
	}
	s.mu.Unlock()

	orders, err := s.api.UserOrders(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cached = orders
	s.fresh = true
	s.mu.Unlock()
	return orders, nil
}

// Get fetches one order fresh; detail views never trust the cache.
func (s *OrderService) Get(ctx context.Context, orderID string) (*models.Order, error) {
	return s.api.OrderByID(ctx, orderID)
}

// Cancel cancels an order. The action is refused locally once the order
// has shipped or is already in an absorbing state; the server remains
// the final authority.
func (s *OrderService) Cancel(ctx context.Context, order *models.Order, reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ErrReasonRequired
	}
	if !order.OrderStatus.Cancellable() {
		return fmt.Errorf("order in status %s cannot be cancelled", order.OrderStatus)
	}
	if !s.guard.Check(ctx) {
		return ErrActionDenied
	}
	if err := s.api.CancelOrder(ctx, order.ID, reason); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

// Return requests a return for a delivered order. At least one line must
// still be inside its return window.
func (s *OrderService) Return(ctx context.Context, order *models.Order, reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ErrReasonRequired
	}
	if !order.ReturnEligible(s.now()) {
		return fmt.Errorf("order %s is not eligible for return", order.ID)
	}
	if !s.guard.Check(ctx) {
		return ErrActionDenied
	}
	if err := s.api.ReturnOrder(ctx, order.ID, reason); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

func (s *OrderService) invalidate() {
	s.mu.Lock()
	s.fresh = false
	s.mu.Unlock()
}
