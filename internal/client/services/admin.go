package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/novakart/storefront/internal/client/api"
	"github.com/novakart/storefront/internal/client/models"
	"github.com/novakart/storefront/internal/client/session"
	"github.com/novakart/storefront/internal/logging"
)

// ErrAdminOnly is returned when a non-admin reaches an admin operation.
var ErrAdminOnly = errors.New("admin role required")

// AdminService is the console for staff accounts: order management with
// the two-phase refund, catalog curation and user moderation. The role
// check here only shapes the UI; the server enforces authorization on
// every mutation.
type AdminService struct {
	api     api.Client
	session *session.Store
	log     logging.Logger
}

func NewAdminService(client api.Client, sess *session.Store, log logging.Logger) *AdminService {
	return &AdminService{api: client, session: sess, log: log}
}

func (s *AdminService) require() error {
	if !s.session.CurrentUser().IsAdmin() {
		return ErrAdminOnly
	}
	return nil
}

// Orders lists all orders, optionally filtered to one status.
func (s *AdminService) Orders(ctx context.Context, status string, limit, skip int) ([]models.Order, error) {
	if err := s.require(); err != nil {
		return nil, err
	}
	if status != "" {
		st, err := models.ParseOrderStatus(status)
		if err != nil {
			return nil, err
		}
		return s.api.OrdersByStatusAdmin(ctx, st)
	}
	return s.api.AllOrdersAdmin(ctx, limit, skip)
}

func (s *AdminService) Order(ctx context.Context, orderID string) (*models.Order, error) {
	if err := s.require(); err != nil {
		return nil, err
	}
	return s.api.OrderByID(ctx, orderID)
}

// SetOrderStatus moves an order to a new status. The server validates
// the transition; the client only parses the target.
func (s *AdminService) SetOrderStatus(ctx context.Context, orderID, status string) error {
	if err := s.require(); err != nil {
		return err
	}
	st, err := models.ParseOrderStatus(status)
	if err != nil {
		return err
	}
	return s.api.UpdateOrderStatus(ctx, orderID, st)
}

// InitiateRefund starts the two-phase refund for a cancelled or
// returned order. Money moves only on ConfirmRefund.
func (s *AdminService) InitiateRefund(ctx context.Context, order *models.Order) error {
	if err := s.require(); err != nil {
		return err
	}
	if !order.OrderStatus.Refundable() {
		return fmt.Errorf("order in status %s cannot be refunded", order.OrderStatus)
	}
	return s.api.InitiateRefund(ctx, order.ID)
}

// ConfirmRefund completes the refund and moves the order to Refunded.
func (s *AdminService) ConfirmRefund(ctx context.Context, orderID string) error {
	if err := s.require(); err != nil {
		return err
	}
	return s.api.ConfirmRefund(ctx, orderID)
}

// Catalog curation.

func (s *AdminService) AddProduct(ctx context.Context, p models.Product) error {
	if err := s.require(); err != nil {
		return err
	}
	return s.api.AddProduct(ctx, p)
}

func (s *AdminService) UpdateProduct(ctx context.Context, id int, p models.Product) error {
	if err := s.require(); err != nil {
		return err
	}
	return s.api.UpdateProduct(ctx, id, p)
}

func (s *AdminService) RemoveProduct(ctx context.Context, id int) error {
	if err := s.require(); err != nil {
		return err
	}
	return s.api.RemoveProduct(ctx, id)
}

func (s *AdminService) AddCategory(ctx context.Context, c models.Category) error {
	if err := s.require(); err != nil {
		return err
	}
	return s.api.AddCategory(ctx, c)
}

func (s *AdminService) UpdateCategory(ctx context.Context, slug string, c models.Category) error {
	if err := s.require(); err != nil {
		return err
	}
	return s.api.UpdateCategory(ctx, slug, c)
}

func (s *AdminService) RemoveCategory(ctx context.Context, slug string) error {
	if err := s.require(); err != nil {
		return err
	}
	return s.api.RemoveCategory(ctx, slug)
}

func (s *AdminService) AddBanner(ctx context.Context, b models.Banner) error {
	if err := s.require(); err != nil {
		return err
	}
	return s.api.AddBanner(ctx, b)
}

func (s *AdminService) UpdateBanner(ctx context.Context, b models.Banner) error {
	if err := s.require(); err != nil {
		return err
	}
	return s.api.UpdateBanner(ctx, b)
}

func (s *AdminService) DeleteBanner(ctx context.Context, id string) error {
	if err := s.require(); err != nil {
		return err
	}
	return s.api.DeleteBanner(ctx, id)
}

// User moderation.

func (s *AdminService) Users(ctx context.Context) ([]models.User, error) {
	if err := s.require(); err != nil {
		return nil, err
	}
	return s.api.AllUsersAdmin(ctx)
}

// SetBanned bans or unbans an account. A banned account fails its next
// standing check and is logged out.
func (s *AdminService) SetBanned(ctx context.Context, userID string, banned bool) error {
	if err := s.require(); err != nil {
		return err
	}
	return s.api.SetUserBanned(ctx, userID, banned)
}

func (s *AdminService) SetActive(ctx context.Context, userID string, active bool) error {
	if err := s.require(); err != nil {
		return err
	}
	return s.api.SetUserActive(ctx, userID, active)
}
