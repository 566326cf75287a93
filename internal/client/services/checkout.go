package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/novakart/storefront/internal/client/api"
	"github.com/novakart/storefront/internal/client/models"
	"github.com/novakart/storefront/internal/client/repositories/state"
	"github.com/novakart/storefront/internal/client/session"
	"github.com/novakart/storefront/internal/logging"
)

var (
	// ErrEmailUnverified blocks checkout before any server call: an
	// unverified account cannot receive the order confirmation code.
	ErrEmailUnverified = errors.New("verify your email before placing an order")
	// ErrEmptyCheckout is returned when there is nothing to order.
	ErrEmptyCheckout = errors.New("nothing to order")
	// ErrPaymentIncomplete is returned when the chosen payment method is
	// missing its required details.
	ErrPaymentIncomplete = errors.New("payment details are incomplete")
)

// CheckoutService places orders. Every placed order must be confirmed
// with an emailed code before the server finalizes it, so both entry
// points return a started order-verification flow.
type CheckoutService struct {
	api     api.Client
	session *session.Store
	states  state.Repository
	guard   *Guard
	log     logging.Logger

	otpCooldown  time.Duration
	otpResendCap int
}

func NewCheckoutService(client api.Client, sess *session.Store, states state.Repository, guard *Guard, log logging.Logger, otpCooldown time.Duration, otpResendCap int) *CheckoutService {
	return &CheckoutService{
		api:          client,
		session:      sess,
		states:       states,
		guard:        guard,
		log:          log,
		otpCooldown:  otpCooldown,
		otpResendCap: otpResendCap,
	}
}

// BuyNow places a single-product order, bypassing the cart.
func (s *CheckoutService) BuyNow(ctx context.Context, p models.Product, quantity int, addr models.ShippingAddress, payment models.PaymentDetails) (*OTPFlow, error) {
	if quantity < models.MinQuantity || quantity > models.MaxQuantity {
		return nil, fmt.Errorf("quantity must be between %d and %d", models.MinQuantity, models.MaxQuantity)
	}
	line := models.PlaceOrderLine{
		ExternalProductID: p.ID,
		Title:             p.Title,
		Thumbnail:         p.Thumbnail,
		PriceAtPurchase:   p.Price,
		Quantity:          quantity,
		TotalPrice:        p.Price * float64(quantity),
		ReturnPolicy:      p.ReturnPolicy,
	}
	return s.place(ctx, []models.PlaceOrderLine{line}, addr, payment, false)
}

// CheckoutCart places an order for the whole cart. The server empties
// the cart as part of the mutation.
func (s *CheckoutService) CheckoutCart(ctx context.Context, lines []models.CartLine, addr models.ShippingAddress, payment models.PaymentDetails) (*OTPFlow, error) {
	orderLines := make([]models.PlaceOrderLine, 0, len(lines))
	for _, l := range lines {
		if l.Missing {
			continue
		}
		orderLines = append(orderLines, models.PlaceOrderLine{
			ExternalProductID: l.ID,
			Title:             l.Title,
			Thumbnail:         l.Thumbnail,
			PriceAtPurchase:   l.Price,
			Quantity:          l.Quantity,
			TotalPrice:        l.TotalPrice,
			ReturnPolicy:      l.ReturnPolicy,
		})
	}
	return s.place(ctx, orderLines, addr, payment, true)
}

func (s *CheckoutService) place(ctx context.Context, lines []models.PlaceOrderLine, addr models.ShippingAddress, payment models.PaymentDetails, fromCart bool) (*OTPFlow, error) {
	user := s.session.CurrentUser()
	if user == nil {
		return nil, api.ErrUnauthenticated
	}
	if !user.EmailVerified {
		return nil, ErrEmailUnverified
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCheckout
	}
	if !payment.Complete() {
		return nil, ErrPaymentIncomplete
	}

	// Spending money re-validates account standing at the moment of
	// action; a ban applied since login must stop the order here.
	if !s.guard.Check(ctx) {
		return nil, ErrActionDenied
	}

	var total float64
	for _, l := range lines {
		total += l.TotalPrice
	}

	var err error
	if fromCart {
		err = s.api.PlaceOrderFromCart(ctx, payment.Method, addr)
	} else {
		err = s.api.PlaceOrder(ctx, models.PlaceOrderInput{
			Products:        lines,
			ShippingAddress: addr,
			PaymentMethod:   payment.Method,
			TotalAmount:     total,
		})
	}
	if err != nil {
		return nil, err
	}

	// The confirmation code goes to the account email, not the
	// shipping contact.
	flow := s.VerificationFlow()
	if err := flow.Begin(ctx, user.Email); err != nil {
		return nil, err
	}
	s.log.Info(ctx, "order placed, awaiting confirmation code", "email", user.Email, "total", total)
	return flow, nil
}

// VerificationFlow returns the order-confirmation flow, for resuming one
// interrupted by a restart.
func (s *CheckoutService) VerificationFlow() *OTPFlow {
	return NewOTPFlow(PurposeOrderVerify, s.states, s.log, s.otpCooldown, s.otpResendCap, OTPOps{
		Verify: func(ctx context.Context, email, otp string) error {
			if !s.guard.Check(ctx) {
				return ErrActionDenied
			}
			return s.api.VerifyOrderOTP(ctx, email, otp)
		},
		Resend: s.api.ResendEmailOTP,
	})
}
