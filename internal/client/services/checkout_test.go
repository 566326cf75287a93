package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novakart/storefront/internal/client/models"
)

func verifiedUser() *models.User {
	u := activeUser()
	u.Email = "buyer@example.com"
	return u
}

func testAddr() models.ShippingAddress {
	return models.ShippingAddress{Name: "Alice", Address: "1 Main St", City: "Metropolis"}
}

func cod() models.PaymentDetails {
	return models.PaymentDetails{Method: models.PaymentCashOnDelivery}
}

func newCheckout(client *fakeAPI, u *models.User) *CheckoutService {
	sess, states := newTestSession(u)
	if client.getCurrentUserFn == nil {
		client.getCurrentUserFn = func(context.Context) (*models.User, error) { return u, nil }
	}
	guard := NewGuard(client, sess, testLogger())
	return NewCheckoutService(client, sess, states, guard, testLogger(), 60*time.Second, 5)
}

func TestCheckout_UnverifiedEmailBlocksBeforeAnyCall(t *testing.T) {
	var calls int
	client := &fakeAPI{placeOrderFn: func(context.Context, models.PlaceOrderInput) error {
		calls++
		return nil
	}}
	u := verifiedUser()
	u.EmailVerified = false
	s := newCheckout(client, u)

	_, err := s.BuyNow(context.Background(), models.Product{ID: 1, Price: 10}, 1, testAddr(), cod())
	assert.ErrorIs(t, err, ErrEmailUnverified)
	assert.Equal(t, 0, calls)
}

func TestCheckout_BuyNowSnapshotsAndTotals(t *testing.T) {
	var got models.PlaceOrderInput
	client := &fakeAPI{placeOrderFn: func(_ context.Context, input models.PlaceOrderInput) error {
		got = input
		return nil
	}}
	s := newCheckout(client, verifiedUser())

	p := models.Product{ID: 5, Title: "Pen", Price: 12.5, ReturnPolicy: "7 days return policy"}
	flow, err := s.BuyNow(context.Background(), p, 2, testAddr(), cod())
	require.NoError(t, err)

	require.Len(t, got.Products, 1)
	assert.Equal(t, 5, got.Products[0].ExternalProductID)
	assert.Equal(t, 12.5, got.Products[0].PriceAtPurchase)
	assert.Equal(t, 25.0, got.Products[0].TotalPrice)
	assert.Equal(t, 25.0, got.TotalAmount)
	assert.Equal(t, models.PaymentCashOnDelivery, got.PaymentMethod)

	// the confirmation flow targets the account email
	email, err := flow.Resume(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "buyer@example.com", email)
}

func TestCheckout_CartSkipsMissingLines(t *testing.T) {
	var placed bool
	client := &fakeAPI{placeOrderFromCartFn: func(context.Context, models.PaymentMethod, models.ShippingAddress) error {
		placed = true
		return nil
	}}
	s := newCheckout(client, verifiedUser())

	lines := []models.CartLine{
		{Product: models.Product{ID: 1, Price: 10}, Quantity: 2, TotalPrice: 20},
		{Product: models.Product{ID: 2}, Quantity: 1, Missing: true},
	}
	_, err := s.CheckoutCart(context.Background(), lines, testAddr(), cod())
	require.NoError(t, err)
	assert.True(t, placed)
}

func TestCheckout_EmptyCart(t *testing.T) {
	s := newCheckout(&fakeAPI{}, verifiedUser())
	onlyMissing := []models.CartLine{{Product: models.Product{ID: 2}, Missing: true}}
	_, err := s.CheckoutCart(context.Background(), onlyMissing, testAddr(), cod())
	assert.ErrorIs(t, err, ErrEmptyCheckout)
}

func TestCheckout_IncompletePayment(t *testing.T) {
	s := newCheckout(&fakeAPI{}, verifiedUser())
	card := models.PaymentDetails{Method: models.PaymentCard, CardNumber: "4111"}
	_, err := s.BuyNow(context.Background(), models.Product{ID: 1, Price: 10}, 1, testAddr(), card)
	assert.ErrorIs(t, err, ErrPaymentIncomplete)
}

func TestCheckout_QuantityBounds(t *testing.T) {
	s := newCheckout(&fakeAPI{}, verifiedUser())
	_, err := s.BuyNow(context.Background(), models.Product{ID: 1, Price: 10}, 10, testAddr(), cod())
	assert.Error(t, err)
	_, err = s.BuyNow(context.Background(), models.Product{ID: 1, Price: 10}, 0, testAddr(), cod())
	assert.Error(t, err)
}

func TestCheckout_VerifyConfirmsOrder(t *testing.T) {
	var verified struct{ email, otp string }
	client := &fakeAPI{verifyOrderOTPFn: func(_ context.Context, email, otp string) error {
		verified.email, verified.otp = email, otp
		return nil
	}}
	s := newCheckout(client, verifiedUser())

	flow, err := s.BuyNow(context.Background(), models.Product{ID: 1, Price: 10}, 1, testAddr(), cod())
	require.NoError(t, err)

	require.NoError(t, flow.Verify(context.Background(), "123456"))
	assert.Equal(t, "buyer@example.com", verified.email)
	assert.Equal(t, "123456", verified.otp)
}

func TestCheckout_BannedAccountBlocksBuyNow(t *testing.T) {
	banned := verifiedUser()
	banned.IsBanned = true
	var placed bool
	client := &fakeAPI{
		getCurrentUserFn: func(context.Context) (*models.User, error) { return banned, nil },
		placeOrderFn: func(context.Context, models.PlaceOrderInput) error {
			placed = true
			return nil
		},
	}
	s := newCheckout(client, verifiedUser())

	_, err := s.BuyNow(context.Background(), models.Product{ID: 1, Price: 10}, 1, testAddr(), cod())
	assert.ErrorIs(t, err, ErrActionDenied)
	assert.False(t, placed)
	assert.False(t, s.session.IsAuthenticated())
}

func TestCheckout_BannedAccountBlocksOrderVerify(t *testing.T) {
	var verified bool
	client := &fakeAPI{verifyOrderOTPFn: func(context.Context, string, string) error {
		verified = true
		return nil
	}}
	s := newCheckout(client, verifiedUser())

	flow, err := s.BuyNow(context.Background(), models.Product{ID: 1, Price: 10}, 1, testAddr(), cod())
	require.NoError(t, err)

	// the ban lands between placing the order and entering the code
	banned := verifiedUser()
	banned.IsBanned = true
	var fetched bool
	client.getCurrentUserFn = func(context.Context) (*models.User, error) {
		fetched = true
		return banned, nil
	}

	err = flow.Verify(context.Background(), "123456")
	assert.ErrorIs(t, err, ErrActionDenied)
	assert.True(t, fetched)
	assert.False(t, verified)
	assert.False(t, s.session.IsAuthenticated())
}

func TestCheckout_FlowSurvivesRestart(t *testing.T) {
	client := &fakeAPI{}
	s := newCheckout(client, verifiedUser())

	_, err := s.BuyNow(context.Background(), models.Product{ID: 1, Price: 10}, 1, testAddr(), cod())
	require.NoError(t, err)

	// a new flow instance resumes the pending confirmation
	resumed := s.VerificationFlow()
	email, err := resumed.Resume(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "buyer@example.com", email)
}
