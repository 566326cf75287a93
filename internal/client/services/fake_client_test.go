package services

import (
	"context"
	"sync"

	"github.com/novakart/storefront/internal/client/api"
	"github.com/novakart/storefront/internal/client/models"
	"github.com/novakart/storefront/internal/client/repositories/state"
	"github.com/novakart/storefront/internal/client/session"
	"github.com/novakart/storefront/internal/logging"
)

// fakeAPI substitutes the server. Tests override the function fields
// they exercise; everything else answers with zero values.
type fakeAPI struct {
	loginFn              func(ctx context.Context, loginIdentifier, password string) (*models.AuthResult, error)
	signupFn             func(ctx context.Context, input models.SignupInput) error
	getCurrentUserFn     func(ctx context.Context) (*models.User, error)
	verifyEmailOTPFn     func(ctx context.Context, email, otp string) error
	resendEmailOTPFn     func(ctx context.Context, email string) error
	verifyOrderOTPFn     func(ctx context.Context, email, otp string) error
	userCartFn           func(ctx context.Context) (*models.Cart, error)
	productsByIDsFn      func(ctx context.Context, ids []int) ([]models.Product, error)
	updateCartQtyFn      func(ctx context.Context, productID, quantity int) error
	addToCartFn          func(ctx context.Context, productID, quantity int) error
	removeCartItemFn     func(ctx context.Context, productID int) error
	clearCartFn          func(ctx context.Context) error
	placeOrderFn         func(ctx context.Context, input models.PlaceOrderInput) error
	placeOrderFromCartFn func(ctx context.Context, method models.PaymentMethod, addr models.ShippingAddress) error
	userOrdersFn         func(ctx context.Context) ([]models.Order, error)
	orderByIDFn          func(ctx context.Context, orderID string) (*models.Order, error)
	cancelOrderFn        func(ctx context.Context, orderID, reason string) error
	returnOrderFn        func(ctx context.Context, orderID, reason string) error
	changePasswordFn     func(ctx context.Context, oldPassword, newPassword string) error
	updateProfileFn      func(ctx context.Context, input models.ProfileInput) error
	updateEmailFn        func(ctx context.Context, newEmail string) error
	initiateResetFn      func(ctx context.Context, email string) error
	verifyResetOTPFn     func(ctx context.Context, email, otp string) error
	allOrdersAdminFn     func(ctx context.Context, limit, skip int) ([]models.Order, error)
	ordersByStatusFn     func(ctx context.Context, status models.OrderStatus) ([]models.Order, error)
	updateOrderStatusFn  func(ctx context.Context, orderID string, st models.OrderStatus) error
	initiateRefundFn     func(ctx context.Context, orderID string) error
	confirmRefundFn      func(ctx context.Context, orderID string) error
}

var _ api.Client = (*fakeAPI)(nil)

func (f *fakeAPI) Close() error { return nil }

func (f *fakeAPI) Login(ctx context.Context, id, pw string) (*models.AuthResult, error) {
	if f.loginFn != nil {
		return f.loginFn(ctx, id, pw)
	}
	return nil, nil
}

func (f *fakeAPI) Signup(ctx context.Context, input models.SignupInput) error {
	if f.signupFn != nil {
		return f.signupFn(ctx, input)
	}
	return nil
}

func (f *fakeAPI) GetCurrentUser(ctx context.Context) (*models.User, error) {
	if f.getCurrentUserFn != nil {
		return f.getCurrentUserFn(ctx)
	}
	return nil, nil
}

func (f *fakeAPI) VerifyEmailOTP(ctx context.Context, email, otp string) error {
	if f.verifyEmailOTPFn != nil {
		return f.verifyEmailOTPFn(ctx, email, otp)
	}
	return nil
}

func (f *fakeAPI) VerifyEmailUpdateOTP(ctx context.Context, email, otp string) error {
	return nil
}

func (f *fakeAPI) ResendEmailOTP(ctx context.Context, email string) error {
	if f.resendEmailOTPFn != nil {
		return f.resendEmailOTPFn(ctx, email)
	}
	return nil
}

func (f *fakeAPI) InitiateResetPassword(ctx context.Context, email string) error {
	if f.initiateResetFn != nil {
		return f.initiateResetFn(ctx, email)
	}
	return nil
}

func (f *fakeAPI) VerifyPasswordResetOTP(ctx context.Context, email, otp string) error {
	if f.verifyResetOTPFn != nil {
		return f.verifyResetOTPFn(ctx, email, otp)
	}
	return nil
}
func (f *fakeAPI) ResetPassword(ctx context.Context, email, newPassword string) error  { return nil }

func (f *fakeAPI) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	if f.changePasswordFn != nil {
		return f.changePasswordFn(ctx, oldPassword, newPassword)
	}
	return nil
}

func (f *fakeAPI) UpdateProfile(ctx context.Context, input models.ProfileInput) error {
	if f.updateProfileFn != nil {
		return f.updateProfileFn(ctx, input)
	}
	return nil
}

func (f *fakeAPI) UpdateEmail(ctx context.Context, newEmail string) error {
	if f.updateEmailFn != nil {
		return f.updateEmailFn(ctx, newEmail)
	}
	return nil
}

func (f *fakeAPI) AllProducts(ctx context.Context, limit, skip int) (*models.ProductPage, error) {
	return &models.ProductPage{Limit: limit, Skip: skip}, nil
}

func (f *fakeAPI) SearchProducts(ctx context.Context, q string, limit, skip int) (*models.ProductPage, error) {
	return &models.ProductPage{Limit: limit, Skip: skip}, nil
}

func (f *fakeAPI) ProductByID(ctx context.Context, id int) (*models.Product, error) {
	return nil, nil
}

func (f *fakeAPI) ProductsByIDs(ctx context.Context, ids []int) ([]models.Product, error) {
	if f.productsByIDsFn != nil {
		return f.productsByIDsFn(ctx, ids)
	}
	return nil, nil
}

func (f *fakeAPI) AllCategories(ctx context.Context) ([]models.Category, error) { return nil, nil }
func (f *fakeAPI) AllBanners(ctx context.Context) ([]models.Banner, error)     { return nil, nil }

func (f *fakeAPI) UserCart(ctx context.Context) (*models.Cart, error) {
	if f.userCartFn != nil {
		return f.userCartFn(ctx)
	}
	return nil, nil
}

func (f *fakeAPI) CartCount(ctx context.Context) (int, error) { return 0, nil }

func (f *fakeAPI) AddToCart(ctx context.Context, productID, quantity int) error {
	if f.addToCartFn != nil {
		return f.addToCartFn(ctx, productID, quantity)
	}
	return nil
}

func (f *fakeAPI) UpdateCartQuantity(ctx context.Context, productID, quantity int) error {
	if f.updateCartQtyFn != nil {
		return f.updateCartQtyFn(ctx, productID, quantity)
	}
	return nil
}

func (f *fakeAPI) RemoveCartItem(ctx context.Context, productID int) error {
	if f.removeCartItemFn != nil {
		return f.removeCartItemFn(ctx, productID)
	}
	return nil
}

func (f *fakeAPI) ClearCart(ctx context.Context) error {
	if f.clearCartFn != nil {
		return f.clearCartFn(ctx)
	}
	return nil
}

func (f *fakeAPI) PlaceOrder(ctx context.Context, input models.PlaceOrderInput) error {
	if f.placeOrderFn != nil {
		return f.placeOrderFn(ctx, input)
	}
	return nil
}

func (f *fakeAPI) PlaceOrderFromCart(ctx context.Context, method models.PaymentMethod, addr models.ShippingAddress) error {
	if f.placeOrderFromCartFn != nil {
		return f.placeOrderFromCartFn(ctx, method, addr)
	}
	return nil
}

func (f *fakeAPI) VerifyOrderOTP(ctx context.Context, email, otp string) error {
	if f.verifyOrderOTPFn != nil {
		return f.verifyOrderOTPFn(ctx, email, otp)
	}
	return nil
}

func (f *fakeAPI) UserOrders(ctx context.Context) ([]models.Order, error) {
	if f.userOrdersFn != nil {
		return f.userOrdersFn(ctx)
	}
	return nil, nil
}

func (f *fakeAPI) OrderByID(ctx context.Context, orderID string) (*models.Order, error) {
	if f.orderByIDFn != nil {
		return f.orderByIDFn(ctx, orderID)
	}
	return nil, nil
}

func (f *fakeAPI) CancelOrder(ctx context.Context, orderID, reason string) error {
	if f.cancelOrderFn != nil {
		return f.cancelOrderFn(ctx, orderID, reason)
	}
	return nil
}

func (f *fakeAPI) ReturnOrder(ctx context.Context, orderID, reason string) error {
	if f.returnOrderFn != nil {
		return f.returnOrderFn(ctx, orderID, reason)
	}
	return nil
}

func (f *fakeAPI) AllOrdersAdmin(ctx context.Context, limit, skip int) ([]models.Order, error) {
	if f.allOrdersAdminFn != nil {
		return f.allOrdersAdminFn(ctx, limit, skip)
	}
	return nil, nil
}

func (f *fakeAPI) OrdersByStatusAdmin(ctx context.Context, st models.OrderStatus) ([]models.Order, error) {
	if f.ordersByStatusFn != nil {
		return f.ordersByStatusFn(ctx, st)
	}
	return nil, nil
}

func (f *fakeAPI) UpdateOrderStatus(ctx context.Context, orderID string, st models.OrderStatus) error {
	if f.updateOrderStatusFn != nil {
		return f.updateOrderStatusFn(ctx, orderID, st)
	}
	return nil
}

func (f *fakeAPI) InitiateRefund(ctx context.Context, orderID string) error {
	if f.initiateRefundFn != nil {
		return f.initiateRefundFn(ctx, orderID)
	}
	return nil
}

func (f *fakeAPI) ConfirmRefund(ctx context.Context, orderID string) error {
	if f.confirmRefundFn != nil {
		return f.confirmRefundFn(ctx, orderID)
	}
	return nil
}

func (f *fakeAPI) AddProduct(ctx context.Context, p models.Product) error            { return nil }
func (f *fakeAPI) UpdateProduct(ctx context.Context, id int, p models.Product) error { return nil }
func (f *fakeAPI) RemoveProduct(ctx context.Context, id int) error                   { return nil }
func (f *fakeAPI) AddCategory(ctx context.Context, c models.Category) error          { return nil }
func (f *fakeAPI) UpdateCategory(ctx context.Context, slug string, c models.Category) error {
	return nil
}
func (f *fakeAPI) RemoveCategory(ctx context.Context, slug string) error   { return nil }
func (f *fakeAPI) AddBanner(ctx context.Context, b models.Banner) error    { return nil }
func (f *fakeAPI) UpdateBanner(ctx context.Context, b models.Banner) error { return nil }
func (f *fakeAPI) DeleteBanner(ctx context.Context, id string) error       { return nil }
func (f *fakeAPI) AllUsersAdmin(ctx context.Context) ([]models.User, error) {
	return nil, nil
}
func (f *fakeAPI) SetUserBanned(ctx context.Context, userID string, banned bool) error { return nil }
func (f *fakeAPI) SetUserActive(ctx context.Context, userID string, active bool) error { return nil }

// memStates is an in-memory state repository for service tests.
type memStates struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemStates() *memStates {
	return &memStates{data: map[string][]byte{}}
}

func (m *memStates) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[key], nil
}

func (m *memStates) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *memStates) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *memStates) List(_ context.Context) (map[string][]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := map[string][]byte{}
	for k, v := range m.data {
		out[k] = v
	}
	return out, nil
}

func (m *memStates) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = map[string][]byte{}
	return nil
}

var _ state.Repository = (*memStates)(nil)

func testLogger() logging.Logger {
	return logging.NewDefault(99)
}

// newTestSession builds a session store holding the given user.
func newTestSession(u *models.User) (*session.Store, *memStates) {
	states := newMemStates()
	sess := session.NewStore(states, testLogger())
	ctx := context.Background()
	if u != nil {
		_ = sess.SetToken(ctx, "tok")
		_ = sess.SetCurrentUser(ctx, u)
	}
	return sess, states
}
