package api

import (
	"context"

	"github.com/novakart/storefront/internal/client/models"
)

// Client is the full surface of server operations the storefront client
// consumes. Services depend on this interface; tests substitute fakes.
//
// Mutations that answer with a bare success/message payload return only
// an error: success:false comes back as an ErrBusiness wrapping the
// server message.
type Client interface {
	Close() error

	// Account and session.
	Login(ctx context.Context, loginIdentifier, password string) (*models.AuthResult, error)
	Signup(ctx context.Context, input models.SignupInput) error
	GetCurrentUser(ctx context.Context) (*models.User, error)
	VerifyEmailOTP(ctx context.Context, email, otp string) error
	VerifyEmailUpdateOTP(ctx context.Context, email, otp string) error
	ResendEmailOTP(ctx context.Context, email string) error
	InitiateResetPassword(ctx context.Context, email string) error
	VerifyPasswordResetOTP(ctx context.Context, email, otp string) error
	ResetPassword(ctx context.Context, email, newPassword string) error
	ChangePassword(ctx context.Context, oldPassword, newPassword string) error
	UpdateProfile(ctx context.Context, input models.ProfileInput) error
	UpdateEmail(ctx context.Context, newEmail string) error

	// Catalog.
	AllProducts(ctx context.Context, limit, skip int) (*models.ProductPage, error)
	SearchProducts(ctx context.Context, query string, limit, skip int) (*models.ProductPage, error)
	ProductByID(ctx context.Context, id int) (*models.Product, error)
	ProductsByIDs(ctx context.Context, ids []int) ([]models.Product, error)
	AllCategories(ctx context.Context) ([]models.Category, error)
	AllBanners(ctx context.Context) ([]models.Banner, error)

	// Cart.
	UserCart(ctx context.Context) (*models.Cart, error)
	CartCount(ctx context.Context) (int, error)
	AddToCart(ctx context.Context, productID, quantity int) error
	UpdateCartQuantity(ctx context.Context, productID, quantity int) error
	RemoveCartItem(ctx context.Context, productID int) error
	ClearCart(ctx context.Context) error

	// Checkout and orders.
	PlaceOrder(ctx context.Context, input models.PlaceOrderInput) error
	PlaceOrderFromCart(ctx context.Context, method models.PaymentMethod, addr models.ShippingAddress) error
	VerifyOrderOTP(ctx context.Context, email, otp string) error
	UserOrders(ctx context.Context) ([]models.Order, error)
	OrderByID(ctx context.Context, orderID string) (*models.Order, error)
	CancelOrder(ctx context.Context, orderID, reason string) error
	ReturnOrder(ctx context.Context, orderID, reason string) error

	// Admin console.
	AllOrdersAdmin(ctx context.Context, limit, skip int) ([]models.Order, error)
	OrdersByStatusAdmin(ctx context.Context, status models.OrderStatus) ([]models.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, newStatus models.OrderStatus) error
	InitiateRefund(ctx context.Context, orderID string) error
	ConfirmRefund(ctx context.Context, orderID string) error
	AddProduct(ctx context.Context, p models.Product) error
	UpdateProduct(ctx context.Context, id int, p models.Product) error
	RemoveProduct(ctx context.Context, id int) error
	AddCategory(ctx context.Context, c models.Category) error
	UpdateCategory(ctx context.Context, slug string, c models.Category) error
	RemoveCategory(ctx context.Context, slug string) error
	AddBanner(ctx context.Context, b models.Banner) error
	UpdateBanner(ctx context.Context, b models.Banner) error
	DeleteBanner(ctx context.Context, id string) error
	AllUsersAdmin(ctx context.Context) ([]models.User, error)
	SetUserBanned(ctx context.Context, userID string, banned bool) error
	SetUserActive(ctx context.Context, userID string, active bool) error
}

var _ Client = (*GraphQLClient)(nil)

// ackOp runs an operation whose payload is a bare success/message object
// under the given field name.
func (c *GraphQLClient) ackOp(ctx context.Context, opName, query string, vars any) error {
	var out map[string]Ack
	if err := c.do(ctx, opName, query, vars, &out); err != nil {
		return err
	}
	return out[opName].Err()
}

func (c *GraphQLClient) Login(ctx context.Context, loginIdentifier, password string) (*models.AuthResult, error) {
	var out struct {
		Login *models.AuthResult `json:"login"`
	}
	vars := map[string]any{"loginIdentifier": loginIdentifier, "password": password}
	if err := c.do(ctx, "login", mLogin, vars, &out); err != nil {
		return nil, err
	}
	if out.Login == nil {
		return nil, businessError("invalid credentials")
	}
	return out.Login, nil
}

func (c *GraphQLClient) Signup(ctx context.Context, input models.SignupInput) error {
	return c.ackOp(ctx, "signup", mSignup, map[string]any{"input": input})
}

func (c *GraphQLClient) GetCurrentUser(ctx context.Context) (*models.User, error) {
	var out struct {
		GetCurrentUser *models.User `json:"getCurrentUser"`
	}
	if err := c.do(ctx, "getCurrentUser", qGetCurrentUser, nil, &out); err != nil {
		return nil, err
	}
	return out.GetCurrentUser, nil
}

func (c *GraphQLClient) VerifyEmailOTP(ctx context.Context, email, otp string) error {
	var out struct {
		VerifyEmailOtp *struct {
			Email string `json:"email"`
		} `json:"verifyEmailOtp"`
	}
	vars := map[string]any{"email": email, "otp": otp}
	if err := c.do(ctx, "verifyEmailOtp", mVerifyEmailOtp, vars, &out); err != nil {
		return err
	}
	if out.VerifyEmailOtp == nil {
		return businessError("invalid OTP")
	}
	return nil
}

func (c *GraphQLClient) VerifyEmailUpdateOTP(ctx context.Context, email, otp string) error {
	var out struct {
		VerifyEmailUpdateOtp *struct {
			Email string `json:"email"`
		} `json:"verifyEmailUpdateOtp"`
	}
	vars := map[string]any{"email": email, "otp": otp}
	if err := c.do(ctx, "verifyEmailUpdateOtp", mVerifyEmailUpdateOtp, vars, &out); err != nil {
		return err
	}
	if out.VerifyEmailUpdateOtp == nil {
		return businessError("invalid OTP")
	}
	return nil
}

func (c *GraphQLClient) ResendEmailOTP(ctx context.Context, email string) error {
	return c.ackOp(ctx, "resendEmailOTP", mResendEmailOtp, map[string]any{"email": email})
}

func (c *GraphQLClient) InitiateResetPassword(ctx context.Context, email string) error {
	return c.ackOp(ctx, "initiateResetPassword", mInitiateResetPassword, map[string]any{"email": email})
}

func (c *GraphQLClient) VerifyPasswordResetOTP(ctx context.Context, email, otp string) error {
	vars := map[string]any{"email": email, "otp": otp}
	return c.ackOp(ctx, "verifyPasswordResetOtp", mVerifyPasswordResetOtp, vars)
}

func (c *GraphQLClient) ResetPassword(ctx context.Context, email, newPassword string) error {
	vars := map[string]any{"email": email, "newPassword": newPassword}
	return c.ackOp(ctx, "resetPassword", mResetPassword, vars)
}

func (c *GraphQLClient) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	vars := map[string]any{"oldPassword": oldPassword, "newPassword": newPassword}
	return c.ackOp(ctx, "changePassword", mChangePassword, vars)
}

func (c *GraphQLClient) UpdateProfile(ctx context.Context, input models.ProfileInput) error {
	var out struct {
		UpdateUserProfile *models.ProfileInput `json:"updateUserProfile"`
	}
	vars := map[string]any{"input": input}
	if err := c.do(ctx, "updateUserProfile", mUpdateUserProfile, vars, &out); err != nil {
		return err
	}
	if out.UpdateUserProfile == nil {
		return businessError("no changes detected")
	}
	return nil
}

func (c *GraphQLClient) UpdateEmail(ctx context.Context, newEmail string) error {
	var out struct {
		UpdateUserEmail *struct {
			Email string `json:"email"`
		} `json:"updateUserEmail"`
	}
	vars := map[string]any{"input": map[string]any{"email": newEmail}}
	if err := c.do(ctx, "updateUserEmail", mUpdateUserEmail, vars, &out); err != nil {
		return err
	}
	if out.UpdateUserEmail == nil {
		return businessError("email update rejected")
	}
	return nil
}

func (c *GraphQLClient) AllProducts(ctx context.Context, limit, skip int) (*models.ProductPage, error) {
	var out struct {
		GetAllProducts *models.ProductPage `json:"getAllProducts"`
	}
	vars := map[string]any{"limit": limit, "skip": skip}
	if err := c.do(ctx, "getAllProducts", qGetAllProducts, vars, &out); err != nil {
		return nil, err
	}
	if out.GetAllProducts == nil {
		return &models.ProductPage{}, nil
	}
	return out.GetAllProducts, nil
}

func (c *GraphQLClient) SearchProducts(ctx context.Context, query string, limit, skip int) (*models.ProductPage, error) {
	var out struct {
		SearchProducts *models.ProductPage `json:"searchProducts"`
	}
	vars := map[string]any{"query": query, "limit": limit, "skip": skip}
	if err := c.do(ctx, "searchProducts", qSearchProducts, vars, &out); err != nil {
		return nil, err
	}
	if out.SearchProducts == nil {
		return &models.ProductPage{}, nil
	}
	return out.SearchProducts, nil
}

func (c *GraphQLClient) ProductByID(ctx context.Context, id int) (*models.Product, error) {
	var out struct {
		GetProductById *models.Product `json:"getProductById"`
	}
	if err := c.do(ctx, "getProductById", qGetProductById, map[string]any{"id": id}, &out); err != nil {
		return nil, err
	}
	if out.GetProductById == nil {
		return nil, businessError("product not found")
	}
	return out.GetProductById, nil
}

func (c *GraphQLClient) ProductsByIDs(ctx context.Context, ids []int) ([]models.Product, error) {
	var out struct {
		GetProductsByIds []models.Product `json:"getProductsByIds"`
	}
	if err := c.do(ctx, "getProductsByIds", qGetProductsByIds, map[string]any{"ids": ids}, &out); err != nil {
		return nil, err
	}
	return out.GetProductsByIds, nil
}

func (c *GraphQLClient) AllCategories(ctx context.Context) ([]models.Category, error) {
	var out struct {
		GetAllCategory []models.Category `json:"getAllCategory"`
	}
	if err := c.do(ctx, "getAllCategory", qGetAllCategory, nil, &out); err != nil {
		return nil, err
	}
	return out.GetAllCategory, nil
}

func (c *GraphQLClient) AllBanners(ctx context.Context) ([]models.Banner, error) {
	var out struct {
		GetAllBanner []models.Banner `json:"getAllBanner"`
	}
	if err := c.do(ctx, "getAllBanner", qGetAllBanner, nil, &out); err != nil {
		return nil, err
	}
	return out.GetAllBanner, nil
}

func (c *GraphQLClient) UserCart(ctx context.Context) (*models.Cart, error) {
	var out struct {
		GetUserCart *models.Cart `json:"getUserCart"`
	}
	if err := c.do(ctx, "getUserCart", qGetUserCart, nil, &out); err != nil {
		return nil, err
	}
	if out.GetUserCart == nil {
		return &models.Cart{}, nil
	}
	return out.GetUserCart, nil
}

func (c *GraphQLClient) CartCount(ctx context.Context) (int, error) {
	var out struct {
		GetUserCart *struct {
			TotalItems int `json:"totalItems"`
		} `json:"getUserCart"`
	}
	if err := c.do(ctx, "getUserCart", qGetUserCartCount, nil, &out); err != nil {
		return 0, err
	}
	if out.GetUserCart == nil {
		return 0, nil
	}
	return out.GetUserCart.TotalItems, nil
}

func (c *GraphQLClient) AddToCart(ctx context.Context, productID, quantity int) error {
	vars := map[string]any{"input": map[string]any{"productId": productID, "quantity": quantity}}
	return c.ackOp(ctx, "addToCart", mAddToCart, vars)
}

func (c *GraphQLClient) UpdateCartQuantity(ctx context.Context, productID, quantity int) error {
	vars := map[string]any{"productId": productID, "quantity": quantity}
	return c.ackOp(ctx, "updateUserCart", mUpdateUserCart, vars)
}

func (c *GraphQLClient) RemoveCartItem(ctx context.Context, productID int) error {
	return c.ackOp(ctx, "removeCartItem", mRemoveCartItem, map[string]any{"productId": productID})
}

func (c *GraphQLClient) ClearCart(ctx context.Context) error {
	return c.ackOp(ctx, "clearCartItems", mClearCartItems, nil)
}

func (c *GraphQLClient) PlaceOrder(ctx context.Context, input models.PlaceOrderInput) error {
	return c.ackOp(ctx, "placeOrder", mPlaceOrder, map[string]any{"input": input})
}

func (c *GraphQLClient) PlaceOrderFromCart(ctx context.Context, method models.PaymentMethod, addr models.ShippingAddress) error {
	vars := map[string]any{"paymentMethod": method, "shippingAddress": addr}
	return c.ackOp(ctx, "placeOrderFromCart", mPlaceOrderFromCart, vars)
}

func (c *GraphQLClient) VerifyOrderOTP(ctx context.Context, email, otp string) error {
	vars := map[string]any{"email": email, "otp": otp}
	return c.ackOp(ctx, "verifyOrderOtp", mVerifyOrderOtp, vars)
}

func (c *GraphQLClient) UserOrders(ctx context.Context) ([]models.Order, error) {
	var out struct {
		GetAllUserOrder []models.Order `json:"getAllUserOrder"`
	}
	if err := c.do(ctx, "getAllUserOrder", qGetAllUserOrder, nil, &out); err != nil {
		return nil, err
	}
	return out.GetAllUserOrder, nil
}

func (c *GraphQLClient) OrderByID(ctx context.Context, orderID string) (*models.Order, error) {
	var out struct {
		GetOrderById *models.Order `json:"getOrderById"`
	}
	if err := c.do(ctx, "getOrderById", qGetOrderById, map[string]any{"orderId": orderID}, &out); err != nil {
		return nil, err
	}
	if out.GetOrderById == nil {
		return nil, businessError("order not found")
	}
	return out.GetOrderById, nil
}

func (c *GraphQLClient) CancelOrder(ctx context.Context, orderID, reason string) error {
	vars := map[string]any{"orderId": orderID, "reason": reason}
	return c.ackOp(ctx, "cancelOrder", mCancelOrder, vars)
}

func (c *GraphQLClient) ReturnOrder(ctx context.Context, orderID, reason string) error {
	vars := map[string]any{"orderId": orderID, "reason": reason}
	return c.ackOp(ctx, "returnOrder", mReturnOrder, vars)
}

func (c *GraphQLClient) AllOrdersAdmin(ctx context.Context, limit, skip int) ([]models.Order, error) {
	var out struct {
		GetAllOrdersAdmin []models.Order `json:"getAllOrdersAdmin"`
	}
	vars := map[string]any{"limit": limit, "skip": skip}
	if err := c.do(ctx, "getAllOrdersAdmin", qGetAllOrdersAdmin, vars, &out); err != nil {
		return nil, err
	}
	return out.GetAllOrdersAdmin, nil
}

func (c *GraphQLClient) OrdersByStatusAdmin(ctx context.Context, status models.OrderStatus) ([]models.Order, error) {
	var out struct {
		GetAllOrderByStatusAdmin []models.Order `json:"getAllOrderByStatusAdmin"`
	}
	vars := map[string]any{"status": string(status)}
	if err := c.do(ctx, "getAllOrderByStatusAdmin", qGetAllOrderByStatusAdmin, vars, &out); err != nil {
		return nil, err
	}
	return out.GetAllOrderByStatusAdmin, nil
}

func (c *GraphQLClient) UpdateOrderStatus(ctx context.Context, orderID string, newStatus models.OrderStatus) error {
	vars := map[string]any{"orderId": orderID, "newStatus": string(newStatus)}
	return c.ackOp(ctx, "updateUserOrderStatus", mUpdateUserOrderStatus, vars)
}

func (c *GraphQLClient) InitiateRefund(ctx context.Context, orderID string) error {
	return c.ackOp(ctx, "initiateRefundOrder", mInitiateRefundOrder, map[string]any{"orderId": orderID})
}

func (c *GraphQLClient) ConfirmRefund(ctx context.Context, orderID string) error {
	return c.ackOp(ctx, "confirmRefundOrder", mConfirmRefundOrder, map[string]any{"orderId": orderID})
}

func (c *GraphQLClient) AddProduct(ctx context.Context, p models.Product) error {
	return c.ackOp(ctx, "addProduct", mAddProduct, map[string]any{"input": p})
}

func (c *GraphQLClient) UpdateProduct(ctx context.Context, id int, p models.Product) error {
	return c.ackOp(ctx, "updateProduct", mUpdateProduct, map[string]any{"id": id, "input": p})
}

func (c *GraphQLClient) RemoveProduct(ctx context.Context, id int) error {
	return c.ackOp(ctx, "removeProduct", mRemoveProduct, map[string]any{"removeProductId": id})
}

func (c *GraphQLClient) AddCategory(ctx context.Context, cat models.Category) error {
	return c.ackOp(ctx, "addCategory", mAddCategory, map[string]any{"categoryInput": cat})
}

func (c *GraphQLClient) UpdateCategory(ctx context.Context, slug string, cat models.Category) error {
	return c.ackOp(ctx, "updateCategory", mUpdateCategory, map[string]any{"slug": slug, "categoryInput": cat})
}

func (c *GraphQLClient) RemoveCategory(ctx context.Context, slug string) error {
	return c.ackOp(ctx, "removeCategory", mRemoveCategory, map[string]any{"slug": slug})
}

func (c *GraphQLClient) AddBanner(ctx context.Context, b models.Banner) error {
	vars := map[string]any{"title": b.Title, "imageUrl": b.Image}
	return c.ackOp(ctx, "addBanner", mAddBanner, vars)
}

func (c *GraphQLClient) UpdateBanner(ctx context.Context, b models.Banner) error {
	vars := map[string]any{"id": b.ID, "title": b.Title, "imageUrl": b.Image, "isActive": b.IsActive}
	return c.ackOp(ctx, "updateBanner", mUpdateBanner, vars)
}

func (c *GraphQLClient) DeleteBanner(ctx context.Context, id string) error {
	return c.ackOp(ctx, "deleteBanner", mDeleteBanner, map[string]any{"id": id})
}

func (c *GraphQLClient) AllUsersAdmin(ctx context.Context) ([]models.User, error) {
	var out struct {
		GetUsers []models.User `json:"getUsers"`
	}
	if err := c.do(ctx, "getUsers", qGetUsersAdmin, nil, &out); err != nil {
		return nil, err
	}
	return out.GetUsers, nil
}

func (c *GraphQLClient) SetUserBanned(ctx context.Context, userID string, banned bool) error {
	vars := map[string]any{"userId": userID, "banned": banned}
	return c.ackOp(ctx, "banUser", mBanUser, vars)
}

func (c *GraphQLClient) SetUserActive(ctx context.Context, userID string, active bool) error {
	vars := map[string]any{"userId": userID, "active": active}
	return c.ackOp(ctx, "setUserActive", mSetUserActive, vars)
}
