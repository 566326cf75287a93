package api

// GraphQL operation documents, one per server operation the client
// consumes. Field sets mirror what the views actually render.

const productFields = `
      id
      title
      description
      category
      brand
      price
      rating
      stock
      thumbnail
      images
      returnPolicy
      availabilityStatus`

const orderFields = `
      id
      products {
        externalProductId
        title
        thumbnail
        priceAtPurchase
        quantity
        returnPolicy
        returnExpiresAt
      }
      orderStatus
      paymentMethod
      paymentStatus
      totalAmount
      deliveredAt`

const userFields = `
      userId
      name
      username
      email
      phone
      address
      city
      state
      country
      zipCode
      role
      emailVerified
      isActive
      isBanned
      userOrderHistory {
        orderId
        placedAt
      }
      createdAt
      updatedAt`

const (
	qGetCurrentUser = `query GetCurrentUser {
  getCurrentUser {` + userFields + `
  }
}`

	mLogin = `mutation Login($loginIdentifier: String!, $password: String!) {
  login(loginIdentifier: $loginIdentifier, password: $password) {
    id
    username
    email
    role
    token
  }
}`

	mSignup = `mutation SignUp($input: SignupInput!) {
  signup(input: $input) {
    success
    message
  }
}`

	mVerifyEmailOtp = `mutation VerifyEmail($email: String!, $otp: String!) {
  verifyEmailOtp(email: $email, otp: $otp) {
    name
    username
    email
  }
}`

	mVerifyEmailUpdateOtp = `mutation VerifyEmailUpdate($email: String!, $otp: String!) {
  verifyEmailUpdateOtp(email: $email, otp: $otp) {
    email
  }
}`

	mResendEmailOtp = `mutation ResendEmailOTP($email: String!) {
  resendEmailOTP(email: $email) {
    success
    message
  }
}`

	mInitiateResetPassword = `mutation InitiateResetPassword($email: String!) {
  initiateResetPassword(email: $email) {
    success
    message
  }
}`

	mVerifyPasswordResetOtp = `mutation VerifyPasswordResetOtp($email: String!, $otp: String!) {
  verifyPasswordResetOtp(email: $email, otp: $otp) {
    success
    message
  }
}`

	mResetPassword = `mutation ResetPassword($email: String!, $newPassword: String!) {
  resetPassword(email: $email, newPassword: $newPassword) {
    success
    message
  }
}`

	mUpdateUserProfile = `mutation UpdateUserProfile($input: UpdateUserProfileInput!) {
  updateUserProfile(input: $input) {
    name
    username
    address
    phone
    country
    state
    city
    zipCode
  }
}`

	mUpdateUserEmail = `mutation UpdateUserEmail($input: UpdateUserEmailInput!) {
  updateUserEmail(input: $input) {
    email
  }
}`

	mChangePassword = `mutation ChangePassword($oldPassword: String!, $newPassword: String!) {
  changePassword(oldPassword: $oldPassword, newPassword: $newPassword) {
    success
    message
  }
}`

	qGetAllProducts = `query GetAllProducts($limit: Int, $skip: Int) {
  getAllProducts(limit: $limit, skip: $skip) {
    products {` + productFields + `
    }
    total
    limit
    skip
  }
}`

	qSearchProducts = `query SearchProducts($query: String!, $limit: Int, $skip: Int) {
  searchProducts(query: $query, limit: $limit, skip: $skip) {
    products {` + productFields + `
    }
    total
    limit
    skip
  }
}`

	qGetProductById = `query GetProductById($id: Int!) {
  getProductById(id: $id) {` + productFields + `
  }
}`

	qGetProductsByIds = `query GetProductsByIds($ids: [Int!]!) {
  getProductsByIds(ids: $ids) {` + productFields + `
  }
}`

	qGetUserCart = `query GetUserCart {
  getUserCart {
    id
    userId
    products {
      productId
      quantity
    }
    totalItems
  }
}`

	qGetUserCartCount = `query GetUserCart {
  getUserCart {
    totalItems
  }
}`

	mAddToCart = `mutation AddToCart($input: AddToCartInput!) {
  addToCart(input: $input) {
    success
    message
  }
}`

	mUpdateUserCart = `mutation UpdateUserCart($productId: Int!, $quantity: Int!) {
  updateUserCart(productId: $productId, quantity: $quantity) {
    success
    message
  }
}`

	mRemoveCartItem = `mutation RemoveCartItem($productId: Int!) {
  removeCartItem(productId: $productId) {
    success
    message
  }
}`

	mClearCartItems = `mutation ClearCartItems {
  clearCartItems {
    success
    message
  }
}`

	mPlaceOrder = `mutation PlaceOrder($input: PlaceOrderInput!) {
  placeOrder(input: $input) {
    success
    message
  }
}`

	mPlaceOrderFromCart = `mutation PlaceOrderFromCart($paymentMethod: PaymentMethod!, $shippingAddress: ShippingAddressInput!) {
  placeOrderFromCart(paymentMethod: $paymentMethod, shippingAddress: $shippingAddress) {
    success
    message
  }
}`

	mVerifyOrderOtp = `mutation VerifyOrderOtp($email: String!, $otp: String!) {
  verifyOrderOtp(email: $email, otp: $otp) {
    success
    message
  }
}`

	qGetAllUserOrder = `query GetAllUserOrder {
  getAllUserOrder {` + orderFields + `
  }
}`

	qGetOrderById = `query GetOrderById($orderId: String!) {
  getOrderById(orderId: $orderId) {` + orderFields + `
  }
}`

	mCancelOrder = `mutation CancelOrder($orderId: String!, $reason: String!) {
  cancelOrder(orderId: $orderId, reason: $reason) {
    success
    message
  }
}`

	mReturnOrder = `mutation ReturnOrder($orderId: String!, $reason: String!) {
  returnOrder(orderId: $orderId, reason: $reason) {
    success
    message
  }
}`

	qGetAllOrdersAdmin = `query GetAllOrdersAdmin($limit: Int, $skip: Int) {
  getAllOrdersAdmin(limit: $limit, skip: $skip) {
      userId` + orderFields + `
  }
}`

	qGetAllOrderByStatusAdmin = `query GetAllOrderByStatusAdmin($status: String!) {
  getAllOrderByStatusAdmin(status: $status) {
      userId` + orderFields + `
  }
}`

	mUpdateUserOrderStatus = `mutation UpdateUserOrderStatus($orderId: String!, $newStatus: String!) {
  updateUserOrderStatus(orderId: $orderId, newStatus: $newStatus) {
    success
    message
  }
}`

	mInitiateRefundOrder = `mutation InitiateRefundOrder($orderId: String!) {
  initiateRefundOrder(orderId: $orderId) {
    success
    message
  }
}`

	mConfirmRefundOrder = `mutation ConfirmRefundOrder($orderId: String!) {
  confirmRefundOrder(orderId: $orderId) {
    success
    message
  }
}`

	qGetAllCategory = `query GetAllCategory {
  getAllCategory {
    id
    name
    slug
    image
  }
}`

	mAddCategory = `mutation AddCategory($categoryInput: CategoryInput!) {
  addCategory(categoryInput: $categoryInput) {
    success
    message
  }
}`

	mUpdateCategory = `mutation UpdateCategory($slug: String!, $categoryInput: UpdateCategoryInput!) {
  updateCategory(slug: $slug, categoryInput: $categoryInput) {
    success
    message
  }
}`

	mRemoveCategory = `mutation RemoveCategory($slug: String!) {
  removeCategory(slug: $slug) {
    success
    message
  }
}`

	mAddProduct = `mutation AddProduct($input: AddProductInput!) {
  addProduct(input: $input) {
    success
    message
  }
}`

	mUpdateProduct = `mutation UpdateProduct($id: Int!, $input: UpdateProductInput!) {
  updateProduct(id: $id, input: $input) {
    success
    message
  }
}`

	mRemoveProduct = `mutation RemoveProduct($removeProductId: Int!) {
  removeProduct(id: $removeProductId) {
    success
    message
  }
}`

	qGetAllBanner = `query GetAllBanner {
  getAllBanner {
    id
    title
    image
    link
    isActive
  }
}`

	mAddBanner = `mutation AddBanner($title: String, $description: String, $imageUrl: String!) {
  addBanner(title: $title, description: $description, imageUrl: $imageUrl) {
    success
    message
  }
}`

	mUpdateBanner = `mutation UpdateBanner($id: ID!, $title: String, $imageUrl: String, $isActive: Boolean) {
  updateBanner(id: $id, title: $title, imageUrl: $imageUrl, isActive: $isActive) {
    success
    message
  }
}`

	mDeleteBanner = `mutation DeleteBanner($id: ID!) {
  deleteBanner(id: $id) {
    success
    message
  }
}`

	qGetUsersAdmin = `query GetUsers {
  getUsers {` + userFields + `
  }
}`

	mBanUser = `mutation BanUser($userId: String!, $banned: Boolean!) {
  banUser(userId: $userId, banned: $banned) {
    success
    message
  }
}`

	mSetUserActive = `mutation SetUserActive($userId: String!, $active: Boolean!) {
  setUserActive(userId: $userId, active: $active) {
    success
    message
  }
}`
)
