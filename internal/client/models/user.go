// Package models holds the storefront domain types exchanged with the
// GraphQL API, plus the pure derivations (order permissions, cart merge)
// that the view layer and the services share.
package models

import "time"

const RoleAdmin = "admin"

// Number of order references kept in the profile history, newest first.
type OrderRef struct {
	OrderID  string    `json:"orderId"`
	PlacedAt time.Time `json:"placedAt"`
}

// User is the server-side account profile. The client holds a serialized
// copy of it in the state store and refreshes it after any mutation that
// could change it.
type User struct {
	ID            string     `json:"userId"`
	Name          string     `json:"name"`
	Username      string     `json:"username"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone"`
	Address       string     `json:"address"`
	City          string     `json:"city"`
	State         string     `json:"state"`
	Country       string     `json:"country"`
	ZipCode       string     `json:"zipCode"`
	Role          string     `json:"role"`
	EmailVerified bool       `json:"emailVerified"`
	IsActive      bool       `json:"isActive"`
	IsBanned      bool       `json:"isBanned"`
	OrderHistory  []OrderRef `json:"userOrderHistory"`
	CreatedAt     string     `json:"createdAt"`
	UpdatedAt     string     `json:"updatedAt"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// InGoodStanding reports whether the account may perform sensitive
// operations. The status guard forces a logout when this is false.
func (u *User) InGoodStanding() bool {
	return u != nil && u.IsActive && !u.IsBanned
}

// SignupInput carries the multi-step signup form fields.
type SignupInput struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	Country  string `json:"country"`
	ZipCode  string `json:"zipCode"`
}

// ProfileInput carries the editable profile fields.
type ProfileInput struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	ZipCode string `json:"zipCode"`
}

// AuthResult is the login payload: a bearer token plus the minimal
// identity needed before the first getCurrentUser round trip.
type AuthResult struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Token    string `json:"token"`
}
