package models

import (
	"fmt"
	"time"
)

// OrderStatus is the finite order state enumeration. Forward path:
// Processing → Packed → Shipped → Out_for_Delivery → Delivered.
// Cancelled absorbs any pre-Shipped state, Returned absorbs Delivered,
// Refunded absorbs Cancelled/Returned. The server is the authority on
// transitions; the client only derives which actions to offer.
type OrderStatus string

const (
	StatusProcessing     OrderStatus = "Processing"
	StatusPacked         OrderStatus = "Packed"
	StatusShipped        OrderStatus = "Shipped"
	StatusOutForDelivery OrderStatus = "Out_for_Delivery"
	StatusDelivered      OrderStatus = "Delivered"
	StatusCancelled      OrderStatus = "Cancelled"
	StatusReturned       OrderStatus = "Returned"
	StatusRefunded       OrderStatus = "Refunded"
)

// AllOrderStatuses lists every status in display order, for the admin
// status picker and the tracking timeline.
var AllOrderStatuses = []OrderStatus{
	StatusProcessing, StatusPacked, StatusShipped, StatusOutForDelivery,
	StatusDelivered, StatusCancelled, StatusReturned, StatusRefunded,
}

func ParseOrderStatus(s string) (OrderStatus, error) {
	for _, st := range AllOrderStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown order status %q", s)
}

// Cancellable reports whether a cancel action may be offered. Anything
// at or past Shipped, or already absorbed, cannot be cancelled.
func (s OrderStatus) Cancellable() bool {
	switch s {
	case StatusShipped, StatusOutForDelivery, StatusDelivered,
		StatusCancelled, StatusReturned, StatusRefunded:
		return false
	}
	return true
}

// Trackable reports whether the tracking timeline applies.
func (s OrderStatus) Trackable() bool {
	switch s {
	case StatusProcessing, StatusPacked, StatusShipped, StatusOutForDelivery:
		return true
	}
	return false
}

// Refundable reports whether the admin refund actions apply.
func (s OrderStatus) Refundable() bool {
	return s == StatusCancelled || s == StatusReturned
}

// PaymentMethod mirrors the server enumeration. Sub-fields for Card, UPI
// and NetBanking are collected as opaque pass-through values.
type PaymentMethod string

const (
	PaymentCashOnDelivery PaymentMethod = "Cash_on_Delivery"
	PaymentCard           PaymentMethod = "Card"
	PaymentUPI            PaymentMethod = "UPI"
	PaymentNetBanking     PaymentMethod = "NetBanking"
)

type ShippingAddress struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

// OrderLine is one line item with its price snapshot. PriceAtPurchase is
// fixed at order time; historical orders never re-price. ReturnExpiresAt
// is set once, at delivery, per line.
type OrderLine struct {
	ExternalProductID int        `json:"externalProductId"`
	Title             string     `json:"title"`
	Thumbnail         string     `json:"thumbnail"`
	PriceAtPurchase   float64    `json:"priceAtPurchase"`
	Quantity          int        `json:"quantity"`
	ReturnPolicy      string     `json:"returnPolicy"`
	ReturnExpiresAt   *time.Time `json:"returnExpiresAt,omitempty"`
}

type Order struct {
	ID            string        `json:"id"`
	UserID        string        `json:"userId,omitempty"`
	Products      []OrderLine   `json:"products"`
	OrderStatus   OrderStatus   `json:"orderStatus"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	PaymentStatus string        `json:"paymentStatus"`
	TotalAmount   float64       `json:"totalAmount"`
	DeliveredAt   *time.Time    `json:"deliveredAt,omitempty"`
}

// Returnable reports whether this line may still be returned: the order
// must be Delivered, the item must carry a real return policy, and the
// return window must not have lapsed.
func (l OrderLine) Returnable(status OrderStatus, now time.Time) bool {
	if status != StatusDelivered {
		return false
	}
	if l.ReturnPolicy == NoReturnPolicy || l.ReturnPolicy == "" {
		return false
	}
	if l.ReturnExpiresAt == nil {
		return false
	}
	return !now.After(*l.ReturnExpiresAt)
}

// ReturnEligible reports whether a return may be offered for the order
// as a whole: at least one line must be individually returnable.
func (o Order) ReturnEligible(now time.Time) bool {
	for _, l := range o.Products {
		if l.Returnable(o.OrderStatus, now) {
			return true
		}
	}
	return false
}

// PlaceOrderLine is the immutable snapshot submitted at checkout.
type PlaceOrderLine struct {
	ExternalProductID int     `json:"externalProductId"`
	Title             string  `json:"title"`
	Thumbnail         string  `json:"thumbnail"`
	PriceAtPurchase   float64 `json:"priceAtPurchase"`
	Quantity          int     `json:"quantity"`
	TotalPrice        float64 `json:"totalPrice"`
	ReturnPolicy      string  `json:"returnPolicy"`
}

type PlaceOrderInput struct {
	Products        []PlaceOrderLine `json:"products"`
	ShippingAddress ShippingAddress  `json:"shippingAddress"`
	PaymentMethod   PaymentMethod    `json:"paymentMethod"`
	TotalAmount     float64          `json:"totalAmount"`
}

// PaymentDetails carries the opaque method-specific sub-fields. Only
// presence is checked client-side; validation belongs to the gateway.
type PaymentDetails struct {
	Method        PaymentMethod
	CardNumber    string
	CardExpiry    string
	CardCVV       string
	UPIID         string
	BankName      string
	AccountNumber string
}

// Complete reports whether the sub-fields required by the chosen method
// are present.
func (p PaymentDetails) Complete() bool {
	switch p.Method {
	case PaymentCard:
		return p.CardNumber != "" && p.CardExpiry != "" && p.CardCVV != ""
	case PaymentUPI:
		return p.UPIID != ""
	case PaymentNetBanking:
		return p.BankName != "" && p.AccountNumber != ""
	case PaymentCashOnDelivery:
		return true
	}
	return false
}
