package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/novakart/storefront/internal/client/models"
	"github.com/novakart/storefront/internal/client/services"
)

func (a *App) promptAddress() (models.ShippingAddress, error) {
	var addr models.ShippingAddress
	var err error

	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Recipient name", &addr.Name},
		{"Contact email", &addr.Email},
		{"Contact phone", &addr.Phone},
		{"Street address", &addr.Address},
		{"City", &addr.City},
		{"State", &addr.State},
		{"Zip code", &addr.ZipCode},
		{"Country", &addr.Country},
	}
	for _, f := range fields {
		if *f.dst, err = getSimpleText(a.reader, f.prompt, os.Stdout); err != nil {
			return addr, err
		}
	}
	return addr, nil
}

func (a *App) promptPayment() (models.PaymentDetails, error) {
	var p models.PaymentDetails

	method, err := getSimpleText(a.reader, "Payment method (Cash_on_Delivery, Card, UPI, NetBanking)", os.Stdout)
	if err != nil {
		return p, err
	}
	p.Method = models.PaymentMethod(method)

	switch p.Method {
	case models.PaymentCard:
		if p.CardNumber, err = getSimpleText(a.reader, "Card number", os.Stdout); err != nil {
			return p, err
		}
		if p.CardExpiry, err = getSimpleText(a.reader, "Expiry (MM/YY)", os.Stdout); err != nil {
			return p, err
		}
		if p.CardCVV, err = getSimpleText(a.reader, "CVV", os.Stdout); err != nil {
			return p, err
		}
	case models.PaymentUPI:
		if p.UPIID, err = getSimpleText(a.reader, "UPI id", os.Stdout); err != nil {
			return p, err
		}
	case models.PaymentNetBanking:
		if p.BankName, err = getSimpleText(a.reader, "Bank name", os.Stdout); err != nil {
			return p, err
		}
		if p.AccountNumber, err = getSimpleText(a.reader, "Account number", os.Stdout); err != nil {
			return p, err
		}
	}
	return p, nil
}

// Checkout places an order for the whole cart.
func (a *App) Checkout(ctx context.Context) error {
	lines, total, err := a.cart.Load(ctx)
	if err != nil {
		log.Printf("Cart fetch failed: %s", err.Error())
		return err
	}
	if len(lines) == 0 {
		fmt.Println("Your cart is empty.")
		return nil
	}
	fmt.Printf("Order total: $%.2f\n", total)

	addr, err := a.promptAddress()
	if err != nil {
		return err
	}
	payment, err := a.promptPayment()
	if err != nil {
		return err
	}

	flow, err := a.checkout.CheckoutCart(ctx, lines, addr, payment)
	if err != nil {
		return a.reportCheckoutError(err)
	}
	fmt.Println("Order placed. A confirmation code was sent to your email.")
	return a.runVerification(ctx, flow)
}

// BuyNow orders a single product directly.
func (a *App) BuyNow(ctx context.Context) error {
	id, err := getInt(a.reader, "Product id", os.Stdout)
	if err != nil {
		return err
	}
	p, err := a.catalog.Product(ctx, id)
	if err != nil {
		log.Printf("Product fetch failed: %s", err.Error())
		return err
	}
	if p == nil {
		fmt.Println("No such product.")
		return nil
	}
	qty, err := getInt(a.reader, "Quantity", os.Stdout)
	if err != nil {
		return err
	}

	addr, err := a.promptAddress()
	if err != nil {
		return err
	}
	payment, err := a.promptPayment()
	if err != nil {
		return err
	}

	flow, err := a.checkout.BuyNow(ctx, *p, qty, addr, payment)
	if err != nil {
		return a.reportCheckoutError(err)
	}
	fmt.Println("Order placed. A confirmation code was sent to your email.")
	return a.runVerification(ctx, flow)
}

// VerifyOrder resumes a pending order confirmation, e.g. after the CLI
// was restarted mid-flow.
func (a *App) VerifyOrder(ctx context.Context) error {
	flow := a.checkout.VerificationFlow()
	if _, err := flow.Resume(ctx); err != nil {
		if errors.Is(err, services.ErrNoActiveFlow) {
			fmt.Println("No order awaiting confirmation.")
			return nil
		}
		return err
	}
	return a.runVerification(ctx, flow)
}

func (a *App) reportCheckoutError(err error) error {
	switch {
	case errors.Is(err, services.ErrEmailUnverified):
		fmt.Println("Please verify your email first (see 'changeemail' or your signup code).")
	case errors.Is(err, services.ErrPaymentIncomplete):
		fmt.Println("Payment details are incomplete.")
	case errors.Is(err, services.ErrEmptyCheckout):
		fmt.Println("Nothing to order.")
	case errors.Is(err, services.ErrActionDenied):
		fmt.Println("Your account cannot place orders right now.")
	default:
		log.Printf("Checkout failed: %s", err.Error())
	}
	return err
}
