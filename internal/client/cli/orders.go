package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/novakart/storefront/internal/client/models"
)

// Orders prints the order history.
func (a *App) Orders(ctx context.Context) error {
	orders, err := a.orders.List(ctx, false)
	if err != nil {
		log.Printf("Order fetch failed: %s", err.Error())
		return err
	}
	if len(orders) == 0 {
		fmt.Println("No orders yet.")
		return nil
	}
	for _, o := range orders {
		fmt.Printf("%-26s  %-16s  $%.2f  %s\n", o.ID, o.OrderStatus, o.TotalAmount, o.PaymentMethod)
	}
	return nil
}

// ShowOrder prints one order with its tracking timeline and the actions
// currently available for it.
func (a *App) ShowOrder(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Order id", os.Stdout)
	if err != nil {
		return err
	}
	o, err := a.orders.Get(ctx, id)
	if err != nil {
		log.Printf("Order fetch failed: %s", err.Error())
		return err
	}
	if o == nil {
		fmt.Println("No such order.")
		return nil
	}

	fmt.Printf("Order %s — %s, paid by %s (%s)\n", o.ID, o.OrderStatus, o.PaymentMethod, o.PaymentStatus)
	for _, l := range o.Products {
		fmt.Printf("  %-30s  $%.2f x%d\n", l.Title, l.PriceAtPurchase, l.Quantity)
		if l.Returnable(o.OrderStatus, time.Now()) {
			fmt.Printf("    returnable until %s\n", l.ReturnExpiresAt.Format("2006-01-02"))
		}
	}
	fmt.Printf("Total: $%.2f\n", o.TotalAmount)

	if o.OrderStatus.Trackable() {
		printTimeline(o.OrderStatus)
	}
	if o.OrderStatus.Cancellable() {
		fmt.Println("This order can still be cancelled ('cancel').")
	}
	if o.ReturnEligible(time.Now()) {
		fmt.Println("This order can be returned ('return').")
	}
	return nil
}

// printTimeline renders the forward delivery path with the current stage
// marked.
func printTimeline(current models.OrderStatus) {
	stages := []models.OrderStatus{
		models.StatusProcessing, models.StatusPacked,
		models.StatusShipped, models.StatusOutForDelivery, models.StatusDelivered,
	}
	reached := true
	for _, st := range stages {
		mark := " "
		if reached {
			mark = "x"
		}
		fmt.Printf("  [%s] %s\n", mark, st)
		if st == current {
			reached = false
		}
	}
}

// CancelOrder cancels a not-yet-shipped order.
func (a *App) CancelOrder(ctx context.Context) error {
	return a.orderAction(ctx, "cancel", a.orders.Cancel)
}

// ReturnOrder requests a return for a delivered order.
func (a *App) ReturnOrder(ctx context.Context) error {
	return a.orderAction(ctx, "return", a.orders.Return)
}

func (a *App) orderAction(ctx context.Context, verb string, action func(context.Context, *models.Order, string) error) error {
	id, err := getSimpleText(a.reader, "Order id", os.Stdout)
	if err != nil {
		return err
	}
	o, err := a.orders.Get(ctx, id)
	if err != nil {
		log.Printf("Order fetch failed: %s", err.Error())
		return err
	}
	if o == nil {
		fmt.Println("No such order.")
		return nil
	}
	reason, err := getSimpleText(a.reader, "Reason", os.Stdout)
	if err != nil {
		return err
	}
	if err := action(ctx, o, reason); err != nil {
		log.Printf("Could not %s order: %s", verb, err.Error())
		return err
	}
	fmt.Println("Done.")
	return nil
}
