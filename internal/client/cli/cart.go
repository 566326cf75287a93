package cli

import (
	"context"
	"fmt"
	"log"
	"os"
)

// ShowCart prints the merged cart with its total.
func (a *App) ShowCart(ctx context.Context) error {
	lines, total, err := a.cart.Load(ctx)
	if err != nil {
		log.Printf("Cart fetch failed: %s", err.Error())
		return err
	}
	if len(lines) == 0 {
		fmt.Println("Your cart is empty.")
		return nil
	}
	for _, l := range lines {
		if l.Missing {
			fmt.Printf("%5d  (no longer available)           x%d\n", l.ID, l.Quantity)
			continue
		}
		fmt.Printf("%5d  %-30s  $%.2f x%d = $%.2f\n", l.ID, l.Title, l.Price, l.Quantity, l.TotalPrice)
	}
	fmt.Printf("Total: $%.2f\n", total)
	return nil
}

// AddToCart puts a product in the cart.
func (a *App) AddToCart(ctx context.Context) error {
	id, err := getInt(a.reader, "Product id", os.Stdout)
	if err != nil {
		return err
	}
	qty, err := getInt(a.reader, "Quantity", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.cart.Add(ctx, id, qty); err != nil {
		log.Printf("Add failed: %s", err.Error())
		return err
	}
	fmt.Println("Added.")
	return nil
}

// IncCart steps a line quantity up by one.
func (a *App) IncCart(ctx context.Context) error {
	return a.stepCart(ctx, +1)
}

// DecCart steps a line quantity down by one.
func (a *App) DecCart(ctx context.Context) error {
	return a.stepCart(ctx, -1)
}

func (a *App) stepCart(ctx context.Context, delta int) error {
	id, err := getInt(a.reader, "Product id", os.Stdout)
	if err != nil {
		return err
	}
	var qty int
	if delta > 0 {
		qty, err = a.cart.Increment(ctx, id)
	} else {
		qty, err = a.cart.Decrement(ctx, id)
	}
	if err != nil {
		log.Printf("Update failed: %s", err.Error())
		return err
	}
	fmt.Printf("Quantity: %d\n", qty)
	return nil
}

// RemoveFromCart drops one line.
func (a *App) RemoveFromCart(ctx context.Context) error {
	id, err := getInt(a.reader, "Product id", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.cart.Remove(ctx, id); err != nil {
		log.Printf("Remove failed: %s", err.Error())
		return err
	}
	fmt.Println("Removed.")
	return nil
}

// ClearCart empties the cart.
func (a *App) ClearCart(ctx context.Context) error {
	if err := a.cart.Clear(ctx); err != nil {
		log.Printf("Clear failed: %s", err.Error())
		return err
	}
	fmt.Println("Cart cleared.")
	return nil
}
