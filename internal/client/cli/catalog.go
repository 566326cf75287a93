package cli

import (
	"context"
	"fmt"
	"log"
	"os"
)

// Browse pages through the full catalog.
func (a *App) Browse(ctx context.Context) error {
	page, err := getInt(a.reader, "Page number", os.Stdout)
	if err != nil {
		return err
	}
	return a.showPage(ctx, "", page)
}

// Search pages through full-text search results.
func (a *App) Search(ctx context.Context) error {
	query, err := getSimpleText(a.reader, "Search for", os.Stdout)
	if err != nil {
		return err
	}
	return a.showPage(ctx, query, 1)
}

func (a *App) showPage(ctx context.Context, query string, page int) error {
	res, err := a.catalog.Page(ctx, query, page)
	if err != nil {
		log.Printf("Catalog fetch failed: %s", err.Error())
		return err
	}
	if len(res.Products) == 0 {
		fmt.Println("No products found.")
		return nil
	}
	for _, p := range res.Products {
		fmt.Printf("%5d  %-40s  $%.2f  %s\n", p.ID, p.Title, p.Price, p.AvailabilityStatus)
	}
	fmt.Printf("Showing %d of %d\n", res.Skip+len(res.Products), res.Total)
	return nil
}

// ShowProduct prints one product in full.
func (a *App) ShowProduct(ctx context.Context) error {
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
	fmt.Printf("%s\n%s\n", p.Title, p.Description)
	fmt.Printf("Price: $%.2f  Rating: %.1f  Stock: %d\n", p.Price, p.Rating, p.Stock)
	fmt.Printf("Brand: %s  Category: %s\n", p.Brand, p.Category)
	fmt.Printf("Returns: %s\n", p.ReturnPolicy)
	return nil
}

// Categories lists the category tree alongside active banners.
func (a *App) Categories(ctx context.Context) error {
	cats, err := a.catalog.Categories(ctx)
	if err != nil {
		log.Printf("Category fetch failed: %s", err.Error())
		return err
	}
	for _, c := range cats {
		fmt.Printf("%-24s %s\n", c.Slug, c.Name)
	}

	banners, err := a.catalog.Banners(ctx)
	if err != nil {
		return err
	}
	for _, b := range banners {
		if b.IsActive {
			fmt.Printf("[banner] %s (%s)\n", b.Title, b.Link)
		}
	}
	return nil
}
