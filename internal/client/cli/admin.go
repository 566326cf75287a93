package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/novakart/storefront/internal/client/models"
)

// Admin runs the staff console as a nested prompt loop.
func (a *App) Admin(ctx context.Context) error {
	fmt.Println("Admin console. Commands: orders, order, setstatus, refund, confirmrefund,")
	fmt.Println("  addproduct, editproduct, delproduct, addcategory, editcategory, delcategory,")
	fmt.Println("  banners, addbanner, editbanner, delbanner, users, ban, unban,")
	fmt.Println("  deactivate, activate, back")

	for {
		line, err := getSimpleText(a.reader, "admin", os.Stdout)
		if err != nil {
			return err
		}
		switch strings.TrimSpace(line) {
		case "back", "exit":
			return nil
		case "orders":
			a.adminOrders(ctx)
		case "order":
			_ = a.ShowOrder(ctx)
		case "setstatus":
			a.adminSetStatus(ctx)
		case "refund":
			a.adminRefund(ctx)
		case "confirmrefund":
			a.adminConfirmRefund(ctx)
		case "addproduct":
			a.adminAddProduct(ctx)
		case "editproduct":
			a.adminEditProduct(ctx)
		case "delproduct":
			a.adminDelProduct(ctx)
		case "addcategory":
			a.adminAddCategory(ctx)
		case "editcategory":
			a.adminEditCategory(ctx)
		case "delcategory":
			a.adminDelCategory(ctx)
		case "banners":
			a.adminBanners(ctx)
		case "addbanner":
			a.adminAddBanner(ctx)
		case "editbanner":
			a.adminEditBanner(ctx)
		case "delbanner":
			a.adminDelBanner(ctx)
		case "users":
			a.adminUsers(ctx)
		case "ban":
			a.adminSetBanned(ctx, true)
		case "unban":
			a.adminSetBanned(ctx, false)
		case "deactivate":
			a.adminSetActive(ctx, false)
		case "activate":
			a.adminSetActive(ctx, true)
		case "":
			continue
		default:
			fmt.Println("Unknown admin command:", line)
		}
	}
}

func (a *App) adminOrders(ctx context.Context) {
	status, err := getSimpleText(a.reader, "Filter by status (empty for all)", os.Stdout)
	if err != nil {
		return
	}
	orders, err := a.admin.Orders(ctx, status, a.config.PageSize, 0)
	if err != nil {
		log.Printf("Order fetch failed: %s", err.Error())
		return
	}
	for _, o := range orders {
		refund := ""
		if o.OrderStatus.Refundable() {
			refund = "  [refundable]"
		}
		fmt.Printf("%-26s  %-16s  $%.2f%s\n", o.ID, o.OrderStatus, o.TotalAmount, refund)
	}
}

func (a *App) adminSetStatus(ctx context.Context) {
	id, err := getSimpleText(a.reader, "Order id", os.Stdout)
	if err != nil {
		return
	}
	fmt.Println("Statuses:", models.AllOrderStatuses)
	status, err := getSimpleText(a.reader, "New status", os.Stdout)
	if err != nil {
		return
	}
	if err := a.admin.SetOrderStatus(ctx, id, status); err != nil {
		log.Printf("Status update failed: %s", err.Error())
		return
	}
	fmt.Println("Updated.")
}

func (a *App) adminRefund(ctx context.Context) {
	id, err := getSimpleText(a.reader, "Order id", os.Stdout)
	if err != nil {
		return
	}
	o, err := a.admin.Order(ctx, id)
	if err != nil || o == nil {
		log.Printf("Order fetch failed")
		return
	}
	if err := a.admin.InitiateRefund(ctx, o); err != nil {
		log.Printf("Refund initiation failed: %s", err.Error())
		return
	}
	fmt.Println("Refund initiated. Use 'confirmrefund' to complete it.")
}

func (a *App) adminConfirmRefund(ctx context.Context) {
	id, err := getSimpleText(a.reader, "Order id", os.Stdout)
	if err != nil {
		return
	}
	if err := a.admin.ConfirmRefund(ctx, id); err != nil {
		log.Printf("Refund confirmation failed: %s", err.Error())
		return
	}
	fmt.Println("Refund completed.")
}

func (a *App) adminAddProduct(ctx context.Context) {
	var p models.Product
	var err error
	if p.ID, err = getInt(a.reader, "External id", os.Stdout); err != nil {
		return
	}
	if p.Title, err = getSimpleText(a.reader, "Title", os.Stdout); err != nil {
		return
	}
	if p.Category, err = getSimpleText(a.reader, "Category slug", os.Stdout); err != nil {
		return
	}
	price, err := getSimpleText(a.reader, "Price", os.Stdout)
	if err != nil {
		return
	}
	if _, err := fmt.Sscanf(price, "%f", &p.Price); err != nil {
		log.Printf("Bad price: %s", price)
		return
	}
	if p.Stock, err = getInt(a.reader, "Stock", os.Stdout); err != nil {
		return
	}
	if p.ReturnPolicy, err = getSimpleText(a.reader, "Return policy", os.Stdout); err != nil {
		return
	}
	if err := a.admin.AddProduct(ctx, p); err != nil {
		log.Printf("Add product failed: %s", err.Error())
		return
	}
	fmt.Println("Product added.")
}

// adminEditProduct edits a product in place. An empty answer keeps the
// current value.
func (a *App) adminEditProduct(ctx context.Context) {
	id, err := getInt(a.reader, "Product id", os.Stdout)
	if err != nil {
		return
	}
	p, err := a.catalog.Product(ctx, id)
	if err != nil || p == nil {
		log.Printf("Product fetch failed")
		return
	}

	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Title", &p.Title},
		{"Category slug", &p.Category},
		{"Return policy", &p.ReturnPolicy},
	}
	for _, f := range fields {
		answer, err := getSimpleText(a.reader, fmt.Sprintf("%s [%s]", f.prompt, *f.dst), os.Stdout)
		if err != nil {
			return
		}
		if answer != "" {
			*f.dst = answer
		}
	}
	price, err := getSimpleText(a.reader, fmt.Sprintf("Price [%.2f]", p.Price), os.Stdout)
	if err != nil {
		return
	}
	if price != "" {
		if _, err := fmt.Sscanf(price, "%f", &p.Price); err != nil {
			log.Printf("Bad price: %s", price)
			return
		}
	}
	stock, err := getSimpleText(a.reader, fmt.Sprintf("Stock [%d]", p.Stock), os.Stdout)
	if err != nil {
		return
	}
	if stock != "" {
		if _, err := fmt.Sscanf(stock, "%d", &p.Stock); err != nil {
			log.Printf("Bad stock: %s", stock)
			return
		}
	}

	if err := a.admin.UpdateProduct(ctx, id, *p); err != nil {
		log.Printf("Update product failed: %s", err.Error())
		return
	}
	fmt.Println("Product updated.")
}

func (a *App) adminDelProduct(ctx context.Context) {
	id, err := getInt(a.reader, "Product id", os.Stdout)
	if err != nil {
		return
	}
	if err := a.admin.RemoveProduct(ctx, id); err != nil {
		log.Printf("Remove product failed: %s", err.Error())
		return
	}
	fmt.Println("Product removed.")
}

func (a *App) adminAddCategory(ctx context.Context) {
	var c models.Category
	var err error
	if c.Name, err = getSimpleText(a.reader, "Name", os.Stdout); err != nil {
		return
	}
	if c.Slug, err = getSimpleText(a.reader, "Slug", os.Stdout); err != nil {
		return
	}
	if err := a.admin.AddCategory(ctx, c); err != nil {
		log.Printf("Add category failed: %s", err.Error())
		return
	}
	fmt.Println("Category added.")
}

func (a *App) adminEditCategory(ctx context.Context) {
	slug, err := getSimpleText(a.reader, "Slug", os.Stdout)
	if err != nil {
		return
	}
	var c models.Category
	if c.Name, err = getSimpleText(a.reader, "New name", os.Stdout); err != nil {
		return
	}
	if c.Slug, err = getSimpleText(a.reader, "New slug", os.Stdout); err != nil {
		return
	}
	if c.Image, err = getSimpleText(a.reader, "Image URL", os.Stdout); err != nil {
		return
	}
	if err := a.admin.UpdateCategory(ctx, slug, c); err != nil {
		log.Printf("Update category failed: %s", err.Error())
		return
	}
	fmt.Println("Category updated.")
}

func (a *App) adminDelCategory(ctx context.Context) {
	slug, err := getSimpleText(a.reader, "Slug", os.Stdout)
	if err != nil {
		return
	}
	if err := a.admin.RemoveCategory(ctx, slug); err != nil {
		log.Printf("Remove category failed: %s", err.Error())
		return
	}
	fmt.Println("Category removed.")
}

func (a *App) adminBanners(ctx context.Context) {
	banners, err := a.catalog.Banners(ctx)
	if err != nil {
		log.Printf("Banner fetch failed: %s", err.Error())
		return
	}
	for _, b := range banners {
		state := "inactive"
		if b.IsActive {
			state = "active"
		}
		fmt.Printf("%-26s  %-30s  %s\n", b.ID, b.Title, state)
	}
}

func (a *App) adminAddBanner(ctx context.Context) {
	var b models.Banner
	var err error
	if b.Title, err = getSimpleText(a.reader, "Title", os.Stdout); err != nil {
		return
	}
	if b.Image, err = getSimpleText(a.reader, "Image URL", os.Stdout); err != nil {
		return
	}
	if b.Link, err = getSimpleText(a.reader, "Link", os.Stdout); err != nil {
		return
	}
	active, err := getSimpleText(a.reader, "Active? (y/n)", os.Stdout)
	if err != nil {
		return
	}
	b.IsActive = active == "y"
	if err := a.admin.AddBanner(ctx, b); err != nil {
		log.Printf("Add banner failed: %s", err.Error())
		return
	}
	fmt.Println("Banner added.")
}

// adminEditBanner edits a banner in place. An empty answer keeps the
// current value.
func (a *App) adminEditBanner(ctx context.Context) {
	id, err := getSimpleText(a.reader, "Banner id", os.Stdout)
	if err != nil {
		return
	}
	banners, err := a.catalog.Banners(ctx)
	if err != nil {
		log.Printf("Banner fetch failed: %s", err.Error())
		return
	}
	var b *models.Banner
	for i := range banners {
		if banners[i].ID == id {
			b = &banners[i]
			break
		}
	}
	if b == nil {
		log.Printf("No banner with id %s", id)
		return
	}

	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Title", &b.Title},
		{"Image URL", &b.Image},
		{"Link", &b.Link},
	}
	for _, f := range fields {
		answer, err := getSimpleText(a.reader, fmt.Sprintf("%s [%s]", f.prompt, *f.dst), os.Stdout)
		if err != nil {
			return
		}
		if answer != "" {
			*f.dst = answer
		}
	}
	current := "n"
	if b.IsActive {
		current = "y"
	}
	active, err := getSimpleText(a.reader, fmt.Sprintf("Active? (y/n) [%s]", current), os.Stdout)
	if err != nil {
		return
	}
	if active != "" {
		b.IsActive = active == "y"
	}

	if err := a.admin.UpdateBanner(ctx, *b); err != nil {
		log.Printf("Update banner failed: %s", err.Error())
		return
	}
	fmt.Println("Banner updated.")
}

func (a *App) adminDelBanner(ctx context.Context) {
	id, err := getSimpleText(a.reader, "Banner id", os.Stdout)
	if err != nil {
		return
	}
	if err := a.admin.DeleteBanner(ctx, id); err != nil {
		log.Printf("Delete banner failed: %s", err.Error())
		return
	}
	fmt.Println("Banner deleted.")
}

func (a *App) adminUsers(ctx context.Context) {
	users, err := a.admin.Users(ctx)
	if err != nil {
		log.Printf("User fetch failed: %s", err.Error())
		return
	}
	for _, u := range users {
		flags := ""
		if u.IsBanned {
			flags += " banned"
		}
		if !u.IsActive {
			flags += " inactive"
		}
		fmt.Printf("%-26s  %-20s  %-30s %s%s\n", u.ID, u.Username, u.Email, u.Role, flags)
	}
}

func (a *App) adminSetBanned(ctx context.Context, banned bool) {
	id, err := getSimpleText(a.reader, "User id", os.Stdout)
	if err != nil {
		return
	}
	if err := a.admin.SetBanned(ctx, id, banned); err != nil {
		log.Printf("Moderation failed: %s", err.Error())
		return
	}
	fmt.Println("Done. The change takes effect on the user's next action.")
}

func (a *App) adminSetActive(ctx context.Context, active bool) {
	id, err := getSimpleText(a.reader, "User id", os.Stdout)
	if err != nil {
		return
	}
	if err := a.admin.SetActive(ctx, id, active); err != nil {
		log.Printf("Moderation failed: %s", err.Error())
		return
	}
	fmt.Println("Done.")
}
