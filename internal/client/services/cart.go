package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/novakart/storefront/internal/client/api"
	"github.com/novakart/storefront/internal/client/models"
	"github.com/novakart/storefront/internal/logging"
)

// CartService keeps a mirror of the server cart and reconciles quantity
// steps against it. Steps apply to the mirror immediately; each one
// carries a per-product sequence number, and only the completion of the
// newest step settles the line: stale completions are discarded, and a
// failed newest step rolls the line back to its last confirmed value.
type CartService struct {
	api api.Client
	log logging.Logger

	mu        sync.Mutex
	items     map[int]int // displayed quantity by product id
	confirmed map[int]int // last server-acknowledged quantity
	issued    map[int]uint64
}

func NewCartService(client api.Client, log logging.Logger) *CartService {
	return &CartService{
		api:       client,
		log:       log,
		items:     map[int]int{},
		confirmed: map[int]int{},
		issued:    map[int]uint64{},
	}
}

// Load fetches the cart and joins it with the catalog. Lines whose
// product can no longer be resolved stay visible with a zero price.
func (s *CartService) Load(ctx context.Context) ([]models.CartLine, float64, error) {
	cart, err := s.api.UserCart(ctx)
	if err != nil {
		return nil, 0, err
	}
	if cart == nil || len(cart.Products) == 0 {
		s.replace(nil)
		return nil, 0, nil
	}

	ids := make([]int, 0, len(cart.Products))
	for _, item := range cart.Products {
		ids = append(ids, item.ProductID)
	}
	products, err := s.api.ProductsByIDs(ctx, ids)
	if err != nil {
		return nil, 0, err
	}

	s.replace(cart.Products)
	lines := models.MergeCart(cart.Products, products)
	return lines, models.CartTotal(lines), nil
}

// Quantity reports the mirrored quantity of a product, zero when it is
// not in the cart.
func (s *CartService) Quantity(productID int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items[productID]
}

// Increment steps a line quantity up by one, Decrement down by one. A
// step that would leave the allowed range is a silent no-op and issues
// no server call.
func (s *CartService) Increment(ctx context.Context, productID int) (int, error) {
	return s.step(ctx, productID, +1)
}

func (s *CartService) Decrement(ctx context.Context, productID int) (int, error) {
	return s.step(ctx, productID, -1)
}

func (s *CartService) step(ctx context.Context, productID, delta int) (int, error) {
	s.mu.Lock()
	cur, ok := s.items[productID]
	if !ok {
		s.mu.Unlock()
		return 0, fmt.Errorf("product %d is not in the cart", productID)
	}
	next, allowed := models.ClampQuantity(cur, delta)
	if !allowed {
		s.mu.Unlock()
		return cur, nil
	}
	s.issued[productID]++
	seq := s.issued[productID]
	s.items[productID] = next
	s.mu.Unlock()

	err := s.api.UpdateCartQuantity(ctx, productID, next)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq < s.issued[productID] {
		// superseded by a newer step; that step's completion settles the line
		return s.items[productID], nil
	}
	if err != nil {
		s.items[productID] = s.confirmed[productID]
		return s.items[productID], err
	}
	s.confirmed[productID] = next
	return next, nil
}

// Add puts a product in the cart with the given quantity.
func (s *CartService) Add(ctx context.Context, productID, quantity int) error {
	if quantity < models.MinQuantity || quantity > models.MaxQuantity {
		return fmt.Errorf("quantity must be between %d and %d", models.MinQuantity, models.MaxQuantity)
	}
	if err := s.api.AddToCart(ctx, productID, quantity); err != nil {
		return err
	}
	s.mu.Lock()
	s.items[productID] = quantity
	s.confirmed[productID] = quantity
	s.mu.Unlock()
	return nil
}

// Remove drops a line from the cart.
func (s *CartService) Remove(ctx context.Context, productID int) error {
	if err := s.api.RemoveCartItem(ctx, productID); err != nil {
		return err
	}
	s.mu.Lock()
	delete(s.items, productID)
	delete(s.confirmed, productID)
	delete(s.issued, productID)
	s.mu.Unlock()
	return nil
}

// Clear empties the cart.
func (s *CartService) Clear(ctx context.Context) error {
	if err := s.api.ClearCart(ctx); err != nil {
		return err
	}
	s.replace(nil)
	return nil
}

// Count reports the server-side number of cart lines, for the badge.
func (s *CartService) Count(ctx context.Context) (int, error) {
	return s.api.CartCount(ctx)
}

func (s *CartService) replace(items []models.CartItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[int]int, len(items))
	s.confirmed = make(map[int]int, len(items))
	for _, item := range items {
		s.items[item.ProductID] = item.Quantity
		s.confirmed[item.ProductID] = item.Quantity
	}
	s.issued = map[int]uint64{}
}
