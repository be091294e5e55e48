package stores

import (
	"sync"

	"pharmacy-shop/models"
)

// CartStore keeps every user's cart in process memory. Carts are transient
// by design: they start empty on boot and are cleared by checkout.
type CartStore struct {
	mu    sync.RWMutex
	carts map[int][]models.CartLine
}

func NewCartStore() *CartStore {
	return &CartStore{carts: make(map[int][]models.CartLine)}
}

// AddOrIncrement inserts a line with quantity 1, or bumps the existing
// line for the same product. Never fails.
func (s *CartStore) AddOrIncrement(userID int, product models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[userID]
	for i := range lines {
		if lines[i].Product.ID == product.ID {
			lines[i].Quantity++
			return
		}
	}
	s.carts[userID] = append(lines, models.CartLine{Product: product, Quantity: 1})
}

// SetQuantity replaces the quantity of the line for productID. Any value
// below 1 removes the line; setting a quantity on an absent product is a
// no-op.
func (s *CartStore) SetQuantity(userID, productID, quantity int) {
	if quantity < 1 {
		s.Remove(userID, productID)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[userID]
	for i := range lines {
		if lines[i].Product.ID == productID {
			lines[i].Quantity = quantity
			return
		}
	}
}

// Remove drops the line for productID. Idempotent.
func (s *CartStore) Remove(userID, productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[userID]
	for i := range lines {
		if lines[i].Product.ID == productID {
			s.carts[userID] = append(lines[:i], lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart, used after checkout completion.
func (s *CartStore) Clear(userID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
}

// Lines returns a copy of the cart in insertion order.
func (s *CartStore) Lines(userID int) []models.CartLine {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lines := s.carts[userID]
	out := make([]models.CartLine, len(lines))
	copy(out, lines)
	return out
}

// Total is recomputed on every read; product prices are immutable within
// a cart line so there is no staleness to cache away.
func (s *CartStore) Total(userID int) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total float64
	for _, line := range s.carts[userID] {
		total += line.Product.Price * float64(line.Quantity)
	}
	return total
}

// ItemCount sums quantities across lines, used for the cart badge.
func (s *CartStore) ItemCount(userID int) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, line := range s.carts[userID] {
		count += line.Quantity
	}
	return count
}

func (s *CartStore) View(userID int) models.CartView {
	return models.CartView{
		Items:     s.Lines(userID),
		Total:     s.Total(userID),
		ItemCount: s.ItemCount(userID),
	}
}
