package services

import (
	"context"
	"errors"
	"log"

	"pharmacy-shop/models"
	"pharmacy-shop/stores"

	"github.com/google/uuid"
)

var (
	ErrSignInRequired  = errors.New("sign in required")
	ErrEmptyCart       = errors.New("cart is empty")
	ErrProductNotFound = errors.New("product not found")
)

// ProductFinder resolves a product id to its catalog record.
type ProductFinder interface {
	GetProductByID(id int) (*models.Product, error)
}

// OrderPersister is the checkout collaborator: it either completes the
// order or fails, and on failure the cart must be left untouched.
type OrderPersister interface {
	Create(ctx context.Context, order *models.Order) error
}

// OrderEventPublisher notifies downstream consumers of a completed
// order. Best effort; a publish failure never unwinds a checkout.
type OrderEventPublisher interface {
	PublishOrderCreated(ctx context.Context, order *models.Order) error
}

type ConfirmationMailer interface {
	SendOrderConfirmationEmail(toEmail, orderNumber string, total float64, hasPrescriptionItems bool) error
}

type CartService struct {
	cart     *stores.CartStore
	wishlist *stores.WishlistStore
	products ProductFinder
	orders   OrderPersister
	events   OrderEventPublisher
	mailer   ConfirmationMailer
}

func NewCartService(
	cart *stores.CartStore,
	wishlist *stores.WishlistStore,
	products ProductFinder,
	orders OrderPersister,
	events OrderEventPublisher,
	mailer ConfirmationMailer,
) *CartService {
	return &CartService{
		cart:     cart,
		wishlist: wishlist,
		products: products,
		orders:   orders,
		events:   events,
		mailer:   mailer,
	}
}

func (s *CartService) AddToCart(userID, productID int) (models.CartView, error) {
	product, err := s.products.GetProductByID(productID)
	if err != nil || product == nil || !product.IsActive {
		return s.cart.View(userID), ErrProductNotFound
	}

	s.cart.AddOrIncrement(userID, *product)
	return s.cart.View(userID), nil
}

func (s *CartService) SetQuantity(userID, productID, quantity int) models.CartView {
	s.cart.SetQuantity(userID, productID, quantity)
	return s.cart.View(userID)
}

func (s *CartService) RemoveFromCart(userID, productID int) models.CartView {
	s.cart.Remove(userID, productID)
	return s.cart.View(userID)
}

func (s *CartService) Cart(userID int) models.CartView {
	return s.cart.View(userID)
}

func (s *CartService) ToggleWishlist(userID, productID int) (bool, error) {
	product, err := s.products.GetProductByID(productID)
	if err != nil || product == nil || !product.IsActive {
		return false, ErrProductNotFound
	}
	return s.wishlist.Toggle(userID, *product), nil
}

func (s *CartService) Wishlist(userID int) []models.Product {
	return s.wishlist.Entries(userID)
}

func (s *CartService) RemoveFromWishlist(userID, productID int) {
	s.wishlist.Remove(userID, productID)
}

// AddWishlistItemToCart copies a wishlist entry into the cart. The
// wishlist entry stays put, matching the storefront behaviour.
func (s *CartService) AddWishlistItemToCart(userID, productID int) (models.CartView, error) {
	for _, p := range s.wishlist.Entries(userID) {
		if p.ID == productID {
			s.cart.AddOrIncrement(userID, p)
			return s.cart.View(userID), nil
		}
	}
	return s.cart.View(userID), ErrProductNotFound
}

// Checkout completes the order for an authenticated session. Anonymous
// callers get ErrSignInRequired and the cart is left exactly as it was.
// The cart is cleared only once the order has been persisted; event
// publishing and email are best effort after that point.
func (s *CartService) Checkout(ctx context.Context, session models.Session, notes string) (*models.Order, error) {
	if !session.Authenticated() {
		return nil, ErrSignInRequired
	}
	userID := session.User.ID

	lines := s.cart.Lines(userID)
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	order := &models.Order{
		OrderNumber: uuid.New().String(),
		UserID:      userID,
		TotalAmount: s.cart.Total(userID),
		Status:      models.OrderStatusPending,
	}
	if notes != "" {
		order.Notes = &notes
	}

	hasPrescriptionItems := false
	for _, line := range lines {
		order.Items = append(order.Items, models.OrderItem{
			ProductID:   line.Product.ID,
			ProductName: line.Product.Name,
			Quantity:    line.Quantity,
			Price:       line.Product.Price,
		})
		if line.Product.RequiresPrescription {
			hasPrescriptionItems = true
		}
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	s.cart.Clear(userID)

	if s.events != nil {
		if err := s.events.PublishOrderCreated(ctx, order); err != nil {
			log.Printf("Failed to publish order event for %s: %v", order.OrderNumber, err)
		}
	}
	if s.mailer != nil && session.User.Email != "" {
		if err := s.mailer.SendOrderConfirmationEmail(session.User.Email, order.OrderNumber, order.TotalAmount, hasPrescriptionItems); err != nil {
			log.Printf("Failed to send confirmation email for %s: %v", order.OrderNumber, err)
		}
	}

	return order, nil
}
