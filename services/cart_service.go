package services

import (
	"log/slog"

	"mongolshop/domain"
	"mongolshop/repositories"
)

type ICartService interface {
	Get() (domain.Cart, error)
	AddItem(product domain.Product) (domain.Cart, error)
	AdjustQuantity(productID string, delta int) (domain.Cart, error)
	RemoveItem(productID string) (domain.Cart, error)
	Clear() (domain.Cart, error)
}

// CartService applies pure cart transformations and writes every new
// state through to the store before returning it, so the persisted cart
// is always authoritative for the next read.
type CartService struct {
	repository repositories.ICartRepository
	log        *slog.Logger
}

func NewCartService(repository repositories.ICartRepository, log *slog.Logger) *CartService {
	return &CartService{repository: repository, log: log}
}

func (s *CartService) Get() (domain.Cart, error) {
	return s.repository.Load()
}

// AddItem increments the existing line for the product or appends a new
// line with quantity 1. Quantity has no upper bound.
func (s *CartService) AddItem(product domain.Product) (domain.Cart, error) {
	cart, err := s.repository.Load()
	if err != nil {
		return domain.Cart{}, err
	}

	found := false
	for i, line := range cart.Lines {
		if line.Product.ID == product.ID {
			cart.Lines[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		cart.Lines = append(cart.Lines, domain.CartLine{Product: product, Quantity: 1})
	}

	return s.persist(cart)
}

// AdjustQuantity adds delta to an existing line. A result of zero or
// below is rejected and leaves the line unchanged: dropping a line goes
// through the explicit RemoveItem operation, never through a decrement.
// A missing line is likewise a no-op.
func (s *CartService) AdjustQuantity(productID string, delta int) (domain.Cart, error) {
	cart, err := s.repository.Load()
	if err != nil {
		return domain.Cart{}, err
	}

	for i, line := range cart.Lines {
		if line.Product.ID != productID {
			continue
		}
		if line.Quantity+delta <= 0 {
			return cart, nil
		}
		cart.Lines[i].Quantity += delta
		return s.persist(cart)
	}
	return cart, nil
}

// RemoveItem deletes the line unconditionally; absent IDs are a no-op.
func (s *CartService) RemoveItem(productID string) (domain.Cart, error) {
	cart, err := s.repository.Load()
	if err != nil {
		return domain.Cart{}, err
	}

	kept := cart.Lines[:0:0]
	for _, line := range cart.Lines {
		if line.Product.ID != productID {
			kept = append(kept, line)
		}
	}
	if len(kept) == len(cart.Lines) {
		return cart, nil
	}
	cart.Lines = kept
	return s.persist(cart)
}

func (s *CartService) Clear() (domain.Cart, error) {
	return s.persist(domain.Cart{})
}

func (s *CartService) persist(cart domain.Cart) (domain.Cart, error) {
	if err := s.repository.Save(cart); err != nil {
		return domain.Cart{}, err
	}
	return cart, nil
}
