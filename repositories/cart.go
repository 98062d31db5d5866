//go:generate go run go.uber.org/mock/mockgen -source=cart.go -destination=../mocks/mock_cart_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"mongolshop/domain"

	"github.com/dgraph-io/badger/v4"
)

// keyCart holds the JSON-encoded cart. Absence means an empty cart.
const keyCart = "cart"

type ICartRepository interface {
	Load() (domain.Cart, error)
	Save(cart domain.Cart) error
}

type CartRepository struct {
	db *badger.DB
}

func NewCartRepository(db *badger.DB) ICartRepository {
	return &CartRepository{db: db}
}

func (c CartRepository) Load() (domain.Cart, error) {
	var cart domain.Cart
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyCart))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &cart)
		})
	})
	switch {
	case err == nil:
		return cart, nil
	case err == badger.ErrKeyNotFound:
		return domain.Cart{}, nil
	default:
		return domain.Cart{}, fmt.Errorf("load cart: %w", err)
	}
}

func (c CartRepository) Save(cart domain.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyCart), data)
	})
}
