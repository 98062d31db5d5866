//go:generate go run go.uber.org/mock/mockgen -source=catalog.go -destination=../mocks/mock_catalog_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"mongolshop/domain"

	"github.com/dgraph-io/badger/v4"
)

// keyProducts is the fixed key holding the JSON-encoded product collection.
const keyProducts = "products"

type ICatalogRepository interface {
	Load() ([]domain.Product, error)
	Save(products []domain.Product) error
}

type CatalogRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewCatalogRepository(db *badger.DB, log *slog.Logger) *CatalogRepository {
	return &CatalogRepository{db: db, log: log}
}

// Load returns the persisted catalog. On first use the backing key is
// absent; the fixed seed catalog is persisted before being returned, so
// every caller observes the same initial collection.
func (c CatalogRepository) Load() ([]domain.Product, error) {
	var raw []byte
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyProducts))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			raw = append(raw[:0], val...)
			return nil
		})
	})
	switch {
	case err == nil:
		var products []domain.Product
		if err := json.Unmarshal(raw, &products); err != nil {
			return nil, fmt.Errorf("decode products: %w", err)
		}
		return products, nil
	case err == badger.ErrKeyNotFound:
		c.log.Info("Empty catalog, seeding initial products", "count", len(SeedCatalog))
		if err := c.Save(SeedCatalog); err != nil {
			return nil, err
		}
		return SeedCatalog, nil
	default:
		return nil, fmt.Errorf("load products: %w", err)
	}
}

func (c CatalogRepository) Save(products []domain.Product) error {
	data, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("encode products: %w", err)
	}
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyProducts), data)
	})
}
