package services

import (
	"context"
	"log/slog"
	"testing"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"mongolshop/domain"
	"mongolshop/errors"
	"mongolshop/repositories"
)

func newCatalogService(t *testing.T) *CatalogService {
	t.Helper()
	req := require.New(t)

	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	t.Cleanup(func() { _ = db.Close() })

	writer, err := bluge.OpenWriter(bluge.DefaultConfig(t.TempDir()))
	req.NoError(err)
	t.Cleanup(func() { _ = writer.Close() })

	svc := NewCatalogService(repositories.NewCatalogRepository(db, slog.Default()), writer, slog.Default())
	req.NoError(svc.ReindexAll())
	return svc
}

func TestCatalogService_List_SeedsOnFirstUse(t *testing.T) {
	req := require.New(t)
	svc := newCatalogService(t)

	products, err := svc.List()
	req.NoError(err)
	req.Equal(repositories.SeedCatalog, products)
}

func TestCatalogService_Add(t *testing.T) {
	t.Run("should prepend a valid product with a fresh id", func(t *testing.T) {
		req := require.New(t)
		svc := newCatalogService(t)

		products, err := svc.Add(ProductInput{
			Name:     "Ноолууран цамц",
			Price:    99000,
			Category: domain.CategoryClothing,
			Image:    "https://example.mn/tsamts.jpg",
		})
		req.NoError(err)
		req.Len(products, len(repositories.SeedCatalog)+1)

		added := products[0]
		req.NotEmpty(added.ID)
		req.Equal("Ноолууран цамц", added.Name)
		req.Equal(int64(99000), added.Price)
		// Description was omitted, the fixed placeholder applies.
		req.Equal(placeholderDescription, added.Description)
	})

	t.Run("should default category and image placeholders", func(t *testing.T) {
		req := require.New(t)
		svc := newCatalogService(t)

		products, err := svc.Add(ProductInput{Name: "Тест бараа", Price: 1000})
		req.NoError(err)
		req.Equal(domain.CategoryClothing, products[0].Category)
		req.Equal(placeholderImage, products[0].Image)
	})

	t.Run("should reject a missing name", func(t *testing.T) {
		req := require.New(t)
		svc := newCatalogService(t)

		_, err := svc.Add(ProductInput{Price: 1000})
		req.ErrorIs(err, errors.ErrInvalidProduct)
	})

	t.Run("should reject a missing or negative price", func(t *testing.T) {
		req := require.New(t)
		svc := newCatalogService(t)

		_, err := svc.Add(ProductInput{Name: "Үнэгүй бараа"})
		req.ErrorIs(err, errors.ErrInvalidProduct)

		_, err = svc.Add(ProductInput{Name: "Буруу үнэ", Price: -5})
		req.ErrorIs(err, errors.ErrInvalidProduct)
	})
}

func TestCatalogService_Delete(t *testing.T) {
	req := require.New(t)
	svc := newCatalogService(t)

	products, err := svc.Delete("2")
	req.NoError(err)
	req.Len(products, len(repositories.SeedCatalog)-1)
	req.False(lo.ContainsBy(products, func(p domain.Product) bool { return p.ID == "2" }))

	// A listing after the delete never resurrects the entry.
	listed, err := svc.List()
	req.NoError(err)
	req.Equal(products, listed)

	// Deleting an unknown id is a no-op, not an error.
	again, err := svc.Delete("no-such-id")
	req.NoError(err)
	req.Equal(products, again)
}

func TestCatalogService_FilterByCategory(t *testing.T) {
	req := require.New(t)
	svc := newCatalogService(t)

	food, err := svc.FilterByCategory(domain.CategoryFood)
	req.NoError(err)
	req.Len(food, 2)
	for _, p := range food {
		req.Equal(domain.CategoryFood, p.Category)
	}

	all, err := svc.FilterByCategory(domain.CategoryAll)
	req.NoError(err)
	req.Equal(repositories.SeedCatalog, all)
}

func TestCatalogService_Search(t *testing.T) {
	req := require.New(t)
	svc := newCatalogService(t)
	ctx := context.Background()

	hits, err := svc.Search(ctx, "ороолт")
	req.NoError(err)
	req.Len(hits, 1)
	req.Equal("2", hits[0].ID)

	// Tokens are folded to lowercase at index time.
	hits, err = svc.Search(ctx, "handmade")
	req.NoError(err)
	req.Len(hits, 1)
	req.Equal("3", hits[0].ID)

	// A deleted product drops out of the results.
	_, err = svc.Delete("2")
	req.NoError(err)
	hits, err = svc.Search(ctx, "ороолт")
	req.NoError(err)
	req.Empty(hits)

	// A freshly added product is searchable immediately.
	products, err := svc.Add(ProductInput{Name: "Тэмээний ноосон оймс", Price: 12000})
	req.NoError(err)
	hits, err = svc.Search(ctx, "оймс")
	req.NoError(err)
	req.Len(hits, 1)
	req.Equal(products[0].ID, hits[0].ID)
}
