package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/blugelabs/bluge"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"mongolshop/domain"
	"mongolshop/errors"
	"mongolshop/repositories"
)

var validate = validator.New()

// Placeholders applied when an admin omits optional product fields.
const (
	placeholderImage       = "https://images.unsplash.com/photo-1557683316-973673baf926?auto=format&fit=crop&q=80&w=800"
	placeholderDescription = "Тайлбар байхгүй"
)

// ProductInput is the admin-panel payload for a new product. Name and a
// strictly positive price are required; everything else falls back to
// fixed placeholders.
type ProductInput struct {
	Name        string `validate:"required"`
	Price       int64  `validate:"required,gte=0"`
	Category    domain.Category
	Image       string
	Description string
}

type ICatalogService interface {
	List() ([]domain.Product, error)
	Add(input ProductInput) ([]domain.Product, error)
	Delete(id string) ([]domain.Product, error)
	FilterByCategory(category domain.Category) ([]domain.Product, error)
	Search(ctx context.Context, query string) ([]domain.Product, error)
}

type CatalogService struct {
	repository repositories.ICatalogRepository
	index      *bluge.Writer
	log        *slog.Logger
}

func NewCatalogService(repository repositories.ICatalogRepository, index *bluge.Writer, log *slog.Logger) *CatalogService {
	return &CatalogService{repository: repository, index: index, log: log}
}

// List returns the current collection, seeding the fixed initial
// catalog on first use (the repository persists the seed before
// returning it).
func (s *CatalogService) List() ([]domain.Product, error) {
	return s.repository.Load()
}

// Add validates the input, fills placeholders, assigns a fresh ID and
// prepends the product so the collection stays most-recent-first.
func (s *CatalogService) Add(input ProductInput) ([]domain.Product, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrInvalidProduct, err)
	}

	if !input.Category.Valid() {
		input.Category = domain.CategoryClothing
	}
	if input.Image == "" {
		input.Image = placeholderImage
	}
	if input.Description == "" {
		input.Description = placeholderDescription
	}

	product := domain.Product{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Price:       input.Price,
		Category:    input.Category,
		Image:       input.Image,
		Description: input.Description,
	}

	products, err := s.repository.Load()
	if err != nil {
		return nil, err
	}
	products = append([]domain.Product{product}, products...)
	if err := s.repository.Save(products); err != nil {
		return nil, err
	}

	if err := s.index.Update(bluge.Identifier(product.ID), indexDocument(product)); err != nil {
		// The store already holds the product; a stale index entry is
		// recoverable via ReindexAll, so log instead of failing the add.
		s.log.Error("index update failed", "product_id", product.ID, "error", err)
	}

	s.log.Info("Product added", "id", product.ID, "name", product.Name, "price", product.Price)
	return products, nil
}

// Delete removes the matching entry; an absent ID is a silent no-op.
func (s *CatalogService) Delete(id string) ([]domain.Product, error) {
	products, err := s.repository.Load()
	if err != nil {
		return nil, err
	}

	remaining := lo.Filter(products, func(p domain.Product, _ int) bool {
		return p.ID != id
	})
	if len(remaining) == len(products) {
		return products, nil
	}

	if err := s.repository.Save(remaining); err != nil {
		return nil, err
	}
	if err := s.index.Delete(bluge.Identifier(id)); err != nil {
		s.log.Error("index delete failed", "product_id", id, "error", err)
	}
	return remaining, nil
}

// FilterByCategory keeps only one shelf; the All sentinel returns the
// whole collection.
func (s *CatalogService) FilterByCategory(category domain.Category) ([]domain.Product, error) {
	products, err := s.repository.Load()
	if err != nil {
		return nil, err
	}
	if category == domain.CategoryAll {
		return products, nil
	}
	return lo.Filter(products, func(p domain.Product, _ int) bool {
		return p.Category == category
	}), nil
}

// Search runs a full-text match over product names and descriptions and
// resolves the hits back to catalog entries in score order.
func (s *CatalogService) Search(ctx context.Context, query string) ([]domain.Product, error) {
	products, err := s.repository.Load()
	if err != nil {
		return nil, err
	}

	reader, err := s.index.Reader()
	if err != nil {
		return nil, fmt.Errorf("open index reader: %w", err)
	}
	defer reader.Close()

	q := bluge.NewBooleanQuery().
		AddShould(bluge.NewMatchQuery(query).SetField("name")).
		AddShould(bluge.NewMatchQuery(query).SetField("description"))

	iterator, err := reader.Search(ctx, bluge.NewTopNSearch(len(products), q))
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	byID := lo.KeyBy(products, func(p domain.Product) string { return p.ID })
	var hits []domain.Product
	for {
		match, err := iterator.Next()
		if err != nil {
			return nil, fmt.Errorf("iterate search results: %w", err)
		}
		if match == nil {
			break
		}
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			if field == "_id" {
				if product, ok := byID[string(value)]; ok {
					hits = append(hits, product)
				}
			}
			return true
		})
		if err != nil {
			return nil, fmt.Errorf("visit stored fields: %w", err)
		}
	}
	return hits, nil
}

// ReindexAll rebuilds the search index from the persisted collection.
// Called once at startup so deletions from a previous run cannot leave
// ghosts behind.
func (s *CatalogService) ReindexAll() error {
	products, err := s.repository.Load()
	if err != nil {
		return err
	}

	batch := bluge.NewBatch()
	for _, product := range products {
		batch.Update(bluge.Identifier(product.ID), indexDocument(product))
	}
	if err := s.index.Batch(batch); err != nil {
		return fmt.Errorf("reindex: %w", err)
	}
	s.log.Debug("Catalog reindexed", "count", len(products))
	return nil
}

func indexDocument(p domain.Product) *bluge.Document {
	return bluge.NewDocument(p.ID).
		AddField(bluge.NewTextField("name", p.Name).StoreValue()).
		AddField(bluge.NewTextField("description", p.Description))
}
