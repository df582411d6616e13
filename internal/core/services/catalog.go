package services

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/jcmexdev/ecommerce-api/internal/core/domain/apperr"
	"github.com/jcmexdev/ecommerce-api/internal/core/domain/entity"
	"github.com/jcmexdev/ecommerce-api/internal/core/ports"
	"github.com/jcmexdev/ecommerce-api/internal/pkg/cache"
)

var _ ports.CatalogService = (*catalogService)(nil)

const productCacheTTL = 10 * time.Minute

// cacheProduct is the cache serialization of a product. The entity's wire
// JSON omits the joined tags column, so the cache carries a shadow field for
// it; without one every cache hit would come back tagless.
type cacheProduct struct {
	*entity.Product
	Tags string `json:"tags"`
}

type catalogService struct {
	db *gorm.DB

	// cache may be nil — product reads then always hit the store.
	cache cache.Cache
}

func NewCatalogService(db *gorm.DB, c cache.Cache) ports.CatalogService {
	return &catalogService{db: db, cache: c}
}

func (s *catalogService) Create(ctx context.Context, in ports.CreateProduct) (*entity.Product, error) {
	tags, err := entity.JoinTags(in.Tags)
	if err != nil {
		return nil, apperr.Validation(apperr.CodeUnprocessable, "Unprocessable Entity",
			apperr.FieldIssue{Field: "tags", Issue: err.Error()})
	}

	product := entity.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Tags:        tags,
	}
	if err := s.db.WithContext(ctx).Create(&product).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return &product, nil
}

func (s *catalogService) Update(ctx context.Context, id int64, in ports.UpdateProduct) (*entity.Product, error) {
	var product entity.Product
	if err := s.db.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, classify(err, apperr.CodeProductNotFound, "Product not found")
	}

	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Tags != nil {
		tags, err := entity.JoinTags(in.Tags)
		if err != nil {
			return nil, apperr.Validation(apperr.CodeUnprocessable, "Unprocessable Entity",
				apperr.FieldIssue{Field: "tags", Issue: err.Error()})
		}
		product.Tags = tags
	}

	if err := s.db.WithContext(ctx).Save(&product).Error; err != nil {
		return nil, apperr.Internal(err)
	}

	s.invalidate(ctx, id)
	return &product, nil
}

func (s *catalogService) Delete(ctx context.Context, id int64) error {
	res := s.db.WithContext(ctx).Delete(&entity.Product{}, id)
	if res.Error != nil {
		return apperr.Internal(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound(apperr.CodeProductNotFound, "Product not found")
	}

	s.invalidate(ctx, id)
	return nil
}

func (s *catalogService) List(ctx context.Context, skip, take int) (int64, []entity.Product, error) {
	skip, take = normalizePage(skip, take)

	var count int64
	if err := s.db.WithContext(ctx).Model(&entity.Product{}).Count(&count).Error; err != nil {
		return 0, nil, apperr.Internal(err)
	}

	var products []entity.Product
	if err := s.db.WithContext(ctx).Offset(skip).Limit(take).Find(&products).Error; err != nil {
		return 0, nil, apperr.Internal(err)
	}
	return count, products, nil
}

// GetByID reads through the cache when one is configured. Cache failures
// degrade to a store read; they never fail the request.
func (s *catalogService) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	key := s.cacheKey(id)

	if s.cache != nil {
		raw, err := s.cache.Get(ctx, key)
		if err != nil {
			slog.WarnContext(ctx, "product cache read failed", "product_id", id, "error", err)
		} else if raw != "" {
			var product entity.Product
			cached := cacheProduct{Product: &product}
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				product.Tags = cached.Tags
				return &product, nil
			}
			slog.WarnContext(ctx, "product cache entry corrupt, dropping", "product_id", id)
			_ = s.cache.Del(ctx, key)
		}
	}

	var product entity.Product
	if err := s.db.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, classify(err, apperr.CodeProductNotFound, "Product not found")
	}

	if s.cache != nil {
		if raw, err := json.Marshal(cacheProduct{Product: &product, Tags: product.Tags}); err == nil {
			if err := s.cache.Set(ctx, key, raw, productCacheTTL); err != nil {
				slog.WarnContext(ctx, "product cache write failed", "product_id", id, "error", err)
			}
		}
	}
	return &product, nil
}

// Search matches the query as a case-insensitive substring of name,
// description, or the serialized tags, ordered by name. An empty query is a
// client error, not an empty result.
func (s *catalogService) Search(ctx context.Context, query string) ([]entity.Product, error) {
	if strings.TrimSpace(query) == "" {
		return nil, apperr.Validation(apperr.CodeSearchQueryRequired, "Search query (q) is required")
	}

	like := "%" + strings.ToLower(query) + "%"
	var products []entity.Product
	err := s.db.WithContext(ctx).
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(tags) LIKE ?", like, like, like).
		Order("name ASC").
		Find(&products).Error
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return products, nil
}

func (s *catalogService) cacheKey(id int64) string {
	if s.cache == nil {
		return ""
	}
	return s.cache.GenerateKey("product", strconv.FormatInt(id, 10))
}

func (s *catalogService) invalidate(ctx context.Context, id int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, s.cacheKey(id)); err != nil {
		slog.WarnContext(ctx, "product cache invalidation failed", "product_id", id, "error", err)
	}
}
