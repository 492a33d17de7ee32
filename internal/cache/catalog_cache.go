package cache

import (
	"context"
	"encoding/json"
	"time"

	"bazar_back_end/internal/database"
	"bazar_back_end/internal/models"
)

const (
	ProductsCacheKey = "products:all"
	SlidesCacheKey   = "slides:all"
	CatalogCacheTTL  = 10 * time.Minute
)

// GetProducts récupère la liste produits depuis Redis. Retourne (nil, false)
// sur cache miss ou erreur de décodage.
func GetProducts(ctx context.Context) ([]models.Product, bool) {
	data, err := database.Redis.Get(ctx, ProductsCacheKey).Result()
	if err != nil || data == "" {
		return nil, false
	}

	var products []models.Product
	if err := json.Unmarshal([]byte(data), &products); err != nil {
		return nil, false
	}
	return products, true
}

// SetProducts met la liste produits en cache. Les erreurs sont ignorées :
// le cache est un accélérateur, jamais une source de vérité.
func SetProducts(ctx context.Context, products []models.Product) {
	jsonData, _ := json.Marshal(products)
	database.Redis.Set(ctx, ProductsCacheKey, jsonData, CatalogCacheTTL)
}

// InvalidateProducts purge le cache après une écriture admin.
func InvalidateProducts(ctx context.Context) {
	database.Redis.Del(ctx, ProductsCacheKey)
}

// GetSlides récupère les slides du carrousel depuis Redis.
func GetSlides(ctx context.Context) ([]models.Slide, bool) {
	data, err := database.Redis.Get(ctx, SlidesCacheKey).Result()
	if err != nil || data == "" {
		return nil, false
	}

	var slides []models.Slide
	if err := json.Unmarshal([]byte(data), &slides); err != nil {
		return nil, false
	}
	return slides, true
}

// SetSlides met les slides en cache.
func SetSlides(ctx context.Context, slides []models.Slide) {
	jsonData, _ := json.Marshal(slides)
	database.Redis.Set(ctx, SlidesCacheKey, jsonData, CatalogCacheTTL)
}

// InvalidateSlides purge le cache après une écriture admin.
func InvalidateSlides(ctx context.Context) {
	database.Redis.Del(ctx, SlidesCacheKey)
}
