package handlers

import (
	"context"
	"log"
	"time"

	"shopkart/internal/cache"
	"shopkart/internal/metrics"
	"shopkart/internal/models"
)

const snapshotKey = "products:snapshot"

// ProductLister es el colaborador que entrega el catálogo completo
type ProductLister interface {
	ListAll(ctx context.Context) ([]*models.Product, error)
}

// SnapshotSource entrega el snapshot inmutable del catálogo sobre el que
// trabaja el motor de filtros, con caché en memoria por unos minutos
type SnapshotSource struct {
	repo  ProductLister
	cache *cache.Cache
}

func NewSnapshotSource(repo ProductLister) *SnapshotSource {
	return &SnapshotSource{
		repo:  repo,
		cache: cache.Get(),
	}
}

// Load retorna el snapshot vigente. Si el catálogo no está disponible
// retorna un snapshot vacío en lugar de propagar el error: la página de
// navegación nunca falla por un problema de catálogo.
func (s *SnapshotSource) Load(ctx context.Context) []*models.Product {
	if v, ok := s.cache.GetValue(snapshotKey); ok {
		if snapshot, ok := v.([]*models.Product); ok {
			return snapshot
		}
	}

	products, err := s.repo.ListAll(ctx)
	if err != nil {
		log.Println("⚠️ Catalog unavailable, serving empty snapshot:", err)
		return []*models.Product{}
	}
	if products == nil {
		products = []*models.Product{}
	}

	s.cache.Set(snapshotKey, products, 5*time.Minute)
	metrics.SnapshotSize.Set(float64(len(products)))
	return products
}

// Invalidate descarta el snapshot cacheado tras una escritura
func (s *SnapshotSource) Invalidate() {
	s.cache.Delete(snapshotKey)
}
