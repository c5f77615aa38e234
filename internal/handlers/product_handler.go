package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"shopkart/internal/cache"
	"shopkart/internal/catalog"
	"shopkart/internal/filter"
	"shopkart/internal/metrics"
	"shopkart/internal/models"
	"shopkart/internal/repository"
)

const featuredLimit = 8

type ProductHandler struct {
	repo     *repository.ProductRepository
	snapshot *SnapshotSource
	cache    *cache.Cache
}

func NewProductHandler(repo *repository.ProductRepository) *ProductHandler {
	return &ProductHandler{
		repo:     repo,
		snapshot: NewSnapshotSource(repo),
		cache:    cache.Get(),
	}
}

// ListProducts filtra, ordena y proyecta el catálogo según los query params
func (h *ProductHandler) ListProducts(c *gin.Context) {
	cacheKey := "products:list:" + c.Request.URL.RawQuery
	if cached, found := h.cache.GetValue(cacheKey); found {
		c.JSON(http.StatusOK, cached)
		return
	}

	req := DecodeFilterRequest(c.Request.URL.Query())
	state := req.State()
	snapshot := h.snapshot.Load(c.Request.Context())

	start := time.Now()
	results := filter.Project(snapshot, state, req.SortKey(), req.Search)
	metrics.ObserveProjection(start)

	response := listResponse(state, snapshot, results, req.SortKey(), req.Search)

	h.cache.Set(cacheKey, response, 2*time.Minute)
	c.JSON(http.StatusOK, response)
}

// listResponse arma la respuesta de navegación: resultados, tags de filtros
// activos, facetas disponibles y las señales que el colaborador externo
// persiste en la URL (category solo con exactamente una seleccionada)
func listResponse(state filter.State, snapshot, results []*models.Product, sortKey, search string) gin.H {
	response := gin.H{
		"data":                results,
		"total":               len(snapshot),
		"showing":             len(results),
		"sort":                sortKey,
		"active_filter_count": state.ActiveCount(),
		"active_filters":      state.Tags(),
		"discounted":          state.DiscountedOnly,
		"facets":              facetsPayload(state),
	}
	if search != "" {
		response["search"] = search
	}
	if category, ok := state.ActiveCategory(); ok {
		response["category"] = category
	}
	return response
}

func facetsPayload(state filter.State) gin.H {
	payload := gin.H{
		"categories": catalog.Categories,
		"brands":     catalog.BrandsFor(state.Categories),
	}
	if features, ok := catalog.FeaturesFor(state.Categories); ok {
		payload["features"] = features
	}
	if productTypes, ok := catalog.ProductTypesFor(state.Categories); ok {
		payload["product_types"] = productTypes
	}
	return payload
}

// FeaturedProducts retorna los productos en oferta con mayor descuento
func (h *ProductHandler) FeaturedProducts(c *gin.Context) {
	snapshot := h.snapshot.Load(c.Request.Context())

	state := filter.NewState().SetDiscountedOnly(true)

	start := time.Now()
	results := filter.Project(snapshot, state, "discount", "")
	metrics.ObserveProjection(start)

	if len(results) > featuredLimit {
		results = results[:featuredLimit]
	}

	c.JSON(http.StatusOK, gin.H{"data": results})
}

// CreateProduct crea un nuevo producto
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var product models.Product

	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.repo.Create(c.Request.Context(), &product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create product"})
		return
	}

	h.invalidateListings()
	c.JSON(http.StatusCreated, product)
}

// GetProduct obtiene un producto por ID (con caché)
func (h *ProductHandler) GetProduct(c *gin.Context) {
	productID := c.Param("id")
	cacheKey := fmt.Sprintf("product:%s", productID)

	if cached, found := h.cache.GetValue(cacheKey); found {
		c.JSON(http.StatusOK, cached)
		return
	}

	product, err := h.repo.FindByID(c.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get product"})
		return
	}

	h.cache.Set(cacheKey, product, 5*time.Minute)
	c.JSON(http.StatusOK, product)
}

// UpdateProduct actualiza parcialmente un producto
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	productID := c.Param("id")
	var update models.ProductUpdate

	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updateMap := updateFields(&update)
	if len(updateMap) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no fields to update"})
		return
	}

	if err := h.repo.Update(c.Request.Context(), productID, updateMap); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update product"})
		return
	}

	h.cache.Delete(fmt.Sprintf("product:%s", productID))
	h.invalidateListings()
	c.JSON(http.StatusOK, gin.H{"message": "product updated"})
}

// DeleteProduct marca un producto como eliminado
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	productID := c.Param("id")

	if err := h.repo.SoftDelete(c.Request.Context(), productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete product"})
		return
	}

	h.cache.Delete(fmt.Sprintf("product:%s", productID))
	h.invalidateListings()
	c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
}

// invalidateListings descarta snapshot y listados cacheados tras una escritura
func (h *ProductHandler) invalidateListings() {
	h.snapshot.Invalidate()
	h.cache.DeleteByPrefix("products:list:")
}

func updateFields(update *models.ProductUpdate) bson.M {
	fields := bson.M{}
	if update.Name != nil {
		fields["name"] = *update.Name
	}
	if update.Description != nil {
		fields["description"] = *update.Description
	}
	if update.Category != nil {
		fields["category"] = *update.Category
	}
	if update.Brand != nil {
		fields["brand"] = *update.Brand
	}
	if update.Price != nil {
		fields["price"] = *update.Price
	}
	if update.OriginalPrice != nil {
		fields["original_price"] = *update.OriginalPrice
	}
	if update.Image != nil {
		fields["image"] = *update.Image
	}
	if update.Rating != nil {
		fields["rating"] = *update.Rating
	}
	if update.ReviewsCount != nil {
		fields["reviews_count"] = *update.ReviewsCount
	}
	if update.DiscountPercentage != nil {
		fields["discount_percentage"] = *update.DiscountPercentage
	}
	return fields
}
