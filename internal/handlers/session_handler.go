package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"shopkart/internal/filter"
	"shopkart/internal/metrics"
	"shopkart/internal/session"
)

// SessionHandler expone las operaciones de filtrado sobre sesiones de
// navegación; el estado vive en Redis y se reemplaza completo en cada
// operación
type SessionHandler struct {
	store    *session.Store
	snapshot *SnapshotSource
}

func NewSessionHandler(store *session.Store, snapshot *SnapshotSource) *SessionHandler {
	return &SessionHandler{store: store, snapshot: snapshot}
}

// CreateSession crea una sesión; los parámetros category y discounted
// pre-pueblan el estado inicial según el contrato con el colaborador de la URL
func (h *SessionHandler) CreateSession(c *gin.Context) {
	req := DecodeFilterRequest(c.Request.URL.Query())
	state := req.State()

	id, err := h.store.Create(c.Request.Context(), state)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}

	c.JSON(http.StatusCreated, sessionResponse(id, state))
}

// GetSession retorna el estado de filtros y sus tags
func (h *SessionHandler) GetSession(c *gin.Context) {
	state, ok := h.loadState(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, sessionResponse(c.Param("id"), state))
}

// SessionProducts proyecta el catálogo con el estado de la sesión
func (h *SessionHandler) SessionProducts(c *gin.Context) {
	state, ok := h.loadState(c)
	if !ok {
		return
	}

	sortKey := c.DefaultQuery("sort", filter.DefaultSortKey)
	search := c.Query("search")
	snapshot := h.snapshot.Load(c.Request.Context())

	start := time.Now()
	results := filter.Project(snapshot, state, sortKey, search)
	metrics.ObserveProjection(start)

	c.JSON(http.StatusOK, listResponse(state, snapshot, results, sortKey, search))
}

type toggleRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value" binding:"required"`
}

// ToggleFilter agrega o quita un valor de un campo de conjunto
func (h *SessionHandler) ToggleFilter(c *gin.Context) {
	var req toggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	field := filter.SetField(req.Field)
	switch field {
	case filter.FieldCategories, filter.FieldBrands, filter.FieldFeatures, filter.FieldProductTypes:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown filter field"})
		return
	}

	h.mutate(c, func(state filter.State) filter.State {
		return state.Toggle(field, req.Value)
	})
}

type priceRequest struct {
	Min *float64 `json:"min"`
	Max *float64 `json:"max"`
}

// SetPriceRange fija el rango de precios; un límite ausente o malformado
// conserva el valor vigente
func (h *SessionHandler) SetPriceRange(c *gin.Context) {
	var req priceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.mutate(c, func(state filter.State) filter.State {
		min, max := state.PriceMin, state.PriceMax
		if req.Min != nil {
			min = *req.Min
		}
		if req.Max != nil {
			max = *req.Max
		}
		return state.SetRange(min, max)
	})
}

type ratingRequest struct {
	Rating int `json:"rating"`
}

// SetMinRating fija el rating mínimo
func (h *SessionHandler) SetMinRating(c *gin.Context) {
	var req ratingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.mutate(c, func(state filter.State) filter.State {
		return state.SetMinRating(req.Rating)
	})
}

type organicRequest struct {
	Organic string `json:"organic" binding:"required,oneof=all yes no"`
}

// SetOrganic fija el filtro tri-estado de orgánicos
func (h *SessionHandler) SetOrganic(c *gin.Context) {
	var req organicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.mutate(c, func(state filter.State) filter.State {
		switch req.Organic {
		case "yes":
			return state.SetOrganic(filter.OrganicOnly)
		case "no":
			return state.SetOrganic(filter.NonOrganicOnly)
		default:
			return state.SetOrganic(filter.OrganicUnset)
		}
	})
}

type discountedRequest struct {
	Discounted bool `json:"discounted"`
}

// SetDiscounted fija el filtro de ofertas
func (h *SessionHandler) SetDiscounted(c *gin.Context) {
	var req discountedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.mutate(c, func(state filter.State) filter.State {
		return state.SetDiscountedOnly(req.Discounted)
	})
}

type removeTagRequest struct {
	Kind  string `json:"kind" binding:"required"`
	Value string `json:"value"`
}

// RemoveTag deshace la contribución de un único tag de filtro activo
func (h *SessionHandler) RemoveTag(c *gin.Context) {
	var req removeTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.mutate(c, func(state filter.State) filter.State {
		return state.RemoveTag(filter.Tag{Kind: filter.TagKind(req.Kind), Value: req.Value})
	})
}

// ClearFilters restablece todos los filtros de la sesión
func (h *SessionHandler) ClearFilters(c *gin.Context) {
	h.mutate(c, func(state filter.State) filter.State {
		return state.Clear()
	})
}

// mutate aplica una transformación copy-on-write al estado de la sesión
func (h *SessionHandler) mutate(c *gin.Context, fn func(filter.State) filter.State) {
	id := c.Param("id")

	state, err := h.store.Get(c.Request.Context(), id)
	if err != nil {
		h.sessionError(c, err)
		return
	}

	state = fn(state)

	if err := h.store.Save(c.Request.Context(), id, state); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save session"})
		return
	}

	c.JSON(http.StatusOK, sessionResponse(id, state))
}

func (h *SessionHandler) loadState(c *gin.Context) (filter.State, bool) {
	state, err := h.store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.sessionError(c, err)
		return filter.State{}, false
	}
	return state, true
}

func (h *SessionHandler) sessionError(c *gin.Context, err error) {
	if errors.Is(err, session.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load session"})
}

func sessionResponse(id string, state filter.State) gin.H {
	response := gin.H{
		"session_id":          id,
		"state":               state,
		"active_filter_count": state.ActiveCount(),
		"active_filters":      state.Tags(),
		"discounted":          state.DiscountedOnly,
		"facets":              facetsPayload(state),
	}
	if category, ok := state.ActiveCategory(); ok {
		response["category"] = category
	}
	return response
}
