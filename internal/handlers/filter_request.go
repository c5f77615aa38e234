package handlers

import (
	"net/url"
	"strconv"

	"github.com/gorilla/schema"

	"shopkart/internal/catalog"
	"shopkart/internal/filter"
)

// FilterRequest son los parámetros de consulta de la página de navegación.
// Los campos numéricos se reciben como texto: un valor malformado se
// reemplaza por el límite vigente en vez de producir un error.
type FilterRequest struct {
	Search       string   `schema:"search"`
	Sort         string   `schema:"sort"`
	Category     string   `schema:"category"`
	Discounted   string   `schema:"discounted"`
	Categories   []string `schema:"categories"`
	Brands       []string `schema:"brands"`
	Features     []string `schema:"features"`
	ProductTypes []string `schema:"product_types"`
	MinPrice     string   `schema:"min_price"`
	MaxPrice     string   `schema:"max_price"`
	Rating       string   `schema:"rating"`
	Organic      string   `schema:"organic"`
	InStock      string   `schema:"in_stock"`
}

var queryDecoder = schema.NewDecoder()

func init() {
	queryDecoder.IgnoreUnknownKeys(true)
}

// DecodeFilterRequest arma el FilterRequest desde los query params
func DecodeFilterRequest(values url.Values) *FilterRequest {
	req := &FilterRequest{}
	// todos los campos son strings o slices, el decode no puede fallar
	// por valores malformados
	_ = queryDecoder.Decode(req, values)
	return req
}

// State construye el estado de filtros a partir del request. El parámetro
// `category` (singular) es el valor inicial que entrega el colaborador de
// la URL y solo se respeta cuando la categoría existe en el catálogo;
// los valores de los demás conjuntos se aceptan sin validar.
func (req *FilterRequest) State() filter.State {
	state := filter.NewState()

	if req.Category != "" && catalog.IsKnownCategory(req.Category) {
		state = state.SetCategory(req.Category, true)
	}
	for _, c := range req.Categories {
		state = state.SetCategory(c, true)
	}
	for _, b := range req.Brands {
		state = state.Toggle(filter.FieldBrands, b)
	}
	for _, f := range req.Features {
		state = state.Toggle(filter.FieldFeatures, f)
	}
	for _, pt := range req.ProductTypes {
		state = state.Toggle(filter.FieldProductTypes, pt)
	}

	state = state.SetRange(
		parsePrice(req.MinPrice, state.PriceMin),
		parsePrice(req.MaxPrice, state.PriceMax),
	)

	if rating, err := strconv.Atoi(req.Rating); err == nil {
		state = state.SetMinRating(rating)
	}

	switch req.Organic {
	case "yes":
		state = state.SetOrganic(filter.OrganicOnly)
	case "no":
		state = state.SetOrganic(filter.NonOrganicOnly)
	}

	if req.Discounted == "true" {
		state = state.SetDiscountedOnly(true)
	}
	if req.InStock == "true" {
		state = state.SetInStock(true)
	}

	return state
}

// SortKey retorna la clave de orden pedida o la clave por defecto
func (req *FilterRequest) SortKey() string {
	if req.Sort == "" {
		return filter.DefaultSortKey
	}
	return req.Sort
}

func parsePrice(raw string, fallback float64) float64 {
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return v
}
