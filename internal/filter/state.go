package filter

import (
	"math"

	"shopkart/internal/catalog"
)

// Organic es el filtro tri-estado para productos orgánicos;
// distingue "sin filtrar" de "solo no-orgánicos"
type Organic int

const (
	OrganicUnset Organic = iota
	OrganicOnly
	NonOrganicOnly
)

// SetField identifica los campos de tipo conjunto del estado de filtros
type SetField string

const (
	FieldCategories   SetField = "categories"
	FieldBrands       SetField = "brands"
	FieldFeatures     SetField = "features"
	FieldProductTypes SetField = "product_types"
)

// State es el conjunto de criterios de filtrado activos. Es un valor
// inmutable: cada operación retorna un State nuevo sin tocar el original,
// así un lector nunca observa un estado a medio actualizar.
// Los slices mantienen orden de inserción sin duplicados.
type State struct {
	Categories     []string `json:"categories"`
	Brands         []string `json:"brands"`
	PriceMin       float64  `json:"price_min"`
	PriceMax       float64  `json:"price_max"`
	MinRating      int      `json:"min_rating"`
	Features       []string `json:"features"`
	ProductTypes   []string `json:"product_types"`
	Organic        Organic  `json:"organic"`
	InStock        bool     `json:"in_stock"`
	DiscountedOnly bool     `json:"discounted_only"`
}

// NewState retorna el estado por defecto: sin filtros, rango de precios completo
func NewState() State {
	return State{PriceMin: 0, PriceMax: catalog.MaxPrice}
}

func (s State) clone() State {
	n := s
	n.Categories = copyStrings(s.Categories)
	n.Brands = copyStrings(s.Brands)
	n.Features = copyStrings(s.Features)
	n.ProductTypes = copyStrings(s.ProductTypes)
	return n
}

func copyStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

// SetRange fija el rango de precios. Los límites se recortan a [0, MaxPrice];
// si min > max, max se eleva hasta min en lugar de descartar el rango.
// NaN conserva el límite vigente.
func (s State) SetRange(min, max float64) State {
	n := s.clone()
	if math.IsNaN(min) {
		min = s.PriceMin
	}
	if math.IsNaN(max) {
		max = s.PriceMax
	}
	min = clamp(min, 0, catalog.MaxPrice)
	max = clamp(max, 0, catalog.MaxPrice)
	if max < min {
		max = min
	}
	n.PriceMin = min
	n.PriceMax = max
	return n
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Toggle aplica diferencia simétrica sobre un campo de conjunto:
// agrega el valor si falta, lo quita si ya está
func (s State) Toggle(field SetField, value string) State {
	n := s.clone()
	switch field {
	case FieldCategories:
		n.Categories = toggleValue(n.Categories, value)
	case FieldBrands:
		n.Brands = toggleValue(n.Brands, value)
	case FieldFeatures:
		n.Features = toggleValue(n.Features, value)
	case FieldProductTypes:
		n.ProductTypes = toggleValue(n.ProductTypes, value)
	}
	return n
}

func toggleValue(list []string, value string) []string {
	for i, v := range list {
		if v == value {
			if len(list) == 1 {
				return nil
			}
			out := make([]string, 0, len(list)-1)
			out = append(out, list[:i]...)
			return append(out, list[i+1:]...)
		}
	}
	out := make([]string, len(list), len(list)+1)
	copy(out, list)
	return append(out, value)
}

// SetCategory fija la pertenencia de una categoría al conjunto seleccionado
func (s State) SetCategory(category string, selected bool) State {
	if contains(s.Categories, category) == selected {
		return s.clone()
	}
	return s.Toggle(FieldCategories, category)
}

// ActiveCategory retorna la categoría seleccionada solo cuando hay
// exactamente una; es la señal que el colaborador externo persiste
// en los parámetros de la URL
func (s State) ActiveCategory() (string, bool) {
	if len(s.Categories) == 1 {
		return s.Categories[0], true
	}
	return "", false
}

// SetMinRating fija el rating mínimo, recortado a [0, 4]; 0 desactiva el filtro
func (s State) SetMinRating(rating int) State {
	n := s.clone()
	if rating < 0 {
		rating = 0
	}
	if rating > 4 {
		rating = 4
	}
	n.MinRating = rating
	return n
}

// SetOrganic fija el filtro tri-estado de orgánicos
func (s State) SetOrganic(o Organic) State {
	n := s.clone()
	n.Organic = o
	return n
}

// SetInStock fija la bandera de stock (reservada, hoy no filtra)
func (s State) SetInStock(v bool) State {
	n := s.clone()
	n.InStock = v
	return n
}

// SetDiscountedOnly fija el filtro de productos en oferta
func (s State) SetDiscountedOnly(v bool) State {
	n := s.clone()
	n.DiscountedOnly = v
	return n
}

// Clear restablece todos los campos a sus valores por defecto
func (s State) Clear() State {
	return NewState()
}

// HasCustomRange indica si el rango de precios difiere del rango completo
func (s State) HasCustomRange() bool {
	return s.PriceMin > 0 || s.PriceMax < catalog.MaxPrice
}

// ActiveCount retorna cuántos grupos de filtros están activos
func (s State) ActiveCount() int {
	count := 0
	if len(s.Brands) > 0 {
		count++
	}
	if len(s.Categories) > 0 {
		count++
	}
	if s.HasCustomRange() {
		count++
	}
	if s.MinRating > 0 {
		count++
	}
	if len(s.Features) > 0 {
		count++
	}
	if len(s.ProductTypes) > 0 {
		count++
	}
	if s.Organic != OrganicUnset {
		count++
	}
	if s.InStock {
		count++
	}
	if s.DiscountedOnly {
		count++
	}
	return count
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
