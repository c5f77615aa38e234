package filter

import (
	"strings"

	"shopkart/internal/models"
)

// Predicate es un test de inclusión sobre un producto
type Predicate func(p *models.Product) bool

// Predicate compone los criterios activos en un único test de inclusión:
// el producto pasa solo si todas las etapas activas pasan (AND lógico).
// Una etapa en su valor por defecto pasa siempre.
func (s State) Predicate(query string) Predicate {
	var stages []Predicate

	if query != "" {
		q := strings.ToLower(query)
		stages = append(stages, func(p *models.Product) bool {
			return strings.Contains(strings.ToLower(p.Name), q) ||
				strings.Contains(strings.ToLower(p.Brand), q) ||
				strings.Contains(strings.ToLower(p.Category), q) ||
				(p.Description != "" && strings.Contains(strings.ToLower(p.Description), q))
		})
	}

	if len(s.Categories) > 0 {
		categories := s.Categories
		stages = append(stages, func(p *models.Product) bool {
			return contains(categories, p.Category)
		})
	}

	if len(s.Brands) > 0 {
		brands := s.Brands
		stages = append(stages, func(p *models.Product) bool {
			return contains(brands, p.Brand)
		})
	}

	// rango de precios, inclusivo en ambos extremos
	min, max := s.PriceMin, s.PriceMax
	stages = append(stages, func(p *models.Product) bool {
		return p.Price >= min && p.Price <= max
	})

	if s.MinRating > 0 {
		minRating := float64(s.MinRating)
		stages = append(stages, func(p *models.Product) bool {
			return p.Rating >= minRating
		})
	}

	// el filtro orgánico solo aplica con Groceries seleccionada;
	// un producto es orgánico si su nombre contiene "organic"
	if s.Organic != OrganicUnset && contains(s.Categories, "Groceries") {
		wantOrganic := s.Organic == OrganicOnly
		stages = append(stages, func(p *models.Product) bool {
			isOrganic := strings.Contains(strings.ToLower(p.Name), "organic")
			return isOrganic == wantOrganic
		})
	}

	if s.DiscountedOnly {
		stages = append(stages, func(p *models.Product) bool {
			return p.DiscountPercentage != nil && *p.DiscountPercentage > 0
		})
	}

	// Features, ProductTypes e InStock se aceptan en el estado y se
	// exponen como tags, pero no tienen etapa en el pipeline.

	return func(p *models.Product) bool {
		for _, stage := range stages {
			if !stage(p) {
				return false
			}
		}
		return true
	}
}
