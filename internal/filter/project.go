package filter

import (
	"slices"

	"shopkart/internal/models"
)

// Project filtra el snapshot con el pipeline de predicados y ordena el
// resultado con el comparador de sortKey. Es una función pura y total:
// con el mismo snapshot y estado produce siempre la misma secuencia,
// y sin coincidencias retorna una secuencia vacía
func Project(snapshot []*models.Product, s State, sortKey, query string) []*models.Product {
	pred := s.Predicate(query)
	out := make([]*models.Product, 0, len(snapshot))
	for _, p := range snapshot {
		if p == nil {
			continue
		}
		if pred(p) {
			out = append(out, p)
		}
	}
	// orden estable: los empates conservan el orden de iteración del catálogo
	slices.SortStableFunc(out, ComparatorFor(sortKey))
	return out
}
