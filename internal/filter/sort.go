package filter

import (
	"cmp"
	"slices"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"shopkart/internal/models"
)

// Comparator ordena dos productos; retorna <0, 0 o >0 como strings.Compare
type Comparator func(a, b *models.Product) int

// DefaultSortKey se usa cuando no se indica orden o la clave es desconocida
const DefaultSortKey = "name"

var (
	// el collator de x/text no es seguro para uso concurrente
	collMu   sync.Mutex
	collator = collate.New(language.English, collate.Loose)
)

func compareNames(a, b *models.Product) int {
	collMu.Lock()
	defer collMu.Unlock()
	return collator.CompareString(a.Name, b.Name)
}

var comparators = map[string]Comparator{
	"name": compareNames,
	"price-low": func(a, b *models.Product) int {
		return cmp.Compare(a.Price, b.Price)
	},
	"price-high": func(a, b *models.Product) int {
		return cmp.Compare(b.Price, a.Price)
	},
	"rating": func(a, b *models.Product) int {
		return cmp.Compare(b.Rating, a.Rating)
	},
	"discount": func(a, b *models.Product) int {
		return cmp.Compare(b.Discount(), a.Discount())
	},
	"popularity": func(a, b *models.Product) int {
		return cmp.Compare(b.ReviewsCount, a.ReviewsCount)
	},
	// no existe campo de fecha en el modelo; "newest" conserva el orden por nombre
	"newest": compareNames,
}

// ComparatorFor retorna el comparador registrado para la clave,
// o el comparador por defecto si la clave es desconocida
func ComparatorFor(key string) Comparator {
	if c, ok := comparators[key]; ok {
		return c
	}
	return comparators[DefaultSortKey]
}

// SortKeys retorna las claves de orden registradas
func SortKeys() []string {
	keys := make([]string, 0, len(comparators))
	for k := range comparators {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
