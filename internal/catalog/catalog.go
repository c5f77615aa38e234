package catalog

// MaxPrice es el precio máximo del catálogo; el rango de precios por defecto es [0, MaxPrice]
const MaxPrice float64 = 200000

// CategoryFacets agrupa los valores de facetas válidos para una categoría
type CategoryFacets struct {
	Brands        []string `json:"brands"`
	Features      []string `json:"features,omitempty"`
	ProductTypes  []string `json:"product_types,omitempty"`
	Subcategories []string `json:"subcategories"`
}

// Categories define el orden de iteración del catálogo
var Categories = []string{"Electronics", "Groceries", "Fashion", "Home & Kitchen"}

var facets = map[string]CategoryFacets{
	"Electronics": {
		Brands:        []string{"Apple", "Samsung", "OnePlus", "Xiaomi", "boAt", "Sony", "Dell", "LG", "Philips"},
		Features:      []string{"5G Support", "Fast Charging", "Wireless Charging", "Waterproof", "Noise Cancellation", "Touch Screen", "Smart Features"},
		Subcategories: []string{"Smartphones", "Laptops", "Tablets", "Audio", "TVs", "Accessories"},
	},
	"Groceries": {
		Brands:        []string{"Amul", "Tata", "Nestle", "Britannia", "FreshMart", "GreenFresh", "Mother Dairy", "Lays", "Coca Cola", "Real", "India Gate", "Aashirvaad", "Organic India"},
		ProductTypes:  []string{"Fruits", "Vegetables", "Dairy", "Snacks", "Beverages", "Staples", "Organic"},
		Subcategories: []string{"Fresh Produce", "Dairy & Eggs", "Snacks & Beverages", "Staples & Cooking"},
	},
	"Fashion": {
		Brands:        []string{"Nike", "Adidas", "Levi's", "Fabindia", "Allen Solly", "Puma", "Reebok"},
		Features:      []string{"Cotton", "Denim", "Formal", "Casual", "Sports", "Traditional"},
		Subcategories: []string{"Men's Clothing", "Women's Clothing", "Footwear", "Accessories"},
	},
	"Home & Kitchen": {
		Brands:        []string{"Prestige", "Hawkins", "Philips", "Bajaj", "Pigeon", "Butterfly"},
		Features:      []string{"Non-stick", "Stainless Steel", "Energy Efficient", "Digital Display"},
		Subcategories: []string{"Cookware", "Small Appliances", "Storage", "Dining"},
	},
}

// Get retorna las facetas de una categoría
func Get(category string) (CategoryFacets, bool) {
	f, ok := facets[category]
	return f, ok
}

// IsKnownCategory indica si la categoría existe en el catálogo
func IsKnownCategory(name string) bool {
	_, ok := facets[name]
	return ok
}

// BrandsFor retorna las marcas aplicables a la selección actual.
// Con exactamente una categoría conocida retorna su lista en orden de catálogo;
// en cualquier otro caso retorna la unión deduplicada de todas las categorías.
func BrandsFor(selected []string) []string {
	if len(selected) == 1 {
		if f, ok := facets[selected[0]]; ok {
			out := make([]string, len(f.Brands))
			copy(out, f.Brands)
			return out
		}
	}
	return AllBrands()
}

// AllBrands retorna la unión de marcas de todas las categorías,
// en orden de primera aparición según Categories
func AllBrands() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, cat := range Categories {
		for _, b := range facets[cat].Brands {
			if _, ok := seen[b]; ok {
				continue
			}
			seen[b] = struct{}{}
			out = append(out, b)
		}
	}
	return out
}

// FeaturesFor retorna las features de la selección; solo están definidas
// cuando hay exactamente una categoría seleccionada y esta declara features
func FeaturesFor(selected []string) ([]string, bool) {
	if len(selected) != 1 {
		return nil, false
	}
	f, ok := facets[selected[0]]
	if !ok || len(f.Features) == 0 {
		return nil, false
	}
	out := make([]string, len(f.Features))
	copy(out, f.Features)
	return out, true
}

// ProductTypesFor retorna los tipos de producto de la selección; misma regla que FeaturesFor
func ProductTypesFor(selected []string) ([]string, bool) {
	if len(selected) != 1 {
		return nil, false
	}
	f, ok := facets[selected[0]]
	if !ok || len(f.ProductTypes) == 0 {
		return nil, false
	}
	out := make([]string, len(f.ProductTypes))
	copy(out, f.ProductTypes)
	return out, true
}
