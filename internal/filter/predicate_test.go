package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shopkart/internal/models"
)

func pct(v float64) *float64 { return &v }

func sampleCatalog() []*models.Product {
	return []*models.Product{
		{ID: "1", Name: "Organic Rice", Category: "Groceries", Brand: "Tata", Price: 200, Rating: 4.5, ReviewsCount: 50, DiscountPercentage: pct(10)},
		{ID: "2", Name: "Basmati Rice", Category: "Groceries", Brand: "India Gate", Price: 150, Rating: 3.0, ReviewsCount: 200},
		{ID: "3", Name: "Galaxy S24", Category: "Electronics", Brand: "Samsung", Price: 79999, Rating: 4.2, ReviewsCount: 1200, Description: "Flagship smartphone with AI camera", DiscountPercentage: pct(15)},
		{ID: "4", Name: "Running Shoes", Category: "Fashion", Brand: "Nike", Price: 4999, Rating: 4.0, ReviewsCount: 340},
	}
}

func ids(products []*models.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func matching(state State, query string) []string {
	pred := state.Predicate(query)
	var out []string
	for _, p := range sampleCatalog() {
		if pred(p) {
			out = append(out, p.ID)
		}
	}
	return out
}

func TestDefaultStateMatchesEverything(t *testing.T) {
	assert.Equal(t, []string{"1", "2", "3", "4"}, matching(NewState(), ""))
}

func TestSearchStage(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"matches name", "rice", []string{"1", "2"}},
		{"matches brand", "nike", []string{"4"}},
		{"matches category", "electronics", []string{"3"}},
		{"matches description", "flagship", []string{"3"}},
		{"case insensitive", "GALAXY", []string{"3"}},
		{"no match", "zzz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matching(NewState(), tt.query))
		})
	}
}

func TestCategoryStage(t *testing.T) {
	s := NewState().SetCategory("Groceries", true)
	assert.Equal(t, []string{"1", "2"}, matching(s, ""))

	s = s.SetCategory("Fashion", true)
	assert.Equal(t, []string{"1", "2", "4"}, matching(s, ""))
}

func TestEmptyCategoriesMatchesAtLeastAsMuchAsAnySelection(t *testing.T) {
	all := len(matching(NewState(), ""))
	for _, cat := range []string{"Electronics", "Groceries", "Fashion", "Home & Kitchen"} {
		narrowed := len(matching(NewState().SetCategory(cat, true), ""))
		assert.LessOrEqual(t, narrowed, all)
	}
}

func TestBrandStage(t *testing.T) {
	s := NewState().Toggle(FieldBrands, "Tata")
	assert.Equal(t, []string{"1"}, matching(s, ""))

	// una marca desconocida no es error, simplemente no matchea nada
	unknown := NewState().Toggle(FieldBrands, "NoSuchBrand")
	assert.Empty(t, matching(unknown, ""))
}

func TestPriceStageIsInclusiveAtBothEnds(t *testing.T) {
	s := NewState().SetRange(150, 200)
	assert.Equal(t, []string{"1", "2"}, matching(s, ""))

	exact := NewState().SetRange(200, 200)
	assert.Equal(t, []string{"1"}, matching(exact, ""))
}

func TestRatingStage(t *testing.T) {
	s := NewState().SetMinRating(4)
	assert.Equal(t, []string{"1", "3", "4"}, matching(s, ""))

	assert.Equal(t, []string{"1", "2", "3", "4"}, matching(NewState().SetMinRating(0), ""))
}

func TestOrganicStageRequiresGroceriesSelected(t *testing.T) {
	// sin Groceries seleccionada el filtro orgánico no aplica
	s := NewState().SetOrganic(OrganicOnly)
	assert.Equal(t, []string{"1", "2", "3", "4"}, matching(s, ""))

	s = s.SetCategory("Groceries", true)
	assert.Equal(t, []string{"1"}, matching(s, ""))

	nonOrganic := NewState().SetCategory("Groceries", true).SetOrganic(NonOrganicOnly)
	assert.Equal(t, []string{"2"}, matching(nonOrganic, ""))
}

func TestDiscountStage(t *testing.T) {
	s := NewState().SetDiscountedOnly(true)

	// sin discount_percentage el producto queda excluido
	assert.Equal(t, []string{"1", "3"}, matching(s, ""))
	assert.Equal(t, []string{"1", "2", "3", "4"}, matching(NewState(), ""))
}

func TestFeaturesAndProductTypesDoNotFilter(t *testing.T) {
	s := NewState().
		Toggle(FieldFeatures, "5G Support").
		Toggle(FieldProductTypes, "Staples").
		SetInStock(true)

	assert.Equal(t, []string{"1", "2", "3", "4"}, matching(s, ""))
}
