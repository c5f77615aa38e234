package filter

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"shopkart/internal/models"
)

func sorted(products []*models.Product, key string) []string {
	out := make([]*models.Product, len(products))
	copy(out, products)
	slices.SortStableFunc(out, ComparatorFor(key))
	return ids(out)
}

func TestSortByName(t *testing.T) {
	assert.Equal(t, []string{"2", "3", "1", "4"}, sorted(sampleCatalog(), "name"))
}

func TestSortByPrice(t *testing.T) {
	assert.Equal(t, []string{"2", "1", "4", "3"}, sorted(sampleCatalog(), "price-low"))
	assert.Equal(t, []string{"3", "4", "1", "2"}, sorted(sampleCatalog(), "price-high"))
}

func TestSortByRating(t *testing.T) {
	assert.Equal(t, []string{"1", "3", "4", "2"}, sorted(sampleCatalog(), "rating"))
}

func TestSortByPopularity(t *testing.T) {
	catalog := []*models.Product{
		{ID: "1", Name: "Organic Rice", ReviewsCount: 50},
		{ID: "2", Name: "Basmati Rice", ReviewsCount: 200},
	}
	assert.Equal(t, []string{"2", "1"}, sorted(catalog, "popularity"))
}

func TestSortByDiscountTreatsMissingAsZero(t *testing.T) {
	assert.Equal(t, []string{"3", "1", "2", "4"}, sorted(sampleCatalog(), "discount"))
}

func TestNewestIsAliasOfName(t *testing.T) {
	assert.Equal(t, sorted(sampleCatalog(), "name"), sorted(sampleCatalog(), "newest"))
}

func TestUnknownKeyFallsBackToName(t *testing.T) {
	assert.Equal(t, sorted(sampleCatalog(), "name"), sorted(sampleCatalog(), "whatever"))
	assert.Equal(t, sorted(sampleCatalog(), "name"), sorted(sampleCatalog(), ""))
}

func TestTiesKeepInputOrder(t *testing.T) {
	catalog := []*models.Product{
		{ID: "a", Name: "Same", Price: 100},
		{ID: "b", Name: "Same", Price: 100},
		{ID: "c", Name: "Same", Price: 100},
	}
	assert.Equal(t, []string{"a", "b", "c"}, sorted(catalog, "price-low"))
	assert.Equal(t, []string{"a", "b", "c"}, sorted(catalog, "name"))
}

func TestSortKeysRegistry(t *testing.T) {
	keys := SortKeys()
	for _, want := range []string{"name", "price-low", "price-high", "rating", "discount", "popularity", "newest"} {
		assert.Contains(t, keys, want)
	}
}
