package filter

import (
	"fmt"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"shopkart/internal/catalog"
)

// TagKind clasifica un tag de filtro activo
type TagKind string

const (
	TagCategory    TagKind = "category"
	TagBrand       TagKind = "brand"
	TagFeature     TagKind = "feature"
	TagProductType TagKind = "productType"
	TagRating      TagKind = "rating"
	TagOrganic     TagKind = "organic"
	TagDiscount    TagKind = "discount"
	TagPrice       TagKind = "price"
)

// Tag es la proyección removible de una contribución al estado de filtros
type Tag struct {
	Kind  TagKind `json:"kind"`
	Value string  `json:"value"`
	Label string  `json:"label"`
}

// precios con separadores de miles en formato indio
var rupees = message.NewPrinter(language.MustParse("en-IN"))

func formatRupees(v float64) string {
	return rupees.Sprintf("₹%v", number.Decimal(v))
}

// Tags proyecta el estado en la lista ordenada de filtros activos:
// categorías, marcas, features, tipos de producto, rating, orgánico,
// oferta y rango de precios
func (s State) Tags() []Tag {
	var tags []Tag

	for _, cat := range s.Categories {
		tags = append(tags, Tag{Kind: TagCategory, Value: cat, Label: cat})
	}
	for _, brand := range s.Brands {
		tags = append(tags, Tag{Kind: TagBrand, Value: brand, Label: brand})
	}
	for _, feature := range s.Features {
		tags = append(tags, Tag{Kind: TagFeature, Value: feature, Label: feature})
	}
	for _, pt := range s.ProductTypes {
		tags = append(tags, Tag{Kind: TagProductType, Value: pt, Label: pt})
	}

	if s.MinRating > 0 {
		tags = append(tags, Tag{
			Kind:  TagRating,
			Value: strconv.Itoa(s.MinRating),
			Label: fmt.Sprintf("%d★ & above", s.MinRating),
		})
	}

	if s.Organic == OrganicOnly {
		tags = append(tags, Tag{Kind: TagOrganic, Value: "true", Label: "Organic"})
	}

	if s.DiscountedOnly {
		tags = append(tags, Tag{Kind: TagDiscount, Value: "true", Label: "On Sale"})
	}

	if s.HasCustomRange() {
		tags = append(tags, Tag{
			Kind:  TagPrice,
			Value: fmt.Sprintf("%v-%v", s.PriceMin, s.PriceMax),
			Label: fmt.Sprintf("%s - %s", formatRupees(s.PriceMin), formatRupees(s.PriceMax)),
		})
	}

	return tags
}

// RemoveTag deshace exactamente la contribución del tag, sin tocar
// el resto de los campos. Un kind desconocido deja el estado igual.
func (s State) RemoveTag(t Tag) State {
	switch t.Kind {
	case TagCategory:
		return s.SetCategory(t.Value, false)
	case TagBrand:
		return s.Toggle(FieldBrands, t.Value)
	case TagFeature:
		return s.Toggle(FieldFeatures, t.Value)
	case TagProductType:
		return s.Toggle(FieldProductTypes, t.Value)
	case TagRating:
		return s.SetMinRating(0)
	case TagOrganic:
		return s.SetOrganic(OrganicUnset)
	case TagDiscount:
		return s.SetDiscountedOnly(false)
	case TagPrice:
		return s.SetRange(0, catalog.MaxPrice)
	}
	return s.clone()
}
