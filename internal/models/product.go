package models

import "time"

// Product representa un producto en el catálogo
type Product struct {
	ID                 string    `json:"id" bson:"_id,omitempty"`
	Name               string    `json:"name" bson:"name" binding:"required"`
	Description        string    `json:"description,omitempty" bson:"description,omitempty"`
	Category           string    `json:"category" bson:"category" binding:"required"`
	Brand              string    `json:"brand" bson:"brand" binding:"required"`
	Price              float64   `json:"price" bson:"price" binding:"min=0"`
	OriginalPrice      *float64  `json:"original_price,omitempty" bson:"original_price,omitempty"`
	Image              string    `json:"image,omitempty" bson:"image,omitempty"`
	Rating             float64   `json:"rating" bson:"rating" binding:"min=0,max=5"`
	ReviewsCount       int       `json:"reviews_count" bson:"reviews_count"`
	DiscountPercentage *float64  `json:"discount_percentage,omitempty" bson:"discount_percentage,omitempty"`
	IsDeleted          bool      `json:"-" bson:"is_deleted"`
	CreatedAt          time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" bson:"updated_at"`
}

// Discount retorna el porcentaje de descuento, 0 si no tiene
func (p *Product) Discount() float64 {
	if p.DiscountPercentage == nil {
		return 0
	}
	return *p.DiscountPercentage
}

// ProductUpdate representa los campos actualizables de un producto
type ProductUpdate struct {
	Name               *string  `json:"name,omitempty"`
	Description        *string  `json:"description,omitempty"`
	Category           *string  `json:"category,omitempty"`
	Brand              *string  `json:"brand,omitempty"`
	Price              *float64 `json:"price,omitempty"`
	OriginalPrice      *float64 `json:"original_price,omitempty"`
	Image              *string  `json:"image,omitempty"`
	Rating             *float64 `json:"rating,omitempty"`
	ReviewsCount       *int     `json:"reviews_count,omitempty"`
	DiscountPercentage *float64 `json:"discount_percentage,omitempty"`
}
