package models

import "time"

// Order representa una orden de compra con sus items embebidos
type Order struct {
	ID              string      `json:"id" bson:"_id,omitempty"`
	UserID          string      `json:"user_id" bson:"user_id"`
	TotalAmount     float64     `json:"total_amount" bson:"total_amount"`
	Status          string      `json:"status" bson:"status"`
	ShippingAddress string      `json:"shipping_address" bson:"shipping_address"`
	Items           []OrderItem `json:"order_items" bson:"order_items"`
	CreatedAt       time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at" bson:"updated_at"`
}

// OrderItem es una línea de la orden; el precio queda congelado al momento de compra
type OrderItem struct {
	ProductID string  `json:"product_id" bson:"product_id"`
	Name      string  `json:"name" bson:"name"`
	Brand     string  `json:"brand,omitempty" bson:"brand,omitempty"`
	Category  string  `json:"category,omitempty" bson:"category,omitempty"`
	Quantity  int     `json:"quantity" bson:"quantity"`
	Price     float64 `json:"price" bson:"price"`
}
