package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"shopkart/internal/models"
	"shopkart/internal/repository"
)

type OrderHandler struct {
	orders   *repository.OrderRepository
	products *repository.ProductRepository
}

func NewOrderHandler(orders *repository.OrderRepository, products *repository.ProductRepository) *OrderHandler {
	return &OrderHandler{orders: orders, products: products}
}

type createOrderItem struct {
	ProductID string  `json:"product_id" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
	Price     float64 `json:"price" binding:"min=0"`
}

type createOrderRequest struct {
	UserID          string            `json:"user_id" binding:"required"`
	ShippingAddress string            `json:"shipping_address"`
	Items           []createOrderItem `json:"items" binding:"required,min=1,dive"`
}

// CreateOrder crea una orden a partir de los items del carrito; el total
// se calcula en el servidor con los precios congelados de cada item
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.ShippingAddress == "" {
		req.ShippingAddress = "Default Address"
	}

	order := &models.Order{
		UserID:          req.UserID,
		ShippingAddress: req.ShippingAddress,
	}

	for _, item := range req.Items {
		orderItem := models.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
		// enriquecer con los datos del producto si todavía existe
		if product, err := h.products.FindByID(c.Request.Context(), item.ProductID); err == nil {
			orderItem.Name = product.Name
			orderItem.Brand = product.Brand
			orderItem.Category = product.Category
		}
		order.TotalAmount += item.Price * float64(item.Quantity)
		order.Items = append(order.Items, orderItem)
	}

	if err := h.orders.Create(c.Request.Context(), order); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create order"})
		return
	}

	c.JSON(http.StatusCreated, order)
}

// GetOrders lista las órdenes de un usuario, más recientes primero
func (h *OrderHandler) GetOrders(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	orders, err := h.orders.FindByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list orders"})
		return
	}
	if orders == nil {
		orders = []*models.Order{}
	}

	c.JSON(http.StatusOK, gin.H{"data": orders})
}

// GetOrder obtiene una orden por ID
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.orders.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get order"})
		return
	}

	c.JSON(http.StatusOK, order)
}
