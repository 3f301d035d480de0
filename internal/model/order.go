package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderPending    OrderStatus = "Pending"
	OrderProcessing OrderStatus = "Processing"
	OrderShipped    OrderStatus = "Shipped"
	OrderDelivered  OrderStatus = "Delivered"
	OrderCancelled  OrderStatus = "Cancelled"
)

type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "Cash"
	PaymentCard   PaymentMethod = "Card"
	PaymentOnline PaymentMethod = "Online"
)

// OrderItem is a line of an order. Name and Price are snapshots taken at sale
// time; they must not follow later product edits.
type OrderItem struct {
	ProductID string          `json:"productId" validate:"required"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity" validate:"required,gt=0"`
	Price     decimal.Decimal `json:"price" validate:"decimal_gte0"`
}

// Subtotal returns price * quantity for this line.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order is immutable once committed. CustomerID empty means a guest sale.
type Order struct {
	ID            string          `json:"id"`
	CustomerID    string          `json:"customerId"`
	CustomerName  string          `json:"customerName"`
	Items         []OrderItem     `json:"items" validate:"required,min=1,dive"`
	TotalAmount   decimal.Decimal `json:"totalAmount" validate:"decimal_gte0"`
	Status        OrderStatus     `json:"status" validate:"omitempty,oneof=Pending Processing Shipped Delivered Cancelled"`
	OrderDate     time.Time       `json:"orderDate"`
	PaymentMethod PaymentMethod   `json:"paymentMethod" validate:"omitempty,oneof=Cash Card Online"`
}
