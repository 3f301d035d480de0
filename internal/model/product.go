package model

import "github.com/shopspring/decimal"

type Category string

const (
	CategoryFreshProduce       Category = "Fresh Produce"
	CategoryDairy              Category = "Dairy"
	CategoryPackagedGoods      Category = "Packaged Goods"
	CategoryHouseholdEssential Category = "Household Essentials"
	CategoryBeverages          Category = "Beverages"
	CategoryFrozenFoods        Category = "Frozen Foods"
)

// Categories lists every valid product category, in display order.
func Categories() []Category {
	return []Category{
		CategoryFreshProduce,
		CategoryDairy,
		CategoryPackagedGoods,
		CategoryHouseholdEssential,
		CategoryBeverages,
		CategoryFrozenFoods,
	}
}

type Product struct {
	ID                string          `json:"id" validate:"required"`
	Name              string          `json:"name" validate:"required"`
	Category          Category        `json:"category" validate:"required,category"`
	Description       string          `json:"description"`
	Price             decimal.Decimal `json:"price" validate:"decimal_gte0"`
	Quantity          int             `json:"quantity" validate:"gte=0"`
	MinStockThreshold int             `json:"minStockThreshold" validate:"gte=0"`
	Supplier          string          `json:"supplier"`
	ExpiryDate        string          `json:"expiryDate,omitempty"`
	ImageURL          string          `json:"imageUrl"`
}

// LowStock reports whether the product has fallen to or below its configured
// minimum threshold. Derived at read time, never stored.
func (p Product) LowStock() bool {
	return p.Quantity <= p.MinStockThreshold
}
