package repository

import (
	"time"

	"go-retail-crm/internal/model"

	"github.com/shopspring/decimal"
)

// Demo data written into any local collection that has never been touched, so
// the app is usable out of the box with no remote service running.

func SeedProducts() []model.Product {
	return []model.Product{
		{
			ID:                "P001",
			Name:              "Organic Avocados",
			Category:          model.CategoryFreshProduce,
			Description:       "Ripe organic avocados from local farms.",
			Price:             decimal.NewFromFloat(1.50),
			Quantity:          120,
			MinStockThreshold: 30,
			Supplier:          "Green Farms Co.",
			ExpiryDate:        "2024-12-01",
			ImageURL:          "https://picsum.photos/seed/avocado/200/200",
		},
		{
			ID:                "P002",
			Name:              "Whole Milk 1L",
			Category:          model.CategoryDairy,
			Description:       "Fresh whole milk, pasteurized.",
			Price:             decimal.NewFromFloat(2.20),
			Quantity:          45,
			MinStockThreshold: 50,
			Supplier:          "Dairy Peaks",
			ExpiryDate:        "2024-11-25",
			ImageURL:          "https://picsum.photos/seed/milk/200/200",
		},
		{
			ID:                "P003",
			Name:              "Quinoa 500g",
			Category:          model.CategoryPackagedGoods,
			Description:       "Organic white quinoa.",
			Price:             decimal.NewFromFloat(4.50),
			Quantity:          80,
			MinStockThreshold: 20,
			Supplier:          "Global Grains",
			ImageURL:          "https://picsum.photos/seed/quinoa/200/200",
		},
	}
}

func SeedCustomers() []model.Customer {
	return []model.Customer{
		{
			ID:            "C001",
			Name:          "John Doe",
			Email:         "john.doe@example.com",
			Phone:         "555-0101",
			LoyaltyPoints: 1250,
			TotalSpent:    decimal.NewFromFloat(450.75),
			JoinDate:      "2023-05-12",
			Preferences:   []string{"Organic", "Gluten-Free"},
		},
		{
			ID:            "C002",
			Name:          "Jane Smith",
			Email:         "jane.smith@example.com",
			Phone:         "555-0102",
			LoyaltyPoints: 340,
			TotalSpent:    decimal.NewFromFloat(120.40),
			JoinDate:      "2024-01-15",
			Preferences:   []string{"Beverages"},
		},
	}
}

func SeedOrders() []model.Order {
	return []model.Order{
		{
			ID:           "ORD-1001",
			CustomerID:   "C001",
			CustomerName: "John Doe",
			Items: []model.OrderItem{
				{ProductID: "P001", Name: "Organic Avocados", Quantity: 4, Price: decimal.NewFromFloat(1.50)},
			},
			TotalAmount:   decimal.NewFromFloat(6.00),
			Status:        model.OrderDelivered,
			OrderDate:     time.Date(2024, 11, 10, 14, 30, 0, 0, time.UTC),
			PaymentMethod: model.PaymentOnline,
		},
	}
}
