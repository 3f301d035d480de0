package model

import "github.com/shopspring/decimal"

type Customer struct {
	ID            string          `json:"id" validate:"required"`
	Name          string          `json:"name" validate:"required"`
	Email         string          `json:"email" validate:"omitempty,email"`
	Phone         string          `json:"phone"`
	LoyaltyPoints int             `json:"loyaltyPoints" validate:"gte=0"`
	TotalSpent    decimal.Decimal `json:"totalSpent" validate:"decimal_gte0"`
	JoinDate      string          `json:"joinDate"`
	Preferences   []string        `json:"preferences"`
}
