package entity

import (
	"github.com/shopspring/decimal"
)

// Procedure is a bookable medical procedure offering, priced in BRL
type Procedure struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
}
