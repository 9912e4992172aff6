package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrUnknownCategory = errors.New("unknown category")
)

type Category string

const (
	CategoryElectronics Category = "Electronics"
	CategoryFurniture   Category = "Furniture"
	CategoryHomeKitchen Category = "Home & Kitchen"
	CategoryApparel     Category = "Apparel"
)

// LowStockThreshold is the stock level below which a product is flagged as running out.
const LowStockThreshold = 5

// Categories returns the fixed category set in display order.
func Categories() []Category {
	return []Category{
		CategoryElectronics,
		CategoryFurniture,
		CategoryHomeKitchen,
		CategoryApparel,
	}
}

func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if string(c) == s {
			return c, nil
		}
	}

	return "", fmt.Errorf("category[%s]: %w", s, ErrUnknownCategory)
}

type Product struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	Quantity      int             `json:"quantity"`
	Category      Category        `json:"category"`
	Image         string          `json:"image"`
	Description   string          `json:"description"`
	Specification string          `json:"specification,omitempty"`
	Rating        *float64        `json:"rating,omitempty"`
	IsNew         bool            `json:"isNew,omitempty"`
}

func (p Product) LowStock() bool {
	return p.Quantity > 0 && p.Quantity < LowStockThreshold
}

func (p Product) OutOfStock() bool {
	return p.Quantity <= 0
}
