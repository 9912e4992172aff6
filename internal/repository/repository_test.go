package repository_test

import (
	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/nikolayk812/storefront-demo/internal/domain"
	"github.com/shopspring/decimal"
)

func randomProduct() domain.Product {
	return domain.Product{
		ID:          uuid.NewString(),
		Name:        gofakeit.ProductName(),
		Price:       decimal.NewFromFloat(gofakeit.Price(1, 100)),
		Quantity:    gofakeit.Number(0, 30),
		Category:    randomCategory(),
		Image:       gofakeit.URL(),
		Description: gofakeit.ProductDescription(),
	}
}

func randomCategory() domain.Category {
	categories := domain.Categories()
	return categories[gofakeit.Number(0, len(categories)-1)]
}
