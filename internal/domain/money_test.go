package domain_test

import (
	"testing"

	"github.com/nikolayk812/storefront-demo/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

func TestMoney_String(t *testing.T) {
	tests := []struct {
		name  string
		money domain.Money
		want  string
	}{
		{
			name:  "usd pads to two decimals",
			money: domain.NewMoney(decimal.NewFromInt(20), currency.USD),
			want:  "USD 20.00",
		},
		{
			name:  "jpy has no minor units",
			money: domain.NewMoney(decimal.NewFromInt(1500), currency.JPY),
			want:  "JPY 1500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.money.String())
		})
	}
}

func TestMoney_Display(t *testing.T) {
	m := domain.NewMoney(decimal.RequireFromString("12.5"), currency.EUR)

	assert.NotEmpty(t, m.Display(language.English))
}
