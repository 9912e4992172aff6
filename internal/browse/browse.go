// Package browse holds the catalog page state: the category filter and the
// product opened in the detail view.
package browse

import (
	"math"

	"github.com/nikolayk812/storefront-demo/internal/domain"
	"golang.org/x/text/currency"
)

// All is the filter value that shows the whole catalog.
const All = "All"

func Filters() []string {
	filters := []string{All}
	for _, c := range domain.Categories() {
		filters = append(filters, string(c))
	}
	return filters
}

// Filter keeps catalog order. The All filter returns the catalog itself.
func Filter(products []domain.Product, category string) []domain.Product {
	if category == All {
		return products
	}

	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if string(p.Category) == category {
			out = append(out, p)
		}
	}
	return out
}

// Browser is the state of one catalog page. It is not safe for concurrent use.
type Browser struct {
	category    string
	catalogSize int
	selected    *domain.Product
	unit        currency.Unit
}

func NewBrowser(catalogSize int, unit currency.Unit) *Browser {
	return &Browser{
		category:    All,
		catalogSize: catalogSize,
		unit:        unit,
	}
}

func (b *Browser) Category() string {
	return b.category
}

func (b *Browser) SelectCategory(category string) error {
	if category != All {
		if _, err := domain.ParseCategory(category); err != nil {
			return err
		}
	}

	b.category = category
	return nil
}

// Visible returns the filtered catalog. A change in catalog size since the
// last call resets the filter to All so a newly added product is shown.
func (b *Browser) Visible(catalog []domain.Product) []domain.Product {
	if len(catalog) != b.catalogSize {
		b.catalogSize = len(catalog)
		b.category = All
	}

	return Filter(catalog, b.category)
}

func (b *Browser) Open(product domain.Product) Details {
	b.selected = &product
	return NewDetails(product, b.unit)
}

func (b *Browser) Close() {
	b.selected = nil
}

func (b *Browser) Selected() (Details, bool) {
	if b.selected == nil {
		return Details{}, false
	}
	return NewDetails(*b.selected, b.unit), true
}

// Details is the read model of the product detail view.
type Details struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Price         string   `json:"price"`
	Image         string   `json:"image"`
	Category      string   `json:"category"`
	Description   string   `json:"description"`
	Specification string   `json:"specification,omitempty"`
	Stock         int      `json:"stock"`
	Rating        *float64 `json:"rating,omitempty"`
	Stars         int      `json:"stars"`
	LowStock      bool     `json:"lowStock"`
	OutOfStock    bool     `json:"outOfStock"`
}

func NewDetails(p domain.Product, unit currency.Unit) Details {
	d := Details{
		ID:            p.ID,
		Name:          p.Name,
		Price:         domain.NewMoney(p.Price, unit).String(),
		Image:         p.Image,
		Category:      string(p.Category),
		Description:   p.Description,
		Specification: p.Specification,
		Stock:         p.Quantity,
		Rating:        p.Rating,
		LowStock:      p.LowStock(),
		OutOfStock:    p.OutOfStock(),
	}

	if p.Rating != nil {
		d.Stars = int(math.Floor(*p.Rating))
	}

	return d
}
