// Package seed supplies the catalog the store starts from: the built-in demo
// catalog, a YAML or CSV file, or a generated fake catalog.
package seed

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/gocarina/gocsv"
	"github.com/nikolayk812/storefront-demo/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed products.yaml
var defaultCatalog []byte

// record is the file representation of a product.
type record struct {
	ID            string   `yaml:"id" csv:"id"`
	Name          string   `yaml:"name" csv:"name"`
	Price         string   `yaml:"price" csv:"price"`
	Quantity      int      `yaml:"quantity" csv:"quantity"`
	Category      string   `yaml:"category" csv:"category"`
	Image         string   `yaml:"image" csv:"image"`
	Description   string   `yaml:"description" csv:"description"`
	Specification string   `yaml:"specification" csv:"specification"`
	Rating        *float64 `yaml:"rating" csv:"rating,omitempty"`
}

type document struct {
	Products []record `yaml:"products"`
}

// Default returns the built-in demo catalog.
func Default() ([]domain.Product, error) {
	products, err := LoadYAML(bytes.NewReader(defaultCatalog))
	if err != nil {
		return nil, fmt.Errorf("LoadYAML: %w", err)
	}
	return products, nil
}

// LoadFile picks the decoder from the file extension.
func LoadFile(path string) ([]domain.Product, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("os.Open: %w", err)
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return LoadYAML(f)
	case ".csv":
		return LoadCSV(f)
	default:
		return nil, fmt.Errorf("seed file extension[%s] is not supported", ext)
	}
}

func LoadYAML(r io.Reader) ([]domain.Product, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("yaml.Decode: %w", err)
	}

	return mapRecordsToDomain(doc.Products)
}

func LoadCSV(r io.Reader) ([]domain.Product, error) {
	var records []record
	if err := gocsv.Unmarshal(r, &records); err != nil {
		return nil, fmt.Errorf("gocsv.Unmarshal: %w", err)
	}

	return mapRecordsToDomain(records)
}

// Fake generates n random products. The same non-zero seed yields the same catalog.
func Fake(n int, seed uint64) []domain.Product {
	faker := gofakeit.New(seed)
	categories := domain.Categories()

	products := make([]domain.Product, 0, n)
	for i := 0; i < n; i++ {
		rating := decimal.NewFromFloat(faker.Float64Range(1, 5)).Round(1).InexactFloat64()

		products = append(products, domain.Product{
			ID:          fmt.Sprintf("fake-%d", i+1),
			Name:        faker.ProductName(),
			Price:       decimal.NewFromFloat(faker.Price(5, 500)).Round(2),
			Quantity:    faker.Number(0, 25),
			Category:    categories[faker.Number(0, len(categories)-1)],
			Image:       fmt.Sprintf("https://placehold.co/200x200?text=Product+%d", i+1),
			Description: faker.ProductDescription(),
			Rating:      &rating,
		})
	}

	return products
}

func mapRecordToDomain(r record) (domain.Product, error) {
	if r.ID == "" {
		return domain.Product{}, fmt.Errorf("id is empty")
	}

	price, err := decimal.NewFromString(r.Price)
	if err != nil {
		return domain.Product{}, fmt.Errorf("price[%s] is not valid: %w", r.Price, err)
	}

	category, err := domain.ParseCategory(r.Category)
	if err != nil {
		return domain.Product{}, err
	}

	return domain.Product{
		ID:            r.ID,
		Name:          r.Name,
		Price:         price,
		Quantity:      r.Quantity,
		Category:      category,
		Image:         r.Image,
		Description:   r.Description,
		Specification: r.Specification,
		Rating:        r.Rating,
	}, nil
}

func mapRecordsToDomain(records []record) ([]domain.Product, error) {
	products := make([]domain.Product, 0, len(records))
	seen := make(map[string]struct{}, len(records))

	for _, r := range records {
		p, err := mapRecordToDomain(r)
		if err != nil {
			return nil, fmt.Errorf("mapRecordToDomain[%s]: %w", r.ID, err)
		}

		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("product id[%s] is duplicated", p.ID)
		}
		seen[p.ID] = struct{}{}

		products = append(products, p)
	}

	return products, nil
}
