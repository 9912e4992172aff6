// Package form implements the add-product form: a mutable draft filled field by
// field and validated as a whole on submit.
package form

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nikolayk812/storefront-demo/internal/domain"
	"github.com/nikolayk812/storefront-demo/internal/idgen"
	"github.com/nikolayk812/storefront-demo/internal/port"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
	"go.uber.org/zap"
)

const (
	FieldName          = "name"
	FieldPrice         = "price"
	FieldQuantity      = "quantity"
	FieldCategory      = "category"
	FieldImage         = "image"
	FieldDescription   = "description"
	FieldSpecification = "specification"
)

const DefaultImage = "https://placehold.co/200x200/5283FF/ffffff?text=New+Product"

const (
	MsgRequiredFields  = "Please fill in Name, Price, and Quantity."
	MsgInvalidPrice    = "Please enter a number for Price."
	MsgInvalidQuantity = "Please enter a whole number for Quantity."
)

var (
	ErrRequiredFields = errors.New("name, price and quantity are required")
	ErrInvalidNumber  = errors.New("invalid number")
	ErrUnknownField   = errors.New("unknown field")
)

// ValidationError carries the message shown inline next to the form.
type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

type Draft struct {
	Name          string
	Price         string
	Quantity      string
	Category      domain.Category
	Image         string
	Description   string
	Specification string

	defaultImage string
}

func (d *Draft) Set(field, value string) error {
	switch field {
	case FieldName:
		d.Name = value
	case FieldPrice:
		d.Price = value
	case FieldQuantity:
		d.Quantity = value
	case FieldCategory:
		c, err := domain.ParseCategory(value)
		if err != nil {
			return err
		}
		d.Category = c
	case FieldImage:
		d.Image = value
		if value == "" {
			d.Image = d.defaultImage
		}
	case FieldDescription:
		d.Description = value
	case FieldSpecification:
		d.Specification = value
	default:
		return fmt.Errorf("field[%s]: %w", field, ErrUnknownField)
	}

	return nil
}

// ImageInput is the value for the image URL input; it stays blank while the draft shows the placeholder.
func (d *Draft) ImageInput() string {
	if d.Image == d.defaultImage {
		return ""
	}
	return d.Image
}

func (d *Draft) Reset() {
	*d = Draft{
		Category:     domain.Categories()[0],
		Image:        d.defaultImage,
		defaultImage: d.defaultImage,
	}
}

// Product validates the draft and coerces it into a new product.
func (d *Draft) Product(id string) (domain.Product, error) {
	name := strings.TrimSpace(d.Name)
	priceStr := strings.TrimSpace(d.Price)
	qtyStr := strings.TrimSpace(d.Quantity)

	if name == "" || priceStr == "" || qtyStr == "" {
		return domain.Product{}, &ValidationError{Message: MsgRequiredFields, Err: ErrRequiredFields}
	}

	price, err := decimal.NewFromString(priceStr)
	if err != nil {
		return domain.Product{}, &ValidationError{
			Message: MsgInvalidPrice,
			Err:     fmt.Errorf("price[%s]: %w", priceStr, ErrInvalidNumber),
		}
	}

	qty, err := cast.ToIntE(qtyStr)
	if err != nil {
		return domain.Product{}, &ValidationError{
			Message: MsgInvalidQuantity,
			Err:     fmt.Errorf("quantity[%s]: %w", qtyStr, ErrInvalidNumber),
		}
	}

	category := d.Category
	if category == "" {
		category = domain.Categories()[0]
	}

	return domain.Product{
		ID:            id,
		Name:          name,
		Price:         price,
		Quantity:      qty,
		Category:      category,
		Image:         d.Image,
		Description:   d.Description,
		Specification: d.Specification,
		IsNew:         true,
	}, nil
}

type Result struct {
	Product       domain.Product
	Message       string
	RedirectAfter time.Duration
}

type Form struct {
	adder         port.ProductAdder
	ids           idgen.Generator
	defaultImage  string
	redirectDelay time.Duration
	logger        *zap.Logger
}

type Option func(*Form)

func WithDefaultImage(url string) Option {
	return func(f *Form) {
		if url != "" {
			f.defaultImage = url
		}
	}
}

// WithRedirectDelay sets the pause reported to the caller before leaving the form.
func WithRedirectDelay(d time.Duration) Option {
	return func(f *Form) {
		f.redirectDelay = d
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(f *Form) {
		f.logger = logger
	}
}

func New(adder port.ProductAdder, ids idgen.Generator, opts ...Option) *Form {
	f := &Form{
		adder:         adder,
		ids:           ids,
		defaultImage:  DefaultImage,
		redirectDelay: 1500 * time.Millisecond,
		logger:        zap.NewNop(),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

func (f *Form) NewDraft() *Draft {
	d := &Draft{defaultImage: f.defaultImage}
	d.Reset()
	return d
}

// Submit adds the drafted product to the catalog and resets the draft. On a
// validation error the draft is left untouched.
func (f *Form) Submit(ctx context.Context, d *Draft) (Result, error) {
	product, err := d.Product(f.ids.NewID())
	if err != nil {
		f.logger.Debug("add product rejected", zap.Error(err))
		return Result{}, err
	}

	if err := f.adder.AddProduct(ctx, product); err != nil {
		return Result{}, fmt.Errorf("adder.AddProduct: %w", err)
	}

	f.logger.Info("product added to inventory",
		zap.String("product_id", product.ID),
		zap.String("name", product.Name))

	d.Reset()

	return Result{
		Product:       product,
		Message:       fmt.Sprintf("Product %q added to inventory!", product.Name),
		RedirectAfter: f.redirectDelay,
	}, nil
}
