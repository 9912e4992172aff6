package form_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/nikolayk812/storefront-demo/internal/domain"
	"github.com/nikolayk812/storefront-demo/internal/form"
	"github.com/nikolayk812/storefront-demo/internal/idgen"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingAdder struct {
	added []domain.Product
	err   error
}

func (a *recordingAdder) AddProduct(_ context.Context, p domain.Product) error {
	if a.err != nil {
		return a.err
	}
	a.added = append(a.added, p)
	return nil
}

type fixedIDs string

func (f fixedIDs) NewID() string {
	return string(f)
}

func fill(t *testing.T, d *form.Draft, fields map[string]string) {
	t.Helper()

	for k, v := range fields {
		require.NoError(t, d.Set(k, v))
	}
}

func TestSubmit(t *testing.T) {
	tests := []struct {
		name        string
		fields      map[string]string
		wantErrorIs error
		wantMessage string
		check       func(t *testing.T, p domain.Product)
	}{
		{
			name: "complete draft: ok",
			fields: map[string]string{
				form.FieldName:        "Desk Lamp",
				form.FieldPrice:       "24.99",
				form.FieldQuantity:    "7",
				form.FieldCategory:    string(domain.CategoryHomeKitchen),
				form.FieldDescription: "Warm light",
			},
			check: func(t *testing.T, p domain.Product) {
				assert.Equal(t, "id-1", p.ID)
				assert.Equal(t, "Desk Lamp", p.Name)
				assert.True(t, decimal.RequireFromString("24.99").Equal(p.Price))
				assert.Equal(t, 7, p.Quantity)
				assert.Equal(t, domain.CategoryHomeKitchen, p.Category)
				assert.Equal(t, form.DefaultImage, p.Image)
				assert.True(t, p.IsNew)
			},
		},
		{
			name: "category defaults to first: ok",
			fields: map[string]string{
				form.FieldName:     "Cable",
				form.FieldPrice:    "3",
				form.FieldQuantity: "0",
			},
			check: func(t *testing.T, p domain.Product) {
				assert.Equal(t, domain.CategoryElectronics, p.Category)
				assert.Equal(t, 0, p.Quantity)
			},
		},
		{
			name: "no range validation on price: ok",
			fields: map[string]string{
				form.FieldName:     "Refund",
				form.FieldPrice:    "-5",
				form.FieldQuantity: "2",
			},
			check: func(t *testing.T, p domain.Product) {
				assert.True(t, decimal.NewFromInt(-5).Equal(p.Price))
				assert.Equal(t, 2, p.Quantity)
			},
		},
		{
			name: "missing name: error",
			fields: map[string]string{
				form.FieldPrice:    "3",
				form.FieldQuantity: "1",
			},
			wantErrorIs: form.ErrRequiredFields,
			wantMessage: form.MsgRequiredFields,
		},
		{
			name: "blank quantity: error",
			fields: map[string]string{
				form.FieldName:     "Chair",
				form.FieldPrice:    "3",
				form.FieldQuantity: "   ",
			},
			wantErrorIs: form.ErrRequiredFields,
			wantMessage: form.MsgRequiredFields,
		},
		{
			name: "non-numeric price: error",
			fields: map[string]string{
				form.FieldName:     "Chair",
				form.FieldPrice:    "cheap",
				form.FieldQuantity: "1",
			},
			wantErrorIs: form.ErrInvalidNumber,
			wantMessage: form.MsgInvalidPrice,
		},
		{
			name: "fractional quantity: error",
			fields: map[string]string{
				form.FieldName:     "Chair",
				form.FieldPrice:    "10",
				form.FieldQuantity: "1.5",
			},
			wantErrorIs: form.ErrInvalidNumber,
			wantMessage: form.MsgInvalidQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adder := &recordingAdder{}
			f := form.New(adder, fixedIDs("id-1"), form.WithRedirectDelay(time.Second))

			d := f.NewDraft()
			fill(t, d, tt.fields)

			res, err := f.Submit(t.Context(), d)
			if tt.wantErrorIs != nil {
				require.ErrorIs(t, err, tt.wantErrorIs)

				var verr *form.ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, tt.wantMessage, verr.Message)
				assert.Empty(t, adder.added)
				return
			}
			require.NoError(t, err)

			require.Len(t, adder.added, 1)
			assert.Equal(t, adder.added[0], res.Product)
			assert.Equal(t, time.Second, res.RedirectAfter)
			tt.check(t, res.Product)
		})
	}
}

func TestSubmit_ResetsDraftOnSuccess(t *testing.T) {
	f := form.New(&recordingAdder{}, idgen.NewUUID())

	d := f.NewDraft()
	fill(t, d, map[string]string{
		form.FieldName:     gofakeit.ProductName(),
		form.FieldPrice:    "12",
		form.FieldQuantity: "3",
		form.FieldCategory: string(domain.CategoryApparel),
		form.FieldImage:    "https://example.com/shirt.png",
	})

	res, err := f.Submit(t.Context(), d)
	require.NoError(t, err)

	assert.Equal(t, `Product "`+res.Product.Name+`" added to inventory!`, res.Message)
	assert.Equal(t, "https://example.com/shirt.png", res.Product.Image)

	assert.Empty(t, d.Name)
	assert.Empty(t, d.Price)
	assert.Empty(t, d.Quantity)
	assert.Equal(t, domain.CategoryElectronics, d.Category)
	assert.Equal(t, form.DefaultImage, d.Image)
	assert.Empty(t, d.ImageInput())
}

func TestSubmit_KeepsDraftOnError(t *testing.T) {
	f := form.New(&recordingAdder{}, idgen.NewUUID())

	d := f.NewDraft()
	fill(t, d, map[string]string{form.FieldName: "Sofa"})

	_, err := f.Submit(t.Context(), d)
	require.Error(t, err)

	assert.Equal(t, "Sofa", d.Name)
}

func TestSubmit_AdderError(t *testing.T) {
	boom := errors.New("boom")
	f := form.New(&recordingAdder{err: boom}, idgen.NewUUID())

	d := f.NewDraft()
	fill(t, d, map[string]string{
		form.FieldName:     "Sofa",
		form.FieldPrice:    "300",
		form.FieldQuantity: "1",
	})

	_, err := f.Submit(t.Context(), d)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, "Sofa", d.Name)
}

func TestDraft_Set(t *testing.T) {
	f := form.New(&recordingAdder{}, idgen.NewUUID(), form.WithDefaultImage("https://example.com/none.png"))
	d := f.NewDraft()

	require.ErrorIs(t, d.Set(form.FieldCategory, "Toys"), domain.ErrUnknownCategory)
	require.ErrorIs(t, d.Set("color", "red"), form.ErrUnknownField)

	require.NoError(t, d.Set(form.FieldImage, "https://example.com/a.png"))
	assert.Equal(t, "https://example.com/a.png", d.ImageInput())

	require.NoError(t, d.Set(form.FieldImage, ""))
	assert.Equal(t, "https://example.com/none.png", d.Image)
	assert.Empty(t, d.ImageInput())
}
