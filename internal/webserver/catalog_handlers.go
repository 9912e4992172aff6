package webserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nikolayk812/storefront-demo/internal/browse"
	"github.com/nikolayk812/storefront-demo/internal/domain"
	"github.com/nikolayk812/storefront-demo/internal/form"
	"github.com/spf13/cast"
)

type productListResponse struct {
	Category string           `json:"category"`
	Filters  []string         `json:"filters"`
	Products []domain.Product `json:"products"`
}

type modalResponse struct {
	Open    bool            `json:"open"`
	Product *browse.Details `json:"product,omitempty"`
}

type draftResponse struct {
	Name          string `json:"name"`
	Price         string `json:"price"`
	Quantity      string `json:"quantity"`
	Category      string `json:"category"`
	Image         string `json:"image"`
	ImageInput    string `json:"imageInput"`
	Description   string `json:"description"`
	Specification string `json:"specification"`
}

type submitResponse struct {
	Product         domain.Product `json:"product"`
	Message         string         `json:"message"`
	RedirectAfterMs int64          `json:"redirectAfterMs"`
}

func (s *Server) listCategories(c echo.Context) error {
	return ok(c, browse.Filters())
}

// listProducts applies the optional category query to the page filter before listing.
func (s *Server) listProducts(c echo.Context) error {
	catalog := s.store.Catalog()

	s.mu.Lock()
	defer s.mu.Unlock()

	visible := s.browser.Visible(catalog)

	if category := c.QueryParam("category"); category != "" {
		if err := s.browser.SelectCategory(category); err != nil {
			return failErr(c, err)
		}
		visible = s.browser.Visible(catalog)
	}

	return ok(c, productListResponse{
		Category: s.browser.Category(),
		Filters:  browse.Filters(),
		Products: visible,
	})
}

func (s *Server) getProduct(c echo.Context) error {
	p, err := s.store.Product(c.Param("id"))
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, browse.NewDetails(p, s.store.Currency()))
}

// createProduct submits a whole add-product form in one request.
func (s *Server) createProduct(c echo.Context) error {
	var payload map[string]interface{}
	if err := s.echo.JSONSerializer.Deserialize(c, &payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse product", err.Error())
	}

	d := s.form.NewDraft()
	for field, value := range payload {
		str, err := cast.ToStringE(value)
		if err != nil {
			return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Field "+field+" must be a scalar", nil)
		}
		if err := d.Set(field, str); err != nil {
			return failErr(c, err)
		}
	}

	return s.submit(c, d)
}

func (s *Server) getModal(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	details, open := s.browser.Selected()
	if !open {
		return ok(c, modalResponse{})
	}
	return ok(c, modalResponse{Open: true, Product: &details})
}

func (s *Server) openModal(c echo.Context) error {
	p, err := s.store.Product(c.Param("id"))
	if err != nil {
		return failErr(c, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	details := s.browser.Open(p)
	return ok(c, modalResponse{Open: true, Product: &details})
}

func (s *Server) closeModal(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.browser.Close()
	return ok(c, modalResponse{})
}

func (s *Server) getDraft(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return ok(c, newDraftResponse(s.draft))
}

func (s *Server) setDraftField(c echo.Context) error {
	var payload struct {
		Value interface{} `json:"value"`
	}
	if err := s.echo.JSONSerializer.Deserialize(c, &payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse field", err.Error())
	}

	value, err := cast.ToStringE(payload.Value)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Value must be a scalar", nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.draft.Set(c.Param("field"), value); err != nil {
		return failErr(c, err)
	}

	return ok(c, newDraftResponse(s.draft))
}

func (s *Server) submitDraft(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.submit(c, s.draft)
}

func (s *Server) submit(c echo.Context, d *form.Draft) error {
	res, err := s.form.Submit(c.Request().Context(), d)
	if err != nil {
		return failErr(c, err)
	}

	return c.JSON(http.StatusCreated, envelope{Success: true, Data: submitResponse{
		Product:         res.Product,
		Message:         res.Message,
		RedirectAfterMs: res.RedirectAfter.Milliseconds(),
	}})
}

func newDraftResponse(d *form.Draft) draftResponse {
	return draftResponse{
		Name:          d.Name,
		Price:         d.Price,
		Quantity:      d.Quantity,
		Category:      string(d.Category),
		Image:         d.Image,
		ImageInput:    d.ImageInput(),
		Description:   d.Description,
		Specification: d.Specification,
	}
}
