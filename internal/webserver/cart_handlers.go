package webserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nikolayk812/storefront-demo/internal/cartview"
	"github.com/nikolayk812/storefront-demo/internal/domain"
)

type summaryResponse struct {
	Totals              domain.Totals `json:"totals"`
	OverallTotalDisplay string        `json:"overallTotalDisplay"`
	CheckoutEnabled     bool          `json:"checkoutEnabled"`
	CheckoutLabel       string        `json:"checkoutLabel"`
}

type cartChangeResponse struct {
	Applied bool          `json:"applied"`
	Cart    cartview.Page `json:"cart"`
}

func (s *Server) getCart(c echo.Context) error {
	return ok(c, cartview.NewPage(s.store.Snapshot()))
}

// updateCart is the raw update-cart entry point; the quantity is stored as sent.
func (s *Server) updateCart(c echo.Context) error {
	var payload struct {
		Quantity *int `json:"quantity"`
	}
	if err := s.echo.JSONSerializer.Deserialize(c, &payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse quantity", err.Error())
	}
	if payload.Quantity == nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Quantity is required", nil)
	}

	if err := s.store.UpdateCart(c.Request().Context(), c.Param("id"), *payload.Quantity); err != nil {
		return failErr(c, err)
	}

	return ok(c, cartview.NewPage(s.store.Snapshot()))
}

func (s *Server) removeCartLine(c echo.Context) error {
	if err := s.controls.Remove(c.Request().Context(), c.Param("id")); err != nil {
		return failErr(c, err)
	}
	return ok(c, cartview.NewPage(s.store.Snapshot()))
}

func (s *Server) changeCartLine(delta int) echo.HandlerFunc {
	return func(c echo.Context) error {
		applied, err := s.controls.Change(c.Request().Context(), c.Param("id"), delta)
		if err != nil {
			return failErr(c, err)
		}

		return ok(c, cartChangeResponse{
			Applied: applied,
			Cart:    cartview.NewPage(s.store.Snapshot()),
		})
	}
}

func (s *Server) getSummary(c echo.Context) error {
	snap := s.store.Snapshot()

	return ok(c, summaryResponse{
		Totals:              snap.Totals,
		OverallTotalDisplay: snap.OverallTotal().String(),
		CheckoutEnabled:     snap.Totals.TotalCartItems > 0,
		CheckoutLabel:       cartview.CheckoutLabel(snap.Totals.TotalCartItems),
	})
}
