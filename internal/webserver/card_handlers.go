package webserver

import (
	"github.com/labstack/echo/v4"
)

func (s *Server) getCard(c echo.Context) error {
	view, err := s.board.View(c.Param("id"))
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, view)
}

func (s *Server) incrementCard(c echo.Context) error {
	view, err := s.board.Increment(c.Param("id"))
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, view)
}

func (s *Server) decrementCard(c echo.Context) error {
	view, err := s.board.Decrement(c.Param("id"))
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, view)
}

func (s *Server) commitCard(c echo.Context) error {
	view, err := s.board.Commit(c.Request().Context(), c.Param("id"))
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, view)
}

func (s *Server) removeCard(c echo.Context) error {
	view, err := s.board.Remove(c.Request().Context(), c.Param("id"))
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, view)
}
