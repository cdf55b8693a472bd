package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/abhi1117/Flight-Search-Engine/internal/models"
	"github.com/abhi1117/Flight-Search-Engine/internal/providers"
	"github.com/abhi1117/Flight-Search-Engine/internal/search"
	"github.com/abhi1117/Flight-Search-Engine/internal/session"
	"github.com/abhi1117/Flight-Search-Engine/internal/view"
)

type SearchHandler struct {
	service  *search.Service
	sessions *session.Store
}

func NewSearchHandler(service *search.Service, sessions *session.Store) *SearchHandler {
	return &SearchHandler{
		service:  service,
		sessions: sessions,
	}
}

// Register mounts the search routes on g.
func (h *SearchHandler) Register(g *echo.Group) {
	g.POST("/flights/search", h.Search)
	g.GET("/searches/:id", h.GetSearch)
	g.PATCH("/searches/:id/filter", h.UpdateFilter)
	g.POST("/searches/:id/filter/reset", h.ResetFilter)
}

func (h *SearchHandler) Search(c echo.Context) error {
	startTime := time.Now()
	ctx := c.Request().Context()

	var req models.SearchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	if err := req.Validate(); err != nil {
		return validationError(c, err)
	}

	result, err := h.service.Search(ctx, req)
	if err != nil {
		return searchError(c, err)
	}

	engine := view.NewEngine()
	engine.SetWorkingSet(result.Flights)
	id := h.sessions.Create(engine)

	return c.JSON(http.StatusOK, models.SearchResponse{
		SearchID:       id,
		SearchCriteria: req,
		Metadata: models.SearchMetadata{
			Provider:     result.Provider,
			Received:     result.Received,
			Dropped:      result.Dropped,
			AllMalformed: result.AllMalformed,
			SearchTimeMs: time.Since(startTime).Milliseconds(),
			CacheHit:     result.CacheHit,
		},
		View: toViewResponse(engine.Snapshot()),
	})
}

func (h *SearchHandler) GetSearch(c echo.Context) error {
	engine, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		return sessionError(c, err)
	}
	return h.respond(c, engine)
}

func (h *SearchHandler) UpdateFilter(c echo.Context) error {
	engine, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		return sessionError(c, err)
	}

	var patch models.FilterPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse filter: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	if err := patch.Validate(); err != nil {
		return validationError(c, err)
	}

	engine.UpdateFilter(patch)
	return h.respond(c, engine)
}

func (h *SearchHandler) ResetFilter(c echo.Context) error {
	engine, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		return sessionError(c, err)
	}

	engine.ResetFilter()
	return h.respond(c, engine)
}

func sessionError(c echo.Context, err error) error {
	if errors.Is(err, session.ErrNotFound) {
		return c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "not_found",
			Message: "Search not found or expired",
			Code:    http.StatusNotFound,
		})
	}
	return err
}

func (h *SearchHandler) respond(c echo.Context, engine *view.Engine) error {
	return c.JSON(http.StatusOK, models.SessionResponse{
		SearchID: c.Param("id"),
		View:     toViewResponse(engine.Snapshot()),
	})
}

func toViewResponse(s *view.Snapshot) models.ViewResponse {
	return models.ViewResponse{
		Flights:           s.Flights,
		Chart:             s.Chart,
		AvailableAirlines: s.Airlines,
		Bounds:            s.Bounds,
		Filter:            s.Filter,
		TotalResults:      s.Total,
	}
}

func validationError(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   "validation_error",
		Message: err.Error(),
		Code:    http.StatusBadRequest,
	})
}

func searchError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	code := "search_error"

	var providerErr *providers.ProviderError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		status, code = http.StatusGatewayTimeout, "provider_timeout"
	case errors.As(err, &providerErr):
		status, code = http.StatusBadGateway, "provider_error"
	}

	return c.JSON(status, models.ErrorResponse{
		Error:   code,
		Message: "Failed to search flights: " + err.Error(),
		Code:    status,
	})
}

func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}
