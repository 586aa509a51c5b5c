package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/movieflix/movieflix-api/internal/core/domain"
	"github.com/movieflix/movieflix-api/internal/core/ports"
)

// BrowseHandler serves the protected browse surface: the live-search state
// plus a synchronous search endpoint.
type BrowseHandler struct {
	browse  ports.BrowseSession
	catalog ports.CatalogService
}

func NewBrowseHandler(browse ports.BrowseSession, catalog ports.CatalogService) *BrowseHandler {
	return &BrowseHandler{browse: browse, catalog: catalog}
}

type keystrokeRequest struct {
	Query string `json:"query"`
}

type searchResponse struct {
	Query  string         `json:"query"`
	Movies []domain.Movie `json:"movies"`
}

// Home returns the current browse snapshot (trending list by default).
//
// @Summary      Browse screen state
// @Tags         browse
// @Produce      json
// @Success      200  {object}  ports.BrowseSnapshot
// @Router       /home [get]
func (h *BrowseHandler) Home(c echo.Context) error {
	return c.JSON(http.StatusOK, h.browse.Snapshot())
}

// Search runs a synchronous catalog search. An empty query returns the
// trending list.
//
// @Summary      Search movies
// @Tags         browse
// @Produce      json
// @Param        query  query     string  false  "Search term"
// @Success      200    {object}  searchResponse
// @Failure      502    {object}  map[string]string
// @Router       /home/search [get]
func (h *BrowseHandler) Search(c echo.Context) error {
	query := c.QueryParam("query")

	movies, err := h.catalog.Search(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, searchResponse{Query: query, Movies: movies})
}

// Keystroke feeds one input change into the debounced live-search state.
//
// @Summary      Live-search keystroke
// @Tags         browse
// @Accept       json
// @Param        body  body  keystrokeRequest  true  "Current input value"
// @Success      202
// @Router       /home/search [post]
func (h *BrowseHandler) Keystroke(c echo.Context) error {
	var req keystrokeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	h.browse.SetSearchTerm(req.Query)
	return c.NoContent(http.StatusAccepted)
}
