package http

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// errStatus maps pipeline errors to client-facing statuses: missing case
// records and missing template files are 404, everything else (validation,
// duplicate foy no, generation failures) is 400. Generation never 5xxes.
func errStatus(err error) int {
	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, os.ErrNotExist) {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}

func errJSON(c echo.Context, err error) error {
	return c.JSON(errStatus(err), map[string]string{"error": err.Error()})
}
