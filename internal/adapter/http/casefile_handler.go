package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	domain "lexcase-backend/internal/domain/casefile"
	"lexcase-backend/internal/usecase/casefile"
)

type CaseFileHandler struct{ uc *casefile.Usecase }

func NewCaseFileHandler(uc *casefile.Usecase) *CaseFileHandler { return &CaseFileHandler{uc: uc} }

func parseFoyNo(c echo.Context) (int, bool) {
	n, err := strconv.Atoi(c.Param("foyNo"))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

func (h *CaseFileHandler) Create(c echo.Context) error {
	var in casefile.CreateInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&in); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	f, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		return errJSON(c, err)
	}
	return c.JSON(http.StatusCreated, f)
}

func (h *CaseFileHandler) List(c echo.Context) error {
	p := domain.ListParams{
		Page:      1,
		Limit:     10,
		Search:    c.QueryParam("search"),
		SortBy:    c.QueryParam("sortBy"),
		SortOrder: c.QueryParam("sortOrder"),
	}
	if v := c.QueryParam("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			p.Page = n
		}
	}
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			p.Limit = n
		}
	}

	res, err := h.uc.List(c.Request().Context(), p)
	if err != nil {
		return errJSON(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *CaseFileHandler) Statistics(c echo.Context) error {
	s, err := h.uc.Statistics(c.Request().Context())
	if err != nil {
		return errJSON(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

func (h *CaseFileHandler) FindByEsasNo(c echo.Context) error {
	out, err := h.uc.FindByEsasNo(c.Request().Context(), c.Param("esasNo"))
	if err != nil {
		return errJSON(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CaseFileHandler) FindByHukukNo(c echo.Context) error {
	out, err := h.uc.FindByHukukNo(c.Request().Context(), c.Param("hukukNo"))
	if err != nil {
		return errJSON(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CaseFileHandler) FindByPlaka(c echo.Context) error {
	out, err := h.uc.FindByPlaka(c.Request().Context(), c.Param("plaka"))
	if err != nil {
		return errJSON(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CaseFileHandler) Get(c echo.Context) error {
	foyNo, ok := parseFoyNo(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid foyNo"})
	}
	f, err := h.uc.Get(c.Request().Context(), foyNo)
	if err != nil {
		return errJSON(c, err)
	}
	return c.JSON(http.StatusOK, f)
}

func (h *CaseFileHandler) Update(c echo.Context) error {
	foyNo, ok := parseFoyNo(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid foyNo"})
	}
	var in casefile.UpdateInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&in); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	f, err := h.uc.Update(c.Request().Context(), foyNo, in)
	if err != nil {
		return errJSON(c, err)
	}
	return c.JSON(http.StatusOK, f)
}

func (h *CaseFileHandler) Delete(c echo.Context) error {
	foyNo, ok := parseFoyNo(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid foyNo"})
	}
	if err := h.uc.Delete(c.Request().Context(), foyNo); err != nil {
		return errJSON(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
