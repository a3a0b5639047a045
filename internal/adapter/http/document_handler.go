package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lexcase-backend/internal/usecase/document"
)

type DocumentHandler struct{ svc *document.Service }

func NewDocumentHandler(svc *document.Service) *DocumentHandler { return &DocumentHandler{svc: svc} }

func (h *DocumentHandler) GenerateHTML(c echo.Context) error {
	foyNo, ok := parseFoyNo(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid foyNo"})
	}
	html, err := h.svc.GenerateHTML(c.Request().Context(), foyNo)
	if err != nil {
		return errJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "HTML generated successfully",
		"result":  html,
	})
}

func (h *DocumentHandler) GeneratePDF(c echo.Context) error {
	foyNo, ok := parseFoyNo(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid foyNo"})
	}
	path, err := h.svc.GeneratePDF(c.Request().Context(), foyNo)
	if err != nil {
		return errJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "PDF generated successfully",
		"path":    path,
	})
}

type generateWordReq struct {
	TemplateName string `json:"templateName"`
}

func (h *DocumentHandler) GenerateWord(c echo.Context) error {
	foyNo, ok := parseFoyNo(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid foyNo"})
	}
	var req generateWordReq
	// body is optional; default template applies when absent
	_ = c.Bind(&req)

	res, err := h.svc.GenerateDocx(c.Request().Context(), foyNo, req.TemplateName)
	if err != nil {
		return errJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Document generated successfully",
		"path":    res.DocxPath,
	})
}

type updateHTMLReq struct {
	HTMLContent string `json:"htmlContent" validate:"required"`
}

func (h *DocumentHandler) UpdateHTML(c echo.Context) error {
	foyNo, ok := parseFoyNo(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid foyNo"})
	}
	var req updateHTMLReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	path, err := h.svc.RegeneratePDF(c.Request().Context(), foyNo, req.HTMLContent)
	if err != nil {
		return errJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message":        "HTML updated and PDF generated successfully",
		"htmlContent":    req.HTMLContent,
		"pdfDownloadUrl": path,
	})
}
