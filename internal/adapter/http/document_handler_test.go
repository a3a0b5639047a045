package http

import (
	"context"
	"encoding/json"
	"errors"
	stdhttp "net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	domain "lexcase-backend/internal/domain/casefile"
	"lexcase-backend/internal/testutil/casefilemock"
	"lexcase-backend/internal/usecase/document"
)

// -------- engine doubles --------

type stubPDF struct {
	err   error
	calls int
	html  string
}

func (s *stubPDF) RenderPDF(ctx context.Context, html string, outputPath string) error {
	s.calls++
	s.html = html
	if s.err != nil {
		return s.err
	}
	return os.WriteFile(outputPath, []byte("%PDF-1.4"), 0o644)
}

type stubDocx struct{ err error }

func (s *stubDocx) Render(templatePath string, data map[string]string, outputPath string) error {
	if s.err != nil {
		return s.err
	}
	return os.WriteFile(outputPath, []byte("PK"), 0o644)
}

func newDocumentHandler(t *testing.T, repo *casefilemock.Repo, pdf *stubPDF, docx *stubDocx) *DocumentHandler {
	t.Helper()
	templatesDir := t.TempDir()
	tpl := "<p>Basvuran: ##asilAdi##</p><p>Hukuk: ##hukukNo##</p>"
	if err := os.WriteFile(filepath.Join(templatesDir, "template.html"), []byte(tpl), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(templatesDir, "template.docx"), []byte("PK"), 0o644); err != nil {
		t.Fatal(err)
	}
	svc := document.NewService(repo, pdf, docx, templatesDir, t.TempDir())
	return NewDocumentHandler(svc)
}

func caseRepo() *casefilemock.Repo {
	return &casefilemock.Repo{
		GetByFoyNoFn: func(ctx context.Context, foyNo int) (*domain.CaseFile, error) {
			if foyNo != 42 {
				return nil, gorm.ErrRecordNotFound
			}
			return &domain.CaseFile{FoyNo: 42, Basvuran: "Ali Veli", HukukNo: "H-2024-1"}, nil
		},
	}
}

// -------- tests --------

func TestGenerateHTML_SubstitutesTokens(t *testing.T) {
	e := newEchoWithValidator()
	h := newDocumentHandler(t, caseRepo(), &stubPDF{}, &stubDocx{})

	req := httptest.NewRequest(stdhttp.MethodGet, "/documents/generate/html/42", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("foyNo")
	c.SetParamValues("42")

	if err := h.GenerateHTML(c); err != nil {
		t.Fatalf("GenerateHTML error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var res map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if res["message"] != "HTML generated successfully" {
		t.Fatalf("message = %q", res["message"])
	}
	if !strings.Contains(res["result"], "Ali Veli") || !strings.Contains(res["result"], "H-2024-1") {
		t.Fatalf("result = %q", res["result"])
	}
	if strings.Contains(res["result"], "##") {
		t.Fatalf("markers survived substitution: %q", res["result"])
	}
}

func TestGenerateHTML_CaseNotFound(t *testing.T) {
	e := newEchoWithValidator()
	h := newDocumentHandler(t, caseRepo(), &stubPDF{}, &stubDocx{})

	req := httptest.NewRequest(stdhttp.MethodGet, "/documents/generate/html/99", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("foyNo")
	c.SetParamValues("99")

	if err := h.GenerateHTML(c); err != nil {
		t.Fatalf("GenerateHTML error: %v", err)
	}
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestGeneratePDF_ReturnsWrittenPath(t *testing.T) {
	e := newEchoWithValidator()
	pdf := &stubPDF{}
	h := newDocumentHandler(t, caseRepo(), pdf, &stubDocx{})

	req := httptest.NewRequest(stdhttp.MethodGet, "/documents/generate/pdf/42", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("foyNo")
	c.SetParamValues("42")

	if err := h.GeneratePDF(c); err != nil {
		t.Fatalf("GeneratePDF error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var res map[string]string
	_ = json.Unmarshal(rec.Body.Bytes(), &res)
	if !strings.Contains(filepath.Base(res["path"]), "rapor_42_") {
		t.Fatalf("path = %q", res["path"])
	}
	if _, err := os.Stat(res["path"]); err != nil {
		t.Fatalf("pdf not on disk: %v", err)
	}
	if pdf.calls != 1 {
		t.Fatalf("engine calls = %d", pdf.calls)
	}
}

func TestGeneratePDF_EngineFailureIs400(t *testing.T) {
	e := newEchoWithValidator()
	h := newDocumentHandler(t, caseRepo(), &stubPDF{err: errors.New("navigation timeout")}, &stubDocx{})

	req := httptest.NewRequest(stdhttp.MethodGet, "/documents/generate/pdf/42", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("foyNo")
	c.SetParamValues("42")

	if err := h.GeneratePDF(c); err != nil {
		t.Fatalf("GeneratePDF error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "navigation timeout") {
		t.Fatalf("body = %s", rec.Body.String())
	}
}

func TestGenerateWord_DefaultTemplate(t *testing.T) {
	e := newEchoWithValidator()
	h := newDocumentHandler(t, caseRepo(), &stubPDF{}, &stubDocx{})

	req := httptest.NewRequest(stdhttp.MethodPost, "/documents/generate/word/42", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("foyNo")
	c.SetParamValues("42")

	if err := h.GenerateWord(c); err != nil {
		t.Fatalf("GenerateWord error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var res map[string]string
	_ = json.Unmarshal(rec.Body.Bytes(), &res)
	if !strings.Contains(filepath.Base(res["path"]), "document_42_") {
		t.Fatalf("path = %q", res["path"])
	}
	if _, err := os.Stat(res["path"]); err != nil {
		t.Fatalf("docx not on disk: %v", err)
	}
}

func TestGenerateWord_NamedTemplateMissing(t *testing.T) {
	e := newEchoWithValidator()
	h := newDocumentHandler(t, caseRepo(), &stubPDF{}, &stubDocx{})

	req := httptest.NewRequest(stdhttp.MethodPost, "/documents/generate/word/42",
		strings.NewReader(`{"templateName":"yok.docx"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("foyNo")
	c.SetParamValues("42")

	if err := h.GenerateWord(c); err != nil {
		t.Fatalf("GenerateWord error: %v", err)
	}
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404: %s", rec.Code, rec.Body.String())
	}
}

func TestUpdateHTML_RendersEditedContent(t *testing.T) {
	e := newEchoWithValidator()
	pdf := &stubPDF{}
	h := newDocumentHandler(t, caseRepo(), pdf, &stubDocx{})

	edited := "<p>elle duzenlenmis icerik</p>"
	body, _ := json.Marshal(map[string]string{"htmlContent": edited})
	req := httptest.NewRequest(stdhttp.MethodPost, "/documents/update/html/42", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("foyNo")
	c.SetParamValues("42")

	if err := h.UpdateHTML(c); err != nil {
		t.Fatalf("UpdateHTML error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var res map[string]string
	_ = json.Unmarshal(rec.Body.Bytes(), &res)
	if res["htmlContent"] != edited {
		t.Fatalf("htmlContent = %q", res["htmlContent"])
	}
	if !strings.Contains(filepath.Base(res["pdfDownloadUrl"]), "rapor_42_") {
		t.Fatalf("pdfDownloadUrl = %q", res["pdfDownloadUrl"])
	}
	// the engine gets the edited HTML untouched, never the template
	if pdf.html != edited {
		t.Fatalf("engine html = %q", pdf.html)
	}
}

func TestUpdateHTML_MissingContent(t *testing.T) {
	e := newEchoWithValidator()
	h := newDocumentHandler(t, caseRepo(), &stubPDF{}, &stubDocx{})

	req := httptest.NewRequest(stdhttp.MethodPost, "/documents/update/html/42", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("foyNo")
	c.SetParamValues("42")

	if err := h.UpdateHTML(c); err != nil {
		t.Fatalf("UpdateHTML error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var er ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &er)
	if !containsFieldMsg(er.Details, "HTMLContent", "required") {
		t.Fatalf("details = %+v", er.Details)
	}
}
