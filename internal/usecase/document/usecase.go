package document

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"lexcase-backend/internal/domain/casefile"
	"lexcase-backend/pkg/placeholder"
)

const (
	htmlTemplateName    = "template.html"
	defaultDocxTemplate = "template.docx"
)

// GenerationError wraps a failure inside an external rendering collaborator
// (browser navigation/timeout, malformed docx tag, serialization). Handlers
// surface it as a caller-facing condition, never a 5xx.
type GenerationError struct{ Err error }

func (e *GenerationError) Error() string { return "generation failed: " + e.Err.Error() }
func (e *GenerationError) Unwrap() error { return e.Err }

// PDFEngine rasterizes an HTML string to a PDF file.
type PDFEngine interface {
	RenderPDF(ctx context.Context, html string, outputPath string) error
}

// DocxEngine binds a token map into a docx template and writes the result.
type DocxEngine interface {
	Render(templatePath string, data map[string]string, outputPath string) error
}

// Service is the document-generation pipeline: fetch -> project ->
// substitute/bind -> render. Stateless; every call does its own fetch and
// writes one new timestamped artifact.
type Service struct {
	repo         casefile.Repository
	pdf          PDFEngine
	docx         DocxEngine
	templatesDir string
	generatedDir string
	now          func() time.Time
}

func NewService(repo casefile.Repository, pdf PDFEngine, docx DocxEngine, templatesDir, generatedDir string) *Service {
	return &Service{
		repo:         repo,
		pdf:          pdf,
		docx:         docx,
		templatesDir: templatesDir,
		generatedDir: generatedDir,
		now:          time.Now,
	}
}

// GenerateHTML substitutes the case's token map into the HTML template and
// returns the substituted text. Unresolved markers are ellipsis-filled and
// logged, not errors.
func (s *Service) GenerateHTML(ctx context.Context, foyNo int) (string, error) {
	f, err := s.repo.GetByFoyNo(ctx, foyNo)
	if err != nil {
		return "", err
	}

	raw, err := os.ReadFile(filepath.Join(s.templatesDir, htmlTemplateName))
	if err != nil {
		return "", fmt.Errorf("template %s: %w", htmlTemplateName, err)
	}

	res := placeholder.Render(string(raw), BuildTemplateData(f, s.now()))
	if len(res.Unresolved) > 0 {
		log.Printf("document: foy %d: %d unresolved markers: %v", foyNo, len(res.Unresolved), res.Unresolved)
	}
	log.Printf("document: foy %d: html ready, %d tokens replaced", foyNo, res.Replaced)
	return res.Text, nil
}

// GeneratePDF renders the substituted HTML to rapor_<foyNo>_<millis>.pdf and
// returns the written path.
func (s *Service) GeneratePDF(ctx context.Context, foyNo int) (string, error) {
	html, err := s.GenerateHTML(ctx, foyNo)
	if err != nil {
		return "", err
	}
	return s.renderPDF(ctx, foyNo, html)
}

// RegeneratePDF renders caller-edited HTML for an existing case. The
// substitution step is a one-shot transform, so edited HTML is rendered
// as-is and never re-merged with the template.
func (s *Service) RegeneratePDF(ctx context.Context, foyNo int, html string) (string, error) {
	if _, err := s.repo.GetByFoyNo(ctx, foyNo); err != nil {
		return "", err
	}
	return s.renderPDF(ctx, foyNo, html)
}

func (s *Service) renderPDF(ctx context.Context, foyNo int, html string) (string, error) {
	if err := os.MkdirAll(s.generatedDir, 0o755); err != nil {
		return "", err
	}
	pdfPath := filepath.Join(s.generatedDir, fmt.Sprintf("rapor_%d_%d.pdf", foyNo, s.now().UnixMilli()))
	if err := s.pdf.RenderPDF(ctx, html, pdfPath); err != nil {
		return "", &GenerationError{Err: err}
	}
	log.Printf("document: foy %d: pdf written to %s", foyNo, pdfPath)
	return pdfPath, nil
}

// DocxResult is what the word-document path returns: the written docx and
// the pdf path reserved for a later conversion step (not produced here).
type DocxResult struct {
	DocxPath string
	PDFPath  string
}

// GenerateDocx binds the token map into the named docx template (default
// template.docx) and writes document_<foyNo>_<millis>.docx.
func (s *Service) GenerateDocx(ctx context.Context, foyNo int, templateName string) (*DocxResult, error) {
	if templateName == "" {
		templateName = defaultDocxTemplate
	}

	f, err := s.repo.GetByFoyNo(ctx, foyNo)
	if err != nil {
		return nil, err
	}

	templatePath := filepath.Join(s.templatesDir, templateName)
	if _, err := os.Stat(templatePath); err != nil {
		return nil, fmt.Errorf("template %s: %w", templateName, err)
	}

	data := BuildTemplateData(f, s.now())

	if err := os.MkdirAll(s.generatedDir, 0o755); err != nil {
		return nil, err
	}
	stamp := s.now().UnixMilli()
	docxPath := filepath.Join(s.generatedDir, fmt.Sprintf("document_%d_%d.docx", foyNo, stamp))
	if err := s.docx.Render(templatePath, data, docxPath); err != nil {
		return nil, &GenerationError{Err: err}
	}
	log.Printf("document: foy %d: docx written to %s", foyNo, docxPath)

	return &DocxResult{
		DocxPath: docxPath,
		PDFPath:  filepath.Join(s.generatedDir, fmt.Sprintf("rapor_%d_%d.pdf", foyNo, stamp)),
	}, nil
}
