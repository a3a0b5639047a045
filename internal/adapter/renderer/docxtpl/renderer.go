// Package docxtpl fills zipped-XML word templates. The template's own tag
// syntax belongs to the docx library and is independent of the ##marker##
// grammar of the HTML path; both consume the same token map.
package docxtpl

import (
	"bytes"
	"fmt"
	"os"

	docx "github.com/lukasjarosch/go-docx"
)

type Renderer struct{}

func New() *Renderer { return &Renderer{} }

// Render opens the template archive, binds the token map and serializes the
// filled document to outputPath. A malformed template surfaces as a wrapped
// rendering error; no partial output is written.
func (r *Renderer) Render(templatePath string, data map[string]string, outputPath string) error {
	doc, err := docx.Open(templatePath)
	if err != nil {
		return fmt.Errorf("open template: %w", err)
	}

	placeholders := make(docx.PlaceholderMap, len(data))
	for name, value := range data {
		placeholders[name] = value
	}
	if err := doc.ReplaceAll(placeholders); err != nil {
		return fmt.Errorf("template rendering failed: %w", err)
	}

	var buf bytes.Buffer
	if err := doc.Write(&buf); err != nil {
		return fmt.Errorf("serialize document: %w", err)
	}
	return os.WriteFile(outputPath, buf.Bytes(), 0o644)
}
