// Package placeholder renders ##TOKEN## text templates. Markers are
// exact-token and case-sensitive; whatever the data map does not resolve is
// filled with an ellipsis so the output never leaks a raw marker.
package placeholder

import (
	"regexp"
	"strings"
)

// Missing is the literal used for markers with no value.
const Missing = "..."

var markerRe = regexp.MustCompile(`##[^#]+##`)

type Result struct {
	Text string
	// Replaced counts distinct tokens that matched at least once.
	Replaced int
	// Unresolved lists the markers (in document order) that were
	// ellipsis-filled.
	Unresolved []string
}

// Render substitutes every ##name## marker with data[name], then replaces any
// leftover marker with Missing. Replacement is single-pass per key: a value
// that itself contains a marker-shaped substring is not re-scanned.
func Render(template string, data map[string]string) Result {
	out := template
	replaced := 0
	for name, value := range data {
		marker := "##" + name + "##"
		if strings.Contains(out, marker) {
			out = strings.ReplaceAll(out, marker, value)
			replaced++
		}
	}

	unresolved := markerRe.FindAllString(out, -1)
	if len(unresolved) > 0 {
		out = markerRe.ReplaceAllLiteralString(out, Missing)
	}
	return Result{Text: out, Replaced: replaced, Unresolved: unresolved}
}
