// Package sanitize neutralizes HTML and script markup embedded in
// user-supplied bookmark text before it is returned in any response.
package sanitize

import "github.com/microcosm-cc/bluemonday"

// The strict policy allows no elements or attributes at all: tags are
// stripped, script and style bodies are dropped, and plain text survives.
var policy = bluemonday.StrictPolicy()

// Clean strips all markup from s, leaving only text content. The output
// for a given input never varies, so repeated reads of the same stored
// value produce identical responses.
func Clean(s string) string {
	return policy.Sanitize(s)
}
