package core

import (
	"bytes"

	"github.com/tdewolff/minify/v2"
	minhtml "github.com/tdewolff/minify/v2/html"
)

// MinifyHTML squeezes rendered markup before it is written or cached.
// On any minifier error the original bytes are returned untouched.
func MinifyHTML(in []byte) []byte {
	m := minify.New()
	m.AddFunc("text/html", minhtml.Minify)

	var buf bytes.Buffer
	if err := m.Minify("text/html", &buf, bytes.NewReader(in)); err != nil {
		return in
	}
	return buf.Bytes()
}
