package core

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"path/filepath"
	"strings"
)

// TemplateSet is the parsed, read-only collection of page templates.
// It is built once before the server starts listening and never
// mutated afterwards, so concurrent renders need no locking.
type TemplateSet struct {
	root *template.Template
	dir  string
}

// LoadTemplateSet walks dir recursively, collects every .html file and
// parses the lot into a single template tree. Any parse error fails the
// whole load.
func LoadTemplateSet(dir string) (*TemplateSet, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".html") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", dir, err)
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoTemplates, dir)
	}

	root := template.New(filepath.Base(files[0])).Funcs(TemplateFuncs())
	root, err = root.ParseFiles(files...)
	if err != nil {
		return nil, fmt.Errorf("parsing templates in %s: %w", dir, err)
	}

	return &TemplateSet{root: root, dir: dir}, nil
}

// Render executes the named template into a buffer and returns the
// result, so a mid-execution failure never leaks partial markup to the
// caller.
func (ts *TemplateSet) Render(name string, data map[string]string) ([]byte, error) {
	var buf bytes.Buffer
	if err := ts.root.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Dir returns the directory the set was loaded from.
func (ts *TemplateSet) Dir() string {
	return ts.dir
}

// Count reports how many defined templates the set holds.
func (ts *TemplateSet) Count() int {
	return len(ts.root.Templates())
}
