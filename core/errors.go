package core

import "errors"

var (
	ErrNoTemplates = errors.New("postpage: no templates found")
)
