// Package greeter is the browser-side component: it formats a greeting
// and hands it to a host-provided modal display. The display capability
// is injected so the logic tests without a real host page.
package greeter

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Display is the host capability that shows one message to the user.
// In a browser this is the native alert dialog; the call blocks until
// the host dismisses it.
type Display interface {
	Display(message string)
}

// DisplayFunc adapts a plain function to the Display interface.
type DisplayFunc func(message string)

func (f DisplayFunc) Display(message string) { f(message) }

type Greeter struct {
	display Display
	log     zerolog.Logger
}

func New(display Display, log zerolog.Logger) *Greeter {
	return &Greeter{display: display, log: log}
}

// Greet shows "Hello, {subject}!" through the host display.
func (g *Greeter) Greet(subject string) {
	g.display.Display(fmt.Sprintf("Hello, %s!", subject))
}

// Main is the full demo entry: confirm the log sink works, then greet.
func (g *Greeter) Main() {
	g.log.Debug().Msg("console log initialised")
	g.Greet("alert-ee")
}
