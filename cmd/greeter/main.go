//go:build js && wasm

// Command greeter is the wasm build of the browser greeter. Loaded via
// wasm_exec.js it exports app_main and greet on the host global and
// blocks forever, the usual lifetime model for a Go wasm module.
package main

import (
	"fmt"
	"syscall/js"

	"github.com/rs/zerolog"

	"github.com/postpage/postpage/greeter"
)

// consoleWriter routes zerolog output to the host console.
type consoleWriter struct{}

func (consoleWriter) Write(p []byte) (int, error) {
	js.Global().Get("console").Call("log", string(p))
	return len(p), nil
}

// hooked wraps an exported entry so a Go panic lands in the console as
// an error instead of only the wasm_exec stderr dump.
func hooked(f func(args []js.Value)) js.Func {
	return js.FuncOf(func(_ js.Value, args []js.Value) interface{} {
		defer func() {
			if r := recover(); r != nil {
				js.Global().Get("console").Call("error", fmt.Sprint("panic: ", r))
				panic(r)
			}
		}()
		f(args)
		return nil
	})
}

func main() {
	logger := zerolog.New(consoleWriter{}).Level(zerolog.DebugLevel)

	display := greeter.DisplayFunc(func(message string) {
		// Blocks until the user dismisses the dialog, per host
		// modal semantics.
		js.Global().Call("alert", message)
	})

	g := greeter.New(display, logger)

	js.Global().Set("app_main", hooked(func([]js.Value) {
		g.Main()
	}))
	js.Global().Set("greet", hooked(func(args []js.Value) {
		g.Greet(args[0].String())
	}))

	select {}
}
