package main

import (
	"fmt"
	"runtime/debug"
)

// RenderError is a panic recovered while drawing the page.
type RenderError struct {
	Value interface{}
	Stack []byte
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render panic: %v", e.Value)
}

// Unwrap exposes the panic value when it was an error.
func (e *RenderError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// guardRender runs draw and converts a panic into a *RenderError.
func guardRender(draw func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &RenderError{Value: r, Stack: debug.Stack()}
		}
	}()
	draw()
	return nil
}
