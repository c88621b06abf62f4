//go:build !cgo

package main

import "errors"

type windowOptions struct {
	title string
	scale int
	save  func() (string, error)
}

func runWindow(_ *canvas, _ windowOptions) error {
	return errors.New("viewer requires cgo (build/run with CGO_ENABLED=1)")
}
