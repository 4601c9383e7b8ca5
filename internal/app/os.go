package app

import (
	"context"
	"io"
)

// Cmd is a model of the OS command.
type Cmd struct {
	Name   string
	Args   []string
	Env    []string
	Dir    string
	Stdout io.Writer
	Stderr io.Writer
	Log    bool
}

// OSSvc describes the service that is in charge of interacting with the operating system.
type OSSvc interface {
	Exec(ctx context.Context, cmd Cmd) (string, error)
}
