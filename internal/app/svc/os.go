package svc

import (
	"context"
	"github.com/beldeveloper/train-dispatch/internal/app"
	"github.com/beldeveloper/train-dispatch/pkg/os"
)

// NewOS creates a new instance of the OS service.
func NewOS() app.OSSvc {
	return OS{}
}

// OS is a service that interacts with the operating system.
type OS struct {
}

// Exec runs the system command and returns the system output.
func (s OS) Exec(ctx context.Context, cmd app.Cmd) (string, error) {
	return os.Exec(ctx, os.Cmd{
		Name:   cmd.Name,
		Args:   cmd.Args,
		Env:    cmd.Env,
		Dir:    cmd.Dir,
		Stdout: cmd.Stdout,
		Stderr: cmd.Stderr,
		Log:    cmd.Log,
	})
}
