package app

import "context"

// WorkDir is a data type for storing the training repository directory, used for DI.
type WorkDir string

// GitInfo is a model that represents the current state of the training repository.
type GitInfo struct {
	Commit string
	Branch string
}

// GitSvc describes the version control service.
type GitSvc interface {
	Info(ctx context.Context) (GitInfo, error)
}
