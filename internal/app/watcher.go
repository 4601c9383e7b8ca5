package app

import "context"

// WatcherJob is a unit of background work that the watcher runs frequently in a loop.
type WatcherJob struct {
	Name string
	Do   func(ctx context.Context) error
}
