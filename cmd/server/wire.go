//go:build wireinject
// +build wireinject

package main

import (
	"github.com/beldeveloper/train-dispatch/internal/app/http"
	"github.com/beldeveloper/train-dispatch/internal/app/svc"
	"github.com/google/wire"
)

func initializeContainer() (container, error) {
	wire.Build(
		svc.NewYaml,
		svc.NewOS,
		svc.NewGit,
		svc.NewCommand,
		svc.NewSlurm,
		svc.NewLocal,
		svc.NewDispatcher,
		svc.NewManifest,
		svc.NewExperiment,
		http.NewHandler,
		http.NewRouter,
		newContainer,
		newWatcher,
		newExperimentRepo,
		newDispatchRules,
		newTrackerSvc,
		newLogsDir,
		newDebugSteps,
		newWorkDir,
		newPythonBin,
		newAccessKey,
		newHostname,
	)
	return container{}, nil
}
