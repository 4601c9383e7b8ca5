package svc

import (
	"context"
	"github.com/beldeveloper/go-errors-context"
	"github.com/beldeveloper/train-dispatch/internal/app"
	"strings"
)

// NewGit creates a new instance of the Git service.
func NewGit(osSvc app.OSSvc, workDir app.WorkDir) app.GitSvc {
	return Git{osSvc: osSvc, workDir: string(workDir)}
}

// Git is a service that reads the state of the training repository checkout.
type Git struct {
	osSvc   app.OSSvc
	workDir string
}

// Info returns the current commit hash and branch name.
func (s Git) Info(ctx context.Context) (app.GitInfo, error) {
	var info app.GitInfo
	commit, err := s.osSvc.Exec(ctx, app.Cmd{
		Name: "git",
		Args: []string{"rev-parse", "HEAD"},
		Dir:  s.workDir,
	})
	if err != nil {
		return info, errors.WrapContext(err, errors.Context{Path: "svc.Git.Info.revParse"})
	}
	branch, err := s.osSvc.Exec(ctx, app.Cmd{
		Name: "git",
		Args: []string{"rev-parse", "--abbrev-ref", "HEAD"},
		Dir:  s.workDir,
	})
	if err != nil {
		return info, errors.WrapContext(err, errors.Context{Path: "svc.Git.Info.abbrevRef"})
	}
	info.Commit = strings.TrimSpace(commit)
	info.Branch = strings.TrimSpace(branch)
	return info, nil
}
