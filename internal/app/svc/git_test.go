package svc

import (
	"context"
	"fmt"
	"testing"

	"github.com/beldeveloper/train-dispatch/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGit_Info(t *testing.T) {
	t.Parallel()
	osSvc := &fakeOS{
		exec: func(ctx context.Context, cmd app.Cmd) (string, error) {
			if len(cmd.Args) == 2 {
				return "0b9a25fd10d1f5e2f9f6a2e2a6c7d0e2b8a41c77\n", nil
			}
			return "main\n", nil
		},
	}
	s := NewGit(osSvc, "/opt/stap")
	info, err := s.Info(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "0b9a25fd10d1f5e2f9f6a2e2a6c7d0e2b8a41c77", info.Commit)
	assert.Equal(t, "main", info.Branch)
	require.Len(t, osSvc.cmds, 2)
	assert.Equal(t, []string{"rev-parse", "HEAD"}, osSvc.cmds[0].Args)
	assert.Equal(t, []string{"rev-parse", "--abbrev-ref", "HEAD"}, osSvc.cmds[1].Args)
	assert.Equal(t, "/opt/stap", osSvc.cmds[0].Dir)
}

func TestGit_InfoError(t *testing.T) {
	t.Parallel()
	osSvc := &fakeOS{
		exec: func(ctx context.Context, cmd app.Cmd) (string, error) {
			return "", fmt.Errorf("fatal: not a git repository")
		},
	}
	s := NewGit(osSvc, "/opt/stap")
	_, err := s.Info(context.Background())
	require.Error(t, err)
}
