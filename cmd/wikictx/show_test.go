package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/wikictx"
	main "github.com/fwojciec/wikictx/cmd/wikictx"
	"github.com/fwojciec/wikictx/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowCmd_Run(t *testing.T) {
	t.Parallel()

	storedRun := &wikictx.Run{
		ID:       "run-123",
		Document: "WIKI CONTEXT DOCUMENT\nGenerated: 2026-08-30T12:00:00Z\n",
		Pages: []*wikictx.RunPage{
			{Position: 0, Section: "Page", SourceURL: "https://wiki.example.com/wiki/spaces/TEAM/pages/1/Home"},
			{Position: 1, Section: "External linked page", SourceURL: "https://golang.org/doc"},
		},
	}

	t.Run("prints document", func(t *testing.T) {
		t.Parallel()

		runs := &mock.RunService{
			FindRunByIDFn: func(_ context.Context, id string) (*wikictx.Run, error) {
				require.Equal(t, "run-123", id)
				return storedRun, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Runs:   runs,
		}

		cmd := &main.ShowCmd{ID: "run-123"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "WIKI CONTEXT DOCUMENT")
	})

	t.Run("lists page records with --pages", func(t *testing.T) {
		t.Parallel()

		runs := &mock.RunService{
			FindRunByIDFn: func(_ context.Context, _ string) (*wikictx.Run, error) {
				return storedRun, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Runs:   runs,
		}

		cmd := &main.ShowCmd{ID: "run-123", Pages: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		out := stdout.String()
		assert.NotContains(t, out, "WIKI CONTEXT DOCUMENT")
		assert.Contains(t, out, "https://wiki.example.com/wiki/spaces/TEAM/pages/1/Home")
		assert.Contains(t, out, "External linked page")
	})

	t.Run("reports missing run", func(t *testing.T) {
		t.Parallel()

		runs := &mock.RunService{
			FindRunByIDFn: func(_ context.Context, id string) (*wikictx.Run, error) {
				return nil, wikictx.Errorf(wikictx.ENOTFOUND, "run %q not found", id)
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Runs:   runs,
		}

		cmd := &main.ShowCmd{ID: "missing"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "not found")
	})
}
