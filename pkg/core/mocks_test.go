package core

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/oneconcern/sahl/pkg/model"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func init() {
	color.NoColor = true
}

var testClock = func() time.Time {
	return time.Date(2026, time.October, 19, 10, 0, 0, 0, time.UTC)
}

type RunnerMock struct {
	mock.Mock
}

func (m *RunnerMock) Run(_ context.Context, dir, name string, args ...string) (int, error) {
	res := m.Called(dir, name, args)
	return res.Int(0), res.Error(1)
}

func testDescriptor() model.StageDescriptor {
	return model.StageDescriptor{
		Owner:   "alice",
		Slug:    "cats",
		Title:   "Cats",
		Version: "1.0.0",
	}
}

func testStager(t testing.TB, fs afero.Fs, out *bytes.Buffer) *Stager {
	return NewStager(
		StageFs(fs),
		StageLogger(zaptest.NewLogger(t)),
		StageClock(testClock),
		StageOutput(out),
	)
}

func writeFile(t testing.TB, fs afero.Fs, pth, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, pth, []byte(content), 0o644))
}

// listFiles returns the content of all regular files under root, by relative path
func listFiles(t testing.TB, fs afero.Fs, root string) map[string][]byte {
	t.Helper()
	files := make(map[string][]byte)
	require.NoError(t, afero.Walk(fs, root, func(pth string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(root, pth)
		if err != nil {
			return err
		}
		b, err := afero.ReadFile(fs, pth)
		if err != nil {
			return err
		}
		files[rel] = b
		return nil
	}))
	return files
}
