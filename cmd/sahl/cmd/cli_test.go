package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/oneconcern/sahl/internal/rand"
	"github.com/oneconcern/sahl/pkg/model"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

var (
	createArgs = []string{"datasets", "create", "-p", ".", "--dir-mode", "zip"}
)

func createSource(t *testing.T) (string, map[string][]byte) {
	t.Helper()
	source := filepath.Join(t.TempDir(), "data")
	tree, err := rand.Tree(afero.NewOsFs(), source, 8, 2, 512)
	require.NoError(t, err)
	return source, tree
}

func topLevel(tree map[string][]byte) map[string]struct{} {
	names := make(map[string]struct{}, len(tree))
	for rel := range tree {
		names[strings.Split(filepath.ToSlash(rel), "/")[0]] = struct{}{}
	}
	return names
}

func TestPrepare(t *testing.T) {
	_, out := setupTests(t)
	source, tree := createSource(t)
	output := filepath.Join(t.TempDir(), "staged")

	runCmd(t, []string{
		"prepare",
		"--source", source,
		"--output", output,
		"--owner", "alice",
		"--slug", "cats",
		"--title", "Cats",
		"--version", "1.2.0",
	}, "prepare a dataset", false)

	for rel, content := range tree {
		b, err := os.ReadFile(filepath.Join(output, rel))
		require.NoError(t, err)
		assert.Equal(t, content, b)
	}

	b, err := os.ReadFile(filepath.Join(output, model.MetadataFile))
	require.NoError(t, err)
	assert.JSONEq(t, `{"title": "Cats", "id": "alice/cats", "licenses": [{"name": "CC0-1.0"}]}`, string(b))

	readme, err := os.ReadFile(filepath.Join(output, model.ReadmeFile))
	require.NoError(t, err)
	assert.Contains(t, string(readme), "Dataset version: 1.2.0")

	assert.Contains(t, out.String(), "alice/cats")
}

func TestPrepareWithoutOwner(t *testing.T) {
	setupTests(t)
	source, _ := createSource(t)
	output := filepath.Join(t.TempDir(), "staged")

	runCmd(t, []string{
		"prepare",
		"--source", source,
		"--output", output,
		"--slug", "cats",
		"--title", "Cats",
	}, "prepare a dataset without owner", true)

	_, err := os.Stat(output)
	assert.True(t, os.IsNotExist(err))
}

func TestPrepareMissingSource(t *testing.T) {
	setupTests(t)

	runCmd(t, []string{
		"prepare",
		"--source", filepath.Join(t.TempDir(), "nowhere"),
		"--output", filepath.Join(t.TempDir(), "staged"),
		"--owner", "alice",
		"--slug", "cats",
		"--title", "Cats",
	}, "prepare a dataset from a missing source", true)
}

func TestPublish(t *testing.T) {
	runner, out := setupTests(t)
	dir := t.TempDir()
	runner.On("Run", dir, "kaggle", createArgs).Return(0, nil).Once()

	runCmd(t, []string{
		"publish",
		"--path", dir,
		"--owner", "alice",
		"--slug", "cats",
	}, "publish a new dataset", false)

	runner.AssertExpectations(t)
	assert.Contains(t, out.String(), "https://www.kaggle.com/datasets/alice/cats")
}

func TestUploadVersion(t *testing.T) {
	runner, _ := setupTests(t)
	dir := t.TempDir()
	runner.On("Run", dir, "kaggle",
		[]string{"datasets", "version", "-p", ".", "-m", "v1.1.0: Fixed bugs", "--dir-mode", "zip"},
	).Return(0, nil).Once()

	runCmd(t, []string{
		"upload",
		"--path", dir,
		"--owner", "alice",
		"--slug", "cats",
		"--mode", "version",
		"--version", "1.1.0",
		"-m", "Fixed bugs",
	}, "publish a new version", false)

	runner.AssertExpectations(t)
}

func TestPublishInvalidArguments(t *testing.T) {
	runner, _ := setupTests(t)
	dir := t.TempDir()

	runCmd(t, []string{
		"publish",
		"--path", dir,
		"--owner", "alice",
		"--slug", "cats",
		"--mode", "version",
	}, "publish a version without notes", true)

	runCmd(t, []string{
		"publish",
		"--path", dir,
		"--owner", "alice",
		"--slug", "cats",
		"--mode", "update",
	}, "publish with an unknown mode", true)

	runCmd(t, []string{
		"publish",
		"--path", dir,
		"--slug", "cats",
	}, "publish without owner", true)

	runner.AssertNotCalled(t, "Run", mock.Anything, mock.Anything, mock.Anything)
}

func TestPublishFailure(t *testing.T) {
	runner, out := setupTests(t)
	dir := t.TempDir()
	runner.On("Run", dir, "kaggle", createArgs).Return(1, nil).Twice()

	runCmd(t, []string{
		"publish",
		"--path", dir,
		"--owner", "alice",
		"--slug", "cats",
	}, "failed publication is only reported", false)
	assert.Contains(t, out.String(), "Upload failed with code 1")

	runCmd(t, []string{
		"publish",
		"--path", dir,
		"--owner", "alice",
		"--slug", "cats",
		"--strict",
	}, "failed publication is an error in strict mode", true)

	runner.AssertExpectations(t)
}

func TestQuick(t *testing.T) {
	runner, _ := setupTests(t)
	source, tree := createSource(t)

	var (
		stagedDir string
		meta      model.Metadata
		staged    int
	)
	runner.On("Run", mock.Anything, "kaggle", createArgs).
		Run(func(args mock.Arguments) {
			stagedDir = args.String(0)
			b, err := os.ReadFile(filepath.Join(stagedDir, model.MetadataFile))
			require.NoError(t, err)
			require.NoError(t, jsoniter.Unmarshal(b, &meta))
			entries, err := os.ReadDir(stagedDir)
			require.NoError(t, err)
			staged = len(entries)
		}).
		Return(0, nil).Once()

	runCmd(t, []string{
		"quick",
		"--source", source,
		"--owner", "alice",
		"--slug", "my-cats",
	}, "quick publish", false)

	runner.AssertExpectations(t)
	assert.Equal(t, "My Cats", meta.Title)
	assert.Equal(t, "alice/my-cats", meta.ID)
	assert.Equal(t, len(topLevel(tree))+2, staged, "staged files plus README.md and dataset-metadata.json")

	_, err := os.Stat(stagedDir)
	assert.True(t, os.IsNotExist(err), "staging directory must be removed")
}

func TestQuickVersionWithoutNotes(t *testing.T) {
	runner, _ := setupTests(t)
	source, _ := createSource(t)

	runCmd(t, []string{
		"quick",
		"--source", source,
		"--owner", "alice",
		"--slug", "cats",
		"--mode", "version",
	}, "quick publish a version without notes", true)

	runner.AssertNotCalled(t, "Run", mock.Anything, mock.Anything, mock.Anything)
}

func TestConfig(t *testing.T) {
	runner, _ := setupTests(t)

	runCmd(t, []string{
		"config", "create",
		"--owner", "bob",
		"--tool", "/opt/bin/kaggle",
	}, "create a config", false)

	pth, err := configFilePath()
	require.NoError(t, err)
	b, err := os.ReadFile(pth)
	require.NoError(t, err)
	var cfg CLIConfig
	require.NoError(t, yaml.Unmarshal(b, &cfg))
	assert.Equal(t, CLIConfig{Owner: "bob", Tool: "/opt/bin/kaggle", LogLevel: defaultLogLevel}, cfg)

	runCmd(t, []string{
		"config", "create",
		"--owner", "carol",
	}, "refuse to overwrite a config", true)

	// the config file provides the owner and the tool
	t.Setenv("SAHL_CONFIG", pth)
	dir := t.TempDir()
	runner.On("Run", dir, "/opt/bin/kaggle", createArgs).Return(0, nil).Once()

	runCmd(t, []string{
		"publish",
		"--path", dir,
		"--slug", "cats",
	}, "publish with the configured owner", false)
	runner.AssertExpectations(t)
}

func TestEnvConfig(t *testing.T) {
	runner, out := setupTests(t)
	t.Setenv("SAHL_OWNER", "dave")
	dir := t.TempDir()
	runner.On("Run", dir, "kaggle", createArgs).Return(0, nil).Once()

	runCmd(t, []string{
		"publish",
		"--path", dir,
		"--slug", "cats",
	}, "publish with the owner from the environment", false)

	runner.AssertExpectations(t)
	assert.Contains(t, out.String(), "dave/cats")
}

func TestGuide(t *testing.T) {
	_, out := setupTests(t)

	runCmd(t, []string{"guide"}, "print the guide", false)
	assert.Contains(t, out.String(), "DATASET UPLOAD GUIDE")
	assert.Contains(t, out.String(), "sahl quick")
}

func TestVersion(t *testing.T) {
	_, out := setupTests(t)

	runCmd(t, []string{"version"}, "print the version", false)
	assert.Contains(t, out.String(), "Version: dev")
}

func TestCompletion(t *testing.T) {
	_, out := setupTests(t)

	runCmd(t, []string{"completion", "bash"}, "generate bash completion", false)
	assert.Contains(t, out.String(), "__start_sahl")

	out.Reset()
	runCmd(t, []string{"completion", "zsh"}, "generate zsh completion", false)
	assert.Contains(t, out.String(), "#compdef sahl")

	out.Reset()
	runCmd(t, []string{"completion", "fish"}, "generate fish completion", false)
	assert.Contains(t, out.String(), "complete -c sahl")

	assert.Equal(t, []string{"bash", "fish", "powershell", "zsh"}, completionShells())
}

func TestUsage(t *testing.T) {
	setupTests(t)
	target := filepath.Join(t.TempDir(), "docs")

	runCmd(t, []string{"usage", "--target", target}, "generate markdown documentation", false)
	for _, page := range []string{"sahl.md", "sahl_prepare.md", "sahl_publish.md", "sahl_quick.md", "sahl_config_create.md"} {
		b, err := os.ReadFile(filepath.Join(target, page))
		require.NoError(t, err, page)
		assert.True(t, strings.HasPrefix(string(b), "**sahl dev**"), page)
	}
	b, err := os.ReadFile(filepath.Join(target, "sahl.md"))
	require.NoError(t, err)
	assert.Contains(t, string(b), "(./sahl_prepare.md)")

	manTarget := filepath.Join(t.TempDir(), "man")
	runCmd(t, []string{"usage", "--target", manTarget, "--format", "man"}, "generate man pages", false)
	_, err = os.Stat(filepath.Join(manTarget, "sahl-prepare.1"))
	require.NoError(t, err)

	runCmd(t, []string{"usage", "--target", t.TempDir(), "--format", "html"}, "unsupported documentation format", true)
}
