package cmd

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/oneconcern/sahl/pkg/core"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type ExitMocks struct {
	mock.Mock
	exitStatuses []int
}

func (m *ExitMocks) Fatalf(format string, v ...interface{}) {
	fmt.Printf(format+"\n", v...)
	m.exitStatuses = append(m.exitStatuses, 1)
}

func (m *ExitMocks) Fatalln(v ...interface{}) {
	fmt.Println(v...)
	m.exitStatuses = append(m.exitStatuses, 1)
}

func (m *ExitMocks) Exit(code int) {
	m.exitStatuses = append(m.exitStatuses, code)
}

func (m *ExitMocks) fatalCalls() int {
	return len(m.exitStatuses)
}

func NewExitMocks() *ExitMocks {
	return &ExitMocks{
		exitStatuses: make([]int, 0),
	}
}

func MakeExitMock(m *ExitMocks) func(int) {
	return func(code int) {
		m.Exit(code)
	}
}

var exitMocks *ExitMocks

type RunnerMock struct {
	mock.Mock
}

func (m *RunnerMock) Run(_ context.Context, dir, name string, args ...string) (int, error) {
	res := m.Called(dir, name, args)
	return res.Int(0), res.Error(1)
}

// setupTests patches exits, output and the publishing tool, and isolates the test from any user config
func setupTests(t *testing.T) (*RunnerMock, *bytes.Buffer) {
	t.Helper()
	color.NoColor = true
	homedir.DisableCache = true
	viper.Reset()
	t.Cleanup(viper.Reset)

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("SAHL_CONFIG", filepath.Join(home, "no-config.yaml"))
	t.Setenv("SAHL_OWNER", "")
	t.Setenv("SAHL_TOOL", "")
	t.Setenv("SAHL_LOGLEVEL", "")

	exitMocks = NewExitMocks()
	osExit = MakeExitMock(exitMocks)
	logFatalln = exitMocks.Fatalln
	logFatalf = exitMocks.Fatalf

	var out bytes.Buffer
	stdout = &out

	runner := &RunnerMock{}
	newRunner = func() core.Runner { return runner }

	return runner, &out
}

// resetFlags restores the default value of all flags, since flag values are shared globals
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func runCmd(t *testing.T, cmd []string, intentMsg string, expectError bool) {
	t.Helper()
	fatalCallsBefore := exitMocks.fatalCalls()

	sahlFlags = flagsT{}
	resetFlags(rootCmd)
	rootCmd.SetArgs(cmd)
	require.NoError(t, rootCmd.Execute(), "error executing '"+strings.Join(cmd, " ")+"' : "+intentMsg)
	if expectError {
		require.Equal(t, fatalCallsBefore+1, exitMocks.fatalCalls(),
			"ran '"+strings.Join(cmd, " ")+"' expecting error and didn't see one in mocks : "+intentMsg)
	} else {
		require.Equal(t, fatalCallsBefore, exitMocks.fatalCalls(),
			"unexpected error in mocks on '"+strings.Join(cmd, " ")+"' : "+intentMsg)
	}
}
