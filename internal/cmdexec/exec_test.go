package cmdexec

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vagrant-mcp/gpdb-vagrant/internal/errors"
)

func requireShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not found in PATH")
	}
}

func TestExecute_CapturesOutput(t *testing.T) {
	requireShell(t)

	var mu sync.Mutex
	var streamed []byte
	result, err := Execute(context.Background(), "sh", []string{"-c", "echo out; echo err >&2"}, CmdOptions{
		OutputCallback: func(data []byte, isStderr bool) {
			mu.Lock()
			defer mu.Unlock()
			streamed = append(streamed, data...)
		},
	})
	require.NoError(t, err)
	assert.True(t, result.IsSuccessful())
	assert.Equal(t, "out\n", string(result.StdOut))
	assert.Equal(t, "err\n", string(result.StdErr))
	assert.Len(t, streamed, len("out\n")+len("err\n"))
}

func TestExecute_NonZeroExit(t *testing.T) {
	requireShell(t)

	result, err := Execute(context.Background(), "sh", []string{"-c", "exit 3"}, CmdOptions{})
	require.NoError(t, err)
	assert.Equal(t, 3, result.ExitCode)
	assert.False(t, result.IsSuccessful())
}

func TestExecute_Directory(t *testing.T) {
	requireShell(t)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "marker"), nil, 0644))

	result, err := Execute(context.Background(), "sh", []string{"-c", "ls"}, CmdOptions{Directory: dir})
	require.NoError(t, err)
	assert.Contains(t, string(result.StdOut), "marker")
}

func TestExecute_MissingBinary(t *testing.T) {
	_, err := Execute(context.Background(), "definitely-not-a-real-binary-gpdb", nil, CmdOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeOperationFailed))
}

func TestResult_FormatCommand(t *testing.T) {
	assert.Equal(t, "vagrant", (&Result{Command: "vagrant"}).FormatCommand())
	assert.Equal(t, "vagrant [validate]", (&Result{Command: "vagrant", Args: []string{"validate"}}).FormatCommand())
}

func TestVagrantExecutor_ValidateReportsFailure(t *testing.T) {
	requireShell(t)

	// A stand-in vagrant that always rejects the Vagrantfile
	bin := filepath.Join(t.TempDir(), "vagrant")
	require.NoError(t, os.WriteFile(bin, []byte("#!/bin/sh\necho 'There are errors in the configuration' >&2\nexit 1\n"), 0755))

	err := NewVagrantExecutor(bin).Validate(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeVagrantError))
	assert.Contains(t, err.Error(), "There are errors in the configuration")
}

func TestVagrantExecutor_ValidateSuccess(t *testing.T) {
	requireShell(t)

	bin := filepath.Join(t.TempDir(), "vagrant")
	require.NoError(t, os.WriteFile(bin, []byte("#!/bin/sh\necho 'Vagrantfile validated successfully.'\n"), 0755))

	assert.NoError(t, NewVagrantExecutor(bin).Validate(context.Background(), t.TempDir()))
	assert.NoError(t, NewVagrantExecutor(bin).CheckInstalled(context.Background()))
}
