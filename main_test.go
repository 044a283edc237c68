package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMain_Subprocess runs the binary entry point in a child test process
// so os.Exit can be observed.
func TestMain_Subprocess(t *testing.T) {
	if os.Getenv("ENV_FILTER_RUN_MAIN") == "1" {
		os.Args = append([]string{"env-filter"}, filepath.SplitList(os.Getenv("ENV_FILTER_ARGS"))...)
		main()
		return
	}

	t.Run("launch failure exits 2", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "missing")
		cmd := exec.Command(os.Args[0], "-test.run=TestMain_Subprocess")
		cmd.Env = append(os.Environ(), "ENV_FILTER_RUN_MAIN=1", "ENV_FILTER_ARGS=-c"+string(filepath.ListSeparator)+missing)
		out, err := cmd.Output()

		var exitErr *exec.ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 2, exitErr.ExitCode())
		assert.Empty(t, out)
	})

	t.Run("matches are printed", func(t *testing.T) {
		cmd := exec.Command(os.Args[0], "-test.run=TestMain_Subprocess")
		cmd.Env = append(os.Environ(),
			"ENV_FILTER_RUN_MAIN=1",
			"ENV_FILTER_ARGS=-p"+string(filepath.ListSeparator)+"ENV_FILTER_MAIN_PROBE",
			"ENV_FILTER_MAIN_PROBE=/tmp/main",
		)
		out, err := cmd.Output()
		require.NoError(t, err)
		assert.Equal(t, "ENV_FILTER_MAIN_PROBE=/tmp/main\n", string(out))
	})
}
