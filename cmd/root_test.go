package cmd

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/apptremind/internal/errors"
	"github.com/manav03panchal/apptremind/internal/logging"
	"github.com/manav03panchal/apptremind/internal/output"
	"github.com/manav03panchal/apptremind/internal/runtime"
)

const menu = "\nMenu:\n1: Add appointment\n2: Write reminders\n3: Set new reminder template\n4: Quit\nEnter your choice:\n"

// resetFlags restores flag defaults; cobra keeps parsed values between executions.
func resetFlags(t *testing.T) {
	t.Helper()
	reset := func(f *pflag.Flag) {
		require.NoError(t, f.Value.Set(f.DefValue))
		f.Changed = false
	}
	for _, c := range []*cobra.Command{rootCmd, previewCmd} {
		c.PersistentFlags().VisitAll(reset)
		c.Flags().VisitAll(reset)
	}
}

func execute(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	resetFlags(t)

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootRunsMenu(t *testing.T) {
	got, err := execute(t, "1\nBob\n3 PM\nno\n2\n4\n", "--color", "never", "--template", "Hi name, reminder for time")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(got, menu))
	assert.Contains(t, got, "Hi Bob, reminder for 3 PM\n")
	assert.True(t, strings.HasSuffix(got, "Exiting the program.\n"))
	assert.Nil(t, appCtx)
}

func TestRootIgnoresTemplateEnv(t *testing.T) {
	t.Setenv("APPTREMIND_TEMPLATE", "name at time")

	got, err := execute(t, "1\nAna\n9 AM\nyes\nconsultation\n2\n", "--color", "never")
	require.NoError(t, err)

	assert.NotContains(t, got, "Ana at 9 AM for consultation\n")
	assert.Contains(t, got, "Hi Ana, this is Parker. I just want to remind you about your appointment with bishop at 9 AM for consultation\n")
}

func TestRootTemplateFlag(t *testing.T) {
	got, err := execute(t, "2\n1\nAna\n9 AM\nyes\nconsultation\n2\n", "--color", "never", "--template", "name at time")
	require.NoError(t, err)

	assert.Contains(t, got, "No appointments to create\n")
	assert.Contains(t, got, "Ana at 9 AM for consultation\n")
}

func TestRunMenuStoreFailure(t *testing.T) {
	var logs bytes.Buffer
	logging.Init(logging.Config{Level: slog.LevelWarn, Output: &logs})
	t.Cleanup(func() { logging.Init(logging.Config{Level: slog.LevelWarn}) })

	var out bytes.Buffer
	rc, err := runtime.New(runtime.Options{
		Template:  "name",
		ColorMode: output.ColorNever,
		Input:     strings.NewReader("1\nBob\n3 PM\nno\n"),
		Output:    &out,
	})
	require.NoError(t, err)
	require.NoError(t, rc.DB.Close())
	appCtx = rc
	t.Cleanup(func() { appCtx = nil })

	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	err = runMenu(cmd, nil)

	require.Error(t, err)
	assert.True(t, errors.IsSystemError(err))
	assert.Contains(t, logs.String(), "appointment store failed")
	assert.NotContains(t, out.String(), "Basic appointment added successfully!")
}

func TestRootEndOfInput(t *testing.T) {
	got, err := execute(t, "", "--color", "never")
	require.NoError(t, err)
	assert.Equal(t, menu, got)
}

func TestPreview(t *testing.T) {
	t.Run("plain", func(t *testing.T) {
		got, err := execute(t, "", "preview", "--color", "never", "--template", "name at time", "--name", "Bob", "--time", "3 PM")
		require.NoError(t, err)
		assert.Equal(t, "Bob at 3 PM\n", got)
	})

	t.Run("typed", func(t *testing.T) {
		got, err := execute(t, "", "preview", "--color", "never", "--template", "name at time", "--name", "Ana", "--time", "9 AM", "--category", "Interview")
		require.NoError(t, err)
		assert.Equal(t, "Ana at 9 AM for interview\n", got)
	})

	t.Run("invalid_category", func(t *testing.T) {
		_, err := execute(t, "", "preview", "--name", "Ana", "--time", "9 AM", "--category", "lunch")
		assert.True(t, errors.Is(err, errors.ErrInvalidCategory))
	})

	t.Run("missing_name", func(t *testing.T) {
		_, err := execute(t, "", "preview", "--time", "9 AM")
		assert.True(t, errors.Is(err, errors.ErrEmptyName))
	})
}

func TestVersion(t *testing.T) {
	got, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, got, "apptremind dev")
}
