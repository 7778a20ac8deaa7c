package hull

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogDiagnostics(t *testing.T) {
	t.Run("successful trace narrates the close", func(t *testing.T) {
		var buf bytes.Buffer
		_, err := Compute(squareWithCenter(), Options{Diagnostics: &LogDiagnostics{Out: &buf}})
		require.NoError(t, err)

		out := buf.String()
		assert.Contains(t, out, "tracing 5 points with k=3")
		assert.Contains(t, out, "step 1")
		assert.Contains(t, out, "closed")
	})

	t.Run("exhausted search narrates every failure", func(t *testing.T) {
		var buf bytes.Buffer
		_, err := Compute(collinearPoints(), Options{Diagnostics: &LogDiagnostics{Out: &buf}})
		require.Error(t, err)

		out := buf.String()
		assert.Contains(t, out, "k=3")
		assert.Contains(t, out, "k=4")
		assert.Contains(t, out, "failed")
		assert.NotContains(t, out, "closed")
	})
}

func TestSnapshotDiagnostics(t *testing.T) {
	dir := t.TempDir()
	snap := &SnapshotDiagnostics{Dir: dir, Scale: 40}

	_, err := Compute(squareWithCenter(), Options{Diagnostics: snap})
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(dir, "attempt_k3_hull.png"))
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestSnapshotDiagnosticsFailedAttempt(t *testing.T) {
	dir := t.TempDir()
	snap := &SnapshotDiagnostics{Dir: dir, Scale: 40}

	_, err := Compute(collinearPoints(), Options{Diagnostics: snap})
	require.Error(t, err)

	_, statErr := os.Stat(filepath.Join(dir, "attempt_k3_failed.png"))
	assert.NoError(t, statErr)
	_, statErr = os.Stat(filepath.Join(dir, "attempt_k4_failed.png"))
	assert.NoError(t, statErr)
}
