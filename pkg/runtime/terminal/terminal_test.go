package terminal

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/de-tools/itinerary-diff/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testdata = filepath.Join("..", "..", "services", "itinerary", "testdata")

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cli := NewCLI(Options{Output: &stdout, ErrOutput: &stderr, Args: args})
	err := cli.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCLI_Compare(t *testing.T) {
	out, _, err := run(t, "compare",
		filepath.Join(testdata, "round_trip.xml"),
		filepath.Join(testdata, "one_way.xml"))
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(out, "Itinerary #"))
	assert.Contains(t, out, "DXB-DEL, DEL-BKK")
	assert.Contains(t, out, "986.00 SGD")
	assert.Contains(t, out, "612.10 SGD")
	assert.True(t, strings.HasSuffix(out,
		"There's also 1 itinerary in first response that does not have pairs in second.\n"), out)
}

func TestCLI_Compare_SameFile(t *testing.T) {
	path := filepath.Join(testdata, "round_trip.xml")

	out, _, err := run(t, "compare", path, path)
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(out, "Itinerary #"))
	assert.NotContains(t, out, "There's also")
}

func TestCLI_Compare_EmptyReturnLeg(t *testing.T) {
	out, _, err := run(t, "compare",
		filepath.Join(testdata, "empty_return.xml"),
		filepath.Join(testdata, "one_way.xml"))
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(out, "Itinerary #"))
	assert.NotContains(t, out, "There's also")
}

func TestCLI_Compare_MarkDiffsFromConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	content := "first: " + filepath.Join(testdata, "round_trip.xml") + "\n" +
		"second: " + filepath.Join(testdata, "one_way.xml") + "\n" +
		"mark_diffs: true\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o644))

	out, _, err := run(t, "--config", cfgPath, "compare")
	require.NoError(t, err)

	assert.Contains(t, out, " * |")
}

func TestCLI_Compare_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		out, _, err := run(t, "compare",
			filepath.Join(testdata, "round_trip.xml"),
			filepath.Join(testdata, "missing.xml"))

		var pe *domain.ParseError
		require.True(t, errors.As(err, &pe))
		assert.Empty(t, out, "no partial report")
	})

	t.Run("malformed first file", func(t *testing.T) {
		out, _, err := run(t, "compare",
			filepath.Join(testdata, "broken.xml"),
			filepath.Join(testdata, "round_trip.xml"))

		var pe *domain.ParseError
		require.True(t, errors.As(err, &pe))
		assert.Empty(t, out)
	})

	t.Run("no itinerary container", func(t *testing.T) {
		_, _, err := run(t, "compare",
			filepath.Join(testdata, "no_itineraries.xml"),
			filepath.Join(testdata, "round_trip.xml"))

		var se *domain.StructureError
		assert.True(t, errors.As(err, &se))
	})

	t.Run("too many arguments", func(t *testing.T) {
		_, _, err := run(t, "compare", "a.xml", "b.xml", "c.xml")
		assert.Error(t, err)
	})

	t.Run("invalid log level", func(t *testing.T) {
		_, _, err := run(t, "--log-level", "loud", "compare")
		assert.Error(t, err)
	})
}

func TestCLI_Inspect(t *testing.T) {
	path := filepath.Join(testdata, "round_trip.xml")

	out, _, err := run(t, "inspect", path)
	require.NoError(t, err)

	assert.Contains(t, out, path+": itinerary #1")
	assert.Contains(t, out, path+": itinerary #2")
	assert.True(t, strings.HasSuffix(out, "2 itineraries in "+path+".\n"))
}

func TestCLI_DebugLogsGoToErrOutput(t *testing.T) {
	path := filepath.Join(testdata, "one_way.xml")

	out, logs, err := run(t, "--log-level", "debug", "compare", path, path)
	require.NoError(t, err)

	assert.NotContains(t, out, "extracted itineraries")
	assert.Contains(t, logs, "extracted itineraries")
}
