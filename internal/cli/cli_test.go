package cli

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/telelog/compress"
	"github.com/arloliu/telelog/endian"
	"github.com/arloliu/telelog/format"
	"github.com/arloliu/telelog/internal/testutil"
)

func writeLog(t *testing.T, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	return path
}

func mixedLog() []byte {
	return testutil.NewStreamBuilder().
		Header("rig1", 1000, 0).
		Definition(7, "speed", 1000, 0, "m/s").
		Definition(9, "status", 1000, 1, "").
		Numeric(7, 1010, 4.25).
		Numeric(7, 1005, 3.5).
		Text(9, 1006, "OK", 0).
		Bytes()
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	root := NewRootCommand(BuildInfo{Version: "test", Commit: "abc", Date: "today"})
	root.SetArgs(args)
	root.SetOut(&stdout)
	root.SetErr(&stderr)

	err := root.Execute()

	return stdout.String(), stderr.String(), err
}

func TestInspect(t *testing.T) {
	path := writeLog(t, "telemetry.rrd", mixedLog())

	out, _, err := run(t, "inspect", path)
	require.NoError(t, err)
	require.Contains(t, out, "rig1 1000")
	require.Contains(t, out, "Series 'speed' (ID: 7, Unit: m/s, type: Numeric, Start time: 1000)")
	require.Contains(t, out, "speed [1005]: 3.5\nspeed [1010]: 4.25\n")
	require.Contains(t, out, "status [1006]: OK")

	out, _, err = run(t, "inspect", "--limit", "1", path)
	require.NoError(t, err)
	require.Contains(t, out, "speed [1005]: 3.5")
	require.NotContains(t, out, "speed [1010]")
	require.Contains(t, out, "... 1 more")
}

func TestSeries(t *testing.T) {
	path := writeLog(t, "telemetry.rrd", mixedLog())

	out, _, err := run(t, "series", path)
	require.NoError(t, err)
	require.Contains(t, out, "speed")
	require.NotContains(t, out, "status")

	out, _, err = run(t, "series", "--all", path)
	require.NoError(t, err)
	require.Contains(t, out, "status")
}

func TestValues(t *testing.T) {
	path := writeLog(t, "telemetry.rrd", mixedLog())

	out, _, err := run(t, "values", path, "speed")
	require.NoError(t, err)
	require.Equal(t, "1005\t3.5\n1010\t4.25\n", out)

	out, _, err = run(t, "values", "--from", "1006", path, "speed")
	require.NoError(t, err)
	require.Equal(t, "1010\t4.25\n", out)

	_, _, err = run(t, "values", path, "missing")
	require.ErrorContains(t, err, `series "missing" not found`)
}

func TestExport(t *testing.T) {
	path := writeLog(t, "telemetry.rrd", mixedLog())

	t.Run("JSON to stdout", func(t *testing.T) {
		out, _, err := run(t, "export", path)
		require.NoError(t, err)

		var doc map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &doc))
		require.Equal(t, "rig1", doc["name"])
	})

	t.Run("CSV to file", func(t *testing.T) {
		dest := filepath.Join(t.TempDir(), "out.csv")
		_, stderr, err := run(t, "export", "-f", "csv", "-o", dest, path)
		require.NoError(t, err)
		require.Contains(t, stderr, "exported")

		data, err := os.ReadFile(dest)
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(string(data), "series_id,series_name"))
	})

	t.Run("SQLite requires out", func(t *testing.T) {
		_, _, err := run(t, "export", "-f", "sqlite", path)
		require.ErrorContains(t, err, "--out is required")

		dest := filepath.Join(t.TempDir(), "out.db")
		_, _, err = run(t, "export", "-f", "sqlite", "-o", dest, path)
		require.NoError(t, err)
		require.FileExists(t, dest)
	})

	t.Run("Non-finite values as JSON", func(t *testing.T) {
		data := testutil.NewStreamBuilder().
			Header("rig1", 1000, 0).
			Definition(7, "speed", 1000, 0, "m/s").
			Numeric(7, 1005, math.NaN()).
			Numeric(7, 1006, math.Inf(1)).
			Bytes()

		out, _, err := run(t, "export", writeLog(t, "nan.rrd", data))
		require.NoError(t, err)
		require.Contains(t, out, `"value": "NaN"`)
		require.Contains(t, out, `"value": "+Inf"`)
	})

	t.Run("Unknown format", func(t *testing.T) {
		_, _, err := run(t, "export", "-f", "xml", path)
		require.ErrorContains(t, err, "unsupported format")
	})
}

func TestConfigAndFlags(t *testing.T) {
	bigEndian := testutil.NewStreamBuilderWithEngine(endian.GetBigEndianEngine()).
		Header("rig1", 1000, 0).
		Definition(7, "speed", 1000, 0, "m/s").
		Numeric(7, 1005, 3.5).
		Bytes()
	path := writeLog(t, "big.rrd", bigEndian)

	t.Run("Byte order flag", func(t *testing.T) {
		out, _, err := run(t, "values", "--byte-order", "big", path, "speed")
		require.NoError(t, err)
		require.Equal(t, "1005\t3.5\n", out)
	})

	t.Run("Byte order from config", func(t *testing.T) {
		cfgPath := writeLog(t, "telelog.yaml", []byte("byte_order: big\noutput: csv\n"))

		out, _, err := run(t, "--config", cfgPath, "values", path, "speed")
		require.NoError(t, err)
		require.Equal(t, "1005\t3.5\n", out)

		out, _, err = run(t, "--config", cfgPath, "export", path)
		require.NoError(t, err)
		require.Contains(t, out, "7,speed,m/s,Numeric,1005,3.5")
	})

	t.Run("Invalid byte order", func(t *testing.T) {
		_, _, err := run(t, "series", "--byte-order", "middle", path)
		require.ErrorContains(t, err, "unknown byte order")
	})

	t.Run("Compression flag", func(t *testing.T) {
		codec, err := compress.GetCodec(format.CompressionS2)
		require.NoError(t, err)
		data, err := codec.Compress(mixedLog())
		require.NoError(t, err)
		s2Path := writeLog(t, "telemetry.bin", data)

		out, _, err := run(t, "--compression", "s2", "values", s2Path, "speed")
		require.NoError(t, err)
		require.Equal(t, "1005\t3.5\n1010\t4.25\n", out)
	})

	t.Run("Verbose logging", func(t *testing.T) {
		_, stderr, err := run(t, "-v", "series", writeLog(t, "t.rrd", mixedLog()))
		require.NoError(t, err)
		require.Contains(t, stderr, "log decoded")
	})
}

func TestDuplicateNamesWarning(t *testing.T) {
	data := testutil.NewStreamBuilder().
		Header("rig1", 1000, 0).
		Definition(7, "speed", 1000, 0, "m/s").
		Definition(4, "speed", 1000, 0, "km/h").
		Numeric(4, 1005, 12.6).
		Bytes()

	out, stderr, err := run(t, "values", writeLog(t, "dup.rrd", data), "speed")
	require.NoError(t, err)
	require.Equal(t, "1005\t12.6\n", out)
	require.Contains(t, stderr, "series names are not unique")
}

func TestLoadErrors(t *testing.T) {
	full := mixedLog()
	path := writeLog(t, "truncated.rrd", full[:len(full)-3])

	_, _, err := run(t, "inspect", path)
	require.ErrorContains(t, err, "insufficient data")

	_, _, err = run(t, "inspect", filepath.Join(t.TempDir(), "missing.rrd"))
	require.ErrorContains(t, err, "i/o error")

	_, _, err = run(t, "--config", filepath.Join(t.TempDir(), "none.yaml"), "series", path)
	require.ErrorContains(t, err, "failed to read config")
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	require.Equal(t, defaultConfig(), cfg)

	path := writeLog(t, "bad.yaml", []byte("byte_order: [unclosed"))
	_, err = LoadConfig(path)
	require.ErrorContains(t, err, "failed to parse config")

	opts, err := Config{ByteOrder: "little", Compression: "zstd"}.LoadOptions()
	require.NoError(t, err)
	require.Len(t, opts, 2)

	_, err = Config{Compression: "gzip"}.LoadOptions()
	require.Error(t, err)
}
