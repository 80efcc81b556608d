package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"csv-mapper/lineio"
	"csv-mapper/options"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func runArgs(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_Usage(t *testing.T) {
	code, _, stderr := runArgs(t)
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "Commands:")

	code, stdout, _ := runArgs(t, "help")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "convert")

	code, _, stderr = runArgs(t, "bogus")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "unknown command: bogus")
}

func TestRun_Check(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.yaml", "codec:\n  mode: header\n  headers: from_file\n")
	bad := writeFile(t, dir, "bad.yaml", "codec:\n  mode: header\n  headers: from_file\n  parallel: true\n")

	code, stdout, stderr := runArgs(t, "check", "-config", good)
	assert.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "ok")

	code, _, stderr = runArgs(t, "check", "-config", bad)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "parallel")

	code, _, _ = runArgs(t, "check")
	assert.Equal(t, 2, code)
}

func TestRun_Convert(t *testing.T) {
	dir := t.TempDir()
	profile := writeFile(t, dir, "in.yaml", `codec:
  mode: header
  headers: from_file
  delimiter: ";"
  line_terminator: "\n"
  filter:
    mode: ignore
    values: secret
`)
	in := writeFile(t, dir, "in.txt", "id; name ;secret\n1;ann;x\n\n2;bob;y\n")
	out := filepath.Join(dir, "out.csv.zst")

	code, stdout, stderr := runArgs(t, "convert", "-config", profile, "-in", in, "-out", out, "-delimiter", ",")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "converted 2 records")

	var lines []string
	for line, err := range lineio.NewFile(out).Lines(context.Background()) {
		require.NoError(t, err)
		lines = append(lines, line)
	}
	assert.Equal(t, []string{"id,name", "1,ann", "2,bob"}, lines)
}

func TestConvert_Ordinal(t *testing.T) {
	in := options.New(options.AddressingOrdinal, options.HeadersNone)
	in.LineTerminator = "\n"
	in.StrictFieldCount = true
	out := in
	out.Delimiter = '\t'

	sink := &lineio.MemorySink{}
	n, err := convert(context.Background(), lineio.FromString("a,b\nc,d\ne\n"), sink, in, out, true)

	require.Error(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "col1\tcol2\na\tb\nc\td\n", sink.String())
}

func TestConvert_EmptyInput(t *testing.T) {
	opts := options.New(options.AddressingOrdinal, options.HeadersNone)
	_, err := convert(context.Background(), lineio.FromString("\n\n"), &lineio.MemorySink{}, opts, opts, false)
	require.ErrorIs(t, err, options.ErrInvalidArgument)
}

func TestRun_Gen(t *testing.T) {
	out := t.TempDir()

	code, stdout, stderr := runArgs(t, "gen", "-pkg", "csv-mapper/examples/orders", "-types", "BuyOrder", "-out", out)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "wrote csvfields_gen.go")

	content, err := os.ReadFile(filepath.Join(out, "csvfields_gen.go"))
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(content), "var BuyOrderFields = schema.NewTable"))

	code, _, stderr = runArgs(t, "gen", "-pkg", "csv-mapper/examples/orders", "-types", "Missing", "-out", out)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "Missing")
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"A", "B"}, splitList(" A, ,B,"))
	assert.Nil(t, splitList(""))
}
