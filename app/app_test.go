package app

import (
	"bytes"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoPowerDNS-Admin/naptr-editor/internal/zone"
)

const testZone = `; 4.4.1.e164.arpa
; MSG SIZE 512
$ORIGIN 4.4.1.e164.arpa.
zone.example. 600 IN NAPTR 200 10 "U" "E2U+email" "!^.*$!mailto:info@example.com!" .
600 IN NAPTR 100 50 "U" "E2U+sip" "!^.*$!sip:info@example.com!" .
IN NAPTR 100 "U" "E2U+broken" "!^.*$!x!" .
IN NAPTR 100 10 "U" "E2U+tel" "!^.*$!tel:+441234!" .
`

func writeZone(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "zonefile")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{"--log-level", "disabled"}, args...))

	err := cmd.Execute()

	return out.String(), err
}

func readLines(t *testing.T, path string) []string {
	t.Helper()

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	return strings.Split(strings.TrimRight(string(b), "\n"), "\n")
}

func TestDisplay(t *testing.T) {
	path := writeZone(t, testZone)

	out, err := run(t, "--file", path, "display")
	require.NoError(t, err)

	assert.Equal(t, strings.Join([]string{
		`1.     IN NAPTR 100 10 "U" "E2U+tel" "!^.*$!tel:+441234!" .`,
		`2.   600 IN NAPTR 100 50 "U" "E2U+sip" "!^.*$!sip:info@example.com!" .`,
		`3. zone.example. 600 IN NAPTR 200 10 "U" "E2U+email" "!^.*$!mailto:info@example.com!" .`,
	}, "\n")+"\n", out)
}

func TestDisplayMissingFile(t *testing.T) {
	_, err := run(t, "--file", filepath.Join(t.TempDir(), "missing"), "display")

	assert.ErrorIs(t, err, zone.ErrIO)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestSave(t *testing.T) {
	path := writeZone(t, testZone)
	out := filepath.Join(t.TempDir(), "sorted")

	_, err := run(t, "--file", path, "save", "--out", out)
	require.NoError(t, err)

	lines := readLines(t, out)
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "E2U+tel")

	_, err = run(t, "--file", path, "save", "--keep-comments")
	require.NoError(t, err)

	lines = readLines(t, path)
	require.Len(t, lines, 5)
	assert.Equal(t, "; MSG SIZE 512", lines[1])
}

func TestAdd(t *testing.T) {
	path := writeZone(t, testZone)

	_, err := run(t, "--file", path, "add",
		"--order", "150", "--service", "E2U+web:http", "--replacement", "http://www.example.com/")
	require.NoError(t, err)

	lines := readLines(t, path)
	require.Len(t, lines, 4)
	assert.Equal(t, `  60 IN NAPTR 150 50 "U" "E2U+web:http" "!^.*$!http://www.example.com/!" .`, lines[2])
}

func TestAddCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.zone")

	_, err := run(t, "--file", path, "add", "--non-terminal", "--zone", "4.4.1.e164.arpa.")
	require.NoError(t, err)

	assert.Equal(t, []string{`4.4.1.e164.arpa. 60 IN NAPTR 32767 50 "U" "" "" .`}, readLines(t, path))
}

func TestAddInvalidNumber(t *testing.T) {
	path := writeZone(t, testZone)

	_, err := run(t, "--file", path, "add", "--order", "first")
	require.Error(t, err)

	// nothing written
	b, errRead := os.ReadFile(path)
	require.NoError(t, errRead)
	assert.Equal(t, testZone, string(b))
}

func TestEdit(t *testing.T) {
	path := writeZone(t, testZone)

	out, err := run(t, "--file", path, "edit", "1", "order", "300")
	require.NoError(t, err)
	assert.Contains(t, out, `3.     IN NAPTR 300 10 "U" "E2U+tel"`)

	lines := readLines(t, path)
	require.Len(t, lines, 3)
	assert.Contains(t, lines[2], "E2U+tel")
}

func TestEditErrors(t *testing.T) {
	path := writeZone(t, testZone)

	_, err := run(t, "--file", path, "edit", "9", "order", "1")
	assert.ErrorIs(t, err, zone.ErrIndexOutOfRange)

	_, err = run(t, "--file", path, "edit", "one", "order", "1")
	assert.Error(t, err)

	_, err = run(t, "--file", path, "edit", "1", "weight", "1")
	assert.Error(t, err)

	_, err = run(t, "--file", path, "edit", "1")
	assert.Error(t, err)
}

func TestDelete(t *testing.T) {
	path := writeZone(t, testZone)

	_, err := run(t, "--file", path, "delete", "2")
	require.NoError(t, err)

	lines := readLines(t, path)
	require.Len(t, lines, 2)
	assert.NotContains(t, strings.Join(lines, "\n"), "E2U+sip")

	_, err = run(t, "--file", path, "delete", "3")
	assert.ErrorIs(t, err, zone.ErrIndexOutOfRange)
}

func TestCheck(t *testing.T) {
	path := writeZone(t, testZone)

	out, err := run(t, "--file", path, "check")
	require.ErrorIs(t, err, ErrCheckFailed)
	assert.Contains(t, out, "E2U+broken")

	good := writeZone(t, `e.example. 60 IN NAPTR 100 10 "U" "E2U+sip" "!^.*$!sip:a@example.com!" .`+"\n")

	out, err = run(t, "--file", good, "check")
	require.NoError(t, err)
	assert.Equal(t, "1 NAPTR records ok\n", out)
}

func TestMetricsTextfile(t *testing.T) {
	var (
		path = writeZone(t, testZone)
		prom = filepath.Join(t.TempDir(), "naptr.prom")
	)

	t.Setenv("NAPTR_EDITOR_CONFIG_JSON", `{"Metrics":{"TextFile":"`+prom+`"}}`)

	_, err := run(t, "--file", path, "display")
	require.NoError(t, err)

	b, err := os.ReadFile(prom)
	require.NoError(t, err)
	assert.Contains(t, string(b), "naptr_editor_records_loaded_total")
	assert.Contains(t, string(b), `naptr_editor_parse_failures_total{kind="format"`)
}

func TestConfigCmd(t *testing.T) {
	out, err := run(t, "--file", "x.zone", "config", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"File": "x.zone"`)
}

func TestPushWithoutServer(t *testing.T) {
	path := writeZone(t, testZone)

	_, err := run(t, "--file", path, "push")
	assert.Error(t, err)
}
