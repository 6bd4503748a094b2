package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/yves/internal/input"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// execute runs the root command against stdin with an empty config file.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cfg := writeFile(t, t.TempDir(), "config.yaml", "{}\n")
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--config", cfg, "--no-color"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestRootStdin(t *testing.T) {
	out, err := execute(t, `{"hello": "moto"}`)
	require.NoError(t, err)
	assert.Equal(t, "{ hello: 'moto' }\n", out)
}

func TestRootStdinDocuments(t *testing.T) {
	out, err := execute(t, "{\"n\": 1}\n{\"n\": 2}\n", "--format", "jsonl", "--label", "event")
	require.NoError(t, err)
	assert.Equal(t, "event: { n: 1 }\nevent: { n: 2 }\n", out)
}

func TestRootFileLabelledByName(t *testing.T) {
	path := writeFile(t, t.TempDir(), "data.yaml", "a: 1\nb: [1, 2]\n")
	out, err := execute(t, "", path, "--indent", "2")
	require.NoError(t, err)
	assert.Equal(t, "data.yaml: {\n  a: 1,\n  b: [ 1, 2 ]\n}\n", out)
}

func TestRootOptionFlags(t *testing.T) {
	tests := map[string]struct {
		args []string
		want string
	}{
		"exclude":    {args: []string{"--exclude", "secret"}, want: "{ user: 'ann' }\n"},
		"obfuscate":  {args: []string{"--obfuscate", "/^sec/"}, want: "{ secret: <<obfuscated>>, user: 'ann' }\n"},
		"include":    {args: []string{"--include", "user"}, want: "{ user: 'ann' }\n"},
		"max keys":   {args: []string{"--max-object-keys", "1"}, want: "{ secret: 'pw', <<truncated>> }\n"},
		"max string": {args: []string{"--max-string-length", "4"}, want: "{ secret: 'pw', user: '... }\n"},
		"json":       {args: []string{"--json"}, want: "{ \"secret\": \"pw\", \"user\": \"ann\" }\n"},
		"max length": {args: []string{"--max-length", "8"}, want: "{ secre…\n"},
		"no styles":  {args: []string{"--no-styles"}, want: "{ secret: 'pw', user: 'ann' }\n"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			out, err := execute(t, `{"user": "ann", "secret": "pw"}`, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRootCSV(t *testing.T) {
	out, err := execute(t, "name,age\nann,30\n", "-f", "csv", "--no-pretty")
	require.NoError(t, err)
	assert.Equal(t, "[ { age: '30', name: 'ann' } ]\n", out)
}

func TestRootErrors(t *testing.T) {
	_, err := execute(t, "", "--format", "ini")
	require.ErrorIs(t, err, input.ErrUnsupportedFormat)

	_, err = execute(t, "", filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	_, err = execute(t, "{", "--format", "json")
	require.Error(t, err)

	_, err = execute(t, "{}", "--include", "/[/")
	require.Error(t, err)
}

func TestStylesCommand(t *testing.T) {
	out, err := execute(t, "", "styles")
	require.NoError(t, err)
	assert.Contains(t, out, "string   green\n")
	assert.Contains(t, out, "key      bold\n")
	assert.Contains(t, out, "date     -\n")

	out, err = execute(t, "", "styles", "--no-styles")
	require.NoError(t, err)
	assert.Contains(t, out, "all      -\n")
	assert.NotContains(t, out, "green")
}

func TestOverridesOnlyChangedFlags(t *testing.T) {
	cmd := NewRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--indent", "3", "--no-pretty"}))
	ov, err := overrides(cmd.Flags())
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"indent": 3, "pretty": false}, ov)
}
