// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the CLI with args, resetting all flags first, since the
// command tree is global.
func run(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	var visit func(*cobra.Command)
	visit = func(c *cobra.Command) {
		c.Flags().VisitAll(reset)
		c.PersistentFlags().VisitAll(reset)
		for _, child := range c.Commands() {
			visit(child)
		}
	}
	visit(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err = Execute(context.Background())
	return out.String(), errOut.String(), err
}

func TestVersion(t *testing.T) {
	stdout, _, err := run(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "oxide v"+Version+"\n"))
}

func TestTokens(t *testing.T) {
	stdout, _, err := run(t, "let x;", "tokens")
	require.NoError(t, err)
	assert.Equal(t, "1:1\tlet\t\"let\"\n1:5\tidentifier\t\"x\"\n1:6\t;\t\";\"\n1:7\tend of input\t\"\"\n", stdout)
}

func TestParseFormats(t *testing.T) {
	const text = "let x = 1 + 2 * 3;"

	stdout, _, err := run(t, text, "parse", "--format", "sexpr")
	require.NoError(t, err)
	assert.Equal(t, "let x = (1 + (2 * 3));\n", stdout)

	stdout, _, err = run(t, text, "parse")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "Let Statement:\n  Variable: x\n"), stdout)

	stdout, _, err = run(t, "let x = -y;", "parse", "-f", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"let": {"name": "x", "value": {"unary": {"op": "-", "operand": {"ident": "y"}}}}}]`, stdout)

	stdout, _, err = run(t, "{ 1; }", "parse", "-f", "yaml")
	require.NoError(t, err)
	assert.Contains(t, stdout, "block:")
	assert.Contains(t, stdout, "number: 1")

	_, _, err = run(t, text, "parse", "-f", "xml")
	require.Error(t, err)
	assert.Equal(t, 2, ExitCode(err))
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prog.ox")
	require.NoError(t, os.WriteFile(path, []byte("a - b - c;\n"), 0o600))

	stdout, _, err := run(t, "", "parse", "-f", "sexpr", path)
	require.NoError(t, err)
	assert.Equal(t, "((a - b) - c);\n", stdout)

	_, _, err = run(t, "", "parse", filepath.Join(t.TempDir(), "missing.ox"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseErrors(t *testing.T) {
	stdout, stderr, err := run(t, "let x = ;", "parse")
	require.Error(t, err)
	assert.True(t, IsReported(err))
	assert.Equal(t, 1, ExitCode(err))
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "error: unexpected `;` after `=`")
	assert.Contains(t, stderr, "--> <stdin>:1:9")
	assert.Contains(t, stderr, "encountered 1 error")

	stdout, _, err = run(t, "let x = ;", "parse", "-f", "json")
	assert.True(t, IsReported(err))
	assert.Contains(t, stdout, `"diagnostics"`)

	_, stderr, err = run(t, "---x;", "parse", "--max-depth", "2")
	assert.True(t, IsReported(err))
	assert.Contains(t, stderr, "nesting is too deep")
}

func TestParseAt(t *testing.T) {
	stdout, _, err := run(t, "let x = 1 + y;", "parse", "--at", "1:9")
	require.NoError(t, err)
	assert.Equal(t, `Program 1:1-1:15
  LetStmt 1:1-1:15
    BinaryExpr 1:9-1:14
      NumberLit 1:9-1:10
`, stdout)

	_, _, err = run(t, "x;", "parse", "--at", "5:1")
	assert.ErrorContains(t, err, "outside of <stdin>")
	_, _, err = run(t, "x;", "parse", "--at", "five")
	assert.ErrorContains(t, err, "invalid position")
}

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, text := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
		require.NoError(t, os.WriteFile(path, []byte(text), 0o600))
	}
	return dir
}

func TestCheck(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"a.ox":     "let a = 1;\n",
		"b.ox":     "let b = ;\n",
		"sub/c.ox": "{ ) }\n",
		"d.txt":    "not oxide",
	})
	glob := filepath.ToSlash(dir) + "/**/*.ox"

	_, stderr, err := run(t, "", "check", "--compact", glob)
	require.Error(t, err)
	assert.Equal(t, 1, ExitCode(err))
	assert.Equal(t,
		"error: "+filepath.Join(dir, "b.ox")+":1:9: unexpected `;` after `=`\n"+
			"error: "+filepath.Join(dir, "sub", "c.ox")+":1:3: unexpected `)` in block\n",
		stderr,
	)

	_, stderr, err = run(t, "", "check", "--compact", "--fail-fast", "-j", "1", glob)
	assert.True(t, IsReported(err))
	assert.Equal(t, 1, strings.Count(stderr, "error:"))

	stdout, _, err := run(t, "", "check", "-f", "json", glob)
	assert.True(t, IsReported(err))
	assert.Contains(t, stdout, `"unexpected `+"`;`"+` after `+"`=`"+`"`)

	_, stderr, err = run(t, "", "check", filepath.ToSlash(dir)+"/a.ox")
	require.NoError(t, err)
	assert.Empty(t, stderr)

	_, _, err = run(t, "", "check", filepath.ToSlash(dir)+"/*.rs")
	require.Error(t, err)
	assert.False(t, IsReported(err))
	assert.Equal(t, 2, ExitCode(err))
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, loaded, err := LoadConfig("")
	require.NoError(t, err)
	assert.Empty(t, loaded)
	assert.Equal(t, DefaultConfig(), cfg)

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
color = "never"
max_depth = 5
parallelism = 2
format = "sexpr"
`), 0o600))
	cfg, loaded, err = LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, path, loaded)
	assert.Equal(t, Config{Color: "never", MaxDepth: 5, Parallelism: 2, Format: "sexpr"}, cfg)

	require.NoError(t, os.WriteFile(path, []byte(`color = "sometimes"`), 0o600))
	_, _, err = LoadConfig(path)
	assert.ErrorContains(t, err, "invalid color setting")

	_, _, err = LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadConfigEnv(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	t.Setenv("OXIDE_COLOR", "always")
	t.Setenv("OXIDE_MAX_DEPTH", "7")
	cfg, _, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "always", cfg.Color)
	assert.Equal(t, 7, cfg.MaxDepth)

	t.Setenv("OXIDE_MAX_DEPTH", "abc")
	_, _, err = LoadConfig("")
	assert.ErrorContains(t, err, `invalid OXIDE_MAX_DEPTH "abc"`)

	t.Setenv("OXIDE_MAX_DEPTH", "0")
	_, _, err = LoadConfig("")
	assert.ErrorContains(t, err, "invalid max depth 0")

	t.Setenv("OXIDE_MAX_DEPTH", "")
	t.Setenv("OXIDE_COLOR", "sometimes")
	_, _, err = LoadConfig("")
	assert.ErrorContains(t, err, "invalid color setting")
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("format = \"sexpr\"\nmax_depth = 1\n"), 0o600))

	stdout, _, err := run(t, "-x;", "--config", path, "parse")
	require.NoError(t, err)
	assert.Equal(t, "(-x);\n", stdout)

	_, stderr, err := run(t, "--x;", "--config", path, "parse")
	assert.True(t, IsReported(err))
	assert.Contains(t, stderr, "nesting is too deep")

	// Flags win over the file.
	_, _, err = run(t, "--x;", "--config", path, "--max-depth", "2", "parse")
	require.NoError(t, err)
}

func TestReplPlain(t *testing.T) {
	stdout, _, err := run(t, "1 + 2;\nquit\n", "repl", "--plain")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Binary Expression (Add):")
	assert.True(t, strings.HasSuffix(stdout, "Goodbye!\n"))
}
