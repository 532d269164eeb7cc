package cli

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	querybuilder "github.com/biyonik/go-query-builder"
)

const usersDef = `
name: active_users
table: users
alias: u
filters:
  - {column: username, value: admin}
  - {column: date_created, op: "<", value: 100}
order: [username ASC]
limit: {count: 10}
`

const usersSQL = "SELECT * FROM users u WHERE username = ? AND date_created < ? ORDER BY username ASC LIMIT 0, 10"

// runCLI executes the root command in an empty working directory so no
// stray querybuild.yaml is picked up.
func runCLI(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeDef(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestVersionCommand(t *testing.T) {
	t.Chdir(t.TempDir())

	out, _, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "querybuild v"+querybuilder.Version+"\n", out)
}

func TestRender_Text(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := writeDef(t, dir, "users.yaml", usersDef)

	out, _, err := runCLI(t, "render", path)
	require.NoError(t, err)

	assert.Contains(t, out, "-- active_users\n"+usersSQL+"\n")
	assert.Contains(t, out, "admin")
	assert.Contains(t, out, "string")
	assert.Contains(t, out, "100")
	assert.Contains(t, out, "int")
}

func TestRender_TextWithoutParams(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := writeDef(t, dir, "all.yaml", "table: users\n")

	out, _, err := runCLI(t, "render", path)
	require.NoError(t, err)
	assert.Equal(t, "-- "+path+"\nSELECT * FROM users\n(no params)\n", out)
}

func TestRender_JSONLines(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	first := writeDef(t, dir, "users.yaml", usersDef)
	second := writeDef(t, dir, "all.yaml", "table: users\n")

	out, _, err := runCLI(t, "render", "--output", "json", first, second)
	require.NoError(t, err)

	var lines []renderOutput
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		var line renderOutput
		require.NoError(t, json.Unmarshal(sc.Bytes(), &line))
		lines = append(lines, line)
	}
	require.Len(t, lines, 2)

	assert.Equal(t, "active_users", lines[0].Name)
	assert.Equal(t, usersSQL, lines[0].SQL)
	// JSON numbers decode as float64
	assert.Equal(t, []any{"admin", float64(100)}, lines[0].Params)

	assert.Equal(t, "SELECT * FROM users", lines[1].SQL)
	assert.Empty(t, lines[1].Params)
}

func TestRender_OutputFromConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeDef(t, dir, "querybuild.yaml", "output: json\n")
	path := writeDef(t, dir, "all.yaml", "table: users\n")

	out, _, err := runCLI(t, "render", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "{"), out)
}

func TestRender_Strict(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := writeDef(t, dir, "bad.yaml", "table: users\nfilters:\n  - {column: id, op: SOUNDS, value: 1}\n")

	t.Run("lenient compiles anyway", func(t *testing.T) {
		out, _, err := runCLI(t, "render", path)
		require.NoError(t, err)
		assert.Contains(t, out, "SELECT * FROM users WHERE id SOUNDS ?")
	})

	t.Run("strict rejects", func(t *testing.T) {
		_, stderr, err := runCLI(t, "render", "--strict", path)
		require.Error(t, err)
		assert.ErrorIs(t, err, querybuilder.ErrInvalidOperator)
		assert.Contains(t, err.Error(), path)
		assert.Contains(t, stderr, "query validation failed")
	})
}

func TestRender_VerboseLogsCompiledQuery(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := writeDef(t, dir, "users.yaml", usersDef)

	_, stderr, err := runCLI(t, "render", "--verbose", "--strict", path)
	require.NoError(t, err)
	assert.Contains(t, stderr, "compiled query")
	assert.Contains(t, stderr, "grammar=ansi")
}

func TestRender_Errors(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	t.Run("no args", func(t *testing.T) {
		_, _, err := runCLI(t, "render")
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := runCLI(t, "render", filepath.Join(dir, "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid output", func(t *testing.T) {
		path := writeDef(t, dir, "all.yaml", "table: users\n")
		_, _, err := runCLI(t, "render", "--output", "xml", path)
		assert.Error(t, err)
	})
}
