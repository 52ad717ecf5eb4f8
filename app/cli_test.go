package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cliResult struct {
	code   int
	stdout string
	stderr string
}

func runCLI(t *testing.T, stdin string, args ...string) cliResult {
	t.Helper()
	var out, errOut bytes.Buffer
	app := &appEnv{in: strings.NewReader(stdin), out: &out, errOut: &errOut}
	code := app.execute(args)
	return cliResult{code: code, stdout: out.String(), stderr: errOut.String()}
}

// cleanEnv isolates a test from the caller's environment and any .env file.
func cleanEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("LIBMAN_STORE", "")
	t.Setenv("LIBMAN_SEED", "")
	t.Setenv("LIBMAN_SQLITE_MAX_OPEN_CONNS", "")
	t.Setenv("LOG_LEVEL", "error")
	return dir
}

func writeSeed(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCLIList(t *testing.T) {
	dir := cleanEnv(t)
	first := writeSeed(t, dir, "first.json",
		`[{"isbn": 100, "title": "A", "author": "X", "quantity": 5, "price": 9.99, "genre": "Fiction"}]`)
	second := writeSeed(t, dir, "second.xml",
		`<catalog><book isbn="200"><title>B</title><author>X</author><quantity>2</quantity><price>14.5</price><genre>Drama</genre></book></catalog>`)

	for _, store := range []string{"memory", "sqlite"} {
		t.Run(store, func(t *testing.T) {
			res := runCLI(t, "", "list", "--store", store, "--seed", first, "--seed", second)
			require.Equal(t, 0, res.code, res.stderr)
			assert.Equal(t,
				"ISBN: 100\nTitle: A\nAuthor: X\nQuantity: 5\nPrice: 9.99\nGenre: Fiction\n"+
					"\n"+
					"ISBN: 200\nTitle: B\nAuthor: X\nQuantity: 2\nPrice: 14.5\nGenre: Drama\n",
				res.stdout)
		})
	}
}

func TestCLIListHideQuantity(t *testing.T) {
	dir := cleanEnv(t)
	path := writeSeed(t, dir, "catalog.json",
		`[{"isbn": 100, "title": "A", "author": "X", "quantity": 5, "price": 9.99, "genre": "Fiction"}]`)

	res := runCLI(t, "", "list", "--hide-quantity", "--seed", path)
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "ISBN: 100\nTitle: A\nAuthor: X\nPrice: 9.99\nGenre: Fiction\n", res.stdout)
}

func TestCLIListEmpty(t *testing.T) {
	cleanEnv(t)
	res := runCLI(t, "", "list")
	assert.Equal(t, 0, res.code)
	assert.Equal(t, "No books in the catalog\n", res.stdout)
}

func TestCLIEmptySeedFile(t *testing.T) {
	dir := cleanEnv(t)
	path := writeSeed(t, dir, "empty.json", `[]`)

	res := runCLI(t, "", "list", "--seed", path)
	assert.Equal(t, 0, res.code)
	assert.Equal(t, "No books in the catalog\n", res.stdout)
}

func TestCLISeedFromEnv(t *testing.T) {
	dir := cleanEnv(t)
	path := writeSeed(t, dir, "catalog.json", `[{"isbn": 7, "title": "Env"}]`)
	t.Setenv("LIBMAN_SEED", path)

	res := runCLI(t, "", "list")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Title: Env\n")
}

func TestCLIMenu(t *testing.T) {
	dir := cleanEnv(t)
	path := writeSeed(t, dir, "catalog.json", `[{"isbn": 100, "title": "A", "author": "X", "quantity": 5, "price": 9.99, "genre": "Fiction"}]`)

	res := runCLI(t, "2\n100\n8\n", "--seed", path, "--store", "sqlite")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Book Found\nISBN: 100\n")
	assert.True(t, strings.HasSuffix(res.stdout, "Exiting library management system...\n"))
}

func TestCLIVersion(t *testing.T) {
	cleanEnv(t)
	res := runCLI(t, "", "version")
	assert.Equal(t, 0, res.code)
	assert.Equal(t, "libman dev\n", res.stdout)
}

func TestCLIUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "unknown flag", args: []string{"--port", "80"}, want: "unknown flag: --port"},
		{name: "unknown command", args: []string{"serve"}, want: `unknown command "serve"`},
		{name: "unknown store", args: []string{"--store", "postgres", "list"}, want: `unknown store "postgres"`},
		{name: "extra argument", args: []string{"version", "now"}, want: "unknown command"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleanEnv(t)
			res := runCLI(t, "", tt.args...)
			assert.Equal(t, 2, res.code)
			assert.Contains(t, res.stderr, tt.want)
			assert.Contains(t, res.stderr, "libman --help")
		})
	}
}

func TestCLIRuntimeErrors(t *testing.T) {
	dir := cleanEnv(t)

	t.Run("missing seed", func(t *testing.T) {
		res := runCLI(t, "", "list", "--seed", filepath.Join(dir, "nope.json"))
		assert.Equal(t, 1, res.code)
		assert.Empty(t, res.stdout)
	})

	t.Run("invalid seed record", func(t *testing.T) {
		path := writeSeed(t, dir, "bad.json", `[{"isbn": 1, "quantity": 2}, {"isbn": 2, "quantity": -1}]`)
		res := runCLI(t, "", "list", "--seed", path)
		assert.Equal(t, 1, res.code)
		assert.Empty(t, res.stdout)
	})
}
