package seed

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kranthi46/Library-management/book"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDecodeJSON(t *testing.T) {
	books, err := DecodeJSON(strings.NewReader(`[
		{"isbn": 100, "title": "A", "author": "X", "quantity": 5, "price": 9.99, "genre": "Fiction"},
		{"isbn": 200, "title": "B", "author": "X", "quantity": 2, "price": 14.5, "genre": "Drama", "extra": true}
	]`))
	require.NoError(t, err)
	assert.Equal(t, []book.Book{
		{ISBN: 100, Title: "A", Author: "X", Quantity: 5, Price: 9.99, Genre: "Fiction"},
		{ISBN: 200, Title: "B", Author: "X", Quantity: 2, Price: 14.5, Genre: "Drama"},
	}, books)
}

func TestDecodeJSONRejectsGarbage(t *testing.T) {
	_, err := DecodeJSON(strings.NewReader(`{"isbn": "not a list"`))
	assert.Error(t, err)
}

func TestDecodeXML(t *testing.T) {
	books, err := DecodeXML(strings.NewReader(`<?xml version="1.0"?>
<catalog>
  <book isbn="100">
    <title>A</title>
    <author>X</author>
    <quantity> 5 </quantity>
    <price>9.99</price>
    <genre>Fiction</genre>
  </book>
  <book isbn="300"><title>C</title></book>
</catalog>`))
	require.NoError(t, err)
	assert.Equal(t, []book.Book{
		{ISBN: 100, Title: "A", Author: "X", Quantity: 5, Price: 9.99, Genre: "Fiction"},
		{ISBN: 300, Title: "C"},
	}, books)
}

func TestDecodeXMLDeclaredCharset(t *testing.T) {
	doc := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?>\n" +
		"<catalog><book isbn=\"7\"><author>M\xfcller</author></book></catalog>"

	books, err := DecodeXML(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "Müller", books[0].Author)
}

func TestLoadFilesKeepsArgumentOrder(t *testing.T) {
	first := writeFile(t, "first.json", `[{"isbn": 1}, {"isbn": 2}]`)
	second := writeFile(t, "second.XML", `<catalog><book isbn="3"/></catalog>`)
	third := writeFile(t, "third.json", `[{"isbn": 4}]`)

	books, err := LoadFiles(context.Background(), first, second, third)
	require.NoError(t, err)

	var isbns []int
	for _, b := range books {
		isbns = append(isbns, b.ISBN)
	}
	assert.Equal(t, []int{1, 2, 3, 4}, isbns)
}

func TestLoadFilesNoPaths(t *testing.T) {
	books, err := LoadFiles(context.Background())
	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestLoadFilesErrors(t *testing.T) {
	good := writeFile(t, "good.json", `[{"isbn": 1}]`)

	t.Run("unsupported extension", func(t *testing.T) {
		path := writeFile(t, "catalog.csv", "1,A")
		_, err := LoadFiles(context.Background(), good, path)
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFiles(context.Background(), filepath.Join(t.TempDir(), "nope.json"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed file", func(t *testing.T) {
		path := writeFile(t, "bad.xml", "<catalog><book isbn=\"x\"/></catalog>")
		_, err := LoadFiles(context.Background(), path)
		assert.ErrorContains(t, err, "parse seed")
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := LoadFiles(ctx, good)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
