// Package seed reads catalog files used to pre-populate the collection at
// startup. Files are only read, never written.
//
// Two formats are understood, chosen by extension:
//
//	.json  [{"isbn":100,"title":"A","author":"X","quantity":5,"price":9.99,"genre":"Fiction"}]
//	.xml   <catalog><book isbn="100"><title>A</title>...</book></catalog>
//
// XML files may declare any encoding known to golang.org/x/net/html/charset.
package seed

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"golang.org/x/net/html/charset"
	"golang.org/x/sync/errgroup"

	"github.com/kranthi46/Library-management/book"
	"github.com/kranthi46/Library-management/logger"
)

// ErrUnsupportedFormat is returned for files that are neither .json nor .xml
var ErrUnsupportedFormat = errors.New("unsupported seed format")

const maxParallel = 4

type catalog struct {
	XMLName xml.Name    `xml:"catalog"`
	Books   []book.Book `xml:"book"`
}

// LoadFiles parses paths concurrently and returns their books in argument
// order, each file's books in file order. The first failure cancels the
// remaining reads.
func LoadFiles(ctx context.Context, paths ...string) ([]book.Book, error) {
	parsed := make([][]book.Book, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallel)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			books, err := LoadFile(path)
			if err != nil {
				return err
			}
			parsed[i] = books
			logger.Debug("Seed file parsed", "path", path, "count", len(books))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []book.Book
	for _, books := range parsed {
		all = append(all, books...)
	}
	return all, nil
}

// LoadFile parses a single seed file.
func LoadFile(path string) ([]book.Book, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed %s: %w", path, err)
	}
	defer f.Close()

	var books []book.Book
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		books, err = DecodeJSON(f)
	case ".xml":
		books, err = DecodeXML(f)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return nil, fmt.Errorf("parse seed %s: %w", path, err)
	}
	return books, nil
}

// DecodeJSON reads a JSON array of books.
func DecodeJSON(r io.Reader) ([]book.Book, error) {
	var books []book.Book
	if err := jsoniter.ConfigFastest.NewDecoder(r).Decode(&books); err != nil {
		return nil, err
	}
	return books, nil
}

// DecodeXML reads a <catalog> document.
func DecodeXML(r io.Reader) ([]book.Book, error) {
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel

	var c catalog
	if err := decoder.Decode(&c); err != nil {
		return nil, err
	}
	return c.Books, nil
}
