package app

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kranthi46/Library-management/book"
)

func TestViewBooks(t *testing.T) {
	v := newView(&bytes.Buffer{})

	tests := []struct {
		name         string
		books        []book.Book
		withQuantity bool
		want         string
	}{
		{
			name: "empty",
			want: "No books in the catalog\n",
		},
		{
			name:         "blank line between blocks",
			books:        []book.Book{bookA, bookB},
			withQuantity: true,
			want: "ISBN: 100\nTitle: A\nAuthor: X\nQuantity: 5\nPrice: 9.99\nGenre: Fiction\n" +
				"\n" +
				"ISBN: 200\nTitle: B\nAuthor: X\nQuantity: 2\nPrice: 14.5\nGenre: Drama\n",
		},
		{
			name:  "without quantity",
			books: []book.Book{bookB},
			want:  "ISBN: 200\nTitle: B\nAuthor: X\nPrice: 14.5\nGenre: Drama\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v.books(tt.books, tt.withQuantity))
		})
	}
}
