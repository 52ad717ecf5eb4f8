// Package collection holds the in-memory book catalog.
//
// A Collection keeps books in insertion order and is not safe for
// concurrent use. Lookups by ISBN always resolve to the first book added
// with that ISBN. Searches return lazy sequences that are recomputed on
// every call.
package collection

import (
	"iter"

	"github.com/kranthi46/Library-management/book"
)

type Collection struct {
	books []book.Book
	// first maps an ISBN to the position of its earliest entry in books.
	first map[int]int
}

func New() *Collection {
	return &Collection{first: make(map[int]int)}
}

// Len returns the number of stored books, duplicates included.
func (c *Collection) Len() int {
	return len(c.books)
}

// Add appends b. Duplicate ISBNs are accepted; only the earliest one is
// reachable through FindByISBN and UpdateQuantity.
func (c *Collection) Add(b book.Book) {
	if _, ok := c.first[b.ISBN]; !ok {
		c.first[b.ISBN] = len(c.books)
	}
	c.books = append(c.books, b)
}

// FindByISBN returns a copy of the first book with the given ISBN.
func (c *Collection) FindByISBN(isbn int) (book.Book, bool) {
	i, ok := c.first[isbn]
	if !ok {
		return book.Book{}, false
	}
	return c.books[i], true
}

// UpdateQuantity overwrites the quantity of the first book with the given
// ISBN. The value is stored as is.
func (c *Collection) UpdateQuantity(isbn, quantity int) bool {
	i, ok := c.first[isbn]
	if !ok {
		return false
	}
	c.books[i].Quantity = quantity
	return true
}

// Delete removes every book with the given ISBN and keeps the rest in
// their original order. It reports whether anything was removed.
func (c *Collection) Delete(isbn int) bool {
	if _, ok := c.first[isbn]; !ok {
		return false
	}

	kept := c.books[:0]
	for _, b := range c.books {
		if b.ISBN != isbn {
			kept = append(kept, b)
		}
	}
	clear(c.books[len(kept):])
	c.books = kept
	c.reindex()
	return true
}

func (c *Collection) reindex() {
	clear(c.first)
	for i, b := range c.books {
		if _, ok := c.first[b.ISBN]; !ok {
			c.first[b.ISBN] = i
		}
	}
}

// All yields every book in insertion order.
func (c *Collection) All() iter.Seq[book.Book] {
	return c.filter(func(book.Book) bool { return true })
}

// SearchByAuthor yields books whose author equals author exactly.
func (c *Collection) SearchByAuthor(author string) iter.Seq[book.Book] {
	return c.filter(func(b book.Book) bool { return b.Author == author })
}

// SearchByGenre yields books whose genre equals genre exactly.
func (c *Collection) SearchByGenre(genre string) iter.Seq[book.Book] {
	return c.filter(func(b book.Book) bool { return b.Genre == genre })
}

// SearchByPriceRange yields books priced within [minPrice, maxPrice].
// Nothing matches when minPrice > maxPrice.
func (c *Collection) SearchByPriceRange(minPrice, maxPrice float64) iter.Seq[book.Book] {
	return c.filter(func(b book.Book) bool { return b.Price >= minPrice && b.Price <= maxPrice })
}

func (c *Collection) filter(match func(book.Book) bool) iter.Seq[book.Book] {
	return func(yield func(book.Book) bool) {
		for _, b := range c.books {
			if match(b) && !yield(b) {
				return
			}
		}
	}
}
