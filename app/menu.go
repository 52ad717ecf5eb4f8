package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/kranthi46/Library-management/book"
	"github.com/kranthi46/Library-management/logger"
	"github.com/kranthi46/Library-management/repo"
	"github.com/kranthi46/Library-management/service"
	"github.com/kranthi46/Library-management/validator"
)

const menuText = `Menu:
1. Add a book
2. Search a book
3. Update a book
4. delete the book
5. Search book by author name
6. Search book by genre
7. Search book by price range
8. exit
9. List all books
`

const (
	choiceAdd = iota + 1
	choiceSearch
	choiceUpdate
	choiceDelete
	choiceByAuthor
	choiceByGenre
	choiceByPrice
	choiceExit
	choiceList
)

// Menu is the interactive console loop. It reads one answer per line and
// owns every message the user sees.
type Menu struct {
	svc  *service.Service
	in   *bufio.Reader
	out  io.Writer
	view *view
	log  *slog.Logger
}

func NewMenu(svc *service.Service, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		svc:  svc,
		in:   bufio.NewReader(in),
		out:  out,
		view: newView(out),
		log:  logger.With("session", uuid.NewString()),
	}
}

// Run shows the menu until the user picks exit or the input ends.
func (m *Menu) Run(ctx context.Context) error {
	m.log.Info("Menu started")
	defer m.log.Info("Menu stopped")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(m.out, menuText)
		line, err := m.readLine("Enter your choice: ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		choice, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr != nil {
			choice = 0
		}
		if choice == choiceExit {
			m.println("Exiting library management system...")
			return nil
		}

		err = m.dispatch(ctx, choice)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// dispatch runs one menu action. Only input failures are returned; catalog
// errors are reported to the user and the loop goes on.
func (m *Menu) dispatch(ctx context.Context, choice int) error {
	switch choice {
	case choiceAdd:
		return m.addBook(ctx)
	case choiceSearch:
		return m.searchBook(ctx)
	case choiceUpdate:
		return m.updateBook(ctx)
	case choiceDelete:
		return m.deleteBook(ctx)
	case choiceByAuthor:
		return m.searchByAuthor(ctx)
	case choiceByGenre:
		return m.searchByGenre(ctx)
	case choiceByPrice:
		return m.searchByPrice(ctx)
	case choiceList:
		return m.listBooks(ctx)
	default:
		m.println("Invalid choice. Please enter a valid choice.")
		return nil
	}
}

func (m *Menu) addBook(ctx context.Context) error {
	var (
		b   book.Book
		err error
	)
	if b.ISBN, err = m.readInt("Enter book ISBN: "); err != nil {
		return err
	}
	if b.Title, err = m.readLine("Enter book title: "); err != nil {
		return err
	}
	if b.Author, err = m.readLine("Enter book author: "); err != nil {
		return err
	}
	if b.Quantity, err = m.readInt("Enter book quantity: "); err != nil {
		return err
	}
	if b.Price, err = m.readFloat("Enter book price: "); err != nil {
		return err
	}
	if b.Genre, err = m.readLine("Enter book genre: "); err != nil {
		return err
	}

	if err := m.svc.AddBook(ctx, b); err != nil {
		m.report(err, "Invalid book")
		return nil
	}
	m.println("Book added successfully!")
	return nil
}

func (m *Menu) searchBook(ctx context.Context) error {
	isbn, err := m.readInt("Enter book ISBN to search: ")
	if err != nil {
		return err
	}

	b, err := m.svc.GetBook(ctx, isbn)
	if err != nil {
		m.report(err, "")
		return nil
	}
	m.printFound(b)
	return nil
}

func (m *Menu) updateBook(ctx context.Context) error {
	isbn, err := m.readInt("Enter book ISBN to update: ")
	if err != nil {
		return err
	}
	quantity, err := m.readInt("Enter new quantity: ")
	if err != nil {
		return err
	}

	if err := m.svc.UpdateQuantity(ctx, isbn, quantity); err != nil {
		m.report(err, "Invalid quantity")
		return nil
	}
	m.println("Book's quantity updated successfully!")
	return nil
}

func (m *Menu) deleteBook(ctx context.Context) error {
	isbn, err := m.readInt("Enter book ISBN to delete: ")
	if err != nil {
		return err
	}

	if err := m.svc.DeleteBook(ctx, isbn); err != nil {
		m.report(err, "")
		return nil
	}
	m.println("Book deleted successfully!")
	return nil
}

func (m *Menu) searchByAuthor(ctx context.Context) error {
	author, err := m.readLine("Enter the author name to search: ")
	if err != nil {
		return err
	}

	books, err := m.svc.SearchByAuthor(ctx, author)
	if err != nil {
		m.report(err, "")
		return nil
	}
	m.printResults(books, "Book not found")
	return nil
}

func (m *Menu) searchByGenre(ctx context.Context) error {
	genre, err := m.readLine("Enter genre to search: ")
	if err != nil {
		return err
	}

	books, err := m.svc.SearchByGenre(ctx, genre)
	if err != nil {
		m.report(err, "")
		return nil
	}
	m.printResults(books, "No books found with genre: "+genre)
	return nil
}

func (m *Menu) searchByPrice(ctx context.Context) error {
	minPrice, err := m.readFloat("Enter the minimum price: ")
	if err != nil {
		return err
	}
	maxPrice, err := m.readFloat("Enter the maximum price: ")
	if err != nil {
		return err
	}

	books, err := m.svc.SearchByPriceRange(ctx, minPrice, maxPrice)
	if err != nil {
		m.report(err, "")
		return nil
	}
	m.printResults(books, "No books found in this price range")
	return nil
}

func (m *Menu) listBooks(ctx context.Context) error {
	books, err := m.svc.ListBooks(ctx)
	if err != nil {
		m.report(err, "")
		return nil
	}
	fmt.Fprint(m.out, m.view.books(books, true))
	return nil
}

func (m *Menu) printFound(b book.Book) {
	m.println(m.view.found.Render("Book Found"))
	fmt.Fprint(m.out, m.view.book(b, true))
}

func (m *Menu) printResults(books []book.Book, none string) {
	if len(books) == 0 {
		m.println(m.view.missing.Render(none))
		return
	}
	for _, b := range books {
		m.printFound(b)
	}
}

// report turns a service error into a user message. invalidPrefix labels
// validation failures.
func (m *Menu) report(err error, invalidPrefix string) {
	var vErr *validator.Error
	switch {
	case errors.Is(err, repo.ErrNotFound):
		m.println(m.view.missing.Render("Book not found"))
	case errors.As(err, &vErr):
		m.println(m.view.failure.Render(invalidPrefix + ": " + vErr.Reason()))
	default:
		m.log.Error("Catalog operation failed", "error", err)
		m.println(m.view.failure.Render("Error: " + err.Error()))
	}
}

func (m *Menu) println(s string) {
	fmt.Fprintln(m.out, s)
}

// readLine prints prompt and returns the next input line without its line
// ending. A final line without a newline is still returned.
func (m *Menu) readLine(prompt string) (string, error) {
	fmt.Fprint(m.out, prompt)
	line, err := m.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (m *Menu) readInt(prompt string) (int, error) {
	return readNumber(m, prompt, strconv.Atoi)
}

func (m *Menu) readFloat(prompt string) (float64, error) {
	return readNumber(m, prompt, func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	})
}

// readNumber asks again until the line parses.
func readNumber[T int | float64](m *Menu, prompt string, parse func(string) (T, error)) (T, error) {
	for {
		line, err := m.readLine(prompt)
		if err != nil {
			return 0, err
		}
		v, err := parse(strings.TrimSpace(line))
		if err == nil {
			return v, nil
		}
		m.println("Invalid number, try again.")
	}
}
