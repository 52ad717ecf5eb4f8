package app

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kranthi46/Library-management/book"
)

var (
	colorTeal = lipgloss.Color("#20B9B4")
	colorGold = lipgloss.Color("#F4D03F")
	colorRed  = lipgloss.Color("#E74C3C")
)

// view styles menu output. The renderer is bound to the output writer so
// styling is dropped when that writer is not a terminal.
type view struct {
	label   lipgloss.Style
	found   lipgloss.Style
	missing lipgloss.Style
	failure lipgloss.Style
}

func newView(out io.Writer) *view {
	r := lipgloss.NewRenderer(out)
	return &view{
		label:   r.NewStyle().Bold(true),
		found:   r.NewStyle().Bold(true).Foreground(colorTeal),
		missing: r.NewStyle().Foreground(colorGold),
		failure: r.NewStyle().Foreground(colorRed),
	}
}

func (v *view) book(b book.Book, withQuantity bool) string {
	var sb strings.Builder
	for _, f := range b.Fields(withQuantity) {
		sb.WriteString(v.label.Render(f.Label + ":"))
		sb.WriteString(" ")
		sb.WriteString(f.Value)
		sb.WriteString("\n")
	}
	return sb.String()
}

// books renders a listing with a blank line between blocks.
func (v *view) books(books []book.Book, withQuantity bool) string {
	if len(books) == 0 {
		return v.missing.Render("No books in the catalog") + "\n"
	}
	blocks := make([]string, 0, len(books))
	for _, b := range books {
		blocks = append(blocks, v.book(b, withQuantity))
	}
	return strings.Join(blocks, "\n")
}
