package book

import "strconv"

// Book is a single catalog entry. ISBN is meant to identify a book but
// nothing enforces uniqueness.
type Book struct {
	ISBN     int     `json:"isbn" xml:"isbn,attr"`
	Title    string  `json:"title" xml:"title"`
	Author   string  `json:"author" xml:"author"`
	Quantity int     `json:"quantity" xml:"quantity" validate:"gte=0"`
	Price    float64 `json:"price" xml:"price" validate:"gte=0"`
	Genre    string  `json:"genre" xml:"genre"`
}

// Field is one labelled line of the display block.
type Field struct {
	Label string
	Value string
}

// Fields returns the display lines in print order. The quantity line is
// left out when withQuantity is false.
func (b Book) Fields(withQuantity bool) []Field {
	fields := []Field{
		{"ISBN", strconv.Itoa(b.ISBN)},
		{"Title", b.Title},
		{"Author", b.Author},
	}
	if withQuantity {
		fields = append(fields, Field{"Quantity", strconv.Itoa(b.Quantity)})
	}
	return append(fields,
		Field{"Price", FormatPrice(b.Price)},
		Field{"Genre", b.Genre},
	)
}

// FormatPrice prints a price in its shortest form, so 14.50 shows as 14.5
// and 9.99 as 9.99.
func FormatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
