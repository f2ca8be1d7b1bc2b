package printer

import "fmt"

// Pageable is an ordered set of pages, each with its own format.
type Pageable interface {
	NumberOfPages() int
	PageFormat(index int) (PageFormat, error)
	Printable(index int) (Printable, error)
}

type bookEntry struct {
	printable Printable
	format    PageFormat
	pages     int
}

// Book is a Pageable built from consecutive page ranges.
type Book struct {
	entries []bookEntry
}

func NewBook() *Book {
	return &Book{}
}

// Append adds numPages pages drawn by printable with format.
func (b *Book) Append(printable Printable, format PageFormat, numPages int) {
	if numPages <= 0 {
		return
	}
	b.entries = append(b.entries, bookEntry{
		printable: printable,
		format:    format,
		pages:     numPages,
	})
}

func (b *Book) NumberOfPages() int {
	total := 0
	for _, e := range b.entries {
		total += e.pages
	}
	return total
}

func (b *Book) PageFormat(index int) (PageFormat, error) {
	e, err := b.entry(index)
	if err != nil {
		return PageFormat{}, err
	}
	return e.format, nil
}

func (b *Book) Printable(index int) (Printable, error) {
	e, err := b.entry(index)
	if err != nil {
		return nil, err
	}
	return e.printable, nil
}

func (b *Book) entry(index int) (bookEntry, error) {
	if index >= 0 {
		rest := index
		for _, e := range b.entries {
			if rest < e.pages {
				return e, nil
			}
			rest -= e.pages
		}
	}
	return bookEntry{}, fmt.Errorf("page index %d out of range [0, %d)", index, b.NumberOfPages())
}
