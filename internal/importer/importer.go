package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"shopadmin/internal/domain"
)

type ProductWriter interface {
	Insert(ctx context.Context, p domain.Product) (*domain.Product, error)
}

// CSVImporter reads catalog exports and inserts products in bulk. Expected
// columns: title, description, price, category, image, properties. Rows with
// an empty title are image continuation rows for the preceding product.
type CSVImporter struct {
	reader   *csv.Reader
	products ProductWriter
}

func NewCSVImporter(r io.Reader, repo ProductWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:   csvr,
		products: repo,
	}
}

type csvRow struct {
	Title       string
	Description string
	Price       float64
	CategoryID  string
	Images      []string
	Properties  map[string]string
}

// Run parses CSV rows and inserts a product per logical row group.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)
	if _, ok := index["title"]; !ok {
		return 0, errors.New("missing title column")
	}
	if _, ok := index["price"]; !ok {
		return 0, errors.New("missing price column")
	}

	var (
		current  *csvRow
		imported int
		line     = 1
	)

	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}
		line++

		row, err := parseRow(record, index)
		if err != nil {
			return imported, fmt.Errorf("row %d: %w", line, err)
		}
		if row == nil {
			continue
		}

		if row.Title != "" {
			if current != nil {
				if err := i.save(ctx, current); err != nil {
					return imported, err
				}
				imported++
			}
			current = row
			continue
		}

		// Continuation rows carry extra images for the current product.
		if current != nil && len(row.Images) > 0 {
			current.Images = append(current.Images, row.Images...)
		}
	}

	if current != nil {
		if err := i.save(ctx, current); err != nil {
			return imported, err
		}
		imported++
	}

	return imported, nil
}

func (i *CSVImporter) save(ctx context.Context, row *csvRow) error {
	_, err := i.products.Insert(ctx, domain.Product{
		Title:       row.Title,
		Description: row.Description,
		Price:       row.Price,
		Images:      row.Images,
		CategoryID:  row.CategoryID,
		Properties:  row.Properties,
	})
	if err != nil {
		return fmt.Errorf("insert product %q: %w", row.Title, err)
	}
	return nil
}

func headerIndex(headers []string) map[string]int {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return index
}

func parseRow(record []string, index map[string]int) (*csvRow, error) {
	row := &csvRow{
		Title:       field(record, index, "title"),
		Description: field(record, index, "description"),
		CategoryID:  field(record, index, "category"),
		Properties:  map[string]string{},
	}

	if img := field(record, index, "image"); img != "" {
		row.Images = append(row.Images, img)
	}

	if row.Title == "" {
		if len(row.Images) == 0 {
			return nil, nil // blank row
		}
		return row, nil
	}

	rawPrice := field(record, index, "price")
	price, err := strconv.ParseFloat(rawPrice, 64)
	if err != nil {
		return nil, fmt.Errorf("parse price %q: %w", rawPrice, err)
	}
	if price < 0 {
		return nil, fmt.Errorf("negative price %q", rawPrice)
	}
	row.Price = price

	// properties column holds key=value pairs separated by semicolons.
	if raw := field(record, index, "properties"); raw != "" {
		for _, pair := range strings.Split(raw, ";") {
			pair = strings.TrimSpace(pair)
			if pair == "" {
				continue
			}
			key, value, found := strings.Cut(pair, "=")
			if !found {
				return nil, fmt.Errorf("malformed property %q", pair)
			}
			row.Properties[strings.TrimSpace(key)] = strings.TrimSpace(value)
		}
	}

	return row, nil
}

func field(record []string, index map[string]int, name string) string {
	i, ok := index[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}
