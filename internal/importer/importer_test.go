package importer

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"shopadmin/internal/domain"
)

type memoryWriter struct {
	seq      int
	inserted []domain.Product
	failOn   string
}

func (w *memoryWriter) Insert(_ context.Context, p domain.Product) (*domain.Product, error) {
	if w.failOn != "" && p.Title == w.failOn {
		return nil, fmt.Errorf("boom")
	}
	w.seq++
	p.ID = fmt.Sprintf("prod-%d", w.seq)
	w.inserted = append(w.inserted, p)
	return &p, nil
}

func TestRun_ImportsProducts(t *testing.T) {
	csv := strings.Join([]string{
		"title,description,price,category,image,properties",
		`Runner,Light shoe,89.99,5e5a9bd2-3bfa-4aee-8fd5-8ec6a49e3f03,https://cdn.example.com/1.jpg,size=42;brand=Nike`,
		`,,,,https://cdn.example.com/2.jpg,`,
		`Mug,Ceramic mug,12.50,,,`,
	}, "\n")

	w := &memoryWriter{}
	imp := NewCSVImporter(strings.NewReader(csv), w)

	count, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 products imported, got %d", count)
	}

	runner := w.inserted[0]
	if runner.Title != "Runner" || runner.Price != 89.99 {
		t.Fatalf("unexpected product %+v", runner)
	}
	if len(runner.Images) != 2 {
		t.Fatalf("expected continuation row image appended, got %v", runner.Images)
	}
	if runner.Properties["size"] != "42" || runner.Properties["brand"] != "Nike" {
		t.Fatalf("unexpected properties %v", runner.Properties)
	}

	mug := w.inserted[1]
	if mug.Title != "Mug" || mug.Price != 12.50 || len(mug.Images) != 0 {
		t.Fatalf("unexpected product %+v", mug)
	}
}

func TestRun_RejectsMalformedPrice(t *testing.T) {
	csv := "title,price\nRunner,notanumber\n"
	imp := NewCSVImporter(strings.NewReader(csv), &memoryWriter{})

	if _, err := imp.Run(context.Background()); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestRun_RejectsNegativePrice(t *testing.T) {
	csv := "title,price\nRunner,-5\n"
	imp := NewCSVImporter(strings.NewReader(csv), &memoryWriter{})

	if _, err := imp.Run(context.Background()); err == nil {
		t.Fatalf("expected negative price error")
	}
}

func TestRun_MissingColumnsFailFast(t *testing.T) {
	imp := NewCSVImporter(strings.NewReader("name,cost\nX,1\n"), &memoryWriter{})

	if _, err := imp.Run(context.Background()); err == nil {
		t.Fatalf("expected missing column error")
	}
}

func TestRun_ReportsInsertedCountOnFailure(t *testing.T) {
	csv := "title,price\nA,1\nB,2\nC,3\n"
	w := &memoryWriter{failOn: "B"}
	imp := NewCSVImporter(strings.NewReader(csv), w)

	count, err := imp.Run(context.Background())
	if err == nil {
		t.Fatalf("expected insert failure")
	}
	if count != 1 {
		t.Fatalf("expected 1 product imported before failure, got %d", count)
	}
}
