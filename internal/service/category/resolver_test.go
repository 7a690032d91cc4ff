package category

import (
	"testing"

	"shopadmin/internal/domain"
)

func attrNames(attrs []domain.AttributeSchema) []string {
	names := make([]string, 0, len(attrs))
	for _, a := range attrs {
		names = append(names, a.Name)
	}
	return names
}

func TestResolveAttributes_RootReturnsOwnProperties(t *testing.T) {
	root := domain.Category{
		ID:   "root",
		Name: "Root",
		Properties: []domain.AttributeSchema{
			{Name: "brand", Values: []string{"Nike", "Adidas"}},
			{Name: "material", Type: domain.AttributeTypeText},
		},
	}

	got := ResolveAttributes("root", []domain.Category{root})

	if len(got) != 2 {
		t.Fatalf("expected 2 attributes, got %d", len(got))
	}
	if got[0].Name != "brand" || got[1].Name != "material" {
		t.Fatalf("unexpected order %v", attrNames(got))
	}
	if len(got[0].Values) != 2 {
		t.Fatalf("expected enumerated values preserved, got %+v", got[0])
	}
}

func TestResolveAttributes_ChainOrdersSelfFirstRootLast(t *testing.T) {
	categories := []domain.Category{
		{ID: "a", Name: "A", Properties: []domain.AttributeSchema{{Name: "a1"}, {Name: "a2"}}},
		{ID: "b", Name: "B", ParentID: "a", Properties: []domain.AttributeSchema{{Name: "b1"}}},
		{ID: "c", Name: "C", ParentID: "b", Properties: []domain.AttributeSchema{{Name: "c1"}, {Name: "c2"}}},
	}

	got := attrNames(ResolveAttributes("c", categories))

	want := []string{"c1", "c2", "b1", "a1", "a2"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestResolveAttributes_UnknownCategoryReturnsEmpty(t *testing.T) {
	categories := []domain.Category{
		{ID: "a", Name: "A", Properties: []domain.AttributeSchema{{Name: "a1"}}},
	}

	got := ResolveAttributes("missing", categories)

	if got == nil {
		t.Fatalf("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Fatalf("expected no attributes, got %v", attrNames(got))
	}
}

func TestResolveAttributes_DanglingParentStopsWalk(t *testing.T) {
	categories := []domain.Category{
		{ID: "child", Name: "Child", ParentID: "gone", Properties: []domain.AttributeSchema{{Name: "c1"}}},
	}

	got := ResolveAttributes("child", categories)

	if len(got) != 1 || got[0].Name != "c1" {
		t.Fatalf("expected only own properties, got %v", attrNames(got))
	}
}

func TestResolveAttributes_DuplicateNameNearestWins(t *testing.T) {
	categories := []domain.Category{
		{ID: "parent", Name: "Parent", Properties: []domain.AttributeSchema{{Name: "color", Values: []string{"red", "blue"}}}},
		{ID: "child", Name: "Child", ParentID: "parent", Properties: []domain.AttributeSchema{{Name: "color", Values: []string{"black"}}}},
	}

	got := ResolveAttributes("child", categories)

	if len(got) != 1 {
		t.Fatalf("expected duplicate name collapsed, got %v", attrNames(got))
	}
	if len(got[0].Values) != 1 || got[0].Values[0] != "black" {
		t.Fatalf("expected child declaration to win, got %+v", got[0])
	}
}

func TestResolveAttributes_CycleTerminates(t *testing.T) {
	categories := []domain.Category{
		{ID: "a", Name: "A", ParentID: "b", Properties: []domain.AttributeSchema{{Name: "a1"}}},
		{ID: "b", Name: "B", ParentID: "a", Properties: []domain.AttributeSchema{{Name: "b1"}}},
	}

	got := attrNames(ResolveAttributes("a", categories))

	want := []string{"a1", "b1"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}
