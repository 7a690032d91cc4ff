package category

import "shopadmin/internal/domain"

// ResolveAttributes computes the attribute schemas a product in the given
// category should collect: the category's own properties first, then each
// ancestor's in stored order, walking the parent chain until a root or a
// dangling parent reference. When the same attribute name appears at several
// levels the first occurrence wins, so the category itself overrides its
// ancestors. An unknown categoryID resolves to an empty schema.
//
// The walk tracks visited ids; a cycle in the parent references (possible via
// manual data edits, parent ids are stored unchecked) stops the walk instead
// of looping.
func ResolveAttributes(categoryID string, categories []domain.Category) []domain.AttributeSchema {
	byID := make(map[string]*domain.Category, len(categories))
	for i := range categories {
		byID[categories[i].ID] = &categories[i]
	}

	resolved := []domain.AttributeSchema{}
	seen := make(map[string]struct{})
	visited := make(map[string]struct{})

	for cur := byID[categoryID]; cur != nil; cur = byID[cur.ParentID] {
		if _, again := visited[cur.ID]; again {
			break
		}
		visited[cur.ID] = struct{}{}

		for _, attr := range cur.Properties {
			if _, dup := seen[attr.Name]; dup {
				continue
			}
			seen[attr.Name] = struct{}{}
			resolved = append(resolved, attr)
		}

		if cur.ParentID == "" {
			break
		}
	}

	return resolved
}
