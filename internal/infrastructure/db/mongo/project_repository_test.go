package mongo

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/grafit-studio/portfolio-cms/internal/core/ports"
)

func searchedColumns(t *testing.T, query bson.M) []string {
	t.Helper()
	or, ok := query["$or"].(bson.A)
	if !ok {
		t.Fatalf("expected $or clause, got %v", query)
	}
	cols := make([]string, 0, len(or))
	for _, clause := range or {
		m, ok := clause.(bson.M)
		if !ok || len(m) != 1 {
			t.Fatalf("expected single-column clause, got %v", clause)
		}
		for col := range m {
			cols = append(cols, col)
		}
	}
	return cols
}

func TestListQuery_SearchColumns(t *testing.T) {
	cases := []struct {
		name          string
		publishedOnly bool
		want          []string
	}{
		{"public listing", true, []string{"title", "description", "short_description"}},
		{"admin listing", false, []string{"title", "description"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			query := listQuery(ports.ProjectListFilter{Search: "loft", PublishedOnly: tc.publishedOnly})
			got := searchedColumns(t, query)
			if len(got) != len(tc.want) {
				t.Fatalf("expected columns %v, got %v", tc.want, got)
			}
			for i, col := range tc.want {
				if got[i] != col {
					t.Fatalf("expected columns %v, got %v", tc.want, got)
				}
			}
		})
	}
}

func TestListQuery_NoSearch(t *testing.T) {
	query := listQuery(ports.ProjectListFilter{PublishedOnly: true, CategoryID: "cat-1"})
	if _, ok := query["$or"]; ok {
		t.Fatal("no $or clause expected without a search term")
	}
	if query["is_published"] != true {
		t.Fatal("public listing must filter to published rows")
	}
	if query["category_id"] != "cat-1" {
		t.Fatal("category filter must be applied")
	}
}
