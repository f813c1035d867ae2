package query_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/JaimeStill/sedam/pkg/query"
)

func policies() *query.ProjectionMap {
	return query.NewProjectionMap("public", "policies", "p").
		Project("id", "ID").
		Project("title", "Title").
		Project("status", "Status").
		Project("created_at", "CreatedAt")
}

func TestParseSortFields(t *testing.T) {
	tests := []struct {
		in   string
		want []query.SortField
	}{
		{"", nil},
		{"Title", []query.SortField{{Field: "Title"}}},
		{"-CreatedAt, Title ,", []query.SortField{
			{Field: "CreatedAt", Descending: true},
			{Field: "Title"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, query.ParseSortFields(tt.in)); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuilder_BuildPage(t *testing.T) {
	status := "draft"
	search := "air"
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	b := query.NewBuilder(policies(), query.SortField{Field: "CreatedAt", Descending: true}).
		WhereEquals("Status", &status).
		WhereSearch(&search, "Title", "Status").
		WhereRange("CreatedAt", &from, nil)

	sql, args := b.BuildPage(2, 10)

	wantSQL := "SELECT p.id, p.title, p.status, p.created_at FROM public.policies p" +
		" WHERE p.status = $1 AND (p.title ILIKE $2 OR p.status ILIKE $3) AND p.created_at >= $4" +
		" ORDER BY p.created_at DESC LIMIT 10 OFFSET 10"
	if sql != wantSQL {
		t.Errorf("sql:\n got %s\nwant %s", sql, wantSQL)
	}

	wantArgs := []any{"draft", "%air%", "%air%", from}
	if diff := cmp.Diff(wantArgs, args); diff != "" {
		t.Errorf("args mismatch (-want +got):\n%s", diff)
	}
}

func TestBuilder_SkipsEmptyFilters(t *testing.T) {
	var status *string
	empty := ""

	sql, args := query.NewBuilder(policies()).
		WhereEquals("Status", status).
		WhereContains("Title", &empty).
		WhereSearch(nil, "Title").
		WhereRange("CreatedAt", nil, nil).
		BuildCount()

	if sql != "SELECT COUNT(*) FROM public.policies p" {
		t.Errorf("sql: got %s", sql)
	}
	if len(args) != 0 {
		t.Errorf("args: got %v", args)
	}
}

func TestBuilder_OrderOverride(t *testing.T) {
	sql, _ := query.NewBuilder(policies(), query.SortField{Field: "CreatedAt"}).
		OrderByFields(query.ParseSortFields("-Title")).
		Build()

	want := "SELECT p.id, p.title, p.status, p.created_at FROM public.policies p ORDER BY p.title DESC"
	if sql != want {
		t.Errorf("sql:\n got %s\nwant %s", sql, want)
	}
}

func TestBuilder_FirstWithJoin(t *testing.T) {
	proj := query.NewProjectionMap("public", "contents", "c").
		Project("id", "ID").
		Project("policy_id", "PolicyID").
		Project("content_type", "ContentType").
		ProjectFrom("p", "title", "PolicyTitle").
		Join("public", "policies", "p", query.InnerJoin, "p.id = c.policy_id")

	sql, args := query.NewBuilder(proj, query.SortField{Field: "ID", Descending: true}).
		WhereEquals("PolicyID", int64(3)).
		WhereEquals("ContentType", "analysis").
		BuildFirst()

	want := "SELECT c.id, c.policy_id, c.content_type, p.title FROM public.contents c" +
		" JOIN public.policies p ON p.id = c.policy_id" +
		" WHERE c.policy_id = $1 AND c.content_type = $2 ORDER BY c.id DESC LIMIT 1"
	if sql != want {
		t.Errorf("sql:\n got %s\nwant %s", sql, want)
	}
	if diff := cmp.Diff([]any{int64(3), "analysis"}, args); diff != "" {
		t.Errorf("args mismatch (-want +got):\n%s", diff)
	}
}

func TestBuilder_BuildSingle(t *testing.T) {
	sql, args := query.NewBuilder(policies()).BuildSingle("ID", int64(9))

	want := "SELECT p.id, p.title, p.status, p.created_at FROM public.policies p WHERE p.id = $1"
	if sql != want {
		t.Errorf("sql:\n got %s\nwant %s", sql, want)
	}
	if len(args) != 1 || args[0] != int64(9) {
		t.Errorf("args: got %v", args)
	}
}
