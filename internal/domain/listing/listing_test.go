package listing

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
)

type record struct {
	id        uuid.UUID
	title     string
	owner     string
	kind      string
	active    bool
	score     *float64
	due       *time.Time
	createdAt time.Time
}

var base = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func testSchema() Schema[record] {
	return Schema[record]{
		SearchFields: []func(record) string{
			func(r record) string { return r.title },
			func(r record) string { return r.owner },
		},
		EnumFields: map[string]func(record) string{
			"kind": func(r record) string { return r.kind },
		},
		BoolFields: map[string]func(record) bool{
			"active": func(r record) bool { return r.active },
		},
		RangeFields: map[string]func(record) (float64, bool){
			"score": func(r record) (float64, bool) {
				if r.score == nil {
					return 0, false
				}
				return *r.score, true
			},
		},
		SortFields: map[string]SortField[record]{
			"title": {Kind: SortString, String: func(r record) string { return r.title }},
			"owner": {Kind: SortName, String: func(r record) string { return r.owner }},
			"score": {Kind: SortNumber, Number: func(r record) (float64, bool) {
				if r.score == nil {
					return 0, false
				}
				return *r.score, true
			}},
			"due": {Kind: SortTime, Time: func(r record) (time.Time, bool) {
				if r.due == nil {
					return time.Time{}, false
				}
				return *r.due, true
			}},
			"createdAt": {Kind: SortTime, Time: func(r record) (time.Time, bool) {
				return r.createdAt, true
			}},
		},
		DefaultSort: "createdAt",
		CreatedAt:   func(r record) time.Time { return r.createdAt },
		ID:          func(r record) uuid.UUID { return r.id },
	}
}

func mkRecords(n int) []record {
	out := make([]record, 0, n)
	for i := 0; i < n; i++ {
		s := float64(i)
		out = append(out, record{
			id:        uuid.New(),
			title:     fmt.Sprintf("Record %02d", i),
			owner:     fmt.Sprintf("Owner %02d", i),
			kind:      "basic",
			active:    i%2 == 0,
			score:     &s,
			createdAt: base.Add(time.Duration(i) * time.Hour),
		})
	}
	return out
}

func TestNormalize_SentinelsMeanNoConstraint(t *testing.T) {
	schema := testSchema()
	spec := Normalize(schema, map[string]string{
		"search":   "",
		"kind":     "ALL",
		"active":   "false",
		"scoreMin": "",
		"scoreMax": "not-a-number",
		"unknown":  "whatever",
	})

	if n := spec.ActiveFilterCount(); n != 0 {
		t.Fatalf("expected 0 active filters, got %d", n)
	}
}

func TestNormalize_CountMatchesPredicate(t *testing.T) {
	schema := testSchema()
	spec := Normalize(schema, map[string]string{
		"search":   "Record",
		"kind":     "basic",
		"active":   "true",
		"scoreMin": "3",
	})
	if n := spec.ActiveFilterCount(); n != 4 {
		t.Fatalf("expected 4 active filters, got %d", n)
	}

	pred := schema.Predicate(spec)
	four := 4.0
	hit := record{title: "Record X", kind: "basic", active: true, score: &four}
	if !pred(hit) {
		t.Fatalf("expected record to pass all four filters")
	}
	hit.active = false
	if pred(hit) {
		t.Fatalf("inactive record passed the active filter")
	}
}

func TestNormalize_MalformedBoundIsOpenNotZero(t *testing.T) {
	schema := testSchema()
	spec := Normalize(schema, map[string]string{"scoreMin": "abc", "scoreMax": "5"})

	r := spec.Ranges["score"]
	if r.Min != nil {
		t.Fatalf("malformed min should stay open, got %v", *r.Min)
	}
	if r.Max == nil || *r.Max != 5 {
		t.Fatalf("expected max=5, got %v", r.Max)
	}
}

func TestPredicate_AbsentValueFailsActiveRange(t *testing.T) {
	schema := testSchema()
	spec := Normalize(schema, map[string]string{"scoreMin": "3.0"})
	pred := schema.Predicate(spec)

	if pred(record{title: "no score"}) {
		t.Fatalf("record with absent score must fail an active range filter")
	}
}

func TestPredicate_SearchIsCaseInsensitiveOrAcrossFields(t *testing.T) {
	schema := testSchema()
	spec := Normalize(schema, map[string]string{"search": "aCMe"})
	pred := schema.Predicate(spec)

	if !pred(record{title: "irrelevant", owner: "Acme Corp"}) {
		t.Fatalf("expected match on owner field")
	}
	if pred(record{title: "irrelevant", owner: "Globex"}) {
		t.Fatalf("unexpected match")
	}
}

func TestComparator_UnknownKey(t *testing.T) {
	schema := testSchema()
	spec := Normalize(schema, map[string]string{"sortBy": "nope"})
	_, err := schema.Comparator(spec)
	if !errors.Is(err, ErrInvalidSortKey) {
		t.Fatalf("expected ErrInvalidSortKey, got %v", err)
	}
}

func TestComparator_NullsLastBothDirections(t *testing.T) {
	schema := testSchema()
	three := 3.0
	recs := []record{
		{id: uuid.New(), title: "absent", createdAt: base},
		{id: uuid.New(), title: "present", score: &three, createdAt: base.Add(time.Hour)},
	}

	for _, order := range []string{OrderAsc, OrderDesc} {
		spec := Normalize(schema, map[string]string{"sortBy": "score", "sortOrder": order})
		page, err := Query(recs, schema, spec)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if page.Items[len(page.Items)-1].title != "absent" {
			t.Fatalf("order=%s: absent value must sort last", order)
		}
	}
}

func TestComparator_TieBreakIsDeterministic(t *testing.T) {
	schema := testSchema()
	recs := []record{
		{id: uuid.MustParse("99999999-0000-0000-0000-000000000000"), title: "same", createdAt: base},
		{id: uuid.MustParse("11111111-0000-0000-0000-000000000000"), title: "same", createdAt: base},
		{id: uuid.MustParse("55555555-0000-0000-0000-000000000000"), title: "same", createdAt: base.Add(-time.Hour)},
	}
	spec := Normalize(schema, map[string]string{"sortBy": "title", "sortOrder": "asc"})

	page, err := Query(recs, schema, spec)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	// earlier createdAt first, then id ascending
	if page.Items[0].id != recs[2].id || page.Items[1].id != recs[1].id || page.Items[2].id != recs[0].id {
		t.Fatalf("unexpected tie-break order: %v", page.Items)
	}
}

func TestPaginate_Bounds(t *testing.T) {
	items := make([]int, 25)
	for i := range items {
		items[i] = i
	}

	page := Paginate(items, 3, 12)
	if len(page.Items) != 1 || page.TotalItems != 25 || page.TotalPages != 3 || page.CurrentPage != 3 {
		t.Fatalf("unexpected page: %+v", page)
	}

	// out-of-range pages clamp, they never error
	page = Paginate(items, 999, 12)
	if page.CurrentPage != 3 || len(page.Items) != 1 {
		t.Fatalf("expected clamp to page 3, got %+v", page)
	}
	page = Paginate(items, 0, 12)
	if page.CurrentPage != 1 || len(page.Items) != 12 {
		t.Fatalf("expected clamp to page 1, got %+v", page)
	}

	empty := Paginate([]int{}, 5, 12)
	if empty.TotalPages != 0 || empty.TotalItems != 0 || len(empty.Items) != 0 || empty.CurrentPage != 1 {
		t.Fatalf("unexpected empty page: %+v", empty)
	}
}

func TestQuery_NoFiltersReturnsWholeCollection(t *testing.T) {
	schema := testSchema()
	recs := mkRecords(7)
	spec := Normalize(schema, map[string]string{})

	page, err := Query(recs, schema, spec)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if page.TotalItems != len(recs) {
		t.Fatalf("expected %d items, got %d", len(recs), page.TotalItems)
	}
}

func TestQuery_PagesConcatenateWithoutDuplicatesOrGaps(t *testing.T) {
	schema := testSchema()
	recs := mkRecords(41)
	raw := map[string]string{"sortBy": "score", "sortOrder": "asc"}

	first, err := Query(recs, schema, Normalize(schema, raw))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	seen := map[uuid.UUID]bool{}
	var all []record
	for p := 1; p <= first.TotalPages; p++ {
		raw["page"] = fmt.Sprintf("%d", p)
		page, err := Query(recs, schema, Normalize(schema, raw))
		if err != nil {
			t.Fatalf("page %d: %v", p, err)
		}
		if len(page.Items) > DefaultPageSize {
			t.Fatalf("page %d over size: %d", p, len(page.Items))
		}
		for _, it := range page.Items {
			if seen[it.id] {
				t.Fatalf("duplicate record %s on page %d", it.id, p)
			}
			seen[it.id] = true
			all = append(all, it)
		}
	}

	if len(all) != len(recs) {
		t.Fatalf("expected %d records across pages, got %d", len(recs), len(all))
	}
	for i := 1; i < len(all); i++ {
		if *all[i-1].score > *all[i].score {
			t.Fatalf("ordering broken across pages at %d", i)
		}
	}
}

func TestQuery_DoesNotReorderInput(t *testing.T) {
	schema := testSchema()
	recs := mkRecords(5)
	recs[0], recs[4] = recs[4], recs[0]
	firstID := recs[0].id

	spec := Normalize(schema, map[string]string{"sortBy": "createdAt", "sortOrder": "asc"})
	if _, err := Query(recs, schema, spec); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if recs[0].id != firstID {
		t.Fatalf("input slice was reordered")
	}
}
