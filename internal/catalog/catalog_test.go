package catalog

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func ids(ps []Pet) []int64 {
	out := make([]int64, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}

func TestReconcile(t *testing.T) {
	pets := []Pet{{ID: 1}, {ID: 2}, {ID: 3}}
	adoptions := []Adoption{{PetID: 2}, {PetID: 2}, {PetID: 99}}

	got := ids(Reconcile(pets, adoptions))
	if diff := cmp.Diff([]int64{1, 3}, got); diff != "" {
		t.Fatalf("Reconcile (-want +got):\n%s", diff)
	}

	if got := Reconcile(pets, nil); len(got) != 3 {
		t.Fatalf("no adoptions should keep every pet, got %d", len(got))
	}
}

func TestFilter(t *testing.T) {
	pets := []Pet{
		{ID: 1, Breed: "Golden Retriever", Type: "dog", Location: "Denver"},
		{ID: 2, Breed: "Persian Cat", Type: "cat", Location: "San Francisco"},
		{ID: 3, Breed: "Corgi", Type: "dog", Location: "Boston"},
	}

	cases := []struct {
		query string
		want  []int64
	}{
		{"golden", []int64{1}},
		{"DOG", []int64{1, 3}},
		{"  francisco ", []int64{2}},
		{"", []int64{1, 2, 3}},
		{"siamese", []int64{}},
	}
	for _, tc := range cases {
		got := ids(Filter(pets, tc.query))
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Fatalf("Filter(%q) (-want +got):\n%s", tc.query, diff)
		}
	}

	// campos explícitos
	if got := ids(Filter(pets, "corgi", FieldLocation)); len(got) != 0 {
		t.Fatalf("expected no match on location only, got %v", got)
	}
}

func TestParseFields(t *testing.T) {
	pets := []Pet{
		{ID: 1, Name: "Bella", Breed: "Labrador Retriever"},
		{ID: 2, Name: "Rocky", Breed: "Bella Mix"},
	}

	fields, err := ParseFields([]string{" Name "})
	if err != nil {
		t.Fatalf("ParseFields error: %v", err)
	}
	if diff := cmp.Diff([]int64{1}, ids(Filter(pets, "bella", fields...))); diff != "" {
		t.Fatalf("name-only search (-want +got):\n%s", diff)
	}

	fields, err = ParseFields(nil)
	if err != nil || len(fields) != len(DefaultSearchFields) {
		t.Fatalf("expected default fields, got %d (%v)", len(fields), err)
	}

	if _, err := ParseFields([]string{"color"}); err == nil {
		t.Fatalf("expected error for unknown field")
	}
}

func TestFilter_UnicodeFold(t *testing.T) {
	pets := []Pet{{ID: 1, Location: "ZÜRICH"}, {ID: 2, Location: "Zürich"}, {ID: 3, Location: "Zurich"}}
	got := ids(Filter(pets, "zürich", FieldLocation))
	if diff := cmp.Diff([]int64{1, 2}, got); diff != "" {
		t.Fatalf("fold match (-want +got):\n%s", diff)
	}
}

func TestPaginate(t *testing.T) {
	items := make([]int, 25)
	for i := range items {
		items[i] = i + 1
	}

	p1 := Paginate(items, 1, PageSize)
	if p1.TotalPages != 3 || p1.Items[0] != 1 || p1.Items[len(p1.Items)-1] != 12 {
		t.Fatalf("page 1 unexpected: %+v", p1)
	}

	p3 := Paginate(items, 3, PageSize)
	if diff := cmp.Diff([]int{25}, p3.Items); diff != "" {
		t.Fatalf("page 3 (-want +got):\n%s", diff)
	}

	// fuera de rango se acota
	if p := Paginate(items, 9, PageSize); p.Page != 3 {
		t.Fatalf("expected clamp to 3, got %d", p.Page)
	}
	if p := Paginate(items, 0, 0); p.Page != 1 || len(p.Items) != PageSize {
		t.Fatalf("expected default size and page 1, got %+v", p)
	}

	empty := Paginate([]int{}, 1, PageSize)
	if empty.TotalPages != 0 || len(empty.Items) != 0 || empty.Page != 1 {
		t.Fatalf("empty pagination unexpected: %+v", empty)
	}
}

func TestPageWindow(t *testing.T) {
	cases := []struct {
		current, total int
		want           []int
	}{
		{1, 3, []int{1, 2, 3}},
		{3, 3, []int{1, 2, 3}},
		{1, 10, []int{1, 2, 3, 4, 5}},
		{5, 10, []int{3, 4, 5, 6, 7}},
		{10, 10, []int{6, 7, 8, 9, 10}},
		{9, 10, []int{6, 7, 8, 9, 10}},
		{1, 1, []int{1}},
		{0, 0, nil},
	}
	for _, tc := range cases {
		got := PageWindow(tc.current, tc.total, PageWindowSize)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Fatalf("PageWindow(%d,%d) (-want +got):\n%s", tc.current, tc.total, diff)
		}
		if len(got) > PageWindowSize || len(got) > tc.total {
			t.Fatalf("window too wide: %v", got)
		}
	}
}

func TestTraits(t *testing.T) {
	if diff := cmp.Diff([]string{"Calm", "Playful", "Calm"}, SplitTraits(" Calm, ,Playful,,Calm ")); diff != "" {
		t.Fatalf("SplitTraits (-want +got):\n%s", diff)
	}
	if got := SplitTraits(""); len(got) != 0 {
		t.Fatalf("expected no traits, got %v", got)
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, TopTraits("a,b,c,d,e", CardTraits)); diff != "" {
		t.Fatalf("TopTraits (-want +got):\n%s", diff)
	}
	if JoinTraits([]string{"a", "b"}) != "a,b" {
		t.Fatalf("JoinTraits")
	}
}

func TestCheckFormLimits(t *testing.T) {
	if err := CheckFormLimits(strings.Repeat("é", MaxDescription), make([]string, MaxTraits)); err != nil {
		t.Fatalf("limits are inclusive, got %v", err)
	}

	err := CheckFormLimits(strings.Repeat("x", MaxDescription+1), make([]string, MaxTraits+1))
	if !errors.Is(err, ErrDescriptionTooLong) || !errors.Is(err, ErrTooManyTraits) {
		t.Fatalf("expected both limit errors, got %v", err)
	}
}

func TestTake(t *testing.T) {
	if got := Take([]int{1, 2, 3}, 8); len(got) != 3 {
		t.Fatalf("Take larger than slice")
	}
	if got := Take([]int{1, 2, 3}, 2); len(got) != 2 {
		t.Fatalf("Take smaller than slice")
	}
}
