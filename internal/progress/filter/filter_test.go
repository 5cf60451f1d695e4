package filter

import (
	"errors"
	"reflect"
	"testing"
)

type goal struct {
	id       string
	title    string
	favorite bool
	level    int64
	xp       int64
}

func (g goal) FilterValue(field string) (any, bool) {
	switch field {
	case "id":
		return g.id, true
	case "title":
		return g.title, true
	case "favorite":
		return g.favorite, true
	case "level":
		return g.level, true
	case "xp":
		return g.xp, true
	default:
		return nil, false
	}
}

var goals = []goal{
	{id: "1", title: "Get fit", level: 3, xp: 300},
	{id: "2", title: "Learn Go", favorite: true, level: 2, xp: 150},
	{id: "3", title: "Read more", level: 1, xp: 40},
}

func matchIDs(t *testing.T, f Filter) []string {
	t.Helper()
	var ids []string
	for _, g := range goals {
		ok, err := f.Match(g)
		if err != nil {
			t.Fatalf("Match(%s): %v", g.id, err)
		}
		if ok {
			ids = append(ids, g.id)
		}
	}
	return ids
}

func TestParseEmptyMatchesAll(t *testing.T) {
	t.Parallel()

	f, err := Parse("   ")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !f.IsEmpty() {
		t.Fatal("expected empty filter")
	}
	if got := matchIDs(t, f); !reflect.DeepEqual(got, []string{"1", "2", "3"}) {
		t.Fatalf("ids = %v, want all", got)
	}
	cond, err := f.SQL()
	if err != nil {
		t.Fatalf("SQL: %v", err)
	}
	if cond.Clause != "" || len(cond.Params) != 0 {
		t.Fatalf("cond = %+v, want empty", cond)
	}
}

func TestMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		expr string
		want []string
	}{
		{name: "favorites", expr: Favorites, want: []string{"2"}},
		{name: "not favorites", expr: "NOT favorite", want: []string{"1", "3"}},
		{name: "level at least", expr: "level >= 2", want: []string{"1", "2"}},
		{name: "title equals", expr: `title = "Learn Go"`, want: []string{"2"}},
		{name: "id not equal", expr: `id != "1"`, want: []string{"2", "3"}},
		{name: "and", expr: "xp > 100 AND NOT favorite", want: []string{"1"}},
		{name: "or", expr: "level = 1 OR level = 3", want: []string{"1", "3"}},
		{name: "no match", expr: "xp < 0", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f, err := Parse(tt.expr)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.expr, err)
			}
			if got := matchIDs(t, f); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ids = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseRejectsInvalidExpressions(t *testing.T) {
	t.Parallel()

	for _, expr := range []string{
		"unknown_field = 1",
		"level = ",
		`level = "three"`,
	} {
		if _, err := Parse(expr); !errors.Is(err, ErrInvalid) {
			t.Fatalf("Parse(%q) error = %v, want ErrInvalid", expr, err)
		}
	}
}

func TestSQL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		expr   string
		clause string
		params []any
	}{
		{expr: Favorites, clause: "favorite = ?", params: []any{1}},
		{expr: "level >= 2", clause: "level >= ?", params: []any{int64(2)}},
		{expr: `title = "Learn Go"`, clause: "title = ?", params: []any{"Learn Go"}},
		{
			expr:   "xp > 100 AND NOT favorite",
			clause: "(xp > ? AND NOT (favorite = ?))",
			params: []any{int64(100), 1},
		},
	}
	for _, tt := range tests {
		f, err := Parse(tt.expr)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tt.expr, err)
		}
		cond, err := f.SQL()
		if err != nil {
			t.Fatalf("SQL(%q): %v", tt.expr, err)
		}
		if cond.Clause != tt.clause {
			t.Fatalf("clause = %q, want %q", cond.Clause, tt.clause)
		}
		if !reflect.DeepEqual(cond.Params, tt.params) {
			t.Fatalf("params = %#v, want %#v", cond.Params, tt.params)
		}
	}
}

func TestMatchRequiresRecord(t *testing.T) {
	t.Parallel()

	f := MustParse(Favorites)
	if _, err := f.Match(nil); !errors.Is(err, ErrInvalid) {
		t.Fatalf("Match(nil) error = %v, want ErrInvalid", err)
	}
	if f.String() != Favorites {
		t.Fatalf("String() = %q, want %q", f.String(), Favorites)
	}
}
