// Package filter parses AIP-160 goal filter expressions.
//
// Parsed filters can be evaluated against in-memory records or translated
// into SQLite WHERE fragments, so both storage backends agree on results.
package filter

import (
	"fmt"
	"strings"

	apperrors "github.com/louisbranch/questboard/internal/platform/errors"
	"go.einride.tech/aip/filtering"
	expr "google.golang.org/genproto/googleapis/api/expr/v1alpha1"
)

// Favorites selects goals marked as favorite.
const Favorites = "favorite"

// ErrInvalid indicates a filter expression that cannot be parsed or applied.
var ErrInvalid = apperrors.New(apperrors.CodeInvalidFilter, "invalid filter")

// Record exposes named field values to filter evaluation.
type Record interface {
	FilterValue(field string) (any, bool)
}

// columns maps filter idents to goal table columns.
var columns = map[string]string{
	"id":       "id",
	"title":    "title",
	"favorite": "favorite",
	"level":    "level",
	"xp":       "xp",
}

// GoalDeclarations returns the field declarations for goal filtering.
func GoalDeclarations() (*filtering.Declarations, error) {
	return filtering.NewDeclarations(
		filtering.DeclareStandardFunctions(),
		filtering.DeclareIdent("id", filtering.TypeString),
		filtering.DeclareIdent("title", filtering.TypeString),
		filtering.DeclareIdent("favorite", filtering.TypeBool),
		filtering.DeclareIdent("level", filtering.TypeInt),
		filtering.DeclareIdent("xp", filtering.TypeInt),
	)
}

// Filter is a parsed goal filter. The zero value matches everything.
type Filter struct {
	raw  string
	root *expr.Expr
}

// Parse parses an AIP-160 expression. An empty expression matches all goals.
func Parse(raw string) (Filter, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Filter{}, nil
	}
	decls, err := GoalDeclarations()
	if err != nil {
		return Filter{}, fmt.Errorf("create declarations: %w", err)
	}
	parsed, err := filtering.ParseFilterString(raw, decls)
	if err != nil {
		return Filter{}, fmt.Errorf("parse filter %q: %w: %w", raw, ErrInvalid, err)
	}
	if parsed.CheckedExpr == nil || parsed.CheckedExpr.GetExpr() == nil {
		return Filter{}, nil
	}
	f := Filter{raw: raw, root: parsed.CheckedExpr.GetExpr()}
	// Translate once so unsupported shapes fail at parse time, not per row.
	if _, err := f.SQL(); err != nil {
		return Filter{}, err
	}
	return f, nil
}

// MustParse is Parse for expressions known at compile time.
func MustParse(raw string) Filter {
	f, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return f
}

// String returns the source expression.
func (f Filter) String() string {
	return f.raw
}

// IsEmpty reports whether the filter matches every record.
func (f Filter) IsEmpty() bool {
	return f.root == nil
}

// Match evaluates the filter against one record.
func (f Filter) Match(record Record) (bool, error) {
	if f.root == nil {
		return true, nil
	}
	if record == nil {
		return false, fmt.Errorf("record is required: %w", ErrInvalid)
	}
	value, err := evaluate(f.root, record)
	if err != nil {
		return false, err
	}
	matched, ok := value.(bool)
	if !ok {
		return false, fmt.Errorf("filter %q does not produce a boolean: %w", f.raw, ErrInvalid)
	}
	return matched, nil
}
