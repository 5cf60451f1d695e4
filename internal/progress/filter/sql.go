package filter

import (
	"fmt"

	expr "google.golang.org/genproto/googleapis/api/expr/v1alpha1"
)

// SQLCondition is a WHERE clause fragment with positional parameters.
type SQLCondition struct {
	// Clause is the SQL predicate (e.g. "level >= ?"); empty matches all rows.
	Clause string
	// Params are the positional parameters for Clause.
	Params []any
}

// SQL translates the filter into a predicate over the goals table.
func (f Filter) SQL() (SQLCondition, error) {
	if f.root == nil {
		return SQLCondition{}, nil
	}
	return translatePredicate(f.root)
}

func translatePredicate(e *expr.Expr) (SQLCondition, error) {
	if e == nil {
		return SQLCondition{}, fmt.Errorf("nil expression: %w", ErrInvalid)
	}
	switch kind := e.ExprKind.(type) {
	case *expr.Expr_IdentExpr:
		// A bare boolean field reads as "field is set".
		name := kind.IdentExpr.GetName()
		if literal, ok := boolLiteral(name); ok {
			if literal {
				return SQLCondition{Clause: "1 = 1"}, nil
			}
			return SQLCondition{Clause: "1 = 0"}, nil
		}
		column, ok := columns[name]
		if !ok {
			return SQLCondition{}, fmt.Errorf("unknown field %q: %w", name, ErrInvalid)
		}
		return SQLCondition{Clause: column + " = ?", Params: []any{1}}, nil
	case *expr.Expr_CallExpr:
		return translateCall(kind.CallExpr)
	default:
		return SQLCondition{}, fmt.Errorf("unsupported expression type %T: %w", kind, ErrInvalid)
	}
}

func translateCall(call *expr.Expr_Call) (SQLCondition, error) {
	args := call.GetArgs()
	switch call.GetFunction() {
	case "AND", "_&&_":
		return translateLogical(args, "AND")
	case "OR", "_||_":
		return translateLogical(args, "OR")
	case "NOT", "!_":
		if len(args) != 1 {
			return SQLCondition{}, fmt.Errorf("NOT requires 1 argument: %w", ErrInvalid)
		}
		inner, err := translatePredicate(args[0])
		if err != nil {
			return SQLCondition{}, err
		}
		return SQLCondition{Clause: fmt.Sprintf("NOT (%s)", inner.Clause), Params: inner.Params}, nil
	}
	op, ok := comparisonOperator(call.GetFunction())
	if !ok {
		return SQLCondition{}, fmt.Errorf("unsupported function %q: %w", call.GetFunction(), ErrInvalid)
	}
	return translateComparison(args, op)
}

func translateLogical(args []*expr.Expr, op string) (SQLCondition, error) {
	if len(args) != 2 {
		return SQLCondition{}, fmt.Errorf("%s requires 2 arguments: %w", op, ErrInvalid)
	}
	left, err := translatePredicate(args[0])
	if err != nil {
		return SQLCondition{}, err
	}
	right, err := translatePredicate(args[1])
	if err != nil {
		return SQLCondition{}, err
	}
	return SQLCondition{
		Clause: fmt.Sprintf("(%s %s %s)", left.Clause, op, right.Clause),
		Params: append(left.Params, right.Params...),
	}, nil
}

func translateComparison(args []*expr.Expr, op string) (SQLCondition, error) {
	if len(args) != 2 {
		return SQLCondition{}, fmt.Errorf("comparison requires 2 arguments: %w", ErrInvalid)
	}
	ident := args[0].GetIdentExpr()
	if ident == nil {
		return SQLCondition{}, fmt.Errorf("left side of %s must be a field: %w", op, ErrInvalid)
	}
	column, ok := columns[ident.GetName()]
	if !ok {
		return SQLCondition{}, fmt.Errorf("unknown field %q: %w", ident.GetName(), ErrInvalid)
	}
	value, err := sqlValue(args[1])
	if err != nil {
		return SQLCondition{}, err
	}
	return SQLCondition{
		Clause: fmt.Sprintf("%s %s ?", column, op),
		Params: []any{value},
	}, nil
}

func sqlValue(e *expr.Expr) (any, error) {
	if e == nil {
		return nil, fmt.Errorf("nil expression: %w", ErrInvalid)
	}
	switch kind := e.ExprKind.(type) {
	case *expr.Expr_ConstExpr:
		value, err := constValue(kind.ConstExpr)
		if err != nil {
			return nil, err
		}
		if b, ok := value.(bool); ok {
			return boolInt(b), nil
		}
		return value, nil
	case *expr.Expr_IdentExpr:
		if literal, ok := boolLiteral(kind.IdentExpr.GetName()); ok {
			return boolInt(literal), nil
		}
		return nil, fmt.Errorf("right side must be a value, got field %q: %w", kind.IdentExpr.GetName(), ErrInvalid)
	default:
		return nil, fmt.Errorf("expected constant, got %T: %w", kind, ErrInvalid)
	}
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
