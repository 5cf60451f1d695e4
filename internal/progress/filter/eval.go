package filter

import (
	"fmt"
	"strings"

	expr "google.golang.org/genproto/googleapis/api/expr/v1alpha1"
)

func evaluate(e *expr.Expr, record Record) (any, error) {
	if e == nil {
		return nil, fmt.Errorf("nil expression: %w", ErrInvalid)
	}
	switch kind := e.ExprKind.(type) {
	case *expr.Expr_IdentExpr:
		return identValue(kind.IdentExpr.GetName(), record)
	case *expr.Expr_ConstExpr:
		return constValue(kind.ConstExpr)
	case *expr.Expr_CallExpr:
		return evaluateCall(kind.CallExpr, record)
	default:
		return nil, fmt.Errorf("unsupported expression type %T: %w", kind, ErrInvalid)
	}
}

func identValue(name string, record Record) (any, error) {
	if literal, ok := boolLiteral(name); ok {
		return literal, nil
	}
	value, ok := record.FilterValue(name)
	if !ok {
		return nil, fmt.Errorf("unknown field %q: %w", name, ErrInvalid)
	}
	return value, nil
}

func boolLiteral(name string) (bool, bool) {
	switch name {
	case "true":
		return true, true
	case "false":
		return false, true
	default:
		return false, false
	}
}

func constValue(c *expr.Constant) (any, error) {
	if c == nil {
		return nil, fmt.Errorf("nil constant: %w", ErrInvalid)
	}
	switch kind := c.ConstantKind.(type) {
	case *expr.Constant_StringValue:
		return kind.StringValue, nil
	case *expr.Constant_Int64Value:
		return kind.Int64Value, nil
	case *expr.Constant_Uint64Value:
		return int64(kind.Uint64Value), nil
	case *expr.Constant_DoubleValue:
		return kind.DoubleValue, nil
	case *expr.Constant_BoolValue:
		return kind.BoolValue, nil
	default:
		return nil, fmt.Errorf("unsupported constant type %T: %w", kind, ErrInvalid)
	}
}

func evaluateCall(call *expr.Expr_Call, record Record) (any, error) {
	args := call.GetArgs()
	switch call.GetFunction() {
	case "AND", "_&&_":
		return evaluateLogical(args, record, true)
	case "OR", "_||_":
		return evaluateLogical(args, record, false)
	case "NOT", "!_":
		if len(args) != 1 {
			return nil, fmt.Errorf("NOT requires 1 argument: %w", ErrInvalid)
		}
		value, err := evaluateBool(args[0], record)
		if err != nil {
			return nil, err
		}
		return !value, nil
	}
	op, ok := comparisonOperator(call.GetFunction())
	if !ok {
		return nil, fmt.Errorf("unsupported function %q: %w", call.GetFunction(), ErrInvalid)
	}
	if len(args) != 2 {
		return nil, fmt.Errorf("%s requires 2 arguments: %w", op, ErrInvalid)
	}
	left, err := evaluate(args[0], record)
	if err != nil {
		return nil, err
	}
	right, err := evaluate(args[1], record)
	if err != nil {
		return nil, err
	}
	return compare(left, right, op)
}

func evaluateLogical(args []*expr.Expr, record Record, and bool) (any, error) {
	if len(args) < 2 {
		return nil, fmt.Errorf("logical operator requires 2 arguments: %w", ErrInvalid)
	}
	for _, arg := range args {
		value, err := evaluateBool(arg, record)
		if err != nil {
			return nil, err
		}
		if and && !value {
			return false, nil
		}
		if !and && value {
			return true, nil
		}
	}
	return and, nil
}

func evaluateBool(e *expr.Expr, record Record) (bool, error) {
	value, err := evaluate(e, record)
	if err != nil {
		return false, err
	}
	b, ok := value.(bool)
	if !ok {
		return false, fmt.Errorf("expected boolean operand, got %T: %w", value, ErrInvalid)
	}
	return b, nil
}

func comparisonOperator(function string) (string, bool) {
	switch function {
	case "=", "_==_":
		return "=", true
	case "!=", "_!=_":
		return "!=", true
	case "<", "_<_":
		return "<", true
	case "<=", "_<=_":
		return "<=", true
	case ">", "_>_":
		return ">", true
	case ">=", "_>=_":
		return ">=", true
	default:
		return "", false
	}
}

func compare(left, right any, op string) (bool, error) {
	switch l := left.(type) {
	case string:
		r, ok := right.(string)
		if !ok {
			return false, mismatch(left, right)
		}
		return ordered(strings.Compare(l, r), op), nil
	case int64:
		switch r := right.(type) {
		case int64:
			return ordered(cmpInt(l, r), op), nil
		case float64:
			return ordered(cmpFloat(float64(l), r), op), nil
		}
		return false, mismatch(left, right)
	case float64:
		switch r := right.(type) {
		case float64:
			return ordered(cmpFloat(l, r), op), nil
		case int64:
			return ordered(cmpFloat(l, float64(r)), op), nil
		}
		return false, mismatch(left, right)
	case bool:
		r, ok := right.(bool)
		if !ok {
			return false, mismatch(left, right)
		}
		switch op {
		case "=":
			return l == r, nil
		case "!=":
			return l != r, nil
		}
		return false, fmt.Errorf("operator %s is not defined for booleans: %w", op, ErrInvalid)
	default:
		return false, mismatch(left, right)
	}
}

func mismatch(left, right any) error {
	return fmt.Errorf("cannot compare %T with %T: %w", left, right, ErrInvalid)
}

func cmpInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func ordered(c int, op string) bool {
	switch op {
	case "=":
		return c == 0
	case "!=":
		return c != 0
	case "<":
		return c < 0
	case "<=":
		return c <= 0
	case ">":
		return c > 0
	case ">=":
		return c >= 0
	default:
		return false
	}
}
