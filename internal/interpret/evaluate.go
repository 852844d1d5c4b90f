package interpret

import (
	"fmt"
	"io"
)

type Interpreter struct {
	out io.Writer
}

// NewInterpreter returns an interpreter that prints the value of every
// expression statement to out.
func NewInterpreter(out io.Writer) *Interpreter {
	return &Interpreter{out: out}
}

// Execute runs the statements in order and stops at the first error.
func (in *Interpreter) Execute(statements []Stmt) error {
	for _, stmt := range statements {
		if err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) execute(stmt Stmt) error {
	switch s := stmt.(type) {
	case *ExpressionStmt:
		value, err := in.Evaluate(s.Expression)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(in.out, value); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported statement %T", stmt)
	}
}

func (in *Interpreter) Evaluate(expr Expr) (Value, error) {
	switch e := expr.(type) {
	case *LiteralExpr:
		return e.Value.Literal, nil
	case *GroupingExpr:
		return in.Evaluate(e.Inner)
	case *UnaryExpr:
		return in.evaluateUnary(e)
	case *BinaryExpr:
		return in.evaluateBinary(e)
	case *IdentifierExpr:
		return Value{}, NewEvaluationErrorf(e.Name, "Undefined variable '%s'.", e.Name.Lexeme)
	default:
		return Value{}, fmt.Errorf("unsupported expression %T", expr)
	}
}

func (in *Interpreter) evaluateUnary(e *UnaryExpr) (Value, error) {
	operand, err := in.Evaluate(e.Operand)
	if err != nil {
		return Value{}, err
	}

	switch e.Operator.Type {
	case MINUS_TOKEN:
		n, ok := operand.Number()
		if !ok {
			return Value{}, NewEvaluationError(e.Operator, "Unsupported types for unary -")
		}
		return NumberValue(-n), nil
	case BANG_TOKEN:
		return BooleanValue(!operand.IsTruthy()), nil
	default:
		return Value{}, NewEvaluationErrorf(e.Operator, "Unsupported unary operator %s", e.Operator.Lexeme)
	}
}

func (in *Interpreter) evaluateBinary(e *BinaryExpr) (Value, error) {
	left, err := in.Evaluate(e.Left)
	if err != nil {
		return Value{}, err
	}
	right, err := in.Evaluate(e.Right)
	if err != nil {
		return Value{}, err
	}

	switch e.Operator.Type {
	case EQUAL_EQUAL_TOKEN:
		return BooleanValue(left.Equal(right)), nil
	case BANG_EQUAL_TOKEN:
		return BooleanValue(!left.Equal(right)), nil
	case PLUS_TOKEN:
		if l, ok := left.Str(); ok {
			if r, ok := right.Str(); ok {
				return StringValue(l + r), nil
			}
		}
	}

	l, lok := left.Number()
	r, rok := right.Number()
	if !lok || !rok {
		return Value{}, NewEvaluationErrorf(e.Operator, "Unsupported types for %s", e.Operator.Lexeme)
	}

	switch e.Operator.Type {
	case PLUS_TOKEN:
		return NumberValue(l + r), nil
	case MINUS_TOKEN:
		return NumberValue(l - r), nil
	case STAR_TOKEN:
		return NumberValue(l * r), nil
	case SLASH_TOKEN:
		return NumberValue(l / r), nil
	case GREATER_TOKEN:
		return BooleanValue(l > r), nil
	case GREATER_EQUAL_TOKEN:
		return BooleanValue(l >= r), nil
	case LESS_TOKEN:
		return BooleanValue(l < r), nil
	case LESS_EQUAL_TOKEN:
		return BooleanValue(l <= r), nil
	default:
		return Value{}, NewEvaluationErrorf(e.Operator, "Unsupported binary operator %s", e.Operator.Lexeme)
	}
}
