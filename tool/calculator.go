package tool

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strconv"
	"strings"

	ai "github.com/y-lan/tinyagent"
	"github.com/y-lan/tinyagent/schema"
)

// calculatorSafeChars is the set of characters allowed in expressions.
const calculatorSafeChars = "0123456789+-*/(). "

// NewCalculatorTool creates a tool that evaluates arithmetic expressions.
// Only the four basic operators, parentheses, and decimal numbers are
// accepted; anything else is rejected before parsing.
func NewCalculatorTool() (ai.Tool, Handler) {
	t := ai.Tool{
		Name:        "Calculator",
		Description: "A simple calculator",
		Parameters: schema.Object().
			Field("expr", schema.String().Desc("The expression to evaluate").Required()).
			MustBuild(),
	}

	handler := func(ctx context.Context, call ai.ToolCall) (string, error) {
		var args struct {
			Expr string `json:"expr"`
		}
		if err := json.Unmarshal([]byte(call.Arguments), &args); err != nil {
			return "", err
		}

		for _, r := range args.Expr {
			if !strings.ContainsRune(calculatorSafeChars, r) {
				return "", errors.New("invalid characters in expression")
			}
		}

		result, err := evalArithmetic(args.Expr)
		if err != nil {
			return "", fmt.Errorf("error evaluating expression: %w", err)
		}

		return strconv.FormatFloat(result, 'f', -1, 64), nil
	}

	return t, handler
}

// evalArithmetic parses and evaluates a basic arithmetic expression.
func evalArithmetic(expr string) (float64, error) {
	node, err := parser.ParseExpr(expr)
	if err != nil {
		return 0, err
	}
	return evalNode(node)
}

func evalNode(node ast.Expr) (float64, error) {
	switch n := node.(type) {
	case *ast.BasicLit:
		switch n.Kind {
		case token.INT, token.FLOAT:
			return strconv.ParseFloat(n.Value, 64)
		default:
			return 0, fmt.Errorf("unsupported literal %s", n.Value)
		}

	case *ast.ParenExpr:
		return evalNode(n.X)

	case *ast.UnaryExpr:
		v, err := evalNode(n.X)
		if err != nil {
			return 0, err
		}
		switch n.Op {
		case token.SUB:
			return -v, nil
		case token.ADD:
			return v, nil
		default:
			return 0, fmt.Errorf("unsupported operator %s", n.Op)
		}

	case *ast.BinaryExpr:
		x, err := evalNode(n.X)
		if err != nil {
			return 0, err
		}
		y, err := evalNode(n.Y)
		if err != nil {
			return 0, err
		}
		switch n.Op {
		case token.ADD:
			return x + y, nil
		case token.SUB:
			return x - y, nil
		case token.MUL:
			return x * y, nil
		case token.QUO:
			if y == 0 {
				return 0, errors.New("division by zero")
			}
			return x / y, nil
		default:
			return 0, fmt.Errorf("unsupported operator %s", n.Op)
		}

	default:
		return 0, errors.New("unsupported expression")
	}
}
