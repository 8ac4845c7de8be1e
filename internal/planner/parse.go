package planner

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/danieljhkim/paintgrid/internal/layer"
)

var (
	// ErrSyntax indicates a malformed script line.
	ErrSyntax = errors.New("syntax error")

	// ErrUnknownLayer indicates a layer name missing from the registry.
	ErrUnknownLayer = errors.New("unknown layer")
)

// Parse reads a stroke script and resolves layer names against reg.
// Errors name the offending line.
func Parse(r io.Reader, reg *layer.Registry) (*Plan, error) {
	plan := NewPlan()
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		op, err := parseLine(fields, reg)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		op.Line = lineNo
		plan.AddOperation(op)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return plan, nil
}

// ParseString is Parse over a string.
func ParseString(script string, reg *layer.Registry) (*Plan, error) {
	return Parse(strings.NewReader(script), reg)
}

func parseLine(fields []string, reg *layer.Registry) (Operation, error) {
	verb, args := strings.ToLower(fields[0]), fields[1:]
	switch verb {
	case OpAdd, OpErase:
		if len(args) != 3 {
			return Operation{}, fmt.Errorf("%w: %s wants <layer> <x> <y>", ErrSyntax, verb)
		}
		l, ok := reg.Lookup(args[0])
		if !ok {
			return Operation{}, fmt.Errorf("%w: %s", ErrUnknownLayer, args[0])
		}
		x, y, err := parseCell(args[1:])
		if err != nil {
			return Operation{}, err
		}
		return Operation{Type: verb, Layer: l, LayerName: l.Name(), X: x, Y: y}, nil

	case "special":
		switch len(args) {
		case 0:
			return Operation{Type: OpSpecial}, nil
		case 2:
			x, y, err := parseCell(args)
			if err != nil {
				return Operation{}, err
			}
			return Operation{Type: OpSpecialCell, X: x, Y: y}, nil
		default:
			return Operation{}, fmt.Errorf("%w: special wants no arguments or <x> <y>", ErrSyntax)
		}

	case "brush":
		if len(args) != 1 {
			return Operation{}, fmt.Errorf("%w: brush wants + or -", ErrSyntax)
		}
		switch args[0] {
		case "+":
			return Operation{Type: OpBrushUp}, nil
		case "-":
			return Operation{Type: OpBrushDown}, nil
		default:
			return Operation{}, fmt.Errorf("%w: brush wants + or -, got %q", ErrSyntax, args[0])
		}

	default:
		return Operation{}, fmt.Errorf("%w: unknown action %q", ErrSyntax, fields[0])
	}
}

func parseCell(args []string) (int, int, error) {
	coords := make([]int, 2)
	for i, raw := range args {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return 0, 0, fmt.Errorf("%w: coordinate %q must be a non-negative integer", ErrSyntax, raw)
		}
		coords[i] = n
	}
	return coords[0], coords[1], nil
}
