package planner

import (
	"fmt"

	"github.com/danieljhkim/paintgrid/internal/layer"
)

// Plan is an ordered list of operations to run against a grid.
type Plan struct {
	// Operations is the ordered list of operations to execute
	Operations []Operation
}

// Operation is a single user action.
type Operation struct {
	// Type is one of the Op* constants
	Type string `json:"type"`

	// Layer is the layer painted or erased (add and erase only)
	Layer layer.Layer `json:"-"`

	// LayerName mirrors Layer.Name() for reporting
	LayerName string `json:"layer,omitempty"`

	// X and Y locate the brush centre or the target cell
	X int `json:"x"`
	Y int `json:"y"`

	// Line is the 1-based script line the operation came from
	Line int `json:"line"`
}

// Operation type constants
const (
	OpAdd         = "add"
	OpErase       = "erase"
	OpSpecial     = "special"
	OpSpecialCell = "special_cell"
	OpBrushUp     = "brush_up"
	OpBrushDown   = "brush_down"
)

// NewPlan creates a new empty Plan.
func NewPlan() *Plan {
	return &Plan{Operations: []Operation{}}
}

// AddOperation adds an operation to the plan.
func (p *Plan) AddOperation(op Operation) {
	p.Operations = append(p.Operations, op)
}

// Len returns the number of operations.
func (p *Plan) Len() int {
	return len(p.Operations)
}

// HasCell reports whether the operation targets coordinates.
func (op Operation) HasCell() bool {
	switch op.Type {
	case OpAdd, OpErase, OpSpecialCell:
		return true
	default:
		return false
	}
}

// String renders the operation in script syntax.
func (op Operation) String() string {
	switch op.Type {
	case OpAdd, OpErase:
		return fmt.Sprintf("%s %s %d %d", op.Type, op.LayerName, op.X, op.Y)
	case OpSpecial:
		return "special"
	case OpSpecialCell:
		return fmt.Sprintf("special %d %d", op.X, op.Y)
	case OpBrushUp:
		return "brush +"
	case OpBrushDown:
		return "brush -"
	default:
		return op.Type
	}
}
