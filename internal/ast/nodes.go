package ast

import "jsstyle/internal/source"

// Node is implemented by Program, VariableDeclaration, Function, Param and
// ControlStructure.
type Node interface {
	// Line is the 1-based source line where the construct starts.
	Line() uint32
	// Children returns the owned child nodes in source order.
	Children() []Node
	node()
}

// Program is the root. It always exists, possibly with no children.
type Program struct {
	Body []Node
}

// VariableDeclaration is `let|const|var name [= ...] [;]`.
type VariableDeclaration struct {
	Keyword string
	Name    string
	Pos     uint32
	Span    source.Span // span of the name
}

// Function is `function name(params) { body }`.
type Function struct {
	Name   string
	Pos    uint32
	Span   source.Span // span of the name
	Params []*Param
	Body   []Node
}

// Param is a single parameter identifier of a Function.
type Param struct {
	Name string
	Pos  uint32
	Span source.Span
}

// ControlStructure is an if/while/for with its braced body.
type ControlStructure struct {
	Keyword string
	Pos     uint32
	Span    source.Span // span of the keyword
	Body    []Node
}

func (*Program) node()             {}
func (*VariableDeclaration) node() {}
func (*Function) node()            {}
func (*Param) node()               {}
func (*ControlStructure) node()    {}

func (*Program) Line() uint32               { return 1 }
func (n *VariableDeclaration) Line() uint32 { return n.Pos }
func (n *Function) Line() uint32            { return n.Pos }
func (n *Param) Line() uint32               { return n.Pos }
func (n *ControlStructure) Line() uint32    { return n.Pos }

func (n *Program) Children() []Node           { return n.Body }
func (*VariableDeclaration) Children() []Node { return nil }
func (*Param) Children() []Node               { return nil }
func (n *ControlStructure) Children() []Node  { return n.Body }

// Children of a Function are its params followed by its body.
func (n *Function) Children() []Node {
	out := make([]Node, 0, len(n.Params)+len(n.Body))
	for _, p := range n.Params {
		out = append(out, p)
	}
	return append(out, n.Body...)
}

// Weight is the fixed complexity contribution of a control structure.
func (*ControlStructure) Weight() int { return 1 }

// Weight returns the complexity weight of n: 1 for ControlStructure, 0 otherwise.
func Weight(n Node) int {
	if cs, ok := n.(*ControlStructure); ok {
		return cs.Weight()
	}
	return 0
}

// Kind returns a short variant name, used by dumps and traces.
func Kind(n Node) string {
	switch n.(type) {
	case *Program:
		return "Program"
	case *VariableDeclaration:
		return "VariableDeclaration"
	case *Function:
		return "Function"
	case *Param:
		return "Param"
	case *ControlStructure:
		return "ControlStructure"
	default:
		return "?"
	}
}
