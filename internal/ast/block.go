package ast

// DefaultBlockName is the conventional label for an entry scope.
const DefaultBlockName = "entry"

// Block is an ordered, named container of nodes representing a lexical
// scope. Child order is the statement execution order of the generated
// output: children are never reordered or deduplicated.
//
// A Block does not lock internally. Appending and rendering the same tree
// from different goroutines requires external synchronization.
type Block struct {
	Name   string
	Loc    SourceLocation
	parent *Block
	nodes  []Node
}

// NewBlock creates an empty Block named DefaultBlockName.
func NewBlock() *Block {
	return &Block{Name: DefaultBlockName}
}

// NewNamedBlock creates an empty Block with an explicit scope label.
func NewNamedBlock(name string) *Block {
	return &Block{Name: name}
}

// Append adds a node to the end of the block and records the block as the
// node's parent. O(1) amortized, never fails.
func (b *Block) Append(node Node) {
	b.nodes = append(b.nodes, node)
	if node != nil {
		node.SetParentBlock(b)
	}
}

// Len reports the number of children.
func (b *Block) Len() int {
	return len(b.nodes)
}

// Iter returns a fresh cursor over the children in append order. Each call
// yields an independent cursor, so repeated or concurrent traversals of the
// same Block never interfere with each other.
func (b *Block) Iter() *Cursor {
	return &Cursor{block: b}
}

// Cursor walks a Block's children front to back. The zero value is not
// usable; obtain one from Block.Iter.
type Cursor struct {
	block *Block
	pos   int
}

// Next returns the next child, or ok=false once the sequence is exhausted.
// Exhaustion is a control-flow signal, not an error.
func (c *Cursor) Next() (Node, bool) {
	if c.pos >= len(c.block.nodes) {
		return nil, false
	}
	n := c.block.nodes[c.pos]
	c.pos++
	return n, true
}
