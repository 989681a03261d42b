package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBlockDefaults(t *testing.T) {
	block := NewBlock()

	assert.Equal(t, DefaultBlockName, block.Name)
	assert.Equal(t, 0, block.Len())
}

func TestNewNamedBlock(t *testing.T) {
	block := NewNamedBlock("loop_body")

	assert.Equal(t, "loop_body", block.Name)
}

func TestBlockAppendPreservesOrder(t *testing.T) {
	block := NewBlock()
	first := &LiteralInt32{Value: 1}
	second := &LiteralInt32{Value: 2}
	third := &LiteralInt32{Value: 1} // duplicates are kept

	block.Append(first)
	block.Append(second)
	block.Append(third)

	require.Equal(t, 3, block.Len())

	var got []Node
	for it := block.Iter(); ; {
		node, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, node)
	}

	require.Len(t, got, 3)
	assert.Same(t, first, got[0])
	assert.Same(t, second, got[1])
	assert.Same(t, third, got[2])
}

func TestBlockAppendSetsParent(t *testing.T) {
	block := NewBlock()
	node := &Variable{Name: "x"}

	require.Nil(t, node.ParentBlock())
	block.Append(node)
	assert.Same(t, block, node.ParentBlock())
}

func TestBlockIterReturnsFreshCursor(t *testing.T) {
	block := NewBlock()
	block.Append(&LiteralInt32{Value: 1})
	block.Append(&LiteralInt32{Value: 2})

	// Each traversal gets its own cursor, so exhausting one does not
	// affect the next.
	for round := 0; round < 2; round++ {
		count := 0
		for it := block.Iter(); ; {
			if _, ok := it.Next(); !ok {
				break
			}
			count++
		}
		assert.Equal(t, 2, count, "round %d", round)
	}
}

func TestCursorsAreIndependent(t *testing.T) {
	block := NewBlock()
	block.Append(&LiteralInt32{Value: 1})
	block.Append(&LiteralInt32{Value: 2})

	a := block.Iter()
	b := block.Iter()

	nodeA, okA := a.Next()
	require.True(t, okA)
	nodeB, okB := b.Next()
	require.True(t, okB)
	assert.Same(t, nodeA, nodeB)

	// Drain a; b still has one element left.
	_, ok := a.Next()
	require.True(t, ok)
	_, ok = a.Next()
	require.False(t, ok)

	_, ok = b.Next()
	assert.True(t, ok)
}

func TestCursorOnEmptyBlock(t *testing.T) {
	block := NewBlock()

	node, ok := block.Iter().Next()
	assert.Nil(t, node)
	assert.False(t, ok)
}

func TestCursorExhaustionIsSticky(t *testing.T) {
	block := NewBlock()
	block.Append(&LiteralInt32{Value: 1})

	it := block.Iter()
	_, ok := it.Next()
	require.True(t, ok)

	for i := 0; i < 3; i++ {
		_, ok := it.Next()
		assert.False(t, ok)
	}
}
