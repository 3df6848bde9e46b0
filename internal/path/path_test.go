package path

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveLineClose(t *testing.T) {
	p := New()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.LineTo(10, 10)
	p.Close()

	nodes := p.Nodes()
	require.Len(t, nodes, 4)
	assert.Equal(t, NodeMoveTo, nodes[0].Kind)
	assert.Equal(t, NodeLineTo, nodes[1].Kind)
	assert.Equal(t, NodeLineTo, nodes[2].Kind)
	assert.Equal(t, NodeClose, nodes[3].Kind)
}

func TestConsecutiveMoveToCollapses(t *testing.T) {
	p := New()
	p.MoveTo(0, 0)
	p.MoveTo(5, 5)
	p.LineTo(10, 10)

	nodes := p.Nodes()
	require.Len(t, nodes, 2)
	assert.Equal(t, 5.0, nodes[0].X)
	assert.Equal(t, 5.0, nodes[0].Y)
}

func TestCloseIsIdempotentAndNoopOnEmptySubpath(t *testing.T) {
	p := New()
	p.MoveTo(0, 0)
	p.Close() // empty subpath: no-op
	assert.Len(t, p.Nodes(), 1)

	p.LineTo(1, 1)
	p.Close()
	p.Close() // idempotent
	assert.Len(t, p.Nodes(), 3)
}

func TestRelLineToRequiresCurrentPoint(t *testing.T) {
	p := New()
	err := p.RelLineTo(1, 1)
	assert.Error(t, err)

	p.MoveTo(2, 2)
	require.NoError(t, p.RelLineTo(3, 4))
	nodes := p.Nodes()
	last := nodes[len(nodes)-1]
	assert.Equal(t, 5.0, last.X)
	assert.Equal(t, 6.0, last.Y)
}

func TestRelCurveToRequiresCurrentPoint(t *testing.T) {
	p := New()
	err := p.RelCurveTo(1, 0, 2, 0, 3, 0)
	assert.Error(t, err)

	p.MoveTo(0, 0)
	require.NoError(t, p.RelCurveTo(1, 1, 2, 2, 3, 3))
	last := p.Nodes()[len(p.Nodes())-1]
	assert.Equal(t, NodeCurveTo, last.Kind)
	assert.Equal(t, 3.0, last.X)
	assert.Equal(t, 3.0, last.Y)
}

func TestArcFromEmptyPathStartsWithMoveTo(t *testing.T) {
	p := New()
	p.Arc(0, 0, 10, 0, 3.14159265/2, true)

	nodes := p.Nodes()
	require.NotEmpty(t, nodes)
	assert.Equal(t, NodeMoveTo, nodes[0].Kind)
	for _, n := range nodes[1:] {
		assert.Equal(t, NodeCurveTo, n.Kind)
	}
}

func TestArcFromExistingPointAddsConnector(t *testing.T) {
	p := New()
	p.MoveTo(-50, -50)
	p.Arc(0, 0, 10, 0, 3.14159265/2, true)

	nodes := p.Nodes()
	require.True(t, len(nodes) >= 2)
	assert.Equal(t, NodeLineTo, nodes[1].Kind)
}

func TestNewWithCapacityStartsEmpty(t *testing.T) {
	p := NewWithCapacity(64)
	assert.Empty(t, p.Nodes())
}

func TestResetClearsPenState(t *testing.T) {
	p := New()
	p.MoveTo(1, 1)
	p.LineTo(2, 2)
	p.Reset()
	assert.Empty(t, p.Nodes())
	assert.Error(t, p.RelLineTo(1, 1))
}
