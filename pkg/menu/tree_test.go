package menu

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caraudioevents/platform/pkg/domain/navigation"
)

func item(id uuid.UUID, parent *uuid.UUID, order int) navigation.Item {
	return navigation.Item{ID: id, ParentID: parent, Order: order, Title: id.String()[:8]}
}

func TestBuildHierarchy_BasicForest(t *testing.T) {
	id1, id2, id3, id4 := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	items := []navigation.Item{
		item(id1, nil, 1),
		item(id2, &id1, 1),
		item(id3, &id1, 2),
		item(id4, nil, 2),
	}

	forest := BuildHierarchy(items)

	require.Len(t, forest, 2)
	assert.Equal(t, id1, forest[0].ID)
	assert.Equal(t, id4, forest[1].ID)
	require.Len(t, forest[0].Children, 2)
	assert.Equal(t, id2, forest[0].Children[0].ID)
	assert.Equal(t, id3, forest[0].Children[1].ID)
	assert.Empty(t, forest[1].Children)
}

func TestBuildHierarchy_DoesNotMutateInput(t *testing.T) {
	id1, id2 := uuid.New(), uuid.New()
	items := []navigation.Item{item(id1, nil, 1), item(id2, &id1, 1)}

	BuildHierarchy(items)

	assert.Nil(t, items[0].Children)
}

func TestBuildHierarchy_OrphanDropped(t *testing.T) {
	missing := uuid.New()
	orphan := uuid.New()
	forest := BuildHierarchy([]navigation.Item{item(orphan, &missing, 1)})

	assert.Empty(t, forest)
	assert.Empty(t, Flatten(forest))
}

func TestBuildHierarchy_CycleGuard(t *testing.T) {
	// a declares b as parent and b declares a: neither attachment may
	// close a cycle, so the guard drops the pair from the forest.
	idA, idB, idRoot := uuid.New(), uuid.New(), uuid.New()
	items := []navigation.Item{
		item(idRoot, nil, 1),
		item(idA, &idB, 1),
		item(idB, &idA, 2),
	}

	forest := BuildHierarchy(items)

	require.Len(t, forest, 1)
	assert.Equal(t, idRoot, forest[0].ID)

	flat := Flatten(forest)
	ids := make(map[uuid.UUID]int)
	for _, it := range flat {
		ids[it.ID]++
	}
	assert.LessOrEqual(t, ids[idA]+ids[idB], 1, "cyclic pair must not both appear")
	for _, it := range flat {
		assert.LessOrEqual(t, len(it.Children), len(items))
	}
}

func TestFlatten_ParentBeforeDescendants(t *testing.T) {
	id1, id2, id3, id4 := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	items := []navigation.Item{
		item(id1, nil, 1),
		item(id2, &id1, 1),
		item(id3, &id2, 1),
		item(id4, nil, 2),
	}

	flat := Flatten(BuildHierarchy(items))

	require.Len(t, flat, 4)
	pos := make(map[uuid.UUID]int, len(flat))
	for i, it := range flat {
		pos[it.ID] = i
	}
	assert.Less(t, pos[id1], pos[id2])
	assert.Less(t, pos[id2], pos[id3])
}

func TestNextOrder(t *testing.T) {
	id1, id2, id3 := uuid.New(), uuid.New(), uuid.New()
	forest := BuildHierarchy([]navigation.Item{
		item(id1, nil, 1),
		item(id2, &id1, 3),
		item(id3, &id1, 7),
	})

	assert.Equal(t, 2, NextOrder(forest, nil))
	assert.Equal(t, 8, NextOrder(forest, &id1))

	other := uuid.New()
	assert.Equal(t, 1, NextOrder(forest, &other))
	assert.Equal(t, 1, NextOrder(nil, nil))
}

func TestSwapOrders(t *testing.T) {
	a := &navigation.Item{ID: uuid.New(), Order: 2}
	b := &navigation.Item{ID: uuid.New(), Order: 5}

	SwapOrders(a, b)

	assert.Equal(t, 5, a.Order)
	assert.Equal(t, 2, b.Order)
}

func TestSiblings(t *testing.T) {
	id1, id2, id3 := uuid.New(), uuid.New(), uuid.New()
	forest := BuildHierarchy([]navigation.Item{
		item(id1, nil, 1),
		item(id2, &id1, 1),
		item(id3, &id1, 2),
	})

	sibs := Siblings(forest, &id1)
	require.Len(t, sibs, 2)
	assert.Equal(t, id2, sibs[0].ID)
	assert.Equal(t, id3, sibs[1].ID)

	roots := Siblings(forest, nil)
	require.Len(t, roots, 1)
	assert.Equal(t, id1, roots[0].ID)
}
