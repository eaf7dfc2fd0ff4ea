// Package menu shapes flat navigation records into the forest the site menu
// renders. It is pure: it never reads or writes storage.
package menu

import (
	"github.com/google/uuid"

	"github.com/caraudioevents/platform/pkg/domain/navigation"
)

// BuildHierarchy turns a flat, pre-sorted item list into a forest of roots
// with populated Children. Items are shallow-copied; the input is not
// mutated. Sibling order is input order, so callers sort by display order
// first (the repository's List already does).
//
// An item whose ParentID does not resolve within the input is dropped from
// the output entirely. An item whose declared parent is one of its own
// descendants would form a cycle; attachment is skipped and the item is
// dropped the same way an orphan is.
func BuildHierarchy(items []navigation.Item) []*navigation.Item {
	nodes := make(map[uuid.UUID]*navigation.Item, len(items))
	ordered := make([]*navigation.Item, 0, len(items))
	for i := range items {
		copied := items[i]
		copied.Children = []*navigation.Item{}
		nodes[copied.ID] = &copied
		ordered = append(ordered, &copied)
	}

	var roots []*navigation.Item
	for _, node := range ordered {
		if node.ParentID == nil {
			roots = append(roots, node)
			continue
		}
		parent, ok := nodes[*node.ParentID]
		if !ok {
			// Dangling parent reference: drop the orphan.
			continue
		}
		if isAncestor(nodes, node.ID, parent) {
			// Attaching would close a cycle: drop the item.
			continue
		}
		parent.Children = append(parent.Children, node)
	}

	if roots == nil {
		roots = []*navigation.Item{}
	}
	return roots
}

// isAncestor reports whether candidate has id somewhere in its parent chain.
// The walk is bounded by the input size so a pre-existing cycle in the data
// cannot loop forever.
func isAncestor(nodes map[uuid.UUID]*navigation.Item, id uuid.UUID, candidate *navigation.Item) bool {
	seen := 0
	for current := candidate; current != nil && seen <= len(nodes); seen++ {
		if current.ID == id {
			return true
		}
		if current.ParentID == nil {
			return false
		}
		current = nodes[*current.ParentID]
	}
	return false
}

// Flatten returns the forest as a single depth-first list, each parent before
// its own descendants. Used to populate parent-selector dropdowns.
func Flatten(forest []*navigation.Item) []*navigation.Item {
	var out []*navigation.Item
	var walk func(items []*navigation.Item)
	walk = func(items []*navigation.Item) {
		for _, item := range items {
			out = append(out, item)
			walk(item.Children)
		}
	}
	walk(forest)
	return out
}

// NextOrder returns the display order for a new sibling under parentID
// (roots when parentID is nil): 1 when there are no siblings, else max+1.
func NextOrder(forest []*navigation.Item, parentID *uuid.UUID) int {
	maxOrder := 0
	found := false
	for _, item := range Flatten(forest) {
		if !sameParent(item.ParentID, parentID) {
			continue
		}
		found = true
		if item.Order > maxOrder {
			maxOrder = item.Order
		}
	}
	if !found {
		return 1
	}
	return maxOrder + 1
}

// Siblings returns the members of forest sharing parentID, in forest order.
func Siblings(forest []*navigation.Item, parentID *uuid.UUID) []*navigation.Item {
	var out []*navigation.Item
	for _, item := range Flatten(forest) {
		if sameParent(item.ParentID, parentID) {
			out = append(out, item)
		}
	}
	return out
}

// SwapOrders exchanges the two items' order values in memory. Persisting both
// rows is the caller's job.
func SwapOrders(a, b *navigation.Item) {
	a.Order, b.Order = b.Order, a.Order
}

func sameParent(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
