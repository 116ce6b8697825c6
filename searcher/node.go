package searcher

import (
	"math"

	"blokus/game"
)

// node is a search-tree node. Each node owns its state and its children; the
// parent pointer is a non-owning back-reference used only for upward
// traversal during backup, so dropping a root releases the whole subtree.
// The search loop is sequential per simulation (strict PUCT), so nodes carry
// no locks.
type node struct {
	state    *game.GameState
	parent   *node
	action   Action
	move     game.Move
	children map[Action]*node
	priors   map[Action]float64
	visits   int
	valueSum float64
	expanded bool
}

func newNode(parent *node, action Action, move game.Move, state *game.GameState) *node {
	return &node{
		state:  state,
		parent: parent,
		action: action,
		move:   move,
	}
}

func (n *node) meanValue() float64 {
	if n.visits == 0 {
		return 0
	}
	return n.valueSum / float64(n.visits)
}

// bestChild returns the child maximizing the PUCT score
//
//	mean + cPuct * prior * sqrt(parentVisits) / (1 + childVisits)
//
// An unvisited child scores unbounded so every child is tried once before
// any revisit.
func (n *node) bestChild(cPuct float64) *node {
	var best *node
	bestScore := math.Inf(-1)
	for action, child := range n.children {
		if child.visits == 0 {
			return child
		}
		exploration := cPuct * n.priors[action] *
			math.Sqrt(float64(n.visits)) / float64(1+child.visits)
		if score := child.meanValue() + exploration; score > bestScore {
			bestScore = score
			best = child
		}
	}
	return best
}

// backup adds the same unmodified scalar at every node from n up to the
// root. No sign flip or perspective rotation happens between plies; see the
// package documentation for why this multi-player simplification stands.
func (n *node) backup(value float64) {
	for cur := n; cur != nil; cur = cur.parent {
		cur.visits++
		cur.valueSum += value
	}
}

// detach makes n a root: the parent edge is severed from both sides so the
// old tree above and beside n becomes unreachable and is collected.
func (n *node) detach() {
	if n.parent != nil {
		delete(n.parent.children, n.action)
		n.parent = nil
	}
}
