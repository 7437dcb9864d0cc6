package engine

import (
	"github.com/ChizhovVadim/CounterOthello/pkg/common"
)

const (
	boundLower = 1 << iota
	boundUpper
)

const boundExact = boundLower | boundUpper

type transEntry struct {
	move  common.Move
	score int
	depth int
	bound int
}

// transTable maps a board to the result of searching it. Entries are only
// meaningful within one top-level search: the key holds neither the
// remaining depth nor the window the value was found with.
type transTable struct {
	entries map[common.Board]transEntry
}

func newTransTable() *transTable {
	return &transTable{
		entries: make(map[common.Board]transEntry),
	}
}

func (tt *transTable) Size() int {
	return len(tt.entries)
}

func (tt *transTable) Clear() {
	clear(tt.entries)
}

func (tt *transTable) Read(b *common.Board) (depth, score, bound int, move common.Move, ok bool) {
	var entry transEntry
	entry, ok = tt.entries[*b]
	if ok {
		depth = entry.depth
		score = entry.score
		bound = entry.bound
		move = entry.move
	}
	return
}

func (tt *transTable) Update(b *common.Board, depth, score, bound int, move common.Move) {
	tt.entries[*b] = transEntry{
		move:  move,
		score: score,
		depth: depth,
		bound: bound,
	}
}

func boundFor(score, alpha, beta int) int {
	if score <= alpha {
		return boundUpper
	}
	if score >= beta {
		return boundLower
	}
	return boundExact
}
