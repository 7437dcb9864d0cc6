package engine

import (
	"testing"

	"github.com/ChizhovVadim/CounterOthello/pkg/common"
)

type testPosition struct {
	board common.Board
	side  common.Color
}

// playout walks a fixed line from b, passing when the side to move is stuck.
func playout(b common.Board, side common.Color, plies, seed int) testPosition {
	var buffer [common.MaxMoves]common.Move
	for ply := 0; ply < plies; ply++ {
		var ml = b.GenerateMoves(side, buffer[:])
		if len(ml) == 0 {
			if !b.HasMoves(side.Opponent()) {
				break
			}
			side = side.Opponent()
			continue
		}
		b = b.MakeMove(side, ml[(ply*seed+3)%len(ml)])
		side = side.Opponent()
	}
	return testPosition{board: b, side: side}
}

func testPositions(t *testing.T) []testPosition {
	var result []testPosition
	for _, plies := range []int{0, 3, 8, 15, 24} {
		result = append(result, playout(common.InitialBoard, common.Dark, plies, 7))
	}
	for _, size := range []int{6, 4} {
		var b, err = common.NewBoard(size)
		if err != nil {
			t.Fatal(err)
		}
		for _, plies := range []int{0, 5, 12} {
			result = append(result, playout(b, common.Dark, plies, 5))
		}
	}
	return result
}

func search(options Options, p testPosition) SearchInfo {
	return NewEngine(options).Search(SearchParams{Board: p.board, Side: p.side})
}

func TestSearchEquivalence(t *testing.T) {
	var configs = []Options{
		{Algorithm: Minimax, Caching: true},
		{Algorithm: Minimax, Caching: true, StrictCache: true},
		{Algorithm: AlphaBeta},
		{Algorithm: AlphaBeta, Ordering: true},
		{Algorithm: AlphaBeta, Caching: true, StrictCache: true},
		{Algorithm: AlphaBeta, Caching: true, StrictCache: true, Ordering: true},
	}
	for i, p := range testPositions(t) {
		for depth := 0; depth <= 4; depth++ {
			var want = search(Options{Algorithm: Minimax, Depth: depth}, p)
			if !p.board.IsLegal(p.side, want.Move) && want.Move != common.MoveEmpty {
				t.Fatal(i, depth, "illegal move", want.Move)
			}
			for _, options := range configs {
				options.Depth = depth
				var got = search(options, p)
				if got.Score != want.Score {
					t.Error(i, depth, options, got.Score, want.Score)
				}
			}
		}
	}
}

func TestOrderingReducesNodes(t *testing.T) {
	var p = playout(common.InitialBoard, common.Dark, 15, 7)
	var plain = search(Options{Algorithm: AlphaBeta, Depth: 4}, p)
	var minimax = search(Options{Algorithm: Minimax, Depth: 4}, p)
	if plain.Nodes > minimax.Nodes {
		t.Error("alpha-beta searched more nodes than minimax", plain.Nodes, minimax.Nodes)
	}
	if plain.Cutoffs == 0 {
		t.Error("no cutoffs")
	}
}

func TestSearchDeterministic(t *testing.T) {
	for _, p := range testPositions(t) {
		for _, options := range []Options{
			{Algorithm: Minimax, Depth: 3},
			{Algorithm: AlphaBeta, Depth: 3, Ordering: true},
		} {
			var eng = NewEngine(options)
			var first = eng.Search(SearchParams{Board: p.board, Side: p.side})
			var second = eng.Search(SearchParams{Board: p.board, Side: p.side})
			if first.Move != second.Move || first.Score != second.Score ||
				first.Nodes != second.Nodes {
				t.Error(options, first, second)
			}
		}
	}
}

func TestDepthZeroIsGreedy(t *testing.T) {
	var buffer [common.MaxMoves]common.Move
	for i, p := range testPositions(t) {
		var ml = p.board.GenerateMoves(p.side, buffer[:])
		if len(ml) == 0 {
			continue
		}
		var bestMove, best = common.MoveEmpty, -valueInfinity
		for _, move := range ml {
			var child = p.board.MakeMove(p.side, move)
			if score := ComputeUtility(&child, p.side); score > best {
				bestMove, best = move, score
			}
		}
		var eng = NewEngine(NewOptions())
		if move := eng.SelectMoveMinimax(p.board, p.side, 0, false); move != bestMove {
			t.Error(i, "minimax", move, bestMove)
		}
		if move := eng.SelectMoveAlphaBeta(p.board, p.side, 0, false, false); move != bestMove {
			t.Error(i, "alphabeta", move, bestMove)
		}
		if move := eng.SelectMoveAlphaBeta(p.board, p.side, 0, true, true); move != bestMove {
			t.Error(i, "alphabeta cached ordered", move, bestMove)
		}
	}
}

func TestNoLegalMoves(t *testing.T) {
	var b, err = common.ParseBoard("[[1, 1, 1, 1], [1, 1, 1, 1], [1, 1, 2, 2], [0, 0, 0, 0]]")
	if err != nil {
		t.Fatal(err)
	}
	for _, options := range []Options{
		{Algorithm: Minimax, Depth: 3},
		{Algorithm: AlphaBeta, Depth: 3, Caching: true, Ordering: true},
		{Algorithm: AlphaBeta, Depth: -1},
	} {
		var si = NewEngine(options).Search(SearchParams{Board: b, Side: common.Light})
		if si.Move != common.MoveEmpty {
			t.Error(options, si.Move)
		}
		if si.Score != ComputeUtility(&b, common.Light) {
			t.Error(options, si.Score)
		}
	}
	var eng = NewEngine(NewOptions())
	if move := eng.SelectMoveMinimax(common.Board{}, common.Dark, 2, true); move != common.MoveEmpty {
		t.Error("empty board", move)
	}
}

func TestOpeningMove(t *testing.T) {
	var buffer [common.MaxMoves]common.Move
	var b = common.InitialBoard
	var ml = b.GenerateMoves(common.Dark, buffer[:])
	var si = NewEngine(Options{Algorithm: AlphaBeta, Depth: 1}).
		Search(SearchParams{Board: b, Side: common.Dark})
	var found = false
	for _, move := range ml {
		if move == si.Move {
			found = true
		}
	}
	if !found {
		t.Fatal("not an opening move", si.Move)
	}
	var child = b.MakeMove(common.Dark, si.Move)
	if want := ComputeUtility(&child, common.Dark); si.Score != want {
		t.Error(si.Score, want)
	}
	if si.Score != 3 {
		t.Error("unexpected disk swing", si.Score)
	}
}

func TestUnlimitedDepth(t *testing.T) {
	var b, err = common.NewBoard(4)
	if err != nil {
		t.Fatal(err)
	}
	var p = testPosition{board: b, side: common.Dark}
	var minimax = search(Options{Algorithm: Minimax, Depth: -1}, p)
	if minimax.Depth != depthInfinite {
		t.Error(minimax.Depth)
	}
	if minimax.Move == common.MoveEmpty {
		t.Fatal("no move")
	}
	for _, options := range []Options{
		{Algorithm: AlphaBeta, Depth: -1},
		{Algorithm: AlphaBeta, Depth: -1, Ordering: true},
		{Algorithm: AlphaBeta, Depth: -5, Caching: true, StrictCache: true},
		{Algorithm: Minimax, Depth: -1, Caching: true},
	} {
		var si = search(options, p)
		if si.Score != minimax.Score {
			t.Error(options, si.Score, minimax.Score)
		}
	}
	// a deep but finite limit reaches the same leaves
	if si := search(Options{Algorithm: Minimax, Depth: 20}, p); si.Score != minimax.Score {
		t.Error(si.Score, minimax.Score)
	}
}

func TestCacheClearedBetweenSearches(t *testing.T) {
	var p = playout(common.InitialBoard, common.Dark, 8, 7)
	var eng = NewEngine(Options{Algorithm: AlphaBeta, Depth: 4, Caching: true})
	var deep = eng.Search(SearchParams{Board: p.board, Side: p.side})
	if deep.CacheSize == 0 {
		t.Fatal("nothing cached")
	}
	eng.Options.Depth = 2
	var shallow = eng.Search(SearchParams{Board: p.board, Side: p.side})
	var fresh = NewEngine(eng.Options).Search(SearchParams{Board: p.board, Side: p.side})
	if shallow.Move != fresh.Move || shallow.Score != fresh.Score ||
		shallow.Nodes != fresh.Nodes || shallow.CacheSize != fresh.CacheSize {
		t.Error(shallow, fresh)
	}
	eng.Clear()
	if eng.transTable.Size() != 0 {
		t.Error("Clear left entries")
	}
}

func TestCachingSavesNodes(t *testing.T) {
	var p = playout(common.InitialBoard, common.Dark, 8, 7)
	var plain = search(Options{Algorithm: Minimax, Depth: 4}, p)
	var cached = search(Options{Algorithm: Minimax, Depth: 4, Caching: true}, p)
	if cached.Nodes > plain.Nodes {
		t.Error(cached.Nodes, plain.Nodes)
	}
	if cached.Score != plain.Score {
		t.Error(cached.Score, plain.Score)
	}
}
