package common

// flips returns the opponent disks turned over when side plays on square.
func (b *Board) flips(side Color, square uint64) uint64 {
	var mask = boardMasks[b.size]
	var own, opp = b.disks(side), b.disks(side.Opponent())
	var result uint64
	for _, shift := range directions {
		var line uint64
		var x = shift(square) & mask
		for x&opp != 0 {
			line |= x
			x = shift(x) & mask
		}
		if x&own != 0 {
			result |= line
		}
	}
	return result
}

// GenerateMoves appends the legal moves of side to buffer. Moves are
// enumerated column by column, top to bottom within a column.
func (b *Board) GenerateMoves(side Color, buffer []Move) []Move {
	var count = 0
	var occupied = b.dark | b.light
	for column := 0; column < b.Size(); column++ {
		for row := 0; row < b.Size(); row++ {
			var square = SquareMask(column, row)
			if occupied&square != 0 {
				continue
			}
			if b.flips(side, square) != 0 {
				buffer[count] = NewMove(column, row)
				count++
			}
		}
	}
	return buffer[:count]
}

func (b *Board) HasMoves(side Color) bool {
	var buffer [MaxMoves]Move
	return len(b.GenerateMoves(side, buffer[:])) != 0
}

func (b *Board) IsGameOver() bool {
	return !b.HasMoves(Dark) && !b.HasMoves(Light)
}

func (b *Board) IsLegal(side Color, move Move) bool {
	if move == MoveEmpty {
		return false
	}
	var column, row = move.Column(), move.Row()
	if column >= b.Size() || row >= b.Size() {
		return false
	}
	var square = SquareMask(column, row)
	if (b.dark|b.light)&square != 0 {
		return false
	}
	return b.flips(side, square) != 0
}

// MakeMove returns a new board with move played by side. The result is
// unspecified for illegal moves.
func (b *Board) MakeMove(side Color, move Move) Board {
	var square = SquareMask(move.Column(), move.Row())
	var flipped = b.flips(side, square)
	var child = *b
	if side == Dark {
		child.dark |= square | flipped
		child.light &^= flipped
	} else {
		child.light |= square | flipped
		child.dark &^= flipped
	}
	return child
}
