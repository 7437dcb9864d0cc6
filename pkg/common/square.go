package common

import (
	"fmt"
	"math/bits"
)

const (
	MinSize  = 4
	MaxSize  = 8
	MaxMoves = MaxSize * MaxSize
)

const (
	ColumnAMask uint64 = 0x0101010101010101 << iota
	ColumnBMask
	ColumnCMask
	ColumnDMask
	ColumnEMask
	ColumnFMask
	ColumnGMask
	ColumnHMask
)

// Move is a square index row*8+column. Boards smaller than MaxSize use the
// same stride so a move keeps its meaning on every board size.
type Move int8

const MoveEmpty = Move(-1)

func NewMove(column, row int) Move {
	return Move(row<<3 | column)
}

func (m Move) Column() int {
	return int(m) & 7
}

func (m Move) Row() int {
	return int(m) >> 3
}

func (m Move) String() string {
	if m == MoveEmpty {
		return "-1 -1"
	}
	return fmt.Sprintf("%v %v", m.Column(), m.Row())
}

func SquareMask(column, row int) uint64 {
	return 1 << uint(row<<3|column)
}

func PopCount(b uint64) int {
	return bits.OnesCount64(b)
}

func up(b uint64) uint64 {
	return b << 8
}

func down(b uint64) uint64 {
	return b >> 8
}

func right(b uint64) uint64 {
	return (b &^ ColumnHMask) << 1
}

func left(b uint64) uint64 {
	return (b &^ ColumnAMask) >> 1
}

func upRight(b uint64) uint64 {
	return up(right(b))
}

func upLeft(b uint64) uint64 {
	return up(left(b))
}

func downRight(b uint64) uint64 {
	return down(right(b))
}

func downLeft(b uint64) uint64 {
	return down(left(b))
}

var directions = [...]func(uint64) uint64{
	up, down, right, left, upRight, upLeft, downRight, downLeft,
}

// boardMasks[n] has the bits of an n*n board set.
var boardMasks [MaxSize + 1]uint64

func init() {
	for size := 1; size <= MaxSize; size++ {
		var mask uint64
		for row := 0; row < size; row++ {
			for column := 0; column < size; column++ {
				mask |= SquareMask(column, row)
			}
		}
		boardMasks[size] = mask
	}
}
