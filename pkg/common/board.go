package common

import (
	"errors"
	"strconv"
	"strings"
)

type Color int8

const (
	Empty Color = iota
	Dark        // player one, moves first
	Light       // player two
)

func (c Color) Opponent() Color {
	if c == Dark {
		return Light
	}
	return Dark
}

func (c Color) String() string {
	switch c {
	case Dark:
		return "dark"
	case Light:
		return "light"
	}
	return "empty"
}

var ErrBadBoard = errors.New("bad board")

// Board is an immutable value. Boards with the same disks are equal under ==
// and may be used as map keys.
type Board struct {
	dark, light uint64
	size        int8
}

// NewBoard returns the starting position: two disks of each color on the
// central diagonals, light on the main diagonal.
func NewBoard(size int) (Board, error) {
	if size < MinSize || size > MaxSize || size%2 != 0 {
		return Board{}, ErrBadBoard
	}
	var i, j = size/2 - 1, size / 2
	return Board{
		size:  int8(size),
		light: SquareMask(i, i) | SquareMask(j, j),
		dark:  SquareMask(j, i) | SquareMask(i, j),
	}, nil
}

var InitialBoard, _ = NewBoard(MaxSize)

func (b *Board) Size() int {
	return int(b.size)
}

func (b *Board) Cell(column, row int) Color {
	var mask = SquareMask(column, row)
	if b.dark&mask != 0 {
		return Dark
	}
	if b.light&mask != 0 {
		return Light
	}
	return Empty
}

func (b *Board) disks(side Color) uint64 {
	if side == Dark {
		return b.dark
	}
	return b.light
}

// Score returns the number of disks of each player.
func (b *Board) Score() (dark, light int) {
	return PopCount(b.dark), PopCount(b.light)
}

// String renders the board as a list of rows, the same literal ParseBoard reads.
func (b *Board) String() string {
	var sb = &strings.Builder{}
	sb.WriteString("[")
	for row := 0; row < b.Size(); row++ {
		if row > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("[")
		for column := 0; column < b.Size(); column++ {
			if column > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.Itoa(int(b.Cell(column, row))))
		}
		sb.WriteString("]")
	}
	sb.WriteString("]")
	return sb.String()
}
