package common

import (
	"errors"
	"testing"
)

const initialLiteral = "[[0, 0, 0, 0, 0, 0, 0, 0], [0, 0, 0, 0, 0, 0, 0, 0], " +
	"[0, 0, 0, 0, 0, 0, 0, 0], [0, 0, 0, 2, 1, 0, 0, 0], " +
	"[0, 0, 0, 1, 2, 0, 0, 0], [0, 0, 0, 0, 0, 0, 0, 0], " +
	"[0, 0, 0, 0, 0, 0, 0, 0], [0, 0, 0, 0, 0, 0, 0, 0]]"

func TestInitialBoard(t *testing.T) {
	if s := InitialBoard.String(); s != initialLiteral {
		t.Fatal(s)
	}
	var b, err = ParseBoard(initialLiteral)
	if err != nil {
		t.Fatal(err)
	}
	if b != InitialBoard {
		t.Error("parsed board differs from initial board")
	}
	if dark, light := b.Score(); dark != 2 || light != 2 {
		t.Error(dark, light)
	}
}

func TestGenerateMovesOrder(t *testing.T) {
	var buffer [MaxMoves]Move
	var ml = InitialBoard.GenerateMoves(Dark, buffer[:])
	var want = []Move{NewMove(2, 3), NewMove(3, 2), NewMove(4, 5), NewMove(5, 4)}
	if len(ml) != len(want) {
		t.Fatal(ml)
	}
	for i := range want {
		if ml[i] != want[i] {
			t.Error(i, ml[i], want[i])
		}
	}
}

func TestMakeMove(t *testing.T) {
	var move = NewMove(2, 3)
	if !InitialBoard.IsLegal(Dark, move) {
		t.Fatal("opening move is not legal")
	}
	var child = InitialBoard.MakeMove(Dark, move)
	if dark, light := child.Score(); dark != 4 || light != 1 {
		t.Error(dark, light)
	}
	if child.Cell(3, 3) != Dark || child.Cell(2, 3) != Dark {
		t.Error(child.String())
	}
	if InitialBoard.Cell(3, 3) != Light {
		t.Error("parent board was modified")
	}
	if child == InitialBoard {
		t.Error("child equals parent")
	}
	var again = InitialBoard.MakeMove(Dark, move)
	if child != again {
		t.Error("equal boards compare unequal")
	}
}

func TestIsLegal(t *testing.T) {
	var tests = []struct {
		move Move
		want bool
	}{
		{NewMove(2, 3), true},
		{NewMove(3, 3), false},
		{NewMove(0, 0), false},
		{MoveEmpty, false},
	}
	for _, test := range tests {
		if got := InitialBoard.IsLegal(Dark, test.move); got != test.want {
			t.Error(test.move, got)
		}
	}
}

func TestSmallBoard(t *testing.T) {
	var b, err = NewBoard(4)
	if err != nil {
		t.Fatal(err)
	}
	if s := b.String(); s != "[[0, 0, 0, 0], [0, 2, 1, 0], [0, 1, 2, 0], [0, 0, 0, 0]]" {
		t.Error(s)
	}
	var buffer [MaxMoves]Move
	if ml := b.GenerateMoves(Light, buffer[:]); len(ml) != 4 {
		t.Error(ml)
	}
	for _, size := range []int{0, 2, 5, 10} {
		if _, err := NewBoard(size); !errors.Is(err, ErrBadBoard) {
			t.Error(size, err)
		}
	}
}

func TestGameOver(t *testing.T) {
	var b, err = ParseBoard("[[1, 1, 1, 1], [1, 1, 1, 1], [1, 1, 2, 2], [0, 0, 0, 0]]")
	if err != nil {
		t.Fatal(err)
	}
	if b.HasMoves(Light) {
		t.Error("light has moves")
	}
	if !b.HasMoves(Dark) {
		t.Error("dark has no moves")
	}
	if b.IsGameOver() {
		t.Error("game over")
	}
	full, err := ParseBoard("[[1, 2], [2, 1]]")
	if err != nil {
		t.Fatal(err)
	}
	if !full.IsGameOver() {
		t.Error("full board is not game over")
	}
}

func TestParseBoard(t *testing.T) {
	var tests = []struct {
		literal string
		ok      bool
	}{
		{"[[0, 1], [2, 0]]", true},
		{"((0, 1), (2, 0))", true},
		{"((0, 1,), (2, 0,),)", true},
		{"  [[0,1],[2,0]]  \n", true},
		{"", false},
		{"[]", false},
		{"[[0, 1], [2]]", false},
		{"[[0, 3], [2, 0]]", false},
		{"[[0, 1], [2, 0]] x", false},
		{"[[0, 1], [2, 0)]", false},
		{"[[0, 12], [2, 0]]", false},
		{"[[0 1], [2, 0]]", false},
	}
	for _, test := range tests {
		var b, err = ParseBoard(test.literal)
		if test.ok {
			if err != nil {
				t.Error(test.literal, err)
				continue
			}
			if b.Cell(1, 0) != Dark || b.Cell(0, 1) != Light || b.Cell(0, 0) != Empty {
				t.Error(test.literal, b.String())
			}
		} else if !errors.Is(err, ErrBadBoard) {
			t.Error(test.literal, err)
		}
	}
}

func TestMoveString(t *testing.T) {
	if s := NewMove(5, 4).String(); s != "5 4" {
		t.Error(s)
	}
	if s := MoveEmpty.String(); s != "-1 -1" {
		t.Error(s)
	}
	var m = NewMove(7, 6)
	if m.Column() != 7 || m.Row() != 6 {
		t.Error(m.Column(), m.Row())
	}
}
