package common

import (
	"fmt"
)

// ParseBoard reads a board written as a list of rows, for example
// "[[0, 1], [2, 0]]". Tuples and trailing commas are accepted too.
// Cells are 0 (empty), 1 (dark) and 2 (light).
func ParseBoard(s string) (Board, error) {
	var p = &literalParser{s: s}
	var rows [][]int
	var err = p.list(func() error {
		var row []int
		var err = p.list(func() error {
			var cell, err = p.number()
			if err != nil {
				return err
			}
			row = append(row, cell)
			return nil
		})
		if err != nil {
			return err
		}
		rows = append(rows, row)
		return nil
	})
	if err != nil {
		return Board{}, err
	}
	p.skipSpaces()
	if p.pos != len(p.s) {
		return Board{}, p.errorf("unexpected trailing input")
	}

	var size = len(rows)
	if size == 0 || size > MaxSize {
		return Board{}, fmt.Errorf("%w: size %v", ErrBadBoard, size)
	}
	var b = Board{size: int8(size)}
	for row := range rows {
		if len(rows[row]) != size {
			return Board{}, fmt.Errorf("%w: row %v has %v cells, want %v",
				ErrBadBoard, row, len(rows[row]), size)
		}
		for column, cell := range rows[row] {
			switch Color(cell) {
			case Empty:
			case Dark:
				b.dark |= SquareMask(column, row)
			case Light:
				b.light |= SquareMask(column, row)
			default:
				return Board{}, fmt.Errorf("%w: cell (%v, %v) = %v",
					ErrBadBoard, column, row, cell)
			}
		}
	}
	return b, nil
}

type literalParser struct {
	s   string
	pos int
}

func (p *literalParser) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format+" at offset %v",
		append(append([]interface{}{ErrBadBoard}, args...), p.pos)...)
}

func (p *literalParser) skipSpaces() {
	for p.pos < len(p.s) {
		switch p.s[p.pos] {
		case ' ', '\t', '\r', '\n':
			p.pos++
		default:
			return
		}
	}
}

func (p *literalParser) peek() byte {
	if p.pos >= len(p.s) {
		return 0
	}
	return p.s[p.pos]
}

// list parses a bracketed, comma separated sequence, calling item for
// every element.
func (p *literalParser) list(item func() error) error {
	p.skipSpaces()
	var closing byte
	switch p.peek() {
	case '[':
		closing = ']'
	case '(':
		closing = ')'
	default:
		return p.errorf("expected '[' or '('")
	}
	p.pos++
	for {
		p.skipSpaces()
		if p.peek() == closing {
			p.pos++
			return nil
		}
		if err := item(); err != nil {
			return err
		}
		p.skipSpaces()
		switch p.peek() {
		case ',':
			p.pos++
		case closing:
			p.pos++
			return nil
		default:
			return p.errorf("expected ',' or '%c'", closing)
		}
	}
}

func (p *literalParser) number() (int, error) {
	p.skipSpaces()
	var start = p.pos
	var value = 0
	for p.pos < len(p.s) && '0' <= p.s[p.pos] && p.s[p.pos] <= '9' {
		value = 10*value + int(p.s[p.pos]-'0')
		if value > 9 {
			return 0, p.errorf("cell value too large")
		}
		p.pos++
	}
	if p.pos == start {
		return 0, p.errorf("expected digit")
	}
	return value, nil
}
