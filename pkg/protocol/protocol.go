package protocol

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/ChizhovVadim/CounterOthello/pkg/common"
	"github.com/ChizhovVadim/CounterOthello/pkg/engine"
)

type Engine interface {
	Clear()
	Search(searchParams engine.SearchParams) engine.SearchInfo
}

// Protocol talks to the game manager. Moves go to out, everything else to
// the logger passed to Run.
type Protocol struct {
	name    string
	engine  Engine
	options *engine.Options
	scanner *bufio.Scanner
	out     io.Writer
	color   common.Color
}

// New returns a protocol that configures options from the handshake line.
// options is expected to be the Options of eng.
func New(name string, eng Engine, options *engine.Options,
	in io.Reader, out io.Writer) *Protocol {
	return &Protocol{
		name:    name,
		engine:  eng,
		options: options,
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// Run plays until the manager sends FINAL or closes the input.
func (p *Protocol) Run(logger *log.Logger) error {
	fmt.Fprintln(p.out, p.name)

	var line, ok = p.readLine()
	if !ok {
		return p.inputError("handshake")
	}
	if err := p.handshake(line); err != nil {
		return err
	}
	p.logSettings(logger)
	p.engine.Clear()

	for {
		line, ok = p.readLine()
		if !ok {
			return p.scanner.Err()
		}
		var status, dark, light, err = parseStatus(line)
		if err != nil {
			return err
		}
		if status == "FINAL" {
			logger.Println("game over", "dark", dark, "light", light)
			return nil
		}

		line, ok = p.readLine()
		if !ok {
			return p.inputError("board")
		}
		b, err := common.ParseBoard(line)
		if err != nil {
			return errors.Wrapf(err, "parse board %q", line)
		}

		var si = p.engine.Search(engine.SearchParams{
			Board: b,
			Side:  p.color,
		})
		logger.Println(si)
		fmt.Fprintln(p.out, si.Move)
	}
}

func (p *Protocol) readLine() (string, bool) {
	if !p.scanner.Scan() {
		return "", false
	}
	return p.scanner.Text(), true
}

func (p *Protocol) inputError(expected string) error {
	if err := p.scanner.Err(); err != nil {
		return errors.Wrapf(err, "read %v", expected)
	}
	return errors.Errorf("unexpected end of input, expected %v", expected)
}

// handshake reads "color,limit,minimax,caching,ordering".
func (p *Protocol) handshake(line string) error {
	var fields = strings.Split(strings.TrimSpace(line), ",")
	if len(fields) != 5 {
		return errors.Errorf("handshake %q: want 5 fields, got %v", line, len(fields))
	}
	var values [5]int
	for i, field := range fields {
		var value, err = strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return errors.Wrapf(err, "handshake %q: field %v", line, i+1)
		}
		values[i] = value
	}
	switch common.Color(values[0]) {
	case common.Dark, common.Light:
		p.color = common.Color(values[0])
	default:
		return errors.Errorf("handshake %q: bad color %v", line, values[0])
	}
	p.options.Depth = values[1]
	if values[2] == 1 {
		p.options.Algorithm = engine.Minimax
	} else {
		p.options.Algorithm = engine.AlphaBeta
	}
	p.options.Caching = values[3] == 1
	p.options.Ordering = values[4] == 1
	return nil
}

func (p *Protocol) logSettings(logger *log.Logger) {
	var o = p.options
	logger.Println("color", p.color)
	logger.Println("algorithm", o.Algorithm)
	logger.Println("caching", o.Caching, "strictcache", o.StrictCache)
	logger.Println("ordering", o.Ordering)
	if o.Depth < 0 {
		logger.Println("depth limit off")
	} else {
		logger.Println("depth limit", o.Depth)
	}
	if o.Algorithm == engine.Minimax && o.Ordering {
		logger.Println("ordering has no effect on minimax")
	}
}

// parseStatus reads "<STATUS> <dark> <light>".
func parseStatus(line string) (status string, dark, light int, err error) {
	var fields = strings.Fields(line)
	if len(fields) != 3 {
		err = errors.Errorf("status %q: want 3 fields, got %v", line, len(fields))
		return
	}
	status = fields[0]
	if dark, err = strconv.Atoi(fields[1]); err != nil {
		err = errors.Wrapf(err, "status %q: dark score", line)
		return
	}
	if light, err = strconv.Atoi(fields[2]); err != nil {
		err = errors.Wrapf(err, "status %q: light score", line)
		return
	}
	return
}
