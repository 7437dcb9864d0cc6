package arena

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/ChizhovVadim/CounterOthello/pkg/engine"
)

// ParseOptions reads an engine configuration such as
// "minimax,cache,depth=4". Unnamed settings keep their defaults.
func ParseOptions(s string) (engine.Options, error) {
	var options = engine.NewOptions()
	for _, token := range strings.Split(s, ",") {
		token = strings.TrimSpace(token)
		var key, value, hasValue = strings.Cut(token, "=")
		switch key {
		case "":
		case "alphabeta", "ab":
			options.Algorithm = engine.AlphaBeta
		case "minimax", "mm":
			options.Algorithm = engine.Minimax
		case "cache":
			options.Caching = true
		case "strict":
			options.Caching = true
			options.StrictCache = true
		case "nocache":
			options.Caching = false
			options.StrictCache = false
		case "order":
			options.Ordering = true
		case "noorder":
			options.Ordering = false
		case "depth":
			if !hasValue {
				return engine.Options{}, errors.Errorf("engine options %q: depth needs a value", s)
			}
			var depth, err = strconv.Atoi(value)
			if err != nil {
				return engine.Options{}, errors.Wrapf(err, "engine options %q", s)
			}
			options.Depth = depth
		default:
			return engine.Options{}, errors.Errorf("engine options %q: unknown setting %q", s, token)
		}
	}
	return options, nil
}
