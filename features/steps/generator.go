package steps

import (
	"fmt"
	"strconv"
	"strings"
)

// expandElements turns the elements column of a dimension table into
// element names. Items are comma separated and an item of the form
// "from..to" expands to every integer in the closed range.
func expandElements(s string) ([]string, error) {
	var names []string
	for _, item := range splitList(s) {
		from, to, ok := strings.Cut(item, "..")
		if !ok {
			names = append(names, item)
			continue
		}
		first, err := strconv.Atoi(from)
		if err != nil {
			return nil, fmt.Errorf("invalid range %q: %w", item, err)
		}
		last, err := strconv.Atoi(to)
		if err != nil {
			return nil, fmt.Errorf("invalid range %q: %w", item, err)
		}
		for i := first; i <= last; i++ {
			names = append(names, strconv.Itoa(i))
		}
	}
	return names, nil
}
