package internal

import (
	"strconv"
	"strings"
)

// lineSep separates the line number from the line in -n output.
const lineSep = " : "

// forEachMatch calls fn for every line of content accepted by p, in order.
// idx is zero-based. Lines end at "\n" or "\r\n"; a trailing terminator
// does not start a new line. It returns the number of lines scanned.
func forEachMatch(content string, p Pattern, fn func(idx int, line string)) int {
	idx := 0
	for len(content) > 0 {
		var line string
		if i := strings.IndexByte(content, '\n'); i >= 0 {
			line = strings.TrimSuffix(content[:i], "\r")
			content = content[i+1:]
		} else {
			line = content
			content = ""
		}
		if p.Match(line) {
			fn(idx, line)
		}
		idx++
	}
	return idx
}

// CountMatches returns how many lines of content satisfy cfg.
func CountMatches(cfg Config, content string) int {
	total, _ := countMatches(cfg, content)
	return total
}

// SearchMatches returns the lines of content satisfying cfg, in file order,
// formatted as "<N> : <line>" when cfg.LineNumber is set.
func SearchMatches(cfg Config, content string) []string {
	out, _ := searchMatches(cfg, content)
	return out
}

func countMatches(cfg Config, content string) (total, scanned int) {
	scanned = forEachMatch(content, PatternFor(cfg), func(int, string) { total++ })
	return total, scanned
}

func searchMatches(cfg Config, content string) (out []string, scanned int) {
	out = []string{}
	scanned = forEachMatch(content, PatternFor(cfg), func(idx int, line string) {
		if cfg.LineNumber {
			line = strconv.Itoa(idx+1) + lineSep + line
		}
		out = append(out, line)
	})
	return out, scanned
}
