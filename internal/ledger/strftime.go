package ledger

import (
	"strings"
	"time"
)

// strftime directives with a clean Go reference-time equivalent. Unknown
// directives pass through verbatim so a bad pattern degrades visibly in the
// output instead of being swallowed.
var strftimeTable = map[byte]string{
	'Y': "2006",
	'y': "06",
	'm': "01",
	'd': "02",
	'e': "_2",
	'b': "Jan",
	'B': "January",
	'a': "Mon",
	'A': "Monday",
	'H': "15",
	'M': "04",
	'S': "05",
	'p': "PM",
	'j': "002",
	'Z': "MST",
	'z': "-0700",
}

// strftime formats t according to a strftime-style pattern. Each directive
// is formatted on its own and literal text is copied through untouched, so
// pattern text that happens to look like a Go layout token ("15", "Jan")
// stays literal.
func strftime(t time.Time, pattern string) string {
	var b strings.Builder
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '%' || i+1 == len(pattern) {
			b.WriteByte(pattern[i])
			continue
		}
		i++
		c := pattern[i]
		if c == '%' {
			b.WriteByte('%')
			continue
		}
		if layout, ok := strftimeTable[c]; ok {
			b.WriteString(t.Format(layout))
		} else {
			b.WriteByte('%')
			b.WriteByte(c)
		}
	}
	return b.String()
}
