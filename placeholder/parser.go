package placeholder

import "strings"

const (
	tokenOpen  = "${"
	tokenClose = '}'
	defaultSep = '?'
)

// expression is one parsed ${keyPath[?defaultText]} token.
type expression struct {
	key        string // taken verbatim, no trimming
	def        string // raw default text, may contain nested tokens
	hasDefault bool
	raw        string // original source text including the markers
}

// segment is a literal run or a placeholder token.
type segment struct {
	literal string
	expr    expression
	isExpr  bool
}

// parse splits raw into literal segments interleaved with placeholder
// tokens. Brace depth is tracked so a default containing nested tokens
// does not terminate the outer token, and the first '?' at depth one
// separates the key path from the default text. An unterminated "${" is
// literal text from the opening marker to the end of the string; parsing
// never fails.
func parse(raw string) []segment {
	var segs []segment
	for len(raw) > 0 {
		open := strings.Index(raw, tokenOpen)
		if open < 0 {
			segs = append(segs, segment{literal: raw})
			break
		}
		if open > 0 {
			segs = append(segs, segment{literal: raw[:open]})
		}

		depth := 1
		sep := -1
		i := open + len(tokenOpen)
		for i < len(raw) && depth > 0 {
			switch {
			case strings.HasPrefix(raw[i:], tokenOpen):
				depth++
				i += len(tokenOpen)
			case raw[i] == tokenClose:
				depth--
				i++
			case raw[i] == defaultSep && depth == 1 && sep < 0:
				sep = i
				i++
			default:
				i++
			}
		}
		if depth != 0 {
			segs = append(segs, segment{literal: raw[open:]})
			break
		}

		end := i - 1 // closing brace
		expr := expression{raw: raw[open:i]}
		if sep >= 0 {
			expr.key = raw[open+len(tokenOpen) : sep]
			expr.def = raw[sep+1 : end]
			expr.hasDefault = true
		} else {
			expr.key = raw[open+len(tokenOpen) : end]
		}
		segs = append(segs, segment{expr: expr, isExpr: true})
		raw = raw[i:]
	}
	return segs
}
