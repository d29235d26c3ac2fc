package payload

import "strings"

// tolerantCleanup rewrites a hand-edited data block into strict JSON:
// line and block comments are stripped, single-quoted strings become
// double-quoted (escaping any embedded double quotes), and trailing commas
// before a closing brace or bracket are removed. Content inside
// double-quoted strings passes through untouched.
func tolerantCleanup(input string) string {
	var out strings.Builder
	out.Grow(len(input))

	const (
		stateNormal = iota
		stateDouble
		stateSingle
		stateLineComment
		stateBlockComment
	)
	state := stateNormal
	escaped := false

	for i := 0; i < len(input); i++ {
		ch := input[i]
		switch state {
		case stateNormal:
			switch {
			case ch == '/' && i+1 < len(input) && input[i+1] == '/':
				state = stateLineComment
				i++
			case ch == '/' && i+1 < len(input) && input[i+1] == '*':
				state = stateBlockComment
				i++
			case ch == '"':
				state = stateDouble
				out.WriteByte(ch)
			case ch == '\'':
				state = stateSingle
				out.WriteByte('"')
			case ch == ',':
				if closerFollows(input, i+1) {
					continue
				}
				out.WriteByte(ch)
			default:
				out.WriteByte(ch)
			}
		case stateDouble:
			out.WriteByte(ch)
			if escaped {
				escaped = false
			} else if ch == '\\' {
				escaped = true
			} else if ch == '"' {
				state = stateNormal
			}
		case stateSingle:
			if escaped {
				escaped = false
				if ch == '\'' {
					out.WriteByte('\'')
				} else {
					out.WriteByte('\\')
					out.WriteByte(ch)
				}
				continue
			}
			switch ch {
			case '\\':
				escaped = true
			case '\'':
				out.WriteByte('"')
				state = stateNormal
			case '"':
				out.WriteString(`\"`)
			default:
				out.WriteByte(ch)
			}
		case stateLineComment:
			if ch == '\n' {
				out.WriteByte(ch)
				state = stateNormal
			}
		case stateBlockComment:
			if ch == '*' && i+1 < len(input) && input[i+1] == '/' {
				i++
				state = stateNormal
			}
		}
	}
	return out.String()
}

// closerFollows reports whether the next non-whitespace byte at or after
// offset closes an object or array.
func closerFollows(input string, offset int) bool {
	for i := offset; i < len(input); i++ {
		switch input[i] {
		case ' ', '\t', '\n', '\r':
			continue
		case '}', ']':
			return true
		default:
			return false
		}
	}
	return false
}
