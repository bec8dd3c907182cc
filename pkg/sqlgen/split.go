package sqlgen

import "strings"

// SplitStatements splits an SQL script into statements on semicolons that
// are outside of single-quoted literals and comments. Comment-only and
// empty fragments are dropped. Returned statements keep their trailing
// semicolon.
func SplitStatements(script string) []string {
	var res []string
	var sb strings.Builder
	var inQuote, inComment bool

	flush := func() {
		stmt := strings.TrimSpace(sb.String())
		sb.Reset()
		if stmt != "" && stmt != ";" {
			res = append(res, stmt)
		}
	}

	for i := 0; i < len(script); i++ {
		c := script[i]
		switch {
		case inComment:
			if c == '\n' {
				inComment = false
			}
			continue
		case inQuote:
			sb.WriteByte(c)
			// a doubled quote toggles twice and keeps us inside
			if c == '\'' {
				inQuote = false
			}
			continue
		}

		switch c {
		case '\'':
			inQuote = true
			sb.WriteByte(c)
		case '-':
			if i+1 < len(script) && script[i+1] == '-' {
				inComment = true
				i++
				continue
			}
			sb.WriteByte(c)
		case ';':
			sb.WriteByte(c)
			flush()
		default:
			sb.WriteByte(c)
		}
	}
	flush()
	return res
}
