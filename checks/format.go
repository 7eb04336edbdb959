package checks

import "strings"

// pyBool renders b the way existing precheck logs do.
func pyBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

// pyList renders names as a list literal: ['a', 'b'].
func pyList(names []string) string {
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = pyStr(n)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func pyStr(s string) string {
	quote := "'"
	if strings.Contains(s, "'") && !strings.Contains(s, `"`) {
		quote = `"`
	}
	s = strings.ReplaceAll(s, `\`, `\\`)
	if quote == "'" {
		s = strings.ReplaceAll(s, "'", `\'`)
	}
	return quote + s + quote
}
