package structure

import "strings"

// QuantifierLabel returns a human-readable label for raw quantifier text.
//
//	"*"     -> "0 or more"
//	"+"     -> "1 or more"
//	"?"     -> "0 or 1"
//	"{2,4}" -> "2,4 times"
//	""      -> ""
//
// Any other text has its first `{` removed and its first `}` replaced by
// " times"; concatenated quantifiers such as "+?" are returned unchanged.
func QuantifierLabel(q string) string {
	switch q {
	case "":
		return ""
	case "*":
		return "0 or more"
	case "+":
		return "1 or more"
	case "?":
		return "0 or 1"
	}
	q = strings.Replace(q, "{", "", 1)
	return strings.Replace(q, "}", " times", 1)
}
