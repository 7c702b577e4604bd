package vars

import "strings"

// StrToBool reads the spellings accepted for boolean flag arguments.
// Anything unrecognized is false.
func StrToBool(str string) bool {
	switch strings.ToLower(str) {
	case "true", "t", "yes", "y":
		return true
	case "false", "f", "no", "n":
		return false
	}
	return false
}
