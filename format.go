package assertor

import (
	"fmt"
	"strconv"
	"strings"
)

// debugStringer lets element types control how they appear inside rendered
// fact lists. Fact implements it; the format is part of the message contract.
type debugStringer interface {
	debugString() string
}

// formatElement renders a single value for use inside a fact. Strings are
// quoted so empty and whitespace-only values stay visible in messages.
func formatElement(value any) string {
	switch v := value.(type) {
	case debugStringer:
		return v.debugString()
	case string:
		return strconv.Quote(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// formatList renders a slice as "[a, b, c]".
func formatList[E any](elements []E) string {
	var sb strings.Builder

	sb.WriteString("[")

	for i, element := range elements {
		if i > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(formatElement(element))
	}

	sb.WriteString("]")

	return sb.String()
}
