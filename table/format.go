package table

import "strconv"

func dirSymbol(dir int) string {
	switch dir {
	case -1:
		return "<"
	case 1:
		return ">"
	default:
		return "="
	}
}

// rankField renders rank 0-based with -1 as "not a potential ancestor" to
// the original's 1-based "NR" column convention: empty when absent,
// otherwise rank+1.
func rankField(rank int) string {
	if rank < 0 {
		return ""
	}
	return strconv.Itoa(rank + 1)
}

func percentField(pct float64) string {
	return "(" + strconv.FormatFloat(pct, 'f', 3, 64) + "%)"
}

func costField(cost float64, hasCost bool) string {
	if !hasCost {
		return ""
	}
	return strconv.FormatFloat(cost, 'f', 3, 64)
}
