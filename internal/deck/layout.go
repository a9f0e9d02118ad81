package deck

import "fmt"

// Layout decides how many word pairs go into each intro column.
type Layout string

const (
	LayoutThreeColumn Layout = "three-column"
	LayoutTwoColumn   Layout = "two-column"
	LayoutFixed       Layout = "fixed"
)

// maxListed caps the word pairs shown on the intro slide.
const maxListed = 12

// ParseLayout maps a config value to a Layout. Empty selects three-column.
func ParseLayout(s string) (Layout, error) {
	switch l := Layout(s); l {
	case "":
		return LayoutThreeColumn, nil
	case LayoutThreeColumn, LayoutTwoColumn, LayoutFixed:
		return l, nil
	default:
		return "", fmt.Errorf("unknown layout %q", s)
	}
}

// Columns returns the size of each column for n pairs. The sum never
// exceeds n and unused trailing columns are zero. In the column layouts the
// first column holds at most half of the listed pairs, and at least one.
func (l Layout) Columns(n int) [3]int {
	if n <= 0 {
		return [3]int{}
	}
	switch l {
	case LayoutTwoColumn:
		listed := min(n, maxListed)
		first := max(1, listed/2)
		return [3]int{first, listed - first, 0}
	case LayoutFixed:
		first := min(n, 5)
		second := min(6, n-first)
		third := min(1, n-first-second)
		return [3]int{first, second, third}
	default:
		first := max(1, min(n, maxListed)/2)
		second := min(6, n-first)
		third := min(6, n-first-second)
		return [3]int{first, second, third}
	}
}
