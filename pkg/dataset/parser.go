package dataset

import (
	"fmt"

	"knowex-be/pkg/wizard"
)

const (
	minParsedColumns = 5
	maxParsedColumns = 9
	numericShare     = 0.8
)

// Rand is the subset of *rand.Rand the parser draws from.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// MockParseColumns invents the column list of an uploaded file: 5 to 9
// columns, each a selected numeric feature or an unselected categorical,
// followed by an unselected categorical target.
func MockParseColumns(r Rand) []wizard.Column {
	n := minParsedColumns + r.IntN(maxParsedColumns-minParsedColumns+1)
	cols := make([]wizard.Column, 0, n+1)
	for i := 1; i <= n; i++ {
		if r.Float64() < numericShare {
			cols = append(cols, wizard.Column{Name: fmt.Sprintf("feature_%d", i), Selected: true, DataType: "numeric"})
			continue
		}
		cols = append(cols, wizard.Column{Name: fmt.Sprintf("category_%d", i), Selected: false, DataType: "categorical"})
	}
	return append(cols, wizard.Column{Name: "target", Selected: false, DataType: "categorical"})
}
