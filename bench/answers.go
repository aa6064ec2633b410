package bench

// Answers is the ground-truth grid: one row per pattern, one column per
// sequence. A nil *Answers means the run is not verified.
type Answers struct {
	grid [][]int
}

// NewAnswers wraps grid without copying it.
func NewAnswers(grid [][]int) *Answers {
	return &Answers{grid: grid}
}

// Rows returns the number of pattern rows.
func (a *Answers) Rows() int { return len(a.grid) }

// At returns the expected count of pattern p against sequence s.
func (a *Answers) At(p, s int) int { return a.grid[p][s] }

// Row returns the expected counts of pattern p.
func (a *Answers) Row(p int) []int { return a.grid[p] }

// Check verifies the grid fits a corpus of the given size.
func (a *Answers) Check(patterns, sequences int) error {
	if len(a.grid) != patterns {
		return &CountMismatchError{Kind: RowCount, Want: patterns, Got: len(a.grid)}
	}
	for i, row := range a.grid {
		if len(row) != sequences {
			return &CountMismatchError{Kind: ColumnCount, Want: sequences, Got: len(row), Row: i}
		}
	}
	return nil
}
