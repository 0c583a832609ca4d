package trials

import (
	"fmt"
	"iter"
	"slices"

	"gonum.org/v1/gonum/mat"
)

// Outcome is the ground truth of one (enrollment, test) pair.
type Outcome int8

const (
	Untested  Outcome = -1
	NonTarget Outcome = 0
	Target    Outcome = 1
)

func (o Outcome) String() string {
	switch o {
	case Untested:
		return "untested"
	case NonTarget:
		return "nontarget"
	case Target:
		return "target"
	default:
		return fmt.Sprintf("outcome(%d)", int8(o))
	}
}

func parseOutcome(s string) (Outcome, bool) {
	switch s {
	case "-1":
		return Untested, true
	case "0":
		return NonTarget, true
	case "1":
		return Target, true
	}
	return 0, false
}

// Trial is one tested pair.
type Trial struct {
	Enroll  string  `json:"enroll" yaml:"enroll"`
	Test    string  `json:"test" yaml:"test"`
	Outcome Outcome `json:"outcome" yaml:"outcome"`
}

// Counts tallies the cells of a matrix.
type Counts struct {
	Target    int `json:"target" yaml:"target"`
	NonTarget int `json:"nontarget" yaml:"nontarget"`
	Untested  int `json:"untested" yaml:"untested"`
}

// Matrix is a trial mask with enrollment identifiers as rows and test
// identifiers as columns. It is read-only.
type Matrix struct {
	enroll    []string
	test      []string
	cells     []Outcome // row-major
	enrollPos map[string]int
	testPos   map[string]int
}

func newMatrix(enroll, test []string, cells []Outcome) *Matrix {
	return &Matrix{
		enroll:    enroll,
		test:      test,
		cells:     cells,
		enrollPos: positions(enroll),
		testPos:   positions(test),
	}
}

// positions maps each identifier to its index. Parse rejects repeated identifiers.
func positions(ids []string) map[string]int {
	m := make(map[string]int, len(ids))
	for i, id := range ids {
		m[id] = i
	}
	return m
}

// Dims returns the number of rows (enrollments) and columns (tests).
func (m *Matrix) Dims() (rows, cols int) { return len(m.enroll), len(m.test) }

// Enroll returns a copy of the row identifiers.
func (m *Matrix) Enroll() []string { return slices.Clone(m.enroll) }

// Test returns a copy of the column identifiers.
func (m *Matrix) Test() []string { return slices.Clone(m.test) }

// At returns the outcome at row i, column j. It panics if out of range.
func (m *Matrix) At(i, j int) Outcome {
	if i < 0 || i >= len(m.enroll) || j < 0 || j >= len(m.test) {
		panic(fmt.Sprintf("trials: index (%d, %d) out of range %dx%d", i, j, len(m.enroll), len(m.test)))
	}
	return m.cells[i*len(m.test)+j]
}

// Lookup returns the outcome of an (enrollment, test) pair by identifier.
func (m *Matrix) Lookup(enroll, test string) (Outcome, bool) {
	i, ok := m.enrollPos[enroll]
	if !ok {
		return 0, false
	}
	j, ok := m.testPos[test]
	if !ok {
		return 0, false
	}
	return m.At(i, j), true
}

// Counts tallies every cell.
func (m *Matrix) Counts() Counts {
	var c Counts
	for _, o := range m.cells {
		switch o {
		case Target:
			c.Target++
		case NonTarget:
			c.NonTarget++
		default:
			c.Untested++
		}
	}
	return c
}

// Trials yields every tested pair in row-major order.
func (m *Matrix) Trials() iter.Seq[Trial] {
	return func(yield func(Trial) bool) {
		for i, e := range m.enroll {
			for j, t := range m.test {
				o := m.cells[i*len(m.test)+j]
				if o == Untested {
					continue
				}
				if !yield(Trial{Enroll: e, Test: t, Outcome: o}) {
					return
				}
			}
		}
	}
}

// Head returns the leading rows x cols block. Bounds are clamped to the
// matrix size.
func (m *Matrix) Head(rows, cols int) *Matrix {
	rows = min(max(rows, 0), len(m.enroll))
	cols = min(max(cols, 0), len(m.test))
	cells := make([]Outcome, 0, rows*cols)
	for i := range rows {
		start := i * len(m.test)
		cells = append(cells, m.cells[start:start+cols]...)
	}
	return newMatrix(slices.Clone(m.enroll[:rows]), slices.Clone(m.test[:cols]), cells)
}

// Dense returns the outcomes as a gonum matrix for scoring code, or nil
// when the matrix has no rows or no columns.
func (m *Matrix) Dense() *mat.Dense {
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return nil
	}
	data := make([]float64, len(m.cells))
	for i, o := range m.cells {
		data[i] = float64(o)
	}
	return mat.NewDense(r, c, data)
}
