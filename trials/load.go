package trials

import (
	"bufio"
	"bytes"
	"fmt"
	"io/fs"
	"slices"
	"strings"

	"github.com/kbukum/prism/errors"
)

// Load reads the mask at name and aligns it to the enrollment (rows) and
// test (columns) identifier lists.
func Load(fsys fs.FS, name string, enroll, test []string) (*Matrix, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, errors.Configuration(name, err)
	}
	return Parse(name, data, enroll, test)
}

// Parse decodes mask data. name is used in error messages only. A first line
// equal to the test identifier list is a header; any other line is data.
// Identifier lists must not repeat an identifier.
func Parse(name string, data []byte, enroll, test []string) (*Matrix, error) {
	for _, l := range []struct {
		role string
		ids  []string
	}{{"enrollment", enroll}, {"test", test}} {
		if id, ok := duplicate(l.ids); ok {
			return nil, errors.MalformedTrialMatrix(name,
				fmt.Sprintf("%s list repeats identifier %q", l.role, id)).
				WithDetail("identifier", id).
				WithDetail("list", l.role)
		}
	}

	var lines [][]string
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		if cols := strings.Fields(sc.Text()); len(cols) > 0 {
			lines = append(lines, cols)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Configuration(name, err)
	}

	// A matching first line is still data when the row count says so.
	if len(lines) > len(enroll) && slices.Equal(lines[0], test) {
		lines = lines[1:]
	}

	if len(lines) != len(enroll) {
		return nil, errors.MalformedTrialMatrix(name,
			fmt.Sprintf("%d rows, expected %d enrollment identifiers", len(lines), len(enroll))).
			WithDetail("rows", len(lines)).
			WithDetail("expected", len(enroll))
	}

	cells := make([]Outcome, 0, len(enroll)*len(test))
	for i, cols := range lines {
		if len(cols) != len(test) {
			return nil, errors.MalformedTrialMatrix(name,
				fmt.Sprintf("row %d has %d columns, expected %d test identifiers", i+1, len(cols), len(test))).
				WithDetail("row", i+1)
		}
		for j, s := range cols {
			o, ok := parseOutcome(s)
			if !ok {
				return nil, errors.MalformedTrialMatrix(name,
					fmt.Sprintf("row %d column %d: invalid outcome %q", i+1, j+1, s)).
					WithDetail("row", i+1).
					WithDetail("column", j+1)
			}
			cells = append(cells, o)
		}
	}
	return newMatrix(slices.Clone(enroll), slices.Clone(test), cells), nil
}

// duplicate returns the first identifier that appears twice in ids.
func duplicate(ids []string) (string, bool) {
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return id, true
		}
		seen[id] = struct{}{}
	}
	return "", false
}
