package condition

import (
	"fmt"
	"path"

	"github.com/kbukum/prism/keystore"
	"github.com/kbukum/prism/validation"
)

const (
	// DefaultEvalDatabase is the database the SRE10 conditions are drawn from.
	DefaultEvalDatabase = "MIX10"
	// DefaultDebugTrainLimit caps the debug training partition.
	DefaultDebugTrainLimit = 20
	// DefaultDebugEvalLimit caps each debug evaluation list.
	DefaultDebugEvalLimit = 10

	// MinCode and MaxCode bound the SRE10 condition codes.
	MinCode = 1
	MaxCode = 9

	conditionsDir = "TRIALS/sre10.conditions"
)

// Strategy selects how a condition derives its partitions.
type Strategy int

const (
	Standard Strategy = iota
	Debug
)

func (s Strategy) String() string {
	switch s {
	case Standard:
		return "standard"
	case Debug:
		return "debug"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// Role of an evaluation identifier list.
type Role string

const (
	Enroll Role = "trn"
	Test   Role = "tst"
)

// Condition is an immutable evaluation setup.
type Condition struct {
	Gender   keystore.Gender
	Code     int
	Strategy Strategy
}

// New returns the standard condition for gender and code.
func New(gender keystore.Gender, code int) (Condition, error) {
	c := Condition{Gender: gender, Code: code, Strategy: Standard}
	if err := c.Validate(); err != nil {
		return Condition{}, err
	}
	return c, nil
}

// NewDebug returns the debug condition, built on female condition 5.
func NewDebug() Condition {
	return Condition{Gender: keystore.Female, Code: 5, Strategy: Debug}
}

// Validate checks gender, code and strategy.
func (c Condition) Validate() error {
	return validation.New().
		OneOf("gender", string(c.Gender), []string{string(keystore.Female), string(keystore.Male)}).
		Range("condition", c.Code, MinCode, MaxCode).
		Custom(c.Strategy == Standard || c.Strategy == Debug, "strategy", "must be standard or debug").
		Err()
}

// Name is the protocol name of the condition, e.g. SRE10_c05_f or Debug.
func (c Condition) Name() string {
	if c.Strategy == Debug {
		return "Debug"
	}
	return fmt.Sprintf("SRE10_c%02d_%s", c.Code, c.Gender)
}

func (c Condition) String() string { return c.Name() }

// ListPath returns the identifier list file of role.
func (c Condition) ListPath(role Role) string {
	return path.Join(conditionsDir, fmt.Sprintf("%s.%sids", c.stem(), role))
}

// TrialPath returns the trial mask file.
func (c Condition) TrialPath() string {
	return path.Join(conditionsDir, c.stem()+".keymask")
}

func (c Condition) stem() string {
	return fmt.Sprintf("sre10c%02d,%s", c.Code, c.Gender)
}

// All returns every standard condition, codes ascending, female before male.
func All() []Condition {
	out := make([]Condition, 0, (MaxCode-MinCode+1)*len(keystore.Genders))
	for code := MinCode; code <= MaxCode; code++ {
		for _, g := range keystore.Genders {
			out = append(out, Condition{Gender: g, Code: code, Strategy: Standard})
		}
	}
	return out
}
