package protocol

import (
	"github.com/google/uuid"

	"github.com/kbukum/prism/condition"
	"github.com/kbukum/prism/partition"
	"github.com/kbukum/prism/trials"
)

// Task is the task every PRISM protocol belongs to.
const Task = "SpeakerRecognition"

// Protocol is one constructed (condition, gender) instance. Its partitions
// and trial matrix are fixed at construction and safe for concurrent reads.
type Protocol struct {
	name   string
	cond   condition.Condition
	id     uuid.UUID
	it     *partition.Iterator
	matrix *trials.Matrix
}

// Task returns the task name.
func (p *Protocol) Task() string { return Task }

// Name returns the protocol name, e.g. SRE10_c05_f or Debug.
func (p *Protocol) Name() string { return p.name }

// Condition returns the condition the protocol was built from.
func (p *Protocol) Condition() condition.Condition { return p.cond }

// InstanceID distinguishes protocol instances in logs and exports.
func (p *Protocol) InstanceID() string { return p.id.String() }

// Iterate returns a fresh traversal of partition n.
func (p *Protocol) Iterate(n partition.Name) (partition.Result, error) {
	return p.it.Iterate(n)
}

func (p *Protocol) result(n partition.Name) partition.Result {
	r, _ := p.it.Iterate(n)
	return r
}

// Train iterates the training pool.
func (p *Protocol) Train() partition.Result { return p.result(partition.Train) }

// DevEnroll iterates the development enrollment partition, which is empty
// for this corpus.
func (p *Protocol) DevEnroll() partition.Result { return p.result(partition.DevEnroll) }

// DevTest iterates the development test partition, which is empty for
// this corpus.
func (p *Protocol) DevTest() partition.Result { return p.result(partition.DevTest) }

// EvalEnroll iterates the evaluation enrollment list.
func (p *Protocol) EvalEnroll() partition.Result { return p.result(partition.EvalEnroll) }

// EvalTest iterates the evaluation test list.
func (p *Protocol) EvalTest() partition.Result { return p.result(partition.EvalTest) }

// IDs returns the identifiers of partition n.
func (p *Protocol) IDs(n partition.Name) []string { return p.it.IDs(n) }

// Sizes returns the length of every partition.
func (p *Protocol) Sizes() map[partition.Name]int {
	sizes := make(map[partition.Name]int, len(partition.Names))
	for _, n := range partition.Names {
		sizes[n] = p.it.Len(n)
	}
	return sizes
}

// Trials returns the trial matrix, rows aligned to EvalEnroll and columns
// to EvalTest.
func (p *Protocol) Trials() *trials.Matrix { return p.matrix }
