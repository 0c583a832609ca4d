package protocol

import (
	"testing"

	"github.com/kbukum/prism/errors"
)

func TestDefaultCatalog(t *testing.T) {
	cat, err := NewDefaultCatalog(newSource(t, corpus()))
	if err != nil {
		t.Fatal(err)
	}
	keys := cat.Keys()
	if len(keys) != 19 {
		t.Fatalf("len(Keys()) = %d, want 19", len(keys))
	}
	if keys[0] != (Key{Task: Task, Name: "Debug"}) {
		t.Errorf("first key = %v", keys[0])
	}
	if keys[1].Name != "SRE10_c01_f" || keys[18].Name != "SRE10_c09_m" {
		t.Errorf("keys = %v ... %v", keys[1], keys[18])
	}

	p, err := cat.Create(Task, "SRE10_c05_f")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if p.Trials() == nil || p.Name() != "SRE10_c05_f" {
		t.Errorf("unexpected protocol %s", p.Name())
	}

	// Condition files for c01 are absent from the corpus.
	if _, err := cat.Create(Task, "SRE10_c01_f"); !errors.HasCode(err, errors.ErrCodeConfiguration) {
		t.Errorf("Create(c01) error = %v, want CONFIGURATION_ERROR", err)
	}
}

func TestCatalog_RegisterAndCreate(t *testing.T) {
	cat := NewCatalog()
	calls := 0
	f := func(opts ...Option) (*Protocol, error) {
		calls++
		return &Protocol{name: "custom"}, nil
	}
	if err := cat.Register("Other", "custom", f); err != nil {
		t.Fatal(err)
	}
	if err := cat.Register("Other", "custom", f); !errors.HasCode(err, errors.ErrCodeInvalidInput) {
		t.Errorf("duplicate Register() error = %v", err)
	}
	if _, err := cat.Create("Other", "custom"); err != nil || calls != 1 {
		t.Errorf("Create() err = %v, calls = %d", err, calls)
	}
	if _, err := cat.Create(Task, "custom"); !errors.HasCode(err, errors.ErrCodeNotFound) {
		t.Errorf("Create() unknown error = %v", err)
	}
}

func TestKey_String(t *testing.T) {
	if got := (Key{Task: Task, Name: "Debug"}).String(); got != "SpeakerRecognition/Debug" {
		t.Errorf("String() = %q", got)
	}
}

func TestCatalog_RegisterRejectsBadNames(t *testing.T) {
	cat := NewCatalog()
	f := func(...Option) (*Protocol, error) { return nil, nil }
	for _, name := range []string{"", "SRE10 c05", "a/b"} {
		if err := cat.Register(Task, name, f); !errors.HasCode(err, errors.ErrCodeInvalidInput) {
			t.Errorf("Register(%q) error = %v", name, err)
		}
	}
	if len(cat.Keys()) != 0 {
		t.Error("rejected names must not be registered")
	}
}
