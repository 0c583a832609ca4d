package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing/fstest"
)

// Row is one key file line.
type Row struct {
	ID              string
	Database        string
	Target          string
	URI             string
	Channel         string
	SessionID       string
	Gender          string
	YearOfBirth     string
	YearOfRecording string
	Age             string
	SpeechType      string
	ChannelType     string
	NominalLength   float64
	Language        string
	NativeLanguage  string
	VocalEffort     string
}

// TrainRow returns a row that passes every standard training-pool predicate
// for gender g, as long as db is not the held-out database.
func TrainRow(id, db, g string) Row {
	return Row{
		ID:              id,
		Database:        db,
		Target:          "spk_" + id,
		URI:             "uri_" + id,
		Channel:         "a",
		SessionID:       "sess_" + id,
		Gender:          g,
		YearOfBirth:     "1970",
		YearOfRecording: "2008",
		Age:             "38",
		SpeechType:      "tel",
		ChannelType:     "phn",
		NominalLength:   300,
		Language:        "ENG",
		NativeLanguage:  "ENG",
		VocalEffort:     "normal",
	}
}

// Line formats the row as whitespace-separated key file columns.
func (r Row) Line() string {
	return strings.Join([]string{
		r.ID, r.Database, r.Target, r.URI, r.Channel, r.SessionID, r.Gender,
		r.YearOfBirth, r.YearOfRecording, r.Age,
		r.SpeechType, r.ChannelType, strconv.FormatFloat(r.NominalLength, 'f', -1, 64),
		r.Language, r.NativeLanguage, r.VocalEffort,
	}, " ")
}

// Corpus accumulates the files of a synthetic data tree.
type Corpus struct {
	files fstest.MapFS
}

// NewCorpus returns an empty data tree.
func NewCorpus() *Corpus {
	return &Corpus{files: fstest.MapFS{}}
}

// AddKeys appends rows to the key file of db, creating it if needed.
func (c *Corpus) AddKeys(db string, rows ...Row) *Corpus {
	name := "KEYS/" + db + ".key"
	var b strings.Builder
	if f, ok := c.files[name]; ok {
		b.Write(f.Data)
	}
	for _, r := range rows {
		b.WriteString(r.Line())
		b.WriteByte('\n')
	}
	return c.AddRaw(name, b.String())
}

// AddRaw writes content verbatim at name.
func (c *Corpus) AddRaw(name, content string) *Corpus {
	c.files[name] = &fstest.MapFile{Data: []byte(content)}
	return c
}

// ConditionFile returns the path of a condition file; ext is trnids, tstids or keymask.
func ConditionFile(code int, gender, ext string) string {
	return fmt.Sprintf("TRIALS/sre10.conditions/sre10c%02d,%s.%s", code, gender, ext)
}

// AddCondition writes the enrollment list, test list and trial mask of a condition.
// mask has one row per enrollment identifier and one column per test identifier.
func (c *Corpus) AddCondition(code int, gender string, enroll, test []string, mask [][]int) *Corpus {
	c.AddRaw(ConditionFile(code, gender, "trnids"), lines(enroll))
	c.AddRaw(ConditionFile(code, gender, "tstids"), lines(test))
	c.AddRaw(ConditionFile(code, gender, "keymask"), Mask(mask))
	return c
}

// Mask formats a trial mask without a header row.
func Mask(mask [][]int) string {
	var b strings.Builder
	for _, r := range mask {
		cells := make([]string, len(r))
		for i, v := range r {
			cells[i] = strconv.Itoa(v)
		}
		b.WriteString(strings.Join(cells, " "))
		b.WriteByte('\n')
	}
	return b.String()
}

// FS returns the data tree.
func (c *Corpus) FS() fstest.MapFS {
	return c.files
}

// WriteDir writes the data tree under dir.
func (c *Corpus) WriteDir(dir string) error {
	for name, f := range c.files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(path, f.Data, 0o644); err != nil {
			return err
		}
	}
	return nil
}

func lines(ids []string) string {
	if len(ids) == 0 {
		return ""
	}
	return strings.Join(ids, "\n") + "\n"
}
