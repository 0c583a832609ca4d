package keystore

import (
	"bufio"
	"bytes"
	"fmt"
	"path"
	"strconv"
	"strings"

	"github.com/kbukum/prism/errors"
)

// row is one raw key file line. Rows compare by full-field equality.
type row [NumFields]string

func (r row) uniqueName() string { return r[0] }

// KeyFilePath returns the key file location of a database inside the data tree.
func KeyFilePath(database string) string {
	return path.Join("KEYS", database+".key")
}

// parseKeyFile splits data into rows. Blank lines are skipped.
func parseKeyFile(name string, data []byte) ([]row, error) {
	var rows []row
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		cols := strings.Fields(sc.Text())
		if len(cols) == 0 {
			continue
		}
		if len(cols) != NumFields {
			return nil, errors.MalformedKeyFile(name, line,
				fmt.Sprintf("expected %d columns, got %d", NumFields, len(cols)))
		}
		var r row
		copy(r[:], cols)
		rows = append(rows, r)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Configuration(name, err)
	}
	return rows, nil
}

// toRecord converts a raw row, normalizing its channel.
func (r row) toRecord() (Record, error) {
	id := r.uniqueName()
	channel, ok := NormalizeChannel(r[4])
	if !ok {
		return Record{}, errors.UnknownChannelCode(id, r[4])
	}

	rec := Record{
		Database:        r[1],
		Target:          r[2],
		URI:             r[3],
		Channel:         channel,
		SessionID:       r[5],
		Gender:          Gender(r[6]),
		YearOfBirth:     r[7],
		YearOfRecording: r[8],
		Age:             r[9],
		SpeechType:      r[10],
		ChannelType:     r[11],
		Language:        r[13],
		NativeLanguage:  r[14],
		VocalEffort:     r[15],
	}

	var err error
	if rec.NominalLength, err = strconv.ParseFloat(r[12], 64); err != nil {
		return Record{}, invalidNumber(id, 12, r[12])
	}
	return rec, nil
}

func invalidNumber(id string, col int, value string) *errors.AppError {
	return errors.New(errors.ErrCodeMalformedKeyFile,
		fmt.Sprintf("%s: %s is not a number: %q", id, FieldNames[col], value)).
		WithDetail("unique_name", id).
		WithDetail("field", FieldNames[col])
}
