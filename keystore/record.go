package keystore

import "strconv"

// Gender of the speaker in a recording session.
type Gender string

const (
	Female Gender = "f"
	Male   Gender = "m"
)

// Genders lists the genders protocols are defined for.
var Genders = []Gender{Female, Male}

// DefaultDatabases are the PRISM source databases, in merge order.
var DefaultDatabases = []string{
	"FISHATD5", "FISHE1",
	"MIX04", "MIX05", "MIX06", "MIX08", "MIX10",
	"SWCELLP1", "SWCELLP2", "SWPH2", "SWPH3",
}

// FieldNames is the column order of a key file.
var FieldNames = [NumFields]string{
	"unique_name",
	"database",
	"target",
	"uri",
	"channel",
	"session_id",
	"gender",
	"year_of_birth",
	"year_of_recording",
	"age",
	"speech_type",
	"channel_type",
	"nominal_length",
	"language",
	"native_language",
	"vocal_effort",
}

// NumFields is the number of columns in a key file.
const NumFields = 16

// Record is the metadata of one recording session. Birth year, recording year
// and age are kept as written since key files use placeholders such as NA.
type Record struct {
	Database        string  `json:"database" yaml:"database"`
	Target          string  `json:"target" yaml:"target"`
	URI             string  `json:"uri" yaml:"uri"`
	Channel         int     `json:"channel" yaml:"channel"`
	SessionID       string  `json:"session_id" yaml:"session_id"`
	Gender          Gender  `json:"gender" yaml:"gender"`
	YearOfBirth     string  `json:"year_of_birth" yaml:"year_of_birth"`
	YearOfRecording string  `json:"year_of_recording" yaml:"year_of_recording"`
	Age             string  `json:"age" yaml:"age"`
	SpeechType      string  `json:"speech_type" yaml:"speech_type"`
	ChannelType     string  `json:"channel_type" yaml:"channel_type"`
	NominalLength   float64 `json:"nominal_length" yaml:"nominal_length"`
	Language        string  `json:"language" yaml:"language"`
	NativeLanguage  string  `json:"native_language" yaml:"native_language"`
	VocalEffort     string  `json:"vocal_effort" yaml:"vocal_effort"`
}

// Values returns the record fields as text keyed by column name, without unique_name.
func (r Record) Values() map[string]string {
	return map[string]string{
		"database":          r.Database,
		"target":            r.Target,
		"uri":               r.URI,
		"channel":           strconv.Itoa(r.Channel),
		"session_id":        r.SessionID,
		"gender":            string(r.Gender),
		"year_of_birth":     r.YearOfBirth,
		"year_of_recording": r.YearOfRecording,
		"age":               r.Age,
		"speech_type":       r.SpeechType,
		"channel_type":      r.ChannelType,
		"nominal_length":    strconv.FormatFloat(r.NominalLength, 'f', -1, 64),
		"language":          r.Language,
		"native_language":   r.NativeLanguage,
		"vocal_effort":      r.VocalEffort,
	}
}

var channelCodes = map[string]int{
	"a": 1,
	"b": 2,
	"x": 1,
}

// NormalizeChannel maps a key file channel symbol to 1 or 2.
func NormalizeChannel(code string) (int, bool) {
	ch, ok := channelCodes[code]
	return ch, ok
}
