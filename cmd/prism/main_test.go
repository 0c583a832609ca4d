package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/kbukum/prism/errors"
	"github.com/kbukum/prism/partition"
	"github.com/kbukum/prism/protocol"
	"github.com/kbukum/prism/testutil"
)

// writeData writes a two-database corpus with condition 5 female and
// returns a config file pointing at it.
func writeData(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	data := filepath.Join(dir, "data")
	c := testutil.NewCorpus().
		AddKeys("MIX04",
			testutil.TrainRow("tr1", "MIX04", "f"),
			testutil.TrainRow("tr2", "MIX04", "f"),
		).
		AddKeys("MIX10",
			testutil.TrainRow("e1", "MIX10", "f"),
			testutil.TrainRow("e2", "MIX10", "f"),
			testutil.TrainRow("t1", "MIX10", "f"),
		).
		AddCondition(5, "f", []string{"e1", "e2"}, []string{"t1"}, [][]int{{1}, {0}})
	if err := c.WriteDir(data); err != nil {
		t.Fatal(err)
	}

	cfg := filepath.Join(dir, "prism.yml")
	content := "data_dir: " + data + "\n" +
		"databases: [MIX04, MIX10]\n" +
		"preprocess:\n  audio: \"/wav/{uri}.wav\"\n" +
		"logging:\n  level: error\n"
	if err := os.WriteFile(cfg, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return cfg
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestProtocolsCmd(t *testing.T) {
	out, err := run(t, "--config", writeData(t), "protocols")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 19 {
		t.Fatalf("expected 19 protocols, got %d:\n%s", len(lines), out)
	}
	if lines[0] != "SpeakerRecognition/Debug" {
		t.Errorf("first line = %q", lines[0])
	}

	out, err = run(t, "--config", writeData(t), "protocols", "-o", "json")
	if err != nil {
		t.Fatal(err)
	}
	var keys []protocol.Key
	if err := json.Unmarshal([]byte(out), &keys); err != nil {
		t.Fatal(err)
	}
	if len(keys) != 19 || keys[1].Name != "SRE10_c01_f" {
		t.Errorf("unexpected keys %v", keys)
	}
}

func TestPartitionCmd(t *testing.T) {
	cfg := writeData(t)

	out, err := run(t, "--config", cfg, "partition", "SRE10_c05_f", "eval-enroll")
	if err != nil {
		t.Fatal(err)
	}
	if out != "e1\ne2\n" {
		t.Errorf("eval-enroll = %q", out)
	}

	out, err = run(t, "--config", cfg, "partition", "SRE10_c05_f", "train", "-o", "json")
	if err != nil {
		t.Fatal(err)
	}
	var ids []string
	if err := json.Unmarshal([]byte(out), &ids); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"tr1", "tr2"}, ids); diff != "" {
		t.Errorf("train mismatch:\n%s", diff)
	}

	out, err = run(t, "--config", cfg, "partition", "SRE10_c05_f", "dev-test", "-o", "json")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != "[]" {
		t.Errorf("dev-test = %q, want []", out)
	}
}

func TestPartitionCmd_RecordsYAML(t *testing.T) {
	out, err := run(t, "--config", writeData(t), "partition", "SRE10_c05_f", "eval-test", "--records", "-o", "yaml")
	if err != nil {
		t.Fatal(err)
	}
	var items []partition.Item
	if err := yaml.Unmarshal([]byte(out), &items); err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 || items[0].ID != "t1" {
		t.Fatalf("items = %+v", items)
	}
	if items[0].Record.Database != "MIX10" || items[0].Record.Channel != 1 {
		t.Errorf("record = %+v", items[0].Record)
	}
	if items[0].Extra["audio"] != "/wav/uri_t1.wav" {
		t.Errorf("extra = %v", items[0].Extra)
	}
}

func TestTrialsCmd(t *testing.T) {
	out, err := run(t, "--config", writeData(t), "trials", "SRE10_c05_f", "--list")
	if err != nil {
		t.Fatal(err)
	}
	want := "SRE10_c05_f: 2 enroll x 1 test, 1 target, 1 nontarget, 0 untested\n" +
		"e1\tt1\ttarget\n" +
		"e2\tt1\tnontarget\n"
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("trials output mismatch (-want +got):\n%s", diff)
	}
}

func TestTrialsCmd_Dense(t *testing.T) {
	cfg := writeData(t)
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "text",
			args: []string{"trials", "SRE10_c05_f", "--dense"},
			want: "SRE10_c05_f: 2 enroll x 1 test, 1 target, 1 nontarget, 0 untested\n1\n0\n",
		},
		{
			name: "json",
			args: []string{"trials", "SRE10_c05_f", "--dense", "-o", "json"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, append([]string{"--config", cfg}, tt.args...)...)
			if err != nil {
				t.Fatal(err)
			}
			if tt.want != "" {
				if diff := cmp.Diff(tt.want, out); diff != "" {
					t.Errorf("trials output mismatch (-want +got):\n%s", diff)
				}
				return
			}
			var got struct {
				Dense [][]float64 `json:"dense"`
			}
			if err := json.Unmarshal([]byte(out), &got); err != nil {
				t.Fatalf("invalid json %q: %v", out, err)
			}
			if diff := cmp.Diff([][]float64{{1}, {0}}, got.Dense); diff != "" {
				t.Errorf("dense mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExportCmd(t *testing.T) {
	db := filepath.Join(t.TempDir(), "out.sqlite")
	out, err := run(t, "--config", writeData(t), "export", "SRE10_c05_f", "--db", db, "-o", "json")
	if err != nil {
		t.Fatal(err)
	}
	var sum struct {
		Protocol string `json:"protocol"`
		Records  int    `json:"records"`
		Trials   int    `json:"trials"`
	}
	if err := json.Unmarshal([]byte(out), &sum); err != nil {
		t.Fatal(err)
	}
	if sum.Protocol != "SRE10_c05_f" || sum.Records != 5 || sum.Trials != 2 {
		t.Errorf("summary = %+v", sum)
	}
	if _, err := os.Stat(db); err != nil {
		t.Errorf("database not written: %v", err)
	}

	if _, err := run(t, "--config", writeData(t), "export", "SRE10_c05_f"); !errors.HasCode(err, errors.ErrCodeInvalidInput) {
		t.Errorf("missing --db error = %v", err)
	}
}

func TestCmdErrors(t *testing.T) {
	cfg := writeData(t)
	tests := []struct {
		name string
		args []string
		code errors.ErrorCode
	}{
		{"unknown protocol", []string{"--config", cfg, "trials", "SRE10_c05_x"}, errors.ErrCodeNotFound},
		{"unknown partition", []string{"--config", cfg, "partition", "Debug", "holdout"}, errors.ErrCodeInvalidInput},
		{"missing condition files", []string{"--config", cfg, "trials", "SRE10_c02_m"}, errors.ErrCodeConfiguration},
		{"empty data dir", []string{"--config", cfg, "--data-dir", t.TempDir(), "trials", "SRE10_c05_f"}, errors.ErrCodeConfiguration},
		{"bad output", []string{"--config", cfg, "protocols", "-o", "xml"}, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			if !errors.HasCode(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestLogLevelFlagValidated(t *testing.T) {
	if _, err := run(t, "--config", writeData(t), "--log-level", "loud", "protocols"); err == nil {
		t.Error("expected error for invalid log level")
	}
}

func TestVersionFlag(t *testing.T) {
	out, err := run(t, "--version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "prism version ") {
		t.Errorf("version output = %q", out)
	}
}
