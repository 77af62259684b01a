package input

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/contactkeval/option-pricer/internal/pricing"
)

func writeRequest(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestLoadFileJSON(t *testing.T) {
	path := writeRequest(t, "req.json", `{
  "kind": "call",
  "spot": "100",
  "strike": "100",
  "rate": "5%",
  "maturity": "365",
  "volatility": "0,2"
}`)

	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	want := pricing.Contract{Kind: pricing.Call, Spot: 100, Strike: 100, Rate: 0.05, Maturity: 1, Vol: 0.2}
	if c != want {
		t.Fatalf("LoadFile = %+v, want %+v", c, want)
	}
}

func TestLoadFileYAML(t *testing.T) {
	path := writeRequest(t, "req.yaml", `kind: put
spot: "95"
strike: "100"
rate: "0.03"
maturity: "0.5"
volatility: "25%"
`)

	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	want := pricing.Contract{Kind: pricing.Put, Spot: 95, Strike: 100, Rate: 0.03, Maturity: 0.5, Vol: 0.25}
	if c != want {
		t.Fatalf("LoadFile = %+v, want %+v", c, want)
	}
}

func TestLoadFileMissingField(t *testing.T) {
	path := writeRequest(t, "req.json", `{"kind": "call", "spot": "100"}`)

	_, err := LoadFile(path)
	if err == nil {
		t.Fatal("expected error for incomplete request")
	}
	if !strings.Contains(err.Error(), "incomplete request") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadFileBadValues(t *testing.T) {
	path := writeRequest(t, "req.yaml", `kind: call
spot: "-100"
strike: "100"
rate: "0.05"
maturity: "1"
volatility: "0.2"
`)

	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected error for negative spot")
	}
}

func TestLoadFileUnsupportedFormat(t *testing.T) {
	path := writeRequest(t, "req.toml", `kind = "call"`)

	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
