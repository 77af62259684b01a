package report

import (
	"encoding/csv"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/contactkeval/option-pricer/internal/pricing"
	"github.com/contactkeval/option-pricer/internal/testutil"
)

func price(t *testing.T, kind pricing.Kind) pricing.Result {
	t.Helper()
	res, err := pricing.PriceAndGreeks(pricing.Contract{
		Kind: kind, Spot: 100, Strike: 100, Rate: 0.05, Maturity: 1, Vol: 0.2,
	})
	if err != nil {
		t.Fatalf("pricing reference contract: %v", err)
	}
	return res
}

func TestTextGolden(t *testing.T) {
	testutil.CompareWithGolden(t, "text_call", []byte(Text(pricing.Call, price(t, pricing.Call))))
	testutil.CompareWithGolden(t, "text_put", []byte(Text(pricing.Put, price(t, pricing.Put))))
}

func TestWriteJSON(t *testing.T) {
	res := price(t, pricing.Call)
	dir := t.TempDir()
	if err := WriteJSON(pricing.Call, res, dir); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	b, err := os.ReadFile(filepath.Join(dir, "result.json"))
	if err != nil {
		t.Fatalf("reading result.json: %v", err)
	}

	var got struct {
		Kind string `json:"kind"`
		pricing.Result
	}
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("result.json is not valid JSON: %v", err)
	}
	if got.Kind != "call" {
		t.Errorf("kind = %q, want %q", got.Kind, "call")
	}
	if math.Abs(got.Price-res.Price) > 1e-12 || math.Abs(got.Rho-res.Rho) > 1e-12 {
		t.Errorf("round-tripped result %+v does not match %+v", got.Result, res)
	}
}

func TestWriteCSV(t *testing.T) {
	res := price(t, pricing.Put)
	dir := t.TempDir()
	if err := WriteCSV(pricing.Put, res, dir); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	f, err := os.Open(filepath.Join(dir, "result.csv"))
	if err != nil {
		t.Fatalf("opening result.csv: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("reading result.csv: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("want header + 1 row, got %d rows", len(rows))
	}
	if rows[0][0] != "kind" || len(rows[0]) != 7 {
		t.Fatalf("unexpected header: %v", rows[0])
	}
	if rows[1][0] != "put" {
		t.Errorf("kind column = %q, want %q", rows[1][0], "put")
	}
	if rows[1][1] != "5.573526" {
		t.Errorf("price column = %q, want %q", rows[1][1], "5.573526")
	}
}
