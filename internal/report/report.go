// Package report renders pricing results: a fixed-point text block for the
// terminal and optional JSON/CSV result files.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/contactkeval/option-pricer/internal/pricing"
)

// places is the fixed-point precision of the text display.
const places = 4

// fixed rounds v to the display precision, half away from zero.
func fixed(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(places)
}

// Text renders the result the way the interactive tool prints it:
//
//	Call Option Price is 10.4506.
//	Delta is 0.6368.
//	...
func Text(kind pricing.Kind, res pricing.Result) string {
	label := "Call"
	if kind == pricing.Put {
		label = "Put"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s Option Price is %s.\n", label, fixed(res.Price))
	fmt.Fprintf(&b, "Delta is %s.\n", fixed(res.Delta))
	fmt.Fprintf(&b, "Gamma is %s.\n", fixed(res.Gamma))
	fmt.Fprintf(&b, "Theta is %s.\n", fixed(res.Theta))
	fmt.Fprintf(&b, "Vega is %s.\n", fixed(res.Vega))
	fmt.Fprintf(&b, "Rho is %s.\n", fixed(res.Rho))
	return b.String()
}

// document is the layout of the JSON result file.
type document struct {
	Kind string `json:"kind"`
	pricing.Result
}

// WriteJSON writes result.json into outdir.
func WriteJSON(kind pricing.Kind, res pricing.Result, outdir string) error {
	b, err := json.MarshalIndent(document{Kind: kind.String(), Result: res}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(outdir, "result.json"), b, 0644)
}

// WriteCSV writes result.csv into outdir: a header row and one value row.
func WriteCSV(kind pricing.Kind, res pricing.Result, outdir string) error {
	f, err := os.Create(filepath.Join(outdir, "result.csv"))
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)

	if err := w.Write([]string{"kind", "price", "delta", "gamma", "theta", "vega", "rho"}); err != nil {
		return err
	}
	row := []string{
		kind.String(),
		fmt.Sprintf("%.6f", res.Price),
		fmt.Sprintf("%.6f", res.Delta),
		fmt.Sprintf("%.6f", res.Gamma),
		fmt.Sprintf("%.6f", res.Theta),
		fmt.Sprintf("%.6f", res.Vega),
		fmt.Sprintf("%.6f", res.Rho),
	}
	if err := w.Write(row); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}
