package input

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"

	"github.com/contactkeval/option-pricer/internal/logger"
	"github.com/contactkeval/option-pricer/internal/pricing"
)

// Request is an on-disk pricing request, loadable from JSON or YAML.
//
// Fields are strings on purpose: file input goes through the same
// normalization as interactive input, so "4,5%" is a valid rate and "180"
// a valid maturity in days.
type Request struct {
	Kind     string `json:"kind" yaml:"kind" validate:"required"`
	Spot     string `json:"spot" yaml:"spot" validate:"required"`
	Strike   string `json:"strike" yaml:"strike" validate:"required"`
	Rate     string `json:"rate" yaml:"rate" validate:"required"`
	Maturity string `json:"maturity" yaml:"maturity" validate:"required"`
	Vol      string `json:"volatility" yaml:"volatility" validate:"required"`
}

var validate = validator.New()

// Contract normalizes and validates the request into a pricing contract.
func (r Request) Contract() (pricing.Contract, error) {
	if err := validate.Struct(r); err != nil {
		return pricing.Contract{}, fmt.Errorf("incomplete request: %w", err)
	}
	return FromStrings(r.Kind, r.Spot, r.Strike, r.Rate, r.Maturity, r.Vol)
}

// LoadFile reads a pricing request from path and returns the validated
// contract. The format is chosen by file extension: .json, .yaml or .yml.
func LoadFile(path string) (pricing.Contract, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return pricing.Contract{}, fmt.Errorf("reading request: %w", err)
	}

	var req Request
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(b, &req); err != nil {
			return pricing.Contract{}, fmt.Errorf("invalid JSON request %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &req); err != nil {
			return pricing.Contract{}, fmt.Errorf("invalid YAML request %s: %w", path, err)
		}
	default:
		return pricing.Contract{}, fmt.Errorf("unsupported request format %q (want .json, .yaml or .yml)", ext)
	}

	logger.Debugf("loaded request from %s: %+v", path, req)
	return req.Contract()
}
