// Package input collects and normalizes the six pricing parameters from the
// outside world (interactive prompt, request file, or command-line flags)
// and hands the engine a validated contract. All sources share the same
// normalization rules:
//
//   - a locale decimal comma is accepted anywhere a number is ("102,50")
//   - rate and volatility may carry a "%" suffix, meaning value/100
//   - a maturity greater than 1 is read as days and converted to days/365
//
// The pricing engine never sees malformed input; it still re-validates.
package input

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/contactkeval/option-pricer/internal/pricing"
)

const daysPerYear = 365

// normalizeDecimal trims whitespace and replaces a decimal comma with a
// decimal point so locale-formatted numbers parse.
func normalizeDecimal(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
}

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(normalizeDecimal(s), 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", strings.TrimSpace(s))
	}
	return v, nil
}

// parsePercentAware parses a number that may carry a "%" suffix, in which
// case the value is divided by 100 ("4.5%" -> 0.045).
func parsePercentAware(s string) (float64, error) {
	n := normalizeDecimal(s)
	if strings.HasSuffix(n, "%") {
		v, err := parseFloat(strings.TrimSuffix(n, "%"))
		if err != nil {
			return 0, err
		}
		return v / 100, nil
	}
	return parseFloat(n)
}

// ParsePrice parses a spot or strike price. The value must be strictly
// positive.
func ParsePrice(name, s string) (float64, error) {
	v, err := parseFloat(s)
	if err != nil {
		return 0, err
	}
	if !(v > 0) {
		return 0, fmt.Errorf("%s must be positive, got %g", name, v)
	}
	return v, nil
}

// ParseRate parses the risk-free rate. A "%" suffix is interpreted as a
// percentage; negative rates are allowed.
func ParseRate(s string) (float64, error) {
	return parsePercentAware(s)
}

// ParseVolatility parses the annualized volatility. A "%" suffix is
// interpreted as a percentage; the result must be strictly positive.
func ParseVolatility(s string) (float64, error) {
	v, err := parsePercentAware(s)
	if err != nil {
		return 0, err
	}
	if !(v > 0) {
		return 0, fmt.Errorf("volatility must be positive, got %g", v)
	}
	return v, nil
}

// ParseMaturity parses the time to expiry. A value greater than 1 is
// assumed to be a day count and is converted to years ("180" -> 180/365);
// values up to 1 are taken as years directly. The result must be strictly
// positive.
func ParseMaturity(s string) (float64, error) {
	v, err := parseFloat(s)
	if err != nil {
		return 0, err
	}
	if !(v > 0) {
		return 0, fmt.Errorf("maturity must be positive, got %g", v)
	}
	if v > 1 {
		v /= daysPerYear
	}
	return v, nil
}

// FromStrings builds a validated contract from the six raw parameter
// strings, applying the shared normalization rules. This is the path used
// by one-shot command-line invocations.
func FromStrings(kind, spot, strike, rate, maturity, vol string) (pricing.Contract, error) {
	k, err := pricing.ParseKind(kind)
	if err != nil {
		return pricing.Contract{}, err
	}
	s, err := ParsePrice("spot price", spot)
	if err != nil {
		return pricing.Contract{}, err
	}
	x, err := ParsePrice("strike price", strike)
	if err != nil {
		return pricing.Contract{}, err
	}
	r, err := ParseRate(rate)
	if err != nil {
		return pricing.Contract{}, err
	}
	t, err := ParseMaturity(maturity)
	if err != nil {
		return pricing.Contract{}, err
	}
	v, err := ParseVolatility(vol)
	if err != nil {
		return pricing.Contract{}, err
	}

	c := pricing.Contract{Kind: k, Spot: s, Strike: x, Rate: r, Maturity: t, Vol: v}
	if err := c.Validate(); err != nil {
		return pricing.Contract{}, err
	}
	return c, nil
}
