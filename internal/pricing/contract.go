package pricing

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidInput is wrapped by every validation failure reported by this
// package. Callers can test for it with errors.Is while still getting a
// message that names the offending parameter.
var ErrInvalidInput = errors.New("invalid input")

// Kind identifies the exercise side of a European option.
type Kind int

const (
	Call Kind = iota + 1
	Put
)

// ParseKind normalizes a user-supplied option type string to a Kind.
//
// Accepted spellings (case-insensitive, surrounding whitespace ignored):
//   - "c" or "call" for a call option
//   - "p" or "put" for a put option
//
// Any other input is an InvalidInput error. Normalization happens here, at
// the boundary, so the pricing formulas only ever branch on the two-variant
// Kind and never on raw strings.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "c", "call":
		return Call, nil
	case "p", "put":
		return Put, nil
	default:
		return 0, fmt.Errorf("%w: option type must be 'c'/'call' or 'p'/'put', got %q", ErrInvalidInput, s)
	}
}

// String returns the canonical lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case Call:
		return "call"
	case Put:
		return "put"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Contract describes a single European option to be priced.
//
// Rate and Vol are in decimal form (0.05 for 5%), Maturity is in years.
// A Contract is a plain value: construct it once from validated input,
// price it, discard it.
type Contract struct {
	Kind     Kind    `json:"kind"`
	Spot     float64 `json:"spot"`       // current price of the underlying
	Strike   float64 `json:"strike"`     // contractual strike price
	Rate     float64 `json:"rate"`       // continuously-compounded annual risk-free rate
	Maturity float64 `json:"maturity"`   // time to expiry in years
	Vol      float64 `json:"volatility"` // annualized volatility of returns
}

// Validate reports the first constraint violated by the contract, or nil.
//
// Spot, strike, maturity and volatility must be strictly positive: the
// formulas divide by Vol*sqrt(Maturity) and take log(Spot/Strike), so zero
// or negative values are erroneous inputs, not degenerate contracts. The
// checks are written !(x > 0) so a NaN fails them as well.
func (c Contract) Validate() error {
	if c.Kind != Call && c.Kind != Put {
		return fmt.Errorf("%w: option kind must be call or put", ErrInvalidInput)
	}
	if !(c.Spot > 0) {
		return fmt.Errorf("%w: spot price must be positive, got %g", ErrInvalidInput, c.Spot)
	}
	if !(c.Strike > 0) {
		return fmt.Errorf("%w: strike price must be positive, got %g", ErrInvalidInput, c.Strike)
	}
	if !(c.Maturity > 0) {
		return fmt.Errorf("%w: maturity must be positive, got %g", ErrInvalidInput, c.Maturity)
	}
	if !(c.Vol > 0) {
		return fmt.Errorf("%w: volatility must be positive, got %g", ErrInvalidInput, c.Vol)
	}
	return nil
}

// Result holds the theoretical price of an option and its five first-order
// sensitivities. Theta is value decay per calendar day; Vega and Rho are per
// one-percentage-point move in volatility and rate respectively.
type Result struct {
	Price float64 `json:"price"`
	Delta float64 `json:"delta"`
	Gamma float64 `json:"gamma"`
	Theta float64 `json:"theta"`
	Vega  float64 `json:"vega"`
	Rho   float64 `json:"rho"`
}
