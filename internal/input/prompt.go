package input

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/contactkeval/option-pricer/internal/logger"
	"github.com/contactkeval/option-pricer/internal/pricing"
)

// Prompter collects pricing parameters interactively. Malformed input is
// reported and the same question asked again; the loop only gives up when
// the input stream ends.
//
// Inject a custom reader/writer for tests.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewPrompter creates a Prompter using stdin/stdout.
func NewPrompter() *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(os.Stdin),
		out:     os.Stdout,
	}
}

// NewPrompterFromReader creates a Prompter with custom reader/writer (for tests).
func NewPrompterFromReader(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(r),
		out:     w,
	}
}

// Collect prompts for all six parameters and returns a validated contract.
func (p *Prompter) Collect() (pricing.Contract, error) {
	kind, err := p.kind("Option type - 'c' or 'call' for call option, 'p' or 'put' for put option")
	if err != nil {
		return pricing.Contract{}, err
	}

	spot, err := p.float("Current stock price", func(s string) (float64, error) {
		return ParsePrice("spot price", s)
	})
	if err != nil {
		return pricing.Contract{}, err
	}

	strike, err := p.float("Strike price", func(s string) (float64, error) {
		return ParsePrice("strike price", s)
	})
	if err != nil {
		return pricing.Contract{}, err
	}

	rate, err := p.float("Risk-free interest rate", ParseRate)
	if err != nil {
		return pricing.Contract{}, err
	}

	maturity, err := p.float("Time to maturity (years, or days if > 1)", ParseMaturity)
	if err != nil {
		return pricing.Contract{}, err
	}

	vol, err := p.float("Volatility of returns of the underlying asset", ParseVolatility)
	if err != nil {
		return pricing.Contract{}, err
	}

	c := pricing.Contract{Kind: kind, Spot: spot, Strike: strike, Rate: rate, Maturity: maturity, Vol: vol}
	if err := c.Validate(); err != nil {
		return pricing.Contract{}, err
	}
	logger.Debugf("collected contract: %+v", c)
	return c, nil
}

// kind prompts until the answer parses as an option kind.
func (p *Prompter) kind(prompt string) (pricing.Kind, error) {
	for {
		raw, err := p.ask(prompt)
		if err != nil {
			return 0, err
		}
		k, err := pricing.ParseKind(raw)
		if err != nil {
			fmt.Fprintf(p.out, "%v\n", err)
			continue
		}
		return k, nil
	}
}

// float prompts until the answer passes the given parser.
func (p *Prompter) float(prompt string, parse func(string) (float64, error)) (float64, error) {
	for {
		raw, err := p.ask(prompt)
		if err != nil {
			return 0, err
		}
		v, err := parse(raw)
		if err != nil {
			fmt.Fprintf(p.out, "%v\n", err)
			continue
		}
		return v, nil
	}
}

func (p *Prompter) ask(prompt string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", prompt)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return p.scanner.Text(), nil
}
