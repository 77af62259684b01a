package input

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/contactkeval/option-pricer/internal/pricing"
)

func TestPrompterCollect(t *testing.T) {
	in := strings.NewReader("call\n100\n100\n5%\n1\n0,2\n")
	var out bytes.Buffer

	c, err := NewPrompterFromReader(in, &out).Collect()
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	want := pricing.Contract{Kind: pricing.Call, Spot: 100, Strike: 100, Rate: 0.05, Maturity: 1, Vol: 0.2}
	if c != want {
		t.Fatalf("Collect = %+v, want %+v", c, want)
	}
}

func TestPrompterReprompts(t *testing.T) {
	// Bad kind, bad spot and a negative strike each get asked again.
	in := strings.NewReader("banana\nput\nabc\n95\n-10\n100\n0.03\n180\n25%\n")
	var out bytes.Buffer

	c, err := NewPrompterFromReader(in, &out).Collect()
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	want := pricing.Contract{Kind: pricing.Put, Spot: 95, Strike: 100, Rate: 0.03, Maturity: 180.0 / 365, Vol: 0.25}
	if c != want {
		t.Fatalf("Collect = %+v, want %+v", c, want)
	}

	// Errors were surfaced to the user, not swallowed.
	msgs := out.String()
	for _, frag := range []string{"option type", "not a number", "strike price must be positive"} {
		if !strings.Contains(msgs, frag) {
			t.Errorf("prompt output missing %q:\n%s", frag, msgs)
		}
	}
}

func TestPrompterEOF(t *testing.T) {
	in := strings.NewReader("call\n100\n")
	var out bytes.Buffer

	_, err := NewPrompterFromReader(in, &out).Collect()
	if !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF when input ends early, got %v", err)
	}
}
