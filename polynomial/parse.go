// SPDX-License-Identifier: MIT
// Package: costnet/polynomial
//
// parse.go — string → dense coefficient slice.
//
// Contract:
//   - Output length = highest exponent seen + 1; gaps are zero-filled.
//   - Same-exponent terms are summed in input order.
//   - An input whose only terms were dropped (bare e^K) yields [0].
//   - Never panics; every failure is a *ParseError.
//
// Complexity:
//   - Time O(T log T + N) for T terms and highest exponent N.
//   - Space O(T + N).

package polynomial

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/emirpasic/gods/maps/treemap"
)

// MaxExponent bounds the exponent accepted in a single term so that a typo
// like "x^99999999" cannot allocate an enormous coefficient slice.
const MaxExponent = 1 << 12

// termPattern matches one unsigned term: literal, e^K multiplier, x^N.
//
//	group 1: literal   group 2: K   group 3: "x"   group 4: N
var termPattern = regexp.MustCompile(`^(\d+\.?\d*|\.\d+)?(?:e\^(\d+))?(?:(x)(?:\^(\d+))?)?$`)

// signedTerm is one '+'/'-' separated chunk of the input, trimmed.
type signedTerm struct {
	sign float64
	body string
}

// Parse converts s into coefficients [c0, c1, …, ck] where ci multiplies x^i.
// Whitespace may surround terms and signs but not split a term: "3 8x"
// is an error, not 38x.
func Parse(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, &ParseError{Input: s, Term: s, Reason: "empty polynomial"}
	}

	terms, err := splitTerms(s)
	if err != nil {
		return nil, err
	}

	// exponent → accumulated coefficient, kept sorted by exponent.
	acc := treemap.NewWithIntComparator()
	for _, t := range terms {
		exp, coef, keep, err := readTerm(s, t.body)
		if err != nil {
			return nil, err
		}
		if !keep {
			continue
		}
		prev := 0.0
		if v, found := acc.Get(exp); found {
			prev = v.(float64)
		}
		acc.Put(exp, prev+t.sign*coef)
	}

	if acc.Empty() {
		return []float64{0}, nil
	}

	// Densify: highest exponent decides the length.
	maxKey, _ := acc.Max()
	out := make([]float64, maxKey.(int)+1)
	it := acc.Iterator()
	for it.Next() {
		out[it.Key().(int)] = it.Value().(float64)
	}

	return out, nil
}

// MustParse is Parse for package-level literals; it panics on error.
func MustParse(s string) []float64 {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// splitTerms cuts input at every '+'/'-' and keeps the sign with the
// following trimmed body. One leading sign is allowed; any other empty
// body is a dangling or doubled sign, reported with the signs around it.
func splitTerms(input string) ([]signedTerm, error) {
	var (
		out     []signedTerm
		sign    = 1.0
		start   = 0
		signPos = -1
	)

	for i := 0; i <= len(input); i++ {
		if i < len(input) && input[i] != '+' && input[i] != '-' {
			continue
		}
		body := strings.TrimSpace(input[start:i])
		switch {
		case body == "" && signPos < 0 && len(out) == 0 && i < len(input):
			// leading sign
		case body == "":
			from, to := i, i
			if signPos >= 0 {
				from = signPos
			}
			if i < len(input) {
				to = i + 1
			}
			return nil, &ParseError{Input: input, Term: strings.TrimSpace(input[from:to]), Reason: "dangling sign"}
		default:
			out = append(out, signedTerm{sign: sign, body: body})
		}
		if i < len(input) {
			sign = 1
			if input[i] == '-' {
				sign = -1
			}
			signPos = i
		}
		start = i + 1
	}

	return out, nil
}

// readTerm decodes one unsigned term. keep=false marks a term that parsed
// but carries no x factor next to an e^K multiplier.
func readTerm(input, body string) (exp int, coef float64, keep bool, err error) {
	m := termPattern.FindStringSubmatch(body)
	if m == nil {
		return 0, 0, false, &ParseError{Input: input, Term: body, Reason: unsupportedReason(body)}
	}

	coef = 1
	if m[1] != "" {
		if coef, err = strconv.ParseFloat(m[1], 64); err != nil {
			return 0, 0, false, &ParseError{Input: input, Term: body, Reason: "bad numeric literal"}
		}
	}

	if m[3] == "x" {
		exp = 1
		if m[4] != "" {
			if exp, err = atoiBounded(m[4]); err != nil {
				return 0, 0, false, &ParseError{Input: input, Term: body, Reason: err.Error()}
			}
		}
	}

	if m[2] != "" {
		if m[3] == "" {
			return 0, 0, false, nil
		}
		k, kerr := atoiBounded(m[2])
		if kerr != nil {
			return 0, 0, false, &ParseError{Input: input, Term: body, Reason: kerr.Error()}
		}
		coef *= float64(k)
	}

	return exp, coef, true, nil
}

func atoiBounded(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n > MaxExponent {
		return 0, errExponentRange
	}
	return n, nil
}

// unsupportedReason gives a slightly more useful message for the common
// mistakes seen in hand-written cost files.
func unsupportedReason(body string) string {
	switch {
	case strings.ContainsAny(body, "*/()"):
		return "unsupported operator"
	case strings.IndexFunc(body, unicode.IsSpace) >= 0:
		return "whitespace inside term"
	case strings.HasSuffix(body, "^"):
		return "missing integer exponent"
	default:
		return "unsupported term"
	}
}
