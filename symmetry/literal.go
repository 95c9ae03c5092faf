// SPDX-License-Identifier: MIT

package symmetry

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseOperation parses a coordinate-triplet literal such as "-y+1/2,x,z-1/4".
// Each component is a signed sum of x, y, z terms (optionally with a numeric
// factor) and constants, which may be decimals or fractions.
func ParseOperation(literal string) (Operation, error) {
	parts := strings.Split(literal, ",")
	if len(parts) != 3 {
		return Operation{}, fmt.Errorf("%q: expected 3 components: %w", literal, ErrInvalidLiteral)
	}
	coefficients := make([]float64, 0, 12)
	for _, part := range parts {
		row, err := parseComponent(part)
		if err != nil {
			return Operation{}, fmt.Errorf("%q: %w", literal, err)
		}
		coefficients = append(coefficients, row[:]...)
	}
	op, err := NewOperation(coefficients)
	if err != nil {
		return Operation{}, err
	}
	op.literal = strings.ReplaceAll(strings.ToLower(literal), " ", "")

	return op, nil
}

// MustParseOperation is ParseOperation that panics on error. Intended for
// tests and package level tables.
func MustParseOperation(literal string) Operation {
	op, err := ParseOperation(literal)
	if err != nil {
		panic(err)
	}

	return op
}

// ParseCoefficients parses 12 numeric tokens separated by whitespace, commas
// or semicolons in row order.
func ParseCoefficients(text string) (Operation, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t' || r == '\n'
	})
	values := make([]float64, len(fields))
	for i, f := range fields {
		v, err := parseNumber(f)
		if err != nil {
			return Operation{}, fmt.Errorf("token %d %q: %w", i, f, ErrInvalidLiteral)
		}
		values[i] = v
	}

	return NewOperation(values)
}

func parseComponent(s string) ([4]float64, error) {
	var row [4]float64
	s = strings.ReplaceAll(strings.ToLower(s), " ", "")
	if s == "" {
		return row, fmt.Errorf("empty component: %w", ErrInvalidLiteral)
	}
	for i := 0; i < len(s); {
		sign := 1.0
		switch s[i] {
		case '+':
			i++
		case '-':
			sign = -1
			i++
		}
		j := i
		for j < len(s) && (isDigit(s[j]) || s[j] == '.' || s[j] == '/') {
			j++
		}
		factor, hasFactor := 1.0, j > i
		if hasFactor {
			v, err := parseNumber(s[i:j])
			if err != nil {
				return row, fmt.Errorf("term %q: %w", s[i:j], ErrInvalidLiteral)
			}
			factor = v
		}
		i = j
		if i < len(s) && s[i] == '*' {
			i++
		}
		if i < len(s) && s[i] >= 'x' && s[i] <= 'z' {
			row[s[i]-'x'] += sign * factor
			i++
			continue
		}
		if !hasFactor {
			return row, fmt.Errorf("component %q: %w", s, ErrInvalidLiteral)
		}
		row[3] += sign * factor
	}

	return row, nil
}

func parseNumber(s string) (float64, error) {
	if num, den, ok := strings.Cut(s, "/"); ok {
		n, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return 0, err
		}
		d, err := strconv.ParseFloat(den, 64)
		if err != nil {
			return 0, err
		}
		if d == 0 {
			return 0, strconv.ErrRange
		}
		return n / d, nil
	}

	return strconv.ParseFloat(s, 64)
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// formatLiteral renders coefficients as a coordinate triplet. Translations
// that are multiples of 1/12 are written as reduced fractions.
func formatLiteral(core [12]float64) string {
	rows := make([]string, 3)
	for r := 0; r < 3; r++ {
		var sb strings.Builder
		for c := 0; c < 3; c++ {
			writeTerm(&sb, core[4*r+c], string(rune('x'+c)))
		}
		writeTerm(&sb, core[4*r+3], "")
		if sb.Len() == 0 {
			sb.WriteString("0")
		}
		rows[r] = strings.TrimPrefix(sb.String(), "+")
	}

	return strings.Join(rows, ",")
}

func writeTerm(sb *strings.Builder, v float64, variable string) {
	const eps = 1e-10
	if math.Abs(v) < eps {
		return
	}
	if v < 0 {
		sb.WriteByte('-')
	} else {
		sb.WriteByte('+')
	}
	a := math.Abs(v)
	if variable != "" && math.Abs(a-1) < eps {
		sb.WriteString(variable)
		return
	}
	sb.WriteString(formatNumber(a))
	sb.WriteString(variable)
}

func formatNumber(a float64) string {
	twelfths := a * 12
	if n := math.Round(twelfths); math.Abs(twelfths-n) < 1e-8 {
		num, den := int(n), 12
		g := gcd(num, den)
		if den/g == 1 {
			return strconv.Itoa(num / g)
		}
		return fmt.Sprintf("%d/%d", num/g, den/g)
	}

	return strconv.FormatFloat(a, 'g', -1, 64)
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}
