// Package literal parses the integer literals accepted by rax.
//
// A literal is an optional sign followed by digits in one of three bases:
//
//	0x1f, 0X1F   hexadecimal
//	017          octal (leading zero)
//	15           decimal
//
// Leading blanks are skipped. Parsing stops at the first character that
// cannot continue the literal; Scan reports where that happened so callers
// can decide whether trailing text is acceptable.
package literal

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Common errors
var (
	ErrSyntax = errors.New("invalid syntax")
	ErrRange  = errors.New("value out of range")
)

// Scan parses a literal at the start of s. It returns the value and the
// unconsumed remainder of s. If no digits could be read, the remainder is s
// itself and the error wraps ErrSyntax. A magnitude outside int64 is
// reported with ErrRange; the remainder is still valid in that case.
func Scan(s string) (int64, string, error) {
	pos := 0
	for pos < len(s) && isBlank(s[pos]) {
		pos++
	}

	negative := false
	if pos < len(s) && (s[pos] == '-' || s[pos] == '+') {
		negative = s[pos] == '-'
		pos++
	}

	base := 10
	digitsStart := pos
	switch {
	case hasHexPrefix(s[pos:]) && pos+2 < len(s) && digitValue(s[pos+2]) < 16:
		base = 16
		pos += 2
		digitsStart = pos
	case pos < len(s) && s[pos] == '0':
		base = 8
	}

	for pos < len(s) && digitValue(s[pos]) < base {
		pos++
	}
	if pos == digitsStart {
		return 0, s, fmt.Errorf("%w: no digits in %q", ErrSyntax, s)
	}

	magnitude, err := strconv.ParseUint(s[digitsStart:pos], base, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, s[pos:], fmt.Errorf("%w: %s", ErrRange, s[:pos])
		}
		return 0, s, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	value, err := applySign(magnitude, negative)
	if err != nil {
		return 0, s[pos:], fmt.Errorf("%w: %s", err, s[:pos])
	}
	return value, s[pos:], nil
}

// Parse parses s as a complete literal. Any text left after the literal
// makes the whole input invalid.
func Parse(s string) (int64, error) {
	value, rest, err := Scan(s)
	if rest != "" {
		return 0, fmt.Errorf("%w: unexpected %q", ErrSyntax, rest)
	}
	if err != nil {
		return 0, err
	}
	return value, nil
}

func applySign(magnitude uint64, negative bool) (int64, error) {
	if negative {
		if magnitude > uint64(math.MaxInt64)+1 {
			return 0, ErrRange
		}
		return int64(-magnitude), nil
	}
	if magnitude > math.MaxInt64 {
		return 0, ErrRange
	}
	return int64(magnitude), nil
}

func hasHexPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

// digitValue returns the numeric value of a digit in any base up to 16,
// or 16 for characters that are not digits.
func digitValue(ch byte) int {
	switch {
	case ch >= '0' && ch <= '9':
		return int(ch - '0')
	case ch >= 'a' && ch <= 'f':
		return int(ch-'a') + 10
	case ch >= 'A' && ch <= 'F':
		return int(ch-'A') + 10
	default:
		return 16
	}
}

func isBlank(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\v' || ch == '\f' || ch == '\r'
}
