package number

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrInvalid = errors.New("invalid number")
	ErrRange   = errors.New("value out of range")
)

const (
	hexPrefix    = "0x"
	negHexPrefix = "-0x"
)

type Kind int

const (
	Integer Kind = iota + 1
	Float
)

func (k Kind) String() string {
	switch k {
	case Integer:
		return "integer"
	case Float:
		return "float"
	}
	return "invalid"
}

// Number 是 Parse 的结果，Kind 决定 Int 和 Float 哪个字段有效
type Number struct {
	Kind  Kind
	Int   int64
	Float float64
}

func IntNumber(v int64) Number {
	return Number{Kind: Integer, Int: v}
}

func FloatNumber(v float64) Number {
	return Number{Kind: Float, Float: v}
}

// Value returns int64 for integers and float64 for floats.
func (n Number) Value() interface{} {
	if n.Kind == Float {
		return n.Float
	}
	return n.Int
}

func (n Number) String() string {
	if n.Kind == Float {
		s := strconv.FormatFloat(n.Float, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}
	return strconv.FormatInt(n.Int, 10)
}

func invalid(s, reason string) error {
	return fmt.Errorf("%w %q: %s", ErrInvalid, s, reason)
}

// Parse converts a decimal integer, a decimal float or a 0x prefixed
// hexadecimal integer into a Number. Leading and trailing whitespace is
// ignored and hex digits are case insensitive.
func Parse(s string) (Number, error) {
	str := strings.ToLower(strings.TrimSpace(s))
	if str == "" {
		return Number{}, invalid(s, "empty string")
	}
	if strings.HasPrefix(str, hexPrefix) || strings.HasPrefix(str, negHexPrefix) {
		return parseHex(s, str)
	}

	switch strings.Count(str, ".") {
	case 0:
		return parseInteger(s, str)
	case 1:
		return parseFloat(s, str)
	}
	return Number{}, invalid(s, "more than one decimal point")
}

func parseHex(raw, str string) (Number, error) {
	if strings.Contains(str, ".") {
		return Number{}, invalid(raw, "hex number with decimal point")
	}
	negative := strings.HasPrefix(str, "-")
	digits := strings.TrimPrefix(str, "-")[len(hexPrefix):]
	if digits == "" {
		return Number{}, invalid(raw, "no hex digits")
	}
	if !isDigits(digits, 16) {
		return Number{}, invalid(raw, "bad hex digit")
	}
	return signed(raw, digits, 16, negative)
}

func parseInteger(raw, str string) (Number, error) {
	negative := strings.HasPrefix(str, "-")
	digits := strings.TrimPrefix(str, "-")
	if digits == "" || !isDigits(digits, 10) {
		return Number{}, invalid(raw, "not a decimal integer")
	}
	return signed(raw, digits, 10, negative)
}

func parseFloat(raw, str string) (Number, error) {
	negative := strings.HasPrefix(str, "-")
	body := strings.TrimPrefix(str, "-")
	dot := strings.IndexByte(body, '.')
	left, right := body[:dot], body[dot+1:]
	if left == "" && right == "" {
		return Number{}, invalid(raw, "no digits around decimal point")
	}
	if (left != "" && !isDigits(left, 10)) || (right != "" && !isDigits(right, 10)) {
		return Number{}, invalid(raw, "not a decimal float")
	}
	if left == "" {
		left = "0"
	}
	if right == "" {
		right = "0"
	}
	// 数字已校验，交给 ParseFloat 保证正确舍入
	f, err := strconv.ParseFloat(left+"."+right, 64)
	if err != nil {
		return Number{}, fmt.Errorf("%w %q: %v", ErrInvalid, raw, err)
	}
	if negative {
		f = -f
	}
	return FloatNumber(f), nil
}

// signed accumulates the magnitude as uint64 so that the most negative
// int64 is still representable.
func signed(raw, digits string, base int, negative bool) (Number, error) {
	u, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		return Number{}, fmt.Errorf("%w %q: %w", ErrInvalid, raw, ErrRange)
	}
	if negative {
		if u > 1<<63 {
			return Number{}, fmt.Errorf("%w %q: %w", ErrInvalid, raw, ErrRange)
		}
		return IntNumber(-int64(u)), nil
	}
	if u > 1<<63-1 {
		return Number{}, fmt.Errorf("%w %q: %w", ErrInvalid, raw, ErrRange)
	}
	return IntNumber(int64(u)), nil
}

func isDigits(s string, base int) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case '0' <= c && c <= '9':
		case base == 16 && 'a' <= c && c <= 'f':
		default:
			return false
		}
	}
	return true
}
