package endian

import (
	"errors"
	"fmt"
	"strings"
)

type Order string

const (
	Big    Order = "big"
	Little Order = "little"

	DefaultOrder = Big
)

var ErrInvalidEndian = errors.New("invalid endian")

const hexDigits = "0123456789ABCDEF"

func ParseOrder(s string) (Order, error) {
	switch o := Order(s); o {
	case Big, Little:
		return o, nil
	}
	return "", fmt.Errorf("%w %q, must be %q or %q", ErrInvalidEndian, s, Big, Little)
}

// ToHex formats num as space separated uppercase hex bytes, most significant
// byte first for "big" and reversed byte order for "little".
// Negative numbers are formatted by magnitude with a leading "-".
func ToHex(num int64, endian string) (string, error) {
	order, err := ParseOrder(endian)
	if err != nil {
		return "", err
	}
	return Format(num, order), nil
}

func Format(num int64, order Order) string {
	u := uint64(num)
	if num < 0 {
		u = uint64(-num)
	}
	bytes := Bytes(u)
	if order == Little {
		for i, j := 0, len(bytes)-1; i < j; i, j = i+1, j-1 {
			bytes[i], bytes[j] = bytes[j], bytes[i]
		}
	}
	s := strings.Join(bytes, " ")
	if num < 0 {
		s = "-" + s
	}
	return s
}

// Bytes splits u into two digit hex groups, most significant first.
// Zero is a single "00" group.
func Bytes(u uint64) []string {
	var digits []byte
	for u > 0 {
		digits = append([]byte{hexDigits[u%16]}, digits...)
		u /= 16
	}
	if len(digits)%2 == 1 {
		digits = append([]byte{'0'}, digits...)
	}
	if len(digits) == 0 {
		return []string{"00"}
	}
	groups := make([]string, 0, len(digits)/2)
	for i := 0; i < len(digits); i += 2 {
		groups = append(groups, string(digits[i:i+2]))
	}
	return groups
}
