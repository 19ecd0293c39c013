package lzw

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatCodes writes codes as decimal integers separated by single spaces.
func FormatCodes(codes []int) string {
	buf := make([]byte, 0, 8*len(codes))
	for i, code := range codes {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = strconv.AppendInt(buf, int64(code), 10)
	}
	return string(buf)
}

// ParseCodes reverses FormatCodes.  Each field must be a non-empty run of
// decimal digits; the empty string yields no codes.
func ParseCodes(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}

	fields := strings.Split(s, " ")
	codes := make([]int, len(fields))
	for i, field := range fields {
		if field == "" || strings.TrimLeft(field, "0123456789") != "" {
			return nil, fmt.Errorf("%w: field %d (%q) is not a decimal code", ErrCorrupt, i, field)
		}
		code, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("%w: field %d: %v", ErrCorrupt, i, err)
		}
		codes[i] = code
	}
	return codes, nil
}
