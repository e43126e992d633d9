package sizeutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidSize - the value is not a number followed by B, KB, MB or GB.
var ErrInvalidSize = errors.New("invalid size")

var units = []struct {
	suffix string
	shift  uint
}{
	{"GB", 30},
	{"MB", 20},
	{"KB", 10},
	{"B", 0},
}

// ParseSize - parses sizes such as "64MB" or "512kb" into bytes.
func ParseSize(s string) (int, error) {
	upper := strings.ToUpper(strings.TrimSpace(s))
	for _, unit := range units {
		number, ok := strings.CutSuffix(upper, unit.suffix)
		if !ok {
			continue
		}

		value, err := strconv.Atoi(number)
		if err != nil || value < 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidSize, s)
		}
		if value > (int(^uint(0)>>1))>>unit.shift {
			return 0, fmt.Errorf("%w: %q overflows", ErrInvalidSize, s)
		}

		return value << unit.shift, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidSize, s)
}
