package forms

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	maxBigInt uint64 = math.MaxInt64
	maxInt    uint64 = math.MaxInt32
)

func cleanText(errs Errors, field, raw string, maxLen int) string {
	value := strings.TrimSpace(raw)
	if value == "" {
		errs.Add(field, msgRequired)
		return ""
	}
	if n := utf8.RuneCountInString(value); n > maxLen {
		errs.Add(field, msgMaxLength(maxLen, n))
	}
	return value
}

func cleanNonNegative(errs Errors, field, raw string, max uint64) uint {
	value := strings.TrimSpace(raw)
	if value == "" {
		errs.Add(field, msgRequired)
		return 0
	}

	n, err := strconv.ParseInt(value, 10, 64)
	switch {
	case errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(value, "-"):
		errs.Add(field, msgMaxValue(max))
		return 0
	case errors.Is(err, strconv.ErrRange):
		errs.Add(field, msgMinValue(0))
		return 0
	case err != nil:
		errs.Add(field, msgInteger)
		return 0
	case n < 0:
		errs.Add(field, msgMinValue(0))
		return 0
	case uint64(n) > max:
		errs.Add(field, msgMaxValue(max))
		return 0
	}
	return uint(n)
}
