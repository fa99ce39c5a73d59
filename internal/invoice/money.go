package invoice

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Money is a monetary amount in paise (minor currency units). Storing
// amounts as integers keeps tax arithmetic exact; the ₹1 rounding
// tolerance becomes a plain integer comparison.
type Money int64

// PaisePerRupee is the number of minor units in one rupee.
const PaisePerRupee = 100

// RupeesToMoney converts a rupee amount to Money, rounding half away
// from zero at the paise level.
func RupeesToMoney(r float64) Money {
	return Money(math.Round(r * PaisePerRupee))
}

// Rupees returns the amount in rupees.
func (m Money) Rupees() float64 {
	return float64(m) / PaisePerRupee
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool { return m == 0 }

// Abs returns the absolute amount.
func (m Money) Abs() Money {
	if m < 0 {
		return -m
	}
	return m
}

// String formats the amount as a plain rupee decimal, e.g. "1180.00".
func (m Money) String() string {
	sign := ""
	v := m
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/PaisePerRupee, v%PaisePerRupee)
}

// MarshalJSON encodes the amount as a JSON number in rupees, matching
// the wire format the extraction capability produces.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON accepts a JSON number, a numeric string, or null.
// Extraction output is not always clean about number-vs-string.
func (m *Money) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*m = 0
		return nil
	}
	s = strings.Trim(s, `"`)
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		*m = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid monetary value %s: %w", string(data), err)
	}
	*m = RupeesToMoney(f)
	return nil
}

// compile-time interface checks
var (
	_ json.Marshaler   = Money(0)
	_ json.Unmarshaler = (*Money)(nil)
)
