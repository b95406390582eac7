package jsonschema4

import (
	"math/big"
	"strconv"
	"strings"
)

// Rat wraps math/big.Rat so that numeric keywords (minimum, maximum,
// multipleOf) compare values exactly instead of through floating point,
// per the Open Question in spec §9 about multipleOf precision.
type Rat struct {
	*big.Rat
}

// NewRatFromValue builds a Rat from a numeric Value (integer or number).
// Numbers are parsed from their decimal string form rather than from the
// float64 bit pattern, so values like 0.1 keep their exact textual ratio.
func NewRatFromValue(v *Value) *Rat {
	if v == nil {
		return nil
	}
	switch v.Kind() {
	case KindInteger:
		return &Rat{new(big.Rat).SetInt64(v.Int())}
	case KindNumber:
		r := new(big.Rat)
		if _, ok := r.SetString(strconv.FormatFloat(v.Float(), 'f', -1, 64)); ok {
			return &Rat{r}
		}
		return &Rat{new(big.Rat).SetFloat64(v.Float())}
	default:
		return nil
	}
}

// FormatRat renders r as a plain decimal string, trimming trailing zeroes,
// for use inside error messages ("<v> < minimum(<m>)").
func FormatRat(r *Rat) string {
	if r == nil || r.Rat == nil {
		return "null"
	}
	if r.IsInt() {
		return r.Num().String()
	}
	dec := r.FloatString(10)
	dec = strings.TrimRight(dec, "0")
	dec = strings.TrimRight(dec, ".")
	if dec == "" {
		return "0"
	}
	return dec
}
