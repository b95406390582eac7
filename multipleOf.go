package jsonschema4

import "math/big"

// evaluateMultipleOf checks exact divisibility using rational arithmetic
// (spec §9 Open Question: the original's floating-point division loses
// precision near the limits; big.Rat keeps the comparison exact).
func evaluateMultipleOf(divisor *Rat, value *Rat, p path) *ValidationError {
	if divisor == nil || divisor.Sign() == 0 {
		return nil
	}
	quotient := new(big.Rat).Quo(value.Rat, divisor.Rat)
	if !quotient.IsInt() {
		e := newError(p, "Not multiple of %s.", FormatRat(divisor))
		return &e
	}
	return nil
}
