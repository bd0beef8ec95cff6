package fnr

import "errors"

// MOD11 weight vectors for the two control digits. The first is applied over
// the 9 leading digits, the second over those 9 plus the first control digit.
var (
	controlWeights1 = []int{3, 7, 6, 1, 8, 9, 4, 5, 2}
	controlWeights2 = []int{5, 4, 3, 2, 7, 6, 5, 4, 3, 2}
)

// errNoControlDigits reports a 9-digit prefix for which no control digits
// exist: a weighted sum landed on remainder 1, which would require the
// nonexistent digit 10. Roughly one prefix in eleven hits this per pass.
// The generator skips such prefixes silently; the validator reports them as
// an ordinary control-digit mismatch.
var errNoControlDigits = errors.New("no valid control digits for digit sequence")

// controlDigits appends the two MOD11 control digits to a 9-digit prefix,
// returning the full 11-digit number. The prefix must contain ASCII digits
// only.
func controlDigits(prefix string) (string, error) {
	d1, err := mod11Digit(prefix, controlWeights1)
	if err != nil {
		return "", err
	}
	withFirst := prefix + string(rune('0'+d1))

	d2, err := mod11Digit(withFirst, controlWeights2)
	if err != nil {
		return "", err
	}
	return withFirst + string(rune('0'+d2)), nil
}

// mod11Digit computes a single control digit over digits[i] weighted by
// weights[i]. Remainder 0 maps to digit 0; remainder 1 has no valid digit.
func mod11Digit(digits string, weights []int) (int, error) {
	sum := 0
	for i, w := range weights {
		sum += int(digits[i]-'0') * w
	}
	rest := sum % 11
	if rest == 0 {
		return 0, nil
	}
	if rest == 1 {
		return 0, errNoControlDigits
	}
	return 11 - rest, nil
}
