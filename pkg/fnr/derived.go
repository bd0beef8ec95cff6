package fnr

import "time"

// Gender is the registered sex encoded in a fodselsnummer.
type Gender int

const (
	GenderFemale Gender = iota
	GenderMale
)

// String returns "female" or "male".
func (g Gender) String() string {
	if g == GenderMale {
		return "male"
	}
	return "female"
}

// Gender returns the registered sex: the last individual-number digit is odd
// for males and even for females.
func (n Number) Gender() Gender {
	if n.individual%2 == 1 {
		return GenderMale
	}
	return GenderFemale
}

// IsOver18 returns true if the person is 18 years old or older at the given
// reference time. Uses calendar arithmetic (AddDate) for accurate
// birthday-boundary handling.
func (n Number) IsOver18(now time.Time) bool {
	adultAt := n.birthDate.AddDate(18, 0, 0)
	return !now.UTC().Before(adultAt)
}
