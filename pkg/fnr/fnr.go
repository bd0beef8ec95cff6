package fnr

import (
	"errors"
	"strconv"
	"time"

	dErrors "fodselsnummer/pkg/domain-errors"
)

// Rejection reasons. Parse and Validate return one of these sentinels wrapped
// with a domain-error code, so callers can branch with errors.Is or
// dErrors.HasCode instead of matching message strings.
var (
	ErrMalformed          = errors.New("fodselsnummer must be exactly 11 digits")
	ErrDNumberNotAccepted = errors.New("d-numbers are not accepted")
	ErrDayOutOfRange      = errors.New("day out of range")
	ErrHNumberNotAccepted = errors.New("h-numbers are not accepted")
	ErrMonthOutOfRange    = errors.New("month out of range")
	ErrInvalidDate        = errors.New("not a valid calendar date")
	ErrFutureDate         = errors.New("birth date is in the future")
	ErrControlDigits      = errors.New("control digits do not match")
)

// Options controls which fodselsnummer variants are accepted.
//
// The zero value rejects both D-numbers and H-numbers; most callers want
// DefaultOptions, which accepts D-numbers.
type Options struct {
	// AcceptDNumbers accepts D-numbers, the temporary-resident variant with
	// the day field offset by +40.
	AcceptDNumbers bool

	// AcceptHNumbers accepts H-numbers, the healthcare-context variant with
	// the month field offset by +40.
	AcceptHNumbers bool
}

// DefaultOptions accepts D-numbers and rejects H-numbers.
func DefaultOptions() Options {
	return Options{AcceptDNumbers: true}
}

// Number is a validated Norwegian fodselsnummer.
//
// Invariants:
//   - Exactly 11 ASCII digits with matching MOD11 control digits
//   - Encodes a real calendar date that is not in the future at parse time
type Number struct {
	value      string
	birthDate  time.Time
	individual int
	dNumber    bool
	hNumber    bool
}

// Parse validates value and returns it as a Number. The future-date rule is
// evaluated against the current time; use ParseAt to pin the evaluation time.
func Parse(value string, opts Options) (Number, error) {
	return ParseAt(value, opts, time.Now().UTC())
}

// MustParse parses value, panicking if invalid.
// Use only in tests or when the value is known to be valid.
func MustParse(value string, opts Options) Number {
	n, err := Parse(value, opts)
	if err != nil {
		panic(err)
	}
	return n
}

// Validate reports whether value is a valid fodselsnummer under opts.
// It returns nil on success and the first failing rule's error otherwise.
func Validate(value string, opts Options) error {
	_, err := Parse(value, opts)
	return err
}

// Check is the non-failing form of Validate. It reports false for invalid
// input and forwards the rejection reason to onReject, which may be nil.
//
// Route reasons to a logger with a closure:
//
//	fnr.Check(value, opts, func(reason string) { log.Println(reason) })
func Check(value string, opts Options, onReject func(reason string)) bool {
	if err := Validate(value, opts); err != nil {
		if onReject != nil {
			onReject(err.Error())
		}
		return false
	}
	return true
}

// ParseAt is the pure form of Parse: the future-date rule is evaluated
// against now instead of the wall clock. Rules run in order; the first
// failure wins.
func ParseAt(value string, opts Options, now time.Time) (Number, error) {
	if len(value) != 11 {
		return Number{}, dErrors.Wrap(ErrMalformed, dErrors.CodeInvalidInput, "invalid fodselsnummer")
	}
	for i := 0; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return Number{}, dErrors.Wrap(ErrMalformed, dErrors.CodeInvalidInput, "invalid fodselsnummer")
		}
	}

	day := atoi2(value[0:2])
	month := atoi2(value[2:4])
	year := atoi2(value[4:6])
	individual := atoi2(value[6:9])

	dNumber := false
	if day >= 41 && day <= 71 {
		if !opts.AcceptDNumbers {
			return Number{}, dErrors.Wrap(ErrDNumberNotAccepted, dErrors.CodeValidation, "invalid fodselsnummer")
		}
		day -= 40
		dNumber = true
	}
	if day < 1 || day > 31 {
		return Number{}, dErrors.Wrap(ErrDayOutOfRange, dErrors.CodeValidation, "invalid fodselsnummer")
	}

	hNumber := false
	if month >= 41 && month <= 52 {
		if !opts.AcceptHNumbers {
			return Number{}, dErrors.Wrap(ErrHNumberNotAccepted, dErrors.CodeValidation, "invalid fodselsnummer")
		}
		month -= 40
		hNumber = true
	}
	if month < 1 || month > 12 {
		return Number{}, dErrors.Wrap(ErrMonthOutOfRange, dErrors.CodeValidation, "invalid fodselsnummer")
	}

	// Individual numbers 000-499 belong to the 1900s, 500-999 to the 2000s.
	// The 900-999 band was also handed out for 1940-1999 births when the
	// 1900s band ran dry, so resolved years past 2039 roll back a century.
	// The 1800s series is not modeled; this package covers living persons.
	if individual <= 499 {
		year += 1900
	} else {
		year += 2000
	}
	if individual >= 900 && year >= 2040 {
		year -= 100
	}

	birthDate := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if birthDate.Year() != year || birthDate.Month() != time.Month(month) || birthDate.Day() != day {
		return Number{}, dErrors.Wrap(ErrInvalidDate, dErrors.CodeValidation, "invalid fodselsnummer")
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if birthDate.After(today) {
		return Number{}, dErrors.Wrap(ErrFutureDate, dErrors.CodeValidation, "invalid fodselsnummer")
	}

	generated, err := controlDigits(value[:9])
	if err != nil || generated != value {
		// A prefix with no valid control digits reads the same to callers
		// as a plain mismatch.
		return Number{}, dErrors.Wrap(ErrControlDigits, dErrors.CodeValidation, "invalid fodselsnummer")
	}

	return Number{
		value:      value,
		birthDate:  birthDate,
		individual: individual,
		dNumber:    dNumber,
		hNumber:    hNumber,
	}, nil
}

// String returns the 11-digit value.
func (n Number) String() string {
	return n.value
}

// IsZero returns true if this is the zero value (uninitialized).
func (n Number) IsZero() bool {
	return n.value == ""
}

// BirthDate returns the encoded date of birth at UTC midnight.
func (n Number) BirthDate() time.Time {
	return n.birthDate
}

// IndividualNumber returns the three-digit individual number (0-999).
func (n Number) IndividualNumber() int {
	return n.individual
}

// IsDNumber returns true if the day field carries the +40 D-number offset.
func (n Number) IsDNumber() bool {
	return n.dNumber
}

// IsHNumber returns true if the month field carries the +40 H-number offset.
func (n Number) IsHNumber() bool {
	return n.hNumber
}

// atoi2 converts a short, pre-verified digit substring.
func atoi2(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}
