package fnr

import (
	"fmt"
	"time"
)

// GenerateForDay returns every valid fodselsnummer encoding the given day,
// optionally including D-numbers. Candidates are enumerated per individual
// number, plain variant before D-variant; prefixes with no valid control
// digits are skipped.
func GenerateForDay(day time.Time, includeDNumbers bool) []string {
	datestring := day.Format("020106")

	var dnrDatestring string
	if includeDNumbers {
		// The D-number +40 day offset adds 4 to the tens digit.
		d := []byte(datestring)
		d[0] += 4
		dnrDatestring = string(d)
	}

	// 1900s births draw individual numbers 000-499, later births 500-999.
	// For 1940-1999 the registry also dipped into the 900-999 band reserved
	// for the 2000s, so those years get an extra pass over it.
	first, last := 500, 999
	exhausted1900s := false
	if year := day.Year(); year >= 1900 && year <= 1999 {
		first, last = 0, 499
		exhausted1900s = year >= 1940
	}

	numbers := appendBand(nil, datestring, dnrDatestring, first, last, includeDNumbers)
	if exhausted1900s {
		numbers = appendBand(numbers, datestring, dnrDatestring, 900, 999, includeDNumbers)
	}
	return numbers
}

// GenerateForYear returns every valid fodselsnummer for every calendar day of
// the given year, January 1 through December 31.
func GenerateForYear(year int, includeDNumbers bool) []string {
	var all []string
	for day := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC); day.Year() == year; day = day.AddDate(0, 0, 1) {
		all = append(all, GenerateForDay(day, includeDNumbers)...)
	}
	return all
}

func appendBand(dst []string, datestring, dnrDatestring string, first, last int, includeDNumbers bool) []string {
	for i := first; i <= last; i++ {
		individual := fmt.Sprintf("%03d", i)
		if number, err := controlDigits(datestring + individual); err == nil {
			dst = append(dst, number)
		}
		if includeDNumbers {
			if number, err := controlDigits(dnrDatestring + individual); err == nil {
				dst = append(dst, number)
			}
		}
	}
	return dst
}
