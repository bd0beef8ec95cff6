// Package fnr validates and generates Norwegian national identity numbers
// (fodselsnummer).
//
// A fodselsnummer is an 11-digit string: two-digit day, month and year of
// birth, a three-digit individual number, and two MOD11 control digits.
// Two offset variants exist: D-numbers (temporary residents, day +40) and
// H-numbers (healthcare contexts, month +40). The individual number encodes
// the century: 000-499 for the 1900s and 500-999 for 2000 and later, with
// the 900-999 band doubling as overflow for 1940-1999 births.
//
// Parse turns a candidate string into a validated Number value object;
// Validate and Check are the strict and non-failing forms of the same rules.
// GenerateForDay and GenerateForYear enumerate every valid number for a date.
//
// Validity here is purely syntactic: a valid number is well-formed and
// checksum-correct, not necessarily assigned to a real person.
//
// Domain Purity: no I/O and no clock access beyond the convenience wrappers;
// ParseAt receives the evaluation time as a parameter.
package fnr
