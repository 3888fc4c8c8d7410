// =============================================================================
// HCP PDF to CSV Converter - Token Field Extractor
// =============================================================================
//
// This module recovers the member fields from one candidate data row. The
// rows come out of PDF text extraction as whitespace-separated tokens with
// no reliable column boundaries, so extraction is an ordered chain of
// positional and lexical heuristics, each narrowing the remaining token
// span:
//
//   1. Tokenize, trim stray commas.
//   2. Reject rows that are too short or still look like column headers.
//   3. Find the date-of-birth token. The date anchors the whole parse:
//      no date, no record.
//   4. The token directly before the date may be a sex marker.
//   5. Everything after the date is the employee code.
//   6. The NHIA number must sit within the first three tokens.
//   7. The tokens between the NHIA number and the sex/date boundary hold
//      the relationship label followed by the name.
//
// Rejection is a normal outcome, not an error: stray text that survives
// the line classifier is simply not a record.
//
// =============================================================================

package lineparser

import (
	"regexp"
	"strings"
)

// =============================================================================
// FIELD PATTERNS
// =============================================================================

var (
	// dateRe matches D[D]/M[M]/Y[Y[YY]] or YYYY/M[M]/D[D] with / or -
	// separators. DOB tokens are captured verbatim, never reparsed.
	dateRe = regexp.MustCompile(`^(?:\d{1,2}[/\-]\d{1,2}[/\-]\d{2,4}|\d{4}[/\-]\d{1,2}[/\-]\d{1,2})$`)

	// sexRe matches the sex markers seen in the listings.
	sexRe = regexp.MustCompile(`(?i)^(?:M|F|MALE|FEMALE)$`)

	// nhiaRe matches NHIA numbers: 3+ digits with an optional hyphenated
	// suffix, e.g. "3024514-1".
	nhiaRe = regexp.MustCompile(`^[0-9]{3,}-?[0-9]*$`)
)

// relationKeywords is the controlled single-token relationship vocabulary.
// "CHILD 1" and "CHILD 2" contain a space and can only arrive as a single
// token from pre-joined table cells; they are kept for that case.
var relationKeywords = map[string]bool{
	"PRINCIPAL": true,
	"SPOUSE":    true,
	"CHILD":     true,
	"CHILD1":    true,
	"CHILD2":    true,
	"CHILD3":    true,
	"CHILD4":    true,
	"CHILD 1":   true,
	"CHILD 2":   true,
	"GUARDIAN":  true,
	"DEPENDENT": true,
	"DEPENDANT": true,
}

// headerLike are column-header fragments. Any of these in the first four
// tokens means the row is a stray header, not data. This is the second
// line of defense behind the classifier's table-header pattern.
var headerLike = map[string]bool{
	"S/N":      true,
	"NHIA":     true,
	"NO":       true,
	"NAME":     true,
	"RELATION": true,
	"REL":      true,
	"SEX":      true,
	"DOB":      true,
	"EMP":      true,
	"EMP CODE": true,
	"EMPLOYEE": true,
}

// =============================================================================
// ROW FIELDS
// =============================================================================

// RowFields is the pre-context result of extracting one data row. The
// document-level fields (provider, provider number, family code) are filled
// in later by the record assembler.
type RowFields struct {
	NHIANumber   string
	Relationship string
	FirstName    string
	LastName     string
	Sex          string
	DOB          string
	EmpCode      string
}

// =============================================================================
// EXTRACTION
// =============================================================================

// ExtractRow parses one candidate line into its member fields. The second
// return value reports whether the line was a data row at all; false is a
// silent, expected rejection.
func ExtractRow(line string) (RowFields, bool) {
	text := strings.TrimSpace(line)
	if text == "" {
		return RowFields{}, false
	}

	tokens := tokenize(text)
	if len(tokens) < 3 {
		return RowFields{}, false
	}

	// Header fragments sometimes survive extraction glued to stray values;
	// checking the first four tokens catches them.
	for i := 0; i < len(tokens) && i < 4; i++ {
		if headerLike[strings.ToUpper(tokens[i])] {
			return RowFields{}, false
		}
	}

	dobIdx := findDateIndex(tokens)
	if dobIdx < 0 {
		return RowFields{}, false
	}

	fields := RowFields{DOB: tokens[dobIdx]}

	// The token directly before the date may be the sex marker. If it is,
	// the name zone ends before it; otherwise the name zone runs up to the
	// date itself.
	nameEnd := dobIdx
	if sexIdx := dobIdx - 1; sexIdx >= 0 && sexRe.MatchString(tokens[sexIdx]) {
		fields.Sex = tokens[sexIdx]
		nameEnd = sexIdx
	}

	// Everything after the date is the free-text employee code.
	if dobIdx+1 < len(tokens) {
		fields.EmpCode = strings.TrimSpace(strings.Join(tokens[dobIdx+1:], " "))
	}

	// The NHIA number must appear within the first three tokens; this
	// bounds false positives from free text at the start of a line.
	nhiaIdx := findNHIAIndex(tokens, 3)
	if nhiaIdx < 0 {
		return RowFields{}, false
	}
	fields.NHIANumber = tokens[nhiaIdx]

	// The middle zone between the NHIA number and the name-zone boundary
	// holds the relationship label (if any) followed by the name tokens.
	middle := middleZone(tokens, nhiaIdx+1, nameEnd)
	relationship, nameTokens := splitRelationship(middle)
	fields.Relationship = relationship
	fields.FirstName, fields.LastName = splitName(nameTokens)

	return fields, true
}

// tokenize splits a line on whitespace and strips stray commas from each
// token.
func tokenize(text string) []string {
	raw := strings.Fields(text)
	tokens := make([]string, 0, len(raw))
	for _, t := range raw {
		t = strings.Trim(strings.TrimSpace(t), ",")
		if t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// findDateIndex scans left to right for a date-shaped token. A second pass
// retries with trailing punctuation stripped, because extraction sometimes
// glues a period or comma onto the date. The index always refers to the
// original token so the DOB is preserved verbatim.
func findDateIndex(tokens []string) int {
	for i, t := range tokens {
		if dateRe.MatchString(strings.TrimSpace(t)) {
			return i
		}
	}
	for i, t := range tokens {
		cleaned := strings.Trim(strings.TrimSpace(t), ".,")
		if dateRe.MatchString(cleaned) {
			return i
		}
	}
	return -1
}

// findNHIAIndex scans at most maxScan leading tokens for an NHIA-shaped
// token and returns its index, or -1.
func findNHIAIndex(tokens []string, maxScan int) int {
	limit := len(tokens)
	if maxScan < limit {
		limit = maxScan
	}
	for i := 0; i < limit; i++ {
		if nhiaRe.MatchString(strings.TrimSpace(tokens[i])) {
			return i
		}
	}
	return -1
}

// middleZone returns tokens[start:end], tolerating an inverted range (a
// date sitting before the NHIA number yields an empty zone, not a panic).
func middleZone(tokens []string, start, end int) []string {
	if start >= end || start >= len(tokens) {
		return nil
	}
	if end > len(tokens) {
		end = len(tokens)
	}
	return tokens[start:end]
}

// splitRelationship consumes the relationship label from the front of the
// middle zone and returns it with the remaining name tokens.
//
// Sub-patterns are tried in priority order, most specific first:
//   1. CHILD <n>               (two tokens, second numeric)
//   2. EXTRA DEPENDENT <n>     (three tokens, third numeric)
//   3. EXTRA DEPENDENT/DEPENDANT (two tokens, no trailing number)
//   4. A single vocabulary token (PRINCIPAL, SPOUSE, GUARDIAN, ...)
//   5. Fallback: no relationship, the whole zone is the name.
func splitRelationship(middle []string) (string, []string) {
	if len(middle) == 0 {
		return "", nil
	}

	if len(middle) >= 2 && strings.ToUpper(middle[0]) == "CHILD" && isDigits(middle[1]) {
		return strings.Join(middle[:2], " "), middle[2:]
	}

	if len(middle) >= 3 &&
		strings.ToUpper(middle[0]) == "EXTRA" &&
		strings.ToUpper(middle[1]) == "DEPENDENT" &&
		isDigits(middle[2]) {
		return strings.Join(middle[:3], " "), middle[3:]
	}

	if len(middle) >= 2 {
		joined := strings.ToUpper(strings.Join(middle[:2], " "))
		if joined == "EXTRA DEPENDENT" || joined == "EXTRA DEPENDANT" {
			return strings.Join(middle[:2], " "), middle[2:]
		}
	}

	if relationKeywords[strings.ToUpper(middle[0])] {
		return middle[0], middle[1:]
	}

	return "", middle
}

// splitName splits name tokens using the listing convention that surnames
// are a single token and given names may span several.
func splitName(nameTokens []string) (firstName, lastName string) {
	switch len(nameTokens) {
	case 0:
		return "", ""
	case 1:
		return nameTokens[0], ""
	default:
		return strings.Join(nameTokens[:len(nameTokens)-1], " "), nameTokens[len(nameTokens)-1]
	}
}

// isDigits reports whether s is non-empty and entirely ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
