// =============================================================================
// HCP PDF to CSV Converter - Line Classifier
// =============================================================================
//
// This module decides what a single extracted text line is. Provider listings
// interleave data rows with footers, facility names, "Provider Number"
// declarations, family headers and column headers, and PDF extraction does
// not preserve any reliable column structure, so classification is purely
// lexical.
//
// CLASSIFICATION ORDER (first match wins):
//   1. Footer        : "Page <n> of <n> ..."
//   2. ProviderNumber: "Provider Number <code>"
//   3. FamilyHeader  : "Family <name> Code - <digits>"
//   4. GiftshipHeader: "NHIA - GIFSHIP_* Batch <digits>"
//   5. ProviderName  : contains a facility keyword (HOSPITAL, CLINIC, ...)
//   6. TableHeader   : starts with a column-header keyword (S/N, NHIA, ...)
//   7. DataRow       : anything else; offered to the field extractor
//
// The order matters: header vocabulary overlaps with data-row vocabulary
// (the word "NHIA" appears both in GIFSHIP batch headers and as a column
// label), so the anchored patterns must be tried before the generic
// data-row fallthrough.
//
// =============================================================================

package lineparser

import (
	"regexp"
	"strings"
)

// =============================================================================
// LINE KINDS
// =============================================================================

// LineKind identifies the category a classified line belongs to.
type LineKind int

const (
	// KindDataRow is the fallthrough category: a candidate member row.
	KindDataRow LineKind = iota

	// KindFooter is page-footer noise ("Page 12 of 45 - ...").
	KindFooter

	// KindProviderNumber is a "Provider Number XXX" declaration.
	KindProviderNumber

	// KindFamilyHeader is an ordinary family header with its code.
	KindFamilyHeader

	// KindGiftshipHeader is an NHIA GIFSHIP (sponsorship) batch header.
	KindGiftshipHeader

	// KindProviderName is a line naming the issuing facility.
	KindProviderName

	// KindTableHeader is a column-header line.
	KindTableHeader
)

// Classification is the result of classifying one line.
type Classification struct {
	// Kind is the category the line fell into.
	Kind LineKind

	// Value is the captured payload, when the category carries one:
	// the provider code, the family/batch code, or the provider name.
	Value string
}

// =============================================================================
// PATTERNS
// =============================================================================
// These are the patterns tuned against the observed provider listings.
// They match loosely on purpose; the field extractor is the second line of
// defense for anything misclassified as a data row.

var (
	footerRe         = regexp.MustCompile(`(?i)^\s*Page\s+\d+\s+of\s+\d+.*$`)
	providerNumberRe = regexp.MustCompile(`(?i)Provider Number[:\s]*([A-Z0-9\-/]+)`)
	familyRe         = regexp.MustCompile(`(?i)Family\s+.*?\s+Code\s*[-:]\s*(\d+)`)
	giftshipRe       = regexp.MustCompile(`(?i)NHIA\s*-\s*GIFSHIP[_A-Z]*\s+Batch\s+(\d+)`)
	tableHeaderRe    = regexp.MustCompile(`(?i)^(S/N|NHIA|NAME|RELATION|EMP CODE|EMPLOYEE|TOTAL ENROLLEES)`)
)

// providerKeywords mark a line as a facility name when any of them appears
// anywhere in the uppercased line.
var providerKeywords = []string{
	"HOSPITAL", "CLINIC", "CENTRE", "CENTER", "SPECIALIST", "PROVIDER", "HEALTH",
}

// =============================================================================
// MATCHERS
// =============================================================================

// matcher is one tagged classification attempt. Each matcher either claims
// the line (returning its captured value) or passes it down the chain.
type matcher struct {
	kind  LineKind
	match func(line string) (value string, ok bool)
}

// matchers is the ordered fallthrough chain. Precedence is load-bearing;
// see the file header.
var matchers = []matcher{
	{KindFooter, func(line string) (string, bool) {
		return "", footerRe.MatchString(line)
	}},
	{KindProviderNumber, func(line string) (string, bool) {
		m := providerNumberRe.FindStringSubmatch(line)
		if m == nil {
			return "", false
		}
		return strings.TrimSpace(m[1]), true
	}},
	{KindFamilyHeader, func(line string) (string, bool) {
		m := familyRe.FindStringSubmatch(line)
		if m == nil {
			return "", false
		}
		return strings.TrimSpace(m[1]), true
	}},
	{KindGiftshipHeader, func(line string) (string, bool) {
		m := giftshipRe.FindStringSubmatch(line)
		if m == nil {
			return "", false
		}
		return strings.TrimSpace(m[1]), true
	}},
	{KindProviderName, func(line string) (string, bool) {
		upper := strings.ToUpper(line)
		for _, kw := range providerKeywords {
			if strings.Contains(upper, kw) {
				return strings.TrimSpace(line), true
			}
		}
		return "", false
	}},
	{KindTableHeader, func(line string) (string, bool) {
		return "", tableHeaderRe.MatchString(line)
	}},
}

// =============================================================================
// CLASSIFICATION
// =============================================================================

// Classify inspects one non-blank line and returns its category plus any
// captured value. Lines that match none of the anchored patterns are
// candidate data rows.
func Classify(line string) Classification {
	for _, m := range matchers {
		if value, ok := m.match(line); ok {
			return Classification{Kind: m.kind, Value: value}
		}
	}
	return Classification{Kind: KindDataRow}
}
