// =============================================================================
// HCP PDF to CSV Converter - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - lineparser
//   - tableparser
//   - csvwriter
//   - converter
//
// =============================================================================

package types

// =============================================================================
// MEMBER RECORD
// =============================================================================

// MemberRecord is one normalized enrollee row extracted from a provider
// listing. Every field is always present in the output; fields that were
// never seen in the document are emitted as empty strings, never omitted.
//
// The csv tags define both the output header names and the column order:
//   Provider, ProviderNumber, FamilyCode, NHIA_Number, Relationship,
//   FirstName, LastName, Sex, DOB, EmpCode
type MemberRecord struct {
	// Provider is the name of the issuing facility in effect when the row
	// was parsed. Empty if no provider-name line has been seen yet.
	Provider string `csv:"Provider"`

	// ProviderNumber is the facility's registered code from the most recent
	// "Provider Number" declaration line.
	ProviderNumber string `csv:"ProviderNumber"`

	// FamilyCode is the family/batch grouping code in effect for this row.
	FamilyCode string `csv:"FamilyCode"`

	// NHIANumber is the enrollee's national identifier, e.g. "3024514-1".
	// A row without one is never emitted.
	NHIANumber string `csv:"NHIA_Number"`

	// Relationship is the enrollee's relation to the principal
	// (PRINCIPAL, SPOUSE, CHILD 2, EXTRA DEPENDENT 3, ...) or empty.
	Relationship string `csv:"Relationship"`

	// FirstName holds all given names joined with spaces.
	FirstName string `csv:"FirstName"`

	// LastName is the single-token surname.
	LastName string `csv:"LastName"`

	// Sex is the marker found directly before the date of birth
	// (M, F, MALE, FEMALE) or empty.
	Sex string `csv:"Sex"`

	// DOB is the date-of-birth token preserved verbatim. It is never
	// reformatted or validated beyond shape matching.
	DOB string `csv:"DOB"`

	// EmpCode is the free-text employee code trailing the date of birth.
	EmpCode string `csv:"EmpCode"`
}
