// =============================================================================
// HCP PDF to CSV Converter - Document Context Tracker
// =============================================================================
//
// Data rows in a provider listing only make sense relative to the header
// lines seen before them: the facility name, the provider number and the
// family grouping all arrive as standalone lines and apply to every
// following row until overwritten. Context is modeled as a value that each
// non-data line maps to a new value, which keeps the sequential dependency
// explicit and lets a single line + context pair be tested in isolation.
//
// =============================================================================

package lineparser

// =============================================================================
// FAMILY TYPE
// =============================================================================

// FamilyType distinguishes ordinary family groupings from NHIA GIFSHIP
// (gift/sponsorship) batches, which get special normalization at assembly.
type FamilyType int

const (
	// FamilyOrdinary is a regular family grouping ("Family X Code - NNN").
	FamilyOrdinary FamilyType = iota

	// FamilyGiftship is a sponsorship batch ("NHIA - GIFSHIP_* Batch NNN").
	FamilyGiftship
)

// String returns the family type label used in logs.
func (t FamilyType) String() string {
	if t == FamilyGiftship {
		return "GIFSHIP"
	}
	return "NORMAL"
}

// =============================================================================
// DOCUMENT CONTEXT
// =============================================================================

// Context is the document state carried across the line sequence. A fresh
// zero Context starts every parse run. Each field, once set, persists until
// a later header line of the same kind overwrites it; data rows never
// modify context.
type Context struct {
	// Provider is the facility name from the most recent provider line.
	Provider string

	// ProviderNumber is the code from the most recent "Provider Number"
	// declaration.
	ProviderNumber string

	// FamilyCode is the code from the most recent family or batch header.
	FamilyCode string

	// FamilyType is the kind of the current family grouping.
	FamilyType FamilyType
}

// Apply returns the context that results from seeing the given classified
// line. Exactly one field changes per header kind; footer and table-header
// lines (and data rows) leave the context untouched.
func (c Context) Apply(cl Classification) Context {
	switch cl.Kind {
	case KindProviderNumber:
		c.ProviderNumber = cl.Value
	case KindFamilyHeader:
		c.FamilyCode = cl.Value
		c.FamilyType = FamilyOrdinary
	case KindGiftshipHeader:
		c.FamilyCode = cl.Value
		c.FamilyType = FamilyGiftship
	case KindProviderName:
		c.Provider = cl.Value
	}
	return c
}
