// =============================================================================
// HCP PDF to CSV Converter - Document Parser
// =============================================================================
//
// This module composes the line classifier, the token field extractor and
// the document context tracker into a single left-to-right pass over the
// extracted text. The pass is strictly sequential: every data row is
// interpreted against the context accumulated from all earlier lines, so
// reordering lines changes the output. Across documents the parse is
// independent; each document gets its own fresh context.
//
// PIPELINE PER LINE:
//   classify -> header/footer: fold into context, drop the line
//            -> data row:      extract fields, assemble with the current
//                              context snapshot, append to the output
//
// =============================================================================

package lineparser

import (
	"strings"

	"github.com/enrolltools/PDF-to-CSV-conversion/internal/types"
)

// =============================================================================
// DOCUMENT PARSING
// =============================================================================

// ParseDocument splits raw extracted text into lines and parses them into
// member records in encounter order. Blank lines are filtered before
// classification.
func ParseDocument(text string) []types.MemberRecord {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return ParseLines(lines)
}

// ParseLines runs the sequential fold over an ordered, pre-filtered line
// sequence. Rows that the extractor rejects are silently skipped; they are
// stray text, not errors.
func ParseLines(lines []string) []types.MemberRecord {
	records := []types.MemberRecord{}
	ctx := Context{}

	for _, line := range lines {
		cl := Classify(line)
		if cl.Kind != KindDataRow {
			ctx = ctx.Apply(cl)
			continue
		}

		fields, ok := ExtractRow(line)
		if !ok {
			continue
		}

		records = append(records, Assemble(fields, ctx))
	}

	return records
}

// ParseCandidateLines runs only the field extractor over candidate lines
// from an alternate source (the structured-table fallback). No context is
// available in this mode; the document-level fields stay empty.
func ParseCandidateLines(lines []string) []types.MemberRecord {
	records := []types.MemberRecord{}
	for _, line := range lines {
		fields, ok := ExtractRow(line)
		if !ok {
			continue
		}
		records = append(records, Assemble(fields, Context{}))
	}
	return records
}

// =============================================================================
// RECORD ASSEMBLY
// =============================================================================

// Assemble combines extracted row fields with the document context snapshot
// in effect when the row was parsed, and applies the grouping-type
// normalization.
//
// GIFSHIP NORMALIZATION:
//   Sponsorship batches list every enrollee as a plain member, but the
//   rows often carry a redundant "MEMBER" marker where the relationship
//   column would be, which the extractor then mistakes for a first name.
//   The relationship is forced to "MEMBER" and the marker is stripped from
//   the front of the first name (7 characters, including the trailing
//   space, kept verbatim from the observed layouts).
func Assemble(fields RowFields, ctx Context) types.MemberRecord {
	record := types.MemberRecord{
		Provider:       ctx.Provider,
		ProviderNumber: ctx.ProviderNumber,
		FamilyCode:     ctx.FamilyCode,
		NHIANumber:     fields.NHIANumber,
		Relationship:   fields.Relationship,
		FirstName:      fields.FirstName,
		LastName:       fields.LastName,
		Sex:            fields.Sex,
		DOB:            fields.DOB,
		EmpCode:        fields.EmpCode,
	}

	if ctx.FamilyType == FamilyGiftship {
		record.Relationship = "MEMBER"
		upper := strings.ToUpper(record.FirstName)
		if strings.HasPrefix(upper, "MEMBER ") {
			record.FirstName = strings.TrimSpace(record.FirstName[7:])
		} else if upper == "MEMBER" {
			record.FirstName = ""
		}
	}

	return record
}
