package lineparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLinesOrdinaryDocument(t *testing.T) {
	lines := []string{
		"KORLE BU TEACHING HOSPITAL",
		"Provider Number: HCP-224",
		"S/N NHIA Number Name Relation Sex DOB Emp Code",
		"Family MENSAH Code - 1419450",
		"3024514-1 PRINCIPAL JOHN SMITH M 12/05/1980 EMP001",
		"3024514-2 SPOUSE ABENA SMITH F 23/08/1984",
		"Page 1 of 2",
		"Family OWUSU Code - 1520001",
		"7654321 EXTRA DEPENDENT 3 PETER PAN 05/05/1999",
	}

	records := ParseLines(lines)
	require.Len(t, records, 3)

	// Order of emission follows line order.
	assert.Equal(t, "3024514-1", records[0].NHIANumber)
	assert.Equal(t, "3024514-2", records[1].NHIANumber)
	assert.Equal(t, "7654321", records[2].NHIANumber)

	// The first family's rows carry the first family code.
	for _, r := range records[:2] {
		assert.Equal(t, "KORLE BU TEACHING HOSPITAL", r.Provider)
		assert.Equal(t, "HCP-224", r.ProviderNumber)
		assert.Equal(t, "1419450", r.FamilyCode)
	}

	assert.Equal(t, "PRINCIPAL", records[0].Relationship)
	assert.Equal(t, "JOHN", records[0].FirstName)
	assert.Equal(t, "SMITH", records[0].LastName)
	assert.Equal(t, "EMP001", records[0].EmpCode)

	assert.Equal(t, "SPOUSE", records[1].Relationship)
	assert.Empty(t, records[1].EmpCode)

	// The footer between families does not disturb context; the later
	// family header overwrites only the family code.
	assert.Equal(t, "KORLE BU TEACHING HOSPITAL", records[2].Provider)
	assert.Equal(t, "HCP-224", records[2].ProviderNumber)
	assert.Equal(t, "1520001", records[2].FamilyCode)
	assert.Equal(t, "EXTRA DEPENDENT 3", records[2].Relationship)
}

func TestParseLinesGiftshipNormalization(t *testing.T) {
	lines := []string{
		"SUNSHINE SPECIALIST CENTRE",
		"NHIA - GIFSHIP_NORTH Batch 1468243",
		"1111111 MEMBER JANE ROE F 03/03/1995",
		"2222222 MEMBER KOJO M 04/04/1992",
	}

	records := ParseLines(lines)
	require.Len(t, records, 2)

	for _, r := range records {
		assert.Equal(t, "MEMBER", r.Relationship)
		assert.Equal(t, "1468243", r.FamilyCode)
	}

	// The redundant MEMBER marker is stripped from the front of the name.
	assert.Equal(t, "JANE", records[0].FirstName)
	assert.Equal(t, "ROE", records[0].LastName)

	// A name that is only the marker becomes empty.
	assert.Equal(t, "", records[1].FirstName)
	assert.Equal(t, "KOJO", records[1].LastName)
}

func TestParseLinesGiftshipThenOrdinary(t *testing.T) {
	lines := []string{
		"NHIA - GIFSHIP Batch 500",
		"1111111 MEMBER JANE ROE F 03/03/1995",
		"Family BOATENG Code - 600",
		"3333333 PRINCIPAL KWESI BOATENG M 05/05/1970",
	}

	records := ParseLines(lines)
	require.Len(t, records, 2)

	assert.Equal(t, "MEMBER", records[0].Relationship)
	assert.Equal(t, "500", records[0].FamilyCode)

	// An ordinary family header switches the grouping type back, so the
	// sponsorship normalization no longer applies.
	assert.Equal(t, "PRINCIPAL", records[1].Relationship)
	assert.Equal(t, "600", records[1].FamilyCode)
	assert.Equal(t, "KWESI", records[1].FirstName)
}

func TestParseLinesNoContextYet(t *testing.T) {
	// A data row before any header still parses; document-level fields
	// are simply empty.
	records := ParseLines([]string{"3024514-1 PRINCIPAL JOHN SMITH M 12/05/1980"})
	require.Len(t, records, 1)

	assert.Empty(t, records[0].Provider)
	assert.Empty(t, records[0].ProviderNumber)
	assert.Empty(t, records[0].FamilyCode)
	assert.Equal(t, "JOHN", records[0].FirstName)
}

func TestParseLinesEmptyInput(t *testing.T) {
	records := ParseLines(nil)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestParseLinesIdempotent(t *testing.T) {
	lines := []string{
		"Provider Number: P-1",
		"Family ADJEI Code - 42",
		"1234567 PRINCIPAL AKOSUA ADJEI F 02/02/1982 A1",
	}

	first := ParseLines(lines)
	second := ParseLines(lines)
	assert.Equal(t, first, second)
}

func TestParseDocumentFiltersBlankLines(t *testing.T) {
	text := "Family ADJEI Code - 42\n\n   \n1234567 PRINCIPAL AKOSUA ADJEI F 02/02/1982\n"

	records := ParseDocument(text)
	require.Len(t, records, 1)
	assert.Equal(t, "42", records[0].FamilyCode)
}

func TestParseCandidateLinesHasNoContext(t *testing.T) {
	lines := []string{
		"Family ADJEI Code - 42",
		"1234567 PRINCIPAL AKOSUA ADJEI F 02/02/1982",
	}

	records := ParseCandidateLines(lines)
	require.Len(t, records, 1)

	// Candidate mode runs the extractor only: header lines contribute
	// nothing, and document-level fields stay empty.
	assert.Empty(t, records[0].FamilyCode)
	assert.Equal(t, "1234567", records[0].NHIANumber)
}

func TestApplyLeavesUnrelatedFieldsAlone(t *testing.T) {
	ctx := Context{}

	ctx = ctx.Apply(Classification{Kind: KindProviderName, Value: "WESTERN HEALTH CENTRE"})
	ctx = ctx.Apply(Classification{Kind: KindProviderNumber, Value: "W-9"})
	ctx = ctx.Apply(Classification{Kind: KindGiftshipHeader, Value: "77"})

	assert.Equal(t, "WESTERN HEALTH CENTRE", ctx.Provider)
	assert.Equal(t, "W-9", ctx.ProviderNumber)
	assert.Equal(t, "77", ctx.FamilyCode)
	assert.Equal(t, FamilyGiftship, ctx.FamilyType)

	// Footer and table-header lines are no-ops.
	after := ctx.Apply(Classification{Kind: KindFooter})
	after = after.Apply(Classification{Kind: KindTableHeader})
	assert.Equal(t, ctx, after)
}
