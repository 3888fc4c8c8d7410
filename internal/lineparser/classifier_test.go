package lineparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyFooter(t *testing.T) {
	tests := []string{
		"Page 1 of 1",
		"Page 1399 of 1402 - POLICE HEALTH MAINTENANCE LIMITED",
		"  Page 12 of 45 - Confidential",
		"page 3 OF 10",
	}

	for _, line := range tests {
		cl := Classify(line)
		assert.Equal(t, KindFooter, cl.Kind, "line: %q", line)
	}
}

func TestClassifyProviderNumber(t *testing.T) {
	tests := []struct {
		line  string
		value string
	}{
		{"Provider Number: HCP-224", "HCP-224"},
		{"Provider Number B04/21/007", "B04/21/007"},
		{"provider number: 12345", "12345"},
	}

	for _, tt := range tests {
		cl := Classify(tt.line)
		assert.Equal(t, KindProviderNumber, cl.Kind, "line: %q", tt.line)
		assert.Equal(t, tt.value, cl.Value, "line: %q", tt.line)
	}
}

func TestClassifyFamilyHeaders(t *testing.T) {
	cl := Classify("Family MENSAH Code - 1419450")
	assert.Equal(t, KindFamilyHeader, cl.Kind)
	assert.Equal(t, "1419450", cl.Value)

	cl = Classify("Family OWUSU K. Code: 22001")
	assert.Equal(t, KindFamilyHeader, cl.Kind)
	assert.Equal(t, "22001", cl.Value)

	cl = Classify("NHIA - GIFSHIP_NORTH Batch 1468243")
	assert.Equal(t, KindGiftshipHeader, cl.Kind)
	assert.Equal(t, "1468243", cl.Value)

	cl = Classify("NHIA-GIFSHIP Batch 99")
	assert.Equal(t, KindGiftshipHeader, cl.Kind)
	assert.Equal(t, "99", cl.Value)
}

func TestClassifyProviderName(t *testing.T) {
	tests := []string{
		"KORLE BU TEACHING HOSPITAL",
		"St. Mary's Clinic, Annex",
		"SUNSHINE SPECIALIST CENTRE",
		"Western Health Centre",
	}

	for _, line := range tests {
		cl := Classify(line)
		assert.Equal(t, KindProviderName, cl.Kind, "line: %q", line)
		assert.Equal(t, line, cl.Value, "line: %q", line)
	}
}

func TestClassifyTableHeader(t *testing.T) {
	tests := []string{
		"S/N NHIA Number Name Relation Sex DOB Emp Code",
		"NAME RELATION SEX DOB",
		"Total Enrollees: 145",
		"EMP CODE",
	}

	for _, line := range tests {
		cl := Classify(line)
		assert.Equal(t, KindTableHeader, cl.Kind, "line: %q", line)
	}
}

func TestClassifyDataRowFallthrough(t *testing.T) {
	cl := Classify("3024514-1 PRINCIPAL JOHN SMITH M 12/05/1980 EMP001")
	assert.Equal(t, KindDataRow, cl.Kind)
}

// The word NHIA is shared between GIFSHIP batch headers and column labels;
// the anchored batch pattern must win over the generic header prefix.
func TestClassifyPrecedence(t *testing.T) {
	cl := Classify("NHIA - GIFSHIP Batch 123")
	assert.Equal(t, KindGiftshipHeader, cl.Kind)

	// A footer mentioning HEALTH is still a footer, not a provider name.
	cl = Classify("Page 2 of 9 - POLICE HEALTH MAINTENANCE LIMITED")
	assert.Equal(t, KindFooter, cl.Kind)

	// A provider-number declaration naming the provider is a declaration.
	cl = Classify("Provider Number: K77 - SUNRISE CLINIC")
	assert.Equal(t, KindProviderNumber, cl.Kind)
	assert.Equal(t, "K77", cl.Value)
}
