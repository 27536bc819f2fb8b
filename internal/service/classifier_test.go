package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyDocument(t *testing.T) {
	testCases := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "id card by id number",
			text:     "Please verify the ID Number printed on the front",
			expected: "ID Card",
		},
		{
			name:     "id card by date of birth",
			text:     "holder date of birth: 1990-01-01",
			expected: "ID Card",
		},
		{
			name:     "irs form",
			text:     "Internal Revenue Service form 1040",
			expected: "IRS Form",
		},
		{
			name:     "irs form by taxpayer id",
			text:     "please enter your TAXPAYER ID below",
			expected: "IRS Form",
		},
		{
			name:     "passport",
			text:     "this document lists a passport number and the holder's nationality",
			expected: "Passport",
		},
		{
			name:     "bank statement by account number",
			text:     "Account number: 0012345",
			expected: "Bank Statement",
		},
		{
			name:     "bank statement by transaction history",
			text:     "your transaction history for March",
			expected: "Bank Statement",
		},
		{
			name:     "no matching keywords",
			text:     "no matching keywords",
			expected: "Unknown",
		},
		{
			name:     "empty text",
			text:     "",
			expected: "Unknown",
		},
		{
			name:     "id card wins over passport",
			text:     "id number 123 and passport number 456",
			expected: "ID Card",
		},
		{
			name:     "irs form wins over bank statement",
			text:     "taxpayer id 99 with account number 11",
			expected: "IRS Form",
		},
		{
			name:     "passport wins over bank statement",
			text:     "nationality: unknown, transaction history attached",
			expected: "Passport",
		},
		{
			name:     "keyword match is case-insensitive",
			text:     "PASSPORT NUMBER",
			expected: "Passport",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, classifyDocument(tc.text))
		})
	}
}

func TestClassifyDocument_Deterministic(t *testing.T) {
	text := "id number, taxpayer id, passport number, account number"
	first := classifyDocument(text)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, classifyDocument(text))
	}
	assert.Equal(t, "ID Card", first)
}
