package service

import "strings"

const DocTypeUnknown = "Unknown"

// docTypeKeywords is ordered: a text matching several categories is assigned
// the earliest-listed one.
var docTypeKeywords = []struct {
	docType  string
	keywords []string
}{
	{"ID Card", []string{"id number", "date of birth"}},
	{"IRS Form", []string{"internal revenue service", "taxpayer id"}},
	{"Passport", []string{"passport number", "nationality"}},
	{"Bank Statement", []string{"account number", "transaction history"}},
}

// classifyDocument assigns a document type by keyword match. The type is
// derived once, at upload, and stored with the document.
func classifyDocument(text string) string {
	text = strings.ToLower(text)

	for _, entry := range docTypeKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(text, keyword) {
				return entry.docType
			}
		}
	}

	return DocTypeUnknown
}
