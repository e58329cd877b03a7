package ingest

import "strings"

// Table is one decoded export file: the header row plus every data row
// keyed by header name.
type Table struct {
	Headers []string
	Rows    []map[string]string
}

// FindColumn resolves the first candidate present in headers. Exact match
// is tried before a case-insensitive scan, and earlier candidates always
// win over later ones regardless of casing.
func FindColumn(headers []string, candidates []string) (string, bool) {
	for _, name := range candidates {
		for _, h := range headers {
			if h == name {
				return h, true
			}
		}
		for _, h := range headers {
			if strings.EqualFold(h, name) {
				return h, true
			}
		}
	}
	return "", false
}
