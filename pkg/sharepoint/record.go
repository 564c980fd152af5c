package sharepoint

import "strings"

// Record is one list item as returned by the server: a mapping from field
// name to JSON value.
type Record map[string]any

// internalFieldPrefix marks SharePoint bookkeeping fields inside items.
const internalFieldPrefix = "_"

// Clean returns a copy of rec without internal metadata fields. The input is
// never modified; every non-prefixed key carries over unchanged.
func Clean(rec Record) Record {
	out := make(Record, len(rec))
	for k, v := range rec {
		if strings.HasPrefix(k, internalFieldPrefix) {
			continue
		}
		out[k] = v
	}
	return out
}
