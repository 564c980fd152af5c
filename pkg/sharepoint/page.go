package sharepoint

import "github.com/tidwall/gjson"

// nextLinkPaths are the continuation-link fields emitted by the different
// OData metadata modes, in lookup priority order. Checking all three handles
// any server configuration without the caller knowing which mode is active.
var nextLinkPaths = []string{
	`__next`,           // SharePoint 2010/2013/2016 verbose mode
	`odata\.nextLink`,  // nometadata
	`@odata\.nextLink`, // minimal/full metadata
}

// page is one parsed response from the list items endpoint.
type page struct {
	items    []Record
	nextLink string
}

// parsePage extracts the value collection and the continuation link from a
// response body. An absent or empty value array yields zero items, not an
// error.
func parsePage(body []byte) page {
	var p page

	for _, item := range gjson.GetBytes(body, "value").Array() {
		if m, ok := item.Value().(map[string]any); ok {
			p.items = append(p.items, Record(m))
		}
	}

	for _, path := range nextLinkPaths {
		if link := gjson.GetBytes(body, path); link.Exists() && link.String() != "" {
			p.nextLink = link.String()
			break
		}
	}

	return p
}
