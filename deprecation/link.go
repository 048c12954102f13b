// deprecation/link.go
package deprecation

import "strings"

const (
	relParam = "rel"
	// relValue is matched against the raw parameter value, surrounding
	// quotes included.
	relValue = `"deprecation"`
)

// parseDeprecationLink inspects a single Link header value of the shape
// `<URL>; param1=value1; param2=value2` and returns the URL when one of the
// parameters is the relation rel="deprecation". Parameter order is not
// significant.
//
// Malformed values never error: a first segment that is not wrapped in angle
// brackets, or a parameter segment that does not split on "=" into two
// non-empty parts, ends the scan with no match.
func parseDeprecationLink(value string) (string, bool) {
	segments := strings.Split(value, ";")

	url := strings.TrimSpace(segments[0])
	if len(url) < 2 || !strings.HasPrefix(url, "<") || !strings.HasSuffix(url, ">") {
		return "", false
	}
	url = url[1 : len(url)-1]

	for _, segment := range segments[1:] {
		kv := strings.Split(strings.TrimSpace(segment), "=")
		if len(kv) != 2 || kv[0] == "" || kv[1] == "" {
			return "", false
		}
		if kv[0] == relParam && kv[1] == relValue {
			return url, true
		}
	}
	return "", false
}
