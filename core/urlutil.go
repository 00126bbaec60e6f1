package core

import (
	"fmt"
	"net/url"
	"strings"
)

// ReencodeURL normalises a download URL for RFC3986 compliance. CurseForge
// serves URLs containing raw [ and ] characters, which net/url refuses to
// round-trip, so they are escaped up front.
func ReencodeURL(u string) (string, error) {
	u = strings.ReplaceAll(u, "[", "%5B")
	u = strings.ReplaceAll(u, "]", "%5D")
	parsed, err := url.Parse(u)
	if err != nil {
		return "", fmt.Errorf("failed to parse url: %s, %v", u, err)
	}
	return parsed.String(), nil
}
