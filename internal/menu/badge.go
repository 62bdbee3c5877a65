package menu

import (
	"fmt"
	"html/template"
	"strings"

	"mspro-labs/menuboard/internal/sheet"
)

// Badges resolves beer type keys to badge images under AssetPath.
type Badges struct {
	AssetPath string
	Files     map[string]string
}

// DefaultBadgeFiles is the badge table of the bar sheet.
func DefaultBadgeFiles() map[string]string {
	return map[string]string{
		"beertype=dark":    "beertype=dark.png",
		"beertype=darkNF":  "beertype=darkNF.png",
		"beertype=light":   "beertype=light.png",
		"beertype=lightNF": "beertype=lightNF.png",
		"beertype=other":   "beertype=other.png",
		"beertype=n/a":     "nonalc.png",
	}
}

// Resolve returns the <img> markup for beerType, or "" for blank or unknown keys.
func (b Badges) Resolve(beerType string) template.HTML {
	key := sheet.Normalize(beerType)
	if key == "" {
		return ""
	}
	file, ok := b.Files[key]
	if !ok {
		return ""
	}
	src := file
	if prefix := strings.TrimSuffix(b.AssetPath, "/"); prefix != "" {
		src = prefix + "/" + file
	}
	return template.HTML(fmt.Sprintf(`<img class="badge" src="%s" alt="%s">`,
		template.HTMLEscapeString(src), template.HTMLEscapeString(key)))
}
