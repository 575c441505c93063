package site

import (
	"fmt"
	"html/template"
	"net/url"

	"github.com/blackwell-systems/floractl/internal/catalog"
	"github.com/blackwell-systems/floractl/internal/labels"
)

var funcs = template.FuncMap{
	"typeLabel":          labels.Type,
	"dangerLabel":        labels.Danger,
	"dangerLong":         labels.DangerLong,
	"dangerClass":        labels.DangerClass,
	"habitatLabel":       labels.Habitat,
	"controlLabel":       labels.Control,
	"controlClass":       labels.ControlClass,
	"seasonLabel":        labels.Season,
	"categoryLabel":      labels.Category,
	"emoji":              labels.Emoji,
	"controlDescription": labels.ControlDescription,
	"identificationTips": labels.IdentificationTips,
	"fallbackImage":      FallbackImage,
	"imageSrc":           imageSrc,
	"count":              func(f catalog.Facets, c catalog.Category) int { return f.Count(c) },
	"typeCategory":       func(t catalog.PlantType) catalog.Category { return catalog.Category(t) },
	"cardData":           func(d pageData, p catalog.Plant) cardView { return cardView{Root: d.Root, Plant: p} },
}

type cardView struct {
	Root  string
	Plant catalog.Plant
}

// imageSrc resolves a plant image for a page at root. Local images are
// copied next to the pages, so they are prefixed with root; URLs pass
// through.
func imageSrc(root, image string) string {
	if rel, ok := localImage(image); ok {
		return root + rel
	}
	return image
}

// FallbackImage returns an SVG data URI showing the plant's emoji, used
// when the record has no image.
func FallbackImage(p catalog.Plant) template.URL {
	svg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100">`+
		`<rect width="100" height="100" fill="#f1f5f9"/>`+
		`<text x="50" y="50" font-size="20" text-anchor="middle" dy=".3em" fill="#94a3b8">%s</text></svg>`,
		template.HTMLEscapeString(labels.Emoji(p)))
	return template.URL("data:image/svg+xml," + url.PathEscape(svg))
}
