package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"

	"github.com/blackwell-systems/floractl/internal/catalog"
	"github.com/blackwell-systems/floractl/internal/labels"
)

// PlantItem is a plant row in the browser list.
type PlantItem struct {
	Plant catalog.Plant
}

// FilterValue implements list.Item
func (p PlantItem) FilterValue() string {
	return p.Plant.Name + " " + p.Plant.LatinName
}

func plantItems(plants []catalog.Plant) []list.Item {
	items := make([]list.Item, len(plants))
	for i, p := range plants {
		items[i] = PlantItem{Plant: p}
	}
	return items
}

// renderPlantItem draws one row: emoji, name, latin name and danger badge.
func renderPlantItem(w io.Writer, m list.Model, index int, item list.Item) {
	pi, ok := item.(PlantItem)
	if !ok {
		return
	}
	p := pi.Plant

	width := m.Width() - 4
	if width < 30 {
		width = 30
	}
	badge := DangerStyle(p.DangerLevel).Render(labels.Danger(p.DangerLevel))
	nameWidth := width / 2
	latinWidth := width - nameWidth - 14

	var s strings.Builder
	name := fmt.Sprintf("%s %s", labels.Emoji(p), truncateText(p.Name, nameWidth))
	latin := truncateText(p.LatinName, latinWidth)

	if index == m.Index() {
		s.WriteString(StyleHighlight.Render("› " + name))
	} else {
		s.WriteString("  " + StyleNormal.Render(name))
	}
	s.WriteString(" " + StyleLatin.Render(latin) + " " + badge)

	_, _ = fmt.Fprint(w, s.String())
}
