package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/blackwell-systems/floractl/internal/catalog"
	"github.com/blackwell-systems/floractl/internal/labels"
)

// RenderDetails renders the full description of a plant in width cells.
func RenderDetails(p catalog.Plant, width int) string {
	if width < 30 {
		width = 30
	}

	// longest label is "Распространение: "
	const labelWidth = 17
	maxTextWidth := width - 2 - labelWidth
	if maxTextWidth < 10 {
		maxTextWidth = 10
	}
	wrap := lipgloss.NewStyle().Width(width - 2)

	var s strings.Builder

	s.WriteString(StyleHeader.Render(labels.Emoji(p) + " " + p.Name))
	s.WriteString("\n")
	s.WriteString(StyleLatin.Render(p.LatinName))
	if p.LocalName != "" {
		s.WriteString(StyleHelp.Render(" · " + p.LocalName))
	}
	s.WriteString("\n\n")

	s.WriteString(DangerStyle(p.DangerLevel).Render("● " + labels.DangerLong(p.DangerLevel)))
	s.WriteString("\n\n")

	field := func(label, value string) {
		if value == "" {
			return
		}
		s.WriteString(StyleHighlight.Render(label + ": "))
		s.WriteString(truncateText(value, maxTextWidth))
		s.WriteString("\n")
	}
	field("Тип", labels.Type(p.Type))
	field("Происхождение", p.Origin)
	field("Цветение", p.FloweringSeason)
	field("Местообитание", labels.Habitat(p.Habitat))
	if len(p.Features) > 0 {
		field("Признаки", strings.Join(p.Features, ", "))
	}

	if p.Description != "" {
		s.WriteString("\n")
		s.WriteString(wrap.Render(p.Description))
		s.WriteString("\n")
	}

	section := func(title, text string) {
		if text == "" {
			return
		}
		s.WriteString("\n")
		s.WriteString(StyleHeader.Render(title))
		s.WriteString("\n")
		s.WriteString(wrap.Render(text))
		s.WriteString("\n")
	}
	section("Влияние на экосистему", p.EcosystemImpact)
	section("Опасность для человека", p.HumanDanger)
	section("Пути распространения", p.SpreadWays)

	if len(p.ControlMethods) > 0 {
		s.WriteString("\n")
		s.WriteString(StyleHeader.Render("Методы борьбы"))
		s.WriteString("\n")
		for _, c := range p.ControlMethods {
			s.WriteString("  • " + c.Name + " " + StyleHelp.Render("("+labels.Control(c.Type)+")"))
			s.WriteString("\n")
		}
	}
	s.WriteString(wrap.Render(labels.ControlDescription(p)))
	s.WriteString("\n\n")

	s.WriteString(StyleHeader.Render("Как распознать"))
	s.WriteString("\n")
	s.WriteString(wrap.Render(labels.IdentificationTips(p)))

	return s.String()
}
