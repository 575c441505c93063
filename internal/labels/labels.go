// Package labels maps catalog enum values to their display strings.
//
// Every lookup passes unknown values through unchanged, so a data file with a
// habitat the tables don't know still renders something readable.
package labels

import (
	"github.com/blackwell-systems/floractl/internal/catalog"
)

var typeLabels = map[catalog.PlantType]string{
	catalog.TypeTree:  "Дерево",
	catalog.TypeShrub: "Кустарник",
	catalog.TypeHerb:  "Трава",
	catalog.TypeVine:  "Лиана",
}

// Badge text on cards.
var dangerShort = map[catalog.DangerLevel]string{
	catalog.DangerCritical:  "Критично",
	catalog.DangerDangerous: "Опасно",
	catalog.DangerWatch:     "Наблюдать",
	catalog.DangerModerate:  "Умеренно",
	catalog.DangerLow:       "Низкая",
}

// Badge text in the details view.
var dangerLong = map[catalog.DangerLevel]string{
	catalog.DangerCritical:  "Критическая опасность",
	catalog.DangerDangerous: "Опасный вид",
	catalog.DangerWatch:     "Требует наблюдения",
	catalog.DangerModerate:  "Умеренная опасность",
	catalog.DangerLow:       "Низкая опасность",
}

var habitatLabels = map[catalog.Habitat]string{
	catalog.HabitatWasteland: "Пустырь",
	catalog.HabitatForest:    "Лес/парк",
	catalog.HabitatWater:     "Берег водоёма",
	catalog.HabitatLawn:      "Газон",
	catalog.HabitatRoadside:  "Обочина",
}

var controlLabels = map[catalog.ControlType]string{
	catalog.ControlMechanical: "Механические",
	catalog.ControlChemical:   "Химические",
	catalog.ControlAgro:       "Агротехнические",
}

var seasonLabels = map[string]string{
	"spring": "Весна",
	"summer": "Лето",
	"autumn": "Осень",
	"winter": "Зима",
}

var categoryLabels = map[catalog.Category]string{
	catalog.CategoryAll:      "Все",
	catalog.CategoryCritical: "Критичные",
}

// Fallback texts for optional details fields.
const (
	DefaultControlDescription = "Комбинирование методов повышает эффективность борьбы."
	DefaultIdentificationTips = "См. фотографии для точной идентификации."
	DefaultEmoji              = "🌿"
)

// Type returns the display name of a plant type.
func Type(t catalog.PlantType) string {
	return lookup(typeLabels, t, string(t))
}

// Danger returns the short badge text for a danger level.
func Danger(d catalog.DangerLevel) string {
	return lookup(dangerShort, d, string(d))
}

// DangerLong returns the details-view text for a danger level.
func DangerLong(d catalog.DangerLevel) string {
	return lookup(dangerLong, d, string(d))
}

// DangerClass returns the CSS class for a danger badge, or "" for unknown
// levels.
func DangerClass(d catalog.DangerLevel) string {
	if _, ok := dangerShort[d]; !ok {
		return ""
	}
	return "badge-" + string(d)
}

// Habitat returns the display name of a habitat.
func Habitat(h catalog.Habitat) string {
	return lookup(habitatLabels, h, string(h))
}

// Control returns the display name of a control method type.
func Control(c catalog.ControlType) string {
	return lookup(controlLabels, c, string(c))
}

// ControlClass returns the CSS class for a control method tag, or "" for
// unknown types.
func ControlClass(c catalog.ControlType) string {
	if _, ok := controlLabels[c]; !ok {
		return ""
	}
	return string(c)
}

// Season returns the display name of a season key.
func Season(s string) string {
	return lookup(seasonLabels, s, s)
}

// Category returns the filter-bar label for a category selector.
func Category(c catalog.Category) string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return Type(catalog.PlantType(c))
}

// Emoji returns the plant's glyph or the default one.
func Emoji(p catalog.Plant) string {
	if p.Emoji != "" {
		return p.Emoji
	}
	return DefaultEmoji
}

// ControlDescription returns the plant's control text or the fallback.
func ControlDescription(p catalog.Plant) string {
	if p.ControlDescription != "" {
		return p.ControlDescription
	}
	return DefaultControlDescription
}

// IdentificationTips returns the plant's tips or the fallback.
func IdentificationTips(p catalog.Plant) string {
	if p.IdentificationTips != "" {
		return p.IdentificationTips
	}
	return DefaultIdentificationTips
}

func lookup[K comparable](table map[K]string, key K, fallback string) string {
	if l, ok := table[key]; ok {
		return l
	}
	return fallback
}
