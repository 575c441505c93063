package catalog

import "encoding/json"

// PlantType is the growth form of a plant.
type PlantType string

const (
	TypeTree  PlantType = "tree"
	TypeShrub PlantType = "shrub"
	TypeHerb  PlantType = "herb"
	TypeVine  PlantType = "vine"
)

// PlantTypes lists the known growth forms in display order.
var PlantTypes = []PlantType{TypeTree, TypeShrub, TypeHerb, TypeVine}

// DangerLevel is the invasiveness rating, ordered from most to least severe.
type DangerLevel string

const (
	DangerCritical  DangerLevel = "critical"
	DangerDangerous DangerLevel = "dangerous"
	DangerWatch     DangerLevel = "watch"
	DangerModerate  DangerLevel = "moderate"
	DangerLow       DangerLevel = "low"
)

// DangerLevels lists the known danger levels, most severe first.
var DangerLevels = []DangerLevel{DangerCritical, DangerDangerous, DangerWatch, DangerModerate, DangerLow}

// Rank returns 0 for critical through 4 for low. Unknown levels sort last.
func (d DangerLevel) Rank() int {
	for i, l := range DangerLevels {
		if l == d {
			return i
		}
	}
	return len(DangerLevels)
}

// Habitat is where a plant is usually found. Values outside the known set
// are kept as-is.
type Habitat string

const (
	HabitatWasteland Habitat = "wasteland"
	HabitatForest    Habitat = "forest"
	HabitatWater     Habitat = "water"
	HabitatLawn      Habitat = "lawn"
	HabitatRoadside  Habitat = "roadside"
)

// Habitats lists the known habitats in display order.
var Habitats = []Habitat{HabitatWasteland, HabitatForest, HabitatWater, HabitatLawn, HabitatRoadside}

// ControlType classifies a control method.
type ControlType string

const (
	ControlMechanical ControlType = "mechanical"
	ControlChemical   ControlType = "chemical"
	ControlAgro       ControlType = "agro"
)

// ControlMethod is one way of fighting a plant.
type ControlMethod struct {
	Type ControlType `json:"type" yaml:"type"`
	Name string      `json:"name" yaml:"name"`
}

// Plant is one species record in the catalog data file.
type Plant struct {
	ID                 string          `json:"id" yaml:"id"`
	Name               string          `json:"name" yaml:"name"`
	LatinName          string          `json:"latinName" yaml:"latinName"`
	LocalName          string          `json:"localName,omitempty" yaml:"localName,omitempty"`
	Type               PlantType       `json:"type" yaml:"type"`
	DangerLevel        DangerLevel     `json:"dangerLevel" yaml:"dangerLevel"`
	Habitat            Habitat         `json:"habitat" yaml:"habitat"`
	FloweringSeason    string          `json:"floweringSeason" yaml:"floweringSeason"`
	Features           []string        `json:"features" yaml:"features"`
	Description        string          `json:"description" yaml:"description"`
	Origin             string          `json:"origin,omitempty" yaml:"origin,omitempty"`
	EcosystemImpact    string          `json:"ecosystemImpact,omitempty" yaml:"ecosystemImpact,omitempty"`
	HumanDanger        string          `json:"humanDanger,omitempty" yaml:"humanDanger,omitempty"`
	SpreadWays         string          `json:"spreadWays,omitempty" yaml:"spreadWays,omitempty"`
	ControlMethods     []ControlMethod `json:"controlMethods" yaml:"controlMethods"`
	ControlDescription string          `json:"controlDescription,omitempty" yaml:"controlDescription,omitempty"`
	IdentificationTips string          `json:"identificationTips,omitempty" yaml:"identificationTips,omitempty"`
	Image              string          `json:"image,omitempty" yaml:"image,omitempty"`
	Emoji              string          `json:"emoji,omitempty" yaml:"emoji,omitempty"`
}

// UnmarshalJSON accepts the older "belarusianName" key for LocalName.
func (p *Plant) UnmarshalJSON(data []byte) error {
	type plain Plant
	aux := struct {
		*plain
		BelarusianName string `json:"belarusianName"`
	}{plain: (*plain)(p)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if p.LocalName == "" {
		p.LocalName = aux.BelarusianName
	}
	return nil
}

// HasFeature reports whether the plant carries the given feature tag.
func (p Plant) HasFeature(tag string) bool {
	for _, f := range p.Features {
		if f == tag {
			return true
		}
	}
	return false
}

// normalize replaces absent collections with empty ones.
func normalize(plants []Plant) []Plant {
	if plants == nil {
		return []Plant{}
	}
	for i := range plants {
		if plants[i].Features == nil {
			plants[i].Features = []string{}
		}
		if plants[i].ControlMethods == nil {
			plants[i].ControlMethods = []ControlMethod{}
		}
	}
	return plants
}
