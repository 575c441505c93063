package identify

// Season keys offered by the wizard.
const (
	SeasonSpring = "spring"
	SeasonSummer = "summer"
	SeasonAutumn = "autumn"
	SeasonWinter = "winter"
)

// Seasons lists the season keys in wizard order.
var Seasons = []string{SeasonSpring, SeasonSummer, SeasonAutumn, SeasonWinter}

// Selections is what the user has told the wizard so far. Empty strings mean
// "not chosen". Methods return modified copies; a Selections value is never
// changed in place.
type Selections struct {
	Type     string   `json:"type,omitempty"`
	Season   string   `json:"season,omitempty"`
	Habitat  string   `json:"habitat,omitempty"`
	Features []string `json:"features,omitempty"`
}

// WithType returns a copy with the plant type set.
func (s Selections) WithType(t string) Selections {
	s.Features = cloneStrings(s.Features)
	s.Type = t
	return s
}

// WithSeason returns a copy with the season set.
func (s Selections) WithSeason(season string) Selections {
	s.Features = cloneStrings(s.Features)
	s.Season = season
	return s
}

// WithHabitat returns a copy with the habitat set.
func (s Selections) WithHabitat(h string) Selections {
	s.Features = cloneStrings(s.Features)
	s.Habitat = h
	return s
}

// ToggleFeature returns a copy with the feature added, or removed if it was
// already selected.
func (s Selections) ToggleFeature(tag string) Selections {
	out := make([]string, 0, len(s.Features)+1)
	removed := false
	for _, f := range s.Features {
		if f == tag {
			removed = true
			continue
		}
		out = append(out, f)
	}
	if !removed {
		out = append(out, tag)
	}
	s.Features = out
	return s
}

// HasFeature reports whether the feature is selected.
func (s Selections) HasFeature(tag string) bool {
	for _, f := range s.Features {
		if f == tag {
			return true
		}
	}
	return false
}

// IsEmpty reports whether nothing has been selected.
func (s Selections) IsEmpty() bool {
	return s.Type == "" && s.Season == "" && s.Habitat == "" && len(s.Features) == 0
}

// Reset returns the empty selection.
func (s Selections) Reset() Selections {
	return Selections{}
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
