package catalog

// OptionSetKind distinguishes pick-one sets from pick-many sets.
type OptionSetKind string

const (
	SingleChoice OptionSetKind = "single"
	MultiChoice  OptionSetKind = "multi"
)

type MenuOption struct {
	ID         string  `json:"id"`
	Label      string  `json:"label"`
	PriceDelta float64 `json:"price_delta"`
	Tag        string  `json:"tag,omitempty"` // descriptive only (e.g. spice level)
}

type OptionSet struct {
	ID       string        `json:"id"`
	Label    string        `json:"label"`
	Kind     OptionSetKind `json:"kind"`
	Required bool          `json:"required"`
	Options  []MenuOption  `json:"options"`
}

type MenuItem struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	BasePrice   float64     `json:"base_price"`
	Category    string      `json:"category"`
	Rating      float64     `json:"rating,omitempty"`
	Calories    int         `json:"calories,omitempty"`
	Popular     bool        `json:"popular,omitempty"`
	OptionSets  []OptionSet `json:"option_sets"`
}

type Restaurant struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	CuisineTags []string   `json:"cuisine_tags"`
	DistanceKm  float64    `json:"distance_km,omitempty"`
	PriceLevel  int        `json:"price_level,omitempty"`
	Rating      float64    `json:"rating,omitempty"`
	EtaMin      int        `json:"eta_min,omitempty"`
	Image       string     `json:"image,omitempty"`
	Menu        []MenuItem `json:"menu"`
}

// FindOptionSet returns the option set with the given id, or nil.
func (m *MenuItem) FindOptionSet(setID string) *OptionSet {
	for i := range m.OptionSets {
		if m.OptionSets[i].ID == setID {
			return &m.OptionSets[i]
		}
	}
	return nil
}

// FindOption returns the option with the given id, or nil.
func (s *OptionSet) FindOption(optionID string) *MenuOption {
	for i := range s.Options {
		if s.Options[i].ID == optionID {
			return &s.Options[i]
		}
	}
	return nil
}
