package preferences

// PaletteColors is one light or dark variant of a palette.
type PaletteColors struct {
	MainBg   string `json:"mainBg"`
	Primary  string `json:"primary"`
	Border   string `json:"border"`
	BoxBg    string `json:"boxBg"`
	ButtonBg string `json:"buttonBg"`
	FooterBg string `json:"footerBg"`
}

// Palette is a named color scheme with light and dark variants.
type Palette struct {
	Name  string        `json:"name"`
	Light PaletteColors `json:"light"`
	Dark  PaletteColors `json:"dark"`
}

// palettes ships with the app; selecting one persists only its name.
var palettes = []Palette{
	{
		Name:  "Default",
		Light: PaletteColors{MainBg: "#FFDDBD", Primary: "#9A6E45", Border: "#D3A173", BoxBg: "#FFFFFF", ButtonBg: "#9A6E45", FooterBg: "#9A6E45"},
		Dark:  PaletteColors{MainBg: "#000000", Primary: "#FFFFFF", Border: "#5A5BA6", BoxBg: "#343570", ButtonBg: "#333333", FooterBg: "#000000"},
	},
	{
		Name:  "Ocean Blue",
		Light: PaletteColors{MainBg: "#E0F2F7", Primary: "#2C5282", Border: "#A7D9EB", BoxBg: "#FFFFFF", ButtonBg: "#4299E1", FooterBg: "#2C5282"},
		Dark:  PaletteColors{MainBg: "#2C6B9E", Primary: "#FFFFFF", Border: "#000000", BoxBg: "#07083C", ButtonBg: "#333333", FooterBg: "#000000"},
	},
	{
		Name:  "Forest Green",
		Light: PaletteColors{MainBg: "#EAF4E4", Primary: "#4F7942", Border: "#C8DCCB", BoxBg: "#FFFFFF", ButtonBg: "#6B8E23", FooterBg: "#4F7942"},
		Dark:  PaletteColors{MainBg: "#43631B", Primary: "#FFFFFF", Border: "#000000", BoxBg: "#063A0D", ButtonBg: "#333333", FooterBg: "#000000"},
	},
	{
		Name:  "Lavender",
		Light: PaletteColors{MainBg: "#F8F0FF", Primary: "#7753A5", Border: "#E1CCF7", BoxBg: "#FFFFFF", ButtonBg: "#A58EDF", FooterBg: "#9370DB"},
		Dark:  PaletteColors{MainBg: "#3C1C55", Primary: "#FFFFFF", Border: "#000000", BoxBg: "#1D063A", ButtonBg: "#333333", FooterBg: "#000000"},
	},
}

// Palettes returns the shipped color palettes.
func Palettes() []Palette {
	return palettes
}

// DefaultPaletteName is applied when no palette has been chosen.
const DefaultPaletteName = "Default"

// IsKnownPalette reports whether a palette with the name ships.
func IsKnownPalette(name string) bool {
	for _, p := range palettes {
		if p.Name == name {
			return true
		}
	}
	return false
}
