package catalog

import (
	"strings"

	"golang.org/x/text/cases"
)

// Color is a single named color with its display hex code.
type Color struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// Palette is a named, ordered set of colors. Order is prompt/display order.
type Palette struct {
	Name   string  `json:"name"`
	Colors []Color `json:"colors"`
}

// ColorNames returns the palette's color names in display order.
func (p Palette) ColorNames() []string {
	names := make([]string, len(p.Colors))
	for i, c := range p.Colors {
		names[i] = c.Name
	}
	return names
}

type motifRule struct {
	contains    string
	description string
}

// Catalog is the immutable registry of design styles, color palettes, and
// motif descriptions. Build it once with Default and inject it; it is safe
// for concurrent use.
type Catalog struct {
	styles         []string
	palettes       []Palette
	paletteIndex   map[string]int
	motifs         []string
	exactMotifs    map[string]string
	substringRules []motifRule
	defaultPalette Palette
}

// Default builds the registry with the standard Azerbaijan carpet options.
func Default() *Catalog {
	c := &Catalog{
		styles: []string{"Tabriz", "Ganja", "Shirvan", "Baku", "Karabagh", "Gazakh", "Kubba"},
		palettes: []Palette{
			{Name: "Mystical Journey", Colors: []Color{
				{Name: "Deep Purple", Hex: "#4c1d95"},
				{Name: "Royal Blue", Hex: "#6366f1"},
				{Name: "Violet", Hex: "#a855f7"},
				{Name: "Light Gray", Hex: "#f3f4f6"},
			}},
			{Name: "Mugham Harmony", Colors: []Color{
				{Name: "Sky Blue", Hex: "#0ea5e9"},
				{Name: "Cyan", Hex: "#06b6d4"},
				{Name: "Purple", Hex: "#8b5cf6"},
				{Name: "Amber", Hex: "#f59e0b"},
			}},
			{Name: "Royal Purple", Colors: []Color{
				{Name: "Dark Purple", Hex: "#4c1d95"},
				{Name: "Medium Purple", Hex: "#7c3aed"},
				{Name: "Light Purple", Hex: "#a855f7"},
				{Name: "Pale Purple", Hex: "#c084fc"},
			}},
			{Name: "Azure Sky", Colors: []Color{
				{Name: "Sky Blue", Hex: "#0ea5e9"},
				{Name: "Cyan Blue", Hex: "#06b6d4"},
				{Name: "Royal Blue", Hex: "#3b82f6"},
				{Name: "Indigo", Hex: "#6366f1"},
			}},
			{Name: "Earth Tones", Colors: []Color{
				{Name: "Saddle Brown", Hex: "#8B4513"},
				{Name: "Chocolate", Hex: "#D2691E"},
				{Name: "Sandy Brown", Hex: "#CD853F"},
				{Name: "Sienna", Hex: "#A0522D"},
			}},
			{Name: "Sunset Fire", Colors: []Color{
				{Name: "Orange Red", Hex: "#FF4500"},
				{Name: "Dark Orange", Hex: "#FF8C00"},
				{Name: "Gold", Hex: "#FFD700"},
				{Name: "Fire Brick", Hex: "#B22222"},
			}},
			{Name: "Forest Harmony", Colors: []Color{
				{Name: "Forest Green", Hex: "#228B22"},
				{Name: "Lime Green", Hex: "#32CD32"},
				{Name: "Olive Drab", Hex: "#6B8E23"},
				{Name: "Yellow Green", Hex: "#9ACD32"},
			}},
			{Name: "Modern Monochrome", Colors: []Color{
				{Name: "Dark Gray", Hex: "#2D3748"},
				{Name: "Gray", Hex: "#4A5568"},
				{Name: "Light Gray", Hex: "#718096"},
				{Name: "Very Light Gray", Hex: "#E2E8F0"},
			}},
		},
		motifs: []string{"Buta", "Khari Bul-Bul", "Bird", "Geometric patterns", "Floral designs"},
		exactMotifs: map[string]string{
			"buta":       "Buta (traditional paisley motif, iconic Azerbaijan symbol representing life and eternity)",
			"rosekhatte": "RoseKhatte (rose and line motif, symbol of beauty and elegance in Azerbaijan carpets)",
			"bird":       "Bird (freedom and nature symbol, representing the soul's journey to heaven)",
		},
		// Checked in order after the exact table, first match wins.
		substringRules: []motifRule{
			{contains: "geometric", description: "intricate geometric patterns (mathematical precision representing divine order and infinity)"},
			{contains: "floral", description: "traditional floral designs (garden of paradise motifs with roses, tulips, and vines)"},
			{contains: "star", description: "star medallions (eight-pointed stars symbolizing divine light and protection)"},
			{contains: "vine", description: "curling vine ornaments (endless vines representing growth and the continuity of life)"},
		},
		defaultPalette: Palette{Name: "Classic Heritage", Colors: []Color{
			{Name: "Deep Red", Hex: "#8B0000"},
			{Name: "Navy Blue", Hex: "#000080"},
			{Name: "Golden Yellow", Hex: "#FFD700"},
			{Name: "Dark Gray", Hex: "#2D3748"},
		}},
	}
	c.paletteIndex = make(map[string]int, len(c.palettes))
	for i, p := range c.palettes {
		c.paletteIndex[p.Name] = i
	}
	return c
}

// Palette looks up a palette by its canonical name. Matching is exact and
// case-sensitive; callers are expected to supply names from Palettes.
func (c *Catalog) Palette(name string) (Palette, bool) {
	i, ok := c.paletteIndex[name]
	if !ok {
		return Palette{}, false
	}
	return c.palettes[i], true
}

// DefaultPalette returns the fixed fallback palette used when a lenient
// caller names a palette the catalog does not know.
func (c *Catalog) DefaultPalette() Palette {
	return c.defaultPalette
}

// DescribeMotif resolves a motif name to its descriptive phrase. The exact
// table is consulted first, then the substring rules in declaration order.
// Unknown motifs degrade to "{name} motif" with the caller's literal text.
// Matching uses Unicode case folding so Azerbaijani dotted and dotless I
// compare correctly.
func (c *Catalog) DescribeMotif(motif string) string {
	folded := cases.Fold().String(strings.TrimSpace(motif))
	if desc, ok := c.exactMotifs[folded]; ok {
		return desc
	}
	for _, rule := range c.substringRules {
		if strings.Contains(folded, rule.contains) {
			return rule.description
		}
	}
	return motif + " motif"
}

// Styles returns the design style names in display order.
func (c *Catalog) Styles() []string {
	out := make([]string, len(c.styles))
	copy(out, c.styles)
	return out
}

// Palettes returns the palettes in display order.
func (c *Catalog) Palettes() []Palette {
	out := make([]Palette, len(c.palettes))
	copy(out, c.palettes)
	return out
}

// Motifs returns the motif names in display order.
func (c *Catalog) Motifs() []string {
	out := make([]string, len(c.motifs))
	copy(out, c.motifs)
	return out
}
