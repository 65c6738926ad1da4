package design

import (
	"fmt"
	"strings"
)

// BuildPrompt compiles the resolved design parameters into the prompt sent
// to the image provider. It is pure and total: identical inputs produce
// byte-identical output, and no input makes it fail. Color names and the
// motif description must already be resolved against the catalog.
func BuildPrompt(style, motifText string, colors []string, details string) string {
	prompt := fmt.Sprintf(
		"A highly detailed, traditional Persian and Azerbaijan carpet design in the style of %s, "+
			"featuring %s, clearly visible in the carpet design. "+
			"Intricate floral and geometric patterns, rich textures, and authentic weaving. "+
			"Color palette: %s. "+
			"Ornate, symmetrical, museum-quality, high-resolution, vibrant, "+
			"inspired by historical carpets from Shirvan, Karabagh, and the Caucasus region.",
		style, motifText, strings.Join(colors, ", "),
	)
	if details != "" {
		prompt += " " + details + "."
	}
	return prompt
}
