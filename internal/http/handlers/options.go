package handlers

import (
	"net/http"

	"carpetgen/internal/catalog"
)

type optionsResponse struct {
	DesignPatterns []string          `json:"design_patterns"`
	ColorPalettes  []catalog.Palette `json:"color_palettes"`
	Motifs         []string          `json:"motifs"`
}

// Options projects the catalog for client discovery. Pure read path; list
// order is the catalog's display order.
func (a *App) Options(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, optionsResponse{
		DesignPatterns: a.Catalog.Styles(),
		ColorPalettes:  a.Catalog.Palettes(),
		Motifs:         a.Catalog.Motifs(),
	})
}
