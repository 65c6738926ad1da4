package handlers

import (
	"encoding/json"
	"net/http"

	"carpetgen/internal/design"
	"carpetgen/internal/generator"
)

// Generate handles the JSON-body variant. Palette misses are lenient here:
// an unknown palette name falls back to the catalog's default colors, and
// the Result body carries the true outcome under HTTP 200.
func (a *App) Generate(w http.ResponseWriter, r *http.Request) {
	var req design.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.json(w, http.StatusBadRequest, map[string]string{"detail": "Request body must be valid JSON"})
		return
	}
	req.Normalize()
	if ferr := req.Validate(); ferr != nil {
		a.json(w, http.StatusBadRequest, map[string]string{"detail": ferr.Detail})
		return
	}

	res := a.Generator.Generate(r.Context(), req, generator.PaletteLenient)
	a.json(w, http.StatusOK, res)
}
