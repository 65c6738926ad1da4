package handlers

import (
	"net/http"

	"carpetgen/internal/design"
	"carpetgen/internal/generator"
)

// GenerateImage handles the query-parameter variant. This endpoint applies
// the strict palette policy: an unknown palette name is rejected with 400
// before any outbound call, and failures map onto HTTP status codes rather
// than riding inside a 200 envelope.
func (a *App) GenerateImage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := design.Request{
		Style:   q.Get("design_pattern"),
		Palette: q.Get("color_palette"),
		Motif:   q.Get("motif"),
	}
	req.Normalize()
	if ferr := req.Validate(); ferr != nil {
		a.json(w, http.StatusBadRequest, map[string]string{"error": ferr.Detail})
		return
	}

	res := a.Generator.Generate(r.Context(), req, generator.PaletteStrict)
	switch res.Kind {
	case generator.FailureNone:
		a.json(w, http.StatusOK, res)
	case generator.FailurePalette:
		a.json(w, http.StatusBadRequest, map[string]string{"error": res.Error})
	case generator.FailureUpstream:
		a.json(w, http.StatusBadGateway, map[string]string{"error": "Image generation failed"})
	default:
		a.json(w, http.StatusInternalServerError, map[string]string{"error": res.Error})
	}
}
