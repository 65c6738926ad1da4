package design

import "strings"

// Request is the unified carpet design request. It covers every inbound
// variant: a palette by name or an explicit color list, and a single motif
// or a motif list. Callers run Normalize before Validate; after that the
// request is read-only.
type Request struct {
	Style   string   `json:"design_style"`
	Palette string   `json:"color_palette,omitempty"`
	Colors  []string `json:"colors,omitempty"`
	Motif   string   `json:"motif,omitempty"`
	Motifs  []string `json:"motifs,omitempty"`

	AspectRatio       string `json:"aspect_ratio,omitempty"`
	AdditionalDetails string `json:"additional_details,omitempty"`
}

// DefaultAspectRatio is applied when the caller omits an aspect ratio. The
// value is advisory only and is never validated against a fixed set.
const DefaultAspectRatio = "4:3"

// FieldError reports a single failed validation rule and the field that
// caused it.
type FieldError struct {
	Field  string
	Detail string
}

func (e *FieldError) Error() string {
	return e.Detail
}

// Normalize trims the text fields, folds the singular motif into the motif
// list, drops blank list entries, and applies defaults. It must run before
// Validate so the singular and list variants validate identically.
func (r *Request) Normalize() {
	r.Style = strings.TrimSpace(r.Style)
	r.Palette = strings.TrimSpace(r.Palette)
	r.AdditionalDetails = strings.TrimSpace(r.AdditionalDetails)

	if motif := strings.TrimSpace(r.Motif); motif != "" {
		r.Motifs = append([]string{motif}, r.Motifs...)
		r.Motif = ""
	}
	r.Motifs = trimBlank(r.Motifs)
	r.Colors = trimBlank(r.Colors)

	if strings.TrimSpace(r.AspectRatio) == "" {
		r.AspectRatio = DefaultAspectRatio
	}
}

// Validate checks each required-field rule independently and reports the
// first failing field by name. Aspect ratio and additional details are
// optional and never fail validation.
func (r *Request) Validate() *FieldError {
	if r.Style == "" {
		return &FieldError{Field: "design_style", Detail: "Design style is required"}
	}
	if r.Palette == "" && len(r.Colors) == 0 {
		return &FieldError{Field: "color_palette", Detail: "Color palette is required"}
	}
	if len(r.Motifs) == 0 {
		return &FieldError{Field: "motif", Detail: "Motif is required"}
	}
	return nil
}

func trimBlank(values []string) []string {
	var out []string
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}
