package design

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Request
		want Request
	}{
		{
			name: "singular motif folds into the list",
			in:   Request{Style: "Tabriz", Palette: "Earth Tones", Motif: "Buta"},
			want: Request{Style: "Tabriz", Palette: "Earth Tones", Motifs: []string{"Buta"}, AspectRatio: "4:3"},
		},
		{
			name: "singular motif prepends to an existing list",
			in:   Request{Style: "Tabriz", Palette: "Earth Tones", Motif: "Buta", Motifs: []string{"Bird"}},
			want: Request{Style: "Tabriz", Palette: "Earth Tones", Motifs: []string{"Buta", "Bird"}, AspectRatio: "4:3"},
		},
		{
			name: "blank entries are dropped",
			in:   Request{Style: " Tabriz ", Colors: []string{"Deep Red", "  ", ""}, Motifs: []string{"", " Bird "}},
			want: Request{Style: "Tabriz", Colors: []string{"Deep Red"}, Motifs: []string{"Bird"}, AspectRatio: "4:3"},
		},
		{
			name: "explicit aspect ratio is kept",
			in:   Request{Style: "Baku", Palette: "Azure Sky", Motifs: []string{"Bird"}, AspectRatio: "16:9"},
			want: Request{Style: "Baku", Palette: "Azure Sky", Motifs: []string{"Bird"}, AspectRatio: "16:9"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in
			got.Normalize()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Normalize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		in        Request
		wantField string
	}{
		{
			name:      "missing style",
			in:        Request{Palette: "Earth Tones", Motif: "Buta"},
			wantField: "design_style",
		},
		{
			name:      "missing color source",
			in:        Request{Style: "Tabriz", Motif: "Buta"},
			wantField: "color_palette",
		},
		{
			name:      "missing motif",
			in:        Request{Style: "Tabriz", Palette: "Earth Tones"},
			wantField: "motif",
		},
		{
			name:      "blank motif is missing after normalization",
			in:        Request{Style: "Tabriz", Palette: "Earth Tones", Motif: "   "},
			wantField: "motif",
		},
		{
			name: "valid with palette name",
			in:   Request{Style: "Tabriz", Palette: "Earth Tones", Motif: "Buta"},
		},
		{
			name: "valid with explicit colors",
			in:   Request{Style: "Shirvan", Colors: []string{"Deep Red", "Navy Blue"}, Motifs: []string{"Bird", "Buta"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.in
			req.Normalize()
			err := req.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, want failure on %q", tt.wantField)
			}
			if err.Field != tt.wantField {
				t.Errorf("failing field = %q, want %q", err.Field, tt.wantField)
			}
			if err.Detail == "" {
				t.Error("validation error has empty detail")
			}
		})
	}
}
