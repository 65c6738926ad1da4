package generator

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"carpetgen/internal/catalog"
	"carpetgen/internal/design"

	"github.com/rs/zerolog"
)

// PalettePolicy controls what happens when a request names a palette the
// catalog does not know.
type PalettePolicy int

const (
	// PaletteLenient substitutes the catalog's fixed default palette.
	PaletteLenient PalettePolicy = iota
	// PaletteStrict rejects the request before any outbound call.
	PaletteStrict
)

// FailureKind classifies a failed Result so HTTP handlers can map it to the
// right status code. It is never serialized.
type FailureKind int

const (
	FailureNone FailureKind = iota
	FailurePalette
	FailureUpstream
	FailureNetwork
	FailureInternal
)

// Result is the normalized outcome of one generation attempt. ImageURL and
// Error are mutually exclusive: exactly one is set, matching Success.
type Result struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	ImageURL string `json:"image_url,omitempty"`
	Error    string `json:"error,omitempty"`

	Kind FailureKind `json:"-"`
}

const (
	successMessage      = "Carpet design generated successfully"
	failureMessage      = "Failed to generate carpet design"
	invalidPaletteError = "Invalid color palette"
)

// Service orchestrates one generation attempt: resolve the request against
// the catalog, compile the prompt, probe the provider once, classify the
// outcome. It holds no mutable state and is safe for concurrent use.
type Service struct {
	catalog  *catalog.Catalog
	provider Prober
	log      zerolog.Logger
}

func NewService(c *catalog.Catalog, provider Prober, log zerolog.Logger) *Service {
	return &Service{
		catalog:  c,
		provider: provider,
		log:      log,
	}
}

// Generate runs one attempt for a validated request. Every failure comes
// back as a structured Result; nothing propagates as a raw error.
func (s *Service) Generate(ctx context.Context, req design.Request, policy PalettePolicy) Result {
	colors := req.Colors
	if len(colors) == 0 {
		pal, ok := s.catalog.Palette(req.Palette)
		if !ok {
			if policy == PaletteStrict {
				s.log.Warn().Str("palette", req.Palette).Msg("unknown color palette rejected")
				return Result{
					Message: failureMessage,
					Error:   invalidPaletteError,
					Kind:    FailurePalette,
				}
			}
			pal = s.catalog.DefaultPalette()
		}
		colors = pal.ColorNames()
	}

	motifs := make([]string, len(req.Motifs))
	for i, m := range req.Motifs {
		motifs[i] = s.catalog.DescribeMotif(m)
	}
	motifText := strings.Join(motifs, ", ")

	prompt := design.BuildPrompt(req.Style, motifText, colors, req.AdditionalDetails)
	imageURL := s.provider.ImageURL(prompt)

	status, err := s.probe(ctx, imageURL)
	switch {
	case err != nil:
		var urlErr *url.Error
		if errors.As(err, &urlErr) || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			s.log.Warn().Err(err).Str("style", req.Style).Msg("provider unreachable")
			return Result{
				Message: failureMessage,
				Error:   fmt.Sprintf("Network error: %v", err),
				Kind:    FailureNetwork,
			}
		}
		s.log.Error().Err(err).Str("style", req.Style).Msg("generation failed")
		return Result{
			Message: failureMessage,
			Error:   fmt.Sprintf("Internal error: %v", err),
			Kind:    FailureInternal,
		}
	case status != http.StatusOK:
		s.log.Warn().Int("status", status).Str("style", req.Style).Msg("provider returned non-success status")
		return Result{
			Message: failureMessage,
			Error:   fmt.Sprintf("API returned status code %d", status),
			Kind:    FailureUpstream,
		}
	}

	s.log.Info().Str("style", req.Style).Int("motifs", len(req.Motifs)).Msg("carpet design generated")
	return Result{
		Success:  true,
		Message:  successMessage,
		ImageURL: imageURL,
	}
}

func (s *Service) probe(ctx context.Context, imageURL string) (status int, err error) {
	// The provider is outside our control; a panic in a custom Prober must
	// not take the request down.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("provider panic: %v", r)
		}
	}()
	return s.provider.Probe(ctx, imageURL)
}
