package handlers

import (
	"encoding/json"
	"net/http"

	"carpetgen/internal/catalog"
	"carpetgen/internal/generator"

	"github.com/rs/zerolog"
)

const (
	serviceName = "carpet-design-generator"
	apiVersion  = "1.0.0"
)

// App is the handler container. Everything it holds is immutable or
// concurrency-safe, so one App serves all requests.
type App struct {
	Catalog   *catalog.Catalog
	Generator *generator.Service
	Log       zerolog.Logger
}

func NewApp(c *catalog.Catalog, g *generator.Service, log zerolog.Logger) *App {
	return &App{Catalog: c, Generator: g, Log: log}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
