package httpapi

import (
	stdhttp "net/http"

	"carpetgen/internal/http/handlers"
	appmw "carpetgen/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

func NewRouter(app *handlers.App, log zerolog.Logger) stdhttp.Handler {
	r := chi.NewRouter()
	r.Use(appmw.RequestID, middleware.RealIP, middleware.Recoverer, appmw.Logger(log), appmw.CORS())

	r.Get("/", app.Root)
	r.Get("/health", app.Health)
	r.Get("/options", app.Options)
	r.Post("/generate", app.Generate)
	r.Get("/generate-image", app.GenerateImage)

	return r
}
