package handlers

import "net/http"

type metaResponse struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// Root serves discovery metadata for the API.
func (a *App) Root(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, metaResponse{
		Message: "Azerbaijan Carpet Design Generator API",
		Version: apiVersion,
		Endpoints: map[string]string{
			"/generate":       "POST - Generate carpet design",
			"/generate-image": "GET - Generate carpet design from query parameters",
			"/options":        "GET - Get available options",
			"/health":         "GET - Health check",
		},
	})
}

func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": serviceName,
	})
}
