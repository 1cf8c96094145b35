package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
)

// legacyDocsPath is where the docs lived before moving under /api.
const legacyDocsPath = "/api-docs"

// NewRouter registers HTTP routes and returns the handler with middleware.
// Unmatched paths and methods fall through to gorilla/mux's default 404/405.
func NewRouter(app *App) http.Handler {
	r := mux.NewRouter()
	r.Use(WithMetrics(app.Metrics))

	for _, rt := range app.apiRoutes() {
		r.HandleFunc(rt.doc.Path, rt.handler).Methods(rt.doc.Method).Name(rt.doc.OperationID)
	}

	docs := app.Cfg.DocsPath
	r.HandleFunc(docs, app.Docs.ServeUI).Methods(http.MethodGet)
	r.HandleFunc(docs+"/", app.Docs.ServeUI).Methods(http.MethodGet)
	r.HandleFunc(docs+"/openapi.json", app.Docs.ServeJSON).Methods(http.MethodGet)
	r.HandleFunc(docs+"/openapi.yaml", app.Docs.ServeYAML).Methods(http.MethodGet)
	if docs != legacyDocsPath {
		legacy := http.RedirectHandler(docs, http.StatusMovedPermanently)
		r.Handle(legacyDocsPath, legacy).Methods(http.MethodGet)
		r.Handle(legacyDocsPath+"/", legacy).Methods(http.MethodGet)
	}

	r.HandleFunc("/healthz", app.healthHandler).Methods(http.MethodGet)
	r.Handle("/metrics", app.Metrics.Handler()).Methods(http.MethodGet)
	return WithRequestID(WithLogging(r))
}
