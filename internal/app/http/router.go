package http

import (
	"github.com/julienschmidt/httprouter"
	"net/http"
)

// NewRouter creates and configures a new instance of the router.
func NewRouter(h Handler) *httprouter.Router {
	r := httprouter.New()

	r.GET("/experiments", h.Experiments)
	r.POST("/experiments", h.AddExperiment)
	r.POST("/manifests", h.AddManifest)
	r.GET("/experiment/:id", h.Experiment)
	r.GET("/experiment/:id/command", h.ExperimentCommand)
	r.POST("/experiment/:id/requeue", h.RequeueExperiment)
	r.DELETE("/experiment/:id", h.CancelExperiment)

	r.GlobalOPTIONS = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		SetDefaultHeaders(w)
		h := w.Header()
		h.Set("Access-Control-Allow-Methods", h.Get("Allow"))
		w.WriteHeader(http.StatusNoContent)
	})

	return r
}
