package http

import (
	"encoding/json"
	"fmt"
	"github.com/beldeveloper/go-errors-context"
	"github.com/beldeveloper/train-dispatch/internal/app"
	"github.com/beldeveloper/train-dispatch/internal/app/errtype"
	"github.com/julienschmidt/httprouter"
	"net/http"
	"strconv"
)

// NewHandler creates a new instance of the REST API handler.
func NewHandler(expSvc app.ExperimentSvc, accessKey app.ApiAccessKey) Handler {
	return Handler{
		expSvc:    expSvc,
		accessKey: string(accessKey),
	}
}

// Handler handles the REST API requests.
type Handler struct {
	expSvc    app.ExperimentSvc
	accessKey string
}

// Experiments returns the list of experiments.
func (h Handler) Experiments(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	err := h.validateKey(r)
	if err != nil {
		apiError(w, err)
		return
	}
	f := app.FilterExperiments{
		Status: r.URL.Query().Get("status"),
		Kind:   r.URL.Query().Get("kind"),
	}
	res, err := h.expSvc.List(r.Context(), f)
	if err != nil {
		apiError(w, err)
		return
	}
	apiSuccess(w, res)
}

// AddExperiment adds new experiment and puts it to pending status.
func (h Handler) AddExperiment(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	err := h.validateKey(r)
	if err != nil {
		apiError(w, err)
		return
	}
	var f app.FormAddExperiment
	err = json.NewDecoder(r.Body).Decode(&f)
	if err != nil {
		apiError(w, fmt.Errorf("%w: %v", errtype.ErrBadInput, err))
		return
	}
	res, err := h.expSvc.Add(r.Context(), f)
	if err != nil {
		apiError(w, err)
		return
	}
	apiSuccess(w, res)
}

// AddManifest expands the manifest and enqueues all experiments it defines.
func (h Handler) AddManifest(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	err := h.validateKey(r)
	if err != nil {
		apiError(w, err)
		return
	}
	var m app.Manifest
	err = json.NewDecoder(r.Body).Decode(&m)
	if err != nil {
		apiError(w, fmt.Errorf("%w: %v", errtype.ErrBadInput, err))
		return
	}
	res, err := h.expSvc.AddManifest(r.Context(), m)
	if err != nil {
		apiError(w, err)
		return
	}
	apiSuccess(w, res)
}

// Experiment returns the experiment by ID.
func (h Handler) Experiment(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	err := h.validateKey(r)
	if err != nil {
		apiError(w, err)
		return
	}
	id, err := strconv.Atoi(ps.ByName("id"))
	if err != nil {
		apiError(w, fmt.Errorf("%w: invalid experiment id: %v", errtype.ErrBadInput, err))
		return
	}
	res, err := h.expSvc.Get(r.Context(), uint64(id))
	if err != nil {
		apiError(w, err)
		return
	}
	apiSuccess(w, res)
}

// ExperimentCommand returns the full command line of the experiment.
func (h Handler) ExperimentCommand(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	err := h.validateKey(r)
	if err != nil {
		apiError(w, err)
		return
	}
	id, err := strconv.Atoi(ps.ByName("id"))
	if err != nil {
		apiError(w, fmt.Errorf("%w: invalid experiment id: %v", errtype.ErrBadInput, err))
		return
	}
	res, err := h.expSvc.Command(r.Context(), uint64(id))
	if err != nil {
		apiError(w, err)
		return
	}
	apiSuccess(w, res)
}

// RequeueExperiment returns the failed or canceled experiment back to the queue.
func (h Handler) RequeueExperiment(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	err := h.validateKey(r)
	if err != nil {
		apiError(w, err)
		return
	}
	id, err := strconv.Atoi(ps.ByName("id"))
	if err != nil {
		apiError(w, fmt.Errorf("%w: invalid experiment id: %v", errtype.ErrBadInput, err))
		return
	}
	res, err := h.expSvc.Requeue(r.Context(), uint64(id))
	if err != nil {
		apiError(w, err)
		return
	}
	apiSuccess(w, res)
}

// CancelExperiment stops the experiment job and marks the experiment as canceled.
func (h Handler) CancelExperiment(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	err := h.validateKey(r)
	if err != nil {
		apiError(w, err)
		return
	}
	id, err := strconv.Atoi(ps.ByName("id"))
	if err != nil {
		apiError(w, fmt.Errorf("%w: invalid experiment id: %v", errtype.ErrBadInput, err))
		return
	}
	err = h.expSvc.Cancel(r.Context(), uint64(id))
	if err != nil {
		apiError(w, err)
		return
	}
	apiSuccess(w, nil)
}

func (h Handler) validateKey(r *http.Request) error {
	if r.URL.Query().Get("accessKey") != h.accessKey {
		return errors.WrapContext(errtype.ErrUnauthorized, errors.Context{})
	}
	return nil
}
