package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/beldeveloper/train-dispatch/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_ListExperiments(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/experiments", r.URL.Path)
		assert.Equal(t, "secret", r.URL.Query().Get("accessKey"))
		assert.Equal(t, app.ExperimentStatusPending, r.URL.Query().Get("status"))
		json.NewEncoder(w).Encode([]app.Experiment{{ID: 2}, {ID: 1}})
	}))
	defer srv.Close()

	c := newClient(srv.URL+"/", "secret")
	list, err := c.listExperiments(app.FilterExperiments{Status: app.ExperimentStatusPending})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, uint64(2), list[0].ID)
}

func TestClient_GetExperiment(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/experiment/5", r.URL.Path)
		json.NewEncoder(w).Encode(app.Experiment{ID: 5, Name: "20220825/sac_pick"})
	}))
	defer srv.Close()

	c := newClient(srv.URL, "secret")
	e, err := c.getExperiment(5)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), e.ID)
	assert.Equal(t, "20220825/sac_pick", e.Name)
}

func TestClient_GetCommand(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/experiment/5/command", r.URL.Path)
		json.NewEncoder(w).Encode("python scripts/train/train_policy.py --seed 0")
	}))
	defer srv.Close()

	c := newClient(srv.URL, "secret")
	line, err := c.getCommand(5)
	require.NoError(t, err)
	assert.Equal(t, "python scripts/train/train_policy.py --seed 0", line)
}

func TestClient_SubmitManifest(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/manifests", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var m app.Manifest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&m))
		assert.Equal(t, "20220825/sac", m.Name)
		json.NewEncoder(w).Encode([]app.Experiment{{ID: 1}, {ID: 2}})
	}))
	defer srv.Close()

	c := newClient(srv.URL, "secret")
	list, err := c.submitManifest(app.Manifest{Name: "20220825/sac"})
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestClient_CancelExperiment(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/experiment/5", r.URL.Path)
		json.NewEncoder(w).Encode(nil)
	}))
	defer srv.Close()

	c := newClient(srv.URL, "secret")
	require.NoError(t, c.cancelExperiment(5))
}

func TestClient_ServerError(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := newClient(srv.URL, "guess")
	_, err := c.listExperiments(app.FilterExperiments{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}
