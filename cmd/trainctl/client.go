package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"github.com/beldeveloper/train-dispatch/internal/app"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

func newClient(addr, key string) client {
	return client{
		addr: strings.TrimRight(addr, "/"),
		key:  key,
		http: &http.Client{Timeout: time.Second * 30},
	}
}

type client struct {
	addr string
	key  string
	http *http.Client
}

func (c client) listExperiments(f app.FilterExperiments) ([]app.Experiment, error) {
	q := url.Values{}
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	if f.Kind != "" {
		q.Set("kind", f.Kind)
	}
	var res []app.Experiment
	err := c.call(http.MethodGet, "/experiments", q, nil, &res)
	return res, err
}

func (c client) getExperiment(id uint64) (app.Experiment, error) {
	var res app.Experiment
	err := c.call(http.MethodGet, "/experiment/"+strconv.FormatUint(id, 10), nil, nil, &res)
	return res, err
}

func (c client) getCommand(id uint64) (string, error) {
	var res string
	err := c.call(http.MethodGet, "/experiment/"+strconv.FormatUint(id, 10)+"/command", nil, nil, &res)
	return res, err
}

func (c client) submitManifest(m app.Manifest) ([]app.Experiment, error) {
	var res []app.Experiment
	err := c.call(http.MethodPost, "/manifests", nil, m, &res)
	return res, err
}

func (c client) requeueExperiment(id uint64) (app.Experiment, error) {
	var res app.Experiment
	err := c.call(http.MethodPost, "/experiment/"+strconv.FormatUint(id, 10)+"/requeue", nil, nil, &res)
	return res, err
}

func (c client) cancelExperiment(id uint64) error {
	return c.call(http.MethodDelete, "/experiment/"+strconv.FormatUint(id, 10), nil, nil, nil)
}

func (c client) call(method, path string, query url.Values, body, out interface{}) error {
	if query == nil {
		query = url.Values{}
	}
	query.Set("accessKey", c.key)
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal the request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, c.addr+path+"?"+query.Encode(), reqBody)
	if err != nil {
		return fmt.Errorf("create the request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("the server responded with the status %s", resp.Status)
	}
	if out == nil {
		return nil
	}
	err = json.NewDecoder(resp.Body).Decode(out)
	if err != nil {
		return fmt.Errorf("decode the response: %w", err)
	}
	return nil
}
