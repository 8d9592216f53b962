package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// HTTPTestHelper provides utilities for HTTP testing against a gin
// router. Every request sends Accept: application/json unless a test
// overrides it through Do.
type HTTPTestHelper struct {
	t      *testing.T
	router *gin.Engine
}

// NewHTTPTestHelper creates a new HTTP test helper
func NewHTTPTestHelper(t *testing.T, router *gin.Engine) *HTTPTestHelper {
	gin.SetMode(gin.TestMode)
	return &HTTPTestHelper{t: t, router: router}
}

// Do performs a request with the given headers applied on top of the
// JSON defaults
func (h *HTTPTestHelper) Do(method, url string, payload interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var body *bytes.Buffer = &bytes.Buffer{}
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(h.t, err, "Failed to marshal JSON payload")
		body = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, url, body)
	require.NoError(h.t, err, "Failed to create HTTP request")

	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	recorder := httptest.NewRecorder()
	h.router.ServeHTTP(recorder, req)
	return recorder
}

// GetJSON performs a GET request expecting a JSON response
func (h *HTTPTestHelper) GetJSON(url string) *httptest.ResponseRecorder {
	return h.Do(http.MethodGet, url, nil, nil)
}

// PostJSON performs a POST request with a JSON payload
func (h *HTTPTestHelper) PostJSON(url string, payload interface{}) *httptest.ResponseRecorder {
	return h.Do(http.MethodPost, url, payload, nil)
}

// PutJSON performs a PUT request with a JSON payload
func (h *HTTPTestHelper) PutJSON(url string, payload interface{}) *httptest.ResponseRecorder {
	return h.Do(http.MethodPut, url, payload, nil)
}

// PatchJSON performs a PATCH request with a JSON payload
func (h *HTTPTestHelper) PatchJSON(url string, payload interface{}) *httptest.ResponseRecorder {
	return h.Do(http.MethodPatch, url, payload, nil)
}

// Delete performs a DELETE request
func (h *HTTPTestHelper) Delete(url string) *httptest.ResponseRecorder {
	return h.Do(http.MethodDelete, url, nil, nil)
}

// DecodeJSON decodes the recorded response body into out
func (h *HTTPTestHelper) DecodeJSON(recorder *httptest.ResponseRecorder, out interface{}) {
	require.NoError(h.t, json.Unmarshal(recorder.Body.Bytes(), out), "Failed to decode response body")
}
