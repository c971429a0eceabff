// Package testutil holds request builders and response assertions shared by
// handler tests and the in-memory server test.
package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const contentTypeJSON = "application/json"

// NewRequest builds a request without a body.
func NewRequest(t *testing.T, method, target string) *http.Request {
	t.Helper()
	return httptest.NewRequest(method, target, nil)
}

// NewJSONRequest marshals body and sends it as application/json. A nil body
// still carries the JSON content type so ContentTypeJSON lets it through.
func NewJSONRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body), "encode request body")
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", contentTypeJSON)
	return req
}

// NewRequestWithBody sends a raw body, useful for malformed JSON. Callers
// override Content-Type when testing other encodings.
func NewRequestWithBody(t *testing.T, method, target, body string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", contentTypeJSON)
	return req
}

func DoRequest(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

// decode reads the recorded body without draining it, so several assertions
// can run against one response.
func decode(t *testing.T, rr *httptest.ResponseRecorder, into any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), into), "decode response: %s", rr.Body.String())
}

func UnmarshalResponse[T any](t *testing.T, rr *httptest.ResponseRecorder) *T {
	t.Helper()
	var out T
	decode(t, rr, &out)
	return &out
}

func AssertStatus(t *testing.T, rr *httptest.ResponseRecorder, want int) {
	t.Helper()
	assert.Equal(t, want, rr.Code, "status; body: %s", rr.Body.String())
}

func AssertStatusOK(t *testing.T, rr *httptest.ResponseRecorder) {
	t.Helper()
	AssertStatus(t, rr, http.StatusOK)
}

type errorBody struct {
	Error       string `json:"error"`
	Description string `json:"error_description"`
}

// AssertErrorCode checks the "error" field of an error response.
func AssertErrorCode(t *testing.T, rr *httptest.ResponseRecorder, code string) {
	t.Helper()
	var body errorBody
	decode(t, rr, &body)
	assert.Equal(t, code, body.Error, "error code; description: %q", body.Description)
}

func AssertStatusAndError(t *testing.T, rr *httptest.ResponseRecorder, status int, code string) {
	t.Helper()
	AssertStatus(t, rr, status)
	AssertErrorCode(t, rr, code)
}

// AssertErrorDescription checks the client-facing message of an error response.
func AssertErrorDescription(t *testing.T, rr *httptest.ResponseRecorder, want string) {
	t.Helper()
	var body errorBody
	decode(t, rr, &body)
	assert.Equal(t, want, body.Description)
}

// AssertJSONContains compares one top-level field. JSON numbers decode as float64.
func AssertJSONContains(t *testing.T, rr *httptest.ResponseRecorder, key string, want any) {
	t.Helper()
	var body map[string]any
	decode(t, rr, &body)
	assert.Equal(t, want, body[key], "field %q", key)
}

func AssertJSONHasKey(t *testing.T, rr *httptest.ResponseRecorder, key string) {
	t.Helper()
	var body map[string]any
	decode(t, rr, &body)
	assert.Contains(t, body, key)
}

// AssertPageCount checks a paginated listing's total and the size of the
// returned page.
func AssertPageCount(t *testing.T, rr *httptest.ResponseRecorder, total, onPage int) {
	t.Helper()
	var page struct {
		Count   int               `json:"count"`
		Results []json.RawMessage `json:"results"`
	}
	decode(t, rr, &page)
	assert.Equal(t, total, page.Count, "count")
	assert.Len(t, page.Results, onPage, "results on page")
}
