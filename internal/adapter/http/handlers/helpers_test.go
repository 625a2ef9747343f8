package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"insurance_portal/pkg"

	"github.com/gin-gonic/gin"
)

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req = httptest.NewRequest(method, path, nil)
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) pkg.HTTPError {
	t.Helper()
	var body pkg.HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body %q: %v", w.Body.String(), err)
	}
	return body
}
