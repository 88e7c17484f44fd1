package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"batepapo/handlers"
	"batepapo/routes"
	"batepapo/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter() (*gin.Engine, *testutil.MemStore) {
	store := testutil.NewMemStore()
	return routes.SetupRouter(handlers.New(store)), store
}

func send(t *testing.T, router *gin.Engine, method, path, user string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var payload *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		payload = bytes.NewBuffer(raw)
	} else {
		payload = &bytes.Buffer{}
	}

	req := httptest.NewRequest(method, path, payload)
	req.Header.Set("Content-Type", "application/json")
	if user != "" {
		req.Header.Set("user", user)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func register(t *testing.T, router *gin.Engine, name string) {
	t.Helper()
	rec := send(t, router, http.MethodPost, "/participants", "", gin.H{"name": name})
	require.Equal(t, http.StatusCreated, rec.Code)
}

func decodeDocs(t *testing.T, rec *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var docs []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &docs))
	return docs
}
