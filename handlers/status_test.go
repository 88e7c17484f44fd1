package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestUpdateStatus_UnknownUser(t *testing.T) {
	router, _ := newTestRouter()

	rec := send(t, router, http.MethodPost, "/status", "ghost", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateStatus_BumpsLastStatus(t *testing.T) {
	router, _ := newTestRouter()
	register(t, router, "alice")

	before := lastStatusOf(t, router, "alice")
	time.Sleep(2 * time.Millisecond)

	rec := send(t, router, http.MethodPost, "/status", "alice", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, rec.Body.String())

	after := lastStatusOf(t, router, "alice")
	require.GreaterOrEqual(t, after, before)
}

func lastStatusOf(t *testing.T, router *gin.Engine, name string) float64 {
	t.Helper()

	rec := send(t, router, http.MethodGet, "/participants", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	for _, doc := range decodeDocs(t, rec) {
		if doc["name"] == name {
			status, ok := doc["lastStatus"].(float64)
			require.True(t, ok, "lastStatus should be numeric")
			return status
		}
	}
	t.Fatalf("participant %q not found", name)
	return 0
}
