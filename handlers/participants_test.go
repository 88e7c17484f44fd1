package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestCreateParticipant(t *testing.T) {
	router, _ := newTestRouter()

	rec := send(t, router, http.MethodPost, "/participants", "", gin.H{"name": "alice"})
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Empty(t, rec.Body.String())

	rec = send(t, router, http.MethodGet, "/participants", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	docs := decodeDocs(t, rec)
	require.Len(t, docs, 1)
	require.Equal(t, "alice", docs[0]["name"])
	require.NotZero(t, docs[0]["lastStatus"])
}

func TestCreateParticipant_DuplicateName(t *testing.T) {
	router, _ := newTestRouter()
	register(t, router, "alice")

	rec := send(t, router, http.MethodPost, "/participants", "", gin.H{"name": "alice"})
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestCreateParticipant_MissingName(t *testing.T) {
	router, _ := newTestRouter()

	for _, body := range []gin.H{{}, {"name": ""}} {
		rec := send(t, router, http.MethodPost, "/participants", "", body)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		var violations []string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &violations))
		require.NotEmpty(t, violations)
	}
}

func TestListParticipants_Empty(t *testing.T) {
	router, _ := newTestRouter()

	rec := send(t, router, http.MethodGet, "/participants", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, "[]", rec.Body.String())
}

func TestListParticipants_StoreFailure(t *testing.T) {
	router, store := newTestRouter()
	store.Err = errors.New("connection reset")

	rec := send(t, router, http.MethodGet, "/participants", "", nil)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), "error")
}

func TestHealth(t *testing.T) {
	router, _ := newTestRouter()

	rec := send(t, router, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "OK", rec.Body.String())
}
