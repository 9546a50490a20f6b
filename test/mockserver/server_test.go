package mockserver

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	srv := New()
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, []string{"GET /health"}, srv.Requests())
}

func TestFailUploads(t *testing.T) {
	srv := New()
	defer srv.Close()

	srv.SetFailUploads(true)
	resp, err := http.Post(srv.URL+"/audio/user/u/phrase/p", "application/x-www-form-urlencoded", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	srv.SetFailUploads(false)
	resp, err = http.Post(srv.URL+"/audio/user/u/phrase/p", "application/x-www-form-urlencoded", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	assert.Len(t, srv.Requests(), 2)
}
