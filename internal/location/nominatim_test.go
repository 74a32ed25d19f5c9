package location

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNominatim_Resolve(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		assert.Equal(t, "jsonv2", r.URL.Query().Get("format"))
		w.Write([]byte(`{"display_name":"Mannerheimintie 1, Helsinki"}`))
	}))
	defer srv.Close()

	c := NewNominatimClient(srv.URL, "stint-test")
	addr, err := c.Resolve(context.Background(), 60.1699, 24.9384)
	require.NoError(t, err)
	assert.Equal(t, "Mannerheimintie 1, Helsinki", addr)
	assert.Equal(t, "stint-test", gotUA)
}

func TestNominatim_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":"Unable to geocode"}`))
	}))
	defer srv.Close()

	c := NewNominatimClient(srv.URL, "stint-test")
	_, err := c.Resolve(context.Background(), 0, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unable to geocode")
}

func TestNominatim_HTTPStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewNominatimClient(srv.URL, "stint-test")
	_, err := c.Resolve(context.Background(), 0, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}
