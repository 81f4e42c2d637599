package face

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientRegisterSendsMultipartForm(t *testing.T) {
	var gotName, gotThreshold string
	var gotImage []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/register", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		gotName = r.FormValue("name")
		gotThreshold = r.FormValue("threshold")

		file, _, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		gotImage, err = io.ReadAll(file)
		require.NoError(t, err)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"registered"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 0)
	err := c.Register(context.Background(), "Ada", []byte("jpeg-bytes"))
	require.NoError(t, err)

	assert.Equal(t, "Ada", gotName)
	assert.Equal(t, "0.6", gotThreshold, "default threshold")
	assert.Equal(t, []byte("jpeg-bytes"), gotImage)
}

func TestClientVerifyParsesMatch(t *testing.T) {
	tests := []struct {
		name string
		body string
		want bool
	}{
		{"match", `{"match":true,"name":"Ada"}`, true},
		{"no match", `{"match":false}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, "/verify", r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewClient(srv.URL, 0.6)
			match, err := c.Verify(context.Background(), []byte("jpeg-bytes"))
			require.NoError(t, err)
			assert.Equal(t, tt.want, match)
		})
	}
}

func TestClientTreatsNon2xxAsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 0.6)

	err := c.Register(context.Background(), "Ada", []byte("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 503")

	_, err = c.Verify(context.Background(), []byte("x"))
	require.Error(t, err)
}

func TestClientCustomThreshold(t *testing.T) {
	var gotThreshold string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotThreshold = r.FormValue("threshold")
		w.Write([]byte(`{"match":true}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 0.85)
	_, err := c.Verify(context.Background(), []byte("x"))
	require.NoError(t, err)
	assert.Equal(t, "0.85", gotThreshold)
}
