package iugu

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"iugu_gateway/internal/domain/entities"

	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := NewClient("secret", WithBaseURL(srv.URL+"/v1"), WithHTTPClient(srv.Client()))
	require.NoError(t, err)
	return c
}

func TestNewClient_MissingToken(t *testing.T) {
	_, err := NewClient("  ")
	require.ErrorIs(t, err, ErrMissingAPIToken)
}

func TestNewClient_Defaults(t *testing.T) {
	c, err := NewClient("secret")
	require.NoError(t, err)
	require.Equal(t, DefaultBaseURL, c.baseURL)
	require.Equal(t, DefaultTimeout, c.httpClient.Timeout)
}

func TestNewClient_CallerClientUntouched(t *testing.T) {
	hc := &http.Client{}
	c, err := NewClient("secret", WithHTTPClient(hc))
	require.NoError(t, err)
	require.Equal(t, time.Duration(0), hc.Timeout)
	require.Equal(t, DefaultTimeout, c.httpClient.Timeout)
	require.NotSame(t, hc, c.httpClient)
}

func TestClient_Request(t *testing.T) {
	t.Run("post sends auth and form body", func(t *testing.T) {
		var gotAuth, gotType, gotBody, gotPath string
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			gotType = r.Header.Get("Content-Type")
			gotPath = r.URL.Path
			b, _ := io.ReadAll(r.Body)
			gotBody = string(b)
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"id":"inv_1"}`))
		})

		resp, err := c.Request(context.Background(), "invoices", http.MethodPost, Params{"email": "a@b.c"}, nil)
		require.NoError(t, err)
		require.True(t, resp.OK())
		require.Equal(t, `{"id":"inv_1"}`, string(resp.Body))
		require.Equal(t, "/v1/invoices", gotPath)
		require.Equal(t, "Basic "+base64.StdEncoding.EncodeToString([]byte("secret:x")), gotAuth)
		require.Equal(t, "application/x-www-form-urlencoded;charset=UTF-8", gotType)
		require.Equal(t, "email=a%40b.c", gotBody)
	})

	t.Run("get sends body as query", func(t *testing.T) {
		var gotQuery string
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.RawQuery
			w.WriteHeader(http.StatusOK)
		})

		_, err := c.Request(context.Background(), "customers", http.MethodGet, Params{"limit": 1}, nil)
		require.NoError(t, err)
		require.Equal(t, "limit=1", gotQuery)
	})

	t.Run("custom headers override defaults", func(t *testing.T) {
		var gotAccept string
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotAccept = r.Header.Get("Accept")
		})

		_, err := c.Request(context.Background(), "invoices", http.MethodGet, nil, map[string]string{"Accept": "text/plain"})
		require.NoError(t, err)
		require.Equal(t, "text/plain", gotAccept)
	})

	t.Run("non-2xx is not a transport error", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"errors":"bad"}`))
		})

		resp, err := c.Request(context.Background(), "invoices", http.MethodPost, nil, nil)
		require.NoError(t, err)
		require.False(t, resp.OK())
		require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})

	t.Run("timeout is a transport error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		t.Cleanup(srv.Close)

		hc := srv.Client()
		hc.Timeout = 20 * time.Millisecond
		c, err := NewClient("secret", WithBaseURL(srv.URL), WithHTTPClient(hc))
		require.NoError(t, err)

		_, err = c.Request(context.Background(), "invoices", http.MethodGet, nil, nil)
		var te *entities.TransportError
		require.True(t, errors.As(err, &te))
		require.Equal(t, "invoices", te.Endpoint)
	})
}
