package ingestion

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobDescriptionFromURL(t *testing.T) {
	t.Run("extracts and cleans posting content", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html><body>
				<nav>Log in | Sign up</nav>
				<div class="job-description">
					<h1>Senior   Go Engineer</h1>
					<p>Kubernetes experience required.</p>
				</div>
				<footer>About us</footer>
			</body></html>`))
		}))
		defer srv.Close()

		text, err := JobDescriptionFromURL(context.Background(), srv.URL, false)
		require.NoError(t, err)
		assert.Contains(t, text, "Senior Go Engineer")
		assert.Contains(t, text, "Kubernetes experience required.")
		assert.NotContains(t, text, "Log in")
		assert.NotContains(t, text, "About us")
	})

	t.Run("fetch failure wraps error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer srv.Close()

		_, err := JobDescriptionFromURL(context.Background(), srv.URL, false)
		require.Error(t, err)

		var ingErr *Error
		require.ErrorAs(t, err, &ingErr)
		assert.Equal(t, srv.URL, ingErr.Path)
	})
}
