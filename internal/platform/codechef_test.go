package platform

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const codechefProfileHTML = `
<html><body>
<div class="rating-header">
  <div class="rating-number">1672</div>
</div>
<section class="rating-data-section problems-solved">
  <h3>Total Problems Solved: 241</h3>
</section>
</body></html>`

func TestCodeChefFetchExtractsFromMarkup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, codechefProfileHTML)
	}))
	defer srv.Close()

	cc := NewCodeChef(testClient())
	cc.baseURL = srv.URL + "/users/"

	got, err := cc.Fetch(context.Background(), "chef42")
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.True(t, got.Supported)
	assert.Empty(t, got.Error)
	require.NotNil(t, got.Rating)
	assert.Equal(t, 1672, *got.Rating)
	assert.Equal(t, 241, got.TotalSolved)
}

func TestCodeChefAbsentMarkupYieldsZeros(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body>nothing familiar here</body></html>`)
	}))
	defer srv.Close()

	cc := NewCodeChef(testClient())
	cc.baseURL = srv.URL + "/users/"

	got, err := cc.Fetch(context.Background(), "chef42")
	require.NoError(t, err)
	require.NotNil(t, got)

	// Markup méconnaissable: zéros, pas d'échec
	assert.True(t, got.Supported)
	assert.Nil(t, got.Rating)
	assert.Equal(t, 0, got.TotalSolved)
}

func TestCodeChefTransportFailureMarker(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	cc := NewCodeChef(testClient())
	cc.baseURL = srv.URL + "/users/"

	got, err := cc.Fetch(context.Background(), "chef42")
	require.NoError(t, err)
	require.NotNil(t, got)

	// Échec transport: marqueur explicite, distinct de "rien trouvé"
	assert.False(t, got.Supported)
	assert.NotEmpty(t, got.Error)
}

func TestCodeChefEmptyHandle(t *testing.T) {
	cc := NewCodeChef(testClient())
	got, err := cc.Fetch(context.Background(), "")
	assert.NoError(t, err)
	assert.Nil(t, got)
}
