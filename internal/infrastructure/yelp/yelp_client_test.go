package yelp

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/effluxation/fend-neighborhood-map/internal/domain/model"
	"github.com/effluxation/fend-neighborhood-map/internal/domain/repository"
)

var tokyoNationalMuseum = model.BusinessQuery{
	Term:     "Tokyo National Museum",
	Location: model.LatLng{Lat: 35.718837, Lng: 139.776474},
}

func TestSearchBusiness_Found(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/businesses/search", r.URL.Path)
		assert.Equal(t, "term=Tokyo+National+Museum&latitude=35.718837&longitude=139.776474", r.URL.RawQuery)
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))
		assert.Empty(t, r.Header.Get("X-Requested-With"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"total": 2,
			"businesses": [
				{
					"name": "Tokyo National Museum",
					"image_url": "https://s3-media.example.com/tnm.jpg",
					"url": "https://www.yelp.com/biz/tnm",
					"rating": 4.5,
					"review_count": 312,
					"is_closed": false,
					"display_phone": "+81 50-5541-8600",
					"location": {"display_address": ["13-9 Uenokoen", "Taito-ku, Tokyo 110-8712", "Japan"]}
				},
				{"name": "Second Result"}
			]
		}`))
	}))
	defer server.Close()

	c := NewClient("secret-token", WithBaseURL(server.URL))
	business, err := c.SearchBusiness(context.Background(), tokyoNationalMuseum)
	require.NoError(t, err)
	require.NotNil(t, business)

	assert.Equal(t, "Tokyo National Museum", business.Name)
	assert.Equal(t, 4.5, business.Rating)
	assert.Equal(t, 312, business.ReviewCount)
	assert.Equal(t, []string{"13-9 Uenokoen", "Taito-ku, Tokyo 110-8712", "Japan"}, business.DisplayAddress)
	assert.False(t, business.IsClosed)
	assert.Equal(t, "+81 50-5541-8600", business.DisplayPhone)
}

func TestSearchBusiness_NoMatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"total": 0, "businesses": []}`))
	}))
	defer server.Close()

	c := NewClient("token", WithBaseURL(server.URL))
	business, err := c.SearchBusiness(context.Background(), tokyoNationalMuseum)
	assert.Nil(t, business)
	assert.ErrorIs(t, err, repository.ErrNoMatch)
}

func TestSearchBusiness_UpstreamRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	c := NewClient("bad-token", WithBaseURL(server.URL))
	_, err := c.SearchBusiness(context.Background(), tokyoNationalMuseum)

	var lookupErr *repository.LookupError
	require.True(t, errors.As(err, &lookupErr))
	assert.Equal(t, repository.UpstreamRejection, lookupErr.Kind)
	assert.Equal(t, http.StatusUnauthorized, lookupErr.StatusCode)
}

func TestSearchBusiness_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	c := NewClient("token", WithBaseURL(baseURL))
	_, err := c.SearchBusiness(context.Background(), tokyoNationalMuseum)

	var lookupErr *repository.LookupError
	require.True(t, errors.As(err, &lookupErr))
	assert.Equal(t, repository.NetworkError, lookupErr.Kind)
}

func TestSearchBusiness_DecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>relay error</html>`))
	}))
	defer server.Close()

	c := NewClient("token", WithBaseURL(server.URL))
	_, err := c.SearchBusiness(context.Background(), tokyoNationalMuseum)

	var lookupErr *repository.LookupError
	require.True(t, errors.As(err, &lookupErr))
	assert.Equal(t, repository.DecodeError, lookupErr.Kind)
}

func TestSearchBusiness_ViaRelay(t *testing.T) {
	var gotPath, gotHeader string
	relay := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotHeader = r.Header.Get("X-Requested-With")
		w.Write([]byte(`{"businesses": [{"name": "Edo-Tokyo Museum"}]}`))
	}))
	defer relay.Close()

	c := NewClient("token", WithRelay(relay.URL+"/"), WithBaseURL("http://api.yelp.test/v3"))
	business, err := c.SearchBusiness(context.Background(), model.BusinessQuery{Term: "Edo Museum"})
	require.NoError(t, err)

	assert.Equal(t, "Edo-Tokyo Museum", business.Name)
	assert.Equal(t, "/http://api.yelp.test/v3/businesses/search", gotPath)
	assert.Equal(t, "XMLHttpRequest", gotHeader)
}

func TestBuildURL_EscapesWords(t *testing.T) {
	c := NewClient("token", WithBaseURL("https://api.yelp.test/v3/"))
	got := c.buildURL(model.BusinessQuery{
		Term:     "Nezu  Museum & Garden",
		Location: model.LatLng{Lat: 35.66213, Lng: 139.716863},
	})
	assert.Equal(t, "https://api.yelp.test/v3/businesses/search?term=Nezu+Museum+%26+Garden&latitude=35.66213&longitude=139.716863", got)
}
