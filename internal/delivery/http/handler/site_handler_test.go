package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tourism-registry/internal/config"
	httpDelivery "github.com/tourism-registry/internal/delivery/http"
	"github.com/tourism-registry/internal/delivery/http/handler"
	"github.com/tourism-registry/internal/domain"
	"github.com/tourism-registry/internal/mapview"
	"github.com/tourism-registry/internal/usecase"
)

// fakeSiteRepo is an in-memory SiteRepository: new records go to the front,
// matching the newest-first list order of the real store.
type fakeSiteRepo struct {
	sites []domain.TouristSite
}

func (f *fakeSiteRepo) Create(_ context.Context, site *domain.TouristSite) error {
	f.sites = append([]domain.TouristSite{*site}, f.sites...)
	return nil
}

func (f *fakeSiteRepo) GetByID(_ context.Context, id string) (*domain.TouristSite, error) {
	for i := range f.sites {
		if f.sites[i].ID == id {
			s := f.sites[i]
			return &s, nil
		}
	}
	return nil, nil
}

func (f *fakeSiteRepo) List(_ context.Context, filter domain.DistrictFilter) ([]domain.TouristSite, error) {
	return domain.FilterSites(f.sites, filter), nil
}

func (f *fakeSiteRepo) Delete(_ context.Context, id string) (bool, error) {
	for i := range f.sites {
		if f.sites[i].ID == id {
			f.sites = append(f.sites[:i], f.sites[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// noopCache always misses so every request recomputes.
type noopCache struct{}

func (noopCache) Get(context.Context, string) ([]byte, error)               { return nil, nil }
func (noopCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (noopCache) Delete(context.Context, string) error                     { return nil }
func (noopCache) SetStats(context.Context, *domain.DashboardStats, time.Duration) error {
	return nil
}
func (noopCache) InvalidateDashboard(context.Context) error { return nil }
func (noopCache) GetStats(context.Context, domain.DistrictFilter) (*domain.DashboardStats, error) {
	return nil, nil
}

func newTestServer(t *testing.T) *httpDelivery.Server {
	t.Helper()

	logger := zap.NewNop()
	cfg := &config.Config{}
	repo := &fakeSiteRepo{}
	cache := noopCache{}

	layer := mapview.TileLayer{
		URLTemplate: "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png",
		Attribution: "&copy; OpenStreetMap contributors",
		MaxZoom:     19,
	}

	siteUC := usecase.NewSiteUseCase(repo, cache, nil, logger)
	statsUC := usecase.NewStatsUseCase(repo, cache, logger, time.Minute)
	mapUC := usecase.NewMapUseCase(repo, cache, layer, logger, time.Minute)

	return httpDelivery.NewServer(
		cfg,
		logger,
		handler.NewSiteHandler(siteUC, logger),
		handler.NewStatsHandler(statsUC, logger),
		handler.NewMapHandler(mapUC, logger),
	)
}

func doJSON(t *testing.T, srv *httpDelivery.Server, method, path string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := srv.App().Test(req, -1)
	require.NoError(t, err)

	var decoded map[string]interface{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}

	return resp, decoded
}

func TestRegistryEndToEnd(t *testing.T) {
	srv := newTestServer(t)

	// Submit a record.
	resp, body := doJSON(t, srv, "POST", "/api/v1/sites", map[string]interface{}{
		"name":     "Bledug Kuwu",
		"village":  "Kuwu",
		"district": "Kradenan",
		"type":     "nature",
		"capacity": "500",
		"risks":    []string{},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	created := body["data"].(map[string]interface{})
	siteID := created["id"].(string)
	assert.NotEmpty(t, siteID)
	assert.Equal(t, "Aman", created["risk_label"])
	assert.Equal(t, float64(500), created["capacity"])

	// Dashboard stats with filter "all".
	resp, body = doJSON(t, srv, "GET", "/api/v1/dashboard/stats", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	stats := body["data"].(map[string]interface{})
	assert.Equal(t, float64(1), stats["total_count"])
	assert.Equal(t, float64(500), stats["total_capacity"])

	byType := stats["counts_by_type"].([]interface{})
	require.Len(t, byType, 3)
	nature := byType[0].(map[string]interface{})
	assert.Equal(t, "nature", nature["type"])
	assert.Equal(t, float64(1), nature["count"])

	byDistrict := stats["counts_by_district"].([]interface{})
	assert.Len(t, byDistrict, 19)

	// One green marker at Kradenan's centroid.
	resp, body = doJSON(t, srv, "GET", "/api/v1/dashboard/markers", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	state := body["data"].(map[string]interface{})
	markers := state["markers"].([]interface{})
	require.Len(t, markers, 1)

	marker := markers[0].(map[string]interface{})
	assert.Equal(t, "green", marker["color"])
	assert.Equal(t, true, marker["fallback"])
	point := marker["point"].(map[string]interface{})
	assert.InDelta(t, -7.1667, point["lat"].(float64), 0.0001)
	assert.InDelta(t, 111.1000, point["lon"].(float64), 0.0001)

	// Deleting the only record returns everything to the zero state.
	resp, _ = doJSON(t, srv, "DELETE", "/api/v1/sites/"+siteID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = doJSON(t, srv, "GET", "/api/v1/dashboard/stats", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	stats = body["data"].(map[string]interface{})
	assert.Equal(t, float64(0), stats["total_count"])
	assert.Equal(t, float64(0), stats["total_capacity"])

	resp, body = doJSON(t, srv, "GET", "/api/v1/dashboard/markers", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	state = body["data"].(map[string]interface{})
	assert.Empty(t, state["markers"])
	viewport := state["viewport"].(map[string]interface{})
	assert.Equal(t, false, viewport["fitted"])
}

func TestCreateSite_Validation(t *testing.T) {
	srv := newTestServer(t)

	t.Run("missing name and village blocks submission", func(t *testing.T) {
		resp, body := doJSON(t, srv, "POST", "/api/v1/sites", map[string]interface{}{
			"type": "nature",
		})

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		errBody := body["error"].(map[string]interface{})
		assert.Equal(t, "VALIDATION_ERROR", errBody["code"])

		// Nothing was created.
		_, listBody := doJSON(t, srv, "GET", "/api/v1/sites", nil)
		assert.Empty(t, listBody["data"])
	})

	t.Run("unknown type is rejected", func(t *testing.T) {
		resp, body := doJSON(t, srv, "POST", "/api/v1/sites", map[string]interface{}{
			"name":    "Pasar Kuliner",
			"village": "Kuwu",
			"type":    "culinary",
		})

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		errBody := body["error"].(map[string]interface{})
		assert.Equal(t, "INVALID_SITE_TYPE", errBody["code"])
	})
}

func TestDeleteSite_NotFound(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, srv, "DELETE", "/api/v1/sites/no-such-id", nil)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	errBody := body["error"].(map[string]interface{})
	assert.Equal(t, "SITE_NOT_FOUND", errBody["code"])
}

func TestListSites_DistrictFilter(t *testing.T) {
	srv := newTestServer(t)

	for _, site := range []map[string]interface{}{
		{"name": "Bledug Kuwu", "village": "Kuwu", "district": "Kradenan", "type": "nature"},
		{"name": "Waduk Kedungombo", "village": "Rambat", "district": "Geyer", "type": "water"},
	} {
		resp, _ := doJSON(t, srv, "POST", "/api/v1/sites", site)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	t.Run("filters to one district", func(t *testing.T) {
		_, body := doJSON(t, srv, "GET", "/api/v1/sites?district=Geyer", nil)
		sites := body["data"].([]interface{})
		require.Len(t, sites, 1)
		assert.Equal(t, "Waduk Kedungombo", sites[0].(map[string]interface{})["name"])
	})

	t.Run("newest first", func(t *testing.T) {
		_, body := doJSON(t, srv, "GET", "/api/v1/sites", nil)
		sites := body["data"].([]interface{})
		require.Len(t, sites, 2)
		assert.Equal(t, "Waduk Kedungombo", sites[0].(map[string]interface{})["name"])
	})

	t.Run("unknown district filter is a 400", func(t *testing.T) {
		resp, _ := doJSON(t, srv, "GET", "/api/v1/sites?district=Atlantis", nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestDistrictsAndMapConfig(t *testing.T) {
	srv := newTestServer(t)

	_, body := doJSON(t, srv, "GET", "/api/v1/districts", nil)
	districts := body["data"].([]interface{})
	assert.Len(t, districts, 19)
	first := districts[0].(map[string]interface{})
	assert.Equal(t, "Kedungjati", first["name"])

	_, body = doJSON(t, srv, "GET", "/api/v1/map/config", nil)
	layer := body["data"].(map[string]interface{})
	assert.Contains(t, layer["url_template"], "{z}/{x}/{y}")
	assert.NotEmpty(t, layer["attribution"])
}
