package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/abhishek622/portfolioapp/catalog/internal/controller/catalog"
	"github.com/abhishek622/portfolioapp/catalog/internal/repository/memory"
	"github.com/abhishek622/portfolioapp/catalog/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	ctrl := catalog.New(memory.New(), nil, zap.NewNop())
	c := model.Catalog{
		Projects: []*model.Item{
			{ID: "dev-1", Category: model.CategoryDeveloper, Title: "PrismHold", Date: "2023-11-30"},
			{ID: "edit-1", Category: model.CategoryEditor, Title: "Club Reel", Date: "2024-12-15"},
		},
		Achievements: []*model.Item{
			{ID: "ach-dev-1", Category: model.CategoryDeveloper, Name: "DemoDay", Year: "2025"},
		},
	}
	require.NoError(t, ctrl.Load(context.Background(), c.Items()))
	mux := http.NewServeMux()
	New(ctrl, zap.NewNop()).Register(mux, "/api")
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, dst any) int {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	if dst != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(dst))
	}
	return resp.StatusCode
}

func TestListProjects(t *testing.T) {
	srv := newServer(t)

	var items []map[string]any
	require.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/api/projects", &items))
	require.Len(t, items, 2)
	assert.Equal(t, "edit-1", items[0]["id"])
	assert.Equal(t, "editor", items[0]["type"])
	assert.Equal(t, "project", items[0]["itemType"])

	require.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/api/projects?type=developer", &items))
	require.Len(t, items, 1)
	assert.Equal(t, "dev-1", items[0]["id"])

	var body map[string]string
	assert.Equal(t, http.StatusBadRequest, getJSON(t, srv.URL+"/api/projects?type=designer", &body))
	assert.Contains(t, body["error"], "unknown category")
}

func TestGetAchievement(t *testing.T) {
	srv := newServer(t)

	var item model.Item
	require.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/api/achievements/ach-dev-1", &item))
	assert.Equal(t, "DemoDay", item.DisplayName())

	var body map[string]string
	assert.Equal(t, http.StatusNotFound, getJSON(t, srv.URL+"/api/achievements/dev-1", &body))
	assert.Equal(t, "not found", body["error"])
}
