package handler_test

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unclebandit/crm-viewer/internal/db/dbtest"
	"github.com/unclebandit/crm-viewer/internal/handler"
)

const indexHTML = `<!doctype html><div id="root"></div>`

func writeSite(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "assets"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte(indexHTML), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "assets", "app.js"), []byte("console.log('crm')"), 0o644))
	return dir
}

func TestDetectStaticSite(t *testing.T) {
	dir := writeSite(t)
	site := handler.DetectStaticSite(dir)
	require.NotNil(t, site)
	assert.Equal(t, dir, site.Dir)

	assert.Nil(t, handler.DetectStaticSite(t.TempDir()))
	assert.Nil(t, handler.DetectStaticSite(filepath.Join(t.TempDir(), "missing")))
	assert.Nil(t, handler.DetectStaticSite(""))
}

func TestStaticSiteServesAssetsAndFallback(t *testing.T) {
	site := handler.DetectStaticSite(writeSite(t))
	require.NotNil(t, site)
	h := newAPI(t, dbtest.NewSQLite(t, ""), site)

	w := do(h, http.MethodGet, "/assets/app.js")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "console.log('crm')", w.Body.String())

	for _, path := range []string{"/", "/index.html", "/customers/1", "/api/unknown"} {
		w := do(h, http.MethodGet, path)
		require.Equal(t, http.StatusOK, w.Code, path)
		assert.Equal(t, indexHTML, w.Body.String(), path)
	}

	// API routes still win over the fallback.
	w = do(h, http.MethodGet, "/api/health")
	assert.JSONEq(t, `{"status":"healthy","app":"crm-app"}`, w.Body.String())
}

func TestStaticSiteMissingAsset(t *testing.T) {
	site := handler.DetectStaticSite(writeSite(t))
	h := newAPI(t, dbtest.NewSQLite(t, ""), site)

	w := do(h, http.MethodGet, "/assets/missing.js")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStaticSiteIndexMissing(t *testing.T) {
	dir := writeSite(t)
	site := handler.DetectStaticSite(dir)
	require.NoError(t, os.Remove(filepath.Join(dir, "index.html")))

	w := do(newAPI(t, dbtest.NewSQLite(t, ""), site), http.MethodGet, "/customers")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
