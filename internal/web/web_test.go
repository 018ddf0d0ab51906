package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olivier-w/folio/internal/nav"
	"github.com/olivier-w/folio/internal/scroll"
	"github.com/olivier-w/folio/internal/site"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T, s *site.Site) *gin.Engine {
	t.Helper()
	r, err := NewRouter(s, Options{AssetBase: "/static/"})
	require.NoError(t, err)
	return r
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func sample(t *testing.T) *site.Site {
	t.Helper()
	s, err := site.Sample()
	require.NoError(t, err)
	return s
}

func TestIndexRendersSectionsInNavOrder(t *testing.T) {
	s := sample(t)
	w := get(newTestRouter(t, s), "/")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()

	last := -1
	for _, id := range s.SectionIDs() {
		idx := strings.Index(body, `<section id="`+id+`"`)
		require.GreaterOrEqual(t, idx, 0, "section %s missing", id)
		assert.Greater(t, idx, last, "section %s out of order", id)
		last = idx
	}
	assert.Equal(t, 2, strings.Count(body, scroll.NoSnapMarker))
	assert.Equal(t, 2, strings.Count(body, `class="marquee-track"`))
	assert.Contains(t, body, `href="#projects"`)
	assert.Contains(t, body, `src="/static/images/portrait.jpg"`)
}

func TestIndexOmitsAbsentOptionalSections(t *testing.T) {
	s := sample(t)
	s.Experience = nil
	s.Licenses = nil
	body := get(newTestRouter(t, s), "/").Body.String()

	assert.NotContains(t, body, `<section id="experience"`)
	assert.NotContains(t, body, `<section id="licenses"`)
	assert.NotContains(t, body, `data-section="licenses"`)
	assert.Equal(t, 1, strings.Count(body, scroll.NoSnapMarker))
}

func TestItemIDsDoNotShadowSectionAnchors(t *testing.T) {
	s := sample(t)
	s.Highlights = &site.Highlights{
		Title: "Highlights",
		Items: []site.Highlight{{ID: "projects", Title: "Shipped"}},
	}
	body := get(newTestRouter(t, s), "/").Body.String()

	assert.Equal(t, 1, strings.Count(body, `id="projects"`))
	assert.Contains(t, body, `<article id="highlight-projects"`)
	for _, p := range s.Projects.Items {
		assert.Contains(t, body, `<article id="project-`+p.ID+`"`)
	}
}

func TestSiteAPI(t *testing.T) {
	s := sample(t)
	w := get(newTestRouter(t, s), "/api/site")
	require.Equal(t, http.StatusOK, w.Code)

	var got site.Site
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, s.Hero.Title, got.Hero.Title)
	assert.Len(t, got.Projects.Items, len(s.Projects.Items))
}

func TestNavAPI(t *testing.T) {
	s := sample(t)
	w := get(newTestRouter(t, s), "/api/nav")
	require.Equal(t, http.StatusOK, w.Code)

	var got []nav.Item
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, nav.FromSite(s).Items(), got)
}

func TestHealthz(t *testing.T) {
	w := get(newTestRouter(t, sample(t)), "/healthz")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
