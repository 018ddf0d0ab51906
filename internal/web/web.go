// Package web serves the portfolio as a single HTML page plus a small JSON API.
package web

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/olivier-w/folio/internal/nav"
	"github.com/olivier-w/folio/internal/site"
)

//go:embed templates/*.html
var templateFS embed.FS

// Options configures the router.
type Options struct {
	// AssetBase prefixes relative image paths.
	AssetBase string
	// StaticDir is served under /static when set.
	StaticDir     string
	ReducedMotion bool
}

type sectionView struct {
	ID    string
	Label string
}

// NewRouter builds the gin engine serving s.
func NewRouter(s *site.Site, opts Options) (*gin.Engine, error) {
	tmpl, err := template.New("").Funcs(funcs(opts.AssetBase)).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	items := nav.FromSite(s)

	r := gin.Default()
	r.SetHTMLTemplate(tmpl)
	if opts.StaticDir != "" {
		r.Static("/static", opts.StaticDir)
	}

	r.GET("/", func(c *gin.Context) {
		sections := make([]sectionView, 0, items.Len())
		for _, it := range items.Items() {
			sections = append(sections, sectionView{ID: it.ID, Label: it.Label})
		}
		c.HTML(http.StatusOK, "index.html", gin.H{
			"site":          s,
			"sections":      sections,
			"reducedMotion": opts.ReducedMotion,
		})
	})

	api := r.Group("/api")
	api.GET("/site", func(c *gin.Context) {
		c.JSON(http.StatusOK, s)
	})
	api.GET("/nav", func(c *gin.Context) {
		c.JSON(http.StatusOK, items.Items())
	})

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r, nil
}

func funcs(assetBase string) template.FuncMap {
	return template.FuncMap{
		"external": site.NormalizeExternalURL,
		"asset": func(v string) string {
			return site.ResolveAssetURL(assetBase, v)
		},
		// passes renders the marquee track twice so it can loop seamlessly.
		"passes": func() []int { return []int{0, 1} },
		// href resolves a CTA target to an in-page anchor or an external URL.
		"href": func(target string) string {
			if id, ok := site.SectionTarget(target); ok {
				return "#" + id
			}
			return site.NormalizeExternalURL(target)
		},
	}
}
