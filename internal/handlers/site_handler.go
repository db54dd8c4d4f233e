package handlers

import (
	"net/http"

	"github.com/changil/changilweb-server/internal/models"
	"github.com/changil/changilweb-server/internal/session"
	"github.com/changil/changilweb-server/internal/siteroute"
	"github.com/gin-gonic/gin"
)

// SiteHandler exposes client routing and static site settings
type SiteHandler struct {
	resolver *siteroute.Resolver
	cookies  *session.CookieStore
	config   models.SiteConfig
}

// NewSiteHandler creates a new SiteHandler
func NewSiteHandler(resolver *siteroute.Resolver, cookies *session.CookieStore, config models.SiteConfig) *SiteHandler {
	return &SiteHandler{resolver: resolver, cookies: cookies, config: config}
}

// Resolve handles GET /site/resolve?path=. Protected pages are checked
// against the visitor's cookie session.
func (h *SiteHandler) Resolve(c *gin.Context) {
	path := c.DefaultQuery("path", "/")

	store, err := h.cookies.Open(c.Request)
	if err != nil {
		respondError(c, err)
		return
	}
	_, hadLogin := store.Get(session.KeyAdminLoggedIn)

	res := h.resolver.Resolve(path, store)
	if res.Redirect != "" && hadLogin {
		_ = store.Save(c.Request, c.Writer)
	}

	c.JSON(http.StatusOK, models.PageResolution{
		Path:     res.Path,
		Page:     string(res.Page),
		Params:   res.Params,
		Redirect: res.Redirect,
	})
}

// Config handles GET /site/config
func (h *SiteHandler) Config(c *gin.Context) {
	c.JSON(http.StatusOK, h.config)
}
