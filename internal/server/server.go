// Package server exposes the logo engine over HTTP. It is a thin delivery
// layer: request parameters map one-to-one onto logo.Options, responses are
// the engine's result objects serialized as JSON, and no engine behavior
// lives here.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/go-hclog"

	"github.com/katalvlaran/geomark/construct"
	"github.com/katalvlaran/geomark/logo"
)

// Handler bundles the route handlers with their logger.
type Handler struct {
	log hclog.Logger
}

// NewRouter builds the gin engine with all routes registered.
func NewRouter(log hclog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	h := &Handler{log: log}

	r.GET("/healthz", h.Health)

	api := r.Group("/api/v1")
	{
		api.GET("/logos", h.GenerateSet)
		api.GET("/logos/:method", h.GenerateSingle)
	}

	return r
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// optionsFromQuery maps the shared query parameters onto engine options.
func optionsFromQuery(c *gin.Context) logo.Options {
	return logo.Options{
		Aesthetic: c.Query("aesthetic"),
		Industry:  c.Query("industry"),
		Seed:      c.Query("seed"),
	}
}

// GenerateSet returns the full five-variant result set.
// GET /api/v1/logos?name=Acme&industry=fintech&aesthetic=tech&seed=acme-1
func (h *Handler) GenerateSet(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter 'name' is required"})

		return
	}

	results := logo.Generate(name, optionsFromQuery(c))
	h.log.Debug("generated logo set", "name", name, "variants", len(results))

	c.JSON(http.StatusOK, gin.H{"name": name, "results": results})
}

// GenerateSingle regenerates one variant by method identifier.
// GET /api/v1/logos/radial-construct?name=Acme&seed=acme-2
func (h *Handler) GenerateSingle(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter 'name' is required"})

		return
	}

	method, err := construct.ParseMethod(c.Param("method"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	result, err := logo.GenerateOne(name, method, optionsFromQuery(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}
	h.log.Debug("regenerated logo", "name", name, "method", method.String())

	c.JSON(http.StatusOK, result)
}
