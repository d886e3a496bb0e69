// SPDX-License-Identifier: MIT
package handlers

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/thatcatcamp/surfaces/internal/build"
	"github.com/thatcatcamp/surfaces/internal/config"
	"github.com/thatcatcamp/surfaces/internal/middleware"
)

// SettingsFunc returns the current settings for one request
type SettingsFunc func() (*config.Settings, error)

// StylesHandler serves the generated stylesheet and its inputs
type StylesHandler struct {
	fs       afero.Fs
	settings SettingsFunc
}

// NewStylesHandler creates a handler reading palettes from fs
func NewStylesHandler(fs afero.Fs, settings SettingsFunc) *StylesHandler {
	return &StylesHandler{fs: fs, settings: settings}
}

// NewRouter wires the preview routes onto a fresh engine
func NewRouter(h *StylesHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.SecurityHeadersMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "surfaces",
		})
	})
	r.GET("/surfaces.css", h.ServeCSS)
	r.GET("/palette.json", h.ServePalette)
	r.GET("/classes.json", h.ServeClasses)

	return r
}

// ServeCSS renders the stylesheet. ?vars=true prepends :root variables.
func (h *StylesHandler) ServeCSS(c *gin.Context) {
	res, s, ok := h.evaluate(c)
	if !ok {
		return
	}

	vars := s.Output.Variables
	if q, ok := c.GetQuery("vars"); ok {
		vars, _ = strconv.ParseBool(q)
	}

	var buf bytes.Buffer
	if err := res.Write(&buf, "css", vars); err != nil {
		c.String(http.StatusInternalServerError, "failed to render stylesheet")
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "text/css; charset=utf-8", buf.Bytes())
}

// ServePalette returns the augmented flat palette in insertion order
func (h *StylesHandler) ServePalette(c *gin.Context) {
	res, _, ok := h.evaluate(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, res.Derivation.Palette)
}

// ServeClasses returns the class rule records
func (h *StylesHandler) ServeClasses(c *gin.Context) {
	res, _, ok := h.evaluate(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, res.Classes)
}

// evaluate runs a fresh evaluation; ?preset= and ?dark= override the palette
func (h *StylesHandler) evaluate(c *gin.Context) (*build.Result, *config.Settings, bool) {
	s, err := h.settings()
	if err != nil {
		logrus.WithError(err).Error("failed to load settings")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return nil, nil, false
	}

	if preset := c.Query("preset"); preset != "" {
		copied := *s
		copied.Palette.File = ""
		copied.Palette.Preset = preset
		s = &copied
	}
	if dark, ok := c.GetQuery("dark"); ok {
		copied := *s
		copied.Palette.Dark, _ = strconv.ParseBool(dark)
		s = &copied
	}

	res, err := build.Run(h.fs, s)
	if err != nil {
		logrus.WithError(err).Warn("failed to evaluate palette")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return nil, nil, false
	}
	return res, s, true
}
