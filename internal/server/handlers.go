package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tubegrab/tubegrab/downloader"
	"github.com/tubegrab/tubegrab/internal/metrics"
	"github.com/tubegrab/tubegrab/video"
)

func Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type videoHandler struct {
	service downloader.Runner
}

type videoResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

type downloadResponse struct {
	Quality int           `json:"quality"`
	Variant video.Variant `json:"variant"`
}

// Lookup handles GET /v1/video?url=.
func (h *videoHandler) Lookup(c *gin.Context) {
	found, err := h.service.Lookup(c.Request.Context(), c.Query("url"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	meta := found.Metadata
	c.JSON(http.StatusOK, videoResponse{
		ID:        found.ID.String(),
		Title:     meta.DisplayTitle(),
		Author:    meta.DisplayAuthor(),
		Thumbnail: meta.Thumbnail.OrEmpty(),
	})
}

// Resolve handles GET /v1/download?url=&quality=.
func (h *videoHandler) Resolve(c *gin.Context) {
	quality := video.DefaultQuality
	if raw := c.Query("quality"); raw != "" {
		q, err := video.ParseQuality(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error(), "kind": "invalid_quality"})
			return
		}
		quality = q
	}

	variant, err := h.service.Resolve(c.Request.Context(), c.Query("url"), quality)
	metrics.ObserveSelection(quality, err)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, downloadResponse{Quality: int(quality), Variant: variant})
}

func abortWithError(c *gin.Context, err error) {
	kind := video.Kind(err)
	c.AbortWithStatusJSON(statusOf(kind), gin.H{
		"error": err.Error(),
		"kind":  kind.String(),
	})
}

func statusOf(kind video.ErrorKind) int {
	switch kind {
	case video.KindInvalidInput, video.KindUnrecognizedURL:
		return http.StatusBadRequest
	case video.KindNoEligibleVariant, video.KindNoDownloadURL:
		return http.StatusNotFound
	case video.KindUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
