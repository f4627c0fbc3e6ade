package handlers

import (
	"net/http"

	"akshara/services/content"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContentHandler serves the site's informational content.
type ContentHandler struct {
	Service content.ContentService
	Logger  *zap.Logger
}

// NewContentHandler builds a ContentHandler.
func NewContentHandler(svc content.ContentService, logger *zap.Logger) *ContentHandler {
	return &ContentHandler{Service: svc, Logger: logger}
}

func (h *ContentHandler) GetFounders(c *gin.Context) {
	founders, err := h.Service.Founders()
	if err != nil {
		h.Logger.Error("failed to load founders", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load founders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"founders": founders})
}

func (h *ContentHandler) GetPrograms(c *gin.Context) {
	programs, err := h.Service.Programs()
	if err != nil {
		h.Logger.Error("failed to load programs", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load programs"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"programs": programs})
}

func (h *ContentHandler) GetEvents(c *gin.Context) {
	events, err := h.Service.Events()
	if err != nil {
		h.Logger.Error("failed to load events", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load events"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

func (h *ContentHandler) GetBlogPosts(c *gin.Context) {
	posts, err := h.Service.BlogPosts()
	if err != nil {
		h.Logger.Error("failed to load blog posts", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load blog posts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

func (h *ContentHandler) GetTestimonials(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"testimonials": h.Service.Testimonials()})
}

func (h *ContentHandler) GetGallery(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"images": h.Service.Gallery()})
}

func (h *ContentHandler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"stats": h.Service.Stats()})
}

func (h *ContentHandler) GetDetails(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"details": h.Service.Details()})
}

func (h *ContentHandler) GetLegalDoc(c *gin.Context) {
	doc, err := h.Service.LegalDoc(c.Param("doc"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown legal document"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"document": c.Param("doc"), "content": doc})
}
