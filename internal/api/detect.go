package api

import (
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gpavan11/snap-chef/internal/provider"
	"github.com/gpavan11/snap-chef/internal/service"
	"github.com/gpavan11/snap-chef/internal/types"
)

// 10 MB upload cap, same as the frontend enforces.
const maxImageBytes = 10 << 20

// DetectHandler handles food detection requests.
type DetectHandler struct {
	coordinator *service.Coordinator
	cache       *service.ResultCache
	images      *service.ImageService
	history     *service.HistoryService
}

// NewDetectHandler creates a new DetectHandler instance.
func NewDetectHandler(coordinator *service.Coordinator, cache *service.ResultCache, images *service.ImageService, history *service.HistoryService) *DetectHandler {
	return &DetectHandler{
		coordinator: coordinator,
		cache:       cache,
		images:      images,
		history:     history,
	}
}

// Detect handles POST /api/v1/detect. Accepts a multipart "image" field and
// always responds 200 with a fully populated detection; provider failures
// only show up as source "mock".
func (h *DetectHandler) Detect(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	if fileHeader.Size > maxImageBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "image exceeds 10MB limit"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to open uploaded image"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil || len(data) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read uploaded image"})
		return
	}

	img := provider.Image{
		Data: data,
		Mime: fileHeader.Header.Get("Content-Type"),
		Name: fileHeader.Filename,
	}

	ctx := c.Request.Context()

	var resp types.DetectResponse
	cacheKey := service.ImageKey(data)
	if h.cache.Get(ctx, cacheKey, &resp) {
		c.JSON(http.StatusOK, resp)
		return
	}

	detection, source := h.coordinator.DetectFood(ctx, img)

	imageURL := ""
	if h.images.Enabled() {
		imageURL, err = h.images.UploadFoodImage(ctx, data, img.Mime)
		if err != nil {
			// Storage is a nicety; detection still succeeds without it.
			log.Printf("[DetectHandler] image upload failed: %v", err)
		}
	}

	h.history.Record(ctx, detection, source, imageURL)

	resp = types.DetectResponse{
		Detection: detection,
		Source:    source,
		ImageURL:  imageURL,
	}
	h.cache.Set(ctx, cacheKey, resp)

	c.JSON(http.StatusOK, resp)
}

// History handles GET /api/v1/detections.
func (h *DetectHandler) History(c *gin.Context) {
	limit := 20
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	entries, err := h.history.Recent(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load detection history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"detections": entries})
}
