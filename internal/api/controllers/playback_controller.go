package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"soundwave/internal/models/request_models"
	"soundwave/internal/models/response_models"
	"soundwave/internal/services"
	"soundwave/pkg/utils"
)

type PlaybackController struct {
	playbackService services.PlaybackServiceInterface
}

func NewPlaybackController(playbackService services.PlaybackServiceInterface) *PlaybackController {
	return &PlaybackController{playbackService: playbackService}
}

// GetTrack godoc
// @Summary Resolve a playable URL for a song
// @Description Picks the best rendition for the requested quality and returns a signed URL.
// @Description The body is not wrapped in the standard envelope.
// @Tags Playback
// @Produce json
// @Param songId path string true "Song id"
// @Param quality query string false "hls | 320 | 128" default(hls)
// @Success 200 {object} response_models.PlaybackResponse
// @Failure 404 {object} response_models.PlaybackResponse
// @Router /playback/track/{songId} [get]
func (p *PlaybackController) GetTrack(c *gin.Context) {
	// An id that cannot name a song is reported like an unknown song.
	songID, err := uuid.Parse(c.Param("songId"))
	if err != nil {
		c.JSON(http.StatusNotFound, response_models.PlaybackResponse{OK: false, Reason: services.ReasonNotFound})
		return
	}

	var query request_models.PlaybackQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondValidationError(c, err)
		return
	}
	quality, ok := services.ParseQuality(query.Quality)
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "quality must be one of: hls 320 128")
		return
	}

	result, err := p.playbackService.GetTrackURL(c.Request.Context(), songID, quality)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if !result.OK && result.Reason == services.ReasonNotFound {
		c.JSON(http.StatusNotFound, result)
		return
	}
	c.JSON(http.StatusOK, result)
}
