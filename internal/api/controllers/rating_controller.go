package controllers

import (
	"github.com/gin-gonic/gin"

	"soundwave/internal/config"
	"soundwave/internal/models/request_models"
	"soundwave/internal/services"
	"soundwave/pkg/utils"
)

type RatingController struct {
	ratingService         services.RatingServiceInterface
	recommendationService services.RecommendationServiceInterface
	maxLimit              int
}

func NewRatingController(
	ratingService services.RatingServiceInterface,
	recommendationService services.RecommendationServiceInterface,
	cfg *config.Config,
) *RatingController {
	return &RatingController{
		ratingService:         ratingService,
		recommendationService: recommendationService,
		maxLimit:              cfg.PaginationMaxLimit,
	}
}

// RateSong godoc
// @Summary Rate a song
// @Description Creates or replaces the caller's rating of the song
// @Tags Ratings
// @Accept json
// @Produce json
// @Param songId path string true "Song id"
// @Param request body request_models.RatingRequest true "Score 1..5 and optional comment"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /ratings/{songId} [put]
func (r *RatingController) RateSong(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	songID, ok := uuidParam(c, "songId")
	if !ok {
		return
	}
	var req request_models.RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	rating, err := r.ratingService.RateSong(c.Request.Context(), actor.UserID, songID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, rating, "Rating saved")
}

// ListSongRatings godoc
// @Summary List ratings of a song
// @Tags Ratings
// @Produce json
// @Param songId path string true "Song id"
// @Param page query int false "Page" default(1)
// @Param limit query int false "Limit" default(20)
// @Success 200 {object} utils.APIResponse
// @Router /ratings/songs/{songId} [get]
func (r *RatingController) ListSongRatings(c *gin.Context) {
	songID, ok := uuidParam(c, "songId")
	if !ok {
		return
	}
	q, ok := pageQuery(c, r.maxLimit)
	if !ok {
		return
	}

	page, err := r.ratingService.ListSongRatings(c.Request.Context(), songID, q)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, page, "Ratings fetched successfully")
}

// GetSummary godoc
// @Summary Average rating of a song
// @Tags Ratings
// @Produce json
// @Param songId path string true "Song id"
// @Success 200 {object} utils.APIResponse
// @Router /ratings/songs/{songId}/summary [get]
func (r *RatingController) GetSummary(c *gin.Context) {
	songID, ok := uuidParam(c, "songId")
	if !ok {
		return
	}

	summary, err := r.ratingService.GetSummary(c.Request.Context(), songID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, summary, "Rating summary fetched successfully")
}

// Recommend godoc
// @Summary Personal song recommendations
// @Tags Recommendations
// @Produce json
// @Param limit query int false "1..50" default(20)
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /recommendations [get]
func (r *RatingController) Recommend(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var query request_models.RecommendationQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	songs, err := r.recommendationService.Recommend(c.Request.Context(), actor.UserID, query.Limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, songs, "Recommendations fetched successfully")
}
