package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"soundwave/internal/models/request_models"
	"soundwave/internal/models/response_models"
	"soundwave/internal/services"
	"soundwave/pkg/utils"
)

const statisticsDateLayout = "2006-01-02"

type StatisticsController struct {
	statisticsService services.StatisticsServiceInterface
}

func NewStatisticsController(statisticsService services.StatisticsServiceInterface) *StatisticsController {
	return &StatisticsController{
		statisticsService: statisticsService,
	}
}

// GetOverview godoc
// @Summary Get statistics overview
// @Description Totals, revenue series of completed transactions, plan mix, top favorited songs and recent payments
// @Tags Statistics
// @Produce json
// @Param from     query string false "Start date (YYYY-MM-DD), default 30 days before to"
// @Param to       query string false "End date (YYYY-MM-DD, inclusive), default now"
// @Param interval query string false "Bucket size: day | week | month (default: day)"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /statistics/overview [get]
func (s *StatisticsController) GetOverview(c *gin.Context) {
	var query request_models.StatisticsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	rng := response_models.TimeRange{Interval: query.Interval}
	// Layout already checked by the datetime binding.
	if query.From != "" {
		rng.Start, _ = time.Parse(statisticsDateLayout, query.From)
	}
	if query.To != "" {
		to, _ := time.Parse(statisticsDateLayout, query.To)
		rng.End = to.Add(24*time.Hour - time.Nanosecond)
	}

	overview, err := s.statisticsService.Overview(c.Request.Context(), rng)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, overview, "Statistics fetched successfully")
}
