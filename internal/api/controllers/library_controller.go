package controllers

import (
	"github.com/gin-gonic/gin"

	"soundwave/internal/config"
	"soundwave/internal/services"
	"soundwave/pkg/utils"
)

// LibraryController serves a listener's favorites and followed artists.
type LibraryController struct {
	favoriteService services.FavoriteServiceInterface
	followService   services.FollowServiceInterface
	maxLimit        int
}

func NewLibraryController(
	favoriteService services.FavoriteServiceInterface,
	followService services.FollowServiceInterface,
	cfg *config.Config,
) *LibraryController {
	return &LibraryController{
		favoriteService: favoriteService,
		followService:   followService,
		maxLimit:        cfg.PaginationMaxLimit,
	}
}

// AddFavorite godoc
// @Summary Favorite a song
// @Tags Library
// @Param songId path string true "Song id"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /favorites/{songId} [post]
func (l *LibraryController) AddFavorite(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	songID, ok := uuidParam(c, "songId")
	if !ok {
		return
	}

	if err := l.favoriteService.AddFavorite(c.Request.Context(), actor.UserID, songID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Song added to favorites")
}

// RemoveFavorite godoc
// @Summary Unfavorite a song
// @Tags Library
// @Param songId path string true "Song id"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /favorites/{songId} [delete]
func (l *LibraryController) RemoveFavorite(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	songID, ok := uuidParam(c, "songId")
	if !ok {
		return
	}

	if err := l.favoriteService.RemoveFavorite(c.Request.Context(), actor.UserID, songID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Song removed from favorites")
}

// ListFavorites godoc
// @Summary List favorite songs
// @Tags Library
// @Produce json
// @Param page query int false "Page" default(1)
// @Param limit query int false "Limit" default(20)
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /favorites [get]
func (l *LibraryController) ListFavorites(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	q, ok := pageQuery(c, l.maxLimit)
	if !ok {
		return
	}

	page, err := l.favoriteService.ListFavorites(c.Request.Context(), actor.UserID, q)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, page, "Favorites fetched successfully")
}

// Follow godoc
// @Summary Follow an artist
// @Tags Library
// @Param artistId path string true "Artist id"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /follows/{artistId} [post]
func (l *LibraryController) Follow(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	artistID, ok := uuidParam(c, "artistId")
	if !ok {
		return
	}

	if err := l.followService.Follow(c.Request.Context(), actor.UserID, artistID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Artist followed")
}

// Unfollow godoc
// @Summary Unfollow an artist
// @Tags Library
// @Param artistId path string true "Artist id"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /follows/{artistId} [delete]
func (l *LibraryController) Unfollow(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	artistID, ok := uuidParam(c, "artistId")
	if !ok {
		return
	}

	if err := l.followService.Unfollow(c.Request.Context(), actor.UserID, artistID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Artist unfollowed")
}

// ListFollowing godoc
// @Summary List followed artists
// @Tags Library
// @Produce json
// @Param page query int false "Page" default(1)
// @Param limit query int false "Limit" default(20)
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /follows [get]
func (l *LibraryController) ListFollowing(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	q, ok := pageQuery(c, l.maxLimit)
	if !ok {
		return
	}

	page, err := l.followService.ListFollowing(c.Request.Context(), actor.UserID, q)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, page, "Followed artists fetched successfully")
}
