package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"soundwave/internal/config"
	"soundwave/internal/models/request_models"
	"soundwave/internal/services"
	"soundwave/pkg/utils"
)

type PlaylistController struct {
	playlistService services.PlaylistServiceInterface
	maxLimit        int
}

func NewPlaylistController(playlistService services.PlaylistServiceInterface, cfg *config.Config) *PlaylistController {
	return &PlaylistController{
		playlistService: playlistService,
		maxLimit:        cfg.PaginationMaxLimit,
	}
}

// CreatePlaylist godoc
// @Summary Create a playlist
// @Tags Playlists
// @Accept json
// @Produce json
// @Param request body request_models.PlaylistRequest true "Playlist"
// @Success 201 {object} utils.APIResponse
// @Security BearerAuth
// @Router /playlists [post]
func (p *PlaylistController) CreatePlaylist(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req request_models.PlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	playlist, err := p.playlistService.CreatePlaylist(c.Request.Context(), actor.UserID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, playlist, "Playlist created successfully")
}

// ListMyPlaylists godoc
// @Summary List my playlists
// @Tags Playlists
// @Produce json
// @Param page query int false "Page" default(1)
// @Param limit query int false "Limit" default(20)
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /playlists/me [get]
func (p *PlaylistController) ListMyPlaylists(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	q, ok := pageQuery(c, p.maxLimit)
	if !ok {
		return
	}

	page, err := p.playlistService.ListMyPlaylists(c.Request.Context(), actor.UserID, q)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, page, "Playlists fetched successfully")
}

// GetPlaylist godoc
// @Summary Get a playlist
// @Tags Playlists
// @Produce json
// @Param id path string true "Playlist id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /playlists/{id} [get]
func (p *PlaylistController) GetPlaylist(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	playlist, err := p.playlistService.GetPlaylist(c.Request.Context(), actor, id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, playlist, "Playlist fetched successfully")
}

// UpdatePlaylist godoc
// @Summary Update a playlist
// @Tags Playlists
// @Accept json
// @Produce json
// @Param id path string true "Playlist id"
// @Param request body request_models.PlaylistRequest true "Playlist"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /playlists/{id} [put]
func (p *PlaylistController) UpdatePlaylist(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req request_models.PlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	playlist, err := p.playlistService.UpdatePlaylist(c.Request.Context(), actor, id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, playlist, "Playlist updated successfully")
}

// DeletePlaylist godoc
// @Summary Delete a playlist
// @Tags Playlists
// @Param id path string true "Playlist id"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /playlists/{id} [delete]
func (p *PlaylistController) DeletePlaylist(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := p.playlistService.DeletePlaylist(c.Request.Context(), actor, id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Playlist deleted successfully")
}

// AddSong godoc
// @Summary Append a song to a playlist
// @Tags Playlists
// @Accept json
// @Produce json
// @Param id path string true "Playlist id"
// @Param request body request_models.AddPlaylistSongRequest true "Song"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /playlists/{id}/songs [post]
func (p *PlaylistController) AddSong(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req request_models.AddPlaylistSongRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	playlist, err := p.playlistService.AddSong(c.Request.Context(), actor, id, uuid.MustParse(req.SongID))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, playlist, "Song added to playlist")
}

// RemoveSong godoc
// @Summary Remove a song from a playlist
// @Tags Playlists
// @Param id path string true "Playlist id"
// @Param songId path string true "Song id"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /playlists/{id}/songs/{songId} [delete]
func (p *PlaylistController) RemoveSong(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	songID, ok := uuidParam(c, "songId")
	if !ok {
		return
	}

	if err := p.playlistService.RemoveSong(c.Request.Context(), actor, id, songID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Song removed from playlist")
}
