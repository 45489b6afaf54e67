package controllers

import (
	"github.com/gin-gonic/gin"

	"soundwave/internal/config"
	"soundwave/internal/models/request_models"
	"soundwave/internal/services"
	"soundwave/pkg/utils"
)

type CatalogController struct {
	catalogService services.CatalogServiceInterface
	maxLimit       int
}

func NewCatalogController(catalogService services.CatalogServiceInterface, cfg *config.Config) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
		maxLimit:       cfg.PaginationMaxLimit,
	}
}

// ListSongs godoc
// @Summary List songs
// @Description Paginated songs, filterable by title substring, artist and genre
// @Tags Catalog
// @Produce json
// @Param page query int false "Page" default(1)
// @Param limit query int false "Limit" default(20)
// @Param title query string false "Title contains"
// @Param artistId query string false "Artist id"
// @Param genre query string false "Genre name"
// @Success 200 {object} utils.APIResponse
// @Router /songs [get]
func (ct *CatalogController) ListSongs(c *gin.Context) {
	q, ok := pageQuery(c, ct.maxLimit)
	if !ok {
		return
	}
	var query request_models.SongListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	page, err := ct.catalogService.ListSongs(c.Request.Context(), q, query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, page, "Songs fetched successfully")
}

// GetSong godoc
// @Summary Get a song
// @Tags Catalog
// @Produce json
// @Param id path string true "Song id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /songs/{id} [get]
func (ct *CatalogController) GetSong(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	song, err := ct.catalogService.GetSong(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, song, "Song fetched successfully")
}

// CreateSong godoc
// @Summary Create a song
// @Tags Catalog
// @Accept json
// @Produce json
// @Param request body request_models.SongRequest true "Song"
// @Success 201 {object} utils.APIResponse
// @Security BearerAuth
// @Router /songs [post]
func (ct *CatalogController) CreateSong(c *gin.Context) {
	var req request_models.SongRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	song, err := ct.catalogService.CreateSong(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, song, "Song created successfully")
}

// UpdateSong godoc
// @Summary Update a song
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Song id"
// @Param request body request_models.SongRequest true "Song"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /songs/{id} [put]
func (ct *CatalogController) UpdateSong(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req request_models.SongRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	song, err := ct.catalogService.UpdateSong(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, song, "Song updated successfully")
}

// DeleteSong godoc
// @Summary Delete a song
// @Tags Catalog
// @Param id path string true "Song id"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /songs/{id} [delete]
func (ct *CatalogController) DeleteSong(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := ct.catalogService.DeleteSong(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Song deleted successfully")
}

// ListArtists godoc
// @Summary List artists
// @Tags Catalog
// @Produce json
// @Param page query int false "Page" default(1)
// @Param limit query int false "Limit" default(20)
// @Param name query string false "Name contains"
// @Success 200 {object} utils.APIResponse
// @Router /artists [get]
func (ct *CatalogController) ListArtists(c *gin.Context) {
	q, ok := pageQuery(c, ct.maxLimit)
	if !ok {
		return
	}
	var query request_models.ArtistListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	page, err := ct.catalogService.ListArtists(c.Request.Context(), q, query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, page, "Artists fetched successfully")
}

// GetArtist godoc
// @Summary Get an artist
// @Tags Catalog
// @Produce json
// @Param id path string true "Artist id"
// @Success 200 {object} utils.APIResponse
// @Router /artists/{id} [get]
func (ct *CatalogController) GetArtist(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	artist, err := ct.catalogService.GetArtist(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, artist, "Artist fetched successfully")
}

// CreateArtist godoc
// @Summary Create an artist
// @Tags Catalog
// @Accept json
// @Produce json
// @Param request body request_models.ArtistRequest true "Artist"
// @Success 201 {object} utils.APIResponse
// @Security BearerAuth
// @Router /artists [post]
func (ct *CatalogController) CreateArtist(c *gin.Context) {
	var req request_models.ArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	artist, err := ct.catalogService.CreateArtist(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, artist, "Artist created successfully")
}

// ListGenres godoc
// @Summary List genres
// @Tags Catalog
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /genres [get]
func (ct *CatalogController) ListGenres(c *gin.Context) {
	genres, err := ct.catalogService.ListGenres(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Header("Cache-Control", "public, max-age=300")
	utils.RespondSuccess(c, genres, "Genres fetched successfully")
}
