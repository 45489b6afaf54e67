package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"soundwave/internal/models/db_models"
	"soundwave/internal/models/request_models"
	"soundwave/internal/models/response_models"
	"soundwave/internal/repositories"
	"soundwave/pkg/utils"
)

type CatalogServiceInterface interface {
	ListSongs(ctx context.Context, q utils.PageQuery, query request_models.SongListQuery) (utils.Page[response_models.SongResponse], error)
	GetSong(ctx context.Context, id uuid.UUID) (*response_models.SongResponse, error)
	CreateSong(ctx context.Context, req request_models.SongRequest) (*response_models.SongResponse, error)
	UpdateSong(ctx context.Context, id uuid.UUID, req request_models.SongRequest) (*response_models.SongResponse, error)
	DeleteSong(ctx context.Context, id uuid.UUID) error

	ListArtists(ctx context.Context, q utils.PageQuery, query request_models.ArtistListQuery) (utils.Page[response_models.ArtistResponse], error)
	GetArtist(ctx context.Context, id uuid.UUID) (*response_models.ArtistResponse, error)
	CreateArtist(ctx context.Context, req request_models.ArtistRequest) (*response_models.ArtistResponse, error)

	ListGenres(ctx context.Context) ([]response_models.GenreResponse, error)
}

type CatalogService struct {
	songRepo   repositories.SongRepository
	artistRepo repositories.ArtistRepository
	genreRepo  repositories.GenreRepository
	log        *zap.Logger
}

func NewCatalogService(
	songRepo repositories.SongRepository,
	artistRepo repositories.ArtistRepository,
	genreRepo repositories.GenreRepository,
	log *zap.Logger,
) CatalogServiceInterface {
	return &CatalogService{
		songRepo:   songRepo,
		artistRepo: artistRepo,
		genreRepo:  genreRepo,
		log:        log.Named("catalog"),
	}
}

func (c *CatalogService) ListSongs(ctx context.Context, q utils.PageQuery, query request_models.SongListQuery) (utils.Page[response_models.SongResponse], error) {
	filter := repositories.SongFilter{
		Title: strings.TrimSpace(query.Title),
		Genre: strings.ToLower(strings.TrimSpace(query.Genre)),
	}
	if query.ArtistID != "" {
		artistID, err := uuid.Parse(query.ArtistID)
		if err != nil {
			return utils.Page[response_models.SongResponse]{}, utils.ErrArtistNotFound
		}
		filter.ArtistID = &artistID
	}

	songs, total, err := c.songRepo.List(ctx, q, filter)
	if err != nil {
		c.log.Error("list songs", zap.Error(err))
		return utils.Page[response_models.SongResponse]{}, utils.ErrDatabaseError
	}
	return utils.NewPage(mapSlice(songs, toSongResponse), q, total), nil
}

func (c *CatalogService) GetSong(ctx context.Context, id uuid.UUID) (*response_models.SongResponse, error) {
	song, err := c.songRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if song == nil {
		return nil, utils.ErrSongNotFound
	}
	res := toSongResponse(song)
	return &res, nil
}

func (c *CatalogService) CreateSong(ctx context.Context, req request_models.SongRequest) (*response_models.SongResponse, error) {
	artist, err := c.requireArtist(ctx, req.ArtistID)
	if err != nil {
		return nil, err
	}

	song := &db_models.Song{}
	applySongRequest(song, artist.ID, req)
	if err := c.songRepo.Create(ctx, song); err != nil {
		c.log.Error("create song", zap.String("title", song.Title), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	song.Artist = artist

	res := toSongResponse(song)
	return &res, nil
}

func (c *CatalogService) UpdateSong(ctx context.Context, id uuid.UUID, req request_models.SongRequest) (*response_models.SongResponse, error) {
	song, err := c.songRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if song == nil {
		return nil, utils.ErrSongNotFound
	}

	artist, err := c.requireArtist(ctx, req.ArtistID)
	if err != nil {
		return nil, err
	}

	applySongRequest(song, artist.ID, req)
	if err := c.songRepo.Update(ctx, song); err != nil {
		c.log.Error("update song", zap.String("song_id", id.String()), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	song.Artist = artist

	res := toSongResponse(song)
	return &res, nil
}

func (c *CatalogService) DeleteSong(ctx context.Context, id uuid.UUID) error {
	ok, err := c.songRepo.Delete(ctx, id)
	if err != nil {
		c.log.Error("delete song", zap.String("song_id", id.String()), zap.Error(err))
		return utils.ErrDatabaseError
	}
	if !ok {
		return utils.ErrSongNotFound
	}
	return nil
}

func (c *CatalogService) ListArtists(ctx context.Context, q utils.PageQuery, query request_models.ArtistListQuery) (utils.Page[response_models.ArtistResponse], error) {
	artists, total, err := c.artistRepo.List(ctx, q, strings.TrimSpace(query.Name))
	if err != nil {
		c.log.Error("list artists", zap.Error(err))
		return utils.Page[response_models.ArtistResponse]{}, utils.ErrDatabaseError
	}
	return utils.NewPage(mapSlice(artists, toArtistResponse), q, total), nil
}

func (c *CatalogService) GetArtist(ctx context.Context, id uuid.UUID) (*response_models.ArtistResponse, error) {
	artist, err := c.artistRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if artist == nil {
		return nil, utils.ErrArtistNotFound
	}
	res := toArtistResponse(artist)
	return &res, nil
}

func (c *CatalogService) CreateArtist(ctx context.Context, req request_models.ArtistRequest) (*response_models.ArtistResponse, error) {
	artist := &db_models.Artist{
		Name:      strings.TrimSpace(req.Name),
		Bio:       req.Bio,
		AvatarURL: req.AvatarURL,
		Genres:    pq.StringArray(normalizeGenres(req.Genres)),
	}
	if err := c.artistRepo.Create(ctx, artist); err != nil {
		c.log.Error("create artist", zap.String("name", artist.Name), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	res := toArtistResponse(artist)
	return &res, nil
}

func (c *CatalogService) ListGenres(ctx context.Context) ([]response_models.GenreResponse, error) {
	genres, err := c.genreRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return mapSlice(genres, toGenreResponse), nil
}

func (c *CatalogService) requireArtist(ctx context.Context, rawID string) (*db_models.Artist, error) {
	artistID, err := uuid.Parse(rawID)
	if err != nil {
		return nil, utils.ErrArtistNotFound
	}
	artist, err := c.artistRepo.FindByID(ctx, artistID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if artist == nil {
		return nil, utils.ErrArtistNotFound
	}
	return artist, nil
}

func applySongRequest(song *db_models.Song, artistID uuid.UUID, req request_models.SongRequest) {
	song.Title = strings.TrimSpace(req.Title)
	song.ArtistID = artistID
	song.AlbumName = req.AlbumName
	song.DurationSeconds = req.DurationSeconds
	song.CoverURL = req.CoverURL
	song.Genres = pq.StringArray(normalizeGenres(req.Genres))
	song.ReleaseDate = req.ReleaseDate
}

// normalizeGenres trims, lowercases and de-duplicates genre names, keeping order.
func normalizeGenres(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, g := range in {
		g = strings.ToLower(strings.TrimSpace(g))
		if g == "" {
			continue
		}
		if _, ok := seen[g]; ok {
			continue
		}
		seen[g] = struct{}{}
		out = append(out, g)
	}
	return out
}
