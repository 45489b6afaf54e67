package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"soundwave/internal/models/db_models"
	"soundwave/internal/models/request_models"
	"soundwave/internal/models/response_models"
	"soundwave/internal/repositories"
	"soundwave/pkg/utils"
)

type PlaylistServiceInterface interface {
	CreatePlaylist(ctx context.Context, userID uuid.UUID, req request_models.PlaylistRequest) (*response_models.PlaylistResponse, error)
	ListMyPlaylists(ctx context.Context, userID uuid.UUID, q utils.PageQuery) (utils.Page[response_models.PlaylistResponse], error)
	// GetPlaylist is visible to its owner, and to everyone once public.
	GetPlaylist(ctx context.Context, actor utils.Actor, id uuid.UUID) (*response_models.PlaylistResponse, error)
	UpdatePlaylist(ctx context.Context, actor utils.Actor, id uuid.UUID, req request_models.PlaylistRequest) (*response_models.PlaylistResponse, error)
	DeletePlaylist(ctx context.Context, actor utils.Actor, id uuid.UUID) error
	AddSong(ctx context.Context, actor utils.Actor, id, songID uuid.UUID) (*response_models.PlaylistResponse, error)
	RemoveSong(ctx context.Context, actor utils.Actor, id, songID uuid.UUID) error
}

type PlaylistService struct {
	playlistRepo repositories.PlaylistRepository
	songRepo     repositories.SongRepository
	log          *zap.Logger
}

func NewPlaylistService(playlistRepo repositories.PlaylistRepository, songRepo repositories.SongRepository, log *zap.Logger) PlaylistServiceInterface {
	return &PlaylistService{
		playlistRepo: playlistRepo,
		songRepo:     songRepo,
		log:          log.Named("playlists"),
	}
}

func (p *PlaylistService) CreatePlaylist(ctx context.Context, userID uuid.UUID, req request_models.PlaylistRequest) (*response_models.PlaylistResponse, error) {
	playlist := &db_models.Playlist{
		UserID:      userID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		IsPublic:    req.IsPublic,
	}
	if err := p.playlistRepo.Create(ctx, playlist); err != nil {
		p.log.Error("create playlist", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	res := toPlaylistResponse(playlist)
	return &res, nil
}

func (p *PlaylistService) ListMyPlaylists(ctx context.Context, userID uuid.UUID, q utils.PageQuery) (utils.Page[response_models.PlaylistResponse], error) {
	playlists, total, err := p.playlistRepo.ListByOwner(ctx, q, userID)
	if err != nil {
		return utils.Page[response_models.PlaylistResponse]{}, utils.ErrDatabaseError
	}
	return utils.NewPage(mapSlice(playlists, toPlaylistResponse), q, total), nil
}

func (p *PlaylistService) GetPlaylist(ctx context.Context, actor utils.Actor, id uuid.UUID) (*response_models.PlaylistResponse, error) {
	playlist, err := p.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !playlist.IsPublic && playlist.UserID != actor.UserID && !actor.IsAdmin() {
		return nil, utils.ErrPlaylistNotFound
	}
	res := toPlaylistResponse(playlist)
	return &res, nil
}

func (p *PlaylistService) UpdatePlaylist(ctx context.Context, actor utils.Actor, id uuid.UUID, req request_models.PlaylistRequest) (*response_models.PlaylistResponse, error) {
	playlist, err := p.loadOwned(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	playlist.Name = strings.TrimSpace(req.Name)
	playlist.Description = req.Description
	playlist.IsPublic = req.IsPublic
	if err := p.playlistRepo.Update(ctx, playlist); err != nil {
		p.log.Error("update playlist", zap.String("playlist_id", id.String()), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	res := toPlaylistResponse(playlist)
	return &res, nil
}

func (p *PlaylistService) DeletePlaylist(ctx context.Context, actor utils.Actor, id uuid.UUID) error {
	if _, err := p.loadOwned(ctx, actor, id); err != nil {
		return err
	}
	if err := p.playlistRepo.Delete(ctx, id); err != nil {
		p.log.Error("delete playlist", zap.String("playlist_id", id.String()), zap.Error(err))
		return utils.ErrDatabaseError
	}
	return nil
}

func (p *PlaylistService) AddSong(ctx context.Context, actor utils.Actor, id, songID uuid.UUID) (*response_models.PlaylistResponse, error) {
	if _, err := p.loadOwned(ctx, actor, id); err != nil {
		return nil, err
	}

	song, err := p.songRepo.FindByID(ctx, songID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if song == nil {
		return nil, utils.ErrSongNotFound
	}

	if err := p.playlistRepo.AddSong(ctx, id, songID); err != nil {
		p.log.Error("add playlist song", zap.String("playlist_id", id.String()), zap.String("song_id", songID.String()), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	playlist, err := p.load(ctx, id)
	if err != nil {
		return nil, err
	}
	res := toPlaylistResponse(playlist)
	return &res, nil
}

func (p *PlaylistService) RemoveSong(ctx context.Context, actor utils.Actor, id, songID uuid.UUID) error {
	if _, err := p.loadOwned(ctx, actor, id); err != nil {
		return err
	}
	ok, err := p.playlistRepo.RemoveSong(ctx, id, songID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !ok {
		return utils.ErrSongNotFound
	}
	return nil
}

func (p *PlaylistService) load(ctx context.Context, id uuid.UUID) (*db_models.Playlist, error) {
	playlist, err := p.playlistRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if playlist == nil {
		return nil, utils.ErrPlaylistNotFound
	}
	return playlist, nil
}

// loadOwned hides other users' private playlists and forbids edits on
// public playlists the actor does not own.
func (p *PlaylistService) loadOwned(ctx context.Context, actor utils.Actor, id uuid.UUID) (*db_models.Playlist, error) {
	playlist, err := p.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if playlist.UserID == actor.UserID {
		return playlist, nil
	}
	if playlist.IsPublic {
		return nil, utils.ErrForbidden
	}
	return nil, utils.ErrPlaylistNotFound
}
