package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"soundwave/internal/models/db_models"
	"soundwave/internal/models/response_models"
	"soundwave/internal/repositories"
	"soundwave/pkg/utils"
)

type FavoriteServiceInterface interface {
	AddFavorite(ctx context.Context, userID, songID uuid.UUID) error
	RemoveFavorite(ctx context.Context, userID, songID uuid.UUID) error
	ListFavorites(ctx context.Context, userID uuid.UUID, q utils.PageQuery) (utils.Page[response_models.FavoriteResponse], error)
}

type FavoriteService struct {
	favoriteRepo repositories.FavoriteRepository
	songRepo     repositories.SongRepository
	log          *zap.Logger
}

func NewFavoriteService(favoriteRepo repositories.FavoriteRepository, songRepo repositories.SongRepository, log *zap.Logger) FavoriteServiceInterface {
	return &FavoriteService{
		favoriteRepo: favoriteRepo,
		songRepo:     songRepo,
		log:          log.Named("favorites"),
	}
}

func (f *FavoriteService) AddFavorite(ctx context.Context, userID, songID uuid.UUID) error {
	song, err := f.songRepo.FindByID(ctx, songID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if song == nil {
		return utils.ErrSongNotFound
	}

	if err := f.favoriteRepo.Add(ctx, userID, songID); err != nil {
		f.log.Error("add favorite", zap.String("user_id", userID.String()), zap.String("song_id", songID.String()), zap.Error(err))
		return utils.ErrDatabaseError
	}
	return nil
}

// RemoveFavorite succeeds whether or not the song was a favorite.
func (f *FavoriteService) RemoveFavorite(ctx context.Context, userID, songID uuid.UUID) error {
	if _, err := f.favoriteRepo.Remove(ctx, userID, songID); err != nil {
		f.log.Error("remove favorite", zap.String("user_id", userID.String()), zap.String("song_id", songID.String()), zap.Error(err))
		return utils.ErrDatabaseError
	}
	return nil
}

func (f *FavoriteService) ListFavorites(ctx context.Context, userID uuid.UUID, q utils.PageQuery) (utils.Page[response_models.FavoriteResponse], error) {
	favorites, total, err := f.favoriteRepo.List(ctx, q, userID)
	if err != nil {
		return utils.Page[response_models.FavoriteResponse]{}, utils.ErrDatabaseError
	}
	return utils.NewPage(mapSlice(favorites, toFavoriteResponse), q, total), nil
}

func toFavoriteResponse(fav *db_models.Favorite) response_models.FavoriteResponse {
	res := response_models.FavoriteResponse{SongID: fav.SongID.String(), CreatedAt: fav.CreatedAt}
	if fav.Song != nil {
		song := toSongResponse(fav.Song)
		res.Song = &song
	}
	return res
}

type FollowServiceInterface interface {
	Follow(ctx context.Context, userID, artistID uuid.UUID) error
	Unfollow(ctx context.Context, userID, artistID uuid.UUID) error
	ListFollowing(ctx context.Context, userID uuid.UUID, q utils.PageQuery) (utils.Page[response_models.FollowResponse], error)
}

type FollowService struct {
	followRepo repositories.FollowRepository
	artistRepo repositories.ArtistRepository
	log        *zap.Logger
}

func NewFollowService(followRepo repositories.FollowRepository, artistRepo repositories.ArtistRepository, log *zap.Logger) FollowServiceInterface {
	return &FollowService{
		followRepo: followRepo,
		artistRepo: artistRepo,
		log:        log.Named("follows"),
	}
}

func (f *FollowService) Follow(ctx context.Context, userID, artistID uuid.UUID) error {
	artist, err := f.artistRepo.FindByID(ctx, artistID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if artist == nil {
		return utils.ErrArtistNotFound
	}

	if err := f.followRepo.Add(ctx, userID, artistID); err != nil {
		f.log.Error("follow artist", zap.String("user_id", userID.String()), zap.String("artist_id", artistID.String()), zap.Error(err))
		return utils.ErrDatabaseError
	}
	return nil
}

func (f *FollowService) Unfollow(ctx context.Context, userID, artistID uuid.UUID) error {
	if _, err := f.followRepo.Remove(ctx, userID, artistID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (f *FollowService) ListFollowing(ctx context.Context, userID uuid.UUID, q utils.PageQuery) (utils.Page[response_models.FollowResponse], error) {
	follows, total, err := f.followRepo.List(ctx, q, userID)
	if err != nil {
		return utils.Page[response_models.FollowResponse]{}, utils.ErrDatabaseError
	}
	return utils.NewPage(mapSlice(follows, func(fl *db_models.Follow) response_models.FollowResponse {
		res := response_models.FollowResponse{ArtistID: fl.ArtistID.String(), CreatedAt: fl.CreatedAt}
		if fl.Artist != nil {
			artist := toArtistResponse(fl.Artist)
			res.Artist = &artist
		}
		return res
	}), q, total), nil
}
