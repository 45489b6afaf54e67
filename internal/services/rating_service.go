package services

import (
	"context"
	"math"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"soundwave/internal/models/db_models"
	"soundwave/internal/models/request_models"
	"soundwave/internal/models/response_models"
	"soundwave/internal/repositories"
	"soundwave/pkg/utils"
)

type RatingServiceInterface interface {
	RateSong(ctx context.Context, userID, songID uuid.UUID, req request_models.RatingRequest) (*response_models.RatingResponse, error)
	ListSongRatings(ctx context.Context, songID uuid.UUID, q utils.PageQuery) (utils.Page[response_models.RatingResponse], error)
	GetSummary(ctx context.Context, songID uuid.UUID) (*response_models.RatingSummaryResponse, error)
}

type RatingService struct {
	ratingRepo repositories.RatingRepository
	songRepo   repositories.SongRepository
	log        *zap.Logger
}

func NewRatingService(ratingRepo repositories.RatingRepository, songRepo repositories.SongRepository, log *zap.Logger) RatingServiceInterface {
	return &RatingService{
		ratingRepo: ratingRepo,
		songRepo:   songRepo,
		log:        log.Named("ratings"),
	}
}

func (r *RatingService) RateSong(ctx context.Context, userID, songID uuid.UUID, req request_models.RatingRequest) (*response_models.RatingResponse, error) {
	if req.Score < 1 || req.Score > 5 {
		return nil, utils.ErrInvalidRating
	}

	song, err := r.songRepo.FindByID(ctx, songID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if song == nil {
		return nil, utils.ErrSongNotFound
	}

	rating := &db_models.Rating{
		UserID:  userID,
		SongID:  songID,
		Score:   req.Score,
		Comment: strings.TrimSpace(req.Comment),
	}
	if err := r.ratingRepo.Upsert(ctx, rating); err != nil {
		r.log.Error("upsert rating", zap.String("user_id", userID.String()), zap.String("song_id", songID.String()), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	res := toRatingResponse(rating)
	return &res, nil
}

func (r *RatingService) ListSongRatings(ctx context.Context, songID uuid.UUID, q utils.PageQuery) (utils.Page[response_models.RatingResponse], error) {
	ratings, total, err := r.ratingRepo.ListBySong(ctx, q, songID)
	if err != nil {
		return utils.Page[response_models.RatingResponse]{}, utils.ErrDatabaseError
	}
	return utils.NewPage(mapSlice(ratings, toRatingResponse), q, total), nil
}

func (r *RatingService) GetSummary(ctx context.Context, songID uuid.UUID) (*response_models.RatingSummaryResponse, error) {
	summary, err := r.ratingRepo.Summary(ctx, songID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return &response_models.RatingSummaryResponse{
		SongID:  songID.String(),
		Average: math.Round(summary.Average*100) / 100,
		Count:   summary.Count,
	}, nil
}
