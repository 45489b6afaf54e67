package services

import (
	"context"
	"math"
	"sort"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"soundwave/internal/models/response_models"
	"soundwave/internal/repositories"
	"soundwave/pkg/utils"
)

const (
	defaultRecommendationLimit = 20
	candidatePoolFactor        = 10

	weightGenreAffinity = 3.0
	weightFollowed      = 2.0
	weightRating        = 1.0
	weightPopularity    = 0.5
)

type RecommendationServiceInterface interface {
	Recommend(ctx context.Context, userID uuid.UUID, limit int) ([]response_models.RecommendationResponse, error)
}

type RecommendationService struct {
	repo repositories.RecommendationRepository
	log  *zap.Logger
}

func NewRecommendationService(repo repositories.RecommendationRepository, log *zap.Logger) RecommendationServiceInterface {
	return &RecommendationService{repo: repo, log: log.Named("recommendations")}
}

func (r *RecommendationService) Recommend(ctx context.Context, userID uuid.UUID, limit int) ([]response_models.RecommendationResponse, error) {
	if limit < 1 {
		limit = defaultRecommendationLimit
	}

	var (
		favoriteGenres []pq.StringArray
		followed       []uuid.UUID
		candidates     []repositories.CandidateSong
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { favoriteGenres, err = r.repo.FavoriteGenres(gctx, userID); return })
	g.Go(func() (err error) { followed, err = r.repo.FollowedArtistIDs(gctx, userID); return })
	g.Go(func() (err error) {
		candidates, err = r.repo.Candidates(gctx, userID, limit*candidatePoolFactor)
		return
	})
	if err := g.Wait(); err != nil {
		r.log.Error("load recommendation inputs", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	ranked := scoreCandidates(candidates, genreAffinity(favoriteGenres), toSet(followed))
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

// genreAffinity maps each genre to the share of the user's favorites carrying it.
func genreAffinity(favorites []pq.StringArray) map[string]float64 {
	out := map[string]float64{}
	if len(favorites) == 0 {
		return out
	}
	for _, genres := range favorites {
		seen := map[string]struct{}{}
		for _, g := range genres {
			if _, dup := seen[g]; dup {
				continue
			}
			seen[g] = struct{}{}
			out[g]++
		}
	}
	n := float64(len(favorites))
	for g := range out {
		out[g] /= n
	}
	return out
}

func toSet(ids []uuid.UUID) map[uuid.UUID]struct{} {
	out := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out
}

// scoreCandidates ranks songs by
// 3*genreAffinity + 2*followed + 1*avgRating + 0.5*log10(1+playCount).
// A song's genre affinity is the best affinity among its genres.
// Ties go to the more played song, then to the title.
func scoreCandidates(candidates []repositories.CandidateSong, affinity map[string]float64, followed map[uuid.UUID]struct{}) []response_models.RecommendationResponse {
	out := make([]response_models.RecommendationResponse, 0, len(candidates))
	for _, c := range candidates {
		var best float64
		for _, g := range c.Genres {
			if a := affinity[g]; a > best {
				best = a
			}
		}
		var follow float64
		if _, ok := followed[c.ArtistID]; ok {
			follow = 1
		}

		score := weightGenreAffinity*best +
			weightFollowed*follow +
			weightRating*c.AvgRating +
			weightPopularity*math.Log10(1+float64(c.PlayCount))

		out = append(out, response_models.RecommendationResponse{
			SongID:    c.ID.String(),
			Title:     c.Title,
			ArtistID:  c.ArtistID.String(),
			CoverURL:  c.CoverURL,
			Genres:    nonNilStrings(c.Genres),
			PlayCount: c.PlayCount,
			AvgRating: c.AvgRating,
			Score:     math.Round(score*1000) / 1000,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		if out[i].PlayCount != out[j].PlayCount {
			return out[i].PlayCount > out[j].PlayCount
		}
		return out[i].Title < out[j].Title
	})
	return out
}
