package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	resp "soundwave/internal/models/response_models"
	"soundwave/internal/repositories"
	"soundwave/pkg/utils"
)

const (
	statisticsTopSongs       = 10
	statisticsRecentPayments = 10
)

type StatisticsServiceInterface interface {
	Overview(ctx context.Context, rng resp.TimeRange) (*resp.StatisticsOverview, error)
}

type statisticsService struct {
	repo repositories.StatisticsRepository
	log  *zap.Logger
	now  func() time.Time
}

func NewStatisticsService(repo repositories.StatisticsRepository, log *zap.Logger) StatisticsServiceInterface {
	return &statisticsService{repo: repo, log: log.Named("statistics"), now: time.Now}
}

// normalizeRange fills defaults (last 30 days, daily buckets) and orders the bounds.
func normalizeRange(r resp.TimeRange, now time.Time) resp.TimeRange {
	out := r
	if out.Interval == "" {
		out.Interval = "day"
	}
	if out.End.IsZero() {
		out.End = now.UTC()
	}
	if out.Start.IsZero() {
		out.Start = out.End.AddDate(0, 0, -30)
	}
	if out.Start.After(out.End) {
		out.Start, out.End = out.End, out.Start
	}
	return out
}

func (s *statisticsService) Overview(ctx context.Context, rng resp.TimeRange) (*resp.StatisticsOverview, error) {
	now := s.now()
	rng = normalizeRange(rng, now)
	out := &resp.StatisticsOverview{Range: rng}

	var (
		revenueRows []repositories.RevenueBucket
		planRows    []repositories.PlanMixRow
		topRows     []repositories.TopSongRow
		recentRows  []repositories.RecentPaymentRow
	)

	// Independent reads; each goroutine writes its own destination.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { out.Totals.Users, err = s.repo.CountUsers(gctx); return })
	g.Go(func() (err error) { out.Totals.Songs, err = s.repo.CountSongs(gctx); return })
	g.Go(func() (err error) { out.Totals.Artists, err = s.repo.CountArtists(gctx); return })
	g.Go(func() (err error) {
		out.Totals.ActiveSubscriptions, err = s.repo.CountActiveSubscriptions(gctx, now)
		return
	})
	g.Go(func() (err error) {
		revenueRows, err = s.repo.RevenueSeries(gctx, rng.Start, rng.End, rng.Interval)
		return
	})
	g.Go(func() (err error) { planRows, err = s.repo.PlanMix(gctx, now); return })
	g.Go(func() (err error) { topRows, err = s.repo.TopFavoritedSongs(gctx, statisticsTopSongs); return })
	g.Go(func() (err error) {
		recentRows, err = s.repo.RecentCompletedPayments(gctx, statisticsRecentPayments)
		return
	})

	if err := g.Wait(); err != nil {
		s.log.Error("build statistics overview", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	out.Revenue = buildRevenueSeries(revenueRows)
	out.PlanMix = buildPlanMix(planRows)

	out.TopSongs = make([]resp.TopSong, 0, len(topRows))
	for _, r := range topRows {
		out.TopSongs = append(out.TopSongs, resp.TopSong{SongID: r.SongID, Title: r.Title, Favorites: r.Favorites})
	}

	out.RecentPayments = make([]resp.RecentPayment, 0, len(recentRows))
	for _, r := range recentRows {
		out.RecentPayments = append(out.RecentPayments, resp.RecentPayment{
			ID:                   utils.SafeInt64(r.ID),
			TransactionReference: r.TransactionReference,
			Amount:               r.Amount,
			CompletedAt:          r.UpdatedAt,
			Email:                r.Email,
		})
	}

	return out, nil
}

func buildRevenueSeries(rows []repositories.RevenueBucket) resp.RevenueSeries {
	series := resp.RevenueSeries{Points: make([]resp.RevenuePoint, 0, len(rows)), Total: decimal.Zero}
	for _, r := range rows {
		series.Points = append(series.Points, resp.RevenuePoint{Bucket: r.Bucket, Amount: r.Sum, Transactions: r.Count})
		series.Total = series.Total.Add(r.Sum)
	}
	return series
}

// buildPlanMix reports each plan's share of active subscriptions in percent,
// rounded to two decimals.
func buildPlanMix(rows []repositories.PlanMixRow) []resp.PlanMixItem {
	var total int64
	for _, r := range rows {
		total += r.Count
	}

	items := make([]resp.PlanMixItem, 0, len(rows))
	for _, r := range rows {
		item := resp.PlanMixItem{
			PlanID:   r.PlanID,
			PlanCode: r.PlanCode,
			PlanName: r.PlanName,
			Price:    r.Price,
			Count:    r.Count,
		}
		if total > 0 {
			item.Percent, _ = decimal.NewFromInt(r.Count * 100).
				Div(decimal.NewFromInt(total)).
				Round(2).
				Float64()
		}
		items = append(items, item)
	}
	return items
}
