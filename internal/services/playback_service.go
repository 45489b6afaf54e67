package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"soundwave/internal/config"
	"soundwave/internal/infra"
	"soundwave/internal/models/db_models"
	"soundwave/internal/models/response_models"
	"soundwave/internal/repositories"
	mem "soundwave/pkg/memcache"
	"soundwave/pkg/metrics"
	"soundwave/pkg/utils"
)

const (
	ReasonNotFound    = "not_found"
	ReasonNoRendition = "no_rendition"
)

type URLSigner interface {
	SignURL(rawURL string, expiresIn time.Duration) (string, error)
}

type PlaybackServiceInterface interface {
	// GetTrackURL resolves a playable URL. Absent songs and songs without a
	// matching rendition are reported in the result, not as errors.
	GetTrackURL(ctx context.Context, songID uuid.UUID, quality Quality) (*response_models.PlaybackResponse, error)
}

type PlaybackService struct {
	songRepo  repositories.SongRepository
	signer    URLSigner
	presigner infra.ObjectPresigner
	cache     mem.Store
	cfg       config.PlaybackConfig
	log       *zap.Logger
}

func NewPlaybackService(
	songRepo repositories.SongRepository,
	signer URLSigner,
	presigner infra.ObjectPresigner,
	cache mem.Store,
	cfg config.PlaybackConfig,
	log *zap.Logger,
) PlaybackServiceInterface {
	return &PlaybackService{
		songRepo:  songRepo,
		signer:    signer,
		presigner: presigner,
		cache:     cache,
		cfg:       cfg,
		log:       log.Named("playback"),
	}
}

func (p *PlaybackService) GetTrackURL(ctx context.Context, songID uuid.UUID, quality Quality) (*response_models.PlaybackResponse, error) {
	cacheKey := "playback:" + songID.String() + ":" + string(quality)
	if cached, ok := p.fromCache(ctx, cacheKey); ok {
		metrics.PlaybackRequests.WithLabelValues("ok", string(quality)).Inc()
		return cached, nil
	}

	song, err := p.songRepo.FindWithRenditions(ctx, songID)
	if err != nil {
		p.log.Error("load song", zap.String("song_id", songID.String()), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if song == nil {
		metrics.PlaybackRequests.WithLabelValues(ReasonNotFound, string(quality)).Inc()
		return &response_models.PlaybackResponse{OK: false, Reason: ReasonNotFound}, nil
	}

	var renditions []db_models.Rendition
	if song.Asset != nil {
		renditions = song.Asset.Renditions
	}
	rendition, ok := SelectRendition(renditions, quality)
	if !ok {
		metrics.PlaybackRequests.WithLabelValues(ReasonNoRendition, string(quality)).Inc()
		return &response_models.PlaybackResponse{OK: false, Reason: ReasonNoRendition}, nil
	}

	url, err := p.buildURL(ctx, rendition)
	if err != nil {
		metrics.PlaybackRequests.WithLabelValues("error", string(quality)).Inc()
		p.log.Error("build playback url",
			zap.String("song_id", songID.String()),
			zap.String("storage_key", rendition.StorageKey),
			zap.Error(err))
		return nil, err
	}

	result := &response_models.PlaybackResponse{
		OK:   true,
		URL:  url,
		Type: string(rendition.Type),
		Mime: rendition.Mime,
	}
	if rendition.Quality != nil {
		result.Quality = string(*rendition.Quality)
	}

	p.toCache(ctx, cacheKey, result)
	metrics.PlaybackRequests.WithLabelValues("ok", string(quality)).Inc()
	return result, nil
}

// buildURL signs a CDN URL when a CDN domain is configured and presigns the
// object in storage otherwise.
func (p *PlaybackService) buildURL(ctx context.Context, rendition db_models.Rendition) (string, error) {
	key := strings.TrimPrefix(rendition.StorageKey, "/")

	if p.cfg.CDNDomain != "" {
		raw := cdnBase(p.cfg.CDNDomain) + "/" + key
		signed, err := p.signer.SignURL(raw, p.cfg.URLTTL)
		if err != nil {
			return "", fmt.Errorf("%w: %v", utils.ErrSigningFailed, err)
		}
		return signed, nil
	}

	url, err := p.presigner.PresignGet(ctx, rendition.Bucket, key, p.cfg.URLTTL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrStorageUnavailable, err)
	}
	return url, nil
}

func cdnBase(domain string) string {
	if strings.HasPrefix(domain, "http://") || strings.HasPrefix(domain, "https://") {
		return strings.TrimSuffix(domain, "/")
	}
	return "https://" + strings.TrimSuffix(domain, "/")
}

func (p *PlaybackService) fromCache(ctx context.Context, key string) (*response_models.PlaybackResponse, bool) {
	if p.cache == nil {
		return nil, false
	}
	raw, ok, err := p.cache.Get(ctx, key)
	if err != nil {
		p.log.Warn("playback cache read", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	if !ok {
		return nil, false
	}

	var out response_models.PlaybackResponse
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, false
	}
	return &out, true
}

// Entries live for half the URL TTL so a cached URL always has time left.
func (p *PlaybackService) toCache(ctx context.Context, key string, result *response_models.PlaybackResponse) {
	ttl := p.cfg.URLTTL / 2
	if p.cache == nil || ttl <= 0 {
		return
	}
	raw, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := p.cache.Set(ctx, key, string(raw), ttl); err != nil {
		p.log.Warn("playback cache write", zap.String("key", key), zap.Error(err))
	}
}
