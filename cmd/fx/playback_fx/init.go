package playback_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"soundwave/internal/config"
	"soundwave/internal/infra"
	"soundwave/internal/repositories"
	"soundwave/internal/services"
	"soundwave/pkg/cdn"
	mem "soundwave/pkg/memcache"
)

var Module = fx.Provide(
	provideURLSigner, infra.NewS3Presigner, providePlaybackService)

func provideURLSigner(cfg *config.Config, log *zap.Logger) (services.URLSigner, error) {
	signer, err := cdn.NewSigner(cfg.Playback.KeyPairID, cfg.Playback.PrivateKeyPEM)
	if err != nil {
		return nil, err
	}
	if cfg.Playback.CDNDomain != "" && !signer.Enabled() {
		log.Warn("CDN domain configured without a signing key, playback URLs will be unsigned",
			zap.String("cdn_domain", cfg.Playback.CDNDomain))
	}
	return signer, nil
}

func providePlaybackService(
	songRepo repositories.SongRepository,
	signer services.URLSigner,
	presigner infra.ObjectPresigner,
	cache mem.Store,
	cfg *config.Config,
	log *zap.Logger,
) services.PlaybackServiceInterface {
	return services.NewPlaybackService(songRepo, signer, presigner, cache, cfg.Playback, log)
}
