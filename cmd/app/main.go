package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"soundwave/cmd/fx/account_fx"
	"soundwave/cmd/fx/catalog_fx"
	"soundwave/cmd/fx/config_fx"
	"soundwave/cmd/fx/controllers_fx"
	"soundwave/cmd/fx/db_fx"
	"soundwave/cmd/fx/library_fx"
	"soundwave/cmd/fx/memcache_fx"
	"soundwave/cmd/fx/notification_fx"
	"soundwave/cmd/fx/playback_fx"
	"soundwave/cmd/fx/rating_fx"
	"soundwave/cmd/fx/statistics_fx"
	"soundwave/cmd/fx/subscription_fx"
	"soundwave/cmd/fx/transaction_fx"
	"soundwave/internal/api/controllers"
	"soundwave/internal/config"
	"soundwave/pkg/metrics"
	"soundwave/pkg/middleware"
	"soundwave/pkg/utils"
)

func main() {
	app := fx.New(
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log.Named("fx")}
		}),

		config_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		account_fx.Module,
		catalog_fx.Module,
		playback_fx.Module,
		subscription_fx.Module,
		transaction_fx.Module,
		library_fx.Module,
		notification_fx.Module,
		rating_fx.Module,
		statistics_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideMetricsRegistry),
		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("Starting HTTP server", zap.String("addr", srv.Addr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("Failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

func ProvideMetricsRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics.Register(reg)
	return reg
}

type Controllers struct {
	fx.In

	Account      *controllers.AccountController
	Catalog      *controllers.CatalogController
	Playback     *controllers.PlaybackController
	Subscription *controllers.SubscriptionController
	Transaction  *controllers.TransactionController
	Library      *controllers.LibraryController
	Playlist     *controllers.PlaylistController
	Notification *controllers.NotificationController
	Rating       *controllers.RatingController
	Statistics   *controllers.StatisticsController
}

func ProvideRouter(
	ctrls Controllers,
	tokens *utils.TokenManager,
	reg *prometheus.Registry,
	log *zap.Logger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(log.Named("http")))
	r.Use(middleware.HTTPMetrics())
	r.Use(middleware.CORSMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))

	RegisterRoutes(r, ctrls, tokens)

	return r
}

func RegisterRoutes(r *gin.Engine, ctrls Controllers, tokens *utils.TokenManager) {
	auth := middleware.JWTAuthMiddleware(tokens)
	admin := middleware.RoleMiddleware(utils.RoleAdmin)

	accounts := r.Group("/accounts")
	accounts.POST("/register", ctrls.Account.Register)
	accounts.POST("/login", ctrls.Account.Login)
	accounts.GET("/me", auth, ctrls.Account.Me)

	songs := r.Group("/songs")
	songs.GET("", ctrls.Catalog.ListSongs)
	songs.GET("/:id", ctrls.Catalog.GetSong)
	songs.POST("", auth, admin, ctrls.Catalog.CreateSong)
	songs.PUT("/:id", auth, admin, ctrls.Catalog.UpdateSong)
	songs.DELETE("/:id", auth, admin, ctrls.Catalog.DeleteSong)

	artists := r.Group("/artists")
	artists.GET("", ctrls.Catalog.ListArtists)
	artists.GET("/:id", ctrls.Catalog.GetArtist)
	artists.POST("", auth, admin, ctrls.Catalog.CreateArtist)

	r.GET("/genres", ctrls.Catalog.ListGenres)

	r.GET("/playback/track/:songId", ctrls.Playback.GetTrack)

	subscriptions := r.Group("/subscriptions")
	subscriptions.GET("/plans", ctrls.Subscription.ListPlans)
	subscriptions.GET("/me", auth, ctrls.Subscription.GetMySubscription)
	subscriptions.POST("/:id/cancel", auth, ctrls.Subscription.Cancel)

	r.GET("/payment-methods", ctrls.Subscription.ListPaymentMethods)

	transactions := r.Group("/transactions")
	transactions.POST("/webhook", ctrls.Transaction.Webhook)
	transactions.POST("", auth, ctrls.Transaction.CreateTransaction)
	transactions.GET("/me", auth, ctrls.Transaction.ListMyTransactions)
	transactions.GET("/:id", auth, ctrls.Transaction.GetTransaction)
	transactions.GET("", auth, admin, ctrls.Transaction.ListTransactions)
	transactions.POST("/:id/refund", auth, admin, ctrls.Transaction.RefundTransaction)

	favorites := r.Group("/favorites", auth)
	favorites.GET("", ctrls.Library.ListFavorites)
	favorites.POST("/:songId", ctrls.Library.AddFavorite)
	favorites.DELETE("/:songId", ctrls.Library.RemoveFavorite)

	follows := r.Group("/follows", auth)
	follows.GET("", ctrls.Library.ListFollowing)
	follows.POST("/:artistId", ctrls.Library.Follow)
	follows.DELETE("/:artistId", ctrls.Library.Unfollow)

	playlists := r.Group("/playlists", auth)
	playlists.POST("", ctrls.Playlist.CreatePlaylist)
	playlists.GET("/me", ctrls.Playlist.ListMyPlaylists)
	playlists.GET("/:id", ctrls.Playlist.GetPlaylist)
	playlists.PUT("/:id", ctrls.Playlist.UpdatePlaylist)
	playlists.DELETE("/:id", ctrls.Playlist.DeletePlaylist)
	playlists.POST("/:id/songs", ctrls.Playlist.AddSong)
	playlists.DELETE("/:id/songs/:songId", ctrls.Playlist.RemoveSong)

	notifications := r.Group("/notifications", auth)
	notifications.GET("", ctrls.Notification.List)
	notifications.PATCH("/read-all", ctrls.Notification.MarkAllRead)
	notifications.PATCH("/:id/read", ctrls.Notification.MarkRead)
	notifications.POST("", admin, ctrls.Notification.Send)
	notifications.POST("/cleanup", admin, ctrls.Notification.Cleanup)

	ratings := r.Group("/ratings")
	ratings.PUT("/:songId", auth, ctrls.Rating.RateSong)
	ratings.GET("/songs/:songId", ctrls.Rating.ListSongRatings)
	ratings.GET("/songs/:songId/summary", ctrls.Rating.GetSummary)

	r.GET("/recommendations", auth, ctrls.Rating.Recommend)

	r.GET("/statistics/overview", auth, admin, ctrls.Statistics.GetOverview)
}
