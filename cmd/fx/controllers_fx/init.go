package controllers_fx

import (
	"go.uber.org/fx"

	"soundwave/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewCatalogController),
	fx.Provide(controllers.NewPlaybackController),
	fx.Provide(controllers.NewSubscriptionController),
	fx.Provide(controllers.NewTransactionController),
	fx.Provide(controllers.NewLibraryController),
	fx.Provide(controllers.NewPlaylistController),
	fx.Provide(controllers.NewNotificationController),
	fx.Provide(controllers.NewRatingController),
	fx.Provide(controllers.NewStatisticsController))
