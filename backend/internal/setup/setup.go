package setup

import (
	"github.com/itchan-dev/hackorsnooze/backend/internal/handler"
	"github.com/itchan-dev/hackorsnooze/backend/internal/service"
	"github.com/itchan-dev/hackorsnooze/backend/internal/storage/memory"
	"github.com/itchan-dev/hackorsnooze/shared/config"
	"github.com/itchan-dev/hackorsnooze/shared/jwt"
	mw "github.com/itchan-dev/hackorsnooze/shared/middleware"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Storage        *memory.Storage
	Handler        *handler.Handler
	AuthMiddleware *mw.Auth
	Config         *config.Config
}

// SetupDependencies wires storage, services and handlers for cfg.
func SetupDependencies(cfg *config.Config) *Dependencies {
	storage := memory.New()
	jwtService := jwt.New(cfg.Server.JwtKey, cfg.Server.JwtTTL)

	auth := service.NewAuth(storage, jwtService)
	stories := service.NewStories(storage)
	users := service.NewUsers(storage)

	return &Dependencies{
		Storage:        storage,
		Handler:        handler.New(auth, stories, users),
		AuthMiddleware: mw.NewAuth(jwtService),
		Config:         cfg,
	}
}
