package http

import (
	"webclass/internal/config"
	"webclass/internal/logger"
	"webclass/internal/render"
	"webclass/internal/service"
	"webclass/internal/session"
	"webclass/internal/store"
)

type Handler struct {
	services *service.Services
	storages *store.Storages
	sessions *session.Manager
	pages    *render.Pages
	articles *render.ArticlePages
	cfg      config.Server

	logger *logger.Logger
}

func NewHandler(
	services *service.Services,
	storages *store.Storages,
	sessions *session.Manager,
	pages *render.Pages,
	articles *render.ArticlePages,
	cfg config.Server,
	logger *logger.Logger,
) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		storages: storages,
		sessions: sessions,
		pages:    pages,
		articles: articles,
		cfg:      cfg,
		logger:   logger,
	}
}
