package store

import (
	"webclass/internal/config"
	"webclass/internal/logger"
)

// Storages aggregates every repository the application depends on. It is
// constructed once at process start and injected into the service and
// handler layers.
type Storages struct {
	Identities  IdentityRepository
	Users       UserCollection
	Articles    ArticleCollection
	ArticleDocs ArticleDocuments
}

// NewStorages wires all repositories: the in-memory registries and the lazy
// document-store repository. It never fails; a missing document-store URI
// degrades store-backed routes instead of blocking startup.
func NewStorages(cfg config.Storage, logger *logger.Logger) *Storages {
	return &Storages{
		Identities:  NewIdentityRepository(logger),
		Users:       NewUserCollection(logger),
		Articles:    NewArticleCollection(logger),
		ArticleDocs: NewMongoArticles(cfg.Mongo, logger),
	}
}
