package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"webclass/internal/config"
	"webclass/internal/logger"
	"webclass/models"
)

// mongoArticles is the document-store implementation of [ArticleDocuments].
//
// The connection is established lazily on first use and memoized for the
// process lifetime. A failed attempt is not memoized: the next request
// retries, so a store that comes up later is picked up without a restart.
// Initialization is idempotent, so concurrent first requests converge on a
// single usable handle.
type mongoArticles struct {
	logger *logger.Logger
	cfg    config.Mongo

	mu     sync.Mutex
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoArticles constructs an [ArticleDocuments] repository for the
// configured collection. No connection is opened here; an empty URI simply
// leaves every operation returning [ErrStoreUnavailable].
func NewMongoArticles(cfg config.Mongo, logger *logger.Logger) ArticleDocuments {
	logger.Debug().Str("database", cfg.Database).Str("collection", cfg.Collection).Msg("creating article document repository")
	return &mongoArticles{
		logger: logger,
		cfg:    cfg,
	}
}

// collection returns the memoized collection handle, connecting on first use.
func (m *mongoArticles) collection(ctx context.Context) (*mongo.Collection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.coll != nil {
		return m.coll, nil
	}

	if m.cfg.URI == "" {
		return nil, ErrStoreUnavailable
	}

	connectCtx, cancel := context.WithTimeout(ctx, m.cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(m.cfg.URI))
	if err != nil {
		m.logger.Err(err).Msg("document store connection failed")
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	// Connect does not dial eagerly; ping confirms the store is reachable
	// before the handle is memoized.
	if err := client.Ping(connectCtx, nil); err != nil {
		m.logger.Err(err).Msg("document store is not reachable")
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	m.client = client
	m.coll = client.Database(m.cfg.Database).Collection(m.cfg.Collection)
	m.logger.Info().Msg("document store connection established")

	return m.coll, nil
}

// ListRecent returns all stored articles ordered by creation time, newest
// first.
func (m *mongoArticles) ListRecent(ctx context.Context) ([]models.ArticleDocument, error) {
	coll, err := m.collection(ctx)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	defer cursor.Close(ctx)

	var docs []models.ArticleDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return docs, nil
}

// Insert stores a new article document with a server-assigned creation
// timestamp.
func (m *mongoArticles) Insert(ctx context.Context, title, body string) (models.ArticleDocument, error) {
	coll, err := m.collection(ctx)
	if err != nil {
		return models.ArticleDocument{}, err
	}

	doc := models.ArticleDocument{
		Title:     title,
		Body:      body,
		CreatedAt: time.Now().UTC(),
	}

	result, err := coll.InsertOne(ctx, doc)
	if err != nil {
		return models.ArticleDocument{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		doc.ID = oid
	}

	return doc, nil
}

// FindByID looks up a single article by its hex identifier. Identifiers that
// do not parse as ObjectIDs are treated as "not found" rather than as errors.
func (m *mongoArticles) FindByID(ctx context.Context, rawID string) (models.ArticleDocument, error) {
	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(rawID))
	if err != nil {
		return models.ArticleDocument{}, ErrDocumentNotFound
	}

	coll, err := m.collection(ctx)
	if err != nil {
		return models.ArticleDocument{}, err
	}

	var doc models.ArticleDocument
	err = coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	switch {
	case err == nil:
		return doc, nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return models.ArticleDocument{}, ErrDocumentNotFound
	default:
		return models.ArticleDocument{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
}
