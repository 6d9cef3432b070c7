package store

import (
	"context"
	"sort"
	"sync"

	"webclass/internal/logger"
	"webclass/models"
)

// articleCollection is the in-memory implementation of [ArticleCollection].
// It mirrors the locking and sentinel rules of the user collection.
type articleCollection struct {
	logger *logger.Logger

	mu       sync.RWMutex
	articles map[int]models.Article
	nextID   int
}

// NewArticleCollection constructs an [ArticleCollection] pre-seeded with the
// permanent sentinel record at ID 0.
func NewArticleCollection(logger *logger.Logger) ArticleCollection {
	logger.Debug().Msg("creating article collection")
	return &articleCollection{
		logger: logger,
		articles: map[int]models.Article{
			0: {ID: 0, Title: "untitled"},
		},
		nextID: 1,
	}
}

func (c *articleCollection) List(_ context.Context) []models.Article {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.Article, 0, len(c.articles)-1)
	for id, a := range c.articles {
		if id == 0 {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

func (c *articleCollection) Create(_ context.Context, article models.Article) (models.Article, error) {
	if !article.Valid() {
		return models.Article{}, ErrInvalidRecord
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	article.ID = c.nextID
	c.nextID++
	c.articles[article.ID] = article

	return article, nil
}

func (c *articleCollection) Get(_ context.Context, id int) (models.Article, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	article, ok := c.articles[id]
	if !ok {
		return models.Article{}, ErrRecordNotFound
	}

	return article, nil
}

func (c *articleCollection) Replace(_ context.Context, id int, article models.Article) (models.Article, error) {
	if !article.Valid() {
		return models.Article{}, ErrInvalidRecord
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	article.ID = id
	c.articles[id] = article
	if id >= c.nextID {
		c.nextID = id + 1
	}

	return article, nil
}

func (c *articleCollection) Delete(_ context.Context, id int) error {
	if id == 0 {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.articles, id)

	return nil
}
