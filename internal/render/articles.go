package render

import (
	"fmt"
	"io"

	"github.com/flosch/pongo2/v6"
)

// Article template names accepted by [ArticlePages.Render].
const (
	ArticleIndex    = "index"
	ArticleShow     = "show"
	ArticleNotFound = "notfound"
	MongoDemo       = "mongo_demo"
)

var articleNames = []string{
	ArticleIndex,
	ArticleShow,
	ArticleNotFound,
	MongoDemo,
}

// ArticlePages is the second, independent template pipeline. The article
// pages use the pongo2 dialect; each template is compiled once at
// construction time.
type ArticlePages struct {
	templates map[string]*pongo2.Template
}

// NewArticlePages compiles all article templates from the embedded
// filesystem.
func NewArticlePages() (*ArticlePages, error) {
	templates := make(map[string]*pongo2.Template, len(articleNames))

	for _, name := range articleNames {
		src, err := templateFS.ReadFile("templates/articles/" + name + ".html")
		if err != nil {
			return nil, fmt.Errorf("error reading article template %q: %w", name, err)
		}

		tpl, err := pongo2.FromString(string(src))
		if err != nil {
			return nil, fmt.Errorf("error compiling article template %q: %w", name, err)
		}
		templates[name] = tpl
	}

	return &ArticlePages{templates: templates}, nil
}

// Render writes the named article page. The PageData envelope is flattened
// into the pongo2 context under fixed keys.
func (p *ArticlePages) Render(w io.Writer, name string, data PageData) error {
	tpl, ok := p.templates[name]
	if !ok {
		return fmt.Errorf("unknown article template %q", name)
	}

	ctx := pongo2.Context{
		"title":    data.Title,
		"theme":    data.Theme,
		"identity": data.Identity,
		"flashes":  data.Flashes,
		"data":     data.Data,
	}

	if err := tpl.ExecuteWriter(ctx, w); err != nil {
		return fmt.Errorf("error rendering article page %q: %w", name, err)
	}

	return nil
}
