package render

import (
	"fmt"
	"html/template"
	"io"
)

// Page template names accepted by [Pages.Render].
const (
	PageHome       = "home"
	PageRegister   = "register"
	PageUsersIndex = "users_index"
	PageUserShow   = "user_show"
	PageProtected  = "protected"
	PageNotFound   = "notfound"
)

var pageNames = []string{
	PageHome,
	PageRegister,
	PageUsersIndex,
	PageUserShow,
	PageProtected,
	PageNotFound,
}

// Pages is the html/template pipeline rendering the core pages (home, auth,
// users, protected). Every page is parsed together with the shared layout at
// construction time, so rendering can only fail on write errors.
type Pages struct {
	templates map[string]*template.Template
}

// NewPages parses all page templates from the embedded filesystem.
func NewPages() (*Pages, error) {
	templates := make(map[string]*template.Template, len(pageNames))

	for _, name := range pageNames {
		tpl, err := template.ParseFS(
			templateFS,
			"templates/pages/layout.gohtml",
			"templates/pages/"+name+".gohtml",
		)
		if err != nil {
			return nil, fmt.Errorf("error parsing page template %q: %w", name, err)
		}
		templates[name] = tpl
	}

	return &Pages{templates: templates}, nil
}

// Render writes the named page wrapped in the shared layout.
func (p *Pages) Render(w io.Writer, name string, data PageData) error {
	tpl, ok := p.templates[name]
	if !ok {
		return fmt.Errorf("unknown page template %q", name)
	}

	if err := tpl.ExecuteTemplate(w, "layout", data); err != nil {
		return fmt.Errorf("error rendering page %q: %w", name, err)
	}

	return nil
}
