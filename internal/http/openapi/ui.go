package openapi

import (
	"bytes"
	"html/template"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

// UIOptions styles the Swagger UI page.
type UIOptions struct {
	Title        string
	AssetsURL    string
	CustomCSSURL string
	SpecURL      string
}

var uiTemplate = template.Must(template.New("swagger-ui").Parse(`<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>{{.Title}}</title>
    <link rel="stylesheet" href="{{.AssetsURL}}/swagger-ui.css" />
    {{- if .CustomCSSURL}}
    <link rel="stylesheet" href="{{.CustomCSSURL}}" />
    {{- end}}
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="{{.AssetsURL}}/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: {{.SpecURL}},
        dom_id: '#swagger-ui'
      });
    </script>
  </body>
</html>
`))

// Publisher serves a pre-rendered document and explorer page.
type Publisher struct {
	json []byte
	yaml []byte
	page []byte
}

// NewPublisher renders doc and the UI page once.
func NewPublisher(doc *Document, ui UIOptions) (*Publisher, error) {
	js, err := doc.JSON()
	if err != nil {
		return nil, errors.Wrap(err, "render openapi json")
	}
	ym, err := doc.YAML()
	if err != nil {
		return nil, errors.Wrap(err, "render openapi yaml")
	}
	if ui.Title == "" {
		ui.Title = doc.Info.Title
	}
	ui.AssetsURL = strings.TrimRight(ui.AssetsURL, "/")
	var buf bytes.Buffer
	if err := uiTemplate.Execute(&buf, ui); err != nil {
		return nil, errors.Wrap(err, "render swagger ui")
	}
	return &Publisher{json: js, yaml: ym, page: buf.Bytes()}, nil
}

// ServeJSON writes the pre-rendered OpenAPI document as JSON.
func (p *Publisher) ServeJSON(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(p.json)
}

// ServeYAML writes the same document as YAML.
func (p *Publisher) ServeYAML(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(p.yaml)
}

// ServeUI writes the Swagger UI page, which loads the JSON document.
func (p *Publisher) ServeUI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(p.page)
}
