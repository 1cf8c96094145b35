package openapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func testRoutes() []Route {
	return []Route{
		{
			Method:  http.MethodGet,
			Path:    "/items",
			Summary: "list",
			Responses: []Response{
				{Status: http.StatusOK, Description: "ok", Schema: ArrayOf(Ref("Item"))},
			},
		},
		{
			Method: http.MethodGet,
			Path:   "/items/{id}",
			Params: []Param{{Name: "id", In: "path", Schema: &Schema{Type: "integer"}}},
			Responses: []Response{
				{Status: http.StatusOK, Schema: Ref("Item")},
				{Status: http.StatusNotFound},
			},
		},
		{
			Method: http.MethodPost,
			Path:   "/items",
			Body:   ArrayOf(Ref("Item")),
			Responses: []Response{
				{Status: http.StatusOK, Description: "created"},
			},
		},
	}
}

func testSchemas() map[string]*Schema {
	return map[string]*Schema{
		"Item": {Type: "object", Properties: map[string]*Schema{"id": {Type: "integer"}}},
	}
}

func TestBuildMergesPaths(t *testing.T) {
	doc := Build(Info{Title: "T", Version: "1"}, testSchemas(), testRoutes())

	assert.Equal(t, Version, doc.OpenAPI)
	require.Len(t, doc.Paths, 2)
	assert.Contains(t, doc.Paths["/items"], "get")
	assert.Contains(t, doc.Paths["/items"], "post")

	byID := doc.Paths["/items/{id}"]["get"]
	require.Len(t, byID.Parameters, 1)
	assert.True(t, byID.Parameters[0].Required)
	assert.Equal(t, "Not Found", byID.Responses["404"].Description)
	assert.Empty(t, byID.Responses["404"].Content)
	assert.Equal(t, "#/components/schemas/Item", byID.Responses["200"].Content["application/json"].Schema.Ref)

	post := doc.Paths["/items"]["post"]
	require.NotNil(t, post.RequestBody)
	assert.True(t, post.RequestBody.Required)
	assert.Equal(t, "array", post.RequestBody.Content["application/json"].Schema.Type)
}

func TestDocumentEncodings(t *testing.T) {
	doc := Build(Info{Title: "T", Version: "1"}, testSchemas(), testRoutes())

	js, err := doc.JSON()
	require.NoError(t, err)
	var fromJSON map[string]any
	require.NoError(t, json.Unmarshal(js, &fromJSON))
	assert.Equal(t, "3.0.0", fromJSON["openapi"])

	ym, err := doc.YAML()
	require.NoError(t, err)
	assert.Contains(t, string(ym), "openapi: 3.0.0")
	var fromYAML map[string]any
	require.NoError(t, yaml.Unmarshal(ym, &fromYAML))
	paths, ok := fromYAML["paths"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, paths, "/items/{id}")
	assert.Contains(t, string(ym), "#/components/schemas/Item")
}

func TestPublisher(t *testing.T) {
	doc := Build(Info{Title: "Catalog", Version: "1"}, testSchemas(), testRoutes())
	p, err := NewPublisher(doc, UIOptions{
		AssetsURL:    "https://cdn.example.com/swagger-ui/",
		CustomCSSURL: "https://cdn.example.com/theme.css",
		SpecURL:      "/docs/openapi.json",
	})
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	p.ServeUI(rr, httptest.NewRequest(http.MethodGet, "/docs", nil))
	body := rr.Body.String()
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Contains(t, body, `<div id="swagger-ui">`)
	assert.Contains(t, body, "<title>Catalog</title>")
	assert.Contains(t, body, `href="https://cdn.example.com/swagger-ui/swagger-ui.css"`)
	assert.Contains(t, body, `href="https://cdn.example.com/theme.css"`)
	assert.Contains(t, body, "openapi.json")

	rr = httptest.NewRecorder()
	p.ServeJSON(rr, httptest.NewRequest(http.MethodGet, "/docs/openapi.json", nil))
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.True(t, json.Valid(rr.Body.Bytes()))

	rr = httptest.NewRecorder()
	p.ServeYAML(rr, httptest.NewRequest(http.MethodGet, "/docs/openapi.yaml", nil))
	assert.Equal(t, "application/yaml", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Body.String(), "openapi:")
}

func TestPublisherWithoutCustomCSS(t *testing.T) {
	doc := Build(Info{Title: "Catalog", Version: "1"}, nil, nil)
	p, err := NewPublisher(doc, UIOptions{AssetsURL: "https://cdn.example.com", SpecURL: "/x.json", Title: "Docs"})
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	p.ServeUI(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Contains(t, rr.Body.String(), "<title>Docs</title>")
	assert.NotContains(t, rr.Body.String(), "theme.css")
	assert.Equal(t, 1, strings.Count(rr.Body.String(), "<link"))
}
