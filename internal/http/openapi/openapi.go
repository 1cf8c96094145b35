// Package openapi builds the OpenAPI document from a typed route table and
// serves it together with a Swagger UI explorer.
package openapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Version is the OpenAPI version the document declares.
const Version = "3.0.0"

// Schema is the subset of the OpenAPI schema object the API needs.
type Schema struct {
	Ref         string             `json:"$ref,omitempty" yaml:"$ref,omitempty"`
	Type        string             `json:"type,omitempty" yaml:"type,omitempty"`
	Format      string             `json:"format,omitempty" yaml:"format,omitempty"`
	Description string             `json:"description,omitempty" yaml:"description,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty" yaml:"properties,omitempty"`
	Required    []string           `json:"required,omitempty" yaml:"required,omitempty"`
	Items       *Schema            `json:"items,omitempty" yaml:"items,omitempty"`
	Example     any                `json:"example,omitempty" yaml:"example,omitempty"`
}

// Ref points at a schema under components/schemas.
func Ref(name string) *Schema {
	return &Schema{Ref: "#/components/schemas/" + name}
}

// ArrayOf wraps s in an array schema.
func ArrayOf(s *Schema) *Schema {
	return &Schema{Type: "array", Items: s}
}

// Param describes a path or query parameter.
type Param struct {
	Name        string
	In          string
	Description string
	Required    bool
	Schema      *Schema
}

// Response describes one status code of a route.
type Response struct {
	Status      int
	Description string
	ContentType string
	Schema      *Schema
}

// Route is one entry of the route table. Path uses {name} placeholders.
type Route struct {
	Method      string
	Path        string
	Summary     string
	OperationID string
	Tags        []string
	Params      []Param
	Body        *Schema
	Responses   []Response
}

// Info is the document's info object.
type Info struct {
	Title       string `json:"title" yaml:"title"`
	Version     string `json:"version" yaml:"version"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Document is a complete OpenAPI description.
type Document struct {
	OpenAPI    string              `json:"openapi" yaml:"openapi"`
	Info       Info                `json:"info" yaml:"info"`
	Paths      map[string]PathItem `json:"paths" yaml:"paths"`
	Components Components          `json:"components" yaml:"components"`
}

// PathItem maps a lower-case HTTP method to its operation.
type PathItem map[string]*Operation

type Components struct {
	Schemas map[string]*Schema `json:"schemas,omitempty" yaml:"schemas,omitempty"`
}

type Operation struct {
	Summary     string                    `json:"summary,omitempty" yaml:"summary,omitempty"`
	OperationID string                    `json:"operationId,omitempty" yaml:"operationId,omitempty"`
	Tags        []string                  `json:"tags,omitempty" yaml:"tags,omitempty"`
	Parameters  []Parameter               `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	RequestBody *RequestBody              `json:"requestBody,omitempty" yaml:"requestBody,omitempty"`
	Responses   map[string]ResponseObject `json:"responses" yaml:"responses"`
}

type Parameter struct {
	Name        string  `json:"name" yaml:"name"`
	In          string  `json:"in" yaml:"in"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	Required    bool    `json:"required" yaml:"required"`
	Schema      *Schema `json:"schema,omitempty" yaml:"schema,omitempty"`
}

type RequestBody struct {
	Required bool                 `json:"required" yaml:"required"`
	Content  map[string]MediaType `json:"content" yaml:"content"`
}

type MediaType struct {
	Schema *Schema `json:"schema,omitempty" yaml:"schema,omitempty"`
}

type ResponseObject struct {
	Description string               `json:"description" yaml:"description"`
	Content     map[string]MediaType `json:"content,omitempty" yaml:"content,omitempty"`
}

// Build assembles the document for routes. Routes sharing a path are merged
// into one path item.
func Build(info Info, schemas map[string]*Schema, routes []Route) *Document {
	doc := &Document{
		OpenAPI:    Version,
		Info:       info,
		Paths:      make(map[string]PathItem, len(routes)),
		Components: Components{Schemas: schemas},
	}
	for _, rt := range routes {
		item, ok := doc.Paths[rt.Path]
		if !ok {
			item = PathItem{}
			doc.Paths[rt.Path] = item
		}
		item[strings.ToLower(rt.Method)] = operation(rt)
	}
	return doc
}

func operation(rt Route) *Operation {
	op := &Operation{
		Summary:     rt.Summary,
		OperationID: rt.OperationID,
		Tags:        rt.Tags,
		Responses:   make(map[string]ResponseObject, len(rt.Responses)),
	}
	for _, p := range rt.Params {
		op.Parameters = append(op.Parameters, Parameter{
			Name:        p.Name,
			In:          p.In,
			Description: p.Description,
			Required:    p.Required || p.In == "path",
			Schema:      p.Schema,
		})
	}
	if rt.Body != nil {
		op.RequestBody = &RequestBody{
			Required: true,
			Content:  map[string]MediaType{"application/json": {Schema: rt.Body}},
		}
	}
	for _, r := range rt.Responses {
		ro := ResponseObject{Description: r.Description}
		if r.Schema != nil {
			ct := r.ContentType
			if ct == "" {
				ct = "application/json"
			}
			ro.Content = map[string]MediaType{ct: {Schema: r.Schema}}
		}
		if ro.Description == "" {
			ro.Description = http.StatusText(r.Status)
		}
		op.Responses[strconv.Itoa(r.Status)] = ro
	}
	return op
}

// JSON renders the document as indented JSON.
func (d *Document) JSON() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// YAML renders the document as YAML.
func (d *Document) YAML() ([]byte, error) {
	return yaml.Marshal(d)
}
