package httpapi

import (
	"net/http"

	"github.com/fairyhunter13/product-catalog-api/internal/http/openapi"
)

var apiInfo = openapi.Info{
	Title:       "API REST Simple",
	Version:     "1.0.0",
	Description: "Une API REST simple avec documentation OpenAPI",
}

// route ties a documented API operation to its handler. The router and the
// OpenAPI document are both derived from the same table.
type route struct {
	doc     openapi.Route
	handler http.HandlerFunc
}

func (a *App) apiRoutes() []route {
	return []route{
		{
			doc: openapi.Route{
				Method:      http.MethodGet,
				Path:        "/api/hello",
				Summary:     "Retourne un message de salutation",
				OperationID: "getHello",
				Tags:        []string{"demo"},
				Responses: []openapi.Response{
					{Status: http.StatusOK, Description: "Succès", Schema: openapi.Ref("Message")},
				},
			},
			handler: a.helloHandler,
		},
		{
			doc: openapi.Route{
				Method:      http.MethodGet,
				Path:        "/api/products",
				Summary:     "Récupère la liste de tous les produits",
				OperationID: "listProducts",
				Tags:        []string{"products"},
				Responses: []openapi.Response{
					{Status: http.StatusOK, Description: "Succès", Schema: openapi.ArrayOf(openapi.Ref("Product"))},
				},
			},
			handler: a.listProductsHandler,
		},
		{
			doc: openapi.Route{
				Method:      http.MethodGet,
				Path:        "/api/products/{id}",
				Summary:     "Récupère un produit par son ID",
				OperationID: "getProduct",
				Tags:        []string{"products"},
				Params: []openapi.Param{
					{Name: "id", In: "path", Description: "Identifiant du produit", Schema: &openapi.Schema{Type: "integer"}},
				},
				Responses: []openapi.Response{
					{Status: http.StatusOK, Description: "Succès", Schema: openapi.Ref("Product")},
					{Status: http.StatusNotFound, Description: "Produit non trouvé", Schema: openapi.Ref("Message")},
				},
			},
			handler: a.getProductHandler,
		},
		{
			doc: openapi.Route{
				Method:      http.MethodPost,
				Path:        "/api/checkout",
				Summary:     "Valide un panier (aucune commande n'est enregistrée)",
				OperationID: "checkout",
				Tags:        []string{"checkout"},
				Body:        openapi.ArrayOf(openapi.Ref("LineItem")),
				Responses: []openapi.Response{
					{Status: http.StatusOK, Description: "Panier valide", Schema: openapi.Ref("Message")},
					{Status: http.StatusBadRequest, Description: "Format de panier invalide", Schema: openapi.Ref("Message")},
				},
			},
			handler: a.checkoutHandler,
		},
	}
}

func (a *App) docRoutes() []openapi.Route {
	rts := a.apiRoutes()
	docs := make([]openapi.Route, 0, len(rts))
	for _, rt := range rts {
		docs = append(docs, rt.doc)
	}
	return docs
}

func apiSchemas() map[string]*openapi.Schema {
	str := func(desc string) *openapi.Schema { return &openapi.Schema{Type: "string", Description: desc} }
	uri := func(desc string) *openapi.Schema { return &openapi.Schema{Type: "string", Format: "uri", Description: desc} }
	return map[string]*openapi.Schema{
		"Product": {
			Type:     "object",
			Required: []string{"id", "name", "price"},
			Properties: map[string]*openapi.Schema{
				"id":            {Type: "integer"},
				"name":          str(""),
				"price":         {Type: "number", Format: "double", Example: 499.99},
				"description":   str(""),
				"supplier":      str("Fournisseur"),
				"category":      str(""),
				"specification": str("Caractéristiques techniques"),
				"thumbnail":     uri("Miniature"),
				"image":         uri(""),
			},
		},
		"LineItem": {
			Type:     "object",
			Required: []string{"productId", "quantity"},
			Properties: map[string]*openapi.Schema{
				"productId": {Type: "number", Example: 1},
				"quantity":  {Type: "number", Example: 2},
			},
		},
		"Message": {
			Type:     "object",
			Required: []string{"message"},
			Properties: map[string]*openapi.Schema{
				"message": str(""),
				"details": str("Présent uniquement pour les erreurs de validation"),
			},
		},
	}
}
