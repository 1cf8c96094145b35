package httpapi

import (
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"
	"time"
	"unicode"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/fairyhunter13/product-catalog-api/internal/catalog"
	"github.com/fairyhunter13/product-catalog-api/internal/checkout"
	"github.com/fairyhunter13/product-catalog-api/internal/config"
	"github.com/fairyhunter13/product-catalog-api/internal/http/openapi"
	"github.com/fairyhunter13/product-catalog-api/internal/model"
	"github.com/fairyhunter13/product-catalog-api/internal/obs"
)

const (
	greetingMessage        = "Bonjour, monde!"
	productNotFoundMessage = "Produit non trouvé"
	checkoutInvalidMessage = "Données de commande invalides"
	checkoutOKMessage      = "Commande validée avec succès"

	maxCheckoutBody = 1 << 20
)

// App holds what the handlers share: config, the catalog, metrics and docs.
type App struct {
	Cfg     config.Config
	Catalog *catalog.Store
	Metrics *obs.Metrics
	Docs    *openapi.Publisher
	closing atomic.Bool
	started time.Time
}

// NewApp renders the API docs once up front and publishes the catalog size
// gauge. It fails only if the docs cannot be rendered.
func NewApp(cfg config.Config, st *catalog.Store, m *obs.Metrics) (*App, error) {
	a := &App{Cfg: cfg, Catalog: st, Metrics: m, started: time.Now()}
	doc := openapi.Build(apiInfo, apiSchemas(), a.docRoutes())
	pub, err := openapi.NewPublisher(doc, openapi.UIOptions{
		Title:        cfg.DocsSiteTitle,
		AssetsURL:    cfg.DocsAssetsURL,
		CustomCSSURL: cfg.DocsCustomCSSURL,
		SpecURL:      cfg.DocsPath + "/openapi.json",
	})
	if err != nil {
		return nil, errors.Wrap(err, "build api docs")
	}
	a.Docs = pub
	m.Products.Set(float64(st.Len()))
	return a, nil
}

// StartShutdown flips health checks to unavailable.
func (a *App) StartShutdown() {
	a.closing.Store(true)
}

func (a *App) helloHandler(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, model.Message{Message: greetingMessage})
}

func (a *App) listProductsHandler(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, a.Catalog.All())
}

func (a *App) getProductHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := parseProductID(mux.Vars(r)["id"])
	if !ok {
		WriteJSONError(w, http.StatusNotFound, productNotFoundMessage, "")
		return
	}
	p, found := a.Catalog.Get(id)
	if !found {
		WriteJSONError(w, http.StatusNotFound, productNotFoundMessage, "")
		return
	}
	WriteJSON(w, http.StatusOK, p)
}

// parseProductID reads the leading integer of s: optional leading space and
// sign, then decimal digits, or hex digits after 0x. Anything after the
// number is ignored, so "2.5" and "2abc" both read as 2. It reports false
// when no digits lead the string or the value overflows; such ids match no
// product.
func parseProductID(s string) (int, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	base, isDigit := 10, isDecDigit
	if len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base, isDigit = 16, isHexDigit
		s = s[2:]
	}
	end := 0
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.ParseInt(s[:end], base, strconv.IntSize)
	if err != nil {
		return 0, false
	}
	if neg {
		n = -n
	}
	return int(n), true
}

func isDecDigit(c byte) bool { return c >= '0' && c <= '9' }

func isHexDigit(c byte) bool {
	return isDecDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// checkoutHandler validates the basket shape and nothing else: there is no
// stock or existence check and no order is recorded.
func (a *App) checkoutHandler(w http.ResponseWriter, r *http.Request) {
	ct := r.Header.Get("Content-Type")
	if !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		a.rejectCheckout(w, r, "Content-Type must be application/json")
		return
	}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxCheckoutBody))
	if err != nil {
		a.rejectCheckout(w, r, "body could not be read: "+err.Error())
		return
	}
	items, err := checkout.Parse(body)
	if err != nil {
		a.rejectCheckout(w, r, err.Error())
		return
	}
	obs.Logger.WithFields(logrus.Fields{
		"request_id": RequestIDFromContext(r.Context()),
		"items":      len(items),
	}).Debug("checkout_validated")
	WriteJSON(w, http.StatusOK, model.Message{Message: checkoutOKMessage})
}

func (a *App) rejectCheckout(w http.ResponseWriter, r *http.Request, details string) {
	obs.Logger.WithFields(logrus.Fields{
		"request_id": RequestIDFromContext(r.Context()),
		"details":    details,
	}).Debug("checkout_rejected")
	WriteJSONError(w, http.StatusBadRequest, checkoutInvalidMessage, details)
}

func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	if a.closing.Load() {
		WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "shutting_down"})
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"status":     "ok",
		"products":   a.Catalog.Len(),
		"uptime_sec": time.Since(a.started).Seconds(),
	})
}
