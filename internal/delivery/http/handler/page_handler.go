package handler

import (
	"html/template"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/commute-map/internal/config"
	"github.com/commute-map/internal/domain"
	"github.com/commute-map/templates"
)

const mapsSDKBaseURL = "https://maps.googleapis.com/maps/api/js"

// PageData - данные для шаблона страницы
type PageData struct {
	Title   string
	APIBase string
	Ready   bool
	SDKURL  string
	MapID   string
	Center  domain.GeoPoint
	Zoom    int
}

// PageHandler - рендеринг страницы карты
type PageHandler struct {
	templates *template.Template
	cfg       *config.MapsConfig
}

// NewPageHandler - разбор встроенных шаблонов страницы
func NewPageHandler(cfg *config.MapsConfig) (*PageHandler, error) {
	tmpl, err := template.ParseFS(templates.FS, "commute/*.html")
	if err != nil {
		return nil, err
	}

	return &PageHandler{
		templates: tmpl,
		cfg:       cfg,
	}, nil
}

// Render - без ключа браузера SDK не загружается и страница остается на "Loading..."
func (h *PageHandler) Render(c *fiber.Ctx) error {
	data := PageData{
		Title:   "Commute",
		APIBase: "/api/v1",
		Ready:   h.cfg.BrowserKey != "",
		MapID:   h.cfg.MapID,
		Center:  domain.GeoPoint{Lat: h.cfg.DefaultLat, Lng: h.cfg.DefaultLng},
		Zoom:    h.cfg.DefaultZoom,
	}
	if data.Ready {
		data.SDKURL = sdkURL(h.cfg.BrowserKey)
	}

	c.Set("Content-Type", "text/html; charset=utf-8")
	return h.templates.ExecuteTemplate(c.Response().BodyWriter(), "index.html", data)
}

func sdkURL(key string) string {
	params := url.Values{}
	params.Set("key", key)
	params.Set("libraries", "places")
	params.Set("callback", "initCommuteMap")
	return mapsSDKBaseURL + "?" + params.Encode()
}
