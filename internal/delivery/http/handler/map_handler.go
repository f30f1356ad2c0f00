package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/commute-map/internal/config"
	"github.com/commute-map/internal/delivery/http/middleware"
	"github.com/commute-map/internal/domain"
	"github.com/commute-map/internal/pkg/errors"
	"github.com/commute-map/internal/pkg/utils"
	"github.com/commute-map/internal/pkg/validator"
	"github.com/commute-map/internal/usecase"
	"github.com/commute-map/internal/usecase/dto"
)

// MapHandler - обработчик оркестратора карты в рамках сессии
type MapHandler struct {
	mapUC  *usecase.MapUseCase
	cfg    *config.MapsConfig
	logger *zap.Logger
}

// NewMapHandler - создание нового MapHandler
func NewMapHandler(mapUC *usecase.MapUseCase, cfg *config.MapsConfig, logger *zap.Logger) *MapHandler {
	return &MapHandler{
		mapUC:  mapUC,
		cfg:    cfg,
		logger: logger,
	}
}

// GetMapConfig godoc
// @Summary Конфигурация карты для браузера
// @Description Ключ, map id, центр и zoom по умолчанию для SDK карты. ready=false означает, что страница остается в состоянии загрузки.
// @Tags Map
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.MapConfigResponse}
// @Router /api/v1/config/map [get]
func (h *MapHandler) GetMapConfig(c *fiber.Ctx) error {
	return utils.SendSuccess(c, dto.MapConfigResponse{
		Provider: h.cfg.Provider,
		APIKey:   h.cfg.BrowserKey,
		Ready:    h.cfg.BrowserKey != "",
		Center:   domain.GeoPoint{Lat: h.cfg.DefaultLat, Lng: h.cfg.DefaultLng},
		Zoom:     h.cfg.DefaultZoom,
		Options: dto.MapOptions{
			MapID:            h.cfg.MapID,
			DisableDefaultUI: true,
			ClickableIcons:   false,
		},
	}, nil)
}

// Autocomplete godoc
// @Summary Подсказки адреса офиса
// @Tags Map
// @Produce json
// @Param input query string true "Часть адреса"
// @Success 200 {object} utils.SuccessResponse{data=dto.AutocompleteResponse}
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/places/autocomplete [get]
func (h *MapHandler) Autocomplete(c *fiber.Ctx) error {
	suggestions, err := h.mapUC.Autocomplete(c.UserContext(), c.Query("input"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.AutocompleteResponse{Suggestions: suggestions}, &utils.Meta{
		Total: len(suggestions),
	})
}

// SelectOffice godoc
// @Summary Выбор офиса
// @Description Задает офис по координатам или, если передан только адрес, по результату геокодирования. Карта переместится к нему при следующем запросе вида.
// @Tags Map
// @Accept json
// @Produce json
// @Param request body dto.SelectOfficeRequest true "Координаты или адрес офиса"
// @Success 200 {object} utils.SuccessResponse{data=dto.SelectOfficeResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /api/v1/office [post]
func (h *MapHandler) SelectOffice(c *fiber.Ctx) error {
	var req dto.SelectOfficeRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	sessionID := middleware.SessionID(c)

	if req.HasPoint() {
		s := h.mapUC.SelectOffice(sessionID, req.Point())
		return utils.SendSuccess(c, dto.SelectOfficeResponse{
			Office: *s.Office,
			State:  s.State(),
		}, nil)
	}

	place, err := h.mapUC.SelectOfficeByAddress(c.UserContext(), sessionID, req.Address)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.SelectOfficeResponse{
		Office: place.Location,
		Place:  place,
		State:  domain.MapStateOfficeSelected,
	}, nil)
}

// RequestRoute godoc
// @Summary Запрос маршрута поездки
// @Description Запускает запрос маршрута driving от origin до офиса и сразу отвечает. Маршрут появится в виде карты после ответа провайдера. issued=false, если офис не выбран.
// @Tags Map
// @Accept json
// @Produce json
// @Param request body dto.RouteRequest true "Начало маршрута"
// @Success 202 {object} utils.SuccessResponse{data=usecase.RouteTicket}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/route [post]
func (h *MapHandler) RequestRoute(c *fiber.Ctx) error {
	var req dto.RouteRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	ticket := h.mapUC.RequestRoute(middleware.SessionID(c), req.Origin())
	return utils.SendAccepted(c, ticket)
}

// GetView godoc
// @Summary Текущий вид карты
// @Description Офис, синтетические дома и их кластеры, кольца расстояний, маршрут и оценка поездок для сессии.
// @Tags Map
// @Produce json
// @Param zoom query int false "Уровень zoom карты (0-22)" default(10)
// @Success 200 {object} utils.SuccessResponse{data=domain.MapView}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/map [get]
func (h *MapHandler) GetView(c *fiber.Ctx) error {
	zoom := c.QueryInt("zoom", h.cfg.DefaultZoom)
	if !utils.ValidateZoom(zoom) {
		return utils.SendError(c, errors.ErrInvalidZoom)
	}

	view := h.mapUC.View(middleware.SessionID(c), zoom, c.Get(fiber.HeaderAcceptLanguage))
	return utils.SendSuccess(c, view, &utils.Meta{Total: len(view.Houses)})
}

// ClearSession godoc
// @Summary Сброс состояния сессии
// @Tags Map
// @Success 204
// @Router /api/v1/session [delete]
func (h *MapHandler) ClearSession(c *fiber.Ctx) error {
	h.mapUC.ClearSession(middleware.SessionID(c))
	return c.SendStatus(fiber.StatusNoContent)
}
