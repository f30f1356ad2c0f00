package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/commute-map/internal/pkg/errors"
	"github.com/commute-map/internal/pkg/utils"
	"github.com/commute-map/internal/pkg/validator"
	"github.com/commute-map/internal/usecase"
	"github.com/commute-map/internal/usecase/dto"
)

// CommuteHandler - обработчик оценки поездок
type CommuteHandler struct {
	presenter *usecase.DistancePresenter
}

// NewCommuteHandler - создание нового CommuteHandler
func NewCommuteHandler(presenter *usecase.DistancePresenter) *CommuteHandler {
	return &CommuteHandler{presenter: presenter}
}

// Estimate godoc
// @Summary Годовая оценка поездок
// @Description Дни за рулем и стоимость топлива в год для одного участка. shown=false, если нет расстояния или времени.
// @Tags Commute
// @Accept json
// @Produce json
// @Param request body dto.CommuteEstimateRequest true "Расстояние и время участка"
// @Success 200 {object} utils.SuccessResponse{data=dto.CommuteEstimateResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/commute/estimate [post]
func (h *CommuteHandler) Estimate(c *fiber.Ctx) error {
	var req dto.CommuteEstimateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	locale := req.Locale
	if locale == "" {
		locale = c.Get(fiber.HeaderAcceptLanguage)
	}

	summary := h.presenter.Present(req.Leg(), locale)
	return utils.SendSuccess(c, dto.CommuteEstimateResponse{
		Shown:   summary != nil,
		Summary: summary,
	}, nil)
}
