package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/zhytomyr-tourism/internal/pkg/errors"
	"github.com/zhytomyr-tourism/internal/pkg/utils"
	"github.com/zhytomyr-tourism/internal/usecase"
	"github.com/zhytomyr-tourism/internal/usecase/dto"
	"go.uber.org/zap"
)

// DistrictHandler обрабатывает запросы к справочнику районов
type DistrictHandler struct {
	districtUC *usecase.DistrictUseCase
	logger     *zap.Logger
}

// NewDistrictHandler создает новый экземпляр DistrictHandler
func NewDistrictHandler(districtUC *usecase.DistrictUseCase, logger *zap.Logger) *DistrictHandler {
	return &DistrictHandler{
		districtUC: districtUC,
		logger:     logger,
	}
}

// ListDistricts godoc
// @Summary List districts
// @Description Районы области в объявленном порядке
// @Tags Districts
// @Produce json
// @Param boundary query bool false "Включить контур района"
// @Success 200 {object} utils.SuccessResponse{data=[]dto.DistrictResponse}
// @Router /api/v1/districts [get]
func (h *DistrictHandler) ListDistricts(c *fiber.Ctx) error {
	districts := h.districtUC.ListDistricts(c.UserContext(), c.QueryBool("boundary", false))
	return utils.SendSuccess(c, districts, &utils.Meta{Total: len(districts)})
}

// GetDistrict godoc
// @Summary Get district
// @Description Район с контуром по идентификатору
// @Tags Districts
// @Produce json
// @Param id path string true "District ID"
// @Success 200 {object} utils.SuccessResponse{data=dto.DistrictResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/districts/{id} [get]
func (h *DistrictHandler) GetDistrict(c *fiber.Ctx) error {
	d, err := h.districtUC.GetDistrict(c.UserContext(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, d, nil)
}

// ResolveDistrict godoc
// @Summary Resolve district by point
// @Description Определяет район, содержащий точку. Вне всех районов возвращается status=none.
// @Tags Districts
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Param nearest query bool false "Подсказать ближайший район для точки вне районов"
// @Success 200 {object} utils.SuccessResponse{data=dto.ResolveDistrictResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/districts/resolve [get]
func (h *DistrictHandler) ResolveDistrict(c *fiber.Ctx) error {
	var req dto.ResolveDistrictRequest
	if err := c.QueryParser(&req); err != nil {
		h.logger.Debug("Invalid resolve query", zap.Error(err))
		return utils.SendError(c, errors.ErrInvalidCoordinates)
	}

	resp, err := h.districtUC.ResolveDistrict(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, nil)
}
