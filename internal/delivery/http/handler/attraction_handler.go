package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/zhytomyr-tourism/internal/pkg/errors"
	"github.com/zhytomyr-tourism/internal/pkg/utils"
	"github.com/zhytomyr-tourism/internal/usecase"
	"github.com/zhytomyr-tourism/internal/usecase/dto"
	"go.uber.org/zap"
)

// AttractionHandler - выдача объектов для карты
type AttractionHandler struct {
	attractionUC *usecase.AttractionUseCase
	logger       *zap.Logger
}

// NewAttractionHandler создает новый экземпляр AttractionHandler
func NewAttractionHandler(attractionUC *usecase.AttractionUseCase, logger *zap.Logger) *AttractionHandler {
	return &AttractionHandler{
		attractionUC: attractionUC,
		logger:       logger,
	}
}

// ListAttractions godoc
// @Summary List attractions
// @Description Объекты текущего снимка с кластером и районом. district=none - объекты вне районов.
// @Tags Attractions
// @Produce json
// @Param category query string false "Cluster id or unknown"
// @Param district query string false "District id or none"
// @Param limit query int false "Page size (default 100, max 1000)"
// @Param offset query int false "Offset"
// @Success 200 {object} utils.SuccessResponse{data=dto.AttractionListResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/attractions [get]
func (h *AttractionHandler) ListAttractions(c *fiber.Ctx) error {
	var req dto.AttractionListRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	resp, err := h.attractionUC.ListAttractions(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, snapshotMeta(resp.SnapshotInfo, resp.Total))
}
