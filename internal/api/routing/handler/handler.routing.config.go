// Package routinghdl chứa các Fiber handler cho domain Routing.
package routinghdl

import (
	basehdl "meta_notify/internal/api/base/handler"
	"meta_notify/internal/api/middleware"
	routingdto "meta_notify/internal/api/routing/dto"
	routingmodels "meta_notify/internal/api/routing/models"
	routingsvc "meta_notify/internal/api/routing/service"
	"meta_notify/internal/common"

	"github.com/gofiber/fiber/v3"
)

// RoutingConfigHandler xử lý các request liên quan đến routing config
type RoutingConfigHandler struct {
	basehdl.BaseHandler
	service *routingsvc.RoutingConfigService
}

// NewRoutingConfigHandler tạo mới RoutingConfigHandler với service được cung cấp
func NewRoutingConfigHandler(service *routingsvc.RoutingConfigService) *RoutingConfigHandler {
	return &RoutingConfigHandler{
		service: service,
	}
}

// InsertOne tạo một routing config mới ở trạng thái DRAFT
func (h *RoutingConfigHandler) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input routingdto.RoutingConfigCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.service.Create(c.Context(), middleware.GetClientID(c), routingsvc.CreateInput{
			Name:                  input.Name,
			CampaignID:            input.CampaignID,
			Cascade:               input.Cascade,
			CascadeGroupOverrides: input.CascadeGroupOverrides,
		})
		h.HandleCreatedResponse(c, data, err)
		return nil
	})
}

// FindOneById trả về routing config theo ID trong URI
func (h *RoutingConfigHandler) FindOneById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := c.Params("id")
		if id == "" {
			h.HandleResponse(c, nil, common.ErrInvalidInput)
			return nil
		}

		data, err := h.service.Get(c.Context(), middleware.GetClientID(c), id)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// Find liệt kê routing config của client, tùy chọn lọc theo ?status=
func (h *RoutingConfigHandler) Find(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		status, err := parseStatusQuery(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.service.List(c.Context(), middleware.GetClientID(c), status)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// CountDocuments đếm routing config của client, tùy chọn lọc theo ?status=
func (h *RoutingConfigHandler) CountDocuments(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		status, err := parseStatusQuery(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		count, err := h.service.Count(c.Context(), middleware.GetClientID(c), status)
		h.HandleResponse(c, fiber.Map{"count": count}, err)
		return nil
	})
}

// UpdateById thay thế cascade của một config còn DRAFT (conditional write theo lockNumber)
func (h *RoutingConfigHandler) UpdateById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := c.Params("id")
		if id == "" {
			h.HandleResponse(c, nil, common.ErrInvalidInput)
			return nil
		}

		var input routingdto.RoutingConfigUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.service.UpdateDraft(c.Context(), middleware.GetClientID(c), id, routingsvc.UpdateInput{
			Name:                  input.Name,
			CampaignID:            input.CampaignID,
			Cascade:               input.Cascade,
			CascadeGroupOverrides: overridesPtr(input.CascadeGroupOverrides),
			LockNumber:            input.LockNumber,
		})
		h.HandleResponse(c, data, err)
		return nil
	})
}

// Submit đưa config vào sử dụng: DRAFT -> COMPLETED
func (h *RoutingConfigHandler) Submit(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := c.Params("id")
		if id == "" {
			h.HandleResponse(c, nil, common.ErrInvalidInput)
			return nil
		}

		var input routingdto.RoutingConfigSubmitInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.service.MoveToProduction(c.Context(), middleware.GetClientID(c), id, input.LockNumber)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// DeleteById xóa mềm một config còn DRAFT
func (h *RoutingConfigHandler) DeleteById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := c.Params("id")
		if id == "" {
			h.HandleResponse(c, nil, common.ErrInvalidInput)
			return nil
		}

		var input routingdto.RoutingConfigDeleteInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err := h.service.Delete(c.Context(), middleware.GetClientID(c), id, input.LockNumber)
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// FindByTemplate trả về các config đang tham chiếu tới một template
func (h *RoutingConfigHandler) FindByTemplate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		templateID := c.Params("templateId")
		if templateID == "" {
			h.HandleResponse(c, nil, common.ErrInvalidInput)
			return nil
		}

		data, err := h.service.ReferencingConfigs(c.Context(), middleware.GetClientID(c), templateID)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// parseStatusQuery đọc và validate query param ?status= (DRAFT hoặc COMPLETED)
func parseStatusQuery(c fiber.Ctx) (*routingmodels.RoutingStatus, error) {
	raw := c.Query("status", "")
	if raw == "" {
		return nil, nil
	}

	status := routingmodels.RoutingStatus(raw)
	switch status {
	case routingmodels.RoutingStatusDraft, routingmodels.RoutingStatusCompleted:
		return &status, nil
	}
	return nil, common.NewError(
		common.ErrCodeValidationInput,
		"Trạng thái lọc không hợp lệ, chỉ chấp nhận DRAFT hoặc COMPLETED",
		common.StatusBadRequest,
		nil,
	)
}

// overridesPtr chuyển slice overrides từ DTO sang pointer cho service:
// nil = không gửi lên (giữ nguyên), slice rỗng = xóa overrides
func overridesPtr(overrides []routingmodels.CascadeGroup) *[]routingmodels.CascadeGroup {
	if overrides == nil {
		return nil
	}
	return &overrides
}
