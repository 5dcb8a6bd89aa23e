// Package tmplhdl chứa các Fiber handler cho domain Template.
package tmplhdl

import (
	basehdl "meta_notify/internal/api/base/handler"
	"meta_notify/internal/api/middleware"
	routingmodels "meta_notify/internal/api/routing/models"
	tmplsvc "meta_notify/internal/api/template/service"
	"meta_notify/internal/common"

	"github.com/gofiber/fiber/v3"
)

// TemplateHandler xử lý các request đọc template directory
type TemplateHandler struct {
	basehdl.BaseHandler
	directory tmplsvc.TemplateDirectory
}

// NewTemplateHandler tạo mới TemplateHandler với directory được cung cấp
func NewTemplateHandler(directory tmplsvc.TemplateDirectory) *TemplateHandler {
	return &TemplateHandler{
		directory: directory,
	}
}

// FindOneById trả về template theo ID trong URI
func (h *TemplateHandler) FindOneById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := c.Params("id")
		if id == "" {
			h.HandleResponse(c, nil, common.ErrInvalidInput)
			return nil
		}

		data, err := h.directory.Get(c.Context(), middleware.GetClientID(c), id)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// Find liệt kê template của client, tùy chọn lọc theo ?status=
func (h *TemplateHandler) Find(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		status, err := parseTemplateStatusQuery(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.directory.List(c.Context(), middleware.GetClientID(c), status)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// parseTemplateStatusQuery đọc và validate query param ?status= của template
func parseTemplateStatusQuery(c fiber.Ctx) (*routingmodels.TemplateStatus, error) {
	raw := c.Query("status", "")
	if raw == "" {
		return nil, nil
	}

	status := routingmodels.TemplateStatus(raw)
	switch status {
	case routingmodels.TemplateStatusNotYetSubmitted,
		routingmodels.TemplateStatusSubmitted,
		routingmodels.TemplateStatusDeleted,
		routingmodels.TemplateStatusProofApproved:
		return &status, nil
	}
	return nil, common.NewError(
		common.ErrCodeValidationInput,
		"Trạng thái template không hợp lệ",
		common.StatusBadRequest,
		nil,
	)
}
