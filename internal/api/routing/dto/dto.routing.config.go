// Package routingdto chứa DTO cho domain Routing (tầng transport).
package routingdto

import (
	routingmodels "meta_notify/internal/api/routing/models"
)

// RoutingConfigCreateInput dùng cho tạo routing config (tầng transport)
type RoutingConfigCreateInput struct {
	Name                  string                       `json:"name" validate:"required,max=200"`
	CampaignID            string                       `json:"campaignId,omitempty" validate:"omitempty,max=255"`
	Cascade               []routingmodels.CascadeItem  `json:"cascade" validate:"omitempty,dive"`
	CascadeGroupOverrides []routingmodels.CascadeGroup `json:"cascadeGroupOverrides,omitempty" validate:"omitempty,dive"`
}

// RoutingConfigUpdateInput dùng cho cập nhật routing config nháp (tầng transport).
// LockNumber là bắt buộc: client phải gửi lại số khóa đã đọc để phát hiện ghi đè.
type RoutingConfigUpdateInput struct {
	Name                  string                       `json:"name,omitempty" validate:"omitempty,max=200"`
	CampaignID            *string                      `json:"campaignId,omitempty" validate:"omitempty,max=255"`
	Cascade               []routingmodels.CascadeItem  `json:"cascade" validate:"omitempty,dive"`
	CascadeGroupOverrides []routingmodels.CascadeGroup `json:"cascadeGroupOverrides,omitempty" validate:"omitempty,dive"`
	LockNumber            int64                        `json:"lockNumber" validate:"min=0"`
}

// RoutingConfigSubmitInput dùng cho thao tác đưa config vào sử dụng (tầng transport)
type RoutingConfigSubmitInput struct {
	LockNumber int64 `json:"lockNumber" validate:"min=0"`
}

// RoutingConfigDeleteInput dùng cho thao tác xóa mềm config (tầng transport)
type RoutingConfigDeleteInput struct {
	LockNumber int64 `json:"lockNumber" validate:"min=0"`
}
