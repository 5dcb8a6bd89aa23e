// Package models - RoutingConfig (message plan) thuộc domain Routing.
package models

import (
	"time"
)

// Channel là kênh gửi thông báo
type Channel string

const (
	ChannelNHSApp Channel = "NHSAPP"
	ChannelEmail  Channel = "EMAIL"
	ChannelSMS    Channel = "SMS"
	ChannelLetter Channel = "LETTER"
)

// IsValid kiểm tra channel hợp lệ
func (c Channel) IsValid() bool {
	switch c {
	case ChannelNHSApp, ChannelEmail, ChannelSMS, ChannelLetter:
		return true
	}
	return false
}

// ChannelType phân biệt kênh chính và kênh dự phòng trong một bậc cascade
type ChannelType string

const (
	ChannelTypePrimary   ChannelType = "primary"
	ChannelTypeSecondary ChannelType = "secondary"
)

// IsValid kiểm tra loại channel hợp lệ
func (t ChannelType) IsValid() bool {
	return t == ChannelTypePrimary || t == ChannelTypeSecondary
}

// CascadeGroupName là tên nhóm cascade được hệ thống nhận biết
type CascadeGroupName string

const (
	CascadeGroupStandard     CascadeGroupName = "standard"
	CascadeGroupTranslations CascadeGroupName = "translations"
	CascadeGroupAccessible   CascadeGroupName = "accessible"
)

// IsValid kiểm tra tên nhóm cascade hợp lệ
func (n CascadeGroupName) IsValid() bool {
	switch n {
	case CascadeGroupStandard, CascadeGroupTranslations, CascadeGroupAccessible:
		return true
	}
	return false
}

// RoutingStatus là trạng thái vòng đời của một routing config
type RoutingStatus string

const (
	RoutingStatusDraft     RoutingStatus = "DRAFT"
	RoutingStatusCompleted RoutingStatus = "COMPLETED"
	// RoutingStatusDeleted là tombstone soft-delete: bản ghi còn trong DB
	// nhưng mọi API đọc/ghi đều coi như không tồn tại
	RoutingStatusDeleted RoutingStatus = "DELETED"
)

// TemplateStatus là trạng thái của template trong template directory
type TemplateStatus string

const (
	TemplateStatusNotYetSubmitted TemplateStatus = "NOT_YET_SUBMITTED"
	TemplateStatusSubmitted       TemplateStatus = "SUBMITTED"
	TemplateStatusDeleted         TemplateStatus = "DELETED"
	TemplateStatusProofApproved   TemplateStatus = "PROOF_APPROVED"
)

// CascadeGroup khai báo một biến thể nội dung mà message plan hỗ trợ.
// Nhóm "translations" phải liệt kê languages, nhóm "accessible" phải liệt kê
// accessibleFormats; nhóm "standard" không mang điều kiện.
type CascadeGroup struct {
	Name              CascadeGroupName `json:"name" bson:"name" validate:"required,cascade_group_name"`
	Languages         []string         `json:"languages,omitempty" bson:"languages,omitempty"`
	AccessibleFormats []string         `json:"accessibleFormats,omitempty" bson:"accessibleFormats,omitempty"`
}

// ConditionalTemplate gắn một template với đúng một điều kiện biến thể
// (language hoặc accessibleFormat).
type ConditionalTemplate struct {
	Language         string `json:"language,omitempty" bson:"language,omitempty"`
	AccessibleFormat string `json:"accessibleFormat,omitempty" bson:"accessibleFormat,omitempty"`
	TemplateID       string `json:"templateId" bson:"templateId" validate:"required"`
}

// CascadeItem là một bậc trong thứ tự fallback của message plan.
// Mỗi item trỏ tới template mặc định và/hoặc các template theo điều kiện.
// Không khai báo cascadeGroups thì bậc mặc nhiên thuộc nhóm standard;
// không khai báo channelType thì coi là primary.
type CascadeItem struct {
	CascadeGroups        []CascadeGroupName    `json:"cascadeGroups,omitempty" bson:"cascadeGroups,omitempty" validate:"omitempty,dive,cascade_group_name"`
	Channel              Channel               `json:"channel" bson:"channel" validate:"required,channel"`
	ChannelType          ChannelType           `json:"channelType,omitempty" bson:"channelType,omitempty" validate:"omitempty,channel_type"`
	DefaultTemplateID    string                `json:"defaultTemplateId,omitempty" bson:"defaultTemplateId,omitempty"`
	ConditionalTemplates []ConditionalTemplate `json:"conditionalTemplates,omitempty" bson:"conditionalTemplates,omitempty" validate:"omitempty,dive"`
	// FallbackConditions mô tả các điều kiện gửi thất bại khiến cascade
	// chuyển sang bậc kế tiếp; nội dung phụ thuộc kênh, hệ thống không diễn giải
	FallbackConditions []string `json:"fallbackConditions,omitempty" bson:"fallbackConditions,omitempty"`
}

// EffectiveChannelType trả về channelType của bậc, mặc định primary khi không khai báo
func (ci *CascadeItem) EffectiveChannelType() ChannelType {
	if ci.ChannelType == "" {
		return ChannelTypePrimary
	}
	return ci.ChannelType
}

// RoutingConfig là một message plan: thứ tự kênh và template dùng để gửi
// một loại thông điệp cho một client.
// ID là UUID dạng chuỗi, lockNumber dùng cho optimistic locking.
type RoutingConfig struct {
	ID                    string           `json:"id" bson:"_id"`
	ClientID              string           `json:"clientId" bson:"clientId"`
	CampaignID            string           `json:"campaignId,omitempty" bson:"campaignId,omitempty"`
	Name                  string           `json:"name" bson:"name"`
	Status                RoutingStatus    `json:"status" bson:"status"`
	Cascade               []CascadeItem    `json:"cascade" bson:"cascade"`
	CascadeGroupOverrides []CascadeGroup   `json:"cascadeGroupOverrides,omitempty" bson:"cascadeGroupOverrides,omitempty"`
	DefaultCascadeGroup   CascadeGroupName `json:"defaultCascadeGroup" bson:"defaultCascadeGroup"`
	LockNumber            int64            `json:"lockNumber" bson:"lockNumber"`
	// TemplateReferences là danh sách template ID duy nhất được cascade tham chiếu,
	// được tính lại mỗi lần ghi để phục vụ tra cứu ngược theo template
	TemplateReferences []string  `json:"-" bson:"templateReferences"`
	CreatedAt          time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt" bson:"updatedAt"`
}

// RoutingConfigSummary là bản tóm tắt của một config, dùng cho tra cứu
// ngược theo template ("template này đang được những message plan nào dùng")
type RoutingConfigSummary struct {
	ID     string        `json:"id" bson:"_id"`
	Name   string        `json:"name" bson:"name"`
	Status RoutingStatus `json:"status" bson:"status"`
}

// Summary trả về bản tóm tắt của config
func (rc *RoutingConfig) Summary() RoutingConfigSummary {
	return RoutingConfigSummary{
		ID:     rc.ID,
		Name:   rc.Name,
		Status: rc.Status,
	}
}

// EffectiveGroups trả về danh sách nhóm cascade có hiệu lực của config:
// overrides nếu được khai báo, ngược lại là nhóm mặc định.
func (rc *RoutingConfig) EffectiveGroups() []CascadeGroup {
	if len(rc.CascadeGroupOverrides) > 0 {
		return rc.CascadeGroupOverrides
	}
	return []CascadeGroup{{Name: rc.DefaultCascadeGroup}}
}
