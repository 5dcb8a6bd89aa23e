// Package models - Template thuộc domain Template (template directory).
package models

import (
	"time"

	routingmodels "meta_notify/internal/api/routing/models"
)

// Template là bản ghi trong template directory mà cascade tham chiếu tới.
// TemplateType dùng chung bộ giá trị với Channel của routing: một cascade item
// chỉ được trỏ tới template cùng kênh.
type Template struct {
	ID             string                       `json:"id" bson:"_id"`
	ClientID       string                       `json:"clientId" bson:"clientId"`
	Name           string                       `json:"name" bson:"name"`
	TemplateType   routingmodels.Channel        `json:"templateType" bson:"templateType"`
	TemplateStatus routingmodels.TemplateStatus `json:"templateStatus" bson:"templateStatus"`
	CreatedAt      time.Time                    `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time                    `json:"updatedAt" bson:"updatedAt"`
}

// UsableForDraft kiểm tra template có thể được một cascade DRAFT tham chiếu:
// mọi trạng thái trừ DELETED đều được phép khi còn nháp.
func (t *Template) UsableForDraft() bool {
	return t.TemplateStatus != routingmodels.TemplateStatusDeleted
}

// UsableForProduction kiểm tra template đủ điều kiện khi đưa config vào sử dụng.
// Template phải đã SUBMITTED; riêng kênh LETTER chấp nhận thêm PROOF_APPROVED.
func (t *Template) UsableForProduction() bool {
	if t.TemplateStatus == routingmodels.TemplateStatusSubmitted {
		return true
	}
	return t.TemplateType == routingmodels.ChannelLetter &&
		t.TemplateStatus == routingmodels.TemplateStatusProofApproved
}
