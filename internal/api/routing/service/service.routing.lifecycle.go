package routingsvc

import (
	"context"

	routingmodels "meta_notify/internal/api/routing/models"
	tmplmodels "meta_notify/internal/api/template/models"
	tmplsvc "meta_notify/internal/api/template/service"
	"meta_notify/internal/common"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	basesvc "meta_notify/internal/api/base/service"
)

// RoutingConfigService điều phối vòng đời của routing config:
// DRAFT -> COMPLETED (một chiều), DRAFT -> DELETED (tombstone).
// Mọi lần ghi đều validate trước rồi ghi có điều kiện qua store;
// phiên ghi trước thắng, phiên sau nhận lỗi CONFLICT.
type RoutingConfigService struct {
	store     RoutingConfigStore
	templates tmplsvc.TemplateDirectory
	log       *logrus.Logger
}

// NewRoutingConfigService tạo mới RoutingConfigService với các phụ thuộc được cung cấp
func NewRoutingConfigService(store RoutingConfigStore, templates tmplsvc.TemplateDirectory, log *logrus.Logger) *RoutingConfigService {
	return &RoutingConfigService{
		store:     store,
		templates: templates,
		log:       log,
	}
}

// CreateInput là tham số domain cho thao tác tạo mới
type CreateInput struct {
	Name                  string
	CampaignID            string
	Cascade               []routingmodels.CascadeItem
	CascadeGroupOverrides []routingmodels.CascadeGroup
}

// UpdateInput là tham số domain cho thao tác cập nhật nháp.
// Cascade luôn thay thế toàn bộ; overrides nil = giữ nguyên.
type UpdateInput struct {
	Name                  string
	CampaignID            *string
	Cascade               []routingmodels.CascadeItem
	CascadeGroupOverrides *[]routingmodels.CascadeGroup
	LockNumber            int64
}

// Create tạo một routing config mới ở trạng thái DRAFT.
// Cascade được validate ở mức nháp trước khi ghi; nhóm mặc định là "standard".
func (s *RoutingConfigService) Create(ctx context.Context, clientID string, input CreateInput) (routingmodels.RoutingConfig, error) {
	cfg := routingmodels.RoutingConfig{
		ID:                    uuid.NewString(),
		ClientID:              clientID,
		CampaignID:            input.CampaignID,
		Name:                  input.Name,
		Status:                routingmodels.RoutingStatusDraft,
		Cascade:               input.Cascade,
		CascadeGroupOverrides: input.CascadeGroupOverrides,
		DefaultCascadeGroup:   routingmodels.CascadeGroupStandard,
		LockNumber:            0,
		TemplateReferences:    ReferencedTemplateIDs(input.Cascade),
	}
	now := basesvc.Now()
	cfg.CreatedAt = now
	cfg.UpdatedAt = now

	if err := s.validate(ctx, clientID, cfg.Cascade, cfg.EffectiveGroups(), ModeDraft); err != nil {
		return routingmodels.RoutingConfig{}, err
	}

	created, err := s.store.Insert(ctx, cfg)
	if err != nil {
		return routingmodels.RoutingConfig{}, err
	}

	s.log.WithFields(logrus.Fields{
		"routingConfigId": created.ID,
		"clientId":        clientID,
	}).Info("Đã tạo routing config mới")
	return created, nil
}

// Get trả về một config theo (clientID, id); bản ghi DELETED coi như không tồn tại
func (s *RoutingConfigService) Get(ctx context.Context, clientID, id string) (routingmodels.RoutingConfig, error) {
	return s.store.Get(ctx, clientID, id)
}

// List liệt kê config của client, tùy chọn lọc theo status.
// Lọc theo DELETED luôn trả về danh sách rỗng: tombstone không bao giờ lộ ra ngoài.
func (s *RoutingConfigService) List(ctx context.Context, clientID string, status *routingmodels.RoutingStatus) ([]routingmodels.RoutingConfig, error) {
	if status != nil && *status == routingmodels.RoutingStatusDeleted {
		return []routingmodels.RoutingConfig{}, nil
	}
	return s.store.List(ctx, clientID, status)
}

// Count đếm config của client, tùy chọn lọc theo status
func (s *RoutingConfigService) Count(ctx context.Context, clientID string, status *routingmodels.RoutingStatus) (int64, error) {
	if status != nil && *status == routingmodels.RoutingStatusDeleted {
		return 0, nil
	}
	return s.store.Count(ctx, clientID, status)
}

// UpdateDraft thay thế cascade (và tùy chọn overrides, name, campaignId) của
// một config còn DRAFT. Validate chạy trên nội dung mới trước khi ghi; lần ghi
// là conditional write theo lockNumber nên phiên cập nhật chậm hơn sẽ nhận
// lỗi CONFLICT thay vì ghi đè nhau.
func (s *RoutingConfigService) UpdateDraft(ctx context.Context, clientID, id string, input UpdateInput) (routingmodels.RoutingConfig, error) {
	current, err := s.store.Get(ctx, clientID, id)
	if err != nil {
		return routingmodels.RoutingConfig{}, err
	}
	if current.Status == routingmodels.RoutingStatusCompleted {
		return routingmodels.RoutingConfig{}, common.ErrAlreadySubmitted
	}

	// Nhóm hiệu lực cho validate: overrides mới nếu gửi lên, không thì giữ nhóm hiện tại
	next := current
	if input.CascadeGroupOverrides != nil {
		next.CascadeGroupOverrides = *input.CascadeGroupOverrides
	}
	if err := s.validate(ctx, clientID, input.Cascade, next.EffectiveGroups(), ModeDraft); err != nil {
		return routingmodels.RoutingConfig{}, err
	}

	patch := RoutingConfigPatch{
		Cascade:               input.Cascade,
		TemplateReferences:    ReferencedTemplateIDs(input.Cascade),
		CascadeGroupOverrides: input.CascadeGroupOverrides,
		CampaignID:            input.CampaignID,
	}
	if input.Name != "" {
		patch.Name = &input.Name
	}

	updated, err := s.store.UpdateWithLock(ctx, clientID, id, input.LockNumber, patch)
	if err != nil {
		return routingmodels.RoutingConfig{}, err
	}

	s.log.WithFields(logrus.Fields{
		"routingConfigId": id,
		"clientId":        clientID,
		"lockNumber":      updated.LockNumber,
	}).Info("Đã cập nhật routing config nháp")
	return updated, nil
}

// MoveToProduction chuyển config từ DRAFT sang COMPLETED.
// Yêu cầu campaignId đã có và mọi template tham chiếu đạt trạng thái
// production (SUBMITTED, hoặc PROOF_APPROVED với kênh LETTER).
// COMPLETED là trạng thái cuối: không quay lại DRAFT, không sửa tiếp.
func (s *RoutingConfigService) MoveToProduction(ctx context.Context, clientID, id string, lockNumber int64) (routingmodels.RoutingConfig, error) {
	current, err := s.store.Get(ctx, clientID, id)
	if err != nil {
		return routingmodels.RoutingConfig{}, err
	}
	if current.Status == routingmodels.RoutingStatusCompleted {
		return routingmodels.RoutingConfig{}, common.ErrAlreadySubmitted
	}

	var errs common.FieldErrors
	if current.CampaignID == "" {
		errs = append(errs, common.FieldError{Field: "campaignId", Code: common.FieldErrMissingCampaignID})
	}

	lookup, err := s.lookupTemplates(ctx, clientID, current.Cascade)
	if err != nil {
		return routingmodels.RoutingConfig{}, err
	}
	errs = append(errs, ValidateCascade(current.Cascade, current.EffectiveGroups(), lookup, ModeProduction)...)
	if len(errs) > 0 {
		return routingmodels.RoutingConfig{}, common.NewValidationError(errs)
	}

	status := routingmodels.RoutingStatusCompleted
	updated, err := s.store.UpdateWithLock(ctx, clientID, id, lockNumber, RoutingConfigPatch{Status: &status})
	if err != nil {
		return routingmodels.RoutingConfig{}, err
	}

	s.log.WithFields(logrus.Fields{
		"routingConfigId": id,
		"clientId":        clientID,
	}).Info("Đã đưa routing config vào sử dụng")
	return updated, nil
}

// Delete xóa mềm một config còn DRAFT: chuyển sang DELETED, bản ghi ở lại
// trong DB nhưng mọi API đọc/ghi về sau coi như không tồn tại.
// Config đã COMPLETED không xóa được.
func (s *RoutingConfigService) Delete(ctx context.Context, clientID, id string, lockNumber int64) error {
	status := routingmodels.RoutingStatusDeleted
	_, err := s.store.UpdateWithLock(ctx, clientID, id, lockNumber, RoutingConfigPatch{Status: &status})
	if err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"routingConfigId": id,
		"clientId":        clientID,
	}).Info("Đã xóa routing config nháp")
	return nil
}

// ReferencingConfigs trả về tóm tắt các config đang tham chiếu tới một
// template. Dùng cho kiểm tra "template đang được N message plan sử dụng"
// trước khi xóa template.
func (s *RoutingConfigService) ReferencingConfigs(ctx context.Context, clientID, templateID string) ([]routingmodels.RoutingConfigSummary, error) {
	configs, err := s.store.FindByTemplateID(ctx, clientID, templateID)
	if err != nil {
		return nil, err
	}

	summaries := make([]routingmodels.RoutingConfigSummary, 0, len(configs))
	for i := range configs {
		summaries = append(summaries, configs[i].Summary())
	}
	return summaries, nil
}

// validate prefetch các template cascade tham chiếu rồi chạy kiểm tra thuần túy.
// Trả về lỗi VALIDATION khi có bất kỳ lỗi field nào.
func (s *RoutingConfigService) validate(
	ctx context.Context,
	clientID string,
	cascade []routingmodels.CascadeItem,
	groups []routingmodels.CascadeGroup,
	mode ValidationMode,
) error {
	lookup, err := s.lookupTemplates(ctx, clientID, cascade)
	if err != nil {
		return err
	}
	if errs := ValidateCascade(cascade, groups, lookup, mode); len(errs) > 0 {
		return common.NewValidationError(errs)
	}
	return nil
}

// lookupTemplates tra cứu một lượt mọi template mà cascade tham chiếu
func (s *RoutingConfigService) lookupTemplates(ctx context.Context, clientID string, cascade []routingmodels.CascadeItem) (map[string]*tmplmodels.Template, error) {
	return s.templates.GetByIDs(ctx, clientID, ReferencedTemplateIDs(cascade))
}
