// Package routingsvc - Test kiểm tra cascade: cấu trúc, nhóm biến thể, tham chiếu template.
package routingsvc

import (
	"reflect"
	"testing"

	routingmodels "meta_notify/internal/api/routing/models"
	tmplmodels "meta_notify/internal/api/template/models"
	"meta_notify/internal/common"
)

// newTemplate tạo template fixture cho lookup
func newTemplate(id string, channel routingmodels.Channel, status routingmodels.TemplateStatus) *tmplmodels.Template {
	return &tmplmodels.Template{
		ID:             id,
		ClientID:       "client-1",
		Name:           "template " + id,
		TemplateType:   channel,
		TemplateStatus: status,
	}
}

// standardGroups là danh sách nhóm mặc định khi config không có overrides
func standardGroups() []routingmodels.CascadeGroup {
	return []routingmodels.CascadeGroup{{Name: routingmodels.CascadeGroupStandard}}
}

// defaultLookup chứa các template hợp lệ dùng chung cho nhiều test
func defaultLookup() map[string]*tmplmodels.Template {
	return map[string]*tmplmodels.Template{
		"tmpl-app":    newTemplate("tmpl-app", routingmodels.ChannelNHSApp, routingmodels.TemplateStatusSubmitted),
		"tmpl-email":  newTemplate("tmpl-email", routingmodels.ChannelEmail, routingmodels.TemplateStatusSubmitted),
		"tmpl-sms":    newTemplate("tmpl-sms", routingmodels.ChannelSMS, routingmodels.TemplateStatusSubmitted),
		"tmpl-letter": newTemplate("tmpl-letter", routingmodels.ChannelLetter, routingmodels.TemplateStatusSubmitted),
	}
}

func TestValidateCascade_EmptyCascade(t *testing.T) {
	// Nháp được phép lưu cascade rỗng
	if errs := ValidateCascade(nil, standardGroups(), nil, ModeDraft); len(errs) != 0 {
		t.Errorf("cascade rỗng phải hợp lệ ở mode draft, nhận được: %v", errs)
	}

	// Đưa vào sử dụng thì cascade phải có ít nhất một bậc
	errs := ValidateCascade(nil, standardGroups(), nil, ModeProduction)
	if len(errs) != 1 {
		t.Fatalf("cascade rỗng ở mode production phải trả về đúng 1 lỗi, nhận được %d: %v", len(errs), errs)
	}
	if errs[0].Field != "cascade" || errs[0].Code != common.FieldErrEmptyCascade {
		t.Errorf("lỗi không đúng, nhận được %+v", errs[0])
	}
}

func TestValidateCascade_ValidSingleItem(t *testing.T) {
	cascade := []routingmodels.CascadeItem{{
		CascadeGroups:     []routingmodels.CascadeGroupName{routingmodels.CascadeGroupStandard},
		Channel:           routingmodels.ChannelNHSApp,
		ChannelType:       routingmodels.ChannelTypePrimary,
		DefaultTemplateID: "tmpl-app",
	}}

	errs := ValidateCascade(cascade, standardGroups(), defaultLookup(), ModeDraft)
	if len(errs) != 0 {
		t.Errorf("cascade hợp lệ không được có lỗi, nhận được: %v", errs)
	}
}

func TestValidateCascade_MinimalStep(t *testing.T) {
	// Bậc tối giản: chỉ channel và template mặc định.
	// channelType vắng mặt được coi là primary, cascadeGroups vắng mặt là standard.
	cascade := []routingmodels.CascadeItem{{
		Channel:           routingmodels.ChannelSMS,
		DefaultTemplateID: "tmpl-sms",
	}}

	if errs := ValidateCascade(cascade, standardGroups(), defaultLookup(), ModeDraft); len(errs) != 0 {
		t.Errorf("bậc tối giản phải hợp lệ, nhận được: %v", errs)
	}

	// channelType vắng mặt và primary tường minh là cùng một bậc khi xét trùng lặp
	duplicated := []routingmodels.CascadeItem{
		{Channel: routingmodels.ChannelSMS, DefaultTemplateID: "tmpl-sms"},
		{
			Channel:           routingmodels.ChannelSMS,
			ChannelType:       routingmodels.ChannelTypePrimary,
			DefaultTemplateID: "tmpl-sms",
		},
	}
	errs := ValidateCascade(duplicated, standardGroups(), defaultLookup(), ModeDraft)
	if !hasFieldError(errs, "cascade[1].channel", common.FieldErrDuplicateChannel) {
		t.Errorf("thiếu lỗi DUPLICATE_CHANNEL khi channelType ngầm trùng primary, nhận được: %v", errs)
	}
}

func TestValidateCascade_ImplicitStandardGroup(t *testing.T) {
	// Bậc không khai báo cascadeGroups mặc nhiên thuộc nhóm standard
	cascade := []routingmodels.CascadeItem{{
		Channel:           routingmodels.ChannelSMS,
		ChannelType:       routingmodels.ChannelTypePrimary,
		DefaultTemplateID: "tmpl-sms",
	}}

	if errs := ValidateCascade(cascade, standardGroups(), defaultLookup(), ModeDraft); len(errs) != 0 {
		t.Errorf("bậc không khai báo nhóm phải hợp lệ khi standard có hiệu lực, nhận được: %v", errs)
	}

	// Nhưng khi overrides không còn nhóm standard thì membership ngầm là lỗi
	translationsOnly := []routingmodels.CascadeGroup{
		{Name: routingmodels.CascadeGroupTranslations, Languages: []string{"fr"}},
	}
	errs := ValidateCascade(cascade, translationsOnly, defaultLookup(), ModeDraft)
	if !hasFieldError(errs, "cascade[0].cascadeGroups", common.FieldErrUnknownCascadeGroup) {
		t.Errorf("thiếu lỗi UNKNOWN_CASCADE_GROUP cho membership ngầm, nhận được: %v", errs)
	}
}

func TestValidateCascade_InvalidChannel(t *testing.T) {
	cascade := []routingmodels.CascadeItem{{
		CascadeGroups:     []routingmodels.CascadeGroupName{routingmodels.CascadeGroupStandard},
		Channel:           routingmodels.Channel("PIGEON"),
		ChannelType:       routingmodels.ChannelTypePrimary,
		DefaultTemplateID: "tmpl-app",
	}}

	errs := ValidateCascade(cascade, standardGroups(), defaultLookup(), ModeDraft)
	if !hasFieldError(errs, "cascade[0].channel", common.FieldErrInvalidChannel) {
		t.Errorf("thiếu lỗi INVALID_CHANNEL tại cascade[0].channel, nhận được: %v", errs)
	}
}

func TestValidateCascade_DuplicateChannelPair(t *testing.T) {
	item := routingmodels.CascadeItem{
		CascadeGroups:     []routingmodels.CascadeGroupName{routingmodels.CascadeGroupStandard},
		Channel:           routingmodels.ChannelEmail,
		ChannelType:       routingmodels.ChannelTypePrimary,
		DefaultTemplateID: "tmpl-email",
	}
	cascade := []routingmodels.CascadeItem{item, item}

	errs := ValidateCascade(cascade, standardGroups(), defaultLookup(), ModeDraft)
	if !hasFieldError(errs, "cascade[1].channel", common.FieldErrDuplicateChannel) {
		t.Errorf("thiếu lỗi DUPLICATE_CHANNEL tại cascade[1].channel, nhận được: %v", errs)
	}
}

func TestValidateCascade_SameChannelDifferentType(t *testing.T) {
	// LETTER primary và LETTER secondary là hai bậc hợp lệ, không tính trùng lặp
	cascade := []routingmodels.CascadeItem{
		{
			CascadeGroups:     []routingmodels.CascadeGroupName{routingmodels.CascadeGroupStandard},
			Channel:           routingmodels.ChannelLetter,
			ChannelType:       routingmodels.ChannelTypePrimary,
			DefaultTemplateID: "tmpl-letter",
		},
		{
			CascadeGroups:     []routingmodels.CascadeGroupName{routingmodels.CascadeGroupStandard},
			Channel:           routingmodels.ChannelLetter,
			ChannelType:       routingmodels.ChannelTypeSecondary,
			DefaultTemplateID: "tmpl-letter",
		},
	}

	errs := ValidateCascade(cascade, standardGroups(), defaultLookup(), ModeDraft)
	if len(errs) != 0 {
		t.Errorf("cùng channel khác channelType không được có lỗi, nhận được: %v", errs)
	}
}

func TestValidateCascade_UnknownCascadeGroup(t *testing.T) {
	// Item tham gia nhóm translations nhưng config chỉ khai báo standard
	cascade := []routingmodels.CascadeItem{{
		CascadeGroups:     []routingmodels.CascadeGroupName{routingmodels.CascadeGroupTranslations},
		Channel:           routingmodels.ChannelSMS,
		ChannelType:       routingmodels.ChannelTypePrimary,
		DefaultTemplateID: "tmpl-sms",
	}}

	errs := ValidateCascade(cascade, standardGroups(), defaultLookup(), ModeDraft)
	if !hasFieldError(errs, "cascade[0].cascadeGroups[0]", common.FieldErrUnknownCascadeGroup) {
		t.Errorf("thiếu lỗi UNKNOWN_CASCADE_GROUP, nhận được: %v", errs)
	}
}

func TestValidateCascade_MissingTemplate(t *testing.T) {
	cascade := []routingmodels.CascadeItem{{
		CascadeGroups: []routingmodels.CascadeGroupName{routingmodels.CascadeGroupStandard},
		Channel:       routingmodels.ChannelNHSApp,
		ChannelType:   routingmodels.ChannelTypePrimary,
	}}

	errs := ValidateCascade(cascade, standardGroups(), defaultLookup(), ModeDraft)
	if !hasFieldError(errs, "cascade[0]", common.FieldErrMissingTemplate) {
		t.Errorf("thiếu lỗi MISSING_TEMPLATE tại cascade[0], nhận được: %v", errs)
	}
}

func TestValidateCascade_ConditionalTemplates(t *testing.T) {
	groups := []routingmodels.CascadeGroup{
		{Name: routingmodels.CascadeGroupStandard},
		{Name: routingmodels.CascadeGroupTranslations, Languages: []string{"fr", "pl"}},
		{Name: routingmodels.CascadeGroupAccessible, AccessibleFormats: []string{"braille"}},
	}

	t.Run("điều kiện language hợp lệ", func(t *testing.T) {
		cascade := []routingmodels.CascadeItem{{
			CascadeGroups: []routingmodels.CascadeGroupName{
				routingmodels.CascadeGroupStandard,
				routingmodels.CascadeGroupTranslations,
			},
			Channel:           routingmodels.ChannelEmail,
			ChannelType:       routingmodels.ChannelTypePrimary,
			DefaultTemplateID: "tmpl-email",
			ConditionalTemplates: []routingmodels.ConditionalTemplate{
				{Language: "fr", TemplateID: "tmpl-email"},
			},
		}}

		errs := ValidateCascade(cascade, groups, defaultLookup(), ModeDraft)
		if len(errs) != 0 {
			t.Errorf("conditional hợp lệ không được có lỗi, nhận được: %v", errs)
		}
	})

	t.Run("language không nằm trong nhóm", func(t *testing.T) {
		cascade := []routingmodels.CascadeItem{{
			CascadeGroups: []routingmodels.CascadeGroupName{
				routingmodels.CascadeGroupStandard,
				routingmodels.CascadeGroupTranslations,
			},
			Channel:           routingmodels.ChannelEmail,
			ChannelType:       routingmodels.ChannelTypePrimary,
			DefaultTemplateID: "tmpl-email",
			ConditionalTemplates: []routingmodels.ConditionalTemplate{
				{Language: "de", TemplateID: "tmpl-email"},
			},
		}}

		errs := ValidateCascade(cascade, groups, defaultLookup(), ModeDraft)
		if !hasFieldError(errs, "cascade[0].conditionalTemplates[0].language", common.FieldErrInvalidCondition) {
			t.Errorf("thiếu lỗi INVALID_CONDITION cho language lạ, nhận được: %v", errs)
		}
	})

	t.Run("mang cả hai điều kiện", func(t *testing.T) {
		cascade := []routingmodels.CascadeItem{{
			CascadeGroups: []routingmodels.CascadeGroupName{
				routingmodels.CascadeGroupStandard,
				routingmodels.CascadeGroupTranslations,
				routingmodels.CascadeGroupAccessible,
			},
			Channel:           routingmodels.ChannelLetter,
			ChannelType:       routingmodels.ChannelTypePrimary,
			DefaultTemplateID: "tmpl-letter",
			ConditionalTemplates: []routingmodels.ConditionalTemplate{
				{Language: "fr", AccessibleFormat: "braille", TemplateID: "tmpl-letter"},
			},
		}}

		errs := ValidateCascade(cascade, groups, defaultLookup(), ModeDraft)
		if !hasFieldError(errs, "cascade[0].conditionalTemplates[0]", common.FieldErrInvalidCondition) {
			t.Errorf("thiếu lỗi INVALID_CONDITION khi mang cả hai điều kiện, nhận được: %v", errs)
		}
	})

	t.Run("không mang điều kiện nào", func(t *testing.T) {
		cascade := []routingmodels.CascadeItem{{
			CascadeGroups: []routingmodels.CascadeGroupName{
				routingmodels.CascadeGroupStandard,
				routingmodels.CascadeGroupAccessible,
			},
			Channel:     routingmodels.ChannelLetter,
			ChannelType: routingmodels.ChannelTypePrimary,
			ConditionalTemplates: []routingmodels.ConditionalTemplate{
				{TemplateID: "tmpl-letter"},
			},
		}}

		errs := ValidateCascade(cascade, groups, defaultLookup(), ModeDraft)
		if !hasFieldError(errs, "cascade[0].conditionalTemplates[0]", common.FieldErrInvalidCondition) {
			t.Errorf("thiếu lỗi INVALID_CONDITION khi không có điều kiện, nhận được: %v", errs)
		}
	})
}

func TestValidateCascade_NoDefaultTemplate(t *testing.T) {
	groups := []routingmodels.CascadeGroup{
		{Name: routingmodels.CascadeGroupTranslations, Languages: []string{"fr", "pl"}},
	}

	t.Run("conditional phủ kín mọi ngôn ngữ thì không cần default", func(t *testing.T) {
		cascade := []routingmodels.CascadeItem{{
			CascadeGroups: []routingmodels.CascadeGroupName{routingmodels.CascadeGroupTranslations},
			Channel:       routingmodels.ChannelEmail,
			ChannelType:   routingmodels.ChannelTypePrimary,
			ConditionalTemplates: []routingmodels.ConditionalTemplate{
				{Language: "fr", TemplateID: "tmpl-email"},
				{Language: "pl", TemplateID: "tmpl-email"},
			},
		}}

		if errs := ValidateCascade(cascade, groups, defaultLookup(), ModeDraft); len(errs) != 0 {
			t.Errorf("bộ conditional phủ kín không được có lỗi, nhận được: %v", errs)
		}
	})

	t.Run("conditional thiếu một ngôn ngữ thì bắt buộc default", func(t *testing.T) {
		cascade := []routingmodels.CascadeItem{{
			CascadeGroups: []routingmodels.CascadeGroupName{routingmodels.CascadeGroupTranslations},
			Channel:       routingmodels.ChannelEmail,
			ChannelType:   routingmodels.ChannelTypePrimary,
			ConditionalTemplates: []routingmodels.ConditionalTemplate{
				{Language: "fr", TemplateID: "tmpl-email"},
			},
		}}

		errs := ValidateCascade(cascade, groups, defaultLookup(), ModeDraft)
		if !hasFieldError(errs, "cascade[0]", common.FieldErrMissingTemplate) {
			t.Errorf("thiếu lỗi MISSING_TEMPLATE khi conditional không phủ kín, nhận được: %v", errs)
		}
	})

	t.Run("bậc thuộc nhóm standard luôn cần default", func(t *testing.T) {
		withStandard := append(groups, routingmodels.CascadeGroup{Name: routingmodels.CascadeGroupStandard})
		cascade := []routingmodels.CascadeItem{{
			CascadeGroups: []routingmodels.CascadeGroupName{
				routingmodels.CascadeGroupStandard,
				routingmodels.CascadeGroupTranslations,
			},
			Channel:     routingmodels.ChannelEmail,
			ChannelType: routingmodels.ChannelTypePrimary,
			ConditionalTemplates: []routingmodels.ConditionalTemplate{
				{Language: "fr", TemplateID: "tmpl-email"},
				{Language: "pl", TemplateID: "tmpl-email"},
			},
		}}

		errs := ValidateCascade(cascade, withStandard, defaultLookup(), ModeDraft)
		if !hasFieldError(errs, "cascade[0]", common.FieldErrMissingTemplate) {
			t.Errorf("nhóm standard không có điều kiện nên phải có default, nhận được: %v", errs)
		}
	})
}

func TestValidateCascade_GroupStructure(t *testing.T) {
	// Nhóm translations không khai báo languages là lỗi cấu trúc
	groups := []routingmodels.CascadeGroup{
		{Name: routingmodels.CascadeGroupTranslations},
	}
	cascade := []routingmodels.CascadeItem{{
		CascadeGroups:     []routingmodels.CascadeGroupName{routingmodels.CascadeGroupTranslations},
		Channel:           routingmodels.ChannelSMS,
		ChannelType:       routingmodels.ChannelTypePrimary,
		DefaultTemplateID: "tmpl-sms",
	}}

	errs := ValidateCascade(cascade, groups, defaultLookup(), ModeDraft)
	if !hasFieldError(errs, "cascadeGroupOverrides[0].languages", common.FieldErrInvalidCondition) {
		t.Errorf("thiếu lỗi cấu trúc nhóm translations rỗng, nhận được: %v", errs)
	}
}

func TestValidateCascade_TemplateChecks(t *testing.T) {
	lookup := defaultLookup()
	lookup["tmpl-deleted"] = newTemplate("tmpl-deleted", routingmodels.ChannelSMS, routingmodels.TemplateStatusDeleted)

	cases := []struct {
		name       string
		templateID string
		channel    routingmodels.Channel
		wantCode   string
	}{
		{"template không tồn tại", "tmpl-missing", routingmodels.ChannelSMS, common.FieldErrTemplateNotFound},
		{"template sai kênh", "tmpl-email", routingmodels.ChannelSMS, common.FieldErrTemplateMismatch},
		{"template đã xóa", "tmpl-deleted", routingmodels.ChannelSMS, common.FieldErrTemplateDeleted},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cascade := []routingmodels.CascadeItem{{
				CascadeGroups:     []routingmodels.CascadeGroupName{routingmodels.CascadeGroupStandard},
				Channel:           tc.channel,
				ChannelType:       routingmodels.ChannelTypePrimary,
				DefaultTemplateID: tc.templateID,
			}}

			errs := ValidateCascade(cascade, standardGroups(), lookup, ModeDraft)
			if !hasFieldError(errs, "cascade[0].defaultTemplateId", tc.wantCode) {
				t.Errorf("thiếu lỗi %s, nhận được: %v", tc.wantCode, errs)
			}
		})
	}
}

func TestValidateCascade_ProductionMode(t *testing.T) {
	lookup := map[string]*tmplmodels.Template{
		"tmpl-draft":        newTemplate("tmpl-draft", routingmodels.ChannelEmail, routingmodels.TemplateStatusNotYetSubmitted),
		"tmpl-letter-proof": newTemplate("tmpl-letter-proof", routingmodels.ChannelLetter, routingmodels.TemplateStatusProofApproved),
		"tmpl-email-proof":  newTemplate("tmpl-email-proof", routingmodels.ChannelEmail, routingmodels.TemplateStatusProofApproved),
	}

	t.Run("NOT_YET_SUBMITTED chấp nhận ở draft, chặn ở production", func(t *testing.T) {
		cascade := []routingmodels.CascadeItem{{
			CascadeGroups:     []routingmodels.CascadeGroupName{routingmodels.CascadeGroupStandard},
			Channel:           routingmodels.ChannelEmail,
			ChannelType:       routingmodels.ChannelTypePrimary,
			DefaultTemplateID: "tmpl-draft",
		}}

		if errs := ValidateCascade(cascade, standardGroups(), lookup, ModeDraft); len(errs) != 0 {
			t.Errorf("mode draft không được chặn template NOT_YET_SUBMITTED, nhận được: %v", errs)
		}
		errs := ValidateCascade(cascade, standardGroups(), lookup, ModeProduction)
		if !hasFieldError(errs, "cascade[0].defaultTemplateId", common.FieldErrTemplateNotUsable) {
			t.Errorf("mode production phải chặn template NOT_YET_SUBMITTED, nhận được: %v", errs)
		}
	})

	t.Run("PROOF_APPROVED chỉ đủ điều kiện với LETTER", func(t *testing.T) {
		letterCascade := []routingmodels.CascadeItem{{
			CascadeGroups:     []routingmodels.CascadeGroupName{routingmodels.CascadeGroupStandard},
			Channel:           routingmodels.ChannelLetter,
			ChannelType:       routingmodels.ChannelTypePrimary,
			DefaultTemplateID: "tmpl-letter-proof",
		}}
		if errs := ValidateCascade(letterCascade, standardGroups(), lookup, ModeProduction); len(errs) != 0 {
			t.Errorf("LETTER PROOF_APPROVED phải đủ điều kiện production, nhận được: %v", errs)
		}

		emailCascade := []routingmodels.CascadeItem{{
			CascadeGroups:     []routingmodels.CascadeGroupName{routingmodels.CascadeGroupStandard},
			Channel:           routingmodels.ChannelEmail,
			ChannelType:       routingmodels.ChannelTypePrimary,
			DefaultTemplateID: "tmpl-email-proof",
		}}
		errs := ValidateCascade(emailCascade, standardGroups(), lookup, ModeProduction)
		if !hasFieldError(errs, "cascade[0].defaultTemplateId", common.FieldErrTemplateNotUsable) {
			t.Errorf("EMAIL PROOF_APPROVED phải bị chặn ở production, nhận được: %v", errs)
		}
	})
}

func TestValidateCascade_Deterministic(t *testing.T) {
	// Cascade có nhiều lỗi: hai lần chạy phải cho cùng danh sách, đúng thứ tự khai báo
	cascade := []routingmodels.CascadeItem{
		{
			CascadeGroups: []routingmodels.CascadeGroupName{routingmodels.CascadeGroupStandard},
			Channel:       routingmodels.Channel("PIGEON"),
			ChannelType:   routingmodels.ChannelTypePrimary,
		},
		{
			CascadeGroups:     []routingmodels.CascadeGroupName{routingmodels.CascadeGroupTranslations},
			Channel:           routingmodels.ChannelEmail,
			ChannelType:       routingmodels.ChannelTypePrimary,
			DefaultTemplateID: "tmpl-missing",
		},
	}

	first := ValidateCascade(cascade, standardGroups(), defaultLookup(), ModeDraft)
	second := ValidateCascade(cascade, standardGroups(), defaultLookup(), ModeDraft)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("hai lần validate cho kết quả khác nhau:\n%v\n%v", first, second)
	}

	// Lỗi của cascade[0] phải đứng trước lỗi của cascade[1]
	idx0, idx1 := -1, -1
	for i, e := range first {
		if e.Field == "cascade[0].channel" && idx0 == -1 {
			idx0 = i
		}
		if e.Field == "cascade[1].defaultTemplateId" {
			idx1 = i
		}
	}
	if idx0 == -1 || idx1 == -1 || idx0 > idx1 {
		t.Errorf("thứ tự lỗi không theo thứ tự cascade: %v", first)
	}
}

func TestReferencedTemplateIDs(t *testing.T) {
	cascade := []routingmodels.CascadeItem{
		{
			DefaultTemplateID: "tmpl-a",
			ConditionalTemplates: []routingmodels.ConditionalTemplate{
				{Language: "fr", TemplateID: "tmpl-b"},
				{Language: "pl", TemplateID: "tmpl-a"}, // trùng với default
			},
		},
		{
			DefaultTemplateID: "tmpl-b", // trùng với conditional của bậc trước
		},
		{
			DefaultTemplateID: "tmpl-c",
		},
	}

	got := ReferencedTemplateIDs(cascade)
	want := []string{"tmpl-a", "tmpl-b", "tmpl-c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("danh sách template tham chiếu sai: muốn %v, nhận được %v", want, got)
	}

	if got := ReferencedTemplateIDs(nil); len(got) != 0 {
		t.Errorf("cascade rỗng phải trả về danh sách rỗng, nhận được %v", got)
	}
}

// hasFieldError kiểm tra danh sách lỗi có chứa (field, code)
func hasFieldError(errs common.FieldErrors, field, code string) bool {
	for _, e := range errs {
		if e.Field == field && e.Code == code {
			return true
		}
	}
	return false
}
