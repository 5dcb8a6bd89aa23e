// Package routingsvc chứa business logic của domain Routing.
// File này là phần kiểm tra cấu trúc cascade: thứ tự kênh, nhóm biến thể
// và các tham chiếu template của một message plan.
package routingsvc

import (
	"fmt"

	routingmodels "meta_notify/internal/api/routing/models"
	tmplmodels "meta_notify/internal/api/template/models"
	"meta_notify/internal/common"
)

// ValidationMode phân biệt mức kiểm tra cascade
type ValidationMode int

const (
	// ModeDraft: kiểm tra khi tạo/sửa nháp - template chỉ cần tồn tại,
	// đúng kênh và chưa bị xóa
	ModeDraft ValidationMode = iota
	// ModeProduction: kiểm tra khi đưa vào sử dụng - template còn phải
	// ở trạng thái SUBMITTED (LETTER chấp nhận thêm PROOF_APPROVED)
	ModeProduction
)

// channelKey định danh một bậc cascade theo cặp (channel, channelType).
// Hai bậc trùng cả cặp mới tính là trùng lặp; LETTER primary và LETTER
// secondary là hai bậc hợp lệ.
type channelKey struct {
	channel     routingmodels.Channel
	channelType routingmodels.ChannelType
}

// ValidateCascade kiểm tra toàn bộ cascade theo thứ tự xác định và trả về
// danh sách lỗi theo field. Hàm thuần túy: mọi template cần tra cứu phải có
// sẵn trong lookup (map template ID -> template, nil value = không tồn tại).
//
// Thứ tự kiểm tra cố định để thông báo lỗi ổn định giữa các lần gọi:
//  1. cascade không rỗng (chỉ bắt buộc ở mode production; nháp được phép rỗng)
//  2. cấu trúc các nhóm biến thể (overrides)
//  3. từng bậc theo thứ tự khai báo: channel, channelType, cascadeGroups,
//     template mặc định rồi đến các template theo điều kiện
func ValidateCascade(
	cascade []routingmodels.CascadeItem,
	groups []routingmodels.CascadeGroup,
	lookup map[string]*tmplmodels.Template,
	mode ValidationMode,
) common.FieldErrors {
	var errs common.FieldErrors

	// 1. Cascade rỗng: nháp được lưu rỗng, đưa vào sử dụng thì không
	if len(cascade) == 0 && mode == ModeProduction {
		errs = append(errs, common.FieldError{Field: "cascade", Code: common.FieldErrEmptyCascade})
	}

	// 2. Kiểm tra cấu trúc từng nhóm biến thể
	declaredGroups := make(map[routingmodels.CascadeGroupName]*routingmodels.CascadeGroup, len(groups))
	for i := range groups {
		g := &groups[i]
		path := fmt.Sprintf("cascadeGroupOverrides[%d]", i)
		if !g.Name.IsValid() {
			errs = append(errs, common.FieldError{Field: path + ".name", Code: common.FieldErrUnknownCascadeGroup})
			continue
		}
		switch g.Name {
		case routingmodels.CascadeGroupTranslations:
			// Nhóm translations phải liệt kê ít nhất một ngôn ngữ
			if len(g.Languages) == 0 {
				errs = append(errs, common.FieldError{Field: path + ".languages", Code: common.FieldErrInvalidCondition})
			}
		case routingmodels.CascadeGroupAccessible:
			// Nhóm accessible phải liệt kê ít nhất một định dạng
			if len(g.AccessibleFormats) == 0 {
				errs = append(errs, common.FieldError{Field: path + ".accessibleFormats", Code: common.FieldErrInvalidCondition})
			}
		}
		declaredGroups[g.Name] = g
	}

	// 3. Kiểm tra từng bậc cascade theo thứ tự khai báo
	seen := make(map[channelKey]bool, len(cascade))
	for i := range cascade {
		item := &cascade[i]
		path := fmt.Sprintf("cascade[%d]", i)

		if !item.Channel.IsValid() {
			errs = append(errs, common.FieldError{Field: path + ".channel", Code: common.FieldErrInvalidChannel})
		}
		channelType := item.EffectiveChannelType()
		if !channelType.IsValid() {
			errs = append(errs, common.FieldError{Field: path + ".channelType", Code: common.FieldErrInvalidChannel})
		}

		// Trùng lặp cặp (channel, channelType) trong cùng cascade
		key := channelKey{channel: item.Channel, channelType: channelType}
		if item.Channel.IsValid() && channelType.IsValid() {
			if seen[key] {
				errs = append(errs, common.FieldError{Field: path + ".channel", Code: common.FieldErrDuplicateChannel})
			}
			seen[key] = true
		}

		// Các nhóm bậc này tham gia phải được khai báo trong danh sách nhóm
		// hiệu lực. Bậc không khai báo nhóm nào thì mặc nhiên thuộc nhóm standard.
		memberNames := item.CascadeGroups
		implicitMembership := false
		if len(memberNames) == 0 {
			memberNames = []routingmodels.CascadeGroupName{routingmodels.CascadeGroupStandard}
			implicitMembership = true
		}
		itemGroups := make(map[routingmodels.CascadeGroupName]*routingmodels.CascadeGroup, len(memberNames))
		for j, name := range memberNames {
			g, ok := declaredGroups[name]
			if !ok {
				field := fmt.Sprintf("%s.cascadeGroups[%d]", path, j)
				if implicitMembership {
					field = path + ".cascadeGroups"
				}
				errs = append(errs, common.FieldError{Field: field, Code: common.FieldErrUnknownCascadeGroup})
				continue
			}
			itemGroups[name] = g
		}

		// Bậc phải có template mặc định, trừ khi bộ conditional phủ kín
		// mọi biến thể của các nhóm bậc này tham gia
		if item.DefaultTemplateID == "" && !conditionalsCoverAllVariants(item, itemGroups) {
			errs = append(errs, common.FieldError{Field: path, Code: common.FieldErrMissingTemplate})
			if len(item.ConditionalTemplates) == 0 {
				continue
			}
		}

		if item.DefaultTemplateID != "" {
			errs = append(errs, validateTemplateRef(
				path+".defaultTemplateId", item.DefaultTemplateID, item.Channel, lookup, mode)...)
		}

		for j := range item.ConditionalTemplates {
			ct := &item.ConditionalTemplates[j]
			ctPath := fmt.Sprintf("%s.conditionalTemplates[%d]", path, j)

			errs = append(errs, validateCondition(ctPath, ct, itemGroups)...)
			errs = append(errs, validateTemplateRef(
				ctPath+".templateId", ct.TemplateID, item.Channel, lookup, mode)...)
		}
	}

	return errs
}

// conditionalsCoverAllVariants kiểm tra bộ conditional của bậc phủ kín mọi
// biến thể mà các nhóm của bậc khai báo. Chỉ khi phủ kín, bậc mới được phép
// thiếu template mặc định. Bậc thuộc nhóm standard luôn cần default vì nhóm
// standard là trường hợp không điều kiện.
func conditionalsCoverAllVariants(
	item *routingmodels.CascadeItem,
	itemGroups map[routingmodels.CascadeGroupName]*routingmodels.CascadeGroup,
) bool {
	if len(itemGroups) == 0 {
		return false
	}
	if _, ok := itemGroups[routingmodels.CascadeGroupStandard]; ok {
		return false
	}

	coveredLanguages := make(map[string]bool)
	coveredFormats := make(map[string]bool)
	for i := range item.ConditionalTemplates {
		ct := &item.ConditionalTemplates[i]
		if ct.Language != "" {
			coveredLanguages[ct.Language] = true
		}
		if ct.AccessibleFormat != "" {
			coveredFormats[ct.AccessibleFormat] = true
		}
	}

	if g, ok := itemGroups[routingmodels.CascadeGroupTranslations]; ok {
		for _, lang := range g.Languages {
			if !coveredLanguages[lang] {
				return false
			}
		}
	}
	if g, ok := itemGroups[routingmodels.CascadeGroupAccessible]; ok {
		for _, format := range g.AccessibleFormats {
			if !coveredFormats[format] {
				return false
			}
		}
	}
	return true
}

// validateCondition kiểm tra một conditional template mang đúng một điều kiện,
// và điều kiện đó nằm trong biến thể mà các nhóm của bậc này khai báo.
func validateCondition(
	path string,
	ct *routingmodels.ConditionalTemplate,
	itemGroups map[routingmodels.CascadeGroupName]*routingmodels.CascadeGroup,
) common.FieldErrors {
	hasLanguage := ct.Language != ""
	hasFormat := ct.AccessibleFormat != ""

	// Đúng một điều kiện: không điều kiện hoặc cả hai đều là lỗi
	if hasLanguage == hasFormat {
		return common.FieldErrors{{Field: path, Code: common.FieldErrInvalidCondition}}
	}

	if hasLanguage {
		g, ok := itemGroups[routingmodels.CascadeGroupTranslations]
		if !ok || !containsString(g.Languages, ct.Language) {
			return common.FieldErrors{{Field: path + ".language", Code: common.FieldErrInvalidCondition}}
		}
		return nil
	}

	g, ok := itemGroups[routingmodels.CascadeGroupAccessible]
	if !ok || !containsString(g.AccessibleFormats, ct.AccessibleFormat) {
		return common.FieldErrors{{Field: path + ".accessibleFormat", Code: common.FieldErrInvalidCondition}}
	}
	return nil
}

// validateTemplateRef kiểm tra một tham chiếu template: tồn tại, đúng kênh,
// chưa bị xóa, và đủ trạng thái khi ở mode production.
func validateTemplateRef(
	path string,
	templateID string,
	channel routingmodels.Channel,
	lookup map[string]*tmplmodels.Template,
	mode ValidationMode,
) common.FieldErrors {
	if templateID == "" {
		return common.FieldErrors{{Field: path, Code: common.FieldErrMissingTemplate}}
	}

	tmpl, ok := lookup[templateID]
	if !ok || tmpl == nil {
		return common.FieldErrors{{Field: path, Code: common.FieldErrTemplateNotFound}}
	}

	if tmpl.TemplateStatus == routingmodels.TemplateStatusDeleted {
		return common.FieldErrors{{Field: path, Code: common.FieldErrTemplateDeleted}}
	}

	if tmpl.TemplateType != channel {
		return common.FieldErrors{{Field: path, Code: common.FieldErrTemplateMismatch}}
	}

	if mode == ModeProduction && !tmpl.UsableForProduction() {
		return common.FieldErrors{{Field: path, Code: common.FieldErrTemplateNotUsable}}
	}

	return nil
}

// ReferencedTemplateIDs trả về danh sách template ID duy nhất mà cascade
// tham chiếu, theo thứ tự xuất hiện đầu tiên.
func ReferencedTemplateIDs(cascade []routingmodels.CascadeItem) []string {
	seen := make(map[string]bool)
	ids := make([]string, 0)
	for i := range cascade {
		item := &cascade[i]
		if item.DefaultTemplateID != "" && !seen[item.DefaultTemplateID] {
			seen[item.DefaultTemplateID] = true
			ids = append(ids, item.DefaultTemplateID)
		}
		for j := range item.ConditionalTemplates {
			id := item.ConditionalTemplates[j].TemplateID
			if id != "" && !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	return ids
}

func containsString(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
