package tmplsvc

import (
	"context"
	"errors"
	"testing"
	"time"

	routingmodels "meta_notify/internal/api/routing/models"
	tmplmodels "meta_notify/internal/api/template/models"
	"meta_notify/internal/common"
)

func seedDirectory() *TemplateMemoryDirectory {
	directory := NewTemplateMemoryDirectory()
	directory.Put(tmplmodels.Template{
		ID:             "tmpl-1",
		ClientID:       "client-1",
		Name:           "Template email",
		TemplateType:   routingmodels.ChannelEmail,
		TemplateStatus: routingmodels.TemplateStatusSubmitted,
		CreatedAt:      time.Unix(100, 0),
	})
	directory.Put(tmplmodels.Template{
		ID:             "tmpl-2",
		ClientID:       "client-1",
		Name:           "Template SMS",
		TemplateType:   routingmodels.ChannelSMS,
		TemplateStatus: routingmodels.TemplateStatusNotYetSubmitted,
		CreatedAt:      time.Unix(200, 0),
	})
	directory.Put(tmplmodels.Template{
		ID:             "tmpl-other",
		ClientID:       "client-2",
		Name:           "Template của client khác",
		TemplateType:   routingmodels.ChannelEmail,
		TemplateStatus: routingmodels.TemplateStatusSubmitted,
		CreatedAt:      time.Unix(300, 0),
	})
	return directory
}

func TestTemplateMemoryDirectory_Get(t *testing.T) {
	directory := seedDirectory()
	ctx := context.Background()

	tmpl, err := directory.Get(ctx, "client-1", "tmpl-1")
	if err != nil {
		t.Fatalf("Get tmpl-1 thất bại: %v", err)
	}
	if tmpl.Name != "Template email" {
		t.Errorf("tên template sai: %q", tmpl.Name)
	}

	// Template của client khác coi như không tồn tại
	if _, err := directory.Get(ctx, "client-1", "tmpl-other"); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("template của client khác phải trả về ErrNotFound, nhận được: %v", err)
	}
	if _, err := directory.Get(ctx, "client-1", "tmpl-missing"); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("template không tồn tại phải trả về ErrNotFound, nhận được: %v", err)
	}
}

func TestTemplateMemoryDirectory_GetByIDs(t *testing.T) {
	directory := seedDirectory()

	// ID không tồn tại hoặc thuộc client khác vắng mặt trong map, không lỗi
	lookup, err := directory.GetByIDs(context.Background(), "client-1",
		[]string{"tmpl-1", "tmpl-2", "tmpl-other", "tmpl-missing"})
	if err != nil {
		t.Fatalf("GetByIDs thất bại: %v", err)
	}
	if len(lookup) != 2 {
		t.Fatalf("muốn 2 template, nhận được %d: %v", len(lookup), lookup)
	}
	if lookup["tmpl-1"] == nil || lookup["tmpl-2"] == nil {
		t.Errorf("thiếu template của client-1 trong kết quả: %v", lookup)
	}
	if _, ok := lookup["tmpl-other"]; ok {
		t.Errorf("template của client khác không được xuất hiện trong kết quả")
	}
}

func TestTemplateMemoryDirectory_List(t *testing.T) {
	directory := seedDirectory()
	ctx := context.Background()

	all, err := directory.List(ctx, "client-1", nil)
	if err != nil {
		t.Fatalf("List thất bại: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("muốn 2 template, nhận được %d", len(all))
	}
	// Mới tạo trước
	if all[0].ID != "tmpl-2" || all[1].ID != "tmpl-1" {
		t.Errorf("thứ tự sai: %s, %s", all[0].ID, all[1].ID)
	}

	status := routingmodels.TemplateStatusSubmitted
	submitted, err := directory.List(ctx, "client-1", &status)
	if err != nil {
		t.Fatalf("List theo status thất bại: %v", err)
	}
	if len(submitted) != 1 || submitted[0].ID != "tmpl-1" {
		t.Errorf("lọc theo SUBMITTED sai: %v", submitted)
	}
}

func TestTemplateUsability(t *testing.T) {
	cases := []struct {
		name           string
		channel        routingmodels.Channel
		status         routingmodels.TemplateStatus
		wantDraft      bool
		wantProduction bool
	}{
		{"SUBMITTED dùng được cả hai mức", routingmodels.ChannelEmail, routingmodels.TemplateStatusSubmitted, true, true},
		{"NOT_YET_SUBMITTED chỉ dùng được cho nháp", routingmodels.ChannelEmail, routingmodels.TemplateStatusNotYetSubmitted, true, false},
		{"DELETED không dùng được ở đâu", routingmodels.ChannelEmail, routingmodels.TemplateStatusDeleted, false, false},
		{"LETTER PROOF_APPROVED đủ điều kiện production", routingmodels.ChannelLetter, routingmodels.TemplateStatusProofApproved, true, true},
		{"EMAIL PROOF_APPROVED không đủ điều kiện production", routingmodels.ChannelEmail, routingmodels.TemplateStatusProofApproved, true, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tmpl := tmplmodels.Template{TemplateType: tc.channel, TemplateStatus: tc.status}
			if got := tmpl.UsableForDraft(); got != tc.wantDraft {
				t.Errorf("UsableForDraft = %v, muốn %v", got, tc.wantDraft)
			}
			if got := tmpl.UsableForProduction(); got != tc.wantProduction {
				t.Errorf("UsableForProduction = %v, muốn %v", got, tc.wantProduction)
			}
		})
	}
}
