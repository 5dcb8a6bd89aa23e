package tmplsvc

import (
	"context"
	"sort"
	"sync"

	routingmodels "meta_notify/internal/api/routing/models"
	tmplmodels "meta_notify/internal/api/template/models"
	"meta_notify/internal/common"
)

// TemplateMemoryDirectory triển khai TemplateDirectory trên bộ nhớ.
// Dùng cho test và chạy local không có MongoDB.
type TemplateMemoryDirectory struct {
	mu        sync.Mutex
	templates map[string]tmplmodels.Template // key: id
}

// NewTemplateMemoryDirectory tạo mới TemplateMemoryDirectory
func NewTemplateMemoryDirectory() *TemplateMemoryDirectory {
	return &TemplateMemoryDirectory{
		templates: make(map[string]tmplmodels.Template),
	}
}

// Put thêm hoặc ghi đè một template (chỉ dùng để chuẩn bị dữ liệu)
func (s *TemplateMemoryDirectory) Put(tmpl tmplmodels.Template) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.templates[tmpl.ID] = tmpl
}

// Get tìm một template theo (clientID, id)
func (s *TemplateMemoryDirectory) Get(_ context.Context, clientID, id string) (tmplmodels.Template, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tmpl, ok := s.templates[id]
	if !ok || tmpl.ClientID != clientID {
		return tmplmodels.Template{}, common.ErrNotFound
	}
	return tmpl, nil
}

// GetByIDs tra cứu nhiều template một lượt; ID không tồn tại vắng mặt trong map
func (s *TemplateMemoryDirectory) GetByIDs(_ context.Context, clientID string, ids []string) (map[string]*tmplmodels.Template, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make(map[string]*tmplmodels.Template, len(ids))
	for _, id := range ids {
		tmpl, ok := s.templates[id]
		if !ok || tmpl.ClientID != clientID {
			continue
		}
		copied := tmpl
		result[id] = &copied
	}
	return result, nil
}

// List liệt kê template của client, tùy chọn lọc theo trạng thái
func (s *TemplateMemoryDirectory) List(_ context.Context, clientID string, status *routingmodels.TemplateStatus) ([]tmplmodels.Template, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	results := make([]tmplmodels.Template, 0)
	for _, tmpl := range s.templates {
		if tmpl.ClientID != clientID {
			continue
		}
		if status != nil && tmpl.TemplateStatus != *status {
			continue
		}
		results = append(results, tmpl)
	}
	sort.Slice(results, func(i, j int) bool {
		if !results[i].CreatedAt.Equal(results[j].CreatedAt) {
			return results[i].CreatedAt.After(results[j].CreatedAt)
		}
		return results[i].ID < results[j].ID
	})
	return results, nil
}
