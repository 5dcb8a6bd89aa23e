package routingsvc

import (
	"context"
	"sort"
	"sync"

	basesvc "meta_notify/internal/api/base/service"
	routingmodels "meta_notify/internal/api/routing/models"
	"meta_notify/internal/common"
)

// RoutingConfigMemoryStore triển khai RoutingConfigStore trên bộ nhớ.
// Dùng cho test và chạy local không có MongoDB. Các thao tác giữ cùng
// semantics với RoutingConfigMongoStore, đặc biệt là conditional write.
type RoutingConfigMemoryStore struct {
	mu      sync.Mutex
	configs map[string]routingmodels.RoutingConfig // key: id
}

// NewRoutingConfigMemoryStore tạo mới RoutingConfigMemoryStore
func NewRoutingConfigMemoryStore() *RoutingConfigMemoryStore {
	return &RoutingConfigMemoryStore{
		configs: make(map[string]routingmodels.RoutingConfig),
	}
}

// Insert thêm mới một routing config
func (s *RoutingConfigMemoryStore) Insert(_ context.Context, cfg routingmodels.RoutingConfig) (routingmodels.RoutingConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.configs[cfg.ID]; exists {
		return routingmodels.RoutingConfig{}, common.ErrDuplicate
	}
	s.configs[cfg.ID] = cfg
	return cfg, nil
}

// Get tìm config theo (clientID, id). Bản ghi DELETED trả về ErrNotFound.
func (s *RoutingConfigMemoryStore) Get(_ context.Context, clientID, id string) (routingmodels.RoutingConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getLocked(clientID, id)
}

func (s *RoutingConfigMemoryStore) getLocked(clientID, id string) (routingmodels.RoutingConfig, error) {
	cfg, ok := s.configs[id]
	if !ok || cfg.ClientID != clientID || cfg.Status == routingmodels.RoutingStatusDeleted {
		return routingmodels.RoutingConfig{}, common.ErrNotFound
	}
	return cfg, nil
}

// List liệt kê config của client, tùy chọn lọc theo status, mới tạo trước
func (s *RoutingConfigMemoryStore) List(_ context.Context, clientID string, status *routingmodels.RoutingStatus) ([]routingmodels.RoutingConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	results := make([]routingmodels.RoutingConfig, 0)
	for _, cfg := range s.configs {
		if !matchesListFilter(&cfg, clientID, status) {
			continue
		}
		results = append(results, cfg)
	}
	sort.Slice(results, func(i, j int) bool {
		if !results[i].CreatedAt.Equal(results[j].CreatedAt) {
			return results[i].CreatedAt.After(results[j].CreatedAt)
		}
		return results[i].ID < results[j].ID
	})
	return results, nil
}

// Count đếm config của client, tùy chọn lọc theo status
func (s *RoutingConfigMemoryStore) Count(_ context.Context, clientID string, status *routingmodels.RoutingStatus) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int64
	for _, cfg := range s.configs {
		if matchesListFilter(&cfg, clientID, status) {
			count++
		}
	}
	return count, nil
}

// FindByTemplateID tìm các config đang tham chiếu tới một template
func (s *RoutingConfigMemoryStore) FindByTemplateID(_ context.Context, clientID, templateID string) ([]routingmodels.RoutingConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	results := make([]routingmodels.RoutingConfig, 0)
	for _, cfg := range s.configs {
		if cfg.ClientID != clientID || cfg.Status == routingmodels.RoutingStatusDeleted {
			continue
		}
		for _, ref := range cfg.TemplateReferences {
			if ref == templateID {
				results = append(results, cfg)
				break
			}
		}
	}
	sort.Slice(results, func(i, j int) bool {
		if !results[i].CreatedAt.Equal(results[j].CreatedAt) {
			return results[i].CreatedAt.After(results[j].CreatedAt)
		}
		return results[i].ID < results[j].ID
	})
	return results, nil
}

// matchesListFilter kiểm tra config khớp filter của List/Count.
// Bản ghi DELETED không bao giờ khớp, kể cả khi lọc tường minh.
func matchesListFilter(cfg *routingmodels.RoutingConfig, clientID string, status *routingmodels.RoutingStatus) bool {
	if cfg.ClientID != clientID || cfg.Status == routingmodels.RoutingStatusDeleted {
		return false
	}
	if status != nil && cfg.Status != *status {
		return false
	}
	return true
}

// UpdateWithLock ghi đè config với điều kiện còn DRAFT và lockNumber khớp.
// Cùng cách phân loại thất bại với store MongoDB.
func (s *RoutingConfigMemoryStore) UpdateWithLock(_ context.Context, clientID, id string, expectedLock int64, patch RoutingConfigPatch) (routingmodels.RoutingConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.getLocked(clientID, id)
	if err != nil {
		return routingmodels.RoutingConfig{}, err
	}
	if current.Status == routingmodels.RoutingStatusCompleted {
		return routingmodels.RoutingConfig{}, common.ErrAlreadySubmitted
	}
	if current.LockNumber != expectedLock {
		return routingmodels.RoutingConfig{}, common.ErrLockConflict
	}

	if patch.Name != nil {
		current.Name = *patch.Name
	}
	if patch.CampaignID != nil {
		current.CampaignID = *patch.CampaignID
	}
	if patch.Cascade != nil {
		current.Cascade = patch.Cascade
		current.TemplateReferences = patch.TemplateReferences
	}
	if patch.CascadeGroupOverrides != nil {
		current.CascadeGroupOverrides = *patch.CascadeGroupOverrides
	}
	if patch.Status != nil {
		current.Status = *patch.Status
	}
	current.LockNumber++
	current.UpdatedAt = basesvc.Now()

	s.configs[id] = current
	return current, nil
}
