// Package tmplsvc chứa business logic của domain Template (template directory).
package tmplsvc

import (
	"context"

	basesvc "meta_notify/internal/api/base/service"
	routingmodels "meta_notify/internal/api/routing/models"
	tmplmodels "meta_notify/internal/api/template/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TemplateDirectory là hợp đồng tra cứu template cho việc validate cascade.
// GetByIDs trả về map template ID -> template; ID không tồn tại thì vắng mặt
// trong map (caller tự quy thành TEMPLATE_NOT_FOUND).
type TemplateDirectory interface {
	Get(ctx context.Context, clientID, id string) (tmplmodels.Template, error)
	GetByIDs(ctx context.Context, clientID string, ids []string) (map[string]*tmplmodels.Template, error)
	List(ctx context.Context, clientID string, status *routingmodels.TemplateStatus) ([]tmplmodels.Template, error)
}

// TemplateService là cấu trúc chứa các phương thức liên quan đến Template trên MongoDB
type TemplateService struct {
	*basesvc.BaseServiceMongoImpl[tmplmodels.Template]
}

// NewTemplateService tạo mới TemplateService từ collection được cung cấp
func NewTemplateService(collection *mongo.Collection) *TemplateService {
	return &TemplateService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[tmplmodels.Template](collection),
	}
}

// Get tìm một template theo (clientID, id)
func (s *TemplateService) Get(ctx context.Context, clientID, id string) (tmplmodels.Template, error) {
	return s.FindOne(ctx, bson.M{"_id": id, "clientId": clientID}, nil)
}

// GetByIDs tra cứu nhiều template một lượt theo danh sách ID ($in).
// Template của client khác không được trả về.
func (s *TemplateService) GetByIDs(ctx context.Context, clientID string, ids []string) (map[string]*tmplmodels.Template, error) {
	result := make(map[string]*tmplmodels.Template, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	templates, err := s.Find(ctx, bson.M{
		"_id":      bson.M{"$in": ids},
		"clientId": clientID,
	}, nil)
	if err != nil {
		return nil, err
	}

	for i := range templates {
		result[templates[i].ID] = &templates[i]
	}
	return result, nil
}

// List liệt kê template của client, tùy chọn lọc theo trạng thái
func (s *TemplateService) List(ctx context.Context, clientID string, status *routingmodels.TemplateStatus) ([]tmplmodels.Template, error) {
	filter := bson.M{"clientId": clientID}
	if status != nil {
		filter["templateStatus"] = *status
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.Find(ctx, filter, opts)
}
