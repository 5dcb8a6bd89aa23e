package routingsvc

import (
	"context"
	"errors"

	basesvc "meta_notify/internal/api/base/service"
	routingmodels "meta_notify/internal/api/routing/models"
	"meta_notify/internal/common"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RoutingConfigPatch mô tả các thay đổi của một lần ghi có điều kiện.
// Field nil = giữ nguyên giá trị hiện tại.
type RoutingConfigPatch struct {
	Name                  *string
	CampaignID            *string
	Cascade               []routingmodels.CascadeItem
	CascadeGroupOverrides *[]routingmodels.CascadeGroup
	Status                *routingmodels.RoutingStatus
	// TemplateReferences phải được set cùng lúc với Cascade để index tra cứu
	// ngược theo template luôn khớp với nội dung cascade
	TemplateReferences []string
}

// RoutingConfigStore là hợp đồng lưu trữ cho routing config.
// Mọi thao tác đều scope theo clientID; bản ghi DELETED được đối xử
// như không tồn tại. UpdateWithLock là lần ghi duy nhất có điều kiện:
// chỉ ghi đè khi bản ghi còn DRAFT và lockNumber khớp.
type RoutingConfigStore interface {
	Insert(ctx context.Context, cfg routingmodels.RoutingConfig) (routingmodels.RoutingConfig, error)
	Get(ctx context.Context, clientID, id string) (routingmodels.RoutingConfig, error)
	List(ctx context.Context, clientID string, status *routingmodels.RoutingStatus) ([]routingmodels.RoutingConfig, error)
	Count(ctx context.Context, clientID string, status *routingmodels.RoutingStatus) (int64, error)
	FindByTemplateID(ctx context.Context, clientID, templateID string) ([]routingmodels.RoutingConfig, error)
	UpdateWithLock(ctx context.Context, clientID, id string, expectedLock int64, patch RoutingConfigPatch) (routingmodels.RoutingConfig, error)
}

// RoutingConfigMongoStore triển khai RoutingConfigStore trên MongoDB
type RoutingConfigMongoStore struct {
	*basesvc.BaseServiceMongoImpl[routingmodels.RoutingConfig]
}

// NewRoutingConfigMongoStore tạo mới RoutingConfigMongoStore từ collection được cung cấp
func NewRoutingConfigMongoStore(collection *mongo.Collection) *RoutingConfigMongoStore {
	return &RoutingConfigMongoStore{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[routingmodels.RoutingConfig](collection),
	}
}

// Insert thêm mới một routing config
func (s *RoutingConfigMongoStore) Insert(ctx context.Context, cfg routingmodels.RoutingConfig) (routingmodels.RoutingConfig, error) {
	return s.BaseServiceMongoImpl.InsertOne(ctx, cfg)
}

// Get tìm config theo (clientID, id). Bản ghi DELETED trả về ErrNotFound.
func (s *RoutingConfigMongoStore) Get(ctx context.Context, clientID, id string) (routingmodels.RoutingConfig, error) {
	return s.FindOne(ctx, bson.M{
		"_id":      id,
		"clientId": clientID,
		"status":   bson.M{"$ne": routingmodels.RoutingStatusDeleted},
	}, nil)
}

// List liệt kê config của client, tùy chọn lọc theo status.
// Bản ghi DELETED không bao giờ xuất hiện trong kết quả.
func (s *RoutingConfigMongoStore) List(ctx context.Context, clientID string, status *routingmodels.RoutingStatus) ([]routingmodels.RoutingConfig, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.Find(ctx, s.listFilter(clientID, status), opts)
}

// Count đếm config của client, tùy chọn lọc theo status
func (s *RoutingConfigMongoStore) Count(ctx context.Context, clientID string, status *routingmodels.RoutingStatus) (int64, error) {
	return s.CountDocuments(ctx, s.listFilter(clientID, status))
}

// FindByTemplateID tìm các config đang tham chiếu tới một template.
// Query chạy trên field templateReferences (multikey index), được store
// tính lại từ cascade mỗi lần ghi.
func (s *RoutingConfigMongoStore) FindByTemplateID(ctx context.Context, clientID, templateID string) ([]routingmodels.RoutingConfig, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.Find(ctx, bson.M{
		"clientId":           clientID,
		"templateReferences": templateID,
		"status":             bson.M{"$ne": routingmodels.RoutingStatusDeleted},
	}, opts)
}

// UpdateWithLock ghi đè config trong một thao tác nguyên tử với điều kiện:
// bản ghi còn DRAFT và lockNumber khớp với giá trị caller đã đọc.
// Ghi thành công thì lockNumber tăng 1. Khi điều kiện không khớp, đọc lại
// bản ghi để phân loại nguyên nhân: không tồn tại, đã COMPLETED, hay bị
// phiên khác ghi đè trước.
func (s *RoutingConfigMongoStore) UpdateWithLock(ctx context.Context, clientID, id string, expectedLock int64, patch RoutingConfigPatch) (routingmodels.RoutingConfig, error) {
	set := bson.M{
		"updatedAt": basesvc.Now(),
	}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.CampaignID != nil {
		set["campaignId"] = *patch.CampaignID
	}
	if patch.Cascade != nil {
		set["cascade"] = patch.Cascade
		set["templateReferences"] = patch.TemplateReferences
	}
	if patch.CascadeGroupOverrides != nil {
		set["cascadeGroupOverrides"] = *patch.CascadeGroupOverrides
	}
	if patch.Status != nil {
		set["status"] = *patch.Status
	}

	filter := bson.M{
		"_id":        id,
		"clientId":   clientID,
		"status":     routingmodels.RoutingStatusDraft,
		"lockNumber": expectedLock,
	}
	update := bson.M{
		"$set": set,
		"$inc": bson.M{"lockNumber": 1},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	updated, err := s.FindOneAndUpdate(ctx, filter, update, opts)
	if err == nil {
		return updated, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return routingmodels.RoutingConfig{}, err
	}

	return routingmodels.RoutingConfig{}, s.classifyLockFailure(ctx, clientID, id)
}

// classifyLockFailure phân loại nguyên nhân khi conditional write không khớp
func (s *RoutingConfigMongoStore) classifyLockFailure(ctx context.Context, clientID, id string) error {
	current, err := s.Get(ctx, clientID, id)
	if err != nil {
		// Không tồn tại hoặc đã DELETED
		return err
	}
	if current.Status == routingmodels.RoutingStatusCompleted {
		return common.ErrAlreadySubmitted
	}
	// Còn DRAFT nhưng lockNumber không khớp: thua cuộc đua ghi
	return common.ErrLockConflict
}

// listFilter dựng filter chung cho List/Count
func (s *RoutingConfigMongoStore) listFilter(clientID string, status *routingmodels.RoutingStatus) bson.M {
	filter := bson.M{
		"clientId": clientID,
		"status":   bson.M{"$ne": routingmodels.RoutingStatusDeleted},
	}
	if status != nil {
		filter["status"] = *status
	}
	return filter
}
