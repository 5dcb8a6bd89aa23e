// Package database - Index cho các collection routing (compound, multikey).
package database

import (
	"context"
	"strings"

	"meta_notify/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateIndexes tạo các index cần thiết cho routing_configs và templates.
// Gọi một lần khi khởi động server.
func CreateIndexes(ctx context.Context, db *mongo.Database) error {
	// routing_configs: (clientId, status) — list/count theo owner và trạng thái
	routingConfigs := db.Collection(global.MongoDB_ColNames.RoutingConfigs)
	if _, err := routingConfigs.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "clientId", Value: 1},
			{Key: "status", Value: 1},
		},
		Options: options.Index().SetName("routing_config_client_status"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// routing_configs: (clientId, templateReferences) multikey — tra cứu config theo template
	if _, err := routingConfigs.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "clientId", Value: 1},
			{Key: "templateReferences", Value: 1},
		},
		Options: options.Index().SetName("routing_config_client_template"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// templates: (clientId, templateStatus) — lọc template theo owner và trạng thái
	templates := db.Collection(global.MongoDB_ColNames.Templates)
	if _, err := templates.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "clientId", Value: 1},
			{Key: "templateStatus", Value: 1},
		},
		Options: options.Index().SetName("template_client_status"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}
