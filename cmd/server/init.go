package main

import (
	"context"
	"time"

	"meta_notify/config"
	"meta_notify/internal/api/middleware"
	apirouter "meta_notify/internal/api/router"
	routinghdl "meta_notify/internal/api/routing/handler"
	routingrouter "meta_notify/internal/api/routing/router"
	routingsvc "meta_notify/internal/api/routing/service"
	tmplhdl "meta_notify/internal/api/template/handler"
	tmplrouter "meta_notify/internal/api/template/router"
	tmplsvc "meta_notify/internal/api/template/service"
	"meta_notify/internal/database"
	"meta_notify/internal/global"
	"meta_notify/internal/logger"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/mongo"
)

// App gói các thành phần runtime của server
type App struct {
	Config      *config.Configuration
	MongoClient *mongo.Client
	Fiber       *fiber.App
}

// InitApp khởi tạo toàn bộ ứng dụng: config, validator, database,
// services, handlers và routes. Các phụ thuộc được nối tường minh
// qua constructor, không dùng registry toàn cục.
func InitApp() (*App, error) {
	log := logger.GetAppLogger()

	// Khởi tạo validator với các custom validator của domain
	global.InitValidator()

	// Đọc cấu hình
	cfg := config.NewConfig()
	if cfg == nil {
		log.Fatal("Không thể đọc cấu hình server")
	}

	// Kết nối MongoDB
	client, err := database.GetInstance(cfg)
	if err != nil {
		return nil, err
	}
	db := client.Database(cfg.MongoDB_DBName)

	// Tạo index cho các collection
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := database.CreateIndexes(ctx, db); err != nil {
		return nil, err
	}

	// Khởi tạo services (DI tường minh qua constructor)
	templateService := tmplsvc.NewTemplateService(db.Collection(global.MongoDB_ColNames.Templates))
	routingStore := routingsvc.NewRoutingConfigMongoStore(db.Collection(global.MongoDB_ColNames.RoutingConfigs))
	routingService := routingsvc.NewRoutingConfigService(routingStore, templateService, log)

	// Khởi tạo handlers
	routingHandler := routinghdl.NewRoutingConfigHandler(routingService)
	templateHandler := tmplhdl.NewTemplateHandler(templateService)

	// Khởi tạo Fiber app và đăng ký routes
	app := InitFiberApp(cfg)
	clientMiddleware := middleware.ClientContextMiddleware(cfg.JwtSecret)
	if err := apirouter.SetupRoutes(app,
		routingrouter.Register(routingHandler, clientMiddleware),
		tmplrouter.Register(templateHandler, clientMiddleware),
	); err != nil {
		return nil, err
	}

	return &App{
		Config:      cfg,
		MongoClient: client,
		Fiber:       app,
	}, nil
}
