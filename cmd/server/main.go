package main

import (
	"fmt"

	"meta_notify/internal/database"
	"meta_notify/internal/logger"
)

// initLogger khởi tạo và cấu hình logger cho toàn bộ ứng dụng
func initLogger() {
	// Logger sẽ tự động đọc environment variables để cấu hình
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	log := logger.GetAppLogger()
	log.Info("Logger system initialized successfully")
}

func main() {
	initLogger()
	log := logger.GetAppLogger()

	app, err := InitApp()
	if err != nil {
		log.Fatalf("Không thể khởi tạo ứng dụng: %v", err)
	}
	defer func() {
		if err := database.CloseInstance(app.MongoClient); err != nil {
			log.WithError(err).Error("Lỗi khi đóng kết nối MongoDB")
		}
	}()

	log.Infof("Starting Fiber server on %s", app.Config.Address)
	if err := app.Fiber.Listen(app.Config.Address); err != nil {
		log.Fatalf("Server stopped with error: %v", err)
	}
}
