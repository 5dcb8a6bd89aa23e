package global

import (
	"github.com/go-playground/validator/v10"
)

// MongoDB_Notify_CollectionName chứa tên các collection trong MongoDB
type MongoDB_Notify_CollectionName struct {
	RoutingConfigs string // Tên collection cho các cấu hình routing (message plan)
	Templates      string // Tên collection cho template directory
}

// Các biến toàn cục
var Validate *validator.Validate // Biến để xác thực dữ liệu

// MongoDB_ColNames tên các collection
var MongoDB_ColNames = MongoDB_Notify_CollectionName{
	RoutingConfigs: "routing_configs",
	Templates:      "templates",
}
