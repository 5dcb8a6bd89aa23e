// Package router đăng ký các route thuộc domain Routing.
package router

import (
	"github.com/gofiber/fiber/v3"

	routinghdl "meta_notify/internal/api/routing/handler"
	apirouter "meta_notify/internal/api/router"
)

// Register trả về RegisterFunc đăng ký các route routing config lên v1.
// clientMiddleware được truyền từ nơi khởi tạo app (DI tường minh).
func Register(h *routinghdl.RoutingConfigHandler, clientMiddleware fiber.Handler) apirouter.RegisterFunc {
	return func(v1 fiber.Router, _ *apirouter.Router) error {
		mws := []fiber.Handler{clientMiddleware}

		apirouter.RegisterRouteWithMiddleware(v1, "/routing-config", "POST", "/", mws, h.InsertOne)
		apirouter.RegisterRouteWithMiddleware(v1, "/routing-config", "GET", "/", mws, h.Find)
		apirouter.RegisterRouteWithMiddleware(v1, "/routing-config", "GET", "/count", mws, h.CountDocuments)
		apirouter.RegisterRouteWithMiddleware(v1, "/routing-config", "GET", "/referencing/:templateId", mws, h.FindByTemplate)
		apirouter.RegisterRouteWithMiddleware(v1, "/routing-config", "GET", "/:id", mws, h.FindOneById)
		apirouter.RegisterRouteWithMiddleware(v1, "/routing-config", "PUT", "/:id", mws, h.UpdateById)
		apirouter.RegisterRouteWithMiddleware(v1, "/routing-config", "POST", "/:id/submit", mws, h.Submit)
		apirouter.RegisterRouteWithMiddleware(v1, "/routing-config", "DELETE", "/:id", mws, h.DeleteById)
		return nil
	}
}
