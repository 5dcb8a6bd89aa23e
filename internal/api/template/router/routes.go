// Package router đăng ký các route thuộc domain Template.
package router

import (
	"github.com/gofiber/fiber/v3"

	apirouter "meta_notify/internal/api/router"
	tmplhdl "meta_notify/internal/api/template/handler"
)

// Register trả về RegisterFunc đăng ký các route template directory lên v1.
// Bề mặt template chỉ đọc: nội dung template do hệ thống khác quản lý.
func Register(h *tmplhdl.TemplateHandler, clientMiddleware fiber.Handler) apirouter.RegisterFunc {
	return func(v1 fiber.Router, _ *apirouter.Router) error {
		mws := []fiber.Handler{clientMiddleware}

		apirouter.RegisterRouteWithMiddleware(v1, "/template", "GET", "/", mws, h.Find)
		apirouter.RegisterRouteWithMiddleware(v1, "/template", "GET", "/:id", mws, h.FindOneById)
		return nil
	}
}
