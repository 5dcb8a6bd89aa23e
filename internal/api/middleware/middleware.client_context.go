package middleware

import (
	"errors"
	"strings"

	"meta_notify/internal/common"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v3"
)

// ClientContextMiddleware middleware để xác định client sở hữu dữ liệu
// - Đọc Bearer token từ header Authorization, parse claims bằng JWT secret
// - Lấy clientId từ claim "clientId" (fallback claim "sub")
// - Lưu client_id vào Locals để handler dùng khi scope dữ liệu
// - Khi không cấu hình JWT secret (môi trường local), cho phép header X-Client-Id
func ClientContextMiddleware(jwtSecret string) fiber.Handler {
	return func(c fiber.Ctx) error {
		// Môi trường local: không có secret thì nhận client từ header
		if jwtSecret == "" {
			clientID := c.Get("X-Client-Id")
			if clientID == "" {
				return handleAuthError(c, common.ErrClientMissing)
			}
			c.Locals("client_id", clientID)
			return c.Next()
		}

		// Lấy token từ header Authorization
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return handleAuthError(c, common.ErrTokenMissing)
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return handleAuthError(c, common.ErrTokenInvalid)
		}

		// Parse và verify token
		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(jwtSecret), nil
		})
		if err != nil {
			if vErr, ok := err.(*jwt.ValidationError); ok && vErr.Errors&jwt.ValidationErrorExpired != 0 {
				return handleAuthError(c, common.ErrTokenExpired)
			}
			return handleAuthError(c, common.ErrTokenInvalid)
		}
		if !token.Valid {
			return handleAuthError(c, common.ErrTokenInvalid)
		}

		// Lấy clientId từ claims
		clientID, _ := claims["clientId"].(string)
		if clientID == "" {
			clientID, _ = claims["sub"].(string)
		}
		if clientID == "" {
			return handleAuthError(c, common.ErrClientMissing)
		}

		c.Locals("client_id", clientID)
		return c.Next()
	}
}

// GetClientID lấy client_id từ context (đã được set bởi ClientContextMiddleware)
func GetClientID(c fiber.Ctx) string {
	clientID, _ := c.Locals("client_id").(string)
	return clientID
}

// handleAuthError trả về response lỗi xác thực theo format chuẩn
func handleAuthError(c fiber.Ctx, err error) error {
	var customErr *common.Error
	if errors.As(err, &customErr) {
		c.Set("Content-Type", "application/json; charset=utf-8")
		return c.Status(customErr.StatusCode).JSON(fiber.Map{
			"code":    customErr.Code.Code,
			"message": customErr.Message,
			"status":  "error",
		})
	}
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(common.StatusUnauthorized).JSON(fiber.Map{
		"code":    common.ErrCodeAuthToken.Code,
		"message": common.MsgUnauthorized,
		"status":  "error",
	})
}
