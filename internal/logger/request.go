package logger

import (
	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// WithRequest trả về log entry gắn sẵn thông tin request (request id, method, path, ip)
// Dùng trong error handler và middleware của Fiber
func WithRequest(c fiber.Ctx) *logrus.Entry {
	requestID, _ := c.Locals("requestid").(string)
	return GetAppLogger().WithFields(logrus.Fields{
		"requestId": requestID,
		"method":    c.Method(),
		"path":      c.Path(),
		"ip":        c.IP(),
	})
}
