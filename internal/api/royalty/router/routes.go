// Package router đăng ký các route thuộc domain apuração.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	apirouter "oporto_royalty/internal/api/router"
	royaltyhdl "oporto_royalty/internal/api/royalty/handler"
)

// Register đăng ký tất cả route apuração lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	batchHandler, err := royaltyhdl.NewBatchHandler()
	if err != nil {
		return fmt.Errorf("tạo BatchHandler: %w", err)
	}
	lineHandler, err := royaltyhdl.NewLineHandler()
	if err != nil {
		return fmt.Errorf("tạo LineHandler: %w", err)
	}

	// Vòng đời apuração
	apirouter.RegisterRouteWithMiddleware(v1, "/apuracoes", "POST", "/", nil, batchHandler.HandleCreateBatch)
	apirouter.RegisterRouteWithMiddleware(v1, "/apuracoes", "GET", "/:id", nil, batchHandler.HandleGetBatch)
	apirouter.RegisterRouteWithMiddleware(v1, "/apuracoes", "POST", "/:id/materializar", nil, batchHandler.HandleMaterialize)
	apirouter.RegisterRouteWithMiddleware(v1, "/apuracoes", "POST", "/:id/fechar", nil, batchHandler.HandleCloseBatch)
	apirouter.RegisterRouteWithMiddleware(v1, "/apuracoes", "DELETE", "/:id", nil, batchHandler.HandleDeleteBatch)
	apirouter.RegisterRouteWithMiddleware(v1, "/apuracoes", "GET", "/:id/resultado", nil, batchHandler.HandleGetResult)

	// Truy vấn trực tiếp (chỉ đọc): apuração và dòng trung gian là dữ liệu dẫn xuất
	r.RegisterCRUDRoutes(v1, "/apuracao-grupo", batchHandler, apirouter.ReadOnlyConfig)
	r.RegisterCRUDRoutes(v1, "/apuracao-linha", lineHandler, apirouter.ReadOnlyConfig)

	return nil
}
