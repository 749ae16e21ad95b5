// Package router đăng ký các route thuộc domain catálogo: catalogos, editoras, formatos.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	cataloghdl "oporto_royalty/internal/api/catalog/handler"
	apirouter "oporto_royalty/internal/api/router"
)

// Register đăng ký tất cả route catálogo lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	catalogHandler, err := cataloghdl.NewCatalogHandler()
	if err != nil {
		return fmt.Errorf("tạo CatalogHandler: %w", err)
	}
	publisherHandler, err := cataloghdl.NewPublisherHandler()
	if err != nil {
		return fmt.Errorf("tạo PublisherHandler: %w", err)
	}
	formatHandler, err := cataloghdl.NewFormatHandler()
	if err != nil {
		return fmt.Errorf("tạo FormatHandler: %w", err)
	}

	// GET /catalogo/barcode/:codigoBarras — tra cứu catálogo theo mã vạch
	apirouter.RegisterRouteWithMiddleware(v1, "/catalogo", "GET", "/barcode/:codigoBarras", nil, catalogHandler.HandleFindByBarcode)

	// CRUD routes
	r.RegisterCRUDRoutes(v1, "/catalogo", catalogHandler, apirouter.ReadWriteConfig)
	r.RegisterCRUDRoutes(v1, "/editora", publisherHandler, apirouter.ReadWriteConfig)
	r.RegisterCRUDRoutes(v1, "/formato", formatHandler, apirouter.ReadWriteConfig)

	return nil
}
