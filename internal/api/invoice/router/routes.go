// Package router đăng ký các route thuộc domain nota fiscal: notas-itens.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	invoicehdl "oporto_royalty/internal/api/invoice/handler"
	apirouter "oporto_royalty/internal/api/router"
)

// Register đăng ký tất cả route nota fiscal lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	itemHandler, err := invoicehdl.NewInvoiceItemHandler()
	if err != nil {
		return fmt.Errorf("tạo InvoiceItemHandler: %w", err)
	}

	r.RegisterCRUDRoutes(v1, "/nota-item", itemHandler, apirouter.ReadWriteConfig)

	return nil
}
