// Package cataloghdl - Handler catálogo.
package cataloghdl

import (
	"fmt"

	basehdl "oporto_royalty/internal/api/base/handler"
	catalogdto "oporto_royalty/internal/api/catalog/dto"
	catalogmodels "oporto_royalty/internal/api/catalog/models"
	catalogsvc "oporto_royalty/internal/api/catalog/service"
	"oporto_royalty/internal/common"

	"github.com/gofiber/fiber/v3"
)

// CatalogHandler xử lý CRUD catálogo và tra cứu theo mã vạch.
type CatalogHandler struct {
	*basehdl.BaseHandler[catalogmodels.Catalog, catalogdto.CatalogCreateInput, catalogdto.CatalogUpdateInput]
	CatalogService *catalogsvc.CatalogService
}

// NewCatalogHandler tạo CatalogHandler mới.
func NewCatalogHandler() (*CatalogHandler, error) {
	catalogService, err := catalogsvc.NewCatalogService()
	if err != nil {
		return nil, fmt.Errorf("tạo CatalogService: %w", err)
	}
	return &CatalogHandler{
		BaseHandler:    basehdl.NewBaseHandler[catalogmodels.Catalog, catalogdto.CatalogCreateInput, catalogdto.CatalogUpdateInput](catalogService),
		CatalogService: catalogService,
	}, nil
}

// HandleFindByBarcode xử lý GET /catalogos/barcode/:codigoBarras.
func (h *CatalogHandler) HandleFindByBarcode(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		codigoBarras := c.Params("codigoBarras")
		if codigoBarras == "" {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Thiếu codigoBarras trong URL params",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}
		catalog, err := h.CatalogService.FindByBarcode(c.Context(), codigoBarras)
		h.HandleResponse(c, catalog, err)
		return nil
	})
}
