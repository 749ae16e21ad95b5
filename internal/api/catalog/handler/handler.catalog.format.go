// Package cataloghdl - Handler formato.
package cataloghdl

import (
	"fmt"

	basehdl "oporto_royalty/internal/api/base/handler"
	catalogdto "oporto_royalty/internal/api/catalog/dto"
	catalogmodels "oporto_royalty/internal/api/catalog/models"
	catalogsvc "oporto_royalty/internal/api/catalog/service"
)

// FormatHandler xử lý CRUD formato.
type FormatHandler struct {
	*basehdl.BaseHandler[catalogmodels.Format, catalogdto.FormatCreateInput, catalogdto.FormatUpdateInput]
	FormatService *catalogsvc.FormatService
}

// NewFormatHandler tạo FormatHandler mới.
func NewFormatHandler() (*FormatHandler, error) {
	formatService, err := catalogsvc.NewFormatService()
	if err != nil {
		return nil, fmt.Errorf("tạo FormatService: %w", err)
	}
	return &FormatHandler{
		BaseHandler:   basehdl.NewBaseHandler[catalogmodels.Format, catalogdto.FormatCreateInput, catalogdto.FormatUpdateInput](formatService),
		FormatService: formatService,
	}, nil
}
