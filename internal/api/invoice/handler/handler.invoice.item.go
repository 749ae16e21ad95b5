// Package invoicehdl - Handler dòng nota fiscal.
package invoicehdl

import (
	"fmt"

	basehdl "oporto_royalty/internal/api/base/handler"
	invoicedto "oporto_royalty/internal/api/invoice/dto"
	invoicemodels "oporto_royalty/internal/api/invoice/models"
	invoicesvc "oporto_royalty/internal/api/invoice/service"
)

// InvoiceItemHandler xử lý CRUD dòng nota fiscal.
type InvoiceItemHandler struct {
	*basehdl.BaseHandler[invoicemodels.InvoiceItem, invoicedto.InvoiceItemCreateInput, invoicedto.InvoiceItemUpdateInput]
	InvoiceItemService *invoicesvc.InvoiceItemService
}

// NewInvoiceItemHandler tạo InvoiceItemHandler mới.
func NewInvoiceItemHandler() (*InvoiceItemHandler, error) {
	itemService, err := invoicesvc.NewInvoiceItemService()
	if err != nil {
		return nil, fmt.Errorf("tạo InvoiceItemService: %w", err)
	}
	return &InvoiceItemHandler{
		BaseHandler:        basehdl.NewBaseHandler[invoicemodels.InvoiceItem, invoicedto.InvoiceItemCreateInput, invoicedto.InvoiceItemUpdateInput](itemService),
		InvoiceItemService: itemService,
	}, nil
}
