// Package cataloghdl - Handler editora.
package cataloghdl

import (
	"fmt"

	basehdl "oporto_royalty/internal/api/base/handler"
	catalogdto "oporto_royalty/internal/api/catalog/dto"
	catalogmodels "oporto_royalty/internal/api/catalog/models"
	catalogsvc "oporto_royalty/internal/api/catalog/service"
)

// PublisherHandler xử lý CRUD editora.
type PublisherHandler struct {
	*basehdl.BaseHandler[catalogmodels.Publisher, catalogdto.PublisherCreateInput, catalogdto.PublisherUpdateInput]
	PublisherService *catalogsvc.PublisherService
}

// NewPublisherHandler tạo PublisherHandler mới.
func NewPublisherHandler() (*PublisherHandler, error) {
	publisherService, err := catalogsvc.NewPublisherService()
	if err != nil {
		return nil, fmt.Errorf("tạo PublisherService: %w", err)
	}
	return &PublisherHandler{
		BaseHandler:      basehdl.NewBaseHandler[catalogmodels.Publisher, catalogdto.PublisherCreateInput, catalogdto.PublisherUpdateInput](publisherService),
		PublisherService: publisherService,
	}, nil
}
