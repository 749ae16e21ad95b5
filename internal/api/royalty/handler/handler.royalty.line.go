// Package royaltyhdl - Handler đọc dòng trung gian của apuração.
package royaltyhdl

import (
	"fmt"

	basehdl "oporto_royalty/internal/api/base/handler"
	royaltymodels "oporto_royalty/internal/api/royalty/models"
	royaltysvc "oporto_royalty/internal/api/royalty/service"
)

// LineHandler phục vụ đọc dòng trung gian. Dòng trung gian bất biến sau
// materialize nên chỉ đăng ký các route đọc.
type LineHandler struct {
	*basehdl.BaseHandler[royaltymodels.RoyaltyLine, royaltymodels.RoyaltyLine, royaltymodels.RoyaltyLine]
	LineService *royaltysvc.RoyaltyLineService
}

// NewLineHandler tạo LineHandler mới.
func NewLineHandler() (*LineHandler, error) {
	lineService, err := royaltysvc.NewRoyaltyLineService()
	if err != nil {
		return nil, fmt.Errorf("tạo RoyaltyLineService: %w", err)
	}
	return &LineHandler{
		BaseHandler: basehdl.NewBaseHandler[royaltymodels.RoyaltyLine, royaltymodels.RoyaltyLine, royaltymodels.RoyaltyLine](lineService),
		LineService: lineService,
	}, nil
}
