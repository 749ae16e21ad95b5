// Package catalogsvc - Service formato (formatos).
package catalogsvc

import (
	"fmt"

	basesvc "oporto_royalty/internal/api/base/service"
	catalogmodels "oporto_royalty/internal/api/catalog/models"
	"oporto_royalty/internal/common"
	"oporto_royalty/internal/global"
)

// FormatService xử lý CRUD formato (danh mục thuần, không nghiệp vụ riêng).
type FormatService struct {
	*basesvc.BaseServiceMongoImpl[catalogmodels.Format]
}

// NewFormatService tạo FormatService mới.
func NewFormatService() (*FormatService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Formats)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Formats, common.ErrNotFound)
	}
	return &FormatService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[catalogmodels.Format](coll),
	}, nil
}
