// Package catalogsvc - Service catálogo (catalogos).
package catalogsvc

import (
	"context"
	"fmt"

	basesvc "oporto_royalty/internal/api/base/service"
	catalogmodels "oporto_royalty/internal/api/catalog/models"
	"oporto_royalty/internal/common"
	"oporto_royalty/internal/global"

	"go.mongodb.org/mongo-driver/bson"
)

// CatalogService xử lý CRUD catálogo và tra cứu theo mã vạch.
type CatalogService struct {
	*basesvc.BaseServiceMongoImpl[catalogmodels.Catalog]
}

// NewCatalogService tạo CatalogService mới.
func NewCatalogService() (*CatalogService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Catalogs)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Catalogs, common.ErrNotFound)
	}
	return &CatalogService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[catalogmodels.Catalog](coll),
	}, nil
}

// FindByBarcode tra cứu catálogo theo mã vạch (khớp chính xác).
// Trả về common.ErrNotFound nếu mã vạch chưa được đăng ký trong catálogo.
func (s *CatalogService) FindByBarcode(ctx context.Context, codigoBarras string) (*catalogmodels.Catalog, error) {
	catalog, err := s.FindOne(ctx, bson.M{"codigoBarras": codigoBarras}, nil)
	if err != nil {
		return nil, err
	}
	return &catalog, nil
}
