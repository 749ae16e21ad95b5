// Package catalogsvc - Service editora (editoras).
package catalogsvc

import (
	"context"
	"fmt"

	basesvc "oporto_royalty/internal/api/base/service"
	catalogmodels "oporto_royalty/internal/api/catalog/models"
	"oporto_royalty/internal/common"
	"oporto_royalty/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"
)

// PublisherService xử lý CRUD editora.
type PublisherService struct {
	*basesvc.BaseServiceMongoImpl[catalogmodels.Publisher]
}

// NewPublisherService tạo PublisherService mới.
func NewPublisherService() (*PublisherService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Publishers)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Publishers, common.ErrNotFound)
	}
	return &PublisherService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[catalogmodels.Publisher](coll),
	}, nil
}

// FindAllPublishers tải toàn bộ danh bạ editora, sắp theo nome.
// Engine tổng hợp dùng kết quả này để build map tra cứu theo tên.
func (s *PublisherService) FindAllPublishers(ctx context.Context) ([]catalogmodels.Publisher, error) {
	opts := mongoopts.Find().SetSort(bson.D{{Key: "nome", Value: 1}})
	return s.Find(ctx, bson.D{}, opts)
}
