// Package royaltysvc - Service dòng trung gian của apuração (apuracao_linhas).
package royaltysvc

import (
	"context"
	"fmt"

	basesvc "oporto_royalty/internal/api/base/service"
	royaltymodels "oporto_royalty/internal/api/royalty/models"
	"oporto_royalty/internal/common"
	"oporto_royalty/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"
)

// RoyaltyLineService xử lý dòng trung gian của apuração.
type RoyaltyLineService struct {
	*basesvc.BaseServiceMongoImpl[royaltymodels.RoyaltyLine]
}

// NewRoyaltyLineService tạo RoyaltyLineService mới.
func NewRoyaltyLineService() (*RoyaltyLineService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.RoyaltyLines)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.RoyaltyLines, common.ErrNotFound)
	}
	return &RoyaltyLineService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[royaltymodels.RoyaltyLine](coll),
	}, nil
}

// FindByBatch trả về toàn bộ dòng trung gian của một apuração, sắp theo _id tăng dần.
// Thứ tự _id ổn định đảm bảo "first writer wins" có tính quyết định khi tổng hợp.
func (s *RoyaltyLineService) FindByBatch(ctx context.Context, idGrupo string) ([]royaltymodels.RoyaltyLine, error) {
	opts := mongoopts.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	return s.Find(ctx, bson.M{"id_grupo": idGrupo}, opts)
}

// DeleteByBatch xóa toàn bộ dòng trung gian của một apuração, trả về số dòng đã xóa.
func (s *RoyaltyLineService) DeleteByBatch(ctx context.Context, idGrupo string) (int64, error) {
	return s.DeleteMany(ctx, bson.M{"id_grupo": idGrupo})
}
