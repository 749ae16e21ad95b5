// Package invoicesvc - Service dòng nota fiscal (notas_itens).
package invoicesvc

import (
	"context"
	"fmt"

	basesvc "oporto_royalty/internal/api/base/service"
	invoicemodels "oporto_royalty/internal/api/invoice/models"
	"oporto_royalty/internal/common"
	"oporto_royalty/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"
)

// InvoiceItemService xử lý CRUD dòng nota fiscal và truy vấn theo kỳ.
type InvoiceItemService struct {
	*basesvc.BaseServiceMongoImpl[invoicemodels.InvoiceItem]
}

// NewInvoiceItemService tạo InvoiceItemService mới.
func NewInvoiceItemService() (*InvoiceItemService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.InvoiceItems)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.InvoiceItems, common.ErrNotFound)
	}
	return &InvoiceItemService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[invoicemodels.InvoiceItem](coll),
	}, nil
}

// FindByPeriod trả về các dòng bán hàng có dataMovimento trong [start, end] (unix ms, inclusive).
// Kết quả sắp theo dataMovimento tăng dần để materializer xử lý theo thứ tự thời gian.
func (s *InvoiceItemService) FindByPeriod(ctx context.Context, start, end int64) ([]invoicemodels.InvoiceItem, error) {
	filter := bson.M{
		"dataMovimento": bson.M{
			"$gte": start,
			"$lte": end,
		},
	}
	opts := mongoopts.Find().SetSort(bson.D{{Key: "dataMovimento", Value: 1}})
	return s.Find(ctx, filter, opts)
}
