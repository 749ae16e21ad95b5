// Package royaltysvc - Materializer: sinh dòng trung gian cho một apuração.
package royaltysvc

import (
	"context"
	"errors"
	"fmt"

	basesvc "oporto_royalty/internal/api/base/service"
	catalogsvc "oporto_royalty/internal/api/catalog/service"
	invoicesvc "oporto_royalty/internal/api/invoice/service"
	royaltymodels "oporto_royalty/internal/api/royalty/models"
	"oporto_royalty/internal/common"
	"oporto_royalty/internal/global"
	"oporto_royalty/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
)

// MaterializerService sinh dòng trung gian (apuracao_linhas) cho một apuração từ
// các dòng nota fiscal trong kỳ, embedding snapshot catálogo tại thời điểm chạy.
type MaterializerService struct {
	batchService   *basesvc.BaseServiceMongoImpl[royaltymodels.RoyaltyBatch]
	lineService    *RoyaltyLineService
	catalogService *catalogsvc.CatalogService
	invoiceService *invoicesvc.InvoiceItemService
}

// NewMaterializerService tạo MaterializerService mới.
func NewMaterializerService() (*MaterializerService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.RoyaltyBatches)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.RoyaltyBatches, common.ErrNotFound)
	}
	lineService, err := NewRoyaltyLineService()
	if err != nil {
		return nil, fmt.Errorf("tạo RoyaltyLineService: %w", err)
	}
	catalogService, err := catalogsvc.NewCatalogService()
	if err != nil {
		return nil, fmt.Errorf("tạo CatalogService: %w", err)
	}
	invoiceService, err := invoicesvc.NewInvoiceItemService()
	if err != nil {
		return nil, fmt.Errorf("tạo InvoiceItemService: %w", err)
	}
	return &MaterializerService{
		batchService:   basesvc.NewBaseServiceMongo[royaltymodels.RoyaltyBatch](coll),
		lineService:    lineService,
		catalogService: catalogService,
		invoiceService: invoiceService,
	}, nil
}

// Materialize sinh dòng trung gian cho apuração idGrupo và trả về số dòng đã ghi.
//
// Đây là writer duy nhất của apuracao_linhas cho một apuração: trước khi ghi,
// status được chuyển atomic từ aguardando sang aberto qua FindOneAndUpdate.
// Nếu không có document khớp (đã materialize hoặc đã fechado), trả về StateError.
// Muốn materialize lại phải xóa và tạo lại apuração.
func (s *MaterializerService) Materialize(ctx context.Context, idGrupo string) (int64, error) {
	batch, err := s.batchService.FindOne(ctx, bson.M{"id_grupo": idGrupo}, nil)
	if err != nil {
		return 0, err
	}

	if batch.DataInicial <= 0 || batch.DataFinal < batch.DataInicial {
		return 0, common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("Biên kỳ của apuração %s không hợp lệ", idGrupo),
			common.StatusBadRequest,
			nil,
		)
	}

	// Guard atomic: chỉ một writer được phép chuyển aguardando → aberto
	_, err = s.batchService.FindOneAndUpdate(ctx,
		bson.M{"id_grupo": idGrupo, "status": royaltymodels.BatchStatusAwaiting},
		bson.M{"status": royaltymodels.BatchStatusOpen},
		nil,
	)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return 0, common.NewError(
				common.ErrCodeBusinessState,
				fmt.Sprintf("Apuração %s không ở trạng thái aguardando (đã materialize hoặc đã fechado)", idGrupo),
				common.StatusConflict,
				nil,
			)
		}
		return 0, err
	}

	items, err := s.invoiceService.FindByPeriod(ctx, batch.DataInicial, batch.DataFinal)
	if err != nil {
		return 0, err
	}

	lines := make([]royaltymodels.RoyaltyLine, 0, len(items))
	skipped := 0
	for _, item := range items {
		catalog, err := s.catalogService.FindByBarcode(ctx, item.CodigoBarras)
		if err != nil {
			// Sản phẩm chưa có catálogo là tình huống bình thường trong dữ liệu sản xuất
			if errors.Is(err, common.ErrNotFound) {
				skipped++
				continue
			}
			return 0, err
		}

		// Tỷ lệ tác quyền: ưu tiên tỷ lệ trên dòng nota; fallback về tỷ lệ catálogo
		rate := item.PercentualDireitoAutoral
		if rate == 0 {
			rate = catalog.PercentualDireitoAutoral
		}
		royalty, _ := percentOf(item.BaseCalculo, rate).Float64()

		lines = append(lines, royaltymodels.RoyaltyLine{
			IdGrupo:                  idGrupo,
			CodigoBarras:             item.CodigoBarras,
			Quantidade:               item.Quantidade,
			BaseCalculo:              item.BaseCalculo,
			ValorLiquido:             item.ValorLiquido,
			PercentualDireitoAutoral: rate,
			ValorDireitoAutoral:      royalty,
			Catalogo:                 *catalog,
		})
	}

	if len(lines) > 0 {
		if _, err := s.lineService.InsertMany(ctx, lines); err != nil {
			return 0, err
		}
	}

	count := int64(len(lines))
	if _, err := s.batchService.UpdateOne(ctx, bson.M{"id_grupo": idGrupo}, bson.M{
		"linhasGeradas": count,
	}, nil); err != nil {
		return count, err
	}

	logger.GetAppLogger().WithFields(map[string]interface{}{
		"id_grupo":      idGrupo,
		"linhasGeradas": count,
		"itensLidos":    len(items),
		"itensPulados":  skipped,
	}).Info("Materialize apuração hoàn tất")

	return count, nil
}
