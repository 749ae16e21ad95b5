// Package royaltysvc - Service vòng đời apuração (apuracao_grupos).
package royaltysvc

import (
	"context"
	"fmt"
	"time"

	basesvc "oporto_royalty/internal/api/base/service"
	royaltymodels "oporto_royalty/internal/api/royalty/models"
	"oporto_royalty/internal/common"
	"oporto_royalty/internal/global"
	"oporto_royalty/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RoyaltyBatchService xử lý vòng đời apuração: tạo, đóng, xóa.
type RoyaltyBatchService struct {
	*basesvc.BaseServiceMongoImpl[royaltymodels.RoyaltyBatch]
	lineService *RoyaltyLineService
	engine      *AggregationService
}

// NewRoyaltyBatchService tạo RoyaltyBatchService mới.
func NewRoyaltyBatchService() (*RoyaltyBatchService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.RoyaltyBatches)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.RoyaltyBatches, common.ErrNotFound)
	}
	lineService, err := NewRoyaltyLineService()
	if err != nil {
		return nil, fmt.Errorf("tạo RoyaltyLineService: %w", err)
	}
	engine, err := NewAggregationService()
	if err != nil {
		return nil, fmt.Errorf("tạo AggregationService: %w", err)
	}
	return &RoyaltyBatchService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[royaltymodels.RoyaltyBatch](coll),
		lineService:          lineService,
		engine:               engine,
	}, nil
}

// ensureClosable kiểm tra apuração có thể đóng hay không.
// Apuração đã fechado không được đóng lại.
func ensureClosable(batch *royaltymodels.RoyaltyBatch) error {
	if batch.Status == royaltymodels.BatchStatusClosed {
		return common.NewError(
			common.ErrCodeBusinessState,
			fmt.Sprintf("Apuração %s đã fechado, không thể đóng lại", batch.IdGrupo),
			common.StatusConflict,
			nil,
		)
	}
	return nil
}

// ensureDeletable kiểm tra apuração có thể xóa hay không.
// Apuração đã fechado là bất biến, không được xóa.
func ensureDeletable(batch *royaltymodels.RoyaltyBatch) error {
	if batch.Status == royaltymodels.BatchStatusClosed {
		return common.NewError(
			common.ErrCodeBusinessState,
			fmt.Sprintf("Apuração %s đã fechado, không thể xóa", batch.IdGrupo),
			common.StatusConflict,
			nil,
		)
	}
	return nil
}

// normalizePeriod chuẩn hóa biên kỳ về [start 00:00:00.000Z, end 23:59:59.999Z] (unix ms).
func normalizePeriod(start, end time.Time) (int64, int64) {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 999000000, time.UTC)
	return s.UnixMilli(), e.UnixMilli()
}

// CreateBatch tạo apuração mới ở trạng thái aguardando.
// dataInicial/dataFinal theo định dạng dd-mm-yyyy; biên kỳ được chuẩn hóa UTC inclusive.
func (s *RoyaltyBatchService) CreateBatch(ctx context.Context, dataInicial, dataFinal string) (*royaltymodels.RoyaltyBatch, error) {
	start, err := time.ParseInLocation(global.DateBRFormat, dataInicial, time.UTC)
	if err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("dataInicial '%s' không đúng định dạng dd-mm-yyyy", dataInicial),
			common.StatusBadRequest,
			err,
		)
	}
	end, err := time.ParseInLocation(global.DateBRFormat, dataFinal, time.UTC)
	if err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("dataFinal '%s' không đúng định dạng dd-mm-yyyy", dataFinal),
			common.StatusBadRequest,
			err,
		)
	}
	if end.Before(start) {
		return nil, common.NewError(
			common.ErrCodeValidationInput,
			"dataFinal phải lớn hơn hoặc bằng dataInicial",
			common.StatusBadRequest,
			nil,
		)
	}

	startMs, endMs := normalizePeriod(start, end)
	batch := royaltymodels.RoyaltyBatch{
		IdGrupo:     primitive.NewObjectID().Hex(),
		DataInicial: startMs,
		DataFinal:   endMs,
		Status:      royaltymodels.BatchStatusAwaiting,
	}

	created, err := s.InsertOne(ctx, batch)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// GetBatch trả về apuração theo id_grupo. Trả về common.ErrNotFound nếu không tồn tại.
func (s *RoyaltyBatchService) GetBatch(ctx context.Context, idGrupo string) (*royaltymodels.RoyaltyBatch, error) {
	batch, err := s.FindOne(ctx, bson.M{"id_grupo": idGrupo}, nil)
	if err != nil {
		return nil, err
	}
	return &batch, nil
}

// CloseBatch đóng apuração: chuyển status sang fechado và ghi dataFechamento.
// Sau khi đóng thành công, tổng hợp được chạy best-effort: lỗi tổng hợp chỉ được
// log lại, không rollback việc đóng.
func (s *RoyaltyBatchService) CloseBatch(ctx context.Context, idGrupo string) (*royaltymodels.RoyaltyBatch, error) {
	batch, err := s.GetBatch(ctx, idGrupo)
	if err != nil {
		return nil, err
	}
	if err := ensureClosable(batch); err != nil {
		return nil, err
	}

	updated, err := s.UpdateOne(ctx, bson.M{"id_grupo": idGrupo}, bson.M{
		"status":         royaltymodels.BatchStatusClosed,
		"dataFechamento": time.Now().UnixMilli(),
	}, nil)
	if err != nil {
		return nil, err
	}

	// Tổng hợp best-effort sau khi đóng
	if _, aggErr := s.engine.Aggregate(ctx, idGrupo); aggErr != nil {
		logger.GetAppLogger().WithField("id_grupo", idGrupo).
			Warnf("Tổng hợp sau khi đóng apuração thất bại: %v", aggErr)
	}

	return &updated, nil
}

// DeleteBatch xóa apuração và toàn bộ dòng trung gian của nó.
// Trả về số dòng trung gian đã xóa. Apuração fechado không thể xóa.
func (s *RoyaltyBatchService) DeleteBatch(ctx context.Context, idGrupo string) (int64, error) {
	batch, err := s.GetBatch(ctx, idGrupo)
	if err != nil {
		return 0, err
	}
	if err := ensureDeletable(batch); err != nil {
		return 0, err
	}

	removed, err := s.lineService.DeleteByBatch(ctx, idGrupo)
	if err != nil {
		return 0, err
	}

	if err := s.DeleteOne(ctx, bson.M{"id_grupo": idGrupo}); err != nil {
		return removed, err
	}

	return removed, nil
}
