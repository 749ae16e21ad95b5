package worker

import (
	"context"
	"time"

	royaltymodels "oporto_royalty/internal/api/royalty/models"
	royaltysvc "oporto_royalty/internal/api/royalty/service"
	"oporto_royalty/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"
)

// MaterializeWorker worker xử lý apuracao_grupos: quét các apuração còn aguardando,
// gọi Materialize để sinh dòng trung gian. Chạy định kỳ (mặc định 60 giây), mỗi lần
// xử lý tối đa batchSize apuração, cũ nhất trước.
type MaterializeWorker struct {
	batchService        *royaltysvc.RoyaltyBatchService
	materializerService *royaltysvc.MaterializerService
	interval            time.Duration // Khoảng thời gian giữa các lần quét
	batchSize           int           // Số apuração tối đa mỗi lần quét (vd: 10)
}

// NewMaterializeWorker tạo mới MaterializeWorker.
// Tham số:
//   - interval: Khoảng thời gian giữa các lần quét (mặc định: 60 giây)
//   - batchSize: Số apuração tối đa mỗi lần quét (mặc định: 10)
func NewMaterializeWorker(interval time.Duration, batchSize int) (*MaterializeWorker, error) {
	batchService, err := royaltysvc.NewRoyaltyBatchService()
	if err != nil {
		return nil, err
	}
	materializerService, err := royaltysvc.NewMaterializerService()
	if err != nil {
		return nil, err
	}
	if interval < time.Second {
		interval = 60 * time.Second
	}
	if batchSize <= 0 {
		batchSize = 10
	}
	return &MaterializeWorker{
		batchService:        batchService,
		materializerService: materializerService,
		interval:            interval,
		batchSize:           batchSize,
	}, nil
}

// Start chạy worker trong vòng lặp: mỗi interval quét batch apuração aguardando,
// materialize từng apuração. Materialize có guard atomic aguardando → aberto nên
// trùng lặp với request API thủ công chỉ sinh StateError vô hại.
func (w *MaterializeWorker) Start(ctx context.Context) {
	log := logger.GetAppLogger()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.WithFields(map[string]interface{}{
		"interval":  w.interval.String(),
		"batchSize": w.batchSize,
	}).Info("🎵 [MATERIALIZE] Starting Materialize Worker...")

	for {
		select {
		case <-ctx.Done():
			log.Info("🎵 [MATERIALIZE] Materialize Worker stopped")
			return
		case <-ticker.C:
			func() {
				defer func() {
					if r := recover(); r != nil {
						log.WithFields(map[string]interface{}{
							"panic": r,
						}).Error("🎵 [MATERIALIZE] Panic khi materialize apuração, sẽ tiếp tục ở lần quét tiếp theo")
					}
				}()

				opts := mongoopts.Find().
					SetSort(bson.D{{Key: "createdAt", Value: 1}}).
					SetLimit(int64(w.batchSize))
				batches, err := w.batchService.Find(ctx, bson.M{
					"status": royaltymodels.BatchStatusAwaiting,
				}, opts)
				if err != nil {
					log.WithError(err).Error("🎵 [MATERIALIZE] Lỗi lấy danh sách apuração aguardando")
					return
				}
				if len(batches) == 0 {
					return
				}

				processed := 0
				for _, batch := range batches {
					count, err := w.materializerService.Materialize(ctx, batch.IdGrupo)
					if err != nil {
						log.WithError(err).WithFields(map[string]interface{}{
							"id_grupo": batch.IdGrupo,
						}).Warn("🎵 [MATERIALIZE] Materialize thất bại, bỏ qua và sẽ thử lại lần sau")
						continue
					}
					log.WithFields(map[string]interface{}{
						"id_grupo":      batch.IdGrupo,
						"linhasGeradas": count,
					}).Info("🎵 [MATERIALIZE] Đã materialize apuração")
					processed++
				}

				if processed > 0 {
					log.WithFields(map[string]interface{}{
						"processed": processed,
						"total":     len(batches),
					}).Info("🎵 [MATERIALIZE] Đã xử lý batch apuração")
				}
			}()
		}
	}
}
