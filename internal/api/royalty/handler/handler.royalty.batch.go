// Package royaltyhdl - Handler vòng đời apuração.
package royaltyhdl

import (
	"fmt"

	basehdl "oporto_royalty/internal/api/base/handler"
	royaltydto "oporto_royalty/internal/api/royalty/dto"
	royaltymodels "oporto_royalty/internal/api/royalty/models"
	royaltysvc "oporto_royalty/internal/api/royalty/service"
	"oporto_royalty/internal/common"

	"github.com/gofiber/fiber/v3"
)

// BatchHandler xử lý vòng đời apuração: tạo, xem, materialize, đóng, xóa, xem sổ.
type BatchHandler struct {
	*basehdl.BaseHandler[royaltymodels.RoyaltyBatch, royaltydto.BatchCreateInput, royaltydto.BatchCreateInput]
	BatchService        *royaltysvc.RoyaltyBatchService
	MaterializerService *royaltysvc.MaterializerService
	Engine              *royaltysvc.AggregationService
}

// NewBatchHandler tạo BatchHandler mới.
func NewBatchHandler() (*BatchHandler, error) {
	batchService, err := royaltysvc.NewRoyaltyBatchService()
	if err != nil {
		return nil, fmt.Errorf("tạo RoyaltyBatchService: %w", err)
	}
	materializerService, err := royaltysvc.NewMaterializerService()
	if err != nil {
		return nil, fmt.Errorf("tạo MaterializerService: %w", err)
	}
	engine, err := royaltysvc.NewAggregationService()
	if err != nil {
		return nil, fmt.Errorf("tạo AggregationService: %w", err)
	}
	return &BatchHandler{
		BaseHandler:         basehdl.NewBaseHandler[royaltymodels.RoyaltyBatch, royaltydto.BatchCreateInput, royaltydto.BatchCreateInput](batchService),
		BatchService:        batchService,
		MaterializerService: materializerService,
		Engine:              engine,
	}, nil
}

// requireIdGrupo đọc :id từ URL params, trả lỗi VAL nếu thiếu.
func requireIdGrupo(c fiber.Ctx) (string, error) {
	idGrupo := c.Params("id")
	if idGrupo == "" {
		return "", common.NewError(
			common.ErrCodeValidationInput,
			"Thiếu id apuração trong URL params",
			common.StatusBadRequest,
			nil,
		)
	}
	return idGrupo, nil
}

// toBatchResponse chuyển model apuração sang DTO trả về.
func toBatchResponse(batch *royaltymodels.RoyaltyBatch) *royaltydto.BatchResponse {
	return &royaltydto.BatchResponse{
		IdGrupo:        batch.IdGrupo,
		DataInicial:    batch.DataInicial,
		DataFinal:      batch.DataFinal,
		Status:         batch.Status,
		DataFechamento: batch.DataFechamento,
		LinhasGeradas:  batch.LinhasGeradas,
		CreatedAt:      batch.CreatedAt,
		UpdatedAt:      batch.UpdatedAt,
	}
}

// HandleCreateBatch xử lý POST /apuracoes.
func (h *BatchHandler) HandleCreateBatch(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input royaltydto.BatchCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		batch, err := h.BatchService.CreateBatch(c.Context(), input.DataInicial, input.DataFinal)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleResponse(c, toBatchResponse(batch), nil)
		return nil
	})
}

// HandleGetBatch xử lý GET /apuracoes/:id.
func (h *BatchHandler) HandleGetBatch(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		idGrupo, err := requireIdGrupo(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		batch, err := h.BatchService.GetBatch(c.Context(), idGrupo)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleResponse(c, toBatchResponse(batch), nil)
		return nil
	})
}

// HandleMaterialize xử lý POST /apuracoes/:id/materializar.
func (h *BatchHandler) HandleMaterialize(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		idGrupo, err := requireIdGrupo(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		count, err := h.MaterializerService.Materialize(c.Context(), idGrupo)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleResponse(c, &royaltydto.MaterializeResponse{
			IdGrupo:       idGrupo,
			LinhasGeradas: count,
		}, nil)
		return nil
	})
}

// HandleCloseBatch xử lý POST /apuracoes/:id/fechar.
func (h *BatchHandler) HandleCloseBatch(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		idGrupo, err := requireIdGrupo(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		batch, err := h.BatchService.CloseBatch(c.Context(), idGrupo)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleResponse(c, toBatchResponse(batch), nil)
		return nil
	})
}

// HandleDeleteBatch xử lý DELETE /apuracoes/:id.
func (h *BatchHandler) HandleDeleteBatch(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		idGrupo, err := requireIdGrupo(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		removed, err := h.BatchService.DeleteBatch(c.Context(), idGrupo)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleResponse(c, &royaltydto.DeleteBatchResponse{
			IdGrupo:         idGrupo,
			LinhasRemovidas: removed,
		}, nil)
		return nil
	})
}

// HandleGetResult xử lý GET /apuracoes/:id/resultado.
// Sổ tác quyền là projection tính lại mỗi lần gọi, không lưu DB.
func (h *BatchHandler) HandleGetResult(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		idGrupo, err := requireIdGrupo(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		rows, err := h.Engine.Aggregate(c.Context(), idGrupo)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleResponse(c, rows, nil)
		return nil
	})
}
