// Package models - RoyaltyBatch thuộc domain apuração (apuracao_grupos).
// Một apuração là một kỳ tính tác quyền với vòng đời aguardando → aberto → fechado.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái vòng đời của apuração.
const (
	BatchStatusAwaiting = "aguardando" // Đã tạo, chưa materialize
	BatchStatusOpen     = "aberto"     // Đã materialize xong, có thể tổng hợp
	BatchStatusClosed   = "fechado"    // Đã chốt, bất biến
)

// RoyaltyBatch lưu kỳ apuração trong collection apuracao_grupos.
type RoyaltyBatch struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	IdGrupo        string `json:"id_grupo" bson:"id_grupo" index:"unique"`
	DataInicial    int64  `json:"dataInicial" bson:"dataInicial"`
	DataFinal      int64  `json:"dataFinal" bson:"dataFinal"`
	Status         string `json:"status" bson:"status" index:"single:1"`
	DataFechamento int64  `json:"dataFechamento,omitempty" bson:"dataFechamento,omitempty"`
	LinhasGeradas  int64  `json:"linhasGeradas" bson:"linhasGeradas"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
