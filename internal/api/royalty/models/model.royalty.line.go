// Package models - RoyaltyLine thuộc domain apuração (apuracao_linhas).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	catalogmodels "oporto_royalty/internal/api/catalog/models"
)

// RoyaltyLine là dòng trung gian bất biến của một apuração (apuracao_linhas).
// catalogo là snapshot của catálogo tại thời điểm materialize; chỉnh sửa
// catálogo về sau không làm thay đổi apuração lịch sử.
type RoyaltyLine struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	IdGrupo                  string                `json:"id_grupo" bson:"id_grupo" index:"single:1"`
	CodigoBarras             string                `json:"codigoBarras" bson:"codigoBarras"`
	Quantidade               int64                 `json:"quantidade" bson:"quantidade"`
	BaseCalculo              float64               `json:"baseCalculo" bson:"baseCalculo"`
	ValorLiquido             float64               `json:"valorLiquido" bson:"valorLiquido"`
	PercentualDireitoAutoral float64               `json:"percentualDireitoAutoral" bson:"percentualDireitoAutoral"`
	ValorDireitoAutoral      float64               `json:"valorDireitoAutoral" bson:"valorDireitoAutoral"`
	Catalogo                 catalogmodels.Catalog `json:"catalogo" bson:"catalogo"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
