// Package models - InvoiceItem thuộc domain nota fiscal (notas_itens).
// Mỗi document là một dòng bán hàng đã phát hành hóa đơn.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InvoiceItem lưu dòng bán hàng trong collection notas_itens.
// dataMovimento là unix ms (UTC); materializer lọc theo khoảng ngày inclusive.
type InvoiceItem struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	CodigoBarras             string  `json:"codigoBarras" bson:"codigoBarras" index:"single:1"`
	Quantidade               int64   `json:"quantidade" bson:"quantidade"`
	ValorLiquido             float64 `json:"valorLiquido" bson:"valorLiquido"`
	BaseCalculo              float64 `json:"baseCalculo" bson:"baseCalculo"`
	PercentualDireitoAutoral float64 `json:"percentualDireitoAutoral" bson:"percentualDireitoAutoral"`
	DataMovimento            int64   `json:"dataMovimento" bson:"dataMovimento" index:"single:1"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
