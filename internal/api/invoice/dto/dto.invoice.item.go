// Package dto - DTO của domain nota fiscal.
package dto

// InvoiceItemCreateInput là payload tạo mới dòng nota fiscal.
type InvoiceItemCreateInput struct {
	CodigoBarras             string  `json:"codigoBarras" bson:"codigoBarras" validate:"required,barcode"`
	Quantidade               int64   `json:"quantidade" bson:"quantidade" validate:"gt=0"`
	ValorLiquido             float64 `json:"valorLiquido" bson:"valorLiquido" validate:"gte=0"`
	BaseCalculo              float64 `json:"baseCalculo" bson:"baseCalculo" validate:"gte=0"`
	PercentualDireitoAutoral float64 `json:"percentualDireitoAutoral" bson:"percentualDireitoAutoral" validate:"gte=0,lte=100"`
	DataMovimento            int64   `json:"dataMovimento" bson:"dataMovimento" validate:"required,gt=0"`
}

// InvoiceItemUpdateInput là payload cập nhật dòng nota fiscal (partial update).
type InvoiceItemUpdateInput struct {
	Quantidade               int64   `json:"quantidade,omitempty" bson:"quantidade,omitempty" validate:"omitempty,gt=0"`
	ValorLiquido             float64 `json:"valorLiquido,omitempty" bson:"valorLiquido,omitempty" validate:"omitempty,gte=0"`
	BaseCalculo              float64 `json:"baseCalculo,omitempty" bson:"baseCalculo,omitempty" validate:"omitempty,gte=0"`
	PercentualDireitoAutoral float64 `json:"percentualDireitoAutoral,omitempty" bson:"percentualDireitoAutoral,omitempty" validate:"omitempty,gte=0,lte=100"`
	DataMovimento            int64   `json:"dataMovimento,omitempty" bson:"dataMovimento,omitempty" validate:"omitempty,gt=0"`
}
