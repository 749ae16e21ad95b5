// Package models - Catalog thuộc domain catálogo (catalogos).
// Mỗi catálogo là một sản phẩm (CD, vinil, DVD) với danh sách faixas và tỷ lệ phân chia editora.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PublisherShare là phần tham gia của một editora trên một faixa.
// valorDireitoAutoral là giá trị tạm tính, không được lưu trong catálogo gốc.
type PublisherShare struct {
	NomeEditora            string  `json:"nomeEditora" bson:"nomeEditora"`
	PercentualParticipacao float64 `json:"percentualParticipacao" bson:"percentualParticipacao"`
	CodigoObra             string  `json:"codigoObra,omitempty" bson:"codigoObra,omitempty"`
	ValorDireitoAutoral    float64 `json:"valorDireitoAutoral,omitempty" bson:"valorDireitoAutoral,omitempty"`
}

// CatalogSubTrack là faixa con (pot-pourri): không có ISRC riêng và không lồng thêm cấp nào nữa.
type CatalogSubTrack struct {
	CodigoFaixa string           `json:"codigoFaixa" bson:"codigoFaixa"`
	Obra        string           `json:"obra" bson:"obra"`
	Autores     string           `json:"autores,omitempty" bson:"autores,omitempty"`
	Editoras    []PublisherShare `json:"editoras" bson:"editoras"`
}

// CatalogTrack là một faixa của catálogo.
// codigoFaixa là chuỗi số; khi tính toán sẽ được ép về int (fallback 0 nếu không parse được).
type CatalogTrack struct {
	CodigoFaixa string            `json:"codigoFaixa" bson:"codigoFaixa"`
	Obra        string            `json:"obra" bson:"obra"`
	Autores     string            `json:"autores,omitempty" bson:"autores,omitempty"`
	Isrc        string            `json:"isrc,omitempty" bson:"isrc,omitempty"`
	Editoras    []PublisherShare  `json:"editoras" bson:"editoras"`
	SubFaixas   []CatalogSubTrack `json:"subFaixas,omitempty" bson:"subFaixas,omitempty"`
}

// Catalog lưu thông tin sản phẩm trong collection catalogos.
type Catalog struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	CodigoBarras             string         `json:"codigoBarras" bson:"codigoBarras" index:"unique"`
	NomeCatalogo             string         `json:"nomeCatalogo" bson:"nomeCatalogo"`
	Formato                  string         `json:"formato" bson:"formato" index:"single:1"`
	PercentualDireitoAutoral float64        `json:"percentualDireitoAutoral" bson:"percentualDireitoAutoral"`
	NumeroFaixas             int            `json:"numeroFaixas" bson:"numeroFaixas"`
	Faixas                   []CatalogTrack `json:"faixas" bson:"faixas"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
