// Package dto - DTO của domain catálogo.
package dto

// PublisherShareInput là phần tham gia editora trên faixa trong payload catálogo.
type PublisherShareInput struct {
	NomeEditora            string  `json:"nomeEditora" bson:"nomeEditora" validate:"required"`
	PercentualParticipacao float64 `json:"percentualParticipacao" bson:"percentualParticipacao" validate:"gte=0,lte=100"`
	CodigoObra             string  `json:"codigoObra,omitempty" bson:"codigoObra,omitempty"`
}

// CatalogSubTrackInput là faixa con trong payload catálogo.
type CatalogSubTrackInput struct {
	CodigoFaixa string                `json:"codigoFaixa" bson:"codigoFaixa" validate:"required"`
	Obra        string                `json:"obra" bson:"obra" validate:"required"`
	Autores     string                `json:"autores,omitempty" bson:"autores,omitempty"`
	Editoras    []PublisherShareInput `json:"editoras" bson:"editoras" validate:"dive"`
}

// CatalogTrackInput là faixa trong payload catálogo.
type CatalogTrackInput struct {
	CodigoFaixa string                 `json:"codigoFaixa" bson:"codigoFaixa" validate:"required"`
	Obra        string                 `json:"obra" bson:"obra" validate:"required"`
	Autores     string                 `json:"autores,omitempty" bson:"autores,omitempty"`
	Isrc        string                 `json:"isrc,omitempty" bson:"isrc,omitempty"`
	Editoras    []PublisherShareInput  `json:"editoras" bson:"editoras" validate:"dive"`
	SubFaixas   []CatalogSubTrackInput `json:"subFaixas,omitempty" bson:"subFaixas,omitempty" validate:"dive"`
}

// CatalogCreateInput là payload tạo mới catálogo.
type CatalogCreateInput struct {
	CodigoBarras             string              `json:"codigoBarras" bson:"codigoBarras" validate:"required,barcode"`
	NomeCatalogo             string              `json:"nomeCatalogo" bson:"nomeCatalogo" validate:"required"`
	Formato                  string              `json:"formato" bson:"formato" validate:"required"`
	PercentualDireitoAutoral float64             `json:"percentualDireitoAutoral" bson:"percentualDireitoAutoral" validate:"gte=0,lte=100"`
	NumeroFaixas             int                 `json:"numeroFaixas" bson:"numeroFaixas" validate:"gte=0"`
	Faixas                   []CatalogTrackInput `json:"faixas" bson:"faixas" validate:"dive"`
}

// CatalogUpdateInput là payload cập nhật catálogo (partial update, chỉ các field có mặt).
type CatalogUpdateInput struct {
	NomeCatalogo             string              `json:"nomeCatalogo,omitempty" bson:"nomeCatalogo,omitempty"`
	Formato                  string              `json:"formato,omitempty" bson:"formato,omitempty"`
	PercentualDireitoAutoral float64             `json:"percentualDireitoAutoral,omitempty" bson:"percentualDireitoAutoral,omitempty" validate:"omitempty,gte=0,lte=100"`
	NumeroFaixas             int                 `json:"numeroFaixas,omitempty" bson:"numeroFaixas,omitempty" validate:"omitempty,gte=0"`
	Faixas                   []CatalogTrackInput `json:"faixas,omitempty" bson:"faixas,omitempty" validate:"omitempty,dive"`
}
