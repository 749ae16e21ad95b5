// Package models - AggregateRow là kết quả tổng hợp tác quyền (projection, không lưu DB).
package models

import (
	catalogmodels "oporto_royalty/internal/api/catalog/models"
)

// AggregateRow là một dòng sổ tác quyền: một editora, một obra, một faixa trên một sản phẩm.
// Các field NL/LD/NF/FX/Mus phục vụ layout in ấn.
type AggregateRow struct {
	CodigoProduto     string                   `json:"codigoProduto"`
	Formato           string                   `json:"formato"`
	Editora           string                   `json:"editora"`
	EditoraCompleta   *catalogmodels.Publisher `json:"editoraCompleta"`
	Obra              string                   `json:"obra"`
	CodigoFaixa       int                      `json:"codigoFaixa"`
	PercentualEditora float64                  `json:"percentualEditora"`
	Vendas            int64                    `json:"vendas"`
	SomaVendas        float64                  `json:"somaVendas"`
	Preco             float64                  `json:"preco"`
	PercentualObra    float64                  `json:"percentualObra"`
	ValorPagamento    float64                  `json:"valorPagamento"`
	NL                int                      `json:"NL"`
	LD                int                      `json:"LD"`
	NF                int                      `json:"NF"`
	FX                int                      `json:"FX"`
	Mus               int                      `json:"Mus"`
	Authors           string                   `json:"authors"`
	Isrc              string                   `json:"isrc"`
}
