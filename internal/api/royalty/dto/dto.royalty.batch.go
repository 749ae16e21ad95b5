// Package dto - DTO của domain apuração.
package dto

// BatchCreateInput là payload tạo mới apuração. Ngày theo định dạng dd-mm-yyyy.
type BatchCreateInput struct {
	DataInicial string `json:"dataInicial" validate:"required,datebr"`
	DataFinal   string `json:"dataFinal" validate:"required,datebr"`
}

// BatchResponse là dữ liệu apuração trả về cho client.
type BatchResponse struct {
	IdGrupo        string `json:"id_grupo"`
	DataInicial    int64  `json:"dataInicial"`
	DataFinal      int64  `json:"dataFinal"`
	Status         string `json:"status"`
	DataFechamento int64  `json:"dataFechamento,omitempty"`
	LinhasGeradas  int64  `json:"linhasGeradas"`
	CreatedAt      int64  `json:"createdAt"`
	UpdatedAt      int64  `json:"updatedAt"`
}

// MaterializeResponse là kết quả materialize trả về cho client.
type MaterializeResponse struct {
	IdGrupo       string `json:"id_grupo"`
	LinhasGeradas int64  `json:"linhasGeradas"`
}

// DeleteBatchResponse là kết quả xóa apuração trả về cho client.
type DeleteBatchResponse struct {
	IdGrupo         string `json:"id_grupo"`
	LinhasRemovidas int64  `json:"linhasRemovidas"`
}
