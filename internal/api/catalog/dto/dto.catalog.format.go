package dto

// FormatCreateInput là payload tạo mới formato.
type FormatCreateInput struct {
	Codigo    string `json:"codigo" bson:"codigo" validate:"required"`
	Descricao string `json:"descricao" bson:"descricao" validate:"required"`
}

// FormatUpdateInput là payload cập nhật formato (partial update).
type FormatUpdateInput struct {
	Descricao string `json:"descricao,omitempty" bson:"descricao,omitempty"`
}
