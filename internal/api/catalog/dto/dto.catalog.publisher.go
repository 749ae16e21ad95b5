package dto

// PublisherCreateInput là payload tạo mới editora.
type PublisherCreateInput struct {
	Nome        string `json:"nome" bson:"nome" validate:"required"`
	RazaoSocial string `json:"razaoSocial,omitempty" bson:"razaoSocial,omitempty"`
	Cnpj        string `json:"cnpj,omitempty" bson:"cnpj,omitempty"`
	Endereco    string `json:"endereco,omitempty" bson:"endereco,omitempty"`
	Cidade      string `json:"cidade,omitempty" bson:"cidade,omitempty"`
	Uf          string `json:"uf,omitempty" bson:"uf,omitempty" validate:"omitempty,len=2"`
	Contato     string `json:"contato,omitempty" bson:"contato,omitempty"`
	Email       string `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,email"`
}

// PublisherUpdateInput là payload cập nhật editora (partial update).
type PublisherUpdateInput struct {
	RazaoSocial string `json:"razaoSocial,omitempty" bson:"razaoSocial,omitempty"`
	Cnpj        string `json:"cnpj,omitempty" bson:"cnpj,omitempty"`
	Endereco    string `json:"endereco,omitempty" bson:"endereco,omitempty"`
	Cidade      string `json:"cidade,omitempty" bson:"cidade,omitempty"`
	Uf          string `json:"uf,omitempty" bson:"uf,omitempty" validate:"omitempty,len=2"`
	Contato     string `json:"contato,omitempty" bson:"contato,omitempty"`
	Email       string `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,email"`
}
