// Package models - Publisher thuộc domain catálogo (editoras).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Publisher lưu thông tin editora trong collection editoras.
// Khớp với catálogo qua nomeEditora (khớp chính xác, phân biệt hoa thường).
type Publisher struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Nome        string `json:"nome" bson:"nome" index:"unique"`
	RazaoSocial string `json:"razaoSocial,omitempty" bson:"razaoSocial,omitempty"`
	Cnpj        string `json:"cnpj,omitempty" bson:"cnpj,omitempty"`
	Endereco    string `json:"endereco,omitempty" bson:"endereco,omitempty"`
	Cidade      string `json:"cidade,omitempty" bson:"cidade,omitempty"`
	Uf          string `json:"uf,omitempty" bson:"uf,omitempty"`
	Contato     string `json:"contato,omitempty" bson:"contato,omitempty"`
	Email       string `json:"email,omitempty" bson:"email,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
