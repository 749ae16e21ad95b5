// Package models - Format thuộc domain catálogo (formatos).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Format là danh mục định dạng sản phẩm (CD, LP, DVD...) trong collection formatos.
type Format struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Codigo    string `json:"codigo" bson:"codigo" index:"unique"`
	Descricao string `json:"descricao" bson:"descricao"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
