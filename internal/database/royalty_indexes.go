// Package database - Index bổ sung cho module tác quyền (nested fields, compound) không thể định nghĩa qua model tags.
package database

import (
	"context"
	"strings"

	"oporto_royalty/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateRoyaltyAdditionalIndexes tạo các index bổ sung cho module tác quyền.
// Gọi sau CreateIndexes cho từng collection.
func CreateRoyaltyAdditionalIndexes(ctx context.Context, db *mongo.Database) error {
	// notas_itens: (dataMovimento, codigoBarras) — query dòng bán hàng theo kỳ của materializer
	notasItens := db.Collection(global.MongoDB_ColNames.InvoiceItems)
	if _, err := notasItens.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "dataMovimento", Value: 1},
			{Key: "codigoBarras", Value: 1},
		},
		Options: options.Index().SetName("nota_item_movimento_barras"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// apuracao_linhas: (id_grupo, codigoBarras) — engine load theo apuração, xóa theo apuração
	apuracaoLinhas := db.Collection(global.MongoDB_ColNames.RoyaltyLines)
	if _, err := apuracaoLinhas.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "id_grupo", Value: 1},
			{Key: "codigoBarras", Value: 1},
		},
		Options: options.Index().SetName("apuracao_linha_grupo_barras"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// apuracao_grupos: (status, createdAt) — worker quét apuração đang chờ theo thứ tự tạo
	apuracaoGrupos := db.Collection(global.MongoDB_ColNames.RoyaltyBatches)
	if _, err := apuracaoGrupos.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "status", Value: 1},
			{Key: "createdAt", Value: 1},
		},
		Options: options.Index().SetName("apuracao_grupo_status_created"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// catalogos: (faixas.editoras.nomeEditora) — tra cứu catálogo theo editora (màn hình quản trị)
	catalogos := db.Collection(global.MongoDB_ColNames.Catalogs)
	if _, err := catalogos.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "faixas.editoras.nomeEditora", Value: 1},
		},
		Options: options.Index().SetName("catalogo_faixa_editora").SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}
