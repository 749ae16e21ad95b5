package main

import (
	"context"

	catalogmodels "oporto_royalty/internal/api/catalog/models"
	catalogsvc "oporto_royalty/internal/api/catalog/service"
	"oporto_royalty/internal/global"
	"oporto_royalty/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
)

// defaultFormats là danh sách formato mặc định được seed khi chạy InitMode.
var defaultFormats = []catalogmodels.Format{
	{Codigo: "CD", Descricao: "Compact Disc"},
	{Codigo: "DVD", Descricao: "Digital Versatile Disc"},
	{Codigo: "BLU", Descricao: "Blu-ray Disc"},
	{Codigo: "LP", Descricao: "Long Play (vinil)"},
	{Codigo: "K7", Descricao: "Fita cassete"},
	{Codigo: "DIG", Descricao: "Distribuição digital"},
}

func InitDefaultData() {
	log := logger.GetAppLogger()

	// Chỉ seed dữ liệu mặc định khi chạy ở chế độ khởi tạo
	if !global.MongoDB_ServerConfig.InitMode {
		log.Info("InitMode disabled, skipping default data")
		return
	}

	log.Info("🔄 [INIT] Starting InitDefaultData...")

	formatService, err := catalogsvc.NewFormatService()
	if err != nil {
		log.Fatalf("Failed to initialize format service: %v", err)
	}

	// Seed formato mặc định: upsert theo codigo, chạy lại không tạo trùng
	seeded := 0
	for _, format := range defaultFormats {
		if _, err := formatService.Upsert(context.TODO(), bson.M{"codigo": format.Codigo}, format); err != nil {
			log.WithError(err).Errorf("❌ [INIT] Failed to seed formato %s", format.Codigo)
			continue
		}
		seeded++
	}
	log.Infof("✅ [INIT] Seeded %d/%d formatos", seeded, len(defaultFormats))
}
