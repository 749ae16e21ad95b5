package main

import (
	"context"

	"oporto_royalty/config"
	catalogmodels "oporto_royalty/internal/api/catalog/models"
	invoicemodels "oporto_royalty/internal/api/invoice/models"
	royaltymodels "oporto_royalty/internal/api/royalty/models"
	"oporto_royalty/internal/database"
	"oporto_royalty/internal/global"

	"github.com/sirupsen/logrus"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	// Module catálogo
	global.MongoDB_ColNames.Catalogs = "catalogos"
	global.MongoDB_ColNames.Publishers = "editoras"
	global.MongoDB_ColNames.Formats = "formatos"

	// Module nota fiscal
	global.MongoDB_ColNames.InvoiceItems = "notas_itens"

	// Module apuração
	global.MongoDB_ColNames.RoyaltyBatches = "apuracao_grupos"
	global.MongoDB_ColNames.RoyaltyLines = "apuracao_linhas"

	logrus.Info("Initialized collection names") // Ghi log thông báo đã khởi tạo tên các collection
}

// Hàm khởi tạo validator (dùng global.InitValidator để đăng ký custom validators: datebr, barcode, ...)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator") // Ghi log thông báo đã khởi tạo validator
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil") // Ghi log lỗi nếu khởi tạo cấu hình thất bại
	}
	logrus.Info("Initialized server config") // Ghi log thông báo đã khởi tạo cấu hình server
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err) // Ghi log lỗi nếu kết nối database thất bại
	}
	logrus.Info("Connected to MongoDB") // Ghi log thông báo đã kết nối database thành công

	// Khởi tạo các db và collections nếu chưa có
	if err := database.EnsureDatabaseAndCollections(global.MongoDB_Session); err != nil {
		logrus.Fatalf("Failed to ensure database and collections: %v", err)
	}
	logrus.Info("Ensured database and collections") // Ghi log thông báo đã đảm bảo database và các collection

	// Khơi tạo các index cho các collection
	dbName := global.MongoDB_ServerConfig.MongoDB_DBName_Data
	db := global.MongoDB_Session.Database(dbName)
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Catalogs), catalogmodels.Catalog{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Publishers), catalogmodels.Publisher{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Formats), catalogmodels.Format{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.InvoiceItems), invoicemodels.InvoiceItem{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.RoyaltyBatches), royaltymodels.RoyaltyBatch{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.RoyaltyLines), royaltymodels.RoyaltyLine{})

	// Index bổ sung (nested fields, compound) không định nghĩa được qua model tags
	if err := database.CreateRoyaltyAdditionalIndexes(context.TODO(), db); err != nil {
		logrus.Errorf("Failed to create additional indexes: %v", err)
	}
}
