package global

import (
	"oporto_royalty/config"
	"oporto_royalty/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_Royalty_CollectionName chứa tên các collection trong MongoDB
type MongoDB_Royalty_CollectionName struct {
	Catalogs       string // Tên collection cho catálogo (sản phẩm phát hành)
	Publishers     string // Tên collection cho editora (nhà xuất bản)
	Formats        string // Tên collection cho formato (định dạng phát hành)
	InvoiceItems   string // Tên collection cho item nota fiscal (dòng bán hàng)
	RoyaltyBatches string // Tên collection cho apuração (nhóm tính tác quyền)
	RoyaltyLines   string // Tên collection cho dòng tác quyền trung gian của apuração
}

// Các biến toàn cục
var Validate *validator.Validate                                                            // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                                                           // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration                                              // Cấu hình của server
var MongoDB_ColNames MongoDB_Royalty_CollectionName = *new(MongoDB_Royalty_CollectionName) // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
