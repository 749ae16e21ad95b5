package global

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// DateBRFormat là định dạng ngày dd-mm-yyyy dùng trong API (chuẩn Brazil)
const DateBRFormat = "02-01-2006"

// InitValidator khởi tạo validator toàn cục và đăng ký các custom validators
func InitValidator() {
	Validate = validator.New()

	// datebr: ngày theo định dạng dd-mm-yyyy (vd: 31-01-2025)
	_ = Validate.RegisterValidation("datebr", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if value == "" {
			return true // required được kiểm tra riêng
		}
		_, err := time.Parse(DateBRFormat, value)
		return err == nil
	})

	// barcode: mã vạch chỉ gồm chữ số, độ dài 8-14 (EAN-8 đến GTIN-14)
	_ = Validate.RegisterValidation("barcode", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if value == "" {
			return true
		}
		if len(value) < 8 || len(value) > 14 {
			return false
		}
		for _, r := range value {
			if r < '0' || r > '9' {
				return false
			}
		}
		return true
	})
}
