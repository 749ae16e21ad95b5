// Package royaltysvc - Tiện ích số học tiền tệ và mã faixa của domain apuração.
package royaltysvc

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Offset tách không gian mã faixa con khỏi mã faixa cha trong composite key.
const subTrackCodeOffset = 1000

// round2 làm tròn tiền tệ 2 chữ số thập phân (half-up tại cent).
func round2(v decimal.Decimal) float64 {
	f, _ := v.Round(2).Float64()
	return f
}

// round6 làm tròn đơn giá 6 chữ số thập phân.
func round6(v decimal.Decimal) float64 {
	f, _ := v.Round(6).Float64()
	return f
}

// parseTrackCode ép mã faixa (chuỗi) về int. Trả về 0 khi rỗng hoặc không parse được.
func parseTrackCode(s string) int {
	code, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return code
}

// percentOf tính base × percent / 100 với độ chính xác decimal.
func percentOf(base float64, percent float64) decimal.Decimal {
	return decimal.NewFromFloat(base).
		Mul(decimal.NewFromFloat(percent)).
		Div(decimal.NewFromInt(100))
}
