// Package royaltysvc - Test guard vòng đời apuração và chuẩn hóa biên kỳ.
package royaltysvc

import (
	"errors"
	"testing"
	"time"

	royaltymodels "oporto_royalty/internal/api/royalty/models"
	"oporto_royalty/internal/common"
)

func TestEnsureClosable(t *testing.T) {
	for _, status := range []string{royaltymodels.BatchStatusAwaiting, royaltymodels.BatchStatusOpen} {
		batch := &royaltymodels.RoyaltyBatch{IdGrupo: "g1", Status: status}
		if err := ensureClosable(batch); err != nil {
			t.Errorf("ensureClosable(%s) = %v, muốn nil", status, err)
		}
	}

	batch := &royaltymodels.RoyaltyBatch{IdGrupo: "g1", Status: royaltymodels.BatchStatusClosed}
	err := ensureClosable(batch)
	if err == nil {
		t.Fatal("ensureClosable(fechado) phải trả lỗi")
	}
	var appErr *common.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("lỗi không phải *common.Error: %T", err)
	}
	if appErr.StatusCode != common.StatusConflict {
		t.Errorf("statusCode = %d, muốn %d", appErr.StatusCode, common.StatusConflict)
	}
}

func TestEnsureDeletable(t *testing.T) {
	batch := &royaltymodels.RoyaltyBatch{IdGrupo: "g1", Status: royaltymodels.BatchStatusAwaiting}
	if err := ensureDeletable(batch); err != nil {
		t.Errorf("ensureDeletable(aguardando) = %v, muốn nil", err)
	}

	batch.Status = royaltymodels.BatchStatusClosed
	err := ensureDeletable(batch)
	if err == nil {
		t.Fatal("ensureDeletable(fechado) phải trả lỗi")
	}
	var appErr *common.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("lỗi không phải *common.Error: %T", err)
	}
	if appErr.StatusCode != common.StatusConflict {
		t.Errorf("statusCode = %d, muốn %d", appErr.StatusCode, common.StatusConflict)
	}
}

func TestNormalizePeriod_InclusiveBounds(t *testing.T) {
	start := time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)
	end := time.Date(2024, 3, 7, 1, 0, 0, 0, time.UTC)

	startMs, endMs := normalizePeriod(start, end)

	wantStart := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC).UnixMilli()
	wantEnd := time.Date(2024, 3, 7, 23, 59, 59, 999000000, time.UTC).UnixMilli()
	if startMs != wantStart {
		t.Errorf("startMs = %d, muốn %d (00:00:00.000Z)", startMs, wantStart)
	}
	if endMs != wantEnd {
		t.Errorf("endMs = %d, muốn %d (23:59:59.999Z)", endMs, wantEnd)
	}
}

func TestNormalizePeriod_SingleDay(t *testing.T) {
	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	startMs, endMs := normalizePeriod(day, day)
	if endMs <= startMs {
		t.Errorf("biên kỳ một ngày phải có endMs > startMs: %d vs %d", endMs, startMs)
	}
	if endMs-startMs != 24*60*60*1000-1 {
		t.Errorf("độ dài kỳ = %d ms, muốn 86399999", endMs-startMs)
	}
}
