// Package global - Test custom validators datebr và barcode.
package global

import "testing"

type datebrInput struct {
	Data string `validate:"datebr"`
}

type barcodeInput struct {
	CodigoBarras string `validate:"barcode"`
}

func TestValidatorDateBR(t *testing.T) {
	InitValidator()

	valid := []string{"", "01-01-2024", "31-12-2025", "29-02-2024"}
	for _, v := range valid {
		if err := Validate.Struct(datebrInput{Data: v}); err != nil {
			t.Errorf("datebr(%q) bị từ chối: %v", v, err)
		}
	}

	invalid := []string{"2024-01-01", "32-01-2024", "01/01/2024", "abc"}
	for _, v := range invalid {
		if err := Validate.Struct(datebrInput{Data: v}); err == nil {
			t.Errorf("datebr(%q) phải bị từ chối", v)
		}
	}
}

func TestValidatorBarcode(t *testing.T) {
	InitValidator()

	valid := []string{"", "12345678", "7891234567890", "12345678901234"}
	for _, v := range valid {
		if err := Validate.Struct(barcodeInput{CodigoBarras: v}); err != nil {
			t.Errorf("barcode(%q) bị từ chối: %v", v, err)
		}
	}

	invalid := []string{"1234567", "123456789012345", "78912345abc90"}
	for _, v := range invalid {
		if err := Validate.Struct(barcodeInput{CodigoBarras: v}); err == nil {
			t.Errorf("barcode(%q) phải bị từ chối", v)
		}
	}
}
