// Package royaltysvc - Test số học tiền tệ và parse mã faixa.
package royaltysvc

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestRound2_HalfUpAtCent(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"8.505", 8.51},
		{"8.504", 8.5},
		{"8.495", 8.5},
		{"0", 0},
		{"-1.005", -1.01},
	}
	for _, c := range cases {
		v, _ := decimal.NewFromString(c.in)
		if got := round2(v); got != c.want {
			t.Errorf("round2(%s) = %v, muốn %v", c.in, got, c.want)
		}
	}
}

func TestRound6(t *testing.T) {
	v := decimal.NewFromInt(100).Div(decimal.NewFromInt(3))
	if got := round6(v); got != 33.333333 {
		t.Errorf("round6(100/3) = %v, muốn 33.333333", got)
	}
}

func TestParseTrackCode(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"7", 7},
		{" 12 ", 12},
		{"", 0},
		{"abc", 0},
		{"3a", 0},
	}
	for _, c := range cases {
		if got := parseTrackCode(c.in); got != c.want {
			t.Errorf("parseTrackCode(%q) = %d, muốn %d", c.in, got, c.want)
		}
	}
}

func TestPercentOf(t *testing.T) {
	got, _ := percentOf(200.0, 8.5).Float64()
	if got != 17.0 {
		t.Errorf("percentOf(200, 8.5) = %v, muốn 17.0", got)
	}
	got, _ = percentOf(100.0, 0).Float64()
	if got != 0 {
		t.Errorf("percentOf(100, 0) = %v, muốn 0", got)
	}
}
