// Package royaltysvc - Test computeAggregates: phân bổ, tích lũy, faixa con, thứ tự.
package royaltysvc

import (
	"math"
	"testing"

	catalogmodels "oporto_royalty/internal/api/catalog/models"
	royaltymodels "oporto_royalty/internal/api/royalty/models"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// newDirectLine tạo dòng trung gian với catálogo 1 faixa, 1 editora trực tiếp.
func newDirectLine(barras, editora, obra string, qty int64, base, liquido, royalty float64) royaltymodels.RoyaltyLine {
	return royaltymodels.RoyaltyLine{
		CodigoBarras:        barras,
		Quantidade:          qty,
		BaseCalculo:         base,
		ValorLiquido:        liquido,
		ValorDireitoAutoral: royalty,
		Catalogo: catalogmodels.Catalog{
			CodigoBarras:             barras,
			Formato:                  "CD",
			PercentualDireitoAutoral: 8.5,
			NumeroFaixas:             10,
			Faixas: []catalogmodels.CatalogTrack{
				{
					CodigoFaixa: "1",
					Obra:        obra,
					Isrc:        "BRABC2500001",
					Editoras: []catalogmodels.PublisherShare{
						{NomeEditora: editora, PercentualParticipacao: 8.5},
					},
				},
			},
		},
	}
}

func TestComputeAggregates_DirectShareFullRoyalty(t *testing.T) {
	lines := []royaltymodels.RoyaltyLine{
		newDirectLine("789000000001", "Editora Alfa", "Obra Um", 10, 100.0, 100.0, 8.5),
	}

	rows := computeAggregates(lines, nil)
	if len(rows) != 1 {
		t.Fatalf("số dòng sổ = %d, muốn 1", len(rows))
	}

	row := rows[0]
	if row.Vendas != 10 {
		t.Errorf("vendas = %d, muốn 10", row.Vendas)
	}
	if !almostEqual(row.SomaVendas, 100.0) {
		t.Errorf("somaVendas = %v, muốn 100.0", row.SomaVendas)
	}
	if !almostEqual(row.Preco, 10.0) {
		t.Errorf("preco = %v, muốn 10.0", row.Preco)
	}
	// Editora trực tiếp nhận trọn per-line royalty, percentual chỉ được báo cáo
	if !almostEqual(row.ValorPagamento, 8.5) {
		t.Errorf("valorPagamento = %v, muốn 8.5", row.ValorPagamento)
	}
	if !almostEqual(row.PercentualEditora, 8.5) {
		t.Errorf("percentualEditora = %v, muốn 8.5", row.PercentualEditora)
	}
	if !almostEqual(row.PercentualObra, 0.85) {
		t.Errorf("percentualObra = %v, muốn 0.85 (8.5/10)", row.PercentualObra)
	}
	if row.NL != 1 || row.LD != 1 {
		t.Errorf("NL/LD = %d/%d, muốn 1/1", row.NL, row.LD)
	}
	if row.NF != 10 {
		t.Errorf("NF = %d, muốn 10", row.NF)
	}
	if row.FX != 1 || row.CodigoFaixa != 1 {
		t.Errorf("FX/codigoFaixa = %d/%d, muốn 1/1", row.FX, row.CodigoFaixa)
	}
	if row.Mus != 1 {
		t.Errorf("Mus = %d, muốn 1", row.Mus)
	}
	if row.Isrc != "BRABC2500001" {
		t.Errorf("isrc = %q, muốn BRABC2500001", row.Isrc)
	}
}

func TestComputeAggregates_TwoDirectSharesEachGetFullRoyalty(t *testing.T) {
	line := newDirectLine("789000000001", "Editora Alfa", "Obra Um", 1, 100.0, 100.0, 8.5)
	line.Catalogo.Faixas[0].Editoras = append(line.Catalogo.Faixas[0].Editoras,
		catalogmodels.PublisherShare{NomeEditora: "Editora Beta", PercentualParticipacao: 50})

	rows := computeAggregates([]royaltymodels.RoyaltyLine{line}, nil)
	if len(rows) != 2 {
		t.Fatalf("số dòng sổ = %d, muốn 2", len(rows))
	}
	// Mỗi editora trực tiếp nhận trọn royalty của dòng, không chia theo percentual
	for _, row := range rows {
		if !almostEqual(row.ValorPagamento, 8.5) {
			t.Errorf("valorPagamento của %s = %v, muốn 8.5", row.Editora, row.ValorPagamento)
		}
	}
}

func TestComputeAggregates_AccumulatesAcrossLines(t *testing.T) {
	lines := []royaltymodels.RoyaltyLine{
		newDirectLine("789000000001", "Editora Alfa", "Obra Um", 1, 100.0, 100.0, 8.5),
		newDirectLine("789000000001", "Editora Alfa", "Obra Um", 2, 50.0, 50.0, 4.25),
	}

	rows := computeAggregates(lines, nil)
	if len(rows) != 1 {
		t.Fatalf("số dòng sổ = %d, muốn 1 (cùng composite key phải gộp)", len(rows))
	}

	row := rows[0]
	if row.Vendas != 3 {
		t.Errorf("vendas = %d, muốn 3", row.Vendas)
	}
	if !almostEqual(row.SomaVendas, 150.0) {
		t.Errorf("somaVendas = %v, muốn 150.0", row.SomaVendas)
	}
	if !almostEqual(row.Preco, 50.0) {
		t.Errorf("preco = %v, muốn 50.0 (150/3)", row.Preco)
	}
	if !almostEqual(row.ValorPagamento, 12.75) {
		t.Errorf("valorPagamento = %v, muốn 12.75", row.ValorPagamento)
	}
}

func TestComputeAggregates_FirstWriterWinsOnSnapshotFields(t *testing.T) {
	first := newDirectLine("789000000001", "Editora Alfa", "Obra Um", 1, 100.0, 100.0, 8.5)
	second := newDirectLine("789000000001", "Editora Alfa", "Obra Um", 1, 100.0, 100.0, 8.5)
	// Snapshot của dòng thứ hai khác ISRC và NF, nhưng không được đè lên dòng đầu
	second.Catalogo.Faixas[0].Isrc = "BRXYZ9900099"
	second.Catalogo.NumeroFaixas = 12

	rows := computeAggregates([]royaltymodels.RoyaltyLine{first, second}, nil)
	if len(rows) != 1 {
		t.Fatalf("số dòng sổ = %d, muốn 1", len(rows))
	}
	if rows[0].Isrc != "BRABC2500001" {
		t.Errorf("isrc = %q, muốn giữ giá trị của dòng đầu tiên", rows[0].Isrc)
	}
	if rows[0].NF != 10 {
		t.Errorf("NF = %d, muốn giữ giá trị 10 của dòng đầu tiên", rows[0].NF)
	}
	if rows[0].Vendas != 2 {
		t.Errorf("vendas = %d, muốn 2 (tích lũy vẫn chạy)", rows[0].Vendas)
	}
}

func TestComputeAggregates_SubTrackProration(t *testing.T) {
	line := royaltymodels.RoyaltyLine{
		CodigoBarras:        "789000000002",
		Quantidade:          4,
		BaseCalculo:         200.0,
		ValorLiquido:        100.0,
		ValorDireitoAutoral: 17.0,
		Catalogo: catalogmodels.Catalog{
			CodigoBarras:             "789000000002",
			Formato:                  "LP",
			PercentualDireitoAutoral: 8.5,
			NumeroFaixas:             10,
			Faixas: []catalogmodels.CatalogTrack{
				{
					CodigoFaixa: "7",
					Obra:        "Pot-pourri Nordestino",
					Isrc:        "BRPOT2500007",
					SubFaixas: []catalogmodels.CatalogSubTrack{
						{
							CodigoFaixa: "1",
							Obra:        "Asa Branca",
							Editoras: []catalogmodels.PublisherShare{
								{NomeEditora: "Editora Gama", PercentualParticipacao: 50},
							},
						},
						{
							CodigoFaixa: "2",
							Obra:        "Baião",
							Editoras: []catalogmodels.PublisherShare{
								{NomeEditora: "Editora Gama", PercentualParticipacao: 25},
							},
						},
					},
				},
			},
		},
	}

	rows := computeAggregates([]royaltymodels.RoyaltyLine{line}, nil)
	if len(rows) != 2 {
		t.Fatalf("số dòng sổ = %d, muốn 2", len(rows))
	}

	byObra := map[string]royaltymodels.AggregateRow{}
	for _, row := range rows {
		byObra[row.Obra] = row
	}

	// Baseline mỗi faixa = valorLiquido/numeroFaixas = 100/10 = 10
	asa := byObra["Asa Branca"]
	if !almostEqual(asa.ValorPagamento, 5.0) {
		t.Errorf("valorPagamento Asa Branca = %v, muốn 5.0 (10 × 50%%)", asa.ValorPagamento)
	}
	baiao := byObra["Baião"]
	if !almostEqual(baiao.ValorPagamento, 2.5) {
		t.Errorf("valorPagamento Baião = %v, muốn 2.5 (10 × 25%%)", baiao.ValorPagamento)
	}

	for _, row := range rows {
		// Mã hiển thị quay về mã faixa cha
		if row.CodigoFaixa != 7 || row.FX != 7 {
			t.Errorf("codigoFaixa/FX của %s = %d/%d, muốn 7/7", row.Obra, row.CodigoFaixa, row.FX)
		}
		if row.Mus != 1 {
			t.Errorf("Mus của faixa con = %d, muốn 1", row.Mus)
		}
		if row.Isrc != "" {
			t.Errorf("isrc của faixa con = %q, muốn rỗng", row.Isrc)
		}
		if row.Vendas != 4 {
			t.Errorf("vendas = %d, muốn 4", row.Vendas)
		}
		if !almostEqual(row.SomaVendas, 200.0) {
			t.Errorf("somaVendas = %v, muốn 200.0", row.SomaVendas)
		}
	}
}

func TestComputeAggregates_SubTrackKeySeparateFromParent(t *testing.T) {
	// Faixa cha mã 7 có editora trực tiếp, faixa con cũng phân cho cùng editora cùng obra:
	// hai dòng sổ riêng nhờ offset mã faixa con trong composite key.
	line := newDirectLine("789000000003", "Editora Alfa", "Obra Um", 1, 100.0, 100.0, 8.5)
	line.Catalogo.Faixas[0].CodigoFaixa = "7"
	line.Catalogo.Faixas[0].SubFaixas = []catalogmodels.CatalogSubTrack{
		{
			CodigoFaixa: "1",
			Obra:        "Obra Um",
			Editoras: []catalogmodels.PublisherShare{
				{NomeEditora: "Editora Alfa", PercentualParticipacao: 100},
			},
		},
	}

	rows := computeAggregates([]royaltymodels.RoyaltyLine{line}, nil)
	if len(rows) != 2 {
		t.Fatalf("số dòng sổ = %d, muốn 2 (faixa cha và faixa con không được gộp)", len(rows))
	}
}

func TestComputeAggregates_ParentWithSubTracksReportsMusCount(t *testing.T) {
	line := newDirectLine("789000000004", "Editora Alfa", "Obra Um", 1, 100.0, 100.0, 8.5)
	line.Catalogo.Faixas[0].SubFaixas = []catalogmodels.CatalogSubTrack{
		{CodigoFaixa: "1", Obra: "Sub A"},
		{CodigoFaixa: "2", Obra: "Sub B"},
		{CodigoFaixa: "3", Obra: "Sub C"},
	}

	rows := computeAggregates([]royaltymodels.RoyaltyLine{line}, nil)
	if len(rows) != 1 {
		t.Fatalf("số dòng sổ = %d, muốn 1 (faixa con không có editora thì không sinh dòng)", len(rows))
	}
	if rows[0].Mus != 3 {
		t.Errorf("Mus = %d, muốn 3 (số faixa con)", rows[0].Mus)
	}
}

func TestComputeAggregates_SkipsLinesWithoutTracks(t *testing.T) {
	line := royaltymodels.RoyaltyLine{
		CodigoBarras:        "789000000005",
		Quantidade:          1,
		BaseCalculo:         100.0,
		ValorDireitoAutoral: 8.5,
		Catalogo: catalogmodels.Catalog{
			CodigoBarras: "789000000005",
			NumeroFaixas: 0,
		},
	}
	rows := computeAggregates([]royaltymodels.RoyaltyLine{line}, nil)
	if len(rows) != 0 {
		t.Errorf("số dòng sổ = %d, muốn 0 (catálogo không có faixa)", len(rows))
	}
}

func TestComputeAggregates_UnparsableTrackCodeFallsBackToZero(t *testing.T) {
	line := newDirectLine("789000000006", "Editora Alfa", "Obra Um", 1, 100.0, 100.0, 8.5)
	line.Catalogo.Faixas[0].CodigoFaixa = "abc"

	rows := computeAggregates([]royaltymodels.RoyaltyLine{line}, nil)
	if len(rows) != 1 {
		t.Fatalf("số dòng sổ = %d, muốn 1", len(rows))
	}
	if rows[0].CodigoFaixa != 0 || rows[0].FX != 0 {
		t.Errorf("codigoFaixa/FX = %d/%d, muốn 0/0", rows[0].CodigoFaixa, rows[0].FX)
	}
}

func TestComputeAggregates_PublisherMetadataAttached(t *testing.T) {
	pub := &catalogmodels.Publisher{Nome: "Editora Alfa", RazaoSocial: "Editora Alfa Ltda"}
	pubMap := map[string]*catalogmodels.Publisher{"Editora Alfa": pub}

	lines := []royaltymodels.RoyaltyLine{
		newDirectLine("789000000001", "Editora Alfa", "Obra Um", 1, 100.0, 100.0, 8.5),
		newDirectLine("789000000001", "Editora Desconhecida", "Obra Um", 1, 100.0, 100.0, 8.5),
	}
	rows := computeAggregates(lines, pubMap)
	if len(rows) != 2 {
		t.Fatalf("số dòng sổ = %d, muốn 2", len(rows))
	}
	for _, row := range rows {
		if row.Editora == "Editora Alfa" && row.EditoraCompleta != pub {
			t.Error("editoraCompleta phải trỏ tới Publisher đã đăng ký")
		}
		if row.Editora == "Editora Desconhecida" && row.EditoraCompleta != nil {
			t.Error("editoraCompleta phải nil khi editora không có trong danh bạ")
		}
	}
}

func TestComputeAggregates_Deterministic(t *testing.T) {
	lines := []royaltymodels.RoyaltyLine{
		newDirectLine("789000000002", "Editora Beta", "Obra Dois", 1, 50.0, 50.0, 4.25),
		newDirectLine("789000000001", "Editora Alfa", "Obra Um", 2, 100.0, 100.0, 8.5),
		newDirectLine("789000000001", "Editora Alfa", "Obra Um", 3, 30.0, 30.0, 2.55),
	}

	first := computeAggregates(lines, nil)
	second := computeAggregates(lines, nil)
	if len(first) != len(second) {
		t.Fatalf("hai lượt chạy cho số dòng khác nhau: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("dòng %d khác nhau giữa hai lượt chạy: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestSortAggregateRows_OrdersByProductPublisherWork(t *testing.T) {
	rows := []royaltymodels.AggregateRow{
		{CodigoProduto: "B", Editora: "Zeta", Obra: "Obra"},
		{CodigoProduto: "A", Editora: "Zeta", Obra: "Obra B"},
		{CodigoProduto: "A", Editora: "Alfa", Obra: "Obra"},
		{CodigoProduto: "A", Editora: "Zeta", Obra: "Obra A"},
	}
	sortAggregateRows(rows)

	want := []struct {
		produto, editora, obra string
	}{
		{"A", "Alfa", "Obra"},
		{"A", "Zeta", "Obra A"},
		{"A", "Zeta", "Obra B"},
		{"B", "Zeta", "Obra"},
	}
	for i, w := range want {
		if rows[i].CodigoProduto != w.produto || rows[i].Editora != w.editora || rows[i].Obra != w.obra {
			t.Errorf("vị trí %d = (%s, %s, %s), muốn (%s, %s, %s)",
				i, rows[i].CodigoProduto, rows[i].Editora, rows[i].Obra, w.produto, w.editora, w.obra)
		}
	}
}
