// Package royaltysvc - Engine tổng hợp tác quyền theo editora.
//
// Aggregate đọc các dòng trung gian bất biến của một apuração và nổ từng dòng
// thành các phần editora theo faixa/faixa con, tích lũy theo composite key
// (codigoBarras, formato, editora, obra, codigoFaixa). Kết quả là projection
// thuần, không lưu DB: gọi lại với dữ liệu không đổi cho ra output giống hệt,
// kể cả thứ tự.
package royaltysvc

import (
	"context"
	"fmt"
	"sort"

	basesvc "oporto_royalty/internal/api/base/service"
	catalogmodels "oporto_royalty/internal/api/catalog/models"
	catalogsvc "oporto_royalty/internal/api/catalog/service"
	royaltymodels "oporto_royalty/internal/api/royalty/models"
	"oporto_royalty/internal/common"
	"oporto_royalty/internal/global"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// AggregationService tổng hợp dòng trung gian thành sổ tác quyền theo editora.
type AggregationService struct {
	batchService     *basesvc.BaseServiceMongoImpl[royaltymodels.RoyaltyBatch]
	lineService      *RoyaltyLineService
	publisherService *catalogsvc.PublisherService
}

// NewAggregationService tạo AggregationService mới.
func NewAggregationService() (*AggregationService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.RoyaltyBatches)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.RoyaltyBatches, common.ErrNotFound)
	}
	lineService, err := NewRoyaltyLineService()
	if err != nil {
		return nil, fmt.Errorf("tạo RoyaltyLineService: %w", err)
	}
	publisherService, err := catalogsvc.NewPublisherService()
	if err != nil {
		return nil, fmt.Errorf("tạo PublisherService: %w", err)
	}
	return &AggregationService{
		batchService:     basesvc.NewBaseServiceMongo[royaltymodels.RoyaltyBatch](coll),
		lineService:      lineService,
		publisherService: publisherService,
	}, nil
}

// aggregateKey là composite key của một dòng sổ: sản phẩm, định dạng, editora, obra, mã faixa.
// Mã faixa con mang offset +1000 để tách không gian key khỏi faixa cha.
type aggregateKey struct {
	CodigoBarras string
	Formato      string
	Editora      string
	Obra         string
	CodigoFaixa  int
}

// aggregateAcc tích lũy một dòng sổ trước khi chốt số.
// Tiền tệ tích lũy bằng decimal để tránh sai số float cộng dồn.
type aggregateAcc struct {
	row       royaltymodels.AggregateRow
	soma      decimal.Decimal
	pagamento decimal.Decimal
}

// Aggregate trả về sổ tác quyền của apuração idGrupo, đã sắp thứ tự.
// Trả về common.ErrNotFound nếu apuração không tồn tại.
func (s *AggregationService) Aggregate(ctx context.Context, idGrupo string) ([]royaltymodels.AggregateRow, error) {
	if _, err := s.batchService.FindOne(ctx, bson.M{"id_grupo": idGrupo}, nil); err != nil {
		return nil, err
	}

	lines, err := s.lineService.FindByBatch(ctx, idGrupo)
	if err != nil {
		return nil, err
	}

	// Danh bạ editora tải một lần mỗi lượt gọi, chỉ để gắn metadata vào output
	publishers, err := s.publisherService.FindAllPublishers(ctx)
	if err != nil {
		return nil, err
	}
	pubMap := make(map[string]*catalogmodels.Publisher, len(publishers))
	for i := range publishers {
		pubMap[publishers[i].Nome] = &publishers[i]
	}

	rows := computeAggregates(lines, pubMap)
	sortAggregateRows(rows)
	return rows, nil
}

// computeAggregates nổ từng dòng trung gian thành các phần editora và tích lũy
// theo composite key. Thuần túy (không I/O) để kiểm thử được các thuộc tính
// xác định, bảo toàn tổng và first-writer-wins.
//
// Bất đối xứng nguồn được giữ nguyên có chủ ý: phần editora trên faixa trực tiếp
// nhận TRỌN per-line royalty (percentualParticipacao chỉ được báo cáo, không
// chia); phần editora trên faixa con được chia theo tỷ lệ.
func computeAggregates(lines []royaltymodels.RoyaltyLine, pubMap map[string]*catalogmodels.Publisher) []royaltymodels.AggregateRow {
	accs := make(map[aggregateKey]*aggregateAcc)
	order := make([]aggregateKey, 0)

	for i := range lines {
		line := &lines[i]
		catalog := &line.Catalogo

		// Dòng không có faixa nào thì không thể phân bổ cho ai
		if len(catalog.Faixas) == 0 {
			continue
		}

		percentualObra := 0.0
		if catalog.PercentualDireitoAutoral > 0 && catalog.NumeroFaixas > 0 {
			percentualObra = catalog.PercentualDireitoAutoral / float64(catalog.NumeroFaixas)
		}

		for t := range catalog.Faixas {
			track := &catalog.Faixas[t]
			trackCode := parseTrackCode(track.CodigoFaixa)

			musicCount := 1
			if len(track.SubFaixas) > 0 {
				musicCount = len(track.SubFaixas)
			}

			// Phần editora trực tiếp trên faixa: trọn per-line royalty
			for _, share := range track.Editoras {
				key := aggregateKey{
					CodigoBarras: line.CodigoBarras,
					Formato:      catalog.Formato,
					Editora:      share.NomeEditora,
					Obra:         track.Obra,
					CodigoFaixa:  trackCode,
				}
				acc, exists := accs[key]
				if !exists {
					acc = &aggregateAcc{
						row: royaltymodels.AggregateRow{
							CodigoProduto:     line.CodigoBarras,
							Formato:           catalog.Formato,
							Editora:           share.NomeEditora,
							EditoraCompleta:   pubMap[share.NomeEditora],
							Obra:              track.Obra,
							CodigoFaixa:       trackCode,
							PercentualEditora: share.PercentualParticipacao,
							PercentualObra:    percentualObra,
							NL:                1,
							LD:                1,
							NF:                catalog.NumeroFaixas,
							FX:                trackCode,
							Mus:               musicCount,
							Authors:           track.Autores,
							Isrc:              track.Isrc,
						},
					}
					accs[key] = acc
					order = append(order, key)
				}
				acc.row.Vendas += line.Quantidade
				acc.soma = acc.soma.Add(decimal.NewFromFloat(line.BaseCalculo))
				acc.pagamento = acc.pagamento.Add(decimal.NewFromFloat(line.ValorDireitoAutoral))
			}

			// Phần editora trên faixa con: chia theo tỷ lệ từ baseline valorLiquido/numeroFaixas
			if len(track.SubFaixas) == 0 {
				continue
			}
			royaltyPerTrack := decimal.Zero
			if catalog.NumeroFaixas > 0 {
				royaltyPerTrack = decimal.NewFromFloat(line.ValorLiquido).
					Div(decimal.NewFromInt(int64(catalog.NumeroFaixas)))
			}
			subCode := trackCode + subTrackCodeOffset

			for st := range track.SubFaixas {
				sub := &track.SubFaixas[st]
				for _, share := range sub.Editoras {
					contribution := royaltyPerTrack.
						Mul(decimal.NewFromFloat(share.PercentualParticipacao)).
						Div(decimal.NewFromInt(100))

					key := aggregateKey{
						CodigoBarras: line.CodigoBarras,
						Formato:      catalog.Formato,
						Editora:      share.NomeEditora,
						Obra:         sub.Obra,
						CodigoFaixa:  subCode,
					}
					acc, exists := accs[key]
					if !exists {
						acc = &aggregateAcc{
							row: royaltymodels.AggregateRow{
								CodigoProduto:     line.CodigoBarras,
								Formato:           catalog.Formato,
								Editora:           share.NomeEditora,
								EditoraCompleta:   pubMap[share.NomeEditora],
								Obra:              sub.Obra,
								CodigoFaixa:       subCode - subTrackCodeOffset,
								PercentualEditora: share.PercentualParticipacao,
								PercentualObra:    percentualObra,
								NL:                1,
								LD:                1,
								NF:                catalog.NumeroFaixas,
								FX:                subCode - subTrackCodeOffset,
								Mus:               1,
								Authors:           sub.Autores,
								Isrc:              "",
							},
						}
						accs[key] = acc
						order = append(order, key)
					}
					acc.row.Vendas += line.Quantidade
					acc.soma = acc.soma.Add(decimal.NewFromFloat(line.BaseCalculo))
					acc.pagamento = acc.pagamento.Add(contribution)
				}
			}
		}
	}

	// Chốt số theo thứ tự first-seen để output ổn định trước khi sort
	rows := make([]royaltymodels.AggregateRow, 0, len(order))
	for _, key := range order {
		acc := accs[key]
		acc.row.SomaVendas, _ = acc.soma.Float64()
		if acc.row.Vendas > 0 {
			acc.row.Preco = round6(acc.soma.Div(decimal.NewFromInt(acc.row.Vendas)))
		}
		acc.row.ValorPagamento = round2(acc.pagamento)
		rows = append(rows, acc.row)
	}
	return rows
}

// sortAggregateRows sắp sổ tăng dần theo (codigoProduto, editora, obra) với
// so sánh chuỗi theo locale pt-BR. Tie-break bằng formato và codigoFaixa để
// thứ tự luôn xác định.
func sortAggregateRows(rows []royaltymodels.AggregateRow) {
	col := collate.New(language.BrazilianPortuguese)
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := &rows[i], &rows[j]
		if c := col.CompareString(a.CodigoProduto, b.CodigoProduto); c != 0 {
			return c < 0
		}
		if c := col.CompareString(a.Editora, b.Editora); c != 0 {
			return c < 0
		}
		if c := col.CompareString(a.Obra, b.Obra); c != 0 {
			return c < 0
		}
		if a.Formato != b.Formato {
			return a.Formato < b.Formato
		}
		return a.CodigoFaixa < b.CodigoFaixa
	})
}
