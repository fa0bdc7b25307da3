package generate_excel

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"damper-takip/internal/service/progress"
	"damper-takip/internal/service/stats"
	"damper-takip/internal/steps"
	"damper-takip/internal/storage"
	"damper-takip/internal/storage/mysql"
)

type ReportStorage interface {
	GetDampers(ctx context.Context, filter mysql.DamperFilter) ([]*storage.Damper, error)
	GetDorses(ctx context.Context, search string) ([]*storage.Dorse, error)
	GetSasis(ctx context.Context, search string) ([]*storage.Sasi, error)
}

type ReportService struct {
	storage ReportStorage
}

func NewReportService(storage ReportStorage) *ReportService {
	return &ReportService{storage: storage}
}

// GenerateSummary renders the summary table of one fleet as an xlsx workbook:
// one row per order, one status column per stage, progress at the end.
func (g *ReportService) GenerateSummary(ctx context.Context, product steps.Product) ([]byte, error) {
	const op = "service.generate-excel.GenerateSummary"

	switch product {
	case steps.Damper:
		orders, err := g.storage.GetDampers(ctx, mysql.DamperFilter{})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		return writeSummary(orders, product, "Damper Özet")
	case steps.Dorse:
		orders, err := g.storage.GetDorses(ctx, "")
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		return writeSummary(orders, product, "Dorse Özet")
	case steps.Sasi:
		orders, err := g.storage.GetSasis(ctx, "")
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		return writeSummary(orders, product, "Şasi Özet")
	default:
		return nil, fmt.Errorf("%s: bilinmeyen ürün tipi: %s", op, product)
	}
}

func writeSummary[T stats.Order](orders []T, product steps.Product, sheet string) ([]byte, error) {
	defs := steps.Definitions(product)

	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})

	headers := []string{"İmalat No", "Müşteri"}
	if product == steps.Damper {
		headers = append(headers, "M³")
	}
	for _, def := range defs {
		headers = append(headers, def.Name)
	}
	headers = append(headers, "İlerleme %")

	for i, name := range headers {
		f.SetCellValue(sheet, cellName(i+1, 1), name)
	}
	f.SetCellStyle(sheet, "A1", cellName(len(headers), 1), headerStyle)

	for rowIdx, o := range orders {
		rowNum := rowIdx + 2
		col := 1

		if no := o.SerialNo(); no != nil {
			f.SetCellValue(sheet, cellName(col, rowNum), *no)
		}
		col++
		f.SetCellValue(sheet, cellName(col, rowNum), o.CustomerName())
		col++
		if product == steps.Damper {
			if m3 := o.Capacity(); m3 != nil {
				f.SetCellValue(sheet, cellName(col, rowNum), *m3)
			}
			col++
		}
		for _, def := range defs {
			f.SetCellValue(sheet, cellName(col, rowNum), progress.StageStatus(o, def).String())
			col++
		}
		f.SetCellValue(sheet, cellName(col, rowNum), progress.Percent(o, product))
	}

	f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
	})
	f.SetColWidth(sheet, "A", cellColumn(len(headers)), 16)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

func cellColumn(col int) string {
	name, _ := excelize.ColumnNumberToName(col)
	return name
}
