package report

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const SheetName = "Resumo"

// Workbook выгрузка сводки в xlsx: колонки раздел / позиция / значение / единица / текст.
func Workbook(p Plan) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), SheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	header := []interface{}{"Seção", "Item", "Valor", "Unidade", "Texto"}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	row := 2
	for _, s := range Sections(p) {
		for _, l := range s.Lines {
			cell, err := excelize.CoordinatesToCellName(1, row)
			if err != nil {
				return nil, err
			}
			var amount interface{}
			if l.Unit != "" || s.Title == "Convidados" {
				amount = decimal.NewFromFloat(l.Amount).Round(3).InexactFloat64()
			}
			r := []interface{}{s.Title, l.Label, amount, l.Unit, l.Value}
			if err := f.SetSheetRow(SheetName, cell, &r); err != nil {
				return nil, fmt.Errorf("write row %d: %w", row, err)
			}
			row++
		}
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
