package service

import (
	"fmt"
	"strings"

	"github.com/praneeth8555/dairyadmin/internal/summary/domain"
	"github.com/xuri/excelize/v2"
)

var roomDailyHeader = []string{"Room", "Customer", "Product", "Qty", "Unit"}

// renderRoomDailyWorkbook lays the room-wise summary out one row per
// order line, with a "No Orders" row for customers receiving nothing.
func renderRoomDailyWorkbook(summary *domain.RoomDailyResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Daily Summary"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	for col, title := range roomDailyHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return nil, err
		}
	}

	row := 2
	writeRow := func(values []any) error {
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
		row++
		return nil
	}

	for _, c := range summary.Customers {
		if c.NoOrders {
			if err := writeRow([]any{c.RoomNumber, c.Name, "No Orders", "", ""}); err != nil {
				return nil, err
			}
			continue
		}
		for _, line := range c.Orders {
			name := line.ProductName
			if strings.TrimSpace(line.Acronym) != "" {
				name = line.Acronym
			}
			if err := writeRow([]any{c.RoomNumber, c.Name, name, line.Quantity, line.Unit}); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
