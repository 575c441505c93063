// Package export writes the catalog as a spreadsheet with display labels.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/blackwell-systems/floractl/internal/catalog"
	"github.com/blackwell-systems/floractl/internal/labels"
)

// SheetName is the worksheet holding the plant table.
const SheetName = "Растения"

// Header is the first row of every export.
var Header = []string{
	"ID", "Название", "Латинское название", "Местное название", "Тип",
	"Опасность", "Места обитания", "Период цветения", "Признаки", "Методы борьбы",
}

// Rows returns one record per plant in catalog order, matching Header.
func Rows(plants []catalog.Plant) [][]string {
	rows := make([][]string, 0, len(plants))
	for _, p := range plants {
		methods := make([]string, 0, len(p.ControlMethods))
		for _, m := range p.ControlMethods {
			methods = append(methods, fmt.Sprintf("%s (%s)", m.Name, labels.Control(m.Type)))
		}
		rows = append(rows, []string{
			p.ID,
			p.Name,
			p.LatinName,
			p.LocalName,
			labels.Type(p.Type),
			labels.Danger(p.DangerLevel),
			labels.Habitat(p.Habitat),
			p.FloweringSeason,
			strings.Join(p.Features, ", "),
			strings.Join(methods, "; "),
		})
	}
	return rows
}

// WriteXLSX writes the plant table as an Excel workbook.
func WriteXLSX(w io.Writer, plants []catalog.Plant) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return err
	}
	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		return err
	}
	if err := sw.SetRow("A1", toCells(Header)); err != nil {
		return err
	}
	for i, r := range Rows(plants) {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := sw.SetRow(cell, toCells(r)); err != nil {
			return err
		}
	}
	if err := sw.Flush(); err != nil {
		return err
	}
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// WriteCSV writes the plant table as CSV.
func WriteCSV(w io.Writer, plants []catalog.Plant) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, r := range Rows(plants) {
		if err := cw.Write(r); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile picks the format from the extension (.xlsx or .csv).
func WriteFile(path string, plants []catalog.Plant) error {
	var write func(io.Writer, []catalog.Plant) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		write = WriteXLSX
	case ".csv":
		write = WriteCSV
	default:
		return fmt.Errorf("unsupported export format %q (want .xlsx or .csv)", filepath.Ext(path))
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f, plants); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func toCells(row []string) []interface{} {
	out := make([]interface{}, len(row))
	for i, v := range row {
		out[i] = v
	}
	return out
}
