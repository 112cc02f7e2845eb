package xlsx

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/voltcheck/voltcheck/internal/service/report/types"
	"github.com/xuri/excelize/v2"
)

const (
	SheetReport     = "Report"
	SheetInsulation = "Insulation"
	SheetAbsorption = "Absorption"
	SheetTurnsRatio = "Turns Ratio"
)

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) SupportedFormat() types.ReportFormat {
	return types.ReportFormatXLSX
}

func (r *Renderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Render writes one sheet per report section. Sheets of sections the report does not carry are omitted.
func (r *Renderer) Render(data *types.ReportData) ([]byte, error) {
	if data == nil {
		return nil, fmt.Errorf("missing report data")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetReport); err != nil {
		return nil, errors.Wrap(err, "failed to name report sheet")
	}

	sheets := []struct {
		name string
		rows [][]string
	}{
		{SheetReport, reportRows(data)},
		{SheetInsulation, insulationRows(data)},
	}
	if data.Form.Absorption != nil {
		sheets = append(sheets, struct {
			name string
			rows [][]string
		}{SheetAbsorption, absorptionRows(data)})
	}
	if data.Form.TurnsRatio != nil {
		sheets = append(sheets, struct {
			name string
			rows [][]string
		}{SheetTurnsRatio, turnsRatioRows(data)})
	}

	for _, sheet := range sheets {
		if sheet.name != SheetReport {
			if _, err := f.NewSheet(sheet.name); err != nil {
				return nil, errors.Wrapf(err, "failed to create sheet %q", sheet.name)
			}
		}
		if err := writeRows(f, sheet.name, sheet.rows); err != nil {
			return nil, err
		}
	}
	f.SetActiveSheet(0)

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, errors.Wrap(err, "failed to write workbook")
	}
	return buf.Bytes(), nil
}

func writeRows(f *excelize.File, sheet string, rows [][]string) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return errors.Wrap(err, "invalid cell coordinates")
		}
		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return errors.Wrapf(err, "failed to write row %d of sheet %q", i+1, sheet)
		}
	}
	return nil
}

func reportRows(data *types.ReportData) [][]string {
	h := data.Header
	t := data.Form.Temperature
	rows := [][]string{
		{fmt.Sprintf("%s Test Report", h.TypeName)},
		{"Title", h.Title},
		{"Status", h.Status},
		{"Job", h.JobNumber},
		{"Customer", h.Customer},
		{"Site", h.Site},
		{"Tested", h.TestedAt},
		{"Equipment", h.Equipment.Identifier},
		{"Manufacturer", h.Equipment.Manufacturer},
		{"Model", h.Equipment.Model},
		{"Serial Number", h.Equipment.SerialNumber},
		{"Location", h.Equipment.Location},
		{},
		{"Temperature (F)", "Temperature (C)", "Correction Factor", "Humidity (%)", "Policy"},
		{t.Fahrenheit, t.Celsius, t.CorrectionFactor, t.Humidity, t.Policy},
		{},
		{"Generated", fmt.Sprintf("%s %s", data.Timestamps.Generated, data.Timestamps.GeneratedTime)},
	}
	if data.Form.Comments != "" {
		rows = append(rows, []string{"Comments", data.Form.Comments})
	}
	return rows
}

func insulationRows(data *types.ReportData) [][]string {
	s := data.Form.Insulation
	rows := [][]string{
		{"Test Voltage", s.TestVoltage, "Units", s.Units},
		{"Test", "Reading", "Measured", "Corrected"},
	}
	for _, row := range s.Rows {
		for _, cell := range row.Readings {
			rows = append(rows, []string{row.Label, cell.Label, cell.Measured, cell.Corrected})
		}
	}
	return rows
}

func absorptionRows(data *types.ReportData) [][]string {
	s := data.Form.Absorption
	rows := [][]string{{"Test", "30 s", "1 min", "10 min", "DA Ratio", "PI"}}
	for _, row := range s.Rows {
		rows = append(rows, []string{row.Label, row.HalfMinute, row.OneMinute, row.TenMinute, row.Ratio, row.PolarizationIndex})
	}
	return append(rows, []string{"Acceptable", s.Acceptable})
}

func turnsRatioRows(data *types.ReportData) [][]string {
	s := data.Form.TurnsRatio
	rows := [][]string{
		{"Primary", s.PrimaryConnection, "Secondary", s.SecondaryConnection, "Secondary Voltage", s.SecondaryVoltage},
		{"Tap", "Tap Voltage", "Nameplate Voltage", "Calculated", "Phase", "Measured", "Deviation %", "Result"},
	}
	for _, row := range s.Rows {
		for _, p := range row.Phases {
			rows = append(rows, []string{
				strconv.Itoa(row.Tap), row.TapVoltage, row.NameplateVoltage, row.CalculatedRatio,
				p.Phase, p.Measured, p.DeviationPercent, p.Result,
			})
		}
	}
	return rows
}
