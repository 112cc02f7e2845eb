package csv

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/voltcheck/voltcheck/api/v1alpha1"
	"github.com/voltcheck/voltcheck/internal/service/report/types"
)

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) SupportedFormat() types.ReportFormat {
	return types.ReportFormatCSV
}

func (r *Renderer) ContentType() string {
	return "text/csv; charset=utf-8"
}

func (r *Renderer) Render(data *types.ReportData) ([]byte, error) {
	if data == nil {
		return nil, fmt.Errorf("missing report data")
	}

	var csvRows [][]string

	csvRows = append(csvRows, []string{strings.ToUpper(data.Header.TypeName) + " TEST REPORT"})
	csvRows = append(csvRows, []string{fmt.Sprintf("Generated: %s at %s",
		data.Timestamps.Generated, data.Timestamps.GeneratedTime)})
	csvRows = append(csvRows, []string{""})

	csvRows = r.addHeader(csvRows, data.Header)
	csvRows = r.addTemperature(csvRows, data.Form.Temperature)
	csvRows = r.addInsulation(csvRows, data.Form.Insulation)

	if data.Form.Absorption != nil {
		csvRows = r.addAbsorption(csvRows, data.Form.Absorption)
	}
	if data.Form.TurnsRatio != nil {
		csvRows = r.addTurnsRatio(csvRows, data.Form.TurnsRatio)
	}

	csvRows = r.addSummary(csvRows, data)

	return r.convertRowsToCSV(csvRows)
}

func (r *Renderer) addHeader(csvRows [][]string, h types.ReportHeader) [][]string {
	csvRows = append(csvRows, []string{"REPORT"})
	csvRows = append(csvRows, []string{"Field", "Value"})
	csvRows = append(csvRows,
		[]string{"Title", h.Title},
		[]string{"Status", h.Status},
		[]string{"Job", h.JobNumber},
		[]string{"Customer", h.Customer},
		[]string{"Site", h.Site},
		[]string{"Tested", h.TestedAt},
		[]string{"Equipment", h.Equipment.Identifier},
		[]string{"Manufacturer", h.Equipment.Manufacturer},
		[]string{"Model", h.Equipment.Model},
		[]string{"Serial Number", h.Equipment.SerialNumber},
		[]string{"Location", h.Equipment.Location},
	)
	return append(csvRows, []string{""})
}

func (r *Renderer) addTemperature(csvRows [][]string, t v1alpha1.TemperatureSection) [][]string {
	csvRows = append(csvRows, []string{"AMBIENT CONDITIONS"})
	csvRows = append(csvRows, []string{"Temperature (F)", "Temperature (C)", "Correction Factor", "Humidity (%)", "Policy"})
	csvRows = append(csvRows, []string{t.Fahrenheit, t.Celsius, t.CorrectionFactor, t.Humidity, t.Policy})
	return append(csvRows, []string{""})
}

func (r *Renderer) addInsulation(csvRows [][]string, s v1alpha1.InsulationSection) [][]string {
	csvRows = append(csvRows, []string{"INSULATION RESISTANCE"})
	csvRows = append(csvRows, []string{"Test Voltage", s.TestVoltage, "Units", s.Units})
	csvRows = append(csvRows, []string{"Test", "Reading", "Measured", "Corrected"})
	for _, row := range s.Rows {
		for _, cell := range row.Readings {
			csvRows = append(csvRows, []string{row.Label, cell.Label, cell.Measured, cell.Corrected})
		}
	}
	return append(csvRows, []string{""})
}

func (r *Renderer) addAbsorption(csvRows [][]string, s *v1alpha1.AbsorptionSection) [][]string {
	csvRows = append(csvRows, []string{"DIELECTRIC ABSORPTION"})
	csvRows = append(csvRows, []string{"Test", "30 s", "1 min", "10 min", "DA Ratio", "PI"})
	for _, row := range s.Rows {
		csvRows = append(csvRows, []string{row.Label, row.HalfMinute, row.OneMinute, row.TenMinute, row.Ratio, row.PolarizationIndex})
	}
	csvRows = append(csvRows, []string{"Acceptable", s.Acceptable})
	return append(csvRows, []string{""})
}

func (r *Renderer) addTurnsRatio(csvRows [][]string, s *v1alpha1.TurnsRatioSection) [][]string {
	csvRows = append(csvRows, []string{"TURNS RATIO"})
	csvRows = append(csvRows, []string{"Primary", s.PrimaryConnection, "Secondary", s.SecondaryConnection, "Secondary Voltage", s.SecondaryVoltage})
	csvRows = append(csvRows, []string{"Tap", "Tap Voltage", "Nameplate Voltage", "Calculated", "Phase", "Measured", "Deviation %", "Result"})
	for _, row := range s.Rows {
		for _, p := range row.Phases {
			csvRows = append(csvRows, []string{
				strconv.Itoa(row.Tap), row.TapVoltage, row.NameplateVoltage, row.CalculatedRatio,
				p.Phase, p.Measured, p.DeviationPercent, p.Result,
			})
		}
	}
	return append(csvRows, []string{""})
}

func (r *Renderer) addSummary(csvRows [][]string, data *types.ReportData) [][]string {
	csvRows = append(csvRows, []string{"SUMMARY"})
	csvRows = append(csvRows, []string{"Insulation readings entered", strconv.Itoa(data.Summary.InsulationReadings)})
	csvRows = append(csvRows, []string{"Insulation readings corrected", strconv.Itoa(data.Summary.CorrectedReadings)})
	if data.Form.Absorption != nil {
		csvRows = append(csvRows, []string{"Dielectric absorption acceptable", data.Summary.AbsorptionAcceptable})
	}
	if data.Form.TurnsRatio != nil {
		csvRows = append(csvRows, []string{"Turns ratio", data.Summary.TurnsRatioResult,
			fmt.Sprintf("%d PASS, %d FAIL", data.Summary.TurnsRatioPass, data.Summary.TurnsRatioFail)})
	}
	if data.Form.Comments != "" {
		csvRows = append(csvRows, []string{"Comments", data.Form.Comments})
	}
	return csvRows
}

func (r *Renderer) convertRowsToCSV(csvRows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.WriteAll(csvRows); err != nil {
		return nil, fmt.Errorf("failed to write CSV: %w", err)
	}

	return buf.Bytes(), nil
}
