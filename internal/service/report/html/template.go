package html

const reportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Header.Title}}</title>
<style>
@page { size: {{.Style.PageSize}} {{.Style.Orientation}}; margin: {{.Style.MarginMM}}mm; }
.voltcheck-report { font-family: Arial, Helvetica, sans-serif; font-size: {{.Style.FontSizePt}}pt; color: #111; }
.voltcheck-report h1 { font-size: 1.6em; margin: 0 0 4px 0; }
.voltcheck-report h2 { font-size: 1.2em; border-bottom: 1px solid #444; margin: 14px 0 6px 0; }
.voltcheck-report table { width: 100%; border-collapse: collapse; margin-bottom: 8px; }
.voltcheck-report th, .voltcheck-report td { border: 1px solid #999; padding: 2px 4px; text-align: center; }
.voltcheck-report th { background: #e8e8e8; }
.voltcheck-report td.label { text-align: left; font-weight: bold; }
.voltcheck-report td.pass { color: #0a6b0a; font-weight: bold; }
.voltcheck-report td.fail { color: #b00000; font-weight: bold; }
.voltcheck-report .page { break-after: page; }
.voltcheck-report .page:last-child { break-after: auto; }
.voltcheck-report .footer { font-size: 0.8em; color: #555; margin-top: 12px; }
</style>
</head>
<body>
<div class="{{.RootClass}}">
<section class="page">
<h1>{{.Header.TypeName}} Test Report</h1>
<table>
<tr><td class="label">Report</td><td>{{.Header.Title}}</td><td class="label">Status</td><td>{{.Header.Status}}</td></tr>
<tr><td class="label">Job</td><td>{{orDash .Header.JobNumber}}</td><td class="label">Customer</td><td>{{orDash .Header.Customer}}</td></tr>
<tr><td class="label">Site</td><td>{{orDash .Header.Site}}</td><td class="label">Tested</td><td>{{.Header.TestedAt}}</td></tr>
<tr><td class="label">Equipment</td><td>{{orDash .Header.Equipment.Identifier}}</td><td class="label">Location</td><td>{{orDash .Header.Equipment.Location}}</td></tr>
<tr><td class="label">Manufacturer</td><td>{{orDash .Header.Equipment.Manufacturer}}</td><td class="label">Model / Serial</td><td>{{orDash .Header.Equipment.Model}} / {{orDash .Header.Equipment.SerialNumber}}</td></tr>
</table>

<h2>Ambient Conditions</h2>
<table>
<tr><th>Temperature (°F)</th><th>Temperature (°C)</th><th>Correction Factor</th><th>Humidity (%)</th><th>Policy</th></tr>
<tr><td>{{.Form.Temperature.Fahrenheit}}</td><td>{{.Form.Temperature.Celsius}}</td><td>{{.Form.Temperature.CorrectionFactor}}</td><td>{{.Form.Temperature.Humidity}}</td><td>{{.Form.Temperature.Policy}}</td></tr>
</table>

<h2>Insulation Resistance{{with .Form.Insulation.TestVoltage}} at {{.}}{{end}}{{with .Form.Insulation.Units}} ({{.}}){{end}}</h2>
<table>
<tr><th>Test</th><th>Reading</th><th>Measured</th><th>Corrected to 20 °C</th></tr>
{{- range .Form.Insulation.Rows}}{{$row := .Label}}
{{- range .Readings}}
<tr><td class="label">{{$row}}</td><td>{{.Label}}</td><td>{{.Measured}}</td><td>{{.Corrected}}</td></tr>
{{- end}}
{{- else}}
<tr><td colspan="4">No insulation readings</td></tr>
{{- end}}
</table>
</section>
{{- with .Form.Absorption}}
<section class="page">
<h2>Dielectric Absorption</h2>
<table>
<tr><th>Test</th><th>30 s</th><th>1 min</th><th>10 min</th><th>DA Ratio</th><th>PI</th></tr>
{{- range .Rows}}
<tr><td class="label">{{.Label}}</td><td>{{.HalfMinute}}</td><td>{{.OneMinute}}</td><td>{{.TenMinute}}</td><td>{{.Ratio}}</td><td>{{.PolarizationIndex}}</td></tr>
{{- end}}
<tr><td class="label" colspan="4">Acceptable</td><td colspan="2">{{.Acceptable}}</td></tr>
</table>
</section>
{{- end}}
{{- with .Form.TurnsRatio}}
<section class="page">
<h2>Turns Ratio</h2>
<table>
<tr><td class="label">Primary</td><td>{{.PrimaryConnection}}</td><td class="label">Secondary</td><td>{{.SecondaryConnection}}</td><td class="label">Secondary Voltage</td><td>{{.SecondaryVoltage}}</td></tr>
</table>
<table>
<tr><th>Tap</th><th>Tap Voltage</th><th>Nameplate Voltage</th><th>Calculated</th><th>Phase</th><th>Measured</th><th>Deviation %</th><th>Result</th></tr>
{{- range .Rows}}{{$row := .}}
{{- range .Phases}}
<tr><td>{{$row.Tap}}</td><td>{{$row.TapVoltage}}</td><td>{{$row.NameplateVoltage}}</td><td>{{$row.CalculatedRatio}}</td><td>{{.Phase}}</td><td>{{.Measured}}</td><td>{{.DeviationPercent}}</td><td class="{{resultClass .Result}}">{{.Result}}</td></tr>
{{- end}}
{{- end}}
</table>
</section>
{{- end}}
<section class="page">
<h2>Summary</h2>
<table>
<tr><td class="label">Insulation readings</td><td>{{.Summary.InsulationReadings}} entered, {{.Summary.CorrectedReadings}} corrected</td></tr>
{{- if .Form.Absorption}}
<tr><td class="label">Dielectric absorption acceptable</td><td>{{.Summary.AbsorptionAcceptable}}</td></tr>
{{- end}}
{{- if .Form.TurnsRatio}}
<tr><td class="label">Turns ratio</td><td class="{{resultClass .Summary.TurnsRatioResult}}">{{orDash .Summary.TurnsRatioResult}} ({{.Summary.TurnsRatioPass}} PASS, {{.Summary.TurnsRatioFail}} FAIL)</td></tr>
{{- end}}
</table>
{{- with .Form.Comments}}
<h2>Comments</h2>
<p>{{.}}</p>
{{- end}}
<div class="footer">Generated {{.Timestamps.Generated}} at {{.Timestamps.GeneratedTime}} &middot; Report {{.Header.ReportID}}</div>
</section>
</div>
</body>
</html>
`
