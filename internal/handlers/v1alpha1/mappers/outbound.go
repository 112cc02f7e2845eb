package mappers

import (
	"fmt"

	"github.com/voltcheck/voltcheck/internal/service/report/types"
)

// ContentDisposition names the downloaded file of a rendered report.
func ContentDisposition(reportID string, format types.ReportFormat) string {
	if format == types.ReportFormatHTML {
		return "inline"
	}
	return fmt.Sprintf("attachment; filename=report-%s.%s", reportID, format)
}
