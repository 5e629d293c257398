package report

import (
	"bytes"
	"fmt"

	"openf1lapexport/pkg/helper"
	"openf1lapexport/pkg/openf1"

	"github.com/jedib0t/go-pretty/v6/table"
)

const (
	headerSession = "SESSION"
	headerStatus  = "STATUS"
	headerLaps    = "LAPS"
	headerFastest = "FASTEST"
	headerFile    = "FILE"

	symbolWritten = "🏁"
	symbolSkipped = "⏭"
)

// RenderSummary renders the outcome of an export run as a table.
func RenderSummary(results []openf1.ExportResult) string {
	var b bytes.Buffer
	t := table.NewWriter()
	t.SetOutputMirror(&b)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{headerSession, headerStatus, headerLaps, headerFastest, headerFile})

	written, skipped, laps := 0, 0, 0
	for _, r := range results {
		status := symbolWritten + " written"
		if r.Skipped {
			status = symbolSkipped + " " + r.Reason
			skipped++
		} else {
			written++
			laps += r.Rows
		}
		t.AppendRow(table.Row{r.SessionName, status, r.Rows, fastestLap(r), r.Path})
	}
	t.AppendSeparator()
	t.AppendFooter(table.Row{"", fmt.Sprintf("%d written, %d skipped", written, skipped), laps, "", ""})
	t.Render()

	return b.String()
}

func fastestLap(r openf1.ExportResult) string {
	if r.Fastest == nil || r.Fastest.Lap.LapDuration == nil {
		return "-"
	}
	code := r.Fastest.Driver.NameAcronym
	if code == "" {
		code = helper.GetDriverCodeName(r.Fastest.Driver.FullName)
	}
	return fmt.Sprintf("%s %s", code, helper.SecondsToMinutes(*r.Fastest.Lap.LapDuration))
}
