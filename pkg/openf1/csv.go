package openf1

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"openf1lapexport/pkg/model"

	"github.com/pkg/errors"
)

// lapsHeader is the leading unnamed index column followed by the lap and
// driver columns.
func lapsHeader() []string {
	header := make([]string, 0, 1+len(model.LapColumns)+len(model.DriverColumns))
	header = append(header, "")
	header = append(header, model.LapColumns...)
	return append(header, model.DriverColumns...)
}

func encodeLapsCSV(w io.Writer, rows []JoinedLap) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(lapsHeader()); err != nil {
		return err
	}
	for i, row := range rows {
		record := make([]string, 0, 1+len(model.LapColumns)+len(model.DriverColumns))
		record = append(record, strconv.Itoa(i))
		record = append(record, row.Lap.CSVRecord()...)
		record = append(record, row.Driver.CSVRecord()...)
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeLapsCSV(path string, rows []JoinedLap) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	if err := encodeLapsCSV(f, rows); err != nil {
		f.Close()
		return errors.Wrapf(err, "writing %s", path)
	}
	return errors.Wrapf(f.Close(), "closing %s", path)
}
