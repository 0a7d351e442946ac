package gisutil

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	geo "github.com/paulmach/go.geo"
	"github.com/pkg/errors"
)

// TableRow - one record of a table, one value per column
type TableRow []interface{}

// PointHeader is the header written for exported point sets.
var PointHeader = []string{"x", "y"}

// SaveToCSV - write tabular data to a comma-separated-value file.
// The file is created or truncated. Row arity is not checked against the header.
func SaveToCSV(attributeNames []string, rows []TableRow, outFile string) (err error) {
	file, err := os.Create(outFile)
	if err != nil {
		return errors.Wrapf(err, "open csv %s", outFile)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "close csv %s", outFile)
		}
	}()

	if err = WriteCSV(file, attributeNames, rows); err != nil {
		return errors.Wrapf(err, "write csv %s", outFile)
	}
	return nil
}

// WriteCSV - write the header followed by each row to w
func WriteCSV(w io.Writer, attributeNames []string, rows []TableRow) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(attributeNames); err != nil {
		return errors.Wrap(err, "header")
	}

	record := make([]string, 0, len(attributeNames))
	for i, row := range rows {
		record = record[:0]
		for _, val := range row {
			record = append(record, formatValue(val))
		}
		if err := writer.Write(record); err != nil {
			return errors.Wrapf(err, "row %d", i)
		}
	}

	writer.Flush()
	return writer.Error()
}

// PointSetRows - convert each point to an x,y row
func PointSetRows(ps *geo.PointSet) []TableRow {
	if ps == nil {
		return nil
	}
	rows := make([]TableRow, 0, ps.Length())
	for _, p := range *ps {
		rows = append(rows, TableRow{p[0], p[1]})
	}
	return rows
}

func formatValue(val interface{}) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	default:
		return fmt.Sprint(v)
	}
}
