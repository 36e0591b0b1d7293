// Package formatter handles the conversion of raw Athena result sets into
// typed dashboard datasets. Athena returns every cell as a string; cells are
// coerced to numbers where they parse cleanly and kept as strings otherwise.
package formatter

import (
	"strconv"
	"strings"

	"github.com/ogsdata/dashgen/pkg/models"
)

// FormatResultSet converts a result set into a dataset of typed rows keyed
// by lowercased column name. Rows shorter than the column list are padded
// with nulls; cells beyond it are dropped.
func FormatResultSet(set *models.ResultSet) models.Dataset {
	if set == nil {
		return models.Dataset{}
	}

	columns := make([]string, len(set.Columns))
	for i, name := range set.Columns {
		columns[i] = strings.ToLower(name)
	}

	dataset := make(models.Dataset, 0, len(set.Rows))
	for _, cells := range set.Rows {
		row := make(models.Row, len(columns))
		for i, name := range columns {
			if i < len(cells) {
				row[name] = CoerceCell(cells[i])
			} else {
				row[name] = nil
			}
		}
		dataset = append(dataset, row)
	}
	return dataset
}

// CoerceCell converts a raw result cell to its JSON value. NULL cells become
// nil. Values containing a decimal point are parsed as floats, other values
// as integers; anything that does not parse stays a string.
func CoerceCell(cell *string) any {
	if cell == nil {
		return nil
	}

	value := *cell
	if strings.Contains(value, ".") {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	} else if i, err := strconv.ParseInt(value, 10, 64); err == nil {
		return i
	}
	return value
}
