package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/roadsafety-dashboard/roadsafety/internal/indicator"
)

// ErrMissingColumn is returned when a required header column is absent.
var ErrMissingColumn = errors.New("missing required column")

// ParseCSV reads a long-format table. Columns are located by header name;
// short rows get "" for the missing fields and rows without an entity key
// are skipped.
func ParseCSV(r io.Reader, config Config) ([]indicator.Record, error) {
	config = config.withDefaults()

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty dataset: %w", ErrMissingColumn)
	}
	if err != nil {
		return nil, fmt.Errorf("error reading header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}

	columns := make([]int, 4)
	for i, name := range []string{config.EntityColumn, config.TypeColumn, config.DescriptionColumn, config.ValueColumn} {
		pos, ok := index[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
		columns[i] = pos
	}

	field := func(row []string, pos int) string {
		if pos < len(row) {
			return row[pos]
		}
		return ""
	}

	records := make([]indicator.Record, 0)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading row: %w", err)
		}

		entity := strings.TrimSpace(field(row, columns[0]))
		if entity == "" {
			continue
		}

		records = append(records, indicator.Record{
			EntityKey:     entity,
			IndicatorType: strings.TrimSpace(field(row, columns[1])),
			Description:   strings.TrimSpace(field(row, columns[2])),
			Value:         field(row, columns[3]),
		})
	}

	return records, nil
}
