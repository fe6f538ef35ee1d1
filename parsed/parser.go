package parsed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// LineParser splits delimited text lines into DataLineMaps according to a column layout.
type LineParser struct {
	Fields  []FieldType // column layout, one field per column
	Comma   rune        // column separator
	Comment rune        // lines starting with this rune are skipped
}

// NewLineParser returns a whitespace separated LineParser with '#' comments.
// With a ' ' Comma, runs of spaces and tabs both separate columns.
// If no fields are provided, the StateLayout is used.
func NewLineParser(fields ...FieldType) *LineParser {
	if len(fields) == 0 {
		fields = StateLayout()
	}
	return &LineParser{Fields: fields, Comma: ' ', Comment: '#'}
}

// Parse reads all the records from r.
// A line with fewer columns than the layout only holds the leading fields, and extra columns are ignored.
func (p *LineParser) Parse(r io.Reader) ([]DataLineMap, error) {
	var records []DataLineMap
	cr := csv.NewReader(r)
	cr.Comma = p.Comma
	cr.Comment = p.Comment
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	for {
		columns, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("parsing records: %w", err)
		}
		record := p.toRecord(columns)
		if len(record) == 0 {
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

// ParseLine parses a single line.
func (p *LineParser) ParseLine(line string) (DataLineMap, error) {
	records, err := p.Parse(strings.NewReader(line))
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errors.New("no record in line")
	}
	return records[0], nil
}

func (p *LineParser) toRecord(columns []string) DataLineMap {
	if p.Comma == ' ' {
		// Repeated separators and tabs.
		var tokens []string
		for _, col := range columns {
			tokens = append(tokens, strings.Fields(col)...)
		}
		columns = tokens
	}
	record := DataLineMap{}
	for fieldNo, col := range columns {
		if fieldNo >= len(p.Fields) {
			break
		}
		record.Set(p.Fields[fieldNo], col)
	}
	return record
}

// FormatState converts a Julian date and a Cartesian state to a line in the StateLayout.
func FormatState(jd float64, state [6]float64) string {
	columns := make([]string, 7)
	columns[0] = strconv.FormatFloat(jd, 'f', -1, 64)
	for i, val := range state {
		columns[i+1] = strconv.FormatFloat(val, 'g', -1, 64)
	}
	return strings.Join(columns, " ")
}
