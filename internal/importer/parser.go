// Package importer reads ledger entries from spreadsheet CSV exports.
package importer

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ehfoto/backoffice/internal/transaction"
)

var (
	ErrNoHeader   = errors.New("no header row with date, type, description and amount columns")
	ErrInvalidRow = errors.New("invalid row")
)

type column int

const (
	colDate column = iota
	colType
	colDescription
	colAmount
	numColumns
)

var headerAliases = map[string]column{
	"tarikh":      colDate,
	"date":        colDate,
	"jenis":       colType,
	"type":        colType,
	"keterangan":  colDescription,
	"butiran":     colDescription,
	"description": colDescription,
	"jumlah":      colAmount,
	"jumlah (rm)": colAmount,
	"amount":      colAmount,
	"amount (rm)": colAmount,
}

var typeAliases = map[string]transaction.Type{
	"pendapatan":   transaction.TypeIncome,
	"income":       transaction.TypeIncome,
	"perbelanjaan": transaction.TypeExpense,
	"expense":      transaction.TypeExpense,
}

var dateLayouts = []string{time.DateOnly, "02/01/2006", "02-01-2006", "2/1/2006"}

// Parser turns a ledger CSV into create params. Comma and semicolon
// separated files are both accepted.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]transaction.CreateParams, error) {
	utf8r, err := toUTF8(r)
	if err != nil {
		return nil, err
	}

	data, err := io.ReadAll(utf8r)
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}

	for _, comma := range []rune{',', ';'} {
		rows, err := readRows(data, comma)
		if err != nil {
			continue
		}

		cols, headerIdx, ok := findHeader(rows)
		if !ok {
			continue
		}

		return parseRows(rows[headerIdx+1:], cols, headerIdx+1)
	}

	return nil, ErrNoHeader
}

func readRows(data []byte, comma rune) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	return reader.ReadAll()
}

// findHeader returns the column positions of the first row naming all
// four columns.
func findHeader(rows [][]string) ([numColumns]int, int, bool) {
	for rowIdx, row := range rows {
		var (
			cols  [numColumns]int
			found int
		)

		for i := range cols {
			cols[i] = -1
		}

		for i, cell := range row {
			c, ok := headerAliases[strings.ToLower(strings.TrimSpace(cell))]
			if ok && cols[c] == -1 {
				cols[c] = i
				found++
			}
		}

		if found == int(numColumns) {
			return cols, rowIdx, true
		}
	}

	return [numColumns]int{}, 0, false
}

// parseRows reads data rows. offset is the 0-based index of the first data
// row in the file, used for 1-based row numbers in errors.
func parseRows(rows [][]string, cols [numColumns]int, offset int) ([]transaction.CreateParams, error) {
	var params []transaction.CreateParams

	for i, row := range rows {
		rowNum := offset + i + 1

		date, ok := parseDate(cell(row, cols[colDate]))
		if !ok {
			// Blank lines, totals and footers carry no date.
			continue
		}

		txType, ok := typeAliases[strings.ToLower(cell(row, cols[colType]))]
		if !ok {
			return nil, fmt.Errorf("%w %d: unknown type %q", ErrInvalidRow, rowNum, cell(row, cols[colType]))
		}

		desc := cell(row, cols[colDescription])
		if desc == "" {
			return nil, fmt.Errorf("%w %d: missing description", ErrInvalidRow, rowNum)
		}

		amount, err := parseRinggit(cell(row, cols[colAmount]))
		if err != nil {
			return nil, fmt.Errorf("%w %d: amount %q: %v", ErrInvalidRow, rowNum, cell(row, cols[colAmount]), err)
		}

		params = append(params, transaction.CreateParams{
			Type:        txType,
			Description: desc,
			Amount:      amount,
			Date:        date,
			Source:      transaction.SourceImport,
		})
	}

	return params, nil
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
