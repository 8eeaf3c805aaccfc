package services

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ghuser/stockroom/pkg/auth"
	productdomain "github.com/ghuser/stockroom/services/product/domain"
)

// ImportResult aggregates a bulk import run. FirstError carries the message
// of the first row that failed; later failures are counted in Failed but not
// individually reported. That asymmetry is deliberate and load-bearing for
// callers showing user-visible counts — do not "fix" it by collecting all
// messages.
type ImportResult struct {
	Succeeded  int
	Failed     int
	FirstError string
}

// Importer is the bulk-import sequencer: it parses a CSV payload into
// candidate products and submits them one at a time, best-effort.
type Importer struct {
	svc *ProductService
}

// NewImporter returns an Importer that creates records through svc.
func NewImporter(svc *ProductService) *Importer {
	return &Importer{svc: svc}
}

// Import parses CSV from r and creates one product per row, owned by actor.
//
// The privilege gate runs once, before any parsing; a non-admin actor gets
// ErrPermissionDenied and nothing is read. Rows are submitted strictly
// sequentially — this bounds backend load and keeps error attribution in row
// order — and a failing row never aborts the rest. After Import returns the
// caller must treat its record collection as stale and re-fetch.
//
// Expected columns (header row, any order, case-insensitive): title,
// description, category, price, quantity, image. Empty lines are skipped.
func (i *Importer) Import(ctx context.Context, actor auth.Actor, r io.Reader) (ImportResult, error) {
	if !actor.IsAdmin() {
		return ImportResult{}, productdomain.ErrPermissionDenied
	}

	rows, err := parseRows(r)
	if err != nil {
		return ImportResult{}, fmt.Errorf("%w: %v", productdomain.ErrInvalidProduct, err)
	}

	var result ImportResult
	for _, row := range rows {
		fields, err := rowToFields(row)
		if err == nil {
			_, err = i.svc.Create(ctx, actor, fields)
		}
		if err != nil {
			result.Failed++
			if result.FirstError == "" {
				result.FirstError = err.Error()
			}
			continue
		}
		result.Succeeded++
	}
	return result, nil
}

// parseRows reads the CSV and maps each record to column-name → value using
// the header row. Rows whose cells are all empty are dropped.
func parseRows(r io.Reader) ([]map[string]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // ragged rows handled per-cell below
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("import payload is empty")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i := range header {
		header[i] = strings.ToLower(strings.TrimSpace(header[i]))
	}

	var rows []map[string]string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		row := make(map[string]string, len(header))
		empty := true
		for i, cell := range record {
			if i >= len(header) {
				break
			}
			cell = strings.TrimSpace(cell)
			if cell != "" {
				empty = false
			}
			row[header[i]] = cell
		}
		if empty {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// rowToFields coerces one parsed row into typed product fields.
func rowToFields(row map[string]string) (ProductFields, error) {
	price, err := strconv.ParseFloat(row["price"], 64)
	if err != nil {
		return ProductFields{}, fmt.Errorf("invalid price %q", row["price"])
	}
	quantity, err := strconv.Atoi(row["quantity"])
	if err != nil {
		return ProductFields{}, fmt.Errorf("invalid quantity %q", row["quantity"])
	}
	return ProductFields{
		Title:       row["title"],
		Description: row["description"],
		Category:    row["category"],
		Price:       price,
		Quantity:    quantity,
		Image:       row["image"],
	}, nil
}
