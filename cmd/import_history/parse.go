package main

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/inventory-valuation/internal/domain/entity"
)

// Columnas: item_id,supplier_id,quantity_change,unit_cost,reason,occurred_at[,id]
const (
	colItem = iota
	colSupplier
	colQty
	colUnitCost
	colReason
	colOccurredAt
	colID

	minColumns = colOccurredAt + 1
)

var timeLayouts = []string{time.RFC3339Nano, "2006-01-02 15:04:05", "2006-01-02T15:04:05", "2006-01-02"}

// decodeCharset envuelve r para exportaciones legadas; utf-8 (o vacío) no transforma.
func decodeCharset(r io.Reader, charset string) (io.Reader, error) {
	switch strings.ToLower(strings.ReplaceAll(charset, "_", "-")) {
	case "", "utf-8", "utf8":
		return r, nil
	case "iso-8859-1", "iso8859-1", "latin1":
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder()), nil
	case "windows-1252", "cp1252":
		return transform.NewReader(r, charmap.Windows1252.NewDecoder()), nil
	}
	return nil, fmt.Errorf("charset no soportado: %s", charset)
}

// parseHistory lee el CSV completo. Devuelve todas las filas inválidas juntas (con número de línea)
// para que el archivo se corrija de una vez; si hay alguna, no se devuelve ninguna fila.
func parseHistory(r io.Reader, createdBy string) ([]*entity.StockHistory, error) {
	br := bufio.NewReader(r)
	if bom, err := br.Peek(3); err == nil && string(bom) == "\xef\xbb\xbf" {
		_, _ = br.Discard(3)
	}
	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var (
		rows []*entity.StockHistory
		errs []error
	)
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("leer CSV: %w", err)
		}
		line, _ := cr.FieldPos(0)
		if isBlank(record) {
			continue
		}
		if line == 1 && strings.EqualFold(strings.TrimSpace(record[colItem]), "item_id") {
			continue
		}
		h, err := parseRow(record)
		if err != nil {
			errs = append(errs, fmt.Errorf("línea %d: %w", line, err))
			continue
		}
		h.CreatedBy = createdBy
		rows = append(rows, h)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return rows, nil
}

func parseRow(record []string) (*entity.StockHistory, error) {
	if len(record) < minColumns {
		return nil, fmt.Errorf("se esperaban al menos %d columnas, hay %d", minColumns, len(record))
	}
	field := func(i int) string {
		if i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	h := &entity.StockHistory{
		ItemID:     field(colItem),
		SupplierID: field(colSupplier),
		ID:         field(colID),
	}
	if h.ItemID == "" {
		return nil, errors.New("item_id vacío")
	}

	qty, err := strconv.ParseInt(field(colQty), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("quantity_change %q no es entero", field(colQty))
	}
	if qty == 0 {
		return nil, errors.New("quantity_change no puede ser cero")
	}
	h.QuantityChange = qty

	if s := field(colUnitCost); s != "" {
		cost, err := decimal.NewFromString(s)
		if err != nil {
			return nil, fmt.Errorf("unit_cost %q no es decimal", s)
		}
		if cost.IsNegative() {
			return nil, fmt.Errorf("unit_cost %s negativo", s)
		}
		h.UnitCost = &cost
	}

	reason, ok := entity.ParseStockChangeReason(field(colReason))
	if !ok {
		return nil, fmt.Errorf("motivo desconocido %q", field(colReason))
	}
	h.Reason = reason

	at, err := parseTime(field(colOccurredAt))
	if err != nil {
		return nil, err
	}
	h.OccurredAt = at
	return h, nil
}

// parseTime acepta RFC3339 o fecha/hora sin zona (se interpreta en UTC).
func parseTime(s string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("occurred_at %q no es una fecha válida", s)
}

func isBlank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
