// import_history carga un CSV de movimientos históricos en stock_history.
//
// Uso: go run ./cmd/import_history -file historial.csv [-charset iso-8859-1] [-batch 500] [-created-by migracion] [-dry-run]
//
// Columnas: item_id,supplier_id,quantity_change,unit_cost,reason,occurred_at[,id]
// La cabecera es opcional. Las filas con id ya importado se omiten, así que el archivo
// puede reprocesarse si se indica la columna id.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jhoicas/inventory-valuation/internal/domain/entity"
	"github.com/jhoicas/inventory-valuation/internal/domain/repository"
	"github.com/jhoicas/inventory-valuation/internal/infrastructure/postgres"
	"github.com/jhoicas/inventory-valuation/pkg/config"
	"github.com/jhoicas/inventory-valuation/pkg/logger"
)

func main() {
	var (
		file      = flag.String("file", "", "ruta del CSV (obligatorio)")
		charset   = flag.String("charset", "utf-8", "codificación del archivo: utf-8, iso-8859-1, windows-1252")
		batchSize = flag.Int("batch", 500, "filas por transacción")
		createdBy = flag.String("created-by", "import_history", "valor de created_by para las filas importadas")
		dryRun    = flag.Bool("dry-run", false, "solo valida el archivo, no escribe en la base")
	)
	flag.Parse()
	if *file == "" || *batchSize <= 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).Named("import_history")

	f, err := os.Open(*file)
	if err != nil {
		log.Fatal().Err(err).Str("file", *file).Msg("abrir CSV")
	}
	defer f.Close()

	r, err := decodeCharset(f, *charset)
	if err != nil {
		log.Fatal().Err(err).Msg("charset")
	}
	rows, err := parseHistory(r, *createdBy)
	if err != nil {
		log.Fatal().Err(err).Str("file", *file).Msg("CSV inválido, no se importó ninguna fila")
	}
	log.Info().Int("rows", len(rows)).Str("file", *file).Msg("CSV validado")
	if *dryRun {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	inserted, err := importRows(ctx, postgres.NewStockHistoryRepository(pool), rows, *batchSize)
	if err != nil {
		log.Error().Err(err).Int("inserted", inserted).Msg("importación interrumpida")
		pool.Close()
		os.Exit(1)
	}
	log.Info().
		Int("rows", len(rows)).
		Int("inserted", inserted).
		Int("skipped", len(rows)-inserted).
		Msg("importación finalizada")
}

// importRows inserta por lotes; cada lote es una transacción. Devuelve las filas insertadas
// hasta el primer error.
func importRows(ctx context.Context, repo repository.StockHistoryRepository, rows []*entity.StockHistory, batchSize int) (int, error) {
	inserted := 0
	for start := 0; start < len(rows); start += batchSize {
		end := min(start+batchSize, len(rows))
		n, err := repo.InsertBatch(ctx, rows[start:end])
		if err != nil {
			return inserted, fmt.Errorf("lote %d-%d: %w", start+1, end, err)
		}
		inserted += n
	}
	return inserted, nil
}
