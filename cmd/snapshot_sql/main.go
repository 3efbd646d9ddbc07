// snapshot_sql lee hoteles, habitaciones, huéspedes y reservas (con pagos) de la API de gestión
// y genera los INSERT idempotentes para la réplica PostgreSQL (DATA_SOURCE=postgres).
//
// Uso:
//
//	go run ./cmd/snapshot_sql [-hotel <uuid>] [-out snapshot.sql] [-latin1]
//	go run ./cmd/snapshot_sql -apply            # carga directo en DATABASE_URL, en una transacción
//
// Aplicar antes internal/infrastructure/postgres/migrations/001_hotel_schema.sql.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"time"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	appanalytics "github.com/jhoicas/hotel-dashboard-api/internal/application/analytics"
	"github.com/jhoicas/hotel-dashboard-api/internal/application/dto"
	"github.com/jhoicas/hotel-dashboard-api/internal/domain/dashboard"
	"github.com/jhoicas/hotel-dashboard-api/internal/infrastructure/hotelapi"
	"github.com/jhoicas/hotel-dashboard-api/internal/infrastructure/postgres"
	"github.com/jhoicas/hotel-dashboard-api/pkg/config"
	"github.com/jhoicas/hotel-dashboard-api/pkg/logger"
)

func main() {
	hotelID := flag.String("hotel", "", "limitar a un hotel (id)")
	outPath := flag.String("out", "", "archivo de salida (vacío = stdout)")
	latin1 := flag.Bool("latin1", false, "escribir el SQL en ISO-8859-1 (clientes psql con LATIN1)")
	apply := flag.Bool("apply", false, "ejecutar los INSERT contra la base configurada en vez de escribir SQL")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level, Out: os.Stderr})

	loc, err := cfg.Dashboard.Location()
	if err != nil {
		log.Fatal().Err(err).Msg("zona horaria")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	client := hotelapi.NewClient(cfg.HotelAPI, hotelapi.WithLocation(loc), hotelapi.WithLogger(log))
	uc := appanalytics.NewDashboardUseCase(
		hotelapi.NewHotelRepository(client),
		hotelapi.NewRoomRepository(client),
		hotelapi.NewGuestRepository(client),
		hotelapi.NewBookingRepository(client),
		appanalytics.WithLocation(loc),
		appanalytics.WithLogger(log),
	)

	snap, err := uc.Snapshot(ctx, dto.DashboardScope{HotelID: *hotelID})
	if err != nil {
		log.Fatal().Err(err).Msg("leer snapshot de la API de gestión")
	}
	stmts, skipped := postgres.SnapshotStatements(snap)
	logCounts(log, snap, len(stmts))
	if len(skipped) > 0 {
		log.Warn().Strs("booking_ids", skipped).Msg("reservas sin check-in o check-out omitidas")
	}

	if *apply {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()

		inserted, err := postgres.NewTxRunner(pool).ImportSnapshot(ctx, stmts)
		if err != nil {
			pool.Close()
			log.Fatal().Err(err).Msg("cargar snapshot")
		}
		log.Info().Int64("inserted", inserted).Msg("snapshot cargado")
		return
	}

	replaced, err := writeSQL(*outPath, *latin1, stmts, time.Now())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	if replaced > 0 {
		log.Warn().Int("replaced", replaced).Msg("caracteres sin equivalente LATIN1 escritos como '?'")
	}
}

func logCounts(log *logger.Logger, snap dashboard.Snapshot, statements int) {
	log.Info().
		Int("hotels", len(snap.Hotels)).
		Int("rooms", len(snap.Rooms)).
		Int("guests", len(snap.Guests)).
		Int("bookings", len(snap.Bookings)).
		Int("statements", statements).
		Msg("snapshot leído")
}

// writeSQL arma el script completo en memoria y recién entonces lo escribe:
// un error de codificación o de render nunca deja un archivo a medias.
func writeSQL(path string, latin1 bool, stmts []postgres.Statement, now time.Time) (replaced int, err error) {
	script, replaced, err := renderScript(stmts, latin1, now)
	if err != nil {
		return 0, err
	}
	if path == "" {
		_, err = os.Stdout.Write(script)
		return replaced, err
	}
	return replaced, os.WriteFile(path, script, 0o644)
}

// renderScript devuelve el script SQL. Con latin1 los caracteres sin equivalente en ISO-8859-1
// se escriben como '?' y se cuentan en replaced.
func renderScript(stmts []postgres.Statement, latin1 bool, now time.Time) (script []byte, replaced int, err error) {
	encoding := "UTF8"
	if latin1 {
		encoding = "LATIN1"
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "-- Snapshot de la API de gestión hotelera, %s\n", now.Format(time.RFC3339))
	fmt.Fprintf(&buf, "SET client_encoding = '%s';\nBEGIN;\n\n", encoding)
	for _, st := range stmts {
		line, err := postgres.RenderSQL(st)
		if err != nil {
			return nil, 0, err
		}
		buf.WriteString(line)
		buf.WriteString(";\n")
	}
	buf.WriteString("\nCOMMIT;\n")

	if !latin1 {
		return buf.Bytes(), 0, nil
	}
	for _, r := range buf.String() {
		if !isLatin1(r) {
			replaced++
		}
	}
	toLatin1 := transform.Chain(
		runes.Map(func(r rune) rune {
			if !isLatin1(r) {
				return '?'
			}
			return r
		}),
		charmap.ISO8859_1.NewEncoder(),
	)
	out, _, err := transform.Bytes(toLatin1, buf.Bytes())
	if err != nil {
		return nil, 0, err
	}
	return out, replaced, nil
}

func isLatin1(r rune) bool {
	return r <= unicode.MaxLatin1 && r != utf8.RuneError
}
