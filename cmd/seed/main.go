// seed puebla la base de datos con los datos iniciales del hotel:
// la empresa de respaldo "Particular" y las 96 habitaciones de ventilador
// con camas A y B. Es idempotente: se puede correr las veces que haga falta.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/solnascente/frontdesk-api/internal/domain/entity"
	"github.com/solnascente/frontdesk-api/internal/infrastructure/postgres"
	"github.com/solnascente/frontdesk-api/pkg/config"
	"github.com/solnascente/frontdesk-api/pkg/logger"
)

const roomCount = 96

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	now := time.Now().UTC()

	// Empresa de respaldo para huéspedes sin empresa.
	_, err = pool.Exec(ctx, `
		INSERT INTO companies (id, name, tax_id, contact, created_at, updated_at)
		VALUES ($1, $2, '', '', $3, $3)
		ON CONFLICT (name) DO NOTHING`,
		uuid.NewString(), entity.CompanyFallbackName, now,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("sembrar empresa de respaldo")
	}

	// Habitaciones 1..96 de ventilador, cada una con camas A y B.
	for i := 1; i <= roomCount; i++ {
		number := fmt.Sprintf("%d", i)
		_, err = pool.Exec(ctx, `
			INSERT INTO rooms (id, number, climate, is_maintenance, created_at, updated_at)
			VALUES ($1, $2, $3, false, $4, $4)
			ON CONFLICT (number) DO NOTHING`,
			uuid.NewString(), number, entity.ClimateFAN, now,
		)
		if err != nil {
			log.Fatal().Err(err).Str("room", number).Msg("sembrar habitación")
		}

		for _, label := range []string{"A", "B"} {
			_, err = pool.Exec(ctx, `
				INSERT INTO beds (id, room_id, label, created_at)
				SELECT $1, id, $2, $3 FROM rooms WHERE number = $4
				ON CONFLICT (room_id, label) DO NOTHING`,
				uuid.NewString(), label, now, number,
			)
			if err != nil {
				log.Fatal().Err(err).Str("room", number).Str("bed", label).Msg("sembrar cama")
			}
		}
	}

	log.Info().Int("rooms", roomCount).Msg("datos iniciales sembrados")
}
