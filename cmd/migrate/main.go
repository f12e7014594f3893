package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/serodominguez/waresoft-api/pkg/config"
	"github.com/serodominguez/waresoft-api/pkg/logger"
)

// Ejecuta las migraciones SQL del directorio migrations/ contra la base
// configurada. Uso: migrate [-dir up|down] [-path migrations]
func main() {
	dir := flag.String("dir", "up", "dirección: up o down")
	path := flag.String("path", "migrations", "directorio con los archivos .sql")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	sourceURL := fmt.Sprintf("file://%s", *path)
	m, err := migrate.New(sourceURL, cfg.DB.ConnectionString())
	if err != nil {
		log.Fatal().Err(err).Msg("crear instancia de migrate")
	}
	defer m.Close()

	switch *dir {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	default:
		log.Fatal().Str("dir", *dir).Msg("dirección desconocida, usar up o down")
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatal().Err(err).Str("dir", *dir).Msg("aplicar migraciones")
	}

	version, dirty, verr := m.Version()
	if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
		log.Warn().Err(verr).Msg("leer versión de migración")
	}
	log.Info().
		Str("dir", *dir).
		Uint("version", version).
		Bool("dirty", dirty).
		Msg("migraciones aplicadas")
}
