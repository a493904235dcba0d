// seed puebla datos de referencia: el catálogo de colores y un usuario
// administrador inicial.
//
// Uso: go run ./cmd/seed
// Credenciales del admin vía SEED_ADMIN_EMAIL y SEED_ADMIN_PASSWORD
// (por defecto admin@local / admin123, solo para desarrollo).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ilogush/backoffice-api/internal/domain/entity"
	"github.com/ilogush/backoffice-api/internal/infrastructure/postgres"
	"github.com/ilogush/backoffice-api/pkg/config"
)

// Catálogo base de colores. Los IDs son estables: los hechos de recepción y
// salida los referencian por FK.
var colors = []struct {
	id   int64
	name string
}{
	{1, "Blanco"},
	{2, "Negro"},
	{3, "Gris"},
	{4, "Azul"},
	{5, "Azul marino"},
	{6, "Rojo"},
	{7, "Verde"},
	{8, "Amarillo"},
	{9, "Beige"},
	{10, "Rosa"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	for _, c := range colors {
		_, err := pool.Exec(ctx,
			`INSERT INTO colors (id, name) VALUES ($1, $2)
			 ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name`,
			c.id, c.name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Insertar color %q: %v\n", c.name, err)
			os.Exit(1)
		}
	}
	fmt.Printf("Colores: %d filas\n", len(colors))

	email := envOr("SEED_ADMIN_EMAIL", "admin@local")
	password := envOr("SEED_ADMIN_PASSWORD", "admin123")

	var exists bool
	if err := pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists); err != nil {
		fmt.Fprintf(os.Stderr, "Consultar usuario admin: %v\n", err)
		os.Exit(1)
	}
	if exists {
		fmt.Printf("Usuario admin %s ya existe, sin cambios\n", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Hashear password: %v\n", err)
		os.Exit(1)
	}
	now := time.Now()
	_, err = pool.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, name, role, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $7)`,
		uuid.New().String(), email, string(hash), "Administrador", entity.RoleAdmin, "active", now)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Insertar usuario admin: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Usuario admin %s creado\n", email)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
