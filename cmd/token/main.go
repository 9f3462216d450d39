// Command token mints an access token for a diary owner. Owner tokens reach
// every endpoint; clinician tokens only reach the export.
//
// Usage:
//
//	token --email=user@example.com [--scope=clinician] [--ttl=72h] [--create]
//
// Configuration is loaded the same way as for the server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/paindiary-backend/internal/adapter/postgres"
	userrepo "github.com/heartmarshall/paindiary-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/paindiary-backend/internal/auth"
	"github.com/heartmarshall/paindiary-backend/internal/config"
	"github.com/heartmarshall/paindiary-backend/internal/domain"
)

func main() {
	email := flag.String("email", "", "email of the diary owner")
	scope := flag.String("scope", auth.ScopeOwner, "owner or clinician")
	ttl := flag.Duration("ttl", 0, "token lifetime (default from config)")
	create := flag.Bool("create", false, "create the user when it does not exist")
	flag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "Usage: token --email=user@example.com [--scope=owner|clinician] [--ttl=72h]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	users := userrepo.New(pool)
	u, err := users.GetByEmail(ctx, *email)
	if errors.Is(err, domain.ErrNotFound) && *create {
		now := time.Now().UTC()
		u, err = users.Create(ctx, domain.User{ID: uuid.New(), Email: *email, CreatedAt: now, UpdatedAt: now})
	}
	if err != nil {
		log.Fatalf("look up user %q: %v", *email, err)
	}

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	token, err := jwtManager.GenerateAccessToken(u.ID, *scope, *ttl)
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}

	fmt.Println(token)
}
