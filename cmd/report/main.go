// Command report prints the KPI report of one user as JSON.
//
// Usage:
//
//	report --email=user@example.com --preset=3m
//	report --user=<uuid> --preset=custom --from=2024-01-01 --to=2024-01-31 --entries
//
// Configuration is loaded the same way as for the server.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/paindiary-backend/internal/adapter/postgres"
	userrepo "github.com/heartmarshall/paindiary-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/paindiary-backend/internal/app"
	"github.com/heartmarshall/paindiary-backend/internal/config"
	"github.com/heartmarshall/paindiary-backend/internal/domain"
	"github.com/heartmarshall/paindiary-backend/internal/service/report"
	"github.com/heartmarshall/paindiary-backend/internal/transport/rest"
	"github.com/heartmarshall/paindiary-backend/pkg/ctxutil"
)

func main() {
	email := flag.String("email", "", "email of the diary owner")
	userFlag := flag.String("user", "", "user ID of the diary owner")
	preset := flag.String("preset", "", "1m, 3m, 6m, 12m, all or custom (default from config)")
	from := flag.String("from", "", "custom window start, YYYY-MM-DD")
	to := flag.String("to", "", "custom window end, YYYY-MM-DD")
	entries := flag.Bool("entries", false, "attach the entries of the window")
	export := flag.Bool("export", false, "build the clinician export (notes redacted)")
	flag.Parse()

	if (*email == "") == (*userFlag == "") {
		fmt.Fprintln(os.Stderr, "Usage: report (--email=user@example.com | --user=<uuid>) [--preset=3m]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	userID, err := resolveUser(ctx, userrepo.New(pool), *email, *userFlag)
	if err != nil {
		log.Fatalf("resolve user: %v", err)
	}

	svc, _, err := app.NewReportService(logger, pool, cfg.Report, nil)
	if err != nil {
		log.Fatalf("build report service: %v", err)
	}

	in := report.ReportInput{
		Preset:         domain.Preset(*preset),
		From:           *from,
		To:             *to,
		IncludeEntries: *entries,
	}
	ctx = ctxutil.WithUserID(ctx, userID)

	var rep *domain.Report
	if *export {
		rep, err = svc.ExportForClinician(ctx, in)
	} else {
		rep, err = svc.GetReport(ctx, in)
	}
	if err != nil {
		log.Fatalf("build report: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rest.NewReportResponse(rep)); err != nil {
		log.Fatalf("encode report: %v", err)
	}
}

func resolveUser(ctx context.Context, users *userrepo.Repo, email, id string) (uuid.UUID, error) {
	if id != "" {
		return uuid.Parse(id)
	}
	u, err := users.GetByEmail(ctx, email)
	if err != nil {
		return uuid.Nil, err
	}
	return u.ID, nil
}
