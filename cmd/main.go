package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/saeidalz13/battleship-placement/api"
	"github.com/saeidalz13/battleship-placement/db"
	"github.com/saeidalz13/battleship-placement/db/sqlc"
)

func main() {
	if os.Getenv("STAGE") != api.StageProd {
		if err := godotenv.Load(".env"); err != nil {
			log.Warn("no .env file loaded", "err", err)
		}
	}

	stage := os.Getenv("STAGE")
	if stage != api.StageDev && stage != api.StageProd {
		log.Fatal("stage must be either dev or prod", "stage", stage)
	}
	if stage == api.StageDev {
		log.SetLevel(log.DebugLevel)
	}

	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil {
		log.Fatal("invalid PORT", "err", err)
	}

	opts := []api.Option{api.WithPort(port), api.WithStage(stage)}

	// Analytics are optional; without a database the server
	// still places ships, it just keeps no counters.
	if psqlUrl := os.Getenv("DATABASE_URL"); psqlUrl != "" {
		conn := db.MustConnectToDb(psqlUrl)
		defer conn.Close()
		opts = append(opts, api.WithAnalytics(sqlc.NewDbManager(sqlc.New(conn)).Analytics))
	} else {
		log.Info("DATABASE_URL not set; analytics disabled")
	}

	server, err := api.NewServer(opts...)
	if err != nil {
		log.Fatal("could not create server", "err", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx); err != nil {
		log.Error("server stopped", "err", err)
	}
}
