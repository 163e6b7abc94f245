package main

import (
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/linearlab/lda-lab/infra/config"
	"github.com/linearlab/lda-lab/internal/cases"
	"github.com/linearlab/lda-lab/internal/metrics"
	"github.com/linearlab/lda-lab/internal/report"
	jsonstore "github.com/linearlab/lda-lab/internal/storage/file/json"
)

const (
	metricsPort = 6021
	outDir      = "output"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func main() {
	var cfg cases.Config
	config.MustLoad("cases", &cfg)

	metrics.Serve(metricsPort)

	store, err := jsonstore.BlobShard("results")("cases")
	if err != nil {
		log.Fatalf("error creating storage: %s", err.Error())
	}

	if err := os.MkdirAll(outDir, os.ModePerm); err != nil {
		log.Fatalf("error creating output dir: %s", err.Error())
	}

	env := cases.Env{
		Config: cfg,
		Store:  store,
		Run:    uuid.New().String(),
		OutDir: outDir,
	}

	zlog.Info().Str("run", env.Run).Msg("starting walkthrough")

	failed := 0
	for _, c := range cases.All() {
		result, err := c.Run(env)
		if err != nil {
			metrics.Observer.IncrementCase(c.Name, "error")
			zlog.Error().Err(err).Str("case", c.Name).Msg("case failed")
			failed++
			continue
		}
		metrics.Observer.IncrementCase(c.Name, result.Outcome)

		zlog.Info().
			Str("case", c.Name).
			Str("outcome", result.Outcome).
			Strs("notes", result.Notes).
			Msg("case done")

		if confusion := result.Confusion(); confusion != nil {
			report.Confusion(os.Stdout, confusion)
		}
	}

	if failed > 0 {
		log.Fatalf("%d cases failed", failed)
	}
	zlog.Info().Str("run", env.Run).Msg("walkthrough complete")
}
