package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"talent-match/internal/app"
	"talent-match/internal/config"
	"talent-match/internal/delivery/http/dto"
	"talent-match/internal/logger"
	"talent-match/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func main() {
	jobFlag := flag.String("job", "", "job requisition id")
	candidatesFlag := flag.String("candidates", "", "comma-separated candidate ids")
	topK := flag.Int("top", 0, "keep only the top K ranked results (0 = all)")
	withLocation := flag.Bool("location", false, "include commute analysis and location adjustment")
	timeout := flag.Duration("timeout", 5*time.Minute, "overall batch timeout")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.App.LogJSON, cfg.App.LogDebug)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	jobID, err := uuid.Parse(strings.TrimSpace(*jobFlag))
	if err != nil {
		zl.Fatal("invalid -job id", zap.Error(err))
	}

	candidateIDs, err := parseCandidateIDs(*candidatesFlag)
	if err != nil {
		zl.Fatal("invalid -candidates list", zap.Error(err))
	}
	if len(candidateIDs) == 0 {
		zl.Fatal("provide -candidates")
	}

	container, err := app.NewContainer(cfg, zl)
	if err != nil {
		zl.Fatal("failed to build container", zap.Error(err))
	}
	defer func() { _ = container.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	rep, err := container.Batch.Run(ctx, usecase.BatchRequest{
		JobID:           jobID,
		CandidateIDs:    candidateIDs,
		TopK:            *topK,
		IncludeLocation: *withLocation,
	})
	if err != nil {
		zl.Fatal("batch failed", zap.Error(err))
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(dto.NewBatchReportResponse(rep)); err != nil {
		zl.Fatal("failed to encode report", zap.Error(err))
	}
}

func parseCandidateIDs(raw string) ([]uuid.UUID, error) {
	parts := strings.Split(raw, ",")
	out := make([]uuid.UUID, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		id, err := uuid.Parse(p)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}
