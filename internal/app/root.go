package app

import (
	"context"
	"fmt"

	siren_client "github.com/oshokin/siren-grabber/internal/client/siren"
	"github.com/oshokin/siren-grabber/internal/config"
	"github.com/oshokin/siren-grabber/internal/errkind"
	"github.com/oshokin/siren-grabber/internal/logger"
	siren_service "github.com/oshokin/siren-grabber/internal/service/siren"
)

// NewService builds the resolution service from the configuration.
func NewService(cfg *config.Config) (siren_service.Service, error) {
	sirenClient, err := siren_client.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize siren client: %w", err)
	}

	idempotency := siren_service.NewFilesystemIdempotency()
	fetcher := siren_service.NewFileFetcher(
		sirenClient,
		idempotency,
		cfg.ParsedDownloadSpeedLimit,
		cfg.ShowProgress)

	return siren_service.NewService(
		cfg,
		sirenClient,
		fetcher,
		siren_service.NewFFmpegAssembler(cfg.FFmpegPath),
		siren_service.NewFLACVerifier(),
		idempotency), nil
}

// Run resolves scope and always prints the run summary, even when the service panics.
func Run(ctx context.Context, s siren_service.Service, scope siren_service.Scope) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf(ctx, "Panic recovered: %v", r)

			err = errkind.New(errkind.KindUnknown, "resolve "+scope.String(), fmt.Errorf("panic: %v", r))
		}

		s.PrintRunSummary(ctx)
	}()

	return s.Resolve(ctx, scope)
}

// ExecuteRootCommand is the entry point for the application.
// It builds the service and resolves the requested scope.
func ExecuteRootCommand(ctx context.Context, cfg *config.Config, scope siren_service.Scope) error {
	s, err := NewService(cfg)
	if err != nil {
		return err
	}

	return Run(ctx, s, scope)
}
