package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ONSdigital/dp-healthcheck/healthcheck"
	"github.com/ONSdigital/dp-tm1-tools/config"
	"github.com/ONSdigital/dp-tm1-tools/metadata"
	"github.com/ONSdigital/dp-tm1-tools/models"
	"github.com/ONSdigital/dp-tm1-tools/provision"
	"github.com/ONSdigital/dp-tm1-tools/sweep"
	"github.com/ONSdigital/log.go/v2/log"
)

const checkName = "TM1"

// Service holds the config and the TM1 session used by every operation
type Service struct {
	Cfg *config.Config
	TM1 TM1Client
}

func New() *Service {
	return &Service{}
}

// Run opens a TM1 session, calls fn with it and closes the session on every
// exit path, including when fn returns an error or panics.
func Run(ctx context.Context, cfg *config.Config, fn func(ctx context.Context, svc *Service) error) (err error) {
	svc := New()
	defer func() {
		if closeErr := svc.Close(ctx); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	if err := svc.Init(ctx, cfg); err != nil {
		return err
	}
	return fn(ctx, svc)
}

// Init creates the TM1 client and logs in
func (svc *Service) Init(ctx context.Context, cfg *config.Config) error {
	if cfg == nil {
		return errors.New("nil config passed to service init")
	}

	svc.Cfg = cfg
	svc.TM1 = GetTM1Client(cfg)

	if err := svc.TM1.Login(ctx); err != nil {
		return fmt.Errorf("failed to open tm1 session: %w", err)
	}
	return nil
}

// Close logs out of TM1, with timeout. The logout is attempted even if ctx
// has already been cancelled.
func (svc *Service) Close(ctx context.Context) error {
	if svc.TM1 == nil {
		return nil
	}

	timeout := svc.Cfg.GracefulShutdownTimeout
	log.Info(ctx, "closing tm1 session", log.Data{"graceful_shutdown_timeout": timeout})
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	if err := svc.TM1.Logout(ctx); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			log.Error(ctx, "closing tm1 session timed out", err)
		} else {
			log.Error(ctx, "failed to close tm1 session", err)
		}
		return err
	}
	return nil
}

// Check runs the TM1 health check and returns the resulting state
func (svc *Service) Check(ctx context.Context) (*healthcheck.CheckState, error) {
	state := healthcheck.NewCheckState(checkName)
	if err := svc.TM1.Checker(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to update check state: %w", err)
	}
	return state, nil
}

// ServerName returns the name of the connected TM1 server
func (svc *Service) ServerName(ctx context.Context) (string, error) {
	return svc.TM1.ServerName(ctx)
}

// Setup creates the missing objects of the provided schema
func (svc *Service) Setup(ctx context.Context, s models.Schema) (*provision.Report, error) {
	return provision.New(svc.TM1).Provision(ctx, s)
}

// CellCounts sizes every cube of the server
func (svc *Service) CellCounts(ctx context.Context) ([]metadata.CubeCells, error) {
	return metadata.New(svc.TM1).CellCounts(ctx)
}

// Cleanup deletes every object matching the provided patterns, or only
// reports them for a dry run
func (svc *Service) Cleanup(ctx context.Context, patterns []string, dryRun bool) (*sweep.Report, error) {
	matcher, err := sweep.NewMatcher(patterns...)
	if err != nil {
		return nil, err
	}

	var opts []sweep.Option
	if dryRun {
		opts = append(opts, sweep.WithDryRun())
	}
	return sweep.New(svc.TM1, matcher, opts...).Sweep(ctx)
}
