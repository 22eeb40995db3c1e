package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ONSdigital/dp-healthcheck/healthcheck"
	"github.com/ONSdigital/dp-tm1-tools/config"
	"github.com/ONSdigital/dp-tm1-tools/schema"
	"github.com/ONSdigital/dp-tm1-tools/service"
	"github.com/spf13/cobra"
)

func newRootCommand(cfg *config.Config, p *prompter) *cobra.Command {
	root := &cobra.Command{
		Use:   "dp-tm1-tools",
		Short: "Administration tools for a TM1 server",
		Long: `Administration tools for a TM1 server, connecting through the TM1 REST API.

The connection is configured with the TM1_* environment variables. Every
command opens a single session and closes it before exiting.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newCheckCommand(cfg, p),
		newSetupCommand(cfg),
		newCellsCommand(cfg),
		newCleanupCommand(cfg),
	)
	return root
}

func newCheckCommand(cfg *config.Config, p *prompter) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check that a TM1 server can be reached",
		Long: `Check that a TM1 server can be reached with the provided credentials.

Connection values missing from the environment are asked for. Any failure is
printed and the command still exits successfully.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			reportErrors(out, func() error {
				if err := p.complete(cfg); err != nil {
					return err
				}
				return service.Run(cmd.Context(), cfg, func(ctx context.Context, svc *service.Service) error {
					return check(ctx, out, svc)
				})
			})
			return nil
		},
	}
}

func check(ctx context.Context, out io.Writer, svc *service.Service) error {
	state, err := svc.Check(ctx)
	if err != nil {
		return err
	}
	if state.Status() != healthcheck.StatusOK {
		return errors.New(state.Message())
	}

	name, err := svc.ServerName(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Connection to TM1 established! Server name: %s\n", name)
	return nil
}

// reportErrors runs fn and prints any error or panic instead of returning it
func reportErrors(out io.Writer, fn func() error) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(out, "\nERROR:\n\t%v\n", r)
		}
	}()
	if err := fn(); err != nil {
		fmt.Fprintf(out, "\nERROR:\n\t%s\n", err)
	}
}

func newSetupCommand(cfg *config.Config) *cobra.Command {
	var sample string

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Create the sample dimensions and cubes",
		Long: `Create the sample dimensions and cubes. Objects that already exist are left
untouched, so running setup again creates nothing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, ok := schema.ByName(sample)
			if !ok {
				return fmt.Errorf("unknown sample %q, expected one of %s", sample, strings.Join(schema.Names(), ", "))
			}

			out := cmd.OutOrStdout()
			return service.Run(cmd.Context(), cfg, func(ctx context.Context, svc *service.Service) error {
				report, err := svc.Setup(ctx, s)
				if report != nil {
					printList(out, "Created dimension", report.CreatedDimensions)
					printList(out, "Existing dimension", report.ExistingDimensions)
					printList(out, "Created cube", report.CreatedCubes)
					printList(out, "Existing cube", report.ExistingCubes)
				}
				return err
			})
		},
	}

	cmd.Flags().StringVar(&sample, "sample", "all", "sample to create: "+strings.Join(schema.Names(), ", "))
	return cmd
}

func newCellsCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "cells",
		Short: "List every cube with its number of cells, largest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			return service.Run(cmd.Context(), cfg, func(ctx context.Context, svc *service.Service) error {
				cells, err := svc.CellCounts(ctx)
				if err != nil {
					return err
				}
				for _, c := range cells {
					fmt.Fprintf(out, "Cube: %s, Cells: %s\n", c.Cube, c.Cells)
				}
				return nil
			})
		},
	}
}

func newCleanupCommand(cfg *config.Config) *cobra.Command {
	var (
		patterns []string
		dryRun   bool
	)

	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Delete the objects whose names match the cleanup patterns",
		Long: `Delete the cubes, views, dimensions, subsets and processes whose names start
with a match of one of the patterns. Patterns are case-insensitive regular
expressions. Deletions are not rolled back if a later one fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			return service.Run(cmd.Context(), cfg, func(ctx context.Context, svc *service.Service) error {
				report, err := svc.Cleanup(ctx, patterns, dryRun)
				if report != nil {
					verb := "Deleted"
					if report.DryRun {
						verb = "Would delete"
					}
					printList(out, verb+" cube", report.Cubes())
					for _, v := range report.Views() {
						fmt.Fprintf(out, "%s view: %s (cube %s, private %t)\n", verb, v.Name, v.Cube, v.Private)
					}
					printList(out, verb+" dimension", report.Dimensions())
					for _, s := range report.Subsets() {
						fmt.Fprintf(out, "%s subset: %s (dimension %s)\n", verb, s.Name, s.Dimension)
					}
					printList(out, verb+" process", report.Processes())
					fmt.Fprintf(out, "Total: %d\n", report.Total())
				}
				return err
			})
		},
	}

	cmd.Flags().StringArrayVar(&patterns, "pattern", cfg.SweepPatterns, "name pattern of the objects to delete, can be repeated")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "list the matching objects without deleting them")
	return cmd
}

func printList(out io.Writer, label string, names []string) {
	for _, n := range names {
		fmt.Fprintf(out, "%s: %s\n", label, n)
	}
}
