package provision

import (
	"context"
	"fmt"

	"github.com/ONSdigital/dp-tm1-tools/models"
	"github.com/ONSdigital/log.go/v2/log"
)

// Report lists the objects created by a run and those found already present
type Report struct {
	CreatedDimensions  []string
	ExistingDimensions []string
	CreatedCubes       []string
	ExistingCubes      []string
}

// Created returns the number of objects created
func (r *Report) Created() int {
	return len(r.CreatedDimensions) + len(r.CreatedCubes)
}

// Provisioner creates the dimensions and cubes of a schema that are missing
// on a server. Objects already present are never modified.
type Provisioner struct {
	client TM1Client
}

// New creates a new Provisioner
func New(client TM1Client) *Provisioner {
	return &Provisioner{
		client: client,
	}
}

// Provision validates the schema, then creates every missing dimension
// followed by every missing cube, in declaration order. The first error
// aborts the run and the report covers the work done so far.
func (p *Provisioner) Provision(ctx context.Context, s models.Schema) (*Report, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}

	report := &Report{}

	for _, d := range s.Dimensions {
		exists, err := p.client.DimensionExists(ctx, d.Name)
		if err != nil {
			return report, fmt.Errorf("failed to check dimension %s: %w", d.Name, err)
		}
		if exists {
			log.Info(ctx, "dimension already exists", log.Data{"dimension": d.Name})
			report.ExistingDimensions = append(report.ExistingDimensions, d.Name)
			continue
		}
		if err := p.client.CreateDimension(ctx, d); err != nil {
			return report, fmt.Errorf("failed to create dimension %s: %w", d.Name, err)
		}
		report.CreatedDimensions = append(report.CreatedDimensions, d.Name)
	}

	for _, c := range s.Cubes {
		exists, err := p.client.CubeExists(ctx, c.Name)
		if err != nil {
			return report, fmt.Errorf("failed to check cube %s: %w", c.Name, err)
		}
		if exists {
			log.Info(ctx, "cube already exists", log.Data{"cube": c.Name})
			report.ExistingCubes = append(report.ExistingCubes, c.Name)
			continue
		}
		if err := p.client.CreateCube(ctx, c); err != nil {
			return report, fmt.Errorf("failed to create cube %s: %w", c.Name, err)
		}
		report.CreatedCubes = append(report.CreatedCubes, c.Name)
	}

	log.Info(ctx, "provisioning complete", log.Data{
		"created_dimensions":  len(report.CreatedDimensions),
		"existing_dimensions": len(report.ExistingDimensions),
		"created_cubes":       len(report.CreatedCubes),
		"existing_cubes":      len(report.ExistingCubes),
	})
	return report, nil
}
