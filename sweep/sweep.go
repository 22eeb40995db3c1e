package sweep

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/ONSdigital/dp-tm1-tools/models"
	"github.com/ONSdigital/log.go/v2/log"
	"github.com/hashicorp/go-set/v2"
)

// systemDimensionPrefixes mark dimensions maintained by the server itself
var systemDimensionPrefixes = []string{
	"}ElementAttributes_",
	"}Hierarchies_",
}

// Report holds the objects removed by a sweep, or the objects that would
// have been removed by a dry run
type Report struct {
	DryRun bool

	cubes      *set.Set[string]
	views      *set.Set[models.View]
	dimensions *set.Set[string]
	subsets    *set.Set[models.Subset]
	processes  *set.Set[string]
}

func newReport(dryRun bool) *Report {
	return &Report{
		DryRun:     dryRun,
		cubes:      set.New[string](0),
		views:      set.New[models.View](0),
		dimensions: set.New[string](0),
		subsets:    set.New[models.Subset](0),
		processes:  set.New[string](0),
	}
}

// Total returns the number of objects in the report
func (r *Report) Total() int {
	return r.cubes.Size() + r.views.Size() + r.dimensions.Size() + r.subsets.Size() + r.processes.Size()
}

// Cubes returns the sorted names of the removed cubes
func (r *Report) Cubes() []string {
	return sorted(r.cubes)
}

// Views returns the removed views, sorted by cube then name
func (r *Report) Views() []models.View {
	views := r.views.Slice()
	slices.SortFunc(views, func(a, b models.View) int {
		return cmp.Or(
			strings.Compare(a.Cube, b.Cube),
			strings.Compare(a.Name, b.Name),
			compareBool(a.Private, b.Private),
		)
	})
	return views
}

// Dimensions returns the sorted names of the removed dimensions
func (r *Report) Dimensions() []string {
	return sorted(r.dimensions)
}

// Subsets returns the removed subsets, sorted by dimension then name
func (r *Report) Subsets() []models.Subset {
	subsets := r.subsets.Slice()
	slices.SortFunc(subsets, func(a, b models.Subset) int {
		return cmp.Or(
			strings.Compare(a.Dimension, b.Dimension),
			strings.Compare(a.Hierarchy, b.Hierarchy),
			strings.Compare(a.Name, b.Name),
			compareBool(a.Private, b.Private),
		)
	})
	return subsets
}

// Processes returns the sorted names of the removed processes
func (r *Report) Processes() []string {
	return sorted(r.processes)
}

// Option configures a Sweeper
type Option func(*Sweeper)

// WithDryRun makes the sweeper report matching objects without deleting them
func WithDryRun() Option {
	return func(s *Sweeper) {
		s.dryRun = true
	}
}

// Sweeper deletes the cubes, views, dimensions, subsets and processes whose
// names match a Matcher
type Sweeper struct {
	client  TM1Client
	matcher *Matcher
	dryRun  bool
}

// New creates a new Sweeper
func New(client TM1Client, matcher *Matcher, opts ...Option) *Sweeper {
	s := &Sweeper{
		client:  client,
		matcher: matcher,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Sweep removes matching objects in order: cubes and their views, then
// dimensions and their subsets, then processes. Objects inside a deleted
// parent are not inspected. Deletions are not rolled back: the first error
// stops the sweep and is returned with the report of what was removed.
func (s *Sweeper) Sweep(ctx context.Context) (*Report, error) {
	report := newReport(s.dryRun)

	log.Info(ctx, "starting sweep", log.Data{
		"patterns": s.matcher.Patterns(),
		"dry_run":  s.dryRun,
	})

	if err := s.sweepCubes(ctx, report); err != nil {
		return report, err
	}
	if err := s.sweepDimensions(ctx, report); err != nil {
		return report, err
	}
	if err := s.sweepProcesses(ctx, report); err != nil {
		return report, err
	}

	log.Info(ctx, "sweep complete", log.Data{
		"cubes":      sorted(report.cubes),
		"views":      report.views.Size(),
		"dimensions": sorted(report.dimensions),
		"subsets":    report.subsets.Size(),
		"processes":  sorted(report.processes),
		"dry_run":    s.dryRun,
	})
	return report, nil
}

func (s *Sweeper) sweepCubes(ctx context.Context, report *Report) error {
	cubes, err := s.client.CubeNames(ctx)
	if err != nil {
		return fmt.Errorf("failed to list cubes: %w", err)
	}

	for _, cube := range cubes {
		if pattern, ok := s.matcher.Match(cube); ok {
			err := s.remove(ctx, log.Data{"cube": cube, "pattern": pattern}, func() error {
				return s.client.DeleteCube(ctx, cube)
			})
			if err != nil {
				return fmt.Errorf("failed to delete cube %s: %w", cube, err)
			}
			report.cubes.Insert(cube)
			continue
		}

		private, public, err := s.client.Views(ctx, cube)
		if err != nil {
			return fmt.Errorf("failed to list views of cube %s: %w", cube, err)
		}
		for _, v := range append(private, public...) {
			pattern, ok := s.matcher.Match(v.Name)
			if !ok {
				continue
			}
			err := s.remove(ctx, log.Data{"cube": cube, "view": v.Name, "private": v.Private, "pattern": pattern}, func() error {
				return s.client.DeleteView(ctx, cube, v.Name, v.Private)
			})
			if err != nil {
				return fmt.Errorf("failed to delete view %s of cube %s: %w", v.Name, cube, err)
			}
			report.views.Insert(v)
		}
	}
	return nil
}

func (s *Sweeper) sweepDimensions(ctx context.Context, report *Report) error {
	dimensions, err := s.client.DimensionNames(ctx)
	if err != nil {
		return fmt.Errorf("failed to list dimensions: %w", err)
	}

	for _, dim := range dimensions {
		if isSystemDimension(dim) {
			continue
		}

		if pattern, ok := s.matcher.Match(dim); ok {
			err := s.remove(ctx, log.Data{"dimension": dim, "pattern": pattern}, func() error {
				return s.client.DeleteDimension(ctx, dim)
			})
			if err != nil {
				return fmt.Errorf("failed to delete dimension %s: %w", dim, err)
			}
			report.dimensions.Insert(dim)
			continue
		}

		// only the hierarchy named after the dimension is inspected
		subsets, err := s.client.SubsetNames(ctx, dim, dim, false)
		if err != nil {
			return fmt.Errorf("failed to list subsets of dimension %s: %w", dim, err)
		}
		for _, name := range subsets {
			pattern, ok := s.matcher.Match(name)
			if !ok {
				continue
			}
			err := s.remove(ctx, log.Data{"dimension": dim, "subset": name, "pattern": pattern}, func() error {
				return s.client.DeleteSubset(ctx, dim, dim, name, false)
			})
			if err != nil {
				return fmt.Errorf("failed to delete subset %s of dimension %s: %w", name, dim, err)
			}
			report.subsets.Insert(models.Subset{Dimension: dim, Hierarchy: dim, Name: name})
		}
	}
	return nil
}

func (s *Sweeper) sweepProcesses(ctx context.Context, report *Report) error {
	processes, err := s.client.ProcessNames(ctx)
	if err != nil {
		return fmt.Errorf("failed to list processes: %w", err)
	}

	for _, process := range processes {
		pattern, ok := s.matcher.Match(process)
		if !ok {
			continue
		}
		err := s.remove(ctx, log.Data{"process": process, "pattern": pattern}, func() error {
			return s.client.DeleteProcess(ctx, process)
		})
		if err != nil {
			return fmt.Errorf("failed to delete process %s: %w", process, err)
		}
		report.processes.Insert(process)
	}
	return nil
}

// remove calls del unless this is a dry run
func (s *Sweeper) remove(ctx context.Context, logData log.Data, del func() error) error {
	if s.dryRun {
		log.Info(ctx, "dry run, object matched but not deleted", logData)
		return nil
	}
	log.Info(ctx, "object matched, deleting", logData)
	return del()
}

func isSystemDimension(name string) bool {
	for _, prefix := range systemDimensionPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

func sorted(s *set.Set[string]) []string {
	items := s.Slice()
	slices.Sort(items)
	return items
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}
