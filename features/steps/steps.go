package steps

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	assistdog "github.com/ONSdigital/dp-assistdog"
	"github.com/ONSdigital/dp-tm1-tools/schema"
	"github.com/ONSdigital/dp-tm1-tools/service"
	"github.com/cucumber/godog"
)

// dimensionRow, cubeRow, viewRow and nameRow are the table layouts
// accepted by the Given steps
type dimensionRow struct {
	Name     string
	Elements string
}

type cubeRow struct {
	Name       string
	Dimensions string
}

type viewRow struct {
	Cube    string
	Name    string
	Private string
}

type nameRow struct {
	Name string
}

type cellsRow struct {
	Cube  string
	Cells string
}

// RegisterSteps maps the human-readable regular expressions to their corresponding funcs
func (c *Component) RegisterSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^TM1 has the following dimensions:$`, c.tm1HasTheFollowingDimensions)
	ctx.Step(`^TM1 has the following cubes:$`, c.tm1HasTheFollowingCubes)
	ctx.Step(`^TM1 has the following views:$`, c.tm1HasTheFollowingViews)
	ctx.Step(`^TM1 has the following processes:$`, c.tm1HasTheFollowingProcesses)
	ctx.Step(`^TM1 fails to delete the process "([^"]*)"$`, c.tm1FailsToDeleteTheProcess)
	ctx.Step(`^the password is "([^"]*)"$`, c.thePasswordIs)

	ctx.Step(`^I check the connection to TM1$`, c.iCheckTheConnectionToTM1)
	ctx.Step(`^I set up the "([^"]*)" sample$`, c.iSetUpTheSample)
	ctx.Step(`^I count the cells of every cube$`, c.iCountTheCellsOfEveryCube)
	ctx.Step(`^I clean up objects matching "([^"]*)"$`, c.iCleanUpObjectsMatching)
	ctx.Step(`^I preview a clean up of objects matching "([^"]*)"$`, c.iPreviewACleanUpOfObjectsMatching)

	ctx.Step(`^the server name "([^"]*)" is reported$`, c.theServerNameIsReported)
	ctx.Step(`^the operation fails with "([^"]*)"$`, c.theOperationFailsWith)
	ctx.Step(`^the TM1 session is closed$`, c.theTM1SessionIsClosed)
	ctx.Step(`^(\d+) dimensions and (\d+) cubes are created$`, c.dimensionsAndCubesAreCreated)
	ctx.Step(`^these cubes exist in TM1:$`, c.theseCubesExistInTM1)
	ctx.Step(`^these dimensions exist in TM1:$`, c.theseDimensionsExistInTM1)
	ctx.Step(`^these processes exist in TM1:$`, c.theseProcessesExistInTM1)
	ctx.Step(`^the dimension "([^"]*)" has (\d+) elements$`, c.theDimensionHasElements)
	ctx.Step(`^these cell counts are reported:$`, c.theseCellCountsAreReported)
	ctx.Step(`^these cubes are reported for deletion:$`, c.theseCubesAreReportedForDeletion)
	ctx.Step(`^these dimensions are reported for deletion:$`, c.theseDimensionsAreReportedForDeletion)
	ctx.Step(`^these processes are reported for deletion:$`, c.theseProcessesAreReportedForDeletion)
	ctx.Step(`^(\d+) objects are reported for deletion$`, c.objectsAreReportedForDeletion)
}

func (c *Component) tm1HasTheFollowingDimensions(table *godog.Table) error {
	rows, err := assistdog.NewDefault().CreateSlice(new(dimensionRow), table)
	if err != nil {
		return fmt.Errorf("failed to create slice from godog table: %w", err)
	}
	for _, row := range rows.([]*dimensionRow) {
		elements, err := expandElements(row.Elements)
		if err != nil {
			return err
		}
		c.TM1.AddDimension(row.Name, elements...)
	}
	return nil
}

func (c *Component) tm1HasTheFollowingCubes(table *godog.Table) error {
	rows, err := assistdog.NewDefault().CreateSlice(new(cubeRow), table)
	if err != nil {
		return fmt.Errorf("failed to create slice from godog table: %w", err)
	}
	for _, row := range rows.([]*cubeRow) {
		c.TM1.AddCube(row.Name, splitList(row.Dimensions)...)
	}
	return nil
}

func (c *Component) tm1HasTheFollowingViews(table *godog.Table) error {
	rows, err := assistdog.NewDefault().CreateSlice(new(viewRow), table)
	if err != nil {
		return fmt.Errorf("failed to create slice from godog table: %w", err)
	}
	for _, row := range rows.([]*viewRow) {
		private, err := strconv.ParseBool(row.Private)
		if err != nil {
			return fmt.Errorf("invalid private flag for view %s: %w", row.Name, err)
		}
		c.TM1.AddView(row.Cube, row.Name, private)
	}
	return nil
}

func (c *Component) tm1HasTheFollowingProcesses(table *godog.Table) error {
	names, err := tableNames(table)
	if err != nil {
		return err
	}
	for _, name := range names {
		c.TM1.AddProcess(name)
	}
	return nil
}

func (c *Component) tm1FailsToDeleteTheProcess(name string) error {
	c.TM1.FailOn("DELETE", "/api/v1/Processes('"+name+"')", 500)
	return nil
}

func (c *Component) thePasswordIs(password string) error {
	c.cfg.TM1Password = password
	return nil
}

func (c *Component) iCheckTheConnectionToTM1() error {
	c.run(func(ctx context.Context, svc *service.Service) (err error) {
		c.serverName, err = svc.ServerName(ctx)
		return err
	})
	return nil
}

func (c *Component) iSetUpTheSample(name string) error {
	sample, ok := schema.ByName(name)
	if !ok {
		return fmt.Errorf("unknown sample %q", name)
	}
	c.run(func(ctx context.Context, svc *service.Service) (err error) {
		c.provision, err = svc.Setup(ctx, sample)
		return err
	})
	return nil
}

func (c *Component) iCountTheCellsOfEveryCube() error {
	c.run(func(ctx context.Context, svc *service.Service) (err error) {
		c.cells, err = svc.CellCounts(ctx)
		return err
	})
	return nil
}

func (c *Component) iCleanUpObjectsMatching(patterns string) error {
	return c.cleanup(patterns, false)
}

func (c *Component) iPreviewACleanUpOfObjectsMatching(patterns string) error {
	return c.cleanup(patterns, true)
}

func (c *Component) cleanup(patterns string, dryRun bool) error {
	c.run(func(ctx context.Context, svc *service.Service) (err error) {
		c.sweep, err = svc.Cleanup(ctx, splitList(patterns), dryRun)
		return err
	})
	return nil
}

func (c *Component) theServerNameIsReported(name string) error {
	if c.err != nil {
		return fmt.Errorf("unexpected error: %w", c.err)
	}
	if c.serverName != name {
		return fmt.Errorf("server name %q does not match expected %q", c.serverName, name)
	}
	return nil
}

func (c *Component) theOperationFailsWith(message string) error {
	if c.err == nil {
		return errors.New("expected the operation to fail")
	}
	if !strings.Contains(c.err.Error(), message) {
		return fmt.Errorf("error %q does not contain %q", c.err.Error(), message)
	}
	return nil
}

func (c *Component) theTM1SessionIsClosed() error {
	if c.TM1.Logouts() == 0 {
		return errors.New("no session was closed")
	}
	if n := c.TM1.OpenSessions(); n != 0 {
		return fmt.Errorf("%d sessions are still open", n)
	}
	return nil
}

func (c *Component) dimensionsAndCubesAreCreated(dimensions, cubes int) error {
	if c.err != nil {
		return fmt.Errorf("unexpected error: %w", c.err)
	}
	if got := len(c.provision.CreatedDimensions); got != dimensions {
		return fmt.Errorf("%d dimensions created, expected %d", got, dimensions)
	}
	if got := len(c.provision.CreatedCubes); got != cubes {
		return fmt.Errorf("%d cubes created, expected %d", got, cubes)
	}
	return nil
}

func (c *Component) theseCubesExistInTM1(table *godog.Table) error {
	return assertNames(table, c.TM1.CubeNames())
}

func (c *Component) theseDimensionsExistInTM1(table *godog.Table) error {
	return assertNames(table, c.TM1.DimensionNames())
}

func (c *Component) theseProcessesExistInTM1(table *godog.Table) error {
	return assertNames(table, c.TM1.ProcessNames())
}

func (c *Component) theDimensionHasElements(name string, count int) error {
	if got := len(c.TM1.Elements(name, name)); got != count {
		return fmt.Errorf("dimension %s has %d elements, expected %d", name, got, count)
	}
	return nil
}

func (c *Component) theseCellCountsAreReported(table *godog.Table) error {
	if c.err != nil {
		return fmt.Errorf("unexpected error: %w", c.err)
	}
	rows, err := assistdog.NewDefault().CreateSlice(new(cellsRow), table)
	if err != nil {
		return fmt.Errorf("failed to create slice from godog table: %w", err)
	}
	got := make([]*cellsRow, 0, len(c.cells))
	for _, cc := range c.cells {
		got = append(got, &cellsRow{Cube: cc.Cube, Cells: cc.Cells.String()})
	}
	return assertRows(got, rows.([]*cellsRow))
}

func (c *Component) theseCubesAreReportedForDeletion(table *godog.Table) error {
	if c.sweep == nil {
		return errors.New("no clean up report")
	}
	return assertNames(table, c.sweep.Cubes())
}

func (c *Component) theseDimensionsAreReportedForDeletion(table *godog.Table) error {
	if c.sweep == nil {
		return errors.New("no clean up report")
	}
	return assertNames(table, c.sweep.Dimensions())
}

func (c *Component) theseProcessesAreReportedForDeletion(table *godog.Table) error {
	if c.sweep == nil {
		return errors.New("no clean up report")
	}
	return assertNames(table, c.sweep.Processes())
}

func (c *Component) objectsAreReportedForDeletion(total int) error {
	if c.sweep == nil {
		return errors.New("no clean up report")
	}
	if got := c.sweep.Total(); got != total {
		return fmt.Errorf("%d objects reported, expected %d", got, total)
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
