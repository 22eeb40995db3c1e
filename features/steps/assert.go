package steps

import (
	"fmt"

	assistdog "github.com/ONSdigital/dp-assistdog"
	"github.com/cucumber/godog"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// assertNames compares a single-column table of names with the names found,
// in order
func assertNames(table *godog.Table, got []string) error {
	expected, err := tableNames(table)
	if err != nil {
		return err
	}
	if diff := cmp.Diff(got, expected, cmpopts.EquateEmpty()); diff != "" {
		return fmt.Errorf("names do not match expected (-got +expected):\n%s", diff)
	}
	return nil
}

func assertRows[T any](got, expected []*T) error {
	if diff := cmp.Diff(got, expected, cmpopts.EquateEmpty()); diff != "" {
		return fmt.Errorf("rows do not match expected (-got +expected):\n%s", diff)
	}
	return nil
}

func tableNames(table *godog.Table) ([]string, error) {
	rows, err := assistdog.NewDefault().CreateSlice(new(nameRow), table)
	if err != nil {
		return nil, fmt.Errorf("failed to create slice from godog table: %w", err)
	}
	names := []string{}
	for _, row := range rows.([]*nameRow) {
		names = append(names, row.Name)
	}
	return names, nil
}
