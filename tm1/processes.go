package tm1

import (
	"context"

	"github.com/ONSdigital/log.go/v2/log"
)

// ProcessNames lists the names of all processes
func (c *Client) ProcessNames(ctx context.Context) ([]string, error) {
	return c.names(ctx, "Processes")
}

// DeleteProcess deletes the process with the provided name
func (c *Client) DeleteProcess(ctx context.Context, name string) error {
	log.Info(ctx, "deleting process", log.Data{"process": name})
	return c.delete(ctx, "Processes"+key(name))
}
