package steps

import (
	"context"
	"time"

	"github.com/ONSdigital/dp-tm1-tools/config"
	"github.com/ONSdigital/dp-tm1-tools/metadata"
	"github.com/ONSdigital/dp-tm1-tools/provision"
	"github.com/ONSdigital/dp-tm1-tools/service"
	"github.com/ONSdigital/dp-tm1-tools/sweep"
	"github.com/ONSdigital/dp-tm1-tools/tm1/tm1test"
	"github.com/ONSdigital/log.go/v2/log"
)

// Component runs the toolkit operations against an in-memory TM1 server
// and keeps the outcome of the last one for the assertion steps
type Component struct {
	TM1 *tm1test.Server
	cfg *config.Config

	serverName string
	provision  *provision.Report
	sweep      *sweep.Report
	cells      []metadata.CubeCells
	err        error
}

// NewComponent starts the TM1 server used by every scenario
func NewComponent() *Component {
	c := &Component{TM1: tm1test.NewServer()}
	c.Reset()
	return c
}

// Reset empties the server and forgets the outcome of the previous scenario
func (c *Component) Reset() {
	c.TM1.Reset()
	c.cfg = &config.Config{
		TM1BaseURL:              c.TM1.URL(),
		TM1User:                 tm1test.DefaultUser,
		TM1Password:             tm1test.DefaultPassword,
		DefaultRequestTimeout:   5 * time.Second,
		GracefulShutdownTimeout: time.Second,
		SweepPatterns:           []string{"^temp_*", "^test*", "^TM1py*"},
	}
	c.serverName = ""
	c.provision = nil
	c.sweep = nil
	c.cells = nil
	c.err = nil
}

// Close stops the TM1 server
func (c *Component) Close() {
	c.TM1.Close()
}

// run opens a session, runs fn and closes the session, keeping the error
// for later steps rather than failing the step
func (c *Component) run(fn func(ctx context.Context, svc *service.Service) error) {
	ctx := context.Background()
	c.err = service.Run(ctx, c.cfg, fn)
	if c.err != nil {
		log.Info(ctx, "operation failed", log.Data{"error": c.err.Error()})
	}
}
