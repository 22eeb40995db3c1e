package service

import (
	"github.com/ONSdigital/dp-tm1-tools/config"
	"github.com/ONSdigital/dp-tm1-tools/tm1"

	dphttp "github.com/ONSdigital/dp-net/v2/http"
)

// GetTM1Client creates a TM1 client for the configured server. No session is
// opened until Login is called.
var GetTM1Client = func(cfg *config.Config) TM1Client {
	return tm1.NewClient(
		tm1.Config{
			URL:       cfg.TM1URL(),
			User:      cfg.TM1User,
			Password:  cfg.TM1Password,
			Namespace: cfg.TM1Namespace,
			Timeout:   cfg.DefaultRequestTimeout,
		},
		dphttp.NewClient(),
	)
}
