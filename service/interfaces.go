package service

import (
	"context"

	"github.com/ONSdigital/dp-healthcheck/healthcheck"
	"github.com/ONSdigital/dp-tm1-tools/metadata"
	"github.com/ONSdigital/dp-tm1-tools/provision"
	"github.com/ONSdigital/dp-tm1-tools/sweep"
)

//go:generate moq -out mock/tm1.go -pkg mock . TM1Client

// TM1Client defines the required methods from the TM1 client: session
// handling plus everything the provisioner, sweeper and cell counter use
type TM1Client interface {
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Checker(ctx context.Context, state *healthcheck.CheckState) error
	ServerName(ctx context.Context) (string, error)
	provision.TM1Client
	sweep.TM1Client
	metadata.TM1Client
}
