package provision

import (
	"context"

	"github.com/ONSdigital/dp-tm1-tools/models"
)

//go:generate moq -out mock/tm1.go -pkg mock . TM1Client

// TM1Client contains the methods required to create dimensions and cubes
type TM1Client interface {
	DimensionExists(ctx context.Context, name string) (bool, error)
	CreateDimension(ctx context.Context, d models.Dimension) error
	CubeExists(ctx context.Context, name string) (bool, error)
	CreateCube(ctx context.Context, c models.Cube) error
}
