package sweep

import (
	"context"

	"github.com/ONSdigital/dp-tm1-tools/models"
)

//go:generate moq -out mock/tm1.go -pkg mock . TM1Client

// TM1Client contains the methods required to find and delete objects
type TM1Client interface {
	CubeNames(ctx context.Context) ([]string, error)
	DeleteCube(ctx context.Context, name string) error
	Views(ctx context.Context, cube string) (private, public []models.View, err error)
	DeleteView(ctx context.Context, cube, name string, private bool) error
	DimensionNames(ctx context.Context) ([]string, error)
	DeleteDimension(ctx context.Context, name string) error
	SubsetNames(ctx context.Context, dimension, hierarchy string, private bool) ([]string, error)
	DeleteSubset(ctx context.Context, dimension, hierarchy, name string, private bool) error
	ProcessNames(ctx context.Context) ([]string, error)
	DeleteProcess(ctx context.Context, name string) error
}
