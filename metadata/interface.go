package metadata

import (
	"context"

	"github.com/ONSdigital/dp-tm1-tools/models"
)

//go:generate moq -out mock/tm1.go -pkg mock . TM1Client

// TM1Client contains the methods required to size cubes
type TM1Client interface {
	Cubes(ctx context.Context) ([]models.Cube, error)
	ElementCount(ctx context.Context, dimension, hierarchy string) (int, error)
}
