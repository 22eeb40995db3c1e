package metadata

import (
	"context"
	"fmt"
	"math/big"
	"sort"

	"github.com/ONSdigital/log.go/v2/log"
)

// CubeCells is the number of addressable cells of a cube
type CubeCells struct {
	Cube  string
	Cells *big.Int
}

// CellCounter computes how many cells each cube of a server can address
type CellCounter struct {
	client TM1Client
}

// New creates a new CellCounter
func New(client TM1Client) *CellCounter {
	return &CellCounter{
		client: client,
	}
}

// CellCounts returns every cube with the product of the element counts of
// its dimensions, largest first. Cubes with equal counts keep the order in
// which the server lists them. Element counts of a dimension are requested
// once and reused across cubes.
func (c *CellCounter) CellCounts(ctx context.Context) ([]CubeCells, error) {
	cubes, err := c.client.Cubes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cubes: %w", err)
	}

	counts := map[string]int{}
	result := make([]CubeCells, 0, len(cubes))
	for _, cube := range cubes {
		cells := big.NewInt(1)
		for _, dim := range cube.Dimensions {
			n, ok := counts[dim]
			if !ok {
				// the hierarchy named after the dimension is used
				if n, err = c.client.ElementCount(ctx, dim, dim); err != nil {
					return nil, fmt.Errorf("failed to count elements of dimension %s in cube %s: %w", dim, cube.Name, err)
				}
				counts[dim] = n
			}
			cells.Mul(cells, big.NewInt(int64(n)))
		}
		result = append(result, CubeCells{Cube: cube.Name, Cells: cells})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Cells.Cmp(result[j].Cells) > 0
	})

	log.Info(ctx, "cell counts computed", log.Data{"cubes": len(result)})
	return result, nil
}
