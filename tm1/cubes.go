package tm1

import (
	"context"
	"fmt"
	"net/url"

	"github.com/ONSdigital/dp-tm1-tools/models"
	"github.com/ONSdigital/log.go/v2/log"
)

// CubeExists checks whether a cube with the provided name exists
func (c *Client) CubeExists(ctx context.Context, name string) (bool, error) {
	return c.exists(ctx, "Cubes"+key(name))
}

// CreateCube creates a cube over the provided ordered dimensions, which must already exist
func (c *Client) CreateCube(ctx context.Context, cube models.Cube) error {
	body, err := cubeBody(cube)
	if err != nil {
		return fmt.Errorf("failed to encode cube %s: %w", cube.Name, err)
	}

	log.Info(ctx, "creating cube", log.Data{"cube": cube.Name, "dimensions": cube.Dimensions})
	return c.post(ctx, "Cubes", body)
}

// DeleteCube deletes the cube with the provided name
func (c *Client) DeleteCube(ctx context.Context, name string) error {
	log.Info(ctx, "deleting cube", log.Data{"cube": name})
	return c.delete(ctx, "Cubes"+key(name))
}

// CubeNames lists the names of all cubes, including control cubes
func (c *Client) CubeNames(ctx context.Context) ([]string, error) {
	return c.names(ctx, "Cubes")
}

// Cubes lists all cubes with their ordered dimension names
func (c *Client) Cubes(ctx context.Context) ([]models.Cube, error) {
	var list struct {
		Value []struct {
			Name       string `json:"Name"`
			Dimensions []struct {
				Name string `json:"Name"`
			} `json:"Dimensions"`
		} `json:"value"`
	}
	query := url.Values{
		"$select": []string{"Name"},
		"$expand": []string{"Dimensions($select=Name)"},
	}
	if err := c.getJSON(ctx, "Cubes", query, &list); err != nil {
		return nil, err
	}

	cubes := make([]models.Cube, 0, len(list.Value))
	for _, v := range list.Value {
		cube := models.Cube{Name: v.Name, Dimensions: make([]string, 0, len(v.Dimensions))}
		for _, d := range v.Dimensions {
			cube.Dimensions = append(cube.Dimensions, d.Name)
		}
		cubes = append(cubes, cube)
	}
	return cubes, nil
}

// Views returns the private and public views of a cube
func (c *Client) Views(ctx context.Context, cube string) (private, public []models.View, err error) {
	privateNames, err := c.names(ctx, viewsPath(cube, true))
	if err != nil {
		return nil, nil, err
	}
	publicNames, err := c.names(ctx, viewsPath(cube, false))
	if err != nil {
		return nil, nil, err
	}

	for _, name := range privateNames {
		private = append(private, models.View{Cube: cube, Name: name, Private: true})
	}
	for _, name := range publicNames {
		public = append(public, models.View{Cube: cube, Name: name})
	}
	return private, public, nil
}

// DeleteView deletes a private or public view of a cube
func (c *Client) DeleteView(ctx context.Context, cube, name string, private bool) error {
	log.Info(ctx, "deleting view", log.Data{"cube": cube, "view": name, "private": private})
	return c.delete(ctx, viewsPath(cube, private)+key(name))
}

func viewsPath(cube string, private bool) string {
	collection := "Views"
	if private {
		collection = "PrivateViews"
	}
	return "Cubes" + key(cube) + "/" + collection
}
