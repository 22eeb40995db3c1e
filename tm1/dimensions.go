package tm1

import (
	"context"
	"fmt"
	"strconv"

	"github.com/ONSdigital/dp-tm1-tools/models"
	"github.com/ONSdigital/log.go/v2/log"
)

// DimensionExists checks whether a dimension with the provided name exists
func (c *Client) DimensionExists(ctx context.Context, name string) (bool, error) {
	return c.exists(ctx, "Dimensions"+key(name))
}

// CreateDimension creates a dimension with its hierarchies and elements
func (c *Client) CreateDimension(ctx context.Context, d models.Dimension) error {
	body, err := dimensionBody(d)
	if err != nil {
		return fmt.Errorf("failed to encode dimension %s: %w", d.Name, err)
	}

	log.Info(ctx, "creating dimension", log.Data{"dimension": d.Name, "body_size": len(body)})
	return c.post(ctx, "Dimensions", body)
}

// DeleteDimension deletes the dimension with the provided name
func (c *Client) DeleteDimension(ctx context.Context, name string) error {
	log.Info(ctx, "deleting dimension", log.Data{"dimension": name})
	return c.delete(ctx, "Dimensions"+key(name))
}

// DimensionNames lists the names of all dimensions, including control dimensions
func (c *Client) DimensionNames(ctx context.Context) ([]string, error) {
	return c.names(ctx, "Dimensions")
}

// ElementCount returns the number of elements in a hierarchy
func (c *Client) ElementCount(ctx context.Context, dimension, hierarchy string) (int, error) {
	text, err := c.getText(ctx, "Dimensions"+key(dimension)+"/Hierarchies"+key(hierarchy)+"/Elements/$count")
	if err != nil {
		return 0, err
	}

	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, NewError(
			fmt.Errorf("invalid element count for hierarchy %s of dimension %s: %w", hierarchy, dimension, err),
			0,
			log.Data{"dimension": dimension, "hierarchy": hierarchy, "count": text},
		)
	}
	return n, nil
}

// SubsetNames lists the private or public subsets of a hierarchy
func (c *Client) SubsetNames(ctx context.Context, dimension, hierarchy string, private bool) ([]string, error) {
	return c.names(ctx, subsetsPath(dimension, hierarchy, private))
}

// DeleteSubset deletes a private or public subset of a hierarchy
func (c *Client) DeleteSubset(ctx context.Context, dimension, hierarchy, name string, private bool) error {
	log.Info(ctx, "deleting subset", log.Data{
		"dimension": dimension,
		"hierarchy": hierarchy,
		"subset":    name,
		"private":   private,
	})
	return c.delete(ctx, subsetsPath(dimension, hierarchy, private)+key(name))
}

func subsetsPath(dimension, hierarchy string, private bool) string {
	collection := "Subsets"
	if private {
		collection = "PrivateSubsets"
	}
	return "Dimensions" + key(dimension) + "/Hierarchies" + key(hierarchy) + "/" + collection
}
