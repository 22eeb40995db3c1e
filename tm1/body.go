package tm1

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/ONSdigital/dp-tm1-tools/models"
)

// dimensionBody encodes the create request for a dimension. Elements are
// written as the hierarchy sequence is walked.
func dimensionBody(d models.Dimension) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(`{"Name":`)
	if err := writeJSON(&buf, d.Name); err != nil {
		return nil, err
	}
	buf.WriteString(`,"Hierarchies":[`)
	for i, h := range d.Hierarchies {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(`{"Name":`)
		if err := writeJSON(&buf, h.Name); err != nil {
			return nil, err
		}
		buf.WriteString(`,"Elements":[`)
		first := true
		if h.Elements != nil {
			for e := range h.Elements {
				if !first {
					buf.WriteByte(',')
				}
				first = false
				if err := writeJSON(&buf, e); err != nil {
					return nil, err
				}
			}
		}
		buf.WriteString(`],"Edges":[]}`)
	}
	buf.WriteString(`]}`)

	return buf.Bytes(), nil
}

// cubeBody encodes the create request for a cube, binding its dimensions by name
func cubeBody(c models.Cube) ([]byte, error) {
	binds := make([]string, 0, len(c.Dimensions))
	for _, d := range c.Dimensions {
		binds = append(binds, "Dimensions('"+strings.ReplaceAll(d, "'", "''")+"')")
	}

	return json.Marshal(struct {
		Name       string   `json:"Name"`
		Dimensions []string `json:"Dimensions@odata.bind"`
	}{
		Name:       c.Name,
		Dimensions: binds,
	})
}

func writeJSON(buf *bytes.Buffer, v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	buf.Write(b)
	return nil
}
