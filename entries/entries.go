// Package entries reads the list of hall of shame entries.
//
// The list is a JSON array of integers. A null or 0 element reserves a
// cell without a label.
package entries

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	render "github.com/cfpwastaken/wplace-hallofshame"
)

// Read decodes an entry list from r.
func Read(r io.Reader) ([]render.Label, error) {
	var values []*int
	if err := json.NewDecoder(r).Decode(&values); err != nil {
		return nil, fmt.Errorf("decode entries: %w", err)
	}

	labels := make([]render.Label, len(values))
	for i, v := range values {
		if v != nil {
			labels[i] = render.LabelOf(*v)
		}
	}
	return labels, nil
}

// ReadFile reads the entry list stored at path.
func ReadFile(path string) ([]render.Label, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	labels, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return labels, nil
}
