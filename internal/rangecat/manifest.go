package rangecat

import (
	"errors"
	"fmt"
	"io"

	"go.llib.dev/frameless/pkg/errorkit"
	"gopkg.in/yaml.v3"
)

const ErrInvalidManifest errorkit.Error = "ErrInvalidManifest"

// Manifest lists the sources of a run.
//
//	sources:
//	  - kind: file
//	    path: access.log
//	  - kind: bolt
//	    path: data.db
//	    bucket: events
//	  - kind: inline
//	    values: [a, b]
type Manifest struct {
	Sources []Source `yaml:"sources"`
}

func ReadManifest(r io.Reader) (Manifest, error) {
	var m Manifest
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return Manifest{}, nil
		}
		return Manifest{}, ErrInvalidManifest.Wrap(err)
	}
	for i, src := range m.Sources {
		if err := src.Validate(); err != nil {
			return Manifest{}, ErrInvalidManifest.Wrap(fmt.Errorf("source #%d: %w", i+1, err))
		}
	}
	return m, nil
}
