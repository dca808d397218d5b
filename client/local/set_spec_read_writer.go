package local

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/goto/chrono/client/local/model"
	"github.com/goto/chrono/internal/errors"
)

const EntitySetSpec = "set_spec"

// ReadSetSpec loads and validates an interval set document.
func ReadSetSpec(filePath string) (model.SetSpec, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return model.SetSpec{}, errors.Wrap(EntitySetSpec, "unable to read "+filePath, err)
	}

	var spec model.SetSpec
	if err := yaml.Unmarshal(content, &spec); err != nil {
		return model.SetSpec{}, errors.Wrap(EntitySetSpec, "unable to parse "+filePath, err)
	}
	if err := spec.Validate(); err != nil {
		return model.SetSpec{}, errors.Wrap(EntitySetSpec, "invalid set spec "+filePath, err)
	}

	spec.Path = filePath
	return spec, nil
}

// WriteSetSpec renders a set document next to the inputs it came from.
func WriteSetSpec(spec model.SetSpec, filePath string) error {
	content, err := yaml.Marshal(spec)
	if err != nil {
		return errors.Wrap(EntitySetSpec, "unable to marshal set spec", err)
	}
	if err := os.WriteFile(filePath, content, 0o644); err != nil {
		return errors.Wrap(EntitySetSpec, "unable to write "+filePath, err)
	}
	return nil
}
