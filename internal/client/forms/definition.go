package forms

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/iudanet/formsync/internal/models"
	"github.com/iudanet/formsync/internal/validation"
)

// Definition описание формы в файле (.json, .yaml, .yml)
type Definition struct {
	ID     string           `json:"id" yaml:"id"`
	Name   string           `json:"name" yaml:"name"`
	Store  string           `json:"store,omitempty" yaml:"store,omitempty"`
	Fields models.FieldList `json:"fields" yaml:"fields"`
}

// LoadDefinition читает и проверяет описание формы
func LoadDefinition(path string) (*Definition, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read form definition: %w", err)
	}

	def, err := ParseDefinition(raw, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("form definition %s: %w", path, err)
	}
	return def, nil
}

// ParseDefinition decodes raw by extension; anything but .json is read as YAML.
func ParseDefinition(raw []byte, ext string) (*Definition, error) {
	var def Definition

	switch strings.ToLower(ext) {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&def); err != nil {
			return nil, fmt.Errorf("invalid json: %w", err)
		}
	default:
		dec := yaml.NewDecoder(bytes.NewReader(raw))
		dec.KnownFields(true)
		if err := dec.Decode(&def); err != nil {
			return nil, fmt.Errorf("invalid yaml: %w", err)
		}
	}

	if err := def.Validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

// Validate проверяет идентификатор, ссылку на хранилище и список полей
func (d *Definition) Validate() error {
	if err := validation.ValidateFormID(d.ID); err != nil {
		return err
	}
	if d.Store != "" {
		if _, err := models.ParseStoreReference(d.Store); err != nil {
			return err
		}
	}
	return d.Fields.Validate()
}
