// Package config validates the mining run's configuration tuple (spec §3)
// and the dataset-shaping parameters it is loaded alongside.
package config

import (
	"github.com/pkg/errors"
)

// DatasetType selects one of the four ingestion conventions from spec §6.
type DatasetType int

const (
	// Basket is type 1: each row is a transaction.
	Basket DatasetType = iota + 1
	// Detail is type 2: long-form (group_id, item) rows.
	Detail
	// Sparse is type 3: wide form, column name or absent-sentinel.
	Sparse
	// Nominal is type 4: wide form, column=value synthesis.
	Nominal
)

// Config is the Configuration tuple from spec §3 plus the dataset
// parameters needed to drive internal/loader.
type Config struct {
	MinSupport    float64
	MinConfidence float64
	MinLift       float64
	MaxLength     int
	MaxRules      int
	RedundancyMask int

	DatasetType    DatasetType
	Separator      string
	AbsentSentinel string
	Columns        []string
	GroupColumn    string
	ItemColumn     string
}

// ConfigError reports which threshold failed validation.
type ConfigError struct {
	Field string
	Value interface{}
}

func (e *ConfigError) Error() string {
	return errors.Errorf("invalid threshold: %s = %v", e.Field, e.Value).Error()
}

// Validate checks the Configuration invariants from spec §3/§7. It returns
// a *ConfigError for the first violated threshold, wrapped so callers can
// still use errors.As/errors.Cause.
func (c Config) Validate() error {
	switch {
	case c.MinSupport <= 0 || c.MinSupport > 1:
		return errors.WithStack(&ConfigError{"min_support", c.MinSupport})
	case c.MinConfidence <= 0 || c.MinConfidence > 1:
		return errors.WithStack(&ConfigError{"min_confidence", c.MinConfidence})
	case c.MinLift <= 0:
		return errors.WithStack(&ConfigError{"min_lift", c.MinLift})
	case c.MaxLength < 2:
		return errors.WithStack(&ConfigError{"max_length", c.MaxLength})
	case c.MaxRules < 1:
		return errors.WithStack(&ConfigError{"max_rules", c.MaxRules})
	case c.RedundancyMask < 0 || c.RedundancyMask > 7:
		return errors.WithStack(&ConfigError{"redundancy_mask", c.RedundancyMask})
	}
	return nil
}

// Default returns the teacher tool's historical defaults, updated to the
// six-parameter Configuration this engine accepts.
func Default() Config {
	return Config{
		MinSupport:     0.01,
		MinConfidence:  0.2,
		MinLift:        1.0,
		MaxLength:      4,
		MaxRules:       1000,
		RedundancyMask: 0,
		DatasetType:    Basket,
		Separator:      ",",
	}
}
