package gen

var (
	// FeatureTimestamps adds the created_at and updated_at columns to
	// migrations and marks models as timestamped.
	FeatureTimestamps = Feature{
		Name:        "model/timestamps",
		Stage:       Stable,
		Default:     true,
		Description: "Adds timestamp columns to migrations and enables model timestamps",
	}

	// FeatureSoftDeletes adds the deleted_at column to migrations and the
	// SoftDeletes trait to models.
	FeatureSoftDeletes = Feature{
		Name:        "model/softdeletes",
		Stage:       Stable,
		Default:     false,
		Description: "Adds a soft delete column to migrations and the SoftDeletes trait to models",
	}

	// FeatureAutoRoutes registers routes whenever a controller is written.
	FeatureAutoRoutes = Feature{
		Name:        "routes/auto",
		Stage:       Stable,
		Default:     true,
		Description: "Registers resource routes after a controller is generated",
	}

	// FeatureViewLayout creates the shared view layout when it is missing.
	FeatureViewLayout = Feature{
		Name:        "views/layout",
		Stage:       Beta,
		Default:     true,
		Description: "Creates the shared layout view when views are generated and none exists",
	}

	// AllFeatures holds a list of all feature-flags.
	AllFeatures = []Feature{
		FeatureTimestamps,
		FeatureSoftDeletes,
		FeatureAutoRoutes,
		FeatureViewLayout,
	}
)

// FeatureStage describes the stage of a generator feature.
type FeatureStage int

const (
	_ FeatureStage = iota

	// Experimental features are in development and may change or go away.
	Experimental

	// Alpha features are complete but their output may still change.
	Alpha

	// Beta features are documented and their output is not expected to
	// change.
	Beta

	// Stable features are Beta features that have been in use for a while.
	Stable
)

var stageNames = [...]string{
	Experimental: "experimental",
	Alpha:        "alpha",
	Beta:         "beta",
	Stable:       "stable",
}

// String returns the stage name.
func (s FeatureStage) String() string {
	if s > 0 && int(s) < len(stageNames) {
		return stageNames[s]
	}
	return "unknown"
}

// A Feature of the generator.
type Feature struct {
	// Name of the feature.
	Name string

	// Stage of the feature.
	Stage FeatureStage

	// Default values indicates if this feature is enabled by default.
	Default bool

	// A Description of this feature.
	Description string
}

// FeatureByName returns the feature with the given name.
func FeatureByName(name string) (Feature, bool) {
	for _, f := range AllFeatures {
		if f.Name == name {
			return f, true
		}
	}
	return Feature{}, false
}
