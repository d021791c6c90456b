package features

// Styles maps the section's module-scoped class names.
type Styles struct {
	Features   string
	FeatureSvg string
}

// DefaultStyles matches css/features.css.
func DefaultStyles() Styles {
	return Styles{
		Features:   "features",
		FeatureSvg: "featureSvg",
	}
}
