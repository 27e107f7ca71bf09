package model

// Capability describes what a training method can produce, as declared
// by the training library's method metadata.
type Capability struct {
	// Label is the human-readable method name.
	Label string
	// ProbModel reports whether the method can emit class probabilities.
	ProbModel bool
}

// CapabilityResolver looks up the declared capabilities of a training
// method by its identifier.
type CapabilityResolver interface {
	Lookup(method string) (Capability, bool)
}

// Registry is a map-backed CapabilityResolver.
type Registry struct {
	entries map[string]Capability
}

// NewRegistry returns an empty capability registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Capability)}
}

// Register adds or replaces the capability record for a method.
func (r *Registry) Register(method string, c Capability) {
	r.entries[method] = c
}

// Lookup returns the capability record for a method.
func (r *Registry) Lookup(method string) (Capability, bool) {
	c, ok := r.entries[method]
	return c, ok
}

// DefaultRegistry returns a registry preloaded with the common training
// methods and their probability support.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("rf", Capability{Label: "Random Forest", ProbModel: true})
	r.Register("glm", Capability{Label: "Generalized Linear Model", ProbModel: true})
	r.Register("glmnet", Capability{Label: "Elastic Net", ProbModel: true})
	r.Register("gbm", Capability{Label: "Stochastic Gradient Boosting", ProbModel: true})
	r.Register("treebag", Capability{Label: "Bagged CART", ProbModel: true})
	r.Register("rpart", Capability{Label: "CART", ProbModel: true})
	r.Register("knn", Capability{Label: "k-Nearest Neighbors", ProbModel: true})
	r.Register("nnet", Capability{Label: "Neural Network", ProbModel: true})
	r.Register("svmRadial", Capability{Label: "Support Vector Machine", ProbModel: true})
	r.Register("xgbTree", Capability{Label: "Extreme Gradient Boosting", ProbModel: true})
	r.Register("lm", Capability{Label: "Linear Regression", ProbModel: false})
	r.Register("svmLinear2", Capability{Label: "Support Vector Machine (Linear)", ProbModel: false})
	return r
}
