package model

// Params is a hyperparameter record: one value per tuning parameter.
// Values are the scalar kinds a tune grid carries (numbers, strings,
// bools).
type Params map[string]interface{}

// Matches reports whether p agrees with key on every parameter key
// that key holds. This is the equality join used to select best-tune
// rows: a prediction row matches when all of the selected tune's
// parameters are present with equal values.
func (p Params) Matches(key Params) bool {
	for k, want := range key {
		got, ok := p[k]
		if !ok || !valueEqual(got, want) {
			return false
		}
	}
	return true
}

// valueEqual compares two scalar parameter values, normalizing integer
// kinds to float64 so that a tune recorded as int matches one recorded
// as float.
func valueEqual(a, b interface{}) bool {
	if af, ok := asFloat(a); ok {
		bf, ok := asFloat(b)
		return ok && af == bf
	}
	return a == b
}

func asFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
