package model

// Properties is the host-side property overlay of a graph element: a
// mapping from string key to Value. After element creation the overlay is
// authoritative for reads and writes; it is not pushed back to the native
// side.
type Properties map[string]Value

// NewProperties creates an empty property overlay
func NewProperties() Properties {
	return make(Properties)
}

// Get retrieves a property value by key
func (p Properties) Get(key string) (Value, bool) {
	value, exists := p[key]
	return value, exists
}

// GetOr retrieves a property value by key, returning def when absent
func (p Properties) GetOr(key string, def Value) Value {
	if value, exists := p[key]; exists {
		return value
	}
	return def
}

// Set adds or updates a property
func (p Properties) Set(key string, value Value) {
	p[key] = value
}

// Remove deletes a property and returns the previous value, if any
func (p Properties) Remove(key string) (Value, bool) {
	value, exists := p[key]
	if exists {
		delete(p, key)
	}
	return value, exists
}

// Clone returns a shallow copy of the overlay
func (p Properties) Clone() Properties {
	out := make(Properties, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Matches reports whether every filter key is present with an exactly
// equal value. An empty filter set matches everything.
func (p Properties) Matches(filters Properties) bool {
	for key, want := range filters {
		got, exists := p[key]
		if !exists || !got.Equal(want) {
			return false
		}
	}
	return true
}

// Native returns the overlay as the string-keyed, string-valued form that
// crosses the native boundary at creation time
func (p Properties) Native() map[string]string {
	if len(p) == 0 {
		return nil
	}
	out := make(map[string]string, len(p))
	for k, v := range p {
		out[k] = v.Native()
	}
	return out
}
