package shortcut

import "fmt"

// Registry collects the shortcut records declared for one build invocation,
// keyed by script name. It is created per invocation and discarded with it;
// there is no process-global state.
type Registry struct {
	records map[string]*Shortcut
	order   []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{records: make(map[string]*Shortcut)}
}

// Add registers a record under its script name. Declaring two records for
// the same script is an error.
func (r *Registry) Add(rec *Shortcut) error {
	if rec.Script == "" {
		return fmt.Errorf("shortcut %q: script name is required", rec.Name)
	}
	if _, exists := r.records[rec.Script]; exists {
		return fmt.Errorf("duplicate shortcut declaration for script %q", rec.Script)
	}
	r.records[rec.Script] = rec
	r.order = append(r.order, rec.Script)
	return nil
}

// Lookup returns the record declared for script, if any.
func (r *Registry) Lookup(script string) (*Shortcut, bool) {
	rec, ok := r.records[script]
	return rec, ok
}

// Len returns the number of declared records.
func (r *Registry) Len() int {
	return len(r.records)
}

// Scripts returns the registered script names in declaration order.
func (r *Registry) Scripts() []string {
	return append([]string(nil), r.order...)
}

// NameCollisions returns the display names shared by more than one record.
// Distinct scripts with the same display name would produce descriptor files
// that shadow each other on the desktop, so callers warn about them.
func (r *Registry) NameCollisions() []string {
	seen := make(map[string]int)
	for _, script := range r.order {
		if name := r.records[script].Name; name != "" {
			seen[name]++
		}
	}
	var collisions []string
	for _, script := range r.order {
		name := r.records[script].Name
		if seen[name] > 1 {
			collisions = append(collisions, name)
			seen[name] = 0 // report once
		}
	}
	return collisions
}
