package quote

// Overridable holds a catalog-derived base value plus an optional
// user-supplied override. The override shadows the base for the
// lifetime of the quoting session without touching the catalog.
type Overridable[T any] struct {
	Base     T  `json:"base"`
	Override *T `json:"override,omitempty"`
}

// NewOverridable wraps a base value with no override set.
func NewOverridable[T any](base T) Overridable[T] {
	return Overridable[T]{Base: base}
}

// Effective returns the override when set, otherwise the base value.
func (o Overridable[T]) Effective() T {
	if o.Override != nil {
		return *o.Override
	}
	return o.Base
}

// Set installs an override.
func (o *Overridable[T]) Set(v T) {
	o.Override = &v
}

// Clear removes the override, restoring the base value.
func (o *Overridable[T]) Clear() {
	o.Override = nil
}

// IsOverridden reports whether an override is in effect.
func (o Overridable[T]) IsOverridden() bool {
	return o.Override != nil
}
