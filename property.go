package willowui

import (
	"reflect"
)

// Kind identifies an element kind. Property declarations are owned by a kind,
// and lookups walk the base chain so derived kinds see their bases' properties.
type Kind struct {
	name string
	base *Kind
}

// NewKind declares an element kind. base may be nil for a root kind.
func NewKind(name string, base *Kind) *Kind {
	return &Kind{name: name, base: base}
}

// Name returns the kind's name.
func (k *Kind) Name() string {
	if k == nil {
		return ""
	}
	return k.name
}

// Base returns the kind this kind derives from, or nil.
func (k *Kind) Base() *Kind {
	return k.base
}

// Is reports whether k is other or derives from it.
func (k *Kind) Is(other *Kind) bool {
	for c := k; c != nil; c = c.base {
		if c == other {
			return true
		}
	}
	return false
}

// PropertyFlags describe how a property participates in layout and inheritance.
type PropertyFlags uint8

const (
	AffectsMeasure PropertyFlags = 1 << iota // change re-runs Measure up to the layout root
	AffectsArrange                           // change re-runs Arrange on the element
	AffectsRender                            // change only needs a redraw
	Inherits                                 // unset values resolve from the nearest ancestor
)

// Has reports whether all bits in flag are set.
func (f PropertyFlags) Has(flag PropertyFlags) bool {
	return f&flag == flag
}

// propertyMeta is the untyped half of a declaration. Its address is the key
// used by every element's value store.
type propertyMeta struct {
	id        uint32
	owner     *Kind
	name      string
	valueType reflect.Type
	flags     PropertyFlags
}

// ID returns the registry-assigned identifier.
func (m *propertyMeta) ID() uint32 { return m.id }

// Name returns the property name.
func (m *propertyMeta) Name() string { return m.name }

// Owner returns the kind that declared the property.
func (m *propertyMeta) Owner() *Kind { return m.owner }

// Flags returns the invalidation and inheritance flags.
func (m *propertyMeta) Flags() PropertyFlags { return m.flags }

// ValueType returns the Go type of the property's values.
func (m *propertyMeta) ValueType() reflect.Type { return m.valueType }

func (m *propertyMeta) meta() *propertyMeta { return m }

// Declaration is the untyped view of a registered property, returned by
// registry lookups.
type Declaration interface {
	ID() uint32
	Name() string
	Owner() *Kind
	Flags() PropertyFlags
	ValueType() reflect.Type
	DefaultValue() any
	meta() *propertyMeta
}

// Property is a typed property declaration. Declarations are immutable once
// registered and are used as opaque keys into each element's value store.
type Property[T comparable] struct {
	propertyMeta
	def     T
	coerce  func(e *Element, v T) T
	changed func(e *Element, oldValue, newValue T)
}

// Default returns the declared default value.
func (p *Property[T]) Default() T {
	return p.def
}

// DefaultValue returns the declared default value as an any.
func (p *Property[T]) DefaultValue() any {
	return p.def
}

// PropertyOption configures a declaration at registration time.
type PropertyOption[T comparable] func(*Property[T])

// WithCoerce installs a coercion rule applied to every value before it is
// stored. Coercion must be total: invalid input is normalized, never rejected.
func WithCoerce[T comparable](fn func(e *Element, v T) T) PropertyOption[T] {
	return func(p *Property[T]) { p.coerce = fn }
}

// WithChanged installs a callback invoked after the effective value changes
// on an element, including changes that arrive through inheritance.
func WithChanged[T comparable](fn func(e *Element, oldValue, newValue T)) PropertyOption[T] {
	return func(p *Property[T]) { p.changed = fn }
}

type registryKey struct {
	kind *Kind
	name string
}

// Registry is an append-only table of property declarations keyed by
// (kind, name). Build it at startup, then Seal it; a sealed registry is safe
// for concurrent reads.
type Registry struct {
	decls  map[registryKey]Declaration
	order  []Declaration
	nextID uint32
	sealed bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{decls: make(map[registryKey]Declaration)}
}

// RegisterOn declares a property on r. Registering the same (kind, name) twice
// returns a *DuplicateDeclarationError; registering on a sealed registry
// returns ErrRegistrySealed.
func RegisterOn[T comparable](r *Registry, kind *Kind, name string, def T, flags PropertyFlags, opts ...PropertyOption[T]) (*Property[T], error) {
	if r.sealed {
		return nil, ErrRegistrySealed
	}
	key := registryKey{kind, name}
	if _, ok := r.decls[key]; ok {
		return nil, &DuplicateDeclarationError{Kind: kind.Name(), Name: name}
	}
	r.nextID++
	p := &Property[T]{
		propertyMeta: propertyMeta{
			id:        r.nextID,
			owner:     kind,
			name:      name,
			valueType: reflect.TypeFor[T](),
			flags:     flags,
		},
		def: def,
	}
	for _, opt := range opts {
		opt(p)
	}
	r.decls[key] = p
	r.order = append(r.order, p)
	return p, nil
}

// Lookup finds the declaration named name visible from kind, walking base
// kinds until a match is found.
func (r *Registry) Lookup(kind *Kind, name string) (Declaration, bool) {
	for k := kind; k != nil; k = k.base {
		if d, ok := r.decls[registryKey{k, name}]; ok {
			return d, true
		}
	}
	return nil, false
}

// Declarations returns every declaration in registration order.
// The returned slice MUST NOT be mutated.
func (r *Registry) Declarations() []Declaration {
	return r.order
}

// Seal stops further registration.
func (r *Registry) Seal() {
	r.sealed = true
}

// Sealed reports whether Seal has been called.
func (r *Registry) Sealed() bool {
	return r.sealed
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry holding the built-in
// element properties.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Register declares a property on the default registry.
func Register[T comparable](kind *Kind, name string, def T, flags PropertyFlags, opts ...PropertyOption[T]) (*Property[T], error) {
	return RegisterOn(defaultRegistry, kind, name, def, flags, opts...)
}

// MustRegister is like Register but panics on error. Intended for
// package-level declarations.
func MustRegister[T comparable](kind *Kind, name string, def T, flags PropertyFlags, opts ...PropertyOption[T]) *Property[T] {
	p, err := Register(kind, name, def, flags, opts...)
	if err != nil {
		panic(err)
	}
	return p
}
