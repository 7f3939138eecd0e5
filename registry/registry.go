package registry

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"

	"column-bridge/internal/diagnostic"
	"column-bridge/internal/match"
	"column-bridge/schema"
	"column-bridge/udf"
)

// maxSuggestions caps how many close matches a lookup failure reports.
const maxSuggestions = 3

var (
	ErrEmptyName     = errors.New("vector function name cannot be empty")
	ErrDuplicateName = errors.New("vector function name already registered")
	ErrArityMismatch = errors.New("adapter arity does not match function arity")
)

// Registration is a catalog entry: the parsed function description, its erased
// adapter, and the schema descriptors resolved from the function signature.
type Registration struct {
	Name       string
	Func       udf.VectorFunc
	Adapter    udf.Adapter
	ArgTypes   []string
	ReturnType string
}

// Registry is the catalog of registered vector functions. Safe for concurrent
// use.
type Registry struct {
	mu     sync.RWMutex
	log    *zap.Logger
	byName map[string]Registration
	diags  diagnostic.Diagnostics
}

// New creates an empty registry. A nil logger disables logging.
func New(log *zap.Logger) *Registry {
	if log == nil {
		log = zap.NewNop()
	}

	return &Registry{
		log:    log,
		byName: make(map[string]Registration),
	}
}

// Register parses fn, resolves its argument and result descriptors, and stores
// it under name together with adapter. The adapter must have been built from
// the same function, so its arity must match the parsed one.
func (r *Registry) Register(name string, fn any, adapter udf.Adapter) error {
	if name == "" {
		return ErrEmptyName
	}

	vf, err := udf.Parse(fn)
	if err != nil {
		return fmt.Errorf("register %q: %w", name, err)
	}

	if adapter.Arity() != vf.Arity() {
		return fmt.Errorf("register %q: %w: adapter takes %d, function takes %d",
			name, ErrArityMismatch, adapter.Arity(), vf.Arity())
	}

	argTypes := make([]string, vf.Arity())
	for i, in := range vf.In {
		argTypes[i], err = schema.Resolve(in)
		if err != nil {
			return fmt.Errorf("register %q: parameter %d: %w", name, i, err)
		}
	}

	returnType, err := schema.Resolve(vf.Out)
	if err != nil {
		return fmt.Errorf("register %q: result: %w", name, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[name]; exists {
		return fmt.Errorf("register %q: %w", name, ErrDuplicateName)
	}

	r.warnConfusable(name)

	r.byName[name] = Registration{
		Name:       name,
		Func:       vf,
		Adapter:    adapter,
		ArgTypes:   argTypes,
		ReturnType: returnType,
	}

	r.log.Info("registered vector function",
		zap.String("name", name),
		zap.String("source", vf.PackageAlias+"."+vf.Name),
		zap.Int("arity", vf.Arity()),
		zap.String("returns", returnType))

	return nil
}

// Lookup returns the registration stored under name. An unknown name yields an
// UnknownFunctionError carrying close-match suggestions.
func (r *Registry) Lookup(name string) (Registration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reg, ok := r.byName[name]
	if !ok {
		return Registration{}, &UnknownFunctionError{
			Name:        name,
			Suggestions: match.Closest(name, r.namesLocked(), maxSuggestions),
		}
	}

	return reg, nil
}

// Names returns all registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.namesLocked()
}

// Diagnostics returns a copy of the warnings collected so far.
func (r *Registry) Diagnostics() diagnostic.Diagnostics {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out diagnostic.Diagnostics
	out.Merge(r.diags)

	return out
}

func (r *Registry) namesLocked() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// warnConfusable records a warning when name normalizes to the same identifier
// as an already registered one. Callers hold the write lock.
func (r *Registry) warnConfusable(name string) {
	norm := match.NormalizeIdent(name)
	for existing := range r.byName {
		if match.NormalizeIdent(existing) == norm {
			r.diags.AddWarning("confusable-name",
				fmt.Sprintf("name is easily confused with already registered %q", existing),
				name)
			r.log.Warn("confusable vector function name",
				zap.String("name", name),
				zap.String("existing", existing))
		}
	}
}

// UnknownFunctionError reports a lookup of an unregistered name.
type UnknownFunctionError struct {
	Name        string
	Suggestions []string
}

// Error implements the error interface.
func (e *UnknownFunctionError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("unknown vector function %q", e.Name)
	}

	quoted := make([]string, len(e.Suggestions))
	for i, s := range e.Suggestions {
		quoted[i] = strconv.Quote(s)
	}

	return fmt.Sprintf("unknown vector function %q, did you mean %s?", e.Name, strings.Join(quoted, " or "))
}
