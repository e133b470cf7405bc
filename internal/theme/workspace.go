package theme

import (
	"fmt"
	"sync"

	"github.com/alexisbeaulieu97/toastlab/internal/domain/toast"
	tlerrors "github.com/alexisbeaulieu97/toastlab/pkg/errors"
)

// Policy decides what happens to a theme's edits when it is selected again.
type Policy string

const (
	// PolicyPersist keeps edits for the life of the session.
	PolicyPersist Policy = "persist"
	// PolicyReset discards edits whenever the theme is reselected.
	PolicyReset Policy = "reset"
)

// ParsePolicy accepts "persist", "reset" or "" (persist).
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case "", PolicyPersist:
		return PolicyPersist, nil
	case PolicyReset:
		return PolicyReset, nil
	}
	return "", fmt.Errorf("unknown theme policy %q (want %q or %q)", s, PolicyPersist, PolicyReset)
}

// Workspace layers session edits over an immutable catalog. A theme is cloned
// the first time its stylesheet is edited; the catalog itself never changes.
type Workspace struct {
	mu      sync.Mutex
	catalog *Catalog
	policy  Policy
	edits   map[string]string
}

// NewWorkspace creates a workspace over catalog.
func NewWorkspace(catalog *Catalog, policy Policy) *Workspace {
	if policy == "" {
		policy = PolicyPersist
	}
	return &Workspace{
		catalog: catalog,
		policy:  policy,
		edits:   make(map[string]string),
	}
}

// Catalog returns the underlying catalog.
func (w *Workspace) Catalog() *Catalog {
	return w.catalog
}

// Policy returns the reselect policy.
func (w *Workspace) Policy() Policy {
	return w.policy
}

// Select returns the working copy of the theme with id, applying the policy.
func (w *Workspace) Select(id string) (toast.Theme, error) {
	theme, ok := w.catalog.Get(id)
	if !ok {
		return toast.Theme{}, tlerrors.NewThemeError(id, "unknown theme", nil)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.policy == PolicyReset {
		delete(w.edits, id)
		return theme, nil
	}
	if css, edited := w.edits[id]; edited {
		theme.CustomCSS = css
	}
	return theme, nil
}

// Update records an edited stylesheet for theme id.
func (w *Workspace) Update(id, css string) error {
	if _, ok := w.catalog.Get(id); !ok {
		return tlerrors.NewThemeError(id, "unknown theme", nil)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.edits[id] = css
	return nil
}

// Pristine returns the catalog version of theme id, ignoring session edits.
func (w *Workspace) Pristine(id string) (toast.Theme, bool) {
	return w.catalog.Get(id)
}

// Edited reports whether theme id has session edits.
func (w *Workspace) Edited(id string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.edits[id]
	return ok
}

// Discard drops the session edits of theme id.
func (w *Workspace) Discard(id string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.edits, id)
}
