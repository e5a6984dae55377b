package plugin

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

var (
	// Returned when enabling a plugin that was never loaded.
	ErrNotLoaded = errors.New("plugin is not loaded")
	// Returned when loading a plugin whose name is already taken.
	ErrNameTaken = errors.New("a plugin with this name is already loaded")
)

// PluginEnableEvent is fired after a plugin's OnEnable hook returned.
type PluginEnableEvent struct{ Plugin Plugin }

// PluginDisableEvent is fired after a plugin's OnDisable hook returned.
// The server uses it to detach the plugin's permission attachments from
// all live subjects.
type PluginDisableEvent struct{ Plugin Plugin }

// Loader governs the lifecycle of a set of plugins.
// It is the only writer of plugin lifecycle transitions.
type Loader struct {
	server Server

	mu      sync.Mutex
	plugins []Plugin          // in load order
	byName  map[string]Plugin // lower case names
}

// NewLoader returns a new Loader backed by the given server.
func NewLoader(server Server) (*Loader, error) {
	if server == nil {
		return nil, errors.New("loader requires a server")
	}
	return &Loader{
		server: server,
		byName: map[string]Plugin{},
	}, nil
}

// Load initializes the plugin and fires its OnLoad hook.
// Loading an already loaded plugin is a no-op.
// The plugin's declared permissions are registered with the server's
// permission registry; names already registered are skipped.
func (l *Loader) Load(p Plugin) error {
	if p == nil {
		return errors.New("plugin must not be nil")
	}
	b := p.base()
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.State() != StateUnloaded {
		return nil
	}

	desc := p.Description()
	if desc.Name == "" {
		return errors.New("plugin description must have a name")
	}

	l.mu.Lock()
	if _, ok := l.byName[strings.ToLower(desc.Name)]; ok {
		l.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrNameTaken, desc.Name)
	}
	l.plugins = append(l.plugins, p)
	l.byName[strings.ToLower(desc.Name)] = p
	l.mu.Unlock()

	b.name = desc.Name
	b.loader = l
	b.server = l.server
	b.log = l.server.Logger().WithName(desc.Name)

	for _, perm := range desc.Permissions {
		if err := l.server.Permissions().Register(perm); err != nil {
			b.log.Info("Skipping declared permission", "permission", perm.Name(), "reason", err)
		}
	}

	b.setState(StateLoaded)
	p.OnLoad()
	return nil
}

// LoadAll loads the given plugins in order,
// stopping at the first failing plugin.
func (l *Loader) LoadAll(plugins ...Plugin) error {
	for _, p := range plugins {
		if err := l.Load(p); err != nil {
			return fmt.Errorf("error loading plugin %q: %w", name(p), err)
		}
	}
	return nil
}

// Enable enables the plugin, firing its OnEnable hook.
// Enabling an enabled plugin is a no-op; the hook never fires twice
// for one transition. Enabling an unloaded plugin is an error: OnLoad
// of every plugin must precede any OnEnable.
func (l *Loader) Enable(p Plugin) error {
	if p == nil {
		return errors.New("plugin must not be nil")
	}
	b := p.base()
	b.mu.Lock()
	if b.State() == StateUnloaded {
		b.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrNotLoaded, name(p))
	}
	if b.State() == StateEnabled {
		b.mu.Unlock()
		return nil
	}
	b.log.Info("Enabling plugin", "version", p.Description().Version)
	b.setState(StateEnabled)
	b.enabled.Store(true)
	p.OnEnable()
	b.mu.Unlock()

	l.server.Events().Fire(&PluginEnableEvent{Plugin: p})
	return nil
}

// Disable disables the plugin, firing its OnDisable hook.
// Disabling a plugin that is not enabled is a no-op.
func (l *Loader) Disable(p Plugin) error {
	if p == nil {
		return errors.New("plugin must not be nil")
	}
	b := p.base()
	b.mu.Lock()
	if b.State() != StateEnabled {
		b.mu.Unlock()
		return nil
	}
	b.log.Info("Disabling plugin")
	b.setState(StateDisabled)
	b.enabled.Store(false)
	p.OnDisable()
	b.mu.Unlock()

	l.server.Events().Fire(&PluginDisableEvent{Plugin: p})
	return nil
}

// EnableAll enables all loaded plugins in load order. Call it only
// after every plugin is loaded; together with LoadAll this forms the
// two-phase load/enable barrier.
func (l *Loader) EnableAll() error {
	for _, p := range l.Plugins() {
		if err := l.Enable(p); err != nil {
			return err
		}
	}
	return nil
}

// DisableAll disables all plugins in reverse load order.
func (l *Loader) DisableAll() {
	plugins := l.Plugins()
	for i := len(plugins) - 1; i >= 0; i-- {
		_ = l.Disable(plugins[i])
	}
}

// Plugin returns the loaded plugin with the given
// case-insensitive name, or nil.
func (l *Loader) Plugin(name string) Plugin {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.byName[strings.ToLower(name)]
}

// Plugins returns all loaded plugins in load order.
func (l *Loader) Plugins() []Plugin {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Plugin(nil), l.plugins...)
}

func name(p Plugin) string {
	if p == nil {
		return ""
	}
	if n := p.base().Name(); n != "" {
		return n
	}
	return p.Description().Name
}
