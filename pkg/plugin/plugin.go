// Package plugin models extension plugins and their lifecycle.
//
// A plugin object moves through Unloaded → Loaded → Enabled ⇄ Disabled,
// with the lifecycle hooks firing at most once per transition. All
// transitions go through the Loader; plugin and command code never flip
// the enabled state themselves.
//
// Implementations embed Base and override the hooks they care about:
//
//	type Greeter struct{ plugin.Base }
//
//	func (g *Greeter) Description() plugin.Description {
//		return plugin.Description{Name: "Greeter", Version: "1.0.0"}
//	}
//	func (g *Greeter) OnEnable() { g.Logger().Info("Hello!") }
package plugin

import (
	"sync"

	"github.com/go-logr/logr"
	"github.com/robinbraemer/event"
	uatomic "go.uber.org/atomic"

	"go.minekube.com/stone/pkg/command"
	"go.minekube.com/stone/pkg/permission"
)

// Server is the view of the running server a plugin gets.
type Server interface {
	// Logger returns the server's logger.
	Logger() logr.Logger
	// Events returns the server's event manager.
	Events() event.Manager
	// Commands returns the server's command manager.
	Commands() *command.Manager
	// Permissions returns the server's permission registry.
	Permissions() permission.Registrar
}

// Plugin is an extension module. Implementations must embed Base.
type Plugin interface {
	// Description returns the immutable description of the plugin.
	Description() Description

	// OnLoad is called after the plugin is loaded but before it is
	// enabled. When multiple plugins are loaded, OnLoad of all plugins
	// is called before any OnEnable is called.
	OnLoad()
	// OnEnable is called when the plugin is enabled.
	OnEnable()
	// OnDisable is called when the plugin is disabled.
	OnDisable()

	base() *Base
}

// State is the lifecycle state of a plugin.
type State uint8

const (
	StateUnloaded State = iota
	StateLoaded
	StateEnabled
	StateDisabled
)

func (s State) String() string {
	switch s {
	case StateLoaded:
		return "loaded"
	case StateEnabled:
		return "enabled"
	case StateDisabled:
		return "disabled"
	}
	return "unloaded"
}

// Base carries the lifecycle state and server wiring of a plugin.
// The zero value is an unloaded plugin; the Loader initializes the
// rest on load.
type Base struct {
	mu      sync.Mutex    // Serializes lifecycle transitions.
	state   uatomic.Int32 // Holds a State, readable from inside hooks.
	enabled uatomic.Bool

	name   string
	loader *Loader
	server Server
	log    logr.Logger
}

var (
	_ permission.Owner = (*Base)(nil)
	_ command.Plugin   = (*Base)(nil)
)

// Name returns the plugin's name, or "" before the plugin is loaded.
func (b *Base) Name() string { return b.name }

// Enabled returns whether the plugin is currently enabled.
func (b *Base) Enabled() bool { return b.enabled.Load() }

// State returns the current lifecycle state. It never blocks, so
// lifecycle hooks may safely read their own plugin's state.
func (b *Base) State() State { return State(b.state.Load()) }

func (b *Base) setState(s State) { b.state.Store(int32(s)) }

// Logger returns the plugin's logger, tagged with the plugin's name.
func (b *Base) Logger() logr.Logger { return b.log }

// Server returns the server running this plugin.
func (b *Base) Server() Server { return b.server }

// Loader returns the loader responsible for this plugin.
func (b *Base) Loader() *Loader { return b.loader }

// RegisterCommand registers a new command owned by this plugin.
func (b *Base) RegisterCommand(def command.Definition) (*command.PluginCommand, error) {
	if b.server == nil {
		return nil, ErrNotLoaded
	}
	return b.server.Commands().RegisterPlugin(b, def)
}

// Command returns the plugin command registered under the given
// case-insensitive name, or nil.
func (b *Base) Command(name string) *command.PluginCommand {
	if b.server == nil {
		return nil
	}
	return b.server.Commands().PluginCommand(name)
}

// Default no-op lifecycle hooks, overridden by implementations.
func (b *Base) OnLoad()    {}
func (b *Base) OnEnable()  {}
func (b *Base) OnDisable() {}

func (b *Base) base() *Base { return b }
