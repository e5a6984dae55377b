package command

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.minekube.com/brigodier"
)

// Plugin is the minimal view of the plugin owning a command.
type Plugin interface {
	Name() string
	Enabled() bool
}

// Definition declares a plugin command.
type Definition struct {
	Name        string   // Primary name, case-insensitive.
	Description string   // Optional human description.
	Usage       string   // Optional usage line shown on misuse.
	Aliases     []string // Optional aliases, case-insensitive.
	Permission  string   // Required permission; empty means none.
	// Run executes the command.
	Run func(c *Context) error
}

// PluginCommand is a command registered by and bound to a plugin.
// It does not execute while the owning plugin is disabled.
type PluginCommand struct {
	def   Definition
	owner Plugin
	node  *brigodier.LiteralCommandNode
}

// Name returns the lower-cased primary command name.
func (c *PluginCommand) Name() string { return strings.ToLower(c.def.Name) }

// Owner returns the plugin this command belongs to.
func (c *PluginCommand) Owner() Plugin { return c.owner }

// Definition returns the declaration this command was registered with.
func (c *PluginCommand) Definition() Definition { return c.def }

// Node returns the registered primary command node.
func (c *PluginCommand) Node() *brigodier.LiteralCommandNode { return c.node }

// Returned when executing a command whose owning plugin is disabled.
var ErrPluginDisabled = errors.New("command is owned by a disabled plugin")

type pluginRegistrar struct {
	mu       sync.RWMutex
	commands map[string]*PluginCommand // primary names and aliases, lower case
}

// RegisterPlugin registers a command owned by a plugin.
// The name and aliases are lower-cased; names already taken
// by another command are an error.
func (m *Manager) RegisterPlugin(owner Plugin, def Definition) (*PluginCommand, error) {
	if owner == nil {
		return nil, errors.New("plugin command must have an owning plugin")
	}
	if def.Name == "" || def.Run == nil {
		return nil, errors.New("plugin command must have a name and a run function")
	}
	name := strings.ToLower(def.Name)
	aliases := make([]string, 0, len(def.Aliases))
	for _, alias := range def.Aliases {
		aliases = append(aliases, strings.ToLower(alias))
	}
	for _, n := range append([]string{name}, aliases...) {
		if m.Has(n) {
			return nil, fmt.Errorf("command %q is already registered", n)
		}
	}

	run := def.Run
	node := m.RegisterWithAliases(brigodier.Literal(name).
		Requires(Requires(func(c *RequiresContext) bool {
			if !owner.Enabled() {
				return false
			}
			return def.Permission == "" || c.Source.HasPermission(def.Permission)
		})).
		Executes(Command(func(c *Context) error {
			if !owner.Enabled() {
				return ErrPluginDisabled
			}
			return run(c)
		})), aliases...)

	pc := &PluginCommand{def: def, owner: owner, node: node}

	m.registrar.mu.Lock()
	defer m.registrar.mu.Unlock()
	if m.registrar.commands == nil {
		m.registrar.commands = map[string]*PluginCommand{}
	}
	m.registrar.commands[name] = pc
	for _, alias := range aliases {
		m.registrar.commands[alias] = pc
	}
	return pc, nil
}

// PluginCommand returns the plugin command registered under the given
// case-insensitive name or alias, or nil.
func (m *Manager) PluginCommand(name string) *PluginCommand {
	m.registrar.mu.RLock()
	defer m.registrar.mu.RUnlock()
	return m.registrar.commands[strings.ToLower(name)]
}
