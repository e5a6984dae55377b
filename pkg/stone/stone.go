// Package stone ties the permission, plugin and command layers
// together into a server extension runtime.
//
// The package does not run a network listener; the engine hosting it
// hands live actor objects (players, blocks) to the Server and asks
// the resolved subjects for permissions when dispatching commands.
package stone

import (
	"strings"
	"sync"

	"github.com/go-logr/logr"
	"github.com/robinbraemer/event"
	"go.minekube.com/common/minecraft/component"

	"go.minekube.com/stone/pkg/command"
	"go.minekube.com/stone/pkg/config"
	"go.minekube.com/stone/pkg/permission"
	"go.minekube.com/stone/pkg/plugin"
	"go.minekube.com/stone/pkg/util/errs"
)

// Options are Server options.
type Options struct {
	// Config requires a valid configuration.
	Config *config.Config
	// Logger is the logger used for the server and its plugins.
	// If not set, no logging is done.
	Logger logr.Logger
}

// Actor is a command-capable permission subject known to the server.
type Actor interface {
	command.Source
	// Name returns the current name of the subject.
	Name() string
	IsOp() bool
	SetOp(bool)
	RecalculatePermissions()
}

// Server is the extension runtime: it owns the permission registry,
// the event manager, the command manager and the plugin loader, and
// tracks the live permission subjects.
type Server struct {
	cfg      *config.Config
	log      logr.Logger
	events   event.Manager
	commands *command.Manager
	perms    *permission.SimpleRegistry
	loader   *plugin.Loader
	console  *ConsoleSender

	mu     sync.RWMutex
	actors map[Actor]struct{}
}

var _ plugin.Server = (*Server)(nil)

// New returns a new Server for a validated config.
func New(options Options) (*Server, error) {
	if options.Config == nil {
		return nil, errs.ErrMissingConfig
	}
	s := &Server{
		cfg:      options.Config,
		log:      options.Logger,
		events:   event.New(),
		commands: &command.Manager{},
		perms:    permission.NewRegistry(),
		actors:   map[Actor]struct{}{},
	}

	for _, p := range builtinPermissions() {
		if err := s.perms.Register(p); err != nil {
			return nil, err
		}
	}
	for _, p := range options.Config.RegistryPermissions() {
		if err := s.perms.Register(p); err != nil {
			s.log.Info("Skipping configured permission", "permission", p.Name(), "reason", err)
		}
	}

	var err error
	if s.loader, err = plugin.NewLoader(s); err != nil {
		return nil, err
	}

	s.console = newConsoleSender(s)
	s.track(s.console)

	// A disabled plugin must not keep influencing authorization:
	// recalculation detaches its attachments from every live subject.
	event.Subscribe(s.events, 0, func(*plugin.PluginDisableEvent) {
		for _, a := range s.Actors() {
			a.RecalculatePermissions()
		}
	})

	s.registerBuiltinCommands()
	return s, nil
}

// Logger returns the server's logger.
func (s *Server) Logger() logr.Logger { return s.log }

// Events returns the server's event manager.
func (s *Server) Events() event.Manager { return s.events }

// Commands returns the server's command manager.
func (s *Server) Commands() *command.Manager { return s.commands }

// Permissions returns the server's permission registry.
func (s *Server) Permissions() permission.Registrar { return s.perms }

// Loader returns the server's plugin loader.
func (s *Server) Loader() *plugin.Loader { return s.loader }

// Console returns the server's console command sender.
func (s *Server) Console() *ConsoleSender { return s.console }

// InitPlugins loads and then enables all plugins registered in
// Plugins, in registration order. Every plugin's OnLoad runs before
// any plugin's OnEnable.
func (s *Server) InitPlugins() error {
	if err := s.loader.LoadAll(Plugins...); err != nil {
		return err
	}
	return s.loader.EnableAll()
}

// Shutdown disables all plugins in reverse load order
// and fires the ShutdownEvent.
func (s *Server) Shutdown(reason component.Component) {
	s.log.Info("Shutting down the server...")
	s.loader.DisableAll()
	s.events.Fire(&ShutdownEvent{Reason: reason})
}

// Actors returns all live subjects, including the console.
func (s *Server) Actors() []Actor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	actors := make([]Actor, 0, len(s.actors))
	for a := range s.actors {
		actors = append(actors, a)
	}
	return actors
}

// ActorByName returns the live subject with the given
// case-insensitive name, or nil. Names are re-read from the
// underlying engine objects, so renames are visible immediately.
func (s *Server) ActorByName(name string) Actor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for a := range s.actors {
		if strings.EqualFold(a.Name(), name) {
			return a
		}
	}
	return nil
}

// RemoveActor stops tracking a subject, e.g. on player disconnect.
func (s *Server) RemoveActor(a Actor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.actors, a)
}

func (s *Server) track(a Actor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.actors[a] = struct{}{}
}
