// Package command provides the command manager for registering and
// executing server commands, for the console as well as for in-game
// actors. Plugin commands are registered through the owning plugin and
// refuse to run while that plugin is disabled.
package command

import (
	"context"
	"errors"
	"strings"

	"go.minekube.com/brigodier"
	"go.minekube.com/common/minecraft/component"

	"go.minekube.com/stone/pkg/permission"
	"go.minekube.com/stone/pkg/util/errs"
)

// Manager is a command manager for
// registering and executing server commands.
type Manager struct {
	brigodier.Dispatcher
	registrar pluginRegistrar
}

// Source is the invoker of a command.
// It could be a player or the console/terminal.
type Source interface {
	permission.Subject
	// SendMessage sends a message component to the invoker.
	SendMessage(msg component.Component) error
}

// SourceFromContext retrieves the Source from a command's context.
func SourceFromContext(ctx context.Context) Source {
	s := ctx.Value(sourceCtxKey)
	if s == nil {
		return nil
	}
	src, _ := s.(Source)
	return src
}

// ContextWithSource returns a new context with the command Source.
func ContextWithSource(ctx context.Context, src Source) context.Context {
	return context.WithValue(ctx, sourceCtxKey, src)
}

// Context wraps the context for a brigodier.Command.
type Context struct {
	*brigodier.CommandContext
	Source
}

// RequiresContext wraps the context for a brigodier.RequireFn.
type RequiresContext struct {
	context.Context
	Source
}

// Command wraps the context for a brigodier.Command.
func Command(fn func(c *Context) error) brigodier.Command {
	return brigodier.CommandFunc(func(c *brigodier.CommandContext) error {
		return fn(createContext(c))
	})
}

func createContext(c *brigodier.CommandContext) *Context {
	return &Context{
		CommandContext: c,
		Source:         SourceFromContext(c),
	}
}

// Requires wraps the context for a brigodier.RequireFn.
func Requires(fn func(c *RequiresContext) bool) func(context.Context) bool {
	return func(ctx context.Context) bool {
		return fn(&RequiresContext{
			Context: ctx,
			Source:  SourceFromContext(ctx),
		})
	}
}

// Register registers a command with the manager.
func (m *Manager) Register(cmd brigodier.LiteralNodeBuilder) *brigodier.LiteralCommandNode {
	return m.Dispatcher.Register(cmd)
}

// RegisterWithAliases registers a command and zero or more aliases for
// it. Aliases redirect to the primary node and share its requirement.
func (m *Manager) RegisterWithAliases(cmd brigodier.LiteralNodeBuilder, aliases ...string) *brigodier.LiteralCommandNode {
	node := m.Dispatcher.Register(cmd)
	for _, alias := range aliases {
		m.Dispatcher.Register(brigodier.Literal(strings.ToLower(alias)).
			Requires(func(ctx context.Context) bool { return node.CanUse(ctx) }).
			Redirect(node).
			Executes(node.Command()))
	}
	return node
}

// ParseResults are the parse results of a parsed command input.
//
// It overlays brigodier.ParseResults to make clear that Manager.Execute
// must only get parse results returned by Manager.Parse.
type ParseResults brigodier.ParseResults

// Parse stores a required command invoker Source in ctx,
// parses the command and returns parse results for use with Execute.
func (m *Manager) Parse(ctx context.Context, src Source, command string) *ParseResults {
	return m.ParseReader(ctx, src, &brigodier.StringReader{String: command})
}

// ParseReader stores a required command invoker Source in ctx,
// parses the command and returns parse results for use with Execute.
func (m *Manager) ParseReader(ctx context.Context, src Source, command *brigodier.StringReader) *ParseResults {
	ctx = ContextWithSource(ctx, src)
	return (*ParseResults)(m.Dispatcher.ParseReader(ctx, command))
}

// Do does a Parse and Execute.
func (m *Manager) Do(ctx context.Context, src Source, command string) error {
	return m.Execute(m.Parse(ctx, src, command))
}

// Execute ensures parse context has a Source and executes it.
//
// An unknown command is returned as a silent error so callers can log
// it at a lower verbosity than real execution failures.
func (m *Manager) Execute(parse *ParseResults) error {
	if SourceFromContext(parse.Context) == nil {
		return errors.New("context misses command source")
	}
	err := m.Dispatcher.Execute((*brigodier.ParseResults)(parse))
	if errors.Is(err, brigodier.ErrDispatcherUnknownCommand) {
		return errs.WrapSilent(err)
	}
	return err
}

// Has indicates whether the specified command/alias is registered.
func (m *Manager) Has(command string) bool {
	_, ok := m.Dispatcher.Root.Children()[strings.ToLower(command)]
	return ok
}

// CompletionSuggestions returns completion suggestions.
func (m *Manager) CompletionSuggestions(parse *ParseResults) (*brigodier.Suggestions, error) {
	return m.Dispatcher.CompletionSuggestions((*brigodier.ParseResults)(parse))
}

// OfferSuggestions returns completion suggestions.
func (m *Manager) OfferSuggestions(ctx context.Context, source Source, cmdline string) ([]string, error) {
	suggestions, err := m.CompletionSuggestions(m.Parse(ctx, source, cmdline))
	if err != nil {
		return nil, err
	}
	s := make([]string, 0, len(suggestions.Suggestions))
	for _, suggestion := range suggestions.Suggestions {
		s = append(s, suggestion.Text)
	}
	return s, nil
}

type sourceCtx struct{}

var sourceCtxKey = &sourceCtx{}
