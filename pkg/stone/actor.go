package stone

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"go.minekube.com/common/minecraft/color"
	"go.minekube.com/common/minecraft/component"
	"go.minekube.com/common/minecraft/component/codec/legacy"

	"go.minekube.com/stone/internal/util/console"
	"go.minekube.com/stone/pkg/permission"
	"go.minekube.com/stone/pkg/util/uuid"
)

// Player is the live engine-side player object an actor wraps.
// It is owned by the engine; the wrapper never caches its fields.
type Player interface {
	// Name returns the player's current name,
	// which the engine may change at any time.
	Name() string
	// UUID returns the player's stable id.
	UUID() uuid.UUID
	// SendRawMessage sends a legacy-formatted chat string.
	SendRawMessage(msg string) error
}

// Block is the live engine-side block object a block-bound
// command sender wraps.
type Block interface {
	// Type returns the block type, e.g. "minecraft:command_block".
	Type() string
	X() int
	Y() int
	Z() int
}

// HumanActor bridges a live engine player to the command and
// permission layers. It holds a non-owning reference to the engine
// object plus a locally-owned permission engine.
type HumanActor struct {
	*permission.Base
	player Player
	server *Server
}

var _ Actor = (*HumanActor)(nil)

// NewHumanActor wraps an engine player and starts tracking it.
// Players named in the server config's Ops list start as operators.
func (s *Server) NewHumanActor(player Player) *HumanActor {
	a := &HumanActor{
		Base:   permission.NewBase(s.perms, s.log.WithName("player").WithValues("id", player.UUID())),
		player: player,
		server: s,
	}
	if s.cfg.IsOp(player.Name()) {
		a.SetOp(true)
	}
	s.track(a)
	return a
}

// Name returns the player's current name, re-read from the engine
// object so renames are visible immediately.
func (a *HumanActor) Name() string { return a.player.Name() }

// UUID returns the wrapped player's id.
func (a *HumanActor) UUID() uuid.UUID { return a.player.UUID() }

// Server returns the server tracking this actor.
func (a *HumanActor) Server() *Server { return a.server }

// SendMessage sends a message component to the player.
func (a *HumanActor) SendMessage(msg component.Component) error {
	s, err := marshalLegacy(msg)
	if err != nil {
		return err
	}
	return a.player.SendRawMessage(s)
}

// SendErrorMessage sends a message component to the player, styled
// as an error.
func (a *HumanActor) SendErrorMessage(msg component.Component) error {
	return a.SendMessage(&component.Text{
		S:     component.Style{Color: color.Red},
		Extra: []component.Component{msg},
	})
}

// ConsoleSender is the server console subject.
// It is an operator from the start.
type ConsoleSender struct {
	*permission.Base
	server *Server

	mu  sync.Mutex
	out io.Writer
}

var _ Actor = (*ConsoleSender)(nil)

func newConsoleSender(s *Server) *ConsoleSender {
	c := &ConsoleSender{
		Base:   permission.NewBase(s.perms, s.log.WithName("console")),
		server: s,
		out:    os.Stdout,
	}
	c.SetOp(true)
	return c
}

// Name returns "CONSOLE".
func (c *ConsoleSender) Name() string { return "CONSOLE" }

// Server returns the server owning this console.
func (c *ConsoleSender) Server() *Server { return c.server }

// SetOutput redirects console messages, e.g. for tests.
func (c *ConsoleSender) SetOutput(w io.Writer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.out = w
}

// SendMessage writes the message to the console,
// converting legacy formatting codes to ANSI colors.
func (c *ConsoleSender) SendMessage(msg component.Component) error {
	s, err := marshalLegacy(msg)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	_, err = fmt.Fprintln(c.out, console.AnsiFromLegacy(s))
	return err
}

// SendErrorMessage writes the message to the console, styled as an error.
func (c *ConsoleSender) SendErrorMessage(msg component.Component) error {
	return c.SendMessage(&component.Text{
		S:     component.Style{Color: color.Red},
		Extra: []component.Component{msg},
	})
}

// CommandBlockSender is the subject of commands run by a command
// block. Command blocks run with operator permissions but swallow
// their command output.
type CommandBlockSender struct {
	*permission.Base
	block  Block
	server *Server
}

var _ Actor = (*CommandBlockSender)(nil)

// NewCommandBlockSender wraps an engine command block and starts
// tracking it.
func (s *Server) NewCommandBlockSender(block Block) *CommandBlockSender {
	a := &CommandBlockSender{
		Base:   permission.NewBase(s.perms, s.log.WithName("command-block")),
		block:  block,
		server: s,
	}
	a.SetOp(true)
	s.track(a)
	return a
}

// Name derives the sender name from the block's live position.
func (a *CommandBlockSender) Name() string {
	return fmt.Sprintf("CommandBlock(%d, %d, %d)", a.block.X(), a.block.Y(), a.block.Z())
}

// Block returns the wrapped engine block.
func (a *CommandBlockSender) Block() Block { return a.block }

// Server returns the server tracking this sender.
func (a *CommandBlockSender) Server() *Server { return a.server }

// SendMessage drops the message; command blocks have no chat.
func (a *CommandBlockSender) SendMessage(msg component.Component) error {
	if s, err := marshalLegacy(msg); err == nil {
		a.server.log.V(1).Info("Command block output", "block", a.Name(), "message", s)
	}
	return nil
}

// SendErrorMessage drops the message; command blocks have no chat.
func (a *CommandBlockSender) SendErrorMessage(msg component.Component) error {
	return a.SendMessage(msg)
}

// BlockActorSender is the subject of commands run by a scripted block
// actor, e.g. a structure block. Unlike command blocks they hold no
// operator status by default.
type BlockActorSender struct {
	*permission.Base
	block  Block
	server *Server
}

var _ Actor = (*BlockActorSender)(nil)

// NewBlockActorSender wraps an engine block actor and starts
// tracking it.
func (s *Server) NewBlockActorSender(block Block) *BlockActorSender {
	a := &BlockActorSender{
		Base:   permission.NewBase(s.perms, s.log.WithName("block-actor")),
		block:  block,
		server: s,
	}
	s.track(a)
	return a
}

// Name derives the sender name from the block's live type and position.
func (a *BlockActorSender) Name() string {
	t := a.block.Type()
	if i := strings.IndexByte(t, ':'); i >= 0 {
		t = t[i+1:]
	}
	return fmt.Sprintf("%s(%d, %d, %d)", t, a.block.X(), a.block.Y(), a.block.Z())
}

// Block returns the wrapped engine block.
func (a *BlockActorSender) Block() Block { return a.block }

// Server returns the server tracking this sender.
func (a *BlockActorSender) Server() *Server { return a.server }

// SendMessage drops the message; block actors have no chat.
func (a *BlockActorSender) SendMessage(msg component.Component) error { return nil }

// SendErrorMessage drops the message; block actors have no chat.
func (a *BlockActorSender) SendErrorMessage(msg component.Component) error { return nil }

func marshalLegacy(msg component.Component) (string, error) {
	b := new(strings.Builder)
	if err := (&legacy.Legacy{}).Marshal(b, msg); err != nil {
		return "", err
	}
	return b.String(), nil
}
