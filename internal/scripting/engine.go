// Package scripting runs user-defined slash commands in a Lua VM. Scripts
// register commands at load time and drive the client through a small
// bound API.
package scripting

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/manago/client/internal/core/event"
	"github.com/manago/client/internal/dialect"
	"github.com/manago/client/internal/world"
)

// Bindings is the client surface exposed to scripts.
type Bindings struct {
	Log   *zap.Logger
	Bus   *event.Bus
	World *world.Manager
	Out   dialect.Outbound
}

// Engine wraps a single gopher-lua VM. Single-goroutine access only
// (game loop).
type Engine struct {
	vm       *lua.LState
	log      *zap.Logger
	commands map[string]*lua.LFunction
}

// NewEngine creates a Lua engine and loads every .lua file from the
// commands directory. A missing directory yields an engine with no
// commands.
func NewEngine(commandsDir string, b Bindings, log *zap.Logger) (*Engine, error) {
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})

	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, log: log, commands: make(map[string]*lua.LFunction)}

	vm.SetGlobal("register_command", vm.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		fn := L.CheckFunction(2)
		if _, dup := e.commands[name]; dup {
			log.Warn("lua command registered twice", zap.String("command", name))
		}
		e.commands[name] = fn
		return 0
	}))
	vm.SetGlobal("client", e.clientModule(b))

	if err := e.loadDir(commandsDir); err != nil {
		vm.Close()
		return nil, fmt.Errorf("load command scripts: %w", err)
	}
	return e, nil
}

// loadDir loads all .lua files in a directory.
func (e *Engine) loadDir(dir string) error {
	if dir == "" {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}

// clientModule builds the table scripts reach the client through.
func (e *Engine) clientModule(b Bindings) *lua.LTable {
	t := e.vm.NewTable()

	t.RawSetString("say", e.vm.NewFunction(func(L *lua.LState) int {
		text := L.CheckString(1)
		nick := ""
		if p := b.World.Player(); p != nil {
			nick = p.Name
		}
		L.Push(lua.LBool(b.Out.Chat(nick, text)))
		return 1
	}))

	t.RawSetString("whisper", e.vm.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LBool(b.Out.Whisper(L.CheckString(1), L.CheckString(2))))
		return 1
	}))

	t.RawSetString("emote", e.vm.NewFunction(func(L *lua.LState) int {
		b.Out.Emote(L.CheckInt(1))
		return 0
	}))

	t.RawSetString("sit", e.vm.NewFunction(func(L *lua.LState) int {
		b.Out.Sit(L.OptBool(1, true))
		return 0
	}))

	t.RawSetString("respawn", e.vm.NewFunction(func(L *lua.LState) int {
		b.Out.Respawn()
		return 0
	}))

	t.RawSetString("walk", e.vm.NewFunction(func(L *lua.LState) int {
		x := L.CheckInt(1)
		y := L.CheckInt(2)
		dir := world.DirDown
		if p := b.World.Player(); p != nil {
			dir = p.Facing()
		}
		b.Out.Walk(x, y, dir)
		return 0
	}))

	t.RawSetString("target", e.vm.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		tgt := b.World.FindBeingByName(name, world.ActorUnknown)
		if tgt == nil {
			L.Push(lua.LFalse)
			return 1
		}
		b.World.SetTarget(tgt)
		L.Push(lua.LTrue)
		return 1
	}))

	t.RawSetString("attack", e.vm.NewFunction(func(L *lua.LState) int {
		tgt := b.World.Target()
		if tgt == nil {
			L.Push(lua.LFalse)
			return 1
		}
		b.Out.Attack(tgt.ActorID(), L.OptBool(1, true))
		L.Push(lua.LTrue)
		return 1
	}))

	t.RawSetString("position", e.vm.NewFunction(func(L *lua.LState) int {
		p := b.World.Player()
		if p == nil {
			L.Push(lua.LNumber(0))
			L.Push(lua.LNumber(0))
			return 2
		}
		x, y := p.TilePosition()
		L.Push(lua.LNumber(x))
		L.Push(lua.LNumber(y))
		return 2
	}))

	t.RawSetString("notice", e.vm.NewFunction(func(L *lua.LState) int {
		event.Emit(b.Bus, event.Notice{Kind: event.NoticeServer, Text: L.CheckString(1)})
		return 0
	}))

	return t
}

// Has reports whether a script registered the named command.
func (e *Engine) Has(name string) bool {
	_, ok := e.commands[name]
	return ok
}

// Commands returns the registered command names, sorted.
func (e *Engine) Commands() []string {
	names := make([]string, 0, len(e.commands))
	for name := range e.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Run executes a registered command with its arguments. Unknown commands
// return false with no error so the caller can fall through to built-ins.
func (e *Engine) Run(name string, args []string) (bool, error) {
	fn, ok := e.commands[name]
	if !ok {
		return false, nil
	}
	t := e.vm.NewTable()
	for i, a := range args {
		t.RawSetInt(i+1, lua.LString(a))
	}
	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    0,
		Protect: true,
	}, t); err != nil {
		return true, fmt.Errorf("command %s: %w", name, err)
	}
	return true, nil
}

// Close shuts down the Lua VM.
func (e *Engine) Close() {
	e.vm.Close()
}
