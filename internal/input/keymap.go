// internal/input/keymap.go
package input

import (
	"github.com/gdamore/tcell/v2"
)

// Keymap maps special keys (including the Ctrl-letter keys) to actions.
type Keymap map[tcell.Key]Action

// RuneKeymap maps plain runes to actions other than insertion.
type RuneKeymap map[rune]Action

// InputProcessor translates tcell events into ActionEvents. It knows
// nothing about modes; the mode handler interprets the result.
type InputProcessor struct {
	keymap     Keymap
	runeKeymap RuneKeymap
}

// NewInputProcessor creates a processor with default keybindings.
func NewInputProcessor() *InputProcessor {
	p := &InputProcessor{
		keymap:     make(Keymap),
		runeKeymap: make(RuneKeymap),
	}
	p.loadDefaultBindings()
	return p
}

func (p *InputProcessor) loadDefaultBindings() {
	p.keymap[tcell.KeyUp] = ActionMoveUp
	p.keymap[tcell.KeyDown] = ActionMoveDown
	p.keymap[tcell.KeyLeft] = ActionMoveLeft
	p.keymap[tcell.KeyRight] = ActionMoveRight
	p.keymap[tcell.KeyPgUp] = ActionMovePageUp
	p.keymap[tcell.KeyPgDn] = ActionMovePageDown
	p.keymap[tcell.KeyHome] = ActionMoveHome
	p.keymap[tcell.KeyEnd] = ActionMoveEnd
	p.keymap[tcell.KeyEnter] = ActionInsertNewLine
	p.keymap[tcell.KeyTab] = ActionInsertTab
	p.keymap[tcell.KeyBackspace] = ActionDeleteCharBackward
	p.keymap[tcell.KeyBackspace2] = ActionDeleteCharBackward
	p.keymap[tcell.KeyDelete] = ActionDeleteCharForward
	p.keymap[tcell.KeyEscape] = ActionCancel

	p.keymap[tcell.KeyCtrlQ] = ActionQuit
	p.keymap[tcell.KeyCtrlS] = ActionSave
	p.keymap[tcell.KeyCtrlW] = ActionSaveAs
	p.keymap[tcell.KeyCtrlR] = ActionRename
	p.keymap[tcell.KeyCtrlZ] = ActionUndo
	p.keymap[tcell.KeyCtrlY] = ActionRedo
	p.keymap[tcell.KeyCtrlC] = ActionCopyLine
	p.keymap[tcell.KeyCtrlV] = ActionPaste
}

// Bind maps key to action, replacing any existing binding.
func (p *InputProcessor) Bind(key tcell.Key, action Action) {
	p.keymap[key] = action
}

// BindRune maps a plain rune to action instead of inserting it.
func (p *InputProcessor) BindRune(r rune, action Action) {
	p.runeKeymap[r] = action
}

// ProcessEvent takes a tcell key event and returns the corresponding ActionEvent.
func (p *InputProcessor) ProcessEvent(ev *tcell.EventKey) ActionEvent {
	key := ev.Key()
	mod := ev.Modifiers()

	if key != tcell.KeyRune {
		// Ctrl-letter keys carry ModCtrl; the key code alone identifies them.
		if mod&tcell.ModAlt != 0 {
			return ActionEvent{Action: ActionUnknown}
		}
		if action, ok := p.keymap[key]; ok {
			return ActionEvent{Action: action}
		}
		return ActionEvent{Action: ActionUnknown}
	}

	if mod&(tcell.ModCtrl|tcell.ModAlt) != 0 {
		return ActionEvent{Action: ActionUnknown}
	}
	r := ev.Rune()
	if action, ok := p.runeKeymap[r]; ok {
		return ActionEvent{Action: action, Rune: r}
	}
	return ActionEvent{Action: ActionInsertRune, Rune: r}
}
