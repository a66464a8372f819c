package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/coreman2200/ledpad/internal/config"
	"github.com/coreman2200/ledpad/internal/device"
	"github.com/coreman2200/ledpad/internal/editor"
	"github.com/coreman2200/ledpad/internal/export"
	"github.com/coreman2200/ledpad/internal/font"
	"github.com/coreman2200/ledpad/internal/grid"
	"github.com/coreman2200/ledpad/internal/imgimport"
	"github.com/coreman2200/ledpad/internal/player"
	"github.com/coreman2200/ledpad/internal/project"
)

// Mode is the shell's input mode, orthogonal to the editor's own state.
type Mode int

const (
	ModeNormal Mode = iota
	ModeShift       // arrow keys drag the shift tool
	ModeInput       // a text prompt is active
)

// InputOp says what the active prompt is for.
type InputOp int

const (
	InputSave InputOp = iota
	InputOpen
	InputImport
	InputText
	InputExportPNG
	InputExportGIF
)

type model struct {
	ed     *editor.Editor
	play   *player.Player
	sender *device.Sim
	cfg    *config.Config
	fonts  []*font.Font

	mode    Mode
	cursorX int
	cursorY int

	// shift gesture origin, in cells
	shiftX int
	shiftY int

	input   string
	inputOp InputOp

	imgEffect device.Effect
	imgSpeed  int

	projectPath string
	configPath  string
	fontsDir    string

	playCh chan struct{}

	status string
	width  int
	height int
}

// tickMsg marks one playback step, marshaled from the player goroutine.
type tickMsg struct{}

func initialModel(projectPath, fontsDir, configPath string) model {
	m := model{
		ed:         editor.New(editor.Hooks{}),
		sender:     device.NewSim(),
		cfg:        config.Load(configPath),
		fonts:      font.LoadDir(fontsDir),
		imgEffect:  device.EffectNone,
		imgSpeed:   100,
		configPath: configPath,
		fontsDir:   fontsDir,
		playCh:     make(chan struct{}, 1),
	}
	m.play = player.New(player.Hooks{
		Advance: func() {
			select {
			case m.playCh <- struct{}{}:
			default:
			}
		},
	}, time.Duration(m.imgSpeed)*time.Millisecond)

	if projectPath != "" {
		if err := m.openProject(projectPath); err != nil {
			m.status = err.Error()
		}
	}
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

// waitForTick blocks until the player signals the next frame.
func waitForTick(ch chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-ch
		return tickMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		if !m.play.Playing() {
			return m, nil
		}
		_ = m.ed.Advance()
		return m, waitForTick(m.playCh)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.play.Playing() {
		// Editing is locked out during playback; only stop and quit work.
		switch msg.String() {
		case "p", " ":
			m.play.Stop()
			m.status = "stopped"
		case "q", "ctrl+c":
			m.play.Stop()
			return m, tea.Quit
		}
		return m, nil
	}

	if m.mode == ModeInput {
		return m.handleInputKey(msg)
	}
	if m.mode == ModeShift {
		return m.handleShiftKey(msg)
	}
	if m.ed.PlacementActive() {
		return m.handlePlacementKey(msg)
	}
	return m.handleNormalKey(msg)
}

func (m model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "left", "h":
		m.moveCursor(-1, 0)
	case "right", "l":
		m.moveCursor(1, 0)
	case "up", "k":
		m.moveCursor(0, -1)
	case "down", "j":
		m.moveCursor(0, 1)

	case " ":
		// One cell toggle is one undoable gesture.
		m.ed.BeginAction()
		m.ed.SetPixel(m.cursorX, m.cursorY, !m.ed.PixelAt(m.cursorX, m.cursorY))
		m.ed.EndAction()
	case "x":
		m.ed.BeginAction()
		m.ed.SetPixel(m.cursorX, m.cursorY, false)
		m.ed.EndAction()

	case "c":
		m.report(m.ed.Clear(), "cleared")
	case "I":
		m.report(m.ed.Invert(), "inverted")
	case "H":
		m.report(m.ed.MirrorH(), "mirrored horizontally")
	case "V":
		m.report(m.ed.MirrorV(), "mirrored vertically")

	case "s":
		m.mode = ModeShift
		m.shiftX, m.shiftY = m.cursorX, m.cursorY
		m.ed.BeginAction()
		m.ed.BeginShift(m.shiftX, m.shiftY)
		m.status = "shift: arrows move, enter/esc done"

	case "n":
		m.report(m.ed.Next(), "")
	case "b":
		m.report(m.ed.Prev(), "")
	case "a":
		m.report(m.ed.InsertAfterCurrent(), "frame added")
	case "D":
		m.report(m.ed.RemoveCurrent(), "frame removed")
	case "y":
		m.report(m.ed.CopyFromPrevious(), "copied previous frame")

	case "u":
		m.report(m.ed.Undo(), "undo")
	case "r":
		m.report(m.ed.Redo(), "redo")

	case "p":
		m.play.SetInterval(time.Duration(m.imgSpeed) * time.Millisecond)
		m.play.Start(context.Background())
		m.status = "playing"
		return m, waitForTick(m.playCh)

	case "e":
		m.imgEffect = nextEffect(m.imgEffect)
		m.status = "effect: " + string(m.imgEffect)
	case "+":
		m.imgSpeed = clampSpeed(m.imgSpeed + 10)
		m.status = fmt.Sprintf("speed: %d ms", m.imgSpeed)
	case "-":
		m.imgSpeed = clampSpeed(m.imgSpeed - 10)
		m.status = fmt.Sprintf("speed: %d ms", m.imgSpeed)

	case "S":
		return m.prompt(InputSave, m.defaultProjectPath()), nil
	case "o":
		return m.prompt(InputOpen, dirPrefix(m.cfg.ProjectDir)), nil
	case "i":
		return m.prompt(InputImport, dirPrefix(m.cfg.ProjectDir)), nil
	case "t":
		if len(m.fonts) == 0 {
			m.status = "no fonts loaded from " + m.fontsDir
			return m, nil
		}
		return m.prompt(InputText, ""), nil
	case "f":
		m.cycleFont()
	case "E":
		return m.prompt(InputExportPNG, "animation.png"), nil
	case "G":
		return m.prompt(InputExportGIF, "animation.gif"), nil

	case "Y":
		rows := project.MarshalFrames([]grid.Grid{m.ed.Canvas()})[0]
		if err := clipboard.WriteAll(strings.Join(rows, "\n")); err != nil {
			m.status = "clipboard: " + err.Error()
		} else {
			m.status = "frame copied to clipboard"
		}

	case "T":
		err := m.sender.SendAnimation(context.Background(), m.ed.Frames(), m.imgEffect, m.imgSpeed)
		m.report(err, fmt.Sprintf("sent %d frames", m.ed.FrameCount()))
	}
	return m, nil
}

func (m model) handleShiftKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left":
		m.shiftX--
	case "right":
		m.shiftX++
	case "up":
		m.shiftY--
	case "down":
		m.shiftY++
	case "enter", "esc":
		m.ed.EndShift()
		m.ed.EndAction()
		m.mode = ModeNormal
		m.status = ""
		return m, nil
	default:
		return m, nil
	}
	m.ed.DragShift(m.shiftX, m.shiftY)
	return m, nil
}

func (m model) handlePlacementKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ox, oy := m.ed.PlacementOffset()
	switch msg.String() {
	case "left":
		m.ed.SetPlacementOffset(ox-1, oy)
	case "right":
		m.ed.SetPlacementOffset(ox+1, oy)
	case "up":
		m.ed.SetPlacementOffset(ox, oy-1)
	case "down":
		m.ed.SetPlacementOffset(ox, oy+1)
	case "enter":
		if _, err := m.ed.FinalizePlacement(); err != nil {
			m.status = err.Error()
		} else {
			m.ed.EndAction()
			m.status = "placement confirmed"
		}
	case "esc":
		_ = m.ed.AbandonPlacement()
		m.status = "placement canceled"
	}
	return m, nil
}

func (m model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.mode = ModeNormal
		m.input = ""
		m.status = ""
		return m, nil
	case tea.KeyEnter:
		return m.confirmInput()
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
		return m, nil
	case tea.KeyRunes:
		m.input += string(msg.Runes)
		return m, nil
	case tea.KeySpace:
		m.input += " "
		return m, nil
	}
	return m, nil
}

func (m model) confirmInput() (tea.Model, tea.Cmd) {
	raw := m.input
	path := strings.TrimSpace(raw)
	m.mode = ModeNormal
	m.input = ""
	if path == "" {
		return m, nil
	}
	switch m.inputOp {
	case InputSave:
		m.report(m.saveProject(path), "saved "+path)
	case InputOpen:
		m.report(m.openProject(path), "opened "+path)
	case InputImport:
		buf, err := imgimport.Open(path, true)
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.ed.BeginAction()
		m.report(m.ed.StartPlacement(buf), "arrows position, enter confirms")
	case InputText:
		f := m.selectedFont()
		buf, err := f.Render(raw)
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.ed.BeginAction()
		m.report(m.ed.StartPlacement(buf), "arrows position, enter confirms")
	case InputExportPNG:
		m.report(export.Sheet(m.ed.Frames(), path), "exported "+path)
	case InputExportGIF:
		m.report(export.GIF(m.ed.Frames(), time.Duration(m.imgSpeed)*time.Millisecond, path), "exported "+path)
	}
	return m, nil
}

func (m *model) moveCursor(dx, dy int) {
	m.cursorX = clampInt(m.cursorX+dx, 0, grid.Width-1)
	m.cursorY = clampInt(m.cursorY+dy, 0, grid.Height-1)
}

func (m model) prompt(op InputOp, initial string) model {
	m.mode = ModeInput
	m.inputOp = op
	m.input = initial
	m.status = promptLabel(op)
	return m
}

func promptLabel(op InputOp) string {
	switch op {
	case InputSave:
		return "save project to:"
	case InputOpen:
		return "open project:"
	case InputImport:
		return "import image:"
	case InputText:
		return "text to place:"
	case InputExportPNG:
		return "export PNG sheet to:"
	default:
		return "export GIF to:"
	}
}

func (m *model) report(err error, ok string) {
	if err != nil {
		m.status = err.Error()
		log.Debug().Err(err).Msg("operation refused")
		return
	}
	if ok != "" {
		m.status = ok
	}
}

func (m *model) openProject(path string) error {
	file, frames, err := project.Load(path)
	if err != nil {
		return err
	}
	m.ed.Load(frames, file.CurrentFrame)
	m.imgEffect = device.ParseEffect(string(file.Image.Effect))
	m.imgSpeed = file.Image.Speed
	m.projectPath = path
	m.cfg.ProjectDir = filepath.Dir(path)
	_ = config.Save(m.configPath, m.cfg)
	return nil
}

func (m *model) saveProject(path string) error {
	if m.ed.PlacementActive() {
		return editor.ErrPlacementPending
	}
	f := &project.File{
		CurrentFrame: m.ed.Cursor(),
		Image:        project.Image{Effect: m.imgEffect, Speed: m.imgSpeed},
		Text:         project.Text{Effect: device.EffectNone, Speed: 100},
	}
	if err := project.Save(path, f, m.ed.Frames()); err != nil {
		return err
	}
	m.projectPath = path
	m.cfg.ProjectDir = filepath.Dir(path)
	_ = config.Save(m.configPath, m.cfg)
	return nil
}

func (m model) defaultProjectPath() string {
	if m.projectPath != "" {
		return m.projectPath
	}
	return filepath.Join(m.cfg.ProjectDir, "animation.json")
}

func (m *model) selectedFont() *font.Font {
	for _, f := range m.fonts {
		if f.ID == m.cfg.SelectedFont {
			return f
		}
	}
	return m.fonts[0]
}

func (m *model) cycleFont() {
	if len(m.fonts) == 0 {
		m.status = "no fonts loaded"
		return
	}
	idx := 0
	for i, f := range m.fonts {
		if f.ID == m.cfg.SelectedFont {
			idx = (i + 1) % len(m.fonts)
			break
		}
	}
	m.cfg.SelectedFont = m.fonts[idx].ID
	_ = config.Save(m.configPath, m.cfg)
	m.status = "font: " + m.fonts[idx].Name
}

func nextEffect(e device.Effect) device.Effect {
	all := device.Effects()
	for i, v := range all {
		if v == e {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}

func dirPrefix(dir string) string {
	if dir == "" {
		return ""
	}
	return dir + string(filepath.Separator)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampSpeed(v int) int { return clampInt(v, 10, 3500) }
