//go:build !tinygo

package hal

import (
	"errors"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

var (
	termLitStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff8c29"))
	termDarkStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5a320e"))
	termHelpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#71717a"))
)

// RunTerminal renders the framebuffer in the terminal with half-block glyphs.
//
// Terminals do not report key releases, so every key is delivered as a short press.
func RunTerminal(newApp NewAppFunc, cfg HostConfig) error {
	cfg.setDefaults()
	h := newHostHAL(cfg)
	// The app logs to stdout, which belongs to the terminal UI now.
	h.logger.w = io.Discard

	step, err := newApp(h)
	if err != nil {
		return err
	}

	m := termModel{h: h, step: step, frame: time.Second / time.Duration(cfg.Hz)}
	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(termModel); ok && fm.err != nil && !errors.Is(fm.err, ErrShutdown) {
		return fm.err
	}
	return nil
}

type termFrameMsg time.Time

type termModel struct {
	h     *hostHAL
	step  func() error
	frame time.Duration
	err   error
}

func (m termModel) tick() tea.Cmd {
	return tea.Tick(m.frame, func(t time.Time) tea.Msg {
		return termFrameMsg(t)
	})
}

func (m termModel) Init() tea.Cmd {
	return m.tick()
}

func (m termModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if code, ok := termKey(msg.String()); ok {
			m.h.kbd.inject(code, true)
			m.h.kbd.inject(code, false)
			m.h.bl.touch(time.Now())
		}
		return m, nil

	case termFrameMsg:
		m.h.t.step(1)
		if m.step != nil {
			if err := m.step(); err != nil {
				m.err = err
				return m, tea.Quit
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m termModel) View() string {
	style := termDarkStyle
	if m.h.bl.lit(time.Now()) {
		style = termLitStyle
	}

	var out string
	m.h.fb.snapshot(func(img *image1bit.VerticalLSB, _ uint64) {
		out = halfBlocks(img)
	})
	return style.Render(out) + "\n" + termHelpStyle.Render("esc/backspace: back  arrows, enter: keys")
}

func termKey(s string) (KeyCode, bool) {
	switch s {
	case "up":
		return KeyUp, true
	case "down":
		return KeyDown, true
	case "left":
		return KeyLeft, true
	case "right":
		return KeyRight, true
	case "enter", " ":
		return KeyOk, true
	case "esc", "backspace", "q", "ctrl+c":
		return KeyBack, true
	default:
		return KeyUnknown, false
	}
}

// halfBlocks renders two pixel rows per text row.
func halfBlocks(img *image1bit.VerticalLSB) string {
	b := img.Bounds()
	var sb strings.Builder
	sb.Grow((b.Dx()*3 + 1) * (b.Dy() + 1) / 2)
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		for x := b.Min.X; x < b.Max.X; x++ {
			top := bool(img.BitAt(x, y))
			bottom := y+1 < b.Max.Y && bool(img.BitAt(x, y+1))
			switch {
			case top && bottom:
				sb.WriteRune('█')
			case top:
				sb.WriteRune('▀')
			case bottom:
				sb.WriteRune('▄')
			default:
				sb.WriteByte(' ')
			}
		}
		if y+2 < b.Max.Y {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
