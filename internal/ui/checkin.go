package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/josephgoksu/interncare/models"
)

// CheckIn is what the check-in form collects.
type CheckIn struct {
	Mood   models.NewMoodEntry
	Health models.NewHealthData
}

const (
	fieldMood = iota
	fieldSleep
	fieldStress
	fieldWater
	fieldNotes
	fieldCount
)

var checkInLabels = [fieldCount]string{
	"Mood (1-10)",
	"Sleep last night (hours)",
	"Stress (1-10)",
	"Water today (glasses)",
	"Notes (optional)",
}

// ErrCheckInCancelled is returned when the user leaves the form with Esc or Ctrl+C.
var ErrCheckInCancelled = errors.New("check-in cancelled")

// RunCheckIn shows the interactive daily check-in form.
func RunCheckIn() (CheckIn, error) {
	p := tea.NewProgram(newCheckInModel())
	final, err := p.Run()
	if err != nil {
		return CheckIn{}, fmt.Errorf("error running check-in form: %w", err)
	}
	m := final.(checkInModel)
	if m.quit {
		return CheckIn{}, ErrCheckInCancelled
	}
	return m.result, nil
}

type checkInModel struct {
	inputs []textinput.Model
	focus  int
	errMsg string
	result CheckIn
	done   bool
	quit   bool
}

func newCheckInModel() checkInModel {
	inputs := make([]textinput.Model, fieldCount)
	placeholders := [fieldCount]string{"7", "7.5", "4", "8", "slept well, busy day"}
	for i := range inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 5
		ti.Width = 10
		if i == fieldNotes {
			ti.CharLimit = 200
			ti.Width = 40
		}
		inputs[i] = ti
	}
	inputs[fieldMood].Focus()
	return checkInModel{inputs: inputs}
}

func (m checkInModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m checkInModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quit = true
			return m, tea.Quit
		case tea.KeyShiftTab, tea.KeyUp:
			return m.moveFocus(-1), nil
		case tea.KeyTab, tea.KeyDown:
			return m.moveFocus(1), nil
		case tea.KeyEnter:
			if m.focus < fieldNotes {
				return m.moveFocus(1), nil
			}
			res, field, err := m.parse()
			if err != nil {
				m.errMsg = err.Error()
				return m.setFocus(field), nil
			}
			m.result = res
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m checkInModel) moveFocus(delta int) checkInModel {
	next := (m.focus + delta + fieldCount) % fieldCount
	return m.setFocus(next)
}

func (m checkInModel) setFocus(i int) checkInModel {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
	return m
}

// parse validates every field and returns the first bad one.
func (m checkInModel) parse() (CheckIn, int, error) {
	val := func(i int) string { return strings.TrimSpace(m.inputs[i].Value()) }

	score, err := strconv.Atoi(val(fieldMood))
	if err != nil || score < 1 || score > 10 {
		return CheckIn{}, fieldMood, errors.New("mood must be a whole number from 1 to 10")
	}
	sleep, err := strconv.ParseFloat(val(fieldSleep), 64)
	if err != nil || sleep < 0 || sleep > 24 {
		return CheckIn{}, fieldSleep, errors.New("sleep must be between 0 and 24 hours")
	}
	stress, err := strconv.Atoi(val(fieldStress))
	if err != nil || stress < 1 || stress > 10 {
		return CheckIn{}, fieldStress, errors.New("stress must be a whole number from 1 to 10")
	}
	water, err := strconv.ParseFloat(val(fieldWater), 64)
	if err != nil || water < 0 {
		return CheckIn{}, fieldWater, errors.New("water must be zero or more glasses")
	}

	notes := val(fieldNotes)
	return CheckIn{
		Mood:   models.NewMoodEntry{Score: score, Notes: notes},
		Health: models.NewHealthData{SleepHours: sleep, StressLevel: stress, WaterIntake: water, Notes: notes},
	}, 0, nil
}

func (m checkInModel) View() string {
	if m.done || m.quit {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("\n" + StyleHeader.Render("Daily check-in") + "\n\n")
	for i, in := range m.inputs {
		label := StyleSubtle.Render(checkInLabels[i])
		if i == m.focus {
			label = StylePrimary.Render(checkInLabels[i])
		}
		sb.WriteString(fmt.Sprintf("  %-28s %s\n", label, in.View()))
	}
	if m.errMsg != "" {
		sb.WriteString("\n  " + StyleError.Render(m.errMsg) + "\n")
	}
	sb.WriteString("\n" + StyleSubtle.Render("  Enter/Tab next • Shift+Tab back • Enter on last field saves • Esc cancel") + "\n")
	return sb.String()
}
