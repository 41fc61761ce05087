package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/nactco/internal/tui/tuistyles"
)

// ControlKind selects how a parameter is adjusted
type ControlKind int

const (
	ControlSlider ControlKind = iota
	ControlToggle
	ControlChoice
)

// ParameterSlider is one adjustable scenario input: a numeric slider,
// an on/off toggle, or a cycle through named choices.
type ParameterSlider struct {
	Key         string
	Label       string
	Kind        ControlKind
	Value       float64
	Min         float64
	Max         float64
	Step        float64
	Format      func(float64) string
	On          bool
	Choices     []string
	Choice      int
	Disabled    bool
	IsFocused   bool
	Description string
	Width       int
}

// NewParameterSlider creates a numeric slider clamped to [min, max]
func NewParameterSlider(key, label string, value, min, max, step float64) *ParameterSlider {
	p := &ParameterSlider{
		Key:    key,
		Label:  label,
		Kind:   ControlSlider,
		Min:    min,
		Max:    max,
		Step:   step,
		Format: func(v float64) string { return fmt.Sprintf("%.0f", v) },
		Width:  20,
	}
	p.SetValue(value)
	return p
}

// NewToggle creates an on/off control
func NewToggle(key, label string, on bool) *ParameterSlider {
	return &ParameterSlider{Key: key, Label: label, Kind: ControlToggle, On: on, Width: 20}
}

// NewChoice creates a control cycling through choices; an unknown current value selects the first
func NewChoice(key, label string, choices []string, current string) *ParameterSlider {
	p := &ParameterSlider{Key: key, Label: label, Kind: ControlChoice, Choices: choices, Width: 20}
	for i, c := range choices {
		if c == current {
			p.Choice = i
		}
	}
	return p
}

// WithFormat sets how slider values are displayed
func (p *ParameterSlider) WithFormat(format func(float64) string) *ParameterSlider {
	p.Format = format
	return p
}

// WithDescription adds help text shown while focused
func (p *ParameterSlider) WithDescription(desc string) *ParameterSlider {
	p.Description = desc
	return p
}

// Increment moves right: raises a slider, switches a toggle on, advances a choice
func (p *ParameterSlider) Increment() bool {
	return p.adjust(1)
}

// Decrement moves left
func (p *ParameterSlider) Decrement() bool {
	return p.adjust(-1)
}

// Toggle flips a toggle or advances a choice, wrapping around
func (p *ParameterSlider) Toggle() bool {
	if p.Disabled {
		return false
	}
	switch p.Kind {
	case ControlToggle:
		p.On = !p.On
		return true
	case ControlChoice:
		if len(p.Choices) == 0 {
			return false
		}
		p.Choice = (p.Choice + 1) % len(p.Choices)
		return true
	}
	return false
}

// adjust reports whether the value changed
func (p *ParameterSlider) adjust(dir int) bool {
	if p.Disabled {
		return false
	}
	switch p.Kind {
	case ControlSlider:
		before := p.Value
		p.SetValue(p.Value + float64(dir)*p.Step)
		return p.Value != before
	case ControlToggle:
		on := dir > 0
		if p.On == on {
			return false
		}
		p.On = on
		return true
	case ControlChoice:
		next := p.Choice + dir
		if next < 0 || next >= len(p.Choices) {
			return false
		}
		p.Choice = next
		return true
	}
	return false
}

// SetValue sets a slider value, clamping to min/max
func (p *ParameterSlider) SetValue(value float64) {
	p.Value = math.Max(p.Min, math.Min(p.Max, value))
}

// Selected returns the current choice, or "" for non-choice controls
func (p *ParameterSlider) Selected() string {
	if p.Kind != ControlChoice || len(p.Choices) == 0 {
		return ""
	}
	return p.Choices[p.Choice]
}

// Percentage returns the slider position as a fraction of its range
func (p *ParameterSlider) Percentage() float64 {
	if p.Max == p.Min {
		return 0
	}
	return (p.Value - p.Min) / (p.Max - p.Min)
}

// DisplayValue renders the current value as text
func (p *ParameterSlider) DisplayValue() string {
	switch p.Kind {
	case ControlToggle:
		if p.On {
			return "on"
		}
		return "off"
	case ControlChoice:
		return p.Selected()
	}
	return p.Format(p.Value)
}

// Render returns one line: label, value and a visual indicator
func (p *ParameterSlider) Render() string {
	labelStyle := tuistyles.ParameterLabelStyle.Width(28)
	valueStyle := tuistyles.ParameterValueStyle.Width(14)
	cursor := "  "
	if p.IsFocused {
		labelStyle = labelStyle.Foreground(tuistyles.ColorPrimary)
		valueStyle = valueStyle.Foreground(tuistyles.ColorAccent)
		cursor = tuistyles.SelectedItemStyle.Render("▸ ")
	}
	if p.Disabled {
		labelStyle = labelStyle.Foreground(tuistyles.ColorMuted)
		valueStyle = valueStyle.Foreground(tuistyles.ColorMuted)
	}

	var indicator string
	switch p.Kind {
	case ControlSlider:
		indicator = p.renderBar()
	case ControlToggle:
		if p.On {
			indicator = tuistyles.MetricPositiveStyle.Render("[■]")
		} else {
			indicator = tuistyles.SliderTrackStyle.Render("[ ]")
		}
	case ControlChoice:
		parts := make([]string, len(p.Choices))
		for i, c := range p.Choices {
			if i == p.Choice {
				parts[i] = tuistyles.SelectedItemStyle.Render(c)
			} else {
				parts[i] = tuistyles.SliderTrackStyle.Render(c)
			}
		}
		indicator = strings.Join(parts, " · ")
	}

	line := cursor + labelStyle.Render(p.Label) + valueStyle.Render(p.DisplayValue()) + indicator
	if p.IsFocused && p.Description != "" {
		line += "\n    " + lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).Italic(true).Render(p.Description)
	}
	return line
}

func (p *ParameterSlider) renderBar() string {
	filled := int(math.Round(float64(p.Width) * p.Percentage()))
	filled = max(0, min(p.Width, filled))

	thumb := tuistyles.SliderThumbStyle
	if p.IsFocused {
		thumb = thumb.Foreground(tuistyles.ColorAccent)
	}

	var bar strings.Builder
	bar.WriteString("[")
	if filled > 0 {
		bar.WriteString(thumb.Render(strings.Repeat("━", filled-1) + "●"))
	} else {
		bar.WriteString(thumb.Render("●"))
	}
	if rest := p.Width - max(filled, 1); rest > 0 {
		bar.WriteString(tuistyles.SliderTrackStyle.Render(strings.Repeat("─", rest)))
	}
	bar.WriteString("]")
	return bar.String()
}
