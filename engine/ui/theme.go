package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/hubastard/groveui/engine/colors"
	"gopkg.in/yaml.v3"
)

type Align struct {
	Horizontal HorizontalAlign
	Vertical   VerticalAlign
}

// Theme holds the global style defaults plus optional per-kind overrides.
type Theme struct {
	Name           string
	Background     colors.Color
	ShapeColor     colors.Color
	FrameColor     colors.Color
	FrameWidth     float32
	LabelColor     colors.Color
	FontSizeLarge  FontSize
	FontSizeMedium FontSize
	FontSizeSmall  FontSize
	// Padding is the distance from the window's top-left at which the first
	// widget is placed.
	Padding float32
	Align   Align

	Slider *SliderStyle
	Label  *LabelStyle
}

func DefaultTheme() *Theme {
	return &Theme{
		Name:           "default",
		Background:     colors.DarkGray,
		ShapeColor:     colors.Teal,
		FrameColor:     colors.Charcoal,
		FrameWidth:     1,
		LabelColor:     colors.White,
		FontSizeLarge:  26,
		FontSizeMedium: 18,
		FontSizeSmall:  12,
		Padding:        20,
		Align:          Align{Horizontal: AlignLeft, Vertical: AlignTop},
	}
}

type themeFile struct {
	Name       string   `yaml:"name"`
	Background *string  `yaml:"background"`
	ShapeColor *string  `yaml:"shape_color"`
	FrameColor *string  `yaml:"frame_color"`
	FrameWidth *float32 `yaml:"frame_width"`
	LabelColor *string  `yaml:"label_color"`
	FontSize   struct {
		Large  *FontSize `yaml:"large"`
		Medium *FontSize `yaml:"medium"`
		Small  *FontSize `yaml:"small"`
	} `yaml:"font_size"`
	Padding *float32 `yaml:"padding"`
	Align   struct {
		Horizontal string `yaml:"horizontal"`
		Vertical   string `yaml:"vertical"`
	} `yaml:"align"`
	Slider *styleFile `yaml:"slider"`
	Label  *struct {
		Color    *string   `yaml:"color"`
		FontSize *FontSize `yaml:"font_size"`
	} `yaml:"label"`
}

type styleFile struct {
	Color         *string   `yaml:"color"`
	Frame         *float32  `yaml:"frame"`
	FrameColor    *string   `yaml:"frame_color"`
	LabelColor    *string   `yaml:"label_color"`
	LabelFontSize *FontSize `yaml:"label_font_size"`
}

// LoadTheme decodes a YAML theme. Fields missing from the document keep the
// values of DefaultTheme.
func LoadTheme(r io.Reader) (*Theme, error) {
	var f themeFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode theme: %w", err)
	}

	t := DefaultTheme()
	if f.Name != "" {
		t.Name = f.Name
	}
	var err error
	setColor := func(dst *colors.Color, src *string, field string) {
		if src == nil || err != nil {
			return
		}
		c, cerr := colors.Hex(*src)
		if cerr != nil {
			err = fmt.Errorf("theme %s: %w", field, cerr)
			return
		}
		*dst = c
	}
	setColor(&t.Background, f.Background, "background")
	setColor(&t.ShapeColor, f.ShapeColor, "shape_color")
	setColor(&t.FrameColor, f.FrameColor, "frame_color")
	setColor(&t.LabelColor, f.LabelColor, "label_color")
	if f.FrameWidth != nil {
		t.FrameWidth = *f.FrameWidth
	}
	if f.FontSize.Large != nil {
		t.FontSizeLarge = *f.FontSize.Large
	}
	if f.FontSize.Medium != nil {
		t.FontSizeMedium = *f.FontSize.Medium
	}
	if f.FontSize.Small != nil {
		t.FontSizeSmall = *f.FontSize.Small
	}
	if f.Padding != nil {
		t.Padding = *f.Padding
	}
	if f.Align.Horizontal != "" {
		h, herr := parseHorizontalAlign(f.Align.Horizontal)
		if herr != nil {
			return nil, herr
		}
		t.Align.Horizontal = h
	}
	if f.Align.Vertical != "" {
		v, verr := parseVerticalAlign(f.Align.Vertical)
		if verr != nil {
			return nil, verr
		}
		t.Align.Vertical = v
	}

	if f.Slider != nil {
		s := &SliderStyle{Frame: f.Slider.Frame, LabelFontSize: f.Slider.LabelFontSize}
		optColor := func(src *string, field string) *colors.Color {
			if src == nil {
				return nil
			}
			var c colors.Color
			setColor(&c, src, "slider."+field)
			return &c
		}
		s.Color = optColor(f.Slider.Color, "color")
		s.FrameColor = optColor(f.Slider.FrameColor, "frame_color")
		s.LabelColor = optColor(f.Slider.LabelColor, "label_color")
		t.Slider = s
	}
	if f.Label != nil {
		l := &LabelStyle{FontSize: f.Label.FontSize}
		if f.Label.Color != nil {
			var c colors.Color
			setColor(&c, f.Label.Color, "label.color")
			l.Color = &c
		}
		t.Label = l
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func parseHorizontalAlign(s string) (HorizontalAlign, error) {
	switch strings.ToLower(s) {
	case "left":
		return AlignLeft, nil
	case "middle", "center":
		return AlignMiddleX, nil
	case "right":
		return AlignRight, nil
	}
	return 0, fmt.Errorf("theme align.horizontal: unknown value %q", s)
}

func parseVerticalAlign(s string) (VerticalAlign, error) {
	switch strings.ToLower(s) {
	case "top":
		return AlignTop, nil
	case "middle", "center":
		return AlignMiddleY, nil
	case "bottom":
		return AlignBottom, nil
	}
	return 0, fmt.Errorf("theme align.vertical: unknown value %q", s)
}
