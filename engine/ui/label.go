package ui

import (
	"strings"

	"github.com/chewxy/math32"
	"github.com/hubastard/groveui/engine/colors"
)

const LabelKind = "Label"

// lineSpacing is the line height as a multiple of the font size.
const lineSpacing = 1.25

// Label is a run of text, optionally word-wrapped at a maximum width.
type Label struct {
	text     string
	pos      Position
	hAlign   *HorizontalAlign
	vAlign   *VerticalAlign
	depth    Depth
	maxWidth float32
	style    LabelStyle
}

type LabelStyle struct {
	Color    *colors.Color
	FontSize *FontSize
}

// LabelState is the laid-out text and the inputs it was laid out from.
type LabelState struct {
	Source   string
	Text     string // wrapped lines joined by '\n'
	MaxWidth float32
	FontSize FontSize
	Dim      Dimensions
}

func NewLabel(text string) Label { return Label{text: text, pos: Down(20)} }

func (l Label) Text(s string) Label            { l.text = s; return l }
func (l Label) Position(p Position) Label      { l.pos = p; return l }
func (l Label) XY(x, y float32) Label          { l.pos = Absolute(x, y); return l }
func (l Label) HAlign(a HorizontalAlign) Label { l.hAlign = &a; return l }
func (l Label) VAlign(a VerticalAlign) Label   { l.vAlign = &a; return l }
func (l Label) Depth(d Depth) Label            { l.depth = d; return l }
func (l Label) MaxWidth(w float32) Label       { l.maxWidth = w; return l }
func (l Label) Color(c colors.Color) Label     { l.style.Color = &c; return l }
func (l Label) FontSize(size FontSize) Label   { l.style.FontSize = &size; return l }
func (l Label) Kind() string                   { return LabelKind }
func (l Label) InitState() LabelState          { return LabelState{} }
func (l Label) Style() LabelStyle              { return l.style }

func (l Label) Update(prev WidgetState[LabelState], style LabelStyle, env UpdateEnv) (*LabelState, Geometry) {
	theme := env.Theme()
	size := style.FontSizeOf(theme)
	st := prev.State

	var next *LabelState
	if st.Source != l.text || st.MaxWidth != l.maxWidth || st.FontSize != size {
		text, w, lines := wrapText(l.text, l.maxWidth, size, env)
		next = &LabelState{
			Source:   strings.Clone(l.text),
			Text:     text,
			MaxWidth: l.maxWidth,
			FontSize: size,
			Dim:      Dimensions{w, float32(lines) * lineHeight(size)},
		}
		st = *next
	}

	hAlign, vAlign := theme.Align.Horizontal, theme.Align.Vertical
	if l.hAlign != nil {
		hAlign = *l.hAlign
	}
	if l.vAlign != nil {
		vAlign = *l.vAlign
	}
	xy := env.ScreenPosition(l.pos, st.Dim, hAlign, vAlign)
	return next, Geometry{XY: xy, Dim: st.Dim, Depth: l.depth}
}

func (l Label) Draw(state WidgetState[LabelState], style LabelStyle, env DrawEnv) Element {
	st := state.State
	el := Element{XY: state.XY, Dim: state.Dim, Depth: state.Depth}
	if st.Text == "" {
		return el
	}
	c := style.ColorOf(env.Theme())
	at := state.XY.Floor()
	lh := lineHeight(st.FontSize)
	for i, line := range strings.Split(st.Text, "\n") {
		if line == "" {
			continue
		}
		y := math32.Floor(float32(i) * lh)
		el.Forms = append(el.Forms,
			TextForm(0, y, env.TextWidth(st.FontSize, line), line, st.FontSize, c).Shift(at[0], at[1]))
	}
	return el
}

func (s LabelStyle) ColorOf(t *Theme) colors.Color {
	return resolve(s.Color, t.Label, func(k *LabelStyle) *colors.Color { return k.Color }, t.LabelColor)
}

func (s LabelStyle) FontSizeOf(t *Theme) FontSize {
	return resolve(s.FontSize, t.Label, func(k *LabelStyle) *FontSize { return k.FontSize }, t.FontSizeMedium)
}

func lineHeight(size FontSize) float32 { return float32(size) * lineSpacing }

// wrapText breaks text at spaces so no line exceeds maxWidth, unless a single
// word is wider. maxWidth <= 0 only breaks at newlines. It returns the wrapped
// text, the widest line and the line count.
func wrapText(text string, maxWidth float32, size FontSize, m TextMeasurer) (string, float32, int) {
	if text == "" {
		return "", 0, 0
	}
	var (
		out    strings.Builder
		widest float32
		lines  int
	)
	emit := func(line string, w float32) {
		if lines > 0 {
			out.WriteByte('\n')
		}
		out.WriteString(line)
		widest = max(widest, w)
		lines++
	}

	spaceW := m.TextWidth(size, " ")
	for _, raw := range strings.Split(text, "\n") {
		if maxWidth <= 0 {
			emit(raw, m.TextWidth(size, raw))
			continue
		}
		words := strings.Fields(raw)
		if len(words) == 0 {
			emit("", 0)
			continue
		}
		current := words[0]
		currentW := m.TextWidth(size, current)
		for _, word := range words[1:] {
			wordW := m.TextWidth(size, word)
			if currentW+spaceW+wordW > maxWidth {
				emit(current, currentW)
				current, currentW = word, wordW
				continue
			}
			current += " " + word
			currentW += spaceW + wordW
		}
		emit(current, currentW)
	}
	return out.String(), widest, lines
}
