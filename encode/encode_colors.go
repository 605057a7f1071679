package encode

import (
	"strings"

	"github.com/pdxmerge/pdx-format/go-pdx/ir"

	"github.com/fatih/color"
)

type Colorable struct {
	Kind ir.Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	KeyColor ColorAttr = iota
	OpColor
	ValueColor
	BraceColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	kinds := []ir.Kind{ir.IdentKind, ir.StringKind, ir.NumberKind, ir.BoolKind, ir.DateKind}
	for _, k := range kinds {
		able := Colorable{Kind: k, Attr: KeyColor}
		colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()
		able.Attr = OpColor
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
		able.Attr = BraceColor
		colors.Map[able] = color.RGB(128, 128, 128).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}

	able.Kind = ir.NumberKind
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()

	able.Kind = ir.BoolKind
	colors.Map[able] = color.CyanString

	able.Kind = ir.DateKind
	colors.Map[able] = color.RGB(198, 198, 46).SprintfFunc()

	able.Kind = ir.StringKind
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()

	able.Kind = ir.IdentKind
	colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()

	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(k ir.Kind, a ColorAttr, s string) string {
	return c.Get(k, a)(s)
}

func (c *Colors) Get(k ir.Kind, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Kind: k, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
