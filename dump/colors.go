package dump

import (
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	vellum "github.com/vellum-format/go-vellum"
)

type Colorable struct {
	Kind vellum.Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	TagColor ColorAttr = iota
	AttrKeyColor
	AttrValColor
	ContentColor
	MarkerColor
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
	for _, k := range vellum.Kinds() {
		able := Colorable{
			Kind: k,
			Attr: MarkerColor,
		}
		colors.Map[able] = color.RGB(128, 128, 128).SprintfFunc()
	}
	able := Colorable{Kind: vellum.ElementKind}

	able.Attr = TagColor
	colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
	able.Attr = AttrKeyColor
	colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()
	able.Attr = AttrValColor
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()

	able = Colorable{Kind: vellum.TextKind, Attr: ContentColor}
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()

	able = Colorable{Kind: vellum.RawKind, Attr: ContentColor}
	colors.Map[able] = color.RGB(198, 198, 46).SprintfFunc()

	able = Colorable{Kind: vellum.FragmentKind, Attr: MarkerColor}
	colors.Map[able] = color.CyanString

	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(k vellum.Kind, a ColorAttr, s string) string {
	return c.Get(k, a)(s)
}

func (c *Colors) Get(k vellum.Kind, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Kind: k, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
