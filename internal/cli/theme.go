package cli

import (
	"fmt"

	"github.com/julianstephens/tugas/internal/theme"
)

type ThemeCmd struct {
	Mode string `arg:"" optional:"" enum:"light,dark,toggle," help:"Set the theme (light, dark) or toggle it."`
}

func (c *ThemeCmd) Run(ctx *Context) error {
	switch c.Mode {
	case "":
		fmt.Printf("Theme: %s\n", ctx.Themes.Load())
		return nil
	case "toggle":
		fmt.Printf("Theme: %s\n", ctx.Themes.Toggle())
		return nil
	default:
		if err := ctx.Themes.Set(theme.Mode(c.Mode)); err != nil {
			return fmt.Errorf("failed to persist theme: %w", err)
		}
		fmt.Printf("Theme: %s\n", c.Mode)
		return nil
	}
}
