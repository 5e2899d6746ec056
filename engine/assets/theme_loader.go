package assets

import (
	"fmt"

	"github.com/hubastard/groveui/engine/ui"
)

// LoadTheme decodes the named UI theme. An empty name returns the default
// theme.
func LoadTheme(name string) (*ui.Theme, error) {
	if name == "" {
		return ui.DefaultTheme(), nil
	}
	f, err := open("themes", name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := ui.LoadTheme(f)
	if err != nil {
		return nil, fmt.Errorf("load theme %q: %w", name, err)
	}
	return t, nil
}
