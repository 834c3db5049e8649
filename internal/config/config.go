// Package config holds the settings of the hallofshame command.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all settings of a run. Field names correspond to the keys
// of the config file and to the command line flags.
type Config struct {
	Entries string // JSON entry list
	Font    string // font sheet image; empty selects the built-in glyphs
	Panel   string // where to store the panel on its own; empty to skip
	Base    string // image to draw the panel onto; empty to skip
	Out     string // output for the composite image; empty means Base

	// X and Y place the top-left corner of the panel on the base image.
	X, Y int

	PerRow      int
	EntryWidth  int
	EntryHeight int
	Width       int

	Scale   int  // enlargement of the stored panel
	Preview bool // print the panel to the terminal

	Post    string // command run after the composite has been written
	PostDir string // working directory of Post
}

// Default returns the settings used for the published panel.
func Default() Config {
	return Config{
		Entries:     "hallofshame.json",
		Panel:       "hall_of_shame.png",
		X:           383,
		Y:           0,
		PerRow:      4,
		EntryWidth:  32,
		EntryHeight: 9,
		Width:       130,
		Scale:       1,
	}
}

// Set assigns value to the setting named key.
func (c *Config) Set(key, value string) error {
	var err error
	switch key {
	case "entries":
		c.Entries = value
	case "font":
		c.Font = value
	case "panel":
		c.Panel = value
	case "base":
		c.Base = value
	case "out":
		c.Out = value
	case "x":
		c.X, err = strconv.Atoi(value)
	case "y":
		c.Y, err = strconv.Atoi(value)
	case "per-row":
		c.PerRow, err = strconv.Atoi(value)
	case "entry-width":
		c.EntryWidth, err = strconv.Atoi(value)
	case "entry-height":
		c.EntryHeight, err = strconv.Atoi(value)
	case "width":
		c.Width, err = strconv.Atoi(value)
	case "scale":
		c.Scale, err = strconv.Atoi(value)
	case "preview":
		c.Preview, err = strconv.ParseBool(value)
	case "post":
		c.Post = value
	case "post-dir":
		c.PostDir = value
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	return nil
}

// Parse reads "key value" lines on top of the defaults. Blank lines and
// lines starting with '#' are ignored. The value is the rest of the line
// after the key, with surrounding space removed.
func Parse(content string) (Config, error) {
	cfg := Default()
	for i, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key := strings.Fields(line)[0]
		value := strings.TrimSpace(line[len(key):])
		if err := cfg.Set(key, value); err != nil {
			return Config{}, fmt.Errorf("line %d: %w", i+1, err)
		}
	}
	return cfg, nil
}

// Load parses the config file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := Parse(string(data))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Output returns the path of the composite image.
func (c *Config) Output() string {
	if c.Out != "" {
		return c.Out
	}
	return c.Base
}
