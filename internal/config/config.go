package config

type Config struct {
	List ListConfig `toml:"list"`
	UI   UIConfig   `toml:"ui"`
}

type ListConfig struct {
	ShowFull *bool `toml:"show_full"`
	CI       *bool `toml:"ci"`
}

type UIConfig struct {
	Theme string `toml:"theme"`
}

// ShowFull resolves the pointer field; defaults always set it.
func (c *Config) ShowFull() bool {
	return c.List.ShowFull != nil && *c.List.ShowFull
}

// CI resolves the pointer field; defaults always set it.
func (c *Config) CI() bool {
	return c.List.CI != nil && *c.List.CI
}
