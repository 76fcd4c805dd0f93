package config

func boolPtr(b bool) *bool { return &b }

func DefaultConfig() Config {
	return Config{
		List: ListConfig{
			ShowFull: boolPtr(false),
			CI:       boolPtr(false),
		},
		UI: UIConfig{
			Theme: "dark",
		},
	}
}
