package models

// Settings represents the application configuration
type Settings struct {
	Data   DataSettings   `yaml:"data"`
	Layout LayoutSettings `yaml:"layout"`
	UI     UISettings     `yaml:"ui"`
}

// DataSettings controls where the dataset comes from
type DataSettings struct {
	Path  string `yaml:"path"`
	Watch bool   `yaml:"watch"`
}

// LayoutSettings controls the card-size policy used by the layout engine
type LayoutSettings struct {
	Gutter        int           `yaml:"gutter"`
	BucketSpacing int           `yaml:"bucket_spacing"`
	CardWidths    CardDimension `yaml:"card_widths"`
	CardHeights   CardDimension `yaml:"card_heights"`
	PinnedBuckets []string      `yaml:"pinned_buckets,omitempty"`
}

// CardDimension holds one dimension per zoom level. Values must be
// monotonically non-decreasing from compact to large.
type CardDimension struct {
	Compact     int `yaml:"compact"`
	Default     int `yaml:"default"`
	Comfortable int `yaml:"comfortable"`
	Large       int `yaml:"large"`
}

// At returns the dimension for the given zoom level.
func (c CardDimension) At(zoom ZoomLevel) int {
	switch zoom {
	case ZoomCompact:
		return c.Compact
	case ZoomComfortable:
		return c.Comfortable
	case ZoomLarge:
		return c.Large
	default:
		return c.Default
	}
}

// UISettings controls render-surface preferences
type UISettings struct {
	ShowDetail bool `yaml:"show_detail"`
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Data: DataSettings{
			Path:  "landscape.yaml",
			Watch: false,
		},
		Layout: LayoutSettings{
			Gutter:        20,
			BucketSpacing: 40,
			CardWidths: CardDimension{
				Compact:     60,
				Default:     100,
				Comfortable: 140,
				Large:       180,
			},
			CardHeights: CardDimension{
				Compact:     50,
				Default:     80,
				Comfortable: 110,
				Large:       140,
			},
		},
		UI: UISettings{
			ShowDetail: true,
		},
	}
}
