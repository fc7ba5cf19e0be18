package config

// Deck is a slider deck document: a name, slider settings and the slides.
type Deck struct {
	Name   string   `yaml:"name" toml:"name" validate:"required,min=1,max=100"`
	Slider Settings `yaml:"slider,omitempty" toml:"slider,omitempty"`
	Slides []Slide  `yaml:"slides" toml:"slides" validate:"required,min=1,max=500,dive"`
}

// Settings mirrors the slider options. Zero values select the defaults;
// Arrows, Autoplay and TransitionTime are pointers because their zero value is
// meaningful.
type Settings struct {
	Arrows         *bool    `yaml:"arrows,omitempty" toml:"arrows,omitempty"`
	Autoplay       *bool    `yaml:"autoplay,omitempty" toml:"autoplay,omitempty"`
	ClassName      string   `yaml:"class_name,omitempty" toml:"class_name,omitempty" validate:"omitempty,class_name"`
	DelayMS        int      `yaml:"delay_ms,omitempty" toml:"delay_ms,omitempty" validate:"omitempty,min=1,max=3600000"`
	Direction      string   `yaml:"direction,omitempty" toml:"direction,omitempty" validate:"omitempty,oneof=left right"`
	Dots           bool     `yaml:"dots,omitempty" toml:"dots,omitempty"`
	InitialSlide   int      `yaml:"initial_slide,omitempty" toml:"initial_slide,omitempty" validate:"min=0"`
	Transition     string   `yaml:"transition,omitempty" toml:"transition,omitempty" validate:"omitempty,transition"`
	TransitionTime *float64 `yaml:"transition_time,omitempty" toml:"transition_time,omitempty" validate:"omitempty,min=0,max=60"`
	SettleDelayMS  int      `yaml:"settle_delay_ms,omitempty" toml:"settle_delay_ms,omitempty" validate:"omitempty,min=1,max=10000"`
	GotoPolicy     string   `yaml:"goto_policy,omitempty" toml:"goto_policy,omitempty" validate:"omitempty,oneof=passthrough wrap clamp"`
	Dot            string   `yaml:"dot,omitempty" toml:"dot,omitempty" validate:"omitempty,max=8"`
	Arrow          Arrow    `yaml:"arrow,omitempty" toml:"arrow,omitempty"`
	Viewport       Viewport `yaml:"viewport,omitempty" toml:"viewport,omitempty"`
}

// Arrow holds the arrow glyphs.
type Arrow struct {
	Left  string `yaml:"left,omitempty" toml:"left,omitempty" validate:"omitempty,max=8"`
	Right string `yaml:"right,omitempty" toml:"right,omitempty" validate:"omitempty,max=8"`
}

// Viewport sizes the slide area of static renders, in terminal cells.
type Viewport struct {
	Width  int `yaml:"width,omitempty" toml:"width,omitempty" validate:"omitempty,min=12,max=400"`
	Height int `yaml:"height,omitempty" toml:"height,omitempty" validate:"omitempty,min=3,max=200"`
}

// Slide is one child view. At least one of Title and Body must be set.
type Slide struct {
	Title string `yaml:"title,omitempty" toml:"title,omitempty" validate:"max=200"`
	Body  string `yaml:"body,omitempty" toml:"body,omitempty"`
}
