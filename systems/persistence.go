package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/gfxtier/components"
	cfg "github.com/automoto/gfxtier/config"
	"github.com/automoto/gfxtier/tier"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// SavedOptions represents the options data stored on disk
type SavedOptions struct {
	ScreenPercentage int `json:"screenPercentage"`
	KeyboardScheme   int `json:"fpsKeyboardScheme"`
	UpsamplingMethod int `json:"upsamplingMethod"`
	WindowMode       int `json:"windowMode"`
	Quality          int `json:"quality"`
	Width            int `json:"width"`
	Height           int `json:"height"`
}

// ItemStore is the subset of *gdata.Manager used for options storage.
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var optionStore ItemStore

// InitPersistence initializes the gdata manager for options storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Options.AppName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	optionStore = m
	return nil
}

// UseStore replaces the options store. Passing nil disables persistence.
func UseStore(s ItemStore) {
	optionStore = s
}

// LoadOptions loads options from disk. It returns nil, nil when there is
// nothing saved or persistence is unavailable.
func LoadOptions() (*SavedOptions, error) {
	if optionStore == nil {
		return nil, nil
	}

	data, err := optionStore.LoadItem(cfg.Options.SaveItem)
	if err != nil {
		log.Printf("Warning: Could not load options: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved options yet, use defaults
		return nil, nil
	}

	var saved SavedOptions
	if err := json.Unmarshal(data, &saved); err != nil {
		log.Printf("Warning: Could not parse saved options: %v", err)
		return nil, err
	}
	return &saved, nil
}

// SaveOptions saves options to disk
func SaveOptions(s *SavedOptions) error {
	if optionStore == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize options: %v", err)
		return err
	}

	if err := optionStore.SaveItem(cfg.Options.SaveItem, data); err != nil {
		log.Printf("Warning: Could not save options: %v", err)
		return err
	}
	return nil
}

// SaveCurrentOptions saves the values held by the Options component
func SaveCurrentOptions(o *components.OptionsData) {
	_ = SaveOptions(&SavedOptions{
		ScreenPercentage: o.ScreenPercentage,
		KeyboardScheme:   int(o.Keyboard),
		UpsamplingMethod: int(o.Upsampling),
		WindowMode:       int(o.WindowMode),
		Quality:          o.Quality,
		Width:            o.Resolution.Width,
		Height:           o.Resolution.Height,
	})
}

// ApplySavedOptions copies loaded values into the Options component.
// Out-of-range values fall back to the configured defaults.
func ApplySavedOptions(e *ecs.ECS, saved *SavedOptions) {
	if saved == nil {
		return
	}
	opts := GetOrCreateOptions(e)

	opts.ScreenPercentage = cfg.Options.DefaultScreenPercentage
	if saved.ScreenPercentage > 0 {
		opts.ScreenPercentage = cfg.ClampScreenPercentage(saved.ScreenPercentage)
	}

	opts.Keyboard = cfg.KeyboardScheme(saved.KeyboardScheme)
	if _, ok := cfg.Input.Schemes[opts.Keyboard]; !ok {
		opts.Keyboard = cfg.Options.DefaultKeyboard
	}

	opts.Upsampling = cfg.UpsamplingMethod(saved.UpsamplingMethod)
	if !opts.Upsampling.Valid() {
		opts.Upsampling = cfg.Options.DefaultUpsampling
	}

	opts.WindowMode = cfg.WindowMode(saved.WindowMode)
	if !opts.WindowMode.Valid() {
		opts.WindowMode = cfg.Options.DefaultWindowMode
	}

	if saved.Quality >= 0 {
		opts.Quality = saved.Quality
	}
	if saved.Width > 0 && saved.Height > 0 {
		opts.Resolution = tier.Mode{Width: saved.Width, Height: saved.Height}
	}
}
