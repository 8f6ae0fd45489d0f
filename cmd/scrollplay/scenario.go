package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/grindlemire/go-scroll"
)

// sizeConfig is a width/height pair in pixels.
type sizeConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// surfaceConfig describes the scrollable surface a scenario runs against.
type surfaceConfig struct {
	Content  sizeConfig `yaml:"content"`
	Viewport sizeConfig `yaml:"viewport"`
}

// stepConfig is one scroll request. To mirrors the resolver's input
// surface: a number, a string form, or a per-axis map of either.
type stepConfig struct {
	To    any    `yaml:"to"`
	Axis  string `yaml:"axis"`
	Queue string `yaml:"queue"`
	Mode  string `yaml:"mode"`
}

// scenario is a parsed scenario file.
type scenario struct {
	Surface surfaceConfig `yaml:"surface"`
	Steps   []stepConfig  `yaml:"steps"`
}

// loadScenario reads and validates a scenario file.
func loadScenario(path string) (*scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}

	var sc scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}

	if sc.Surface.Viewport.Width <= 0 || sc.Surface.Viewport.Height <= 0 {
		return nil, fmt.Errorf("scenario needs a viewport with positive dimensions")
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("scenario has no steps")
	}
	return &sc, nil
}

// valueFromYAML converts a decoded YAML scalar into a primitive Value.
// Null, false, and the empty string all request no movement.
func valueFromYAML(v any) (scroll.Value, error) {
	switch v := v.(type) {
	case nil:
		return scroll.None(), nil
	case bool:
		if v {
			return scroll.Value{}, fmt.Errorf("'true' is not a position")
		}
		return scroll.None(), nil
	case int:
		return scroll.At(float64(v)), nil
	case float64:
		return scroll.At(v), nil
	case string:
		return scroll.Str(v), nil
	}
	return scroll.Value{}, fmt.Errorf("unsupported position type %T", v)
}

// targetFromYAML converts a decoded 'to' field into a Target.
func targetFromYAML(v any) (scroll.Target, error) {
	if m, ok := v.(map[string]any); ok {
		axes := make(map[string]scroll.Value, len(m))
		for k, raw := range m {
			val, err := valueFromYAML(raw)
			if err != nil {
				return scroll.Target{}, fmt.Errorf("axis %q: %w", k, err)
			}
			axes[k] = val
		}
		return scroll.TargetMap(axes), nil
	}
	val, err := valueFromYAML(v)
	if err != nil {
		return scroll.Target{}, err
	}
	return scroll.TargetValue(val), nil
}

// runScenario replays a scenario. When apply is false the steps are
// resolved and queued but never committed to the surface.
func runScenario(args []string, apply bool) error {
	if len(args) != 1 {
		return fmt.Errorf("expected exactly one scenario file")
	}
	sc, err := loadScenario(args[0])
	if err != nil {
		return err
	}

	surface := scroll.NewSurface(
		sc.Surface.Content.Width, sc.Surface.Content.Height,
		sc.Surface.Viewport.Width, sc.Surface.Viewport.Height,
	)
	queue := scroll.NewQueue()
	resolver := scroll.New(scroll.WithQueue(queue))

	// Queues drain in first-use order once every step has resolved.
	var order []string
	seen := map[string]bool{}

	for i, step := range sc.Steps {
		target, err := targetFromYAML(step.To)
		if err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
		mode, err := scroll.ParseMode(step.Mode)
		if err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}

		settings, err := scroll.ResolveOptions(scroll.Options{
			Axis:  step.Axis,
			Queue: step.Queue,
			Mode:  mode,
		}, target)
		if err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}

		coords, err := resolver.Resolve(target, surface, settings)
		if err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}

		queue.Push(settings.Queue, coords)
		if !seen[settings.Queue] {
			seen[settings.Queue] = true
			order = append(order, settings.Queue)
		}

		fmt.Printf("step %d: %s (queue=%s mode=%s axis=%s)\n",
			i+1, coords, settings.Queue, settings.Mode, settings.Axis)
	}

	if !apply {
		fmt.Printf("ok: %d steps resolved\n", len(sc.Steps))
		return nil
	}

	for _, name := range order {
		for {
			coords, ok := queue.Shift(name)
			if !ok {
				break
			}
			surface.Apply(coords)
		}
	}

	fmt.Printf("final: x=%d y=%d\n",
		surface.ScrollPos(scroll.AxisHorizontal),
		surface.ScrollPos(scroll.AxisVertical))
	return nil
}
