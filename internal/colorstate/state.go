package colorstate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/ironsheep/color-convert-mcp/internal/colorconv"
)

var (
	// ErrInvalidNumber reports textual input that is not an integer.
	ErrInvalidNumber = errors.New("invalid number")

	// ErrInvalidComponent reports a model/index pair that does not exist or
	// a value list of the wrong length.
	ErrInvalidComponent = errors.New("invalid component")
)

// DefaultColor is the mid gray a new State starts with.
var DefaultColor = colorconv.RGB{R: 128, G: 128, B: 128}

// Source tells whether an update came from the user or was recomputed.
type Source int

const (
	SourceUser Source = iota
	SourceDerived
)

func (s Source) String() string {
	if s == SourceDerived {
		return "derived"
	}
	return "user"
}

// Update carries new component values for one model. Edited names the
// model whose change produced a notification.
type Update struct {
	Model  Model
	Values []int
	Source Source
	Edited Model
}

// Listener receives one Update per model after every change.
type Listener func(Update)

// State holds the current color in canonical RGB form.
//
// State is safe for concurrent use. Listeners run on the goroutine that made
// the change, after the internal lock has been released, so they may call
// back into State.
type State struct {
	mu        sync.Mutex
	conv      colorconv.Converter
	rgb       colorconv.RGB
	listeners map[int]Listener
	nextID    int
}

// NewState creates a State holding initial, clamped to the RGB range.
func NewState(conv colorconv.Converter, initial colorconv.RGB) *State {
	return &State{
		conv:      conv,
		rgb:       initial.Clamp(),
		listeners: make(map[int]Listener),
	}
}

// Converter returns the converter used for all derived views.
func (s *State) Converter() colorconv.Converter {
	return s.conv
}

// Snapshot returns the current color in all three models.
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return newSnapshot(s.conv, s.rgb)
}

// Subscribe registers fn for change notifications. The returned function
// removes it again.
func (s *State) Subscribe(fn Listener) (cancel func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// SetRGB makes c (clamped) the current color.
func (s *State) SetRGB(c colorconv.RGB) Snapshot {
	return s.commit(ModelRGB, c.Clamp())
}

// SetCMYK clamps c, converts it to RGB and makes that the current color.
func (s *State) SetCMYK(c colorconv.CMYK) Snapshot {
	return s.commit(ModelCMYK, s.conv.CMYKToRGB(c.Clamp()))
}

// SetHLS wraps the hue, clamps lightness and saturation, converts to RGB
// and makes that the current color.
func (s *State) SetHLS(c colorconv.HLS) Snapshot {
	return s.commit(ModelHLS, s.conv.HLSToRGB(c.Clamp()))
}

// SetHex parses a "#RRGGBB" or "#RGB" string and makes it the current color.
func (s *State) SetHex(hex string) (Snapshot, error) {
	c, err := colorconv.ParseHex(hex)
	if err != nil {
		return s.Snapshot(), err
	}
	return s.SetRGB(c), nil
}

// Set replaces all components of m. values must have m.Width() entries.
func (s *State) Set(m Model, values []int) (Snapshot, error) {
	if err := checkWidth(m, values); err != nil {
		return s.Snapshot(), err
	}
	return s.commit(m, s.toRGB(m, values)), nil
}

func checkWidth(m Model, values []int) error {
	if len(values) != m.Width() || m.Width() == 0 {
		return fmt.Errorf("%w: %s takes %d values, got %d",
			ErrInvalidComponent, m, m.Width(), len(values))
	}
	return nil
}

// toRGB clamps values of m and converts them to RGB.
func (s *State) toRGB(m Model, values []int) colorconv.RGB {
	switch m {
	case ModelCMYK:
		return s.conv.CMYKToRGB(colorconv.CMYK{C: values[0], M: values[1], Y: values[2], K: values[3]}.Clamp())
	case ModelHLS:
		return s.conv.HLSToRGB(colorconv.HLS{H: values[0], L: values[1], S: values[2]}.Clamp())
	default:
		return colorconv.RGB{R: values[0], G: values[1], B: values[2]}.Clamp()
	}
}

// Apply processes an update from a display. Derived updates are dropped so
// that programmatic refreshes never re-enter conversion.
func (s *State) Apply(u Update) (Snapshot, error) {
	if u.Source == SourceDerived {
		return s.Snapshot(), nil
	}
	return s.Set(u.Model, u.Values)
}

// SetComponent moves one slider of m to value. The remaining components of
// m are taken from the current derived view; reading them and storing the
// result happen under one lock, so concurrent edits are not lost.
func (s *State) SetComponent(m Model, index, value int) (Snapshot, error) {
	return s.update(m, func(cur Snapshot) (colorconv.RGB, error) {
		values := cur.Values(m)
		if index < 0 || index >= len(values) {
			return colorconv.RGB{}, fmt.Errorf("%w: %s has no component %d", ErrInvalidComponent, m, index)
		}
		values[index] = value
		return s.toRGB(m, values), nil
	})
}

// SetComponentText parses text as an integer and applies it to component
// index of m. If text is not a number the state is left unchanged and the
// returned snapshot carries the last valid value for the field.
func (s *State) SetComponentText(m Model, index int, text string) (Snapshot, error) {
	v, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return s.Snapshot(), fmt.Errorf("%w: %q", ErrInvalidNumber, text)
	}
	return s.SetComponent(m, index, v)
}

// commit stores rgb and pushes all three models to listeners.
func (s *State) commit(edited Model, rgb colorconv.RGB) Snapshot {
	snap, _ := s.update(edited, func(Snapshot) (colorconv.RGB, error) {
		return rgb, nil
	})
	return snap
}

// update computes the next color from the current one while holding the
// lock, stores it, then notifies listeners of all three models. Every pushed
// update is derived, including the one for the edited model, so displays may
// echo them back through Apply without effect. If next fails the state is
// unchanged and listeners are not called.
func (s *State) update(edited Model, next func(cur Snapshot) (colorconv.RGB, error)) (Snapshot, error) {
	s.mu.Lock()
	rgb, err := next(newSnapshot(s.conv, s.rgb))
	if err != nil {
		snap := newSnapshot(s.conv, s.rgb)
		s.mu.Unlock()
		return snap, err
	}
	s.rgb = rgb
	snap := newSnapshot(s.conv, rgb)
	listeners := make([]Listener, 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, m := range Models {
		u := Update{Model: m, Values: snap.Values(m), Source: SourceDerived, Edited: edited}
		for _, fn := range listeners {
			fn(u)
		}
	}
	return snap, nil
}
