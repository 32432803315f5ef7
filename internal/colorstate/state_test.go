package colorstate

import (
	"errors"
	"sync"
	"testing"

	"github.com/ironsheep/color-convert-mcp/internal/colorconv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestState() *State {
	return NewState(colorconv.NewConverter(colorconv.RoundHalfEven), DefaultColor)
}

func TestNewState_Default(t *testing.T) {
	s := newTestState()
	snap := s.Snapshot()

	assert.Equal(t, colorconv.RGB{R: 128, G: 128, B: 128}, snap.RGB)
	assert.Equal(t, colorconv.CMYK{K: 50}, snap.CMYK)
	assert.Equal(t, colorconv.HLS{H: 0, L: 50, S: 0}, snap.HLS)
	assert.Equal(t, "#808080", snap.Hex)
	assert.Equal(t, "RGB: (128, 128, 128)\nCMYK: (0, 0, 0, 50)\nHLS: (0, 50, 0)", snap.Info())
}

func TestNewState_ClampsInitial(t *testing.T) {
	s := NewState(colorconv.Converter{}, colorconv.RGB{R: -1, G: 300, B: 7})
	assert.Equal(t, colorconv.RGB{R: 0, G: 255, B: 7}, s.Snapshot().RGB)
}

func TestSetRGB_DerivesOtherModels(t *testing.T) {
	s := newTestState()
	snap := s.SetRGB(colorconv.RGB{R: 51, G: 102, B: 153})

	assert.Equal(t, colorconv.CMYK{C: 67, M: 33, Y: 0, K: 40}, snap.CMYK)
	assert.Equal(t, colorconv.HLS{H: 210, L: 40, S: 50}, snap.HLS)
	assert.Equal(t, "#336699", snap.Hex)
	assert.Equal(t, snap, s.Snapshot())
}

func TestSetRGB_Clamps(t *testing.T) {
	s := newTestState()
	snap := s.SetRGB(colorconv.RGB{R: 400, G: -20, B: 0})
	assert.Equal(t, colorconv.RGB{R: 255, G: 0, B: 0}, snap.RGB)
	assert.Equal(t, colorconv.HLS{H: 0, L: 50, S: 100}, snap.HLS)
}

func TestSetCMYK(t *testing.T) {
	s := newTestState()
	snap := s.SetCMYK(colorconv.CMYK{C: 0, M: 50, Y: 100, K: 0})

	assert.Equal(t, colorconv.RGB{R: 255, G: 128, B: 0}, snap.RGB)
	assert.Equal(t, colorconv.HLS{H: 30, L: 50, S: 100}, snap.HLS)
	assert.Equal(t, colorconv.CMYK{C: 0, M: 50, Y: 100, K: 0}, snap.CMYK)
}

func TestSetCMYK_Clamps(t *testing.T) {
	s := newTestState()
	snap := s.SetCMYK(colorconv.CMYK{C: -10, M: 0, Y: 0, K: 250})
	assert.Equal(t, colorconv.RGB{}, snap.RGB)
	assert.Equal(t, colorconv.CMYK{K: 100}, snap.CMYK)
}

func TestSetHLS(t *testing.T) {
	s := newTestState()
	snap := s.SetHLS(colorconv.HLS{H: 10, L: 50, S: 100})

	assert.Equal(t, colorconv.RGB{R: 255, G: 42, B: 0}, snap.RGB)
	assert.Equal(t, colorconv.HLS{H: 10, L: 50, S: 100}, snap.HLS)
}

func TestSetHLS_WrapsHue(t *testing.T) {
	s := newTestState()
	assert.Equal(t, colorconv.RGB{R: 255, G: 0, B: 43}, s.SetHLS(colorconv.HLS{H: -10, L: 50, S: 100}).RGB)
	assert.Equal(t, colorconv.RGB{R: 255, G: 0, B: 0}, s.SetHLS(colorconv.HLS{H: 360, L: 50, S: 100}).RGB)
}

func TestSetHLS_GrayDropsHue(t *testing.T) {
	s := newTestState()
	snap := s.SetHLS(colorconv.HLS{H: 200, L: 80, S: 0})
	assert.Equal(t, colorconv.RGB{R: 204, G: 204, B: 204}, snap.RGB)
	assert.Equal(t, 0, snap.HLS.H, "achromatic colors carry no hue")
}

func TestSet_Idempotent(t *testing.T) {
	for _, m := range Models {
		t.Run(m.String(), func(t *testing.T) {
			s := newTestState()
			values := map[Model][]int{
				ModelRGB:  {12, 200, 77},
				ModelCMYK: {20, 40, 60, 10},
				ModelHLS:  {300, 35, 65},
			}[m]

			first, err := s.Set(m, values)
			require.NoError(t, err)
			second, err := s.Set(m, values)
			require.NoError(t, err)
			assert.Equal(t, first, second)
		})
	}
}

func TestSet_WrongWidth(t *testing.T) {
	s := newTestState()
	before := s.Snapshot()

	_, err := s.Set(ModelCMYK, []int{1, 2, 3})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidComponent))
	assert.Equal(t, before, s.Snapshot())
}

func TestSetComponent(t *testing.T) {
	s := newTestState()

	snap, err := s.SetComponent(ModelRGB, 0, 255)
	require.NoError(t, err)
	assert.Equal(t, colorconv.RGB{R: 255, G: 128, B: 128}, snap.RGB)

	snap, err = s.SetComponent(ModelCMYK, 3, 100)
	require.NoError(t, err)
	assert.Equal(t, colorconv.RGB{}, snap.RGB)

	_, err = s.SetComponent(ModelHLS, 3, 10)
	assert.True(t, errors.Is(err, ErrInvalidComponent))
	_, err = s.SetComponent(ModelRGB, -1, 10)
	assert.True(t, errors.Is(err, ErrInvalidComponent))
}

func TestSetComponentText(t *testing.T) {
	s := newTestState()

	snap, err := s.SetComponentText(ModelRGB, 1, " 10 ")
	require.NoError(t, err)
	assert.Equal(t, 10, snap.RGB.G)

	// Out of range text clamps to the boundary.
	snap, err = s.SetComponentText(ModelRGB, 1, "999")
	require.NoError(t, err)
	assert.Equal(t, 255, snap.RGB.G)
}

func TestSetComponentText_RevertsOnParseError(t *testing.T) {
	s := newTestState()
	s.SetRGB(colorconv.RGB{R: 1, G: 2, B: 3})

	for _, text := range []string{"abc", "", "12.5", "0x10"} {
		t.Run(text, func(t *testing.T) {
			snap, err := s.SetComponentText(ModelRGB, 2, text)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidNumber))
			assert.Equal(t, 3, snap.Values(ModelRGB)[2], "field reverts to last valid value")
			assert.Equal(t, colorconv.RGB{R: 1, G: 2, B: 3}, s.Snapshot().RGB)
		})
	}
}

func TestSetHex(t *testing.T) {
	s := newTestState()

	snap, err := s.SetHex("#ff8000")
	require.NoError(t, err)
	assert.Equal(t, colorconv.RGB{R: 255, G: 128, B: 0}, snap.RGB)

	snap, err = s.SetHex("not a color")
	require.Error(t, err)
	assert.True(t, errors.Is(err, colorconv.ErrInvalidHex))
	assert.Equal(t, colorconv.RGB{R: 255, G: 128, B: 0}, snap.RGB)
}

// display mimics a UI panel that reports every value it is shown as an edit.
type display struct {
	mu       sync.Mutex
	state    *State
	shown    map[Model][]int
	received int
}

func (d *display) onUpdate(u Update) {
	d.mu.Lock()
	d.shown[u.Model] = u.Values
	d.received++
	d.mu.Unlock()

	// Echo back as if the widget's change signal fired.
	_, _ = d.state.Apply(u)
}

func TestSubscribe_EchoDoesNotLoop(t *testing.T) {
	s := newTestState()
	d := &display{state: s, shown: make(map[Model][]int)}
	cancel := s.Subscribe(d.onUpdate)
	defer cancel()

	_, err := s.Apply(Update{Model: ModelCMYK, Values: []int{0, 50, 100, 0}, Source: SourceUser})
	require.NoError(t, err)

	assert.Equal(t, 3, d.received, "one push per model")
	assert.Equal(t, []int{255, 128, 0}, d.shown[ModelRGB])
	assert.Equal(t, []int{0, 50, 100, 0}, d.shown[ModelCMYK])
	assert.Equal(t, []int{30, 50, 100}, d.shown[ModelHLS])
	assert.Equal(t, colorconv.RGB{R: 255, G: 128, B: 0}, s.Snapshot().RGB)
}

func TestSubscribe_UpdatesAreDerived(t *testing.T) {
	s := newTestState()
	var got []Update
	cancel := s.Subscribe(func(u Update) { got = append(got, u) })

	s.SetHLS(colorconv.HLS{H: 120, L: 50, S: 100})
	require.Len(t, got, 3)
	for i, u := range got {
		assert.Equal(t, Models[i], u.Model)
		assert.Equal(t, SourceDerived, u.Source)
		assert.Equal(t, ModelHLS, u.Edited)
	}

	cancel()
	s.SetRGB(colorconv.RGB{})
	assert.Len(t, got, 3, "cancelled listener must not be called")
}

func TestApply_DerivedIgnored(t *testing.T) {
	s := newTestState()
	before := s.Snapshot()

	snap, err := s.Apply(Update{Model: ModelRGB, Values: []int{1, 2, 3}, Source: SourceDerived})
	require.NoError(t, err)
	assert.Equal(t, before, snap)
	assert.Equal(t, before, s.Snapshot())
}

func TestState_ConcurrentUse(t *testing.T) {
	s := newTestState()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.SetRGB(colorconv.RGB{R: i * 30, G: j, B: 0})
				_ = s.Snapshot()
			}
		}(i)
	}
	wg.Wait()

	snap := s.Snapshot()
	assert.Equal(t, s.Converter().RGBToCMYK(snap.RGB), snap.CMYK)
}

func TestState_ConcurrentComponentEditsAreNotLost(t *testing.T) {
	s := newTestState()
	s.SetRGB(colorconv.RGB{})

	var wg sync.WaitGroup
	for _, edit := range []struct{ index, value int }{{0, 10}, {1, 20}, {2, 30}} {
		wg.Add(1)
		go func(index, value int) {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				_, err := s.SetComponent(ModelRGB, index, value)
				assert.NoError(t, err)
			}
		}(edit.index, edit.value)
	}
	wg.Wait()

	assert.Equal(t, colorconv.RGB{R: 10, G: 20, B: 30}, s.Snapshot().RGB)
}

func TestState_SetComponentInvalidIndexLeavesStateAndListeners(t *testing.T) {
	s := newTestState()
	s.SetRGB(colorconv.RGB{R: 1, G: 2, B: 3})

	calls := 0
	cancel := s.Subscribe(func(Update) { calls++ })
	defer cancel()

	snap, err := s.SetComponent(ModelCMYK, 4, 50)
	require.ErrorIs(t, err, ErrInvalidComponent)
	assert.Equal(t, colorconv.RGB{R: 1, G: 2, B: 3}, snap.RGB)
	assert.Zero(t, calls)
}
