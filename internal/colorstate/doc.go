// Package colorstate keeps one logical color consistent across its RGB, CMYK
// and HLS views.
//
// The color is stored only as RGB. Whenever a caller edits one model, State:
//  1. clamps the raw input to that model's range
//  2. converts it to RGB
//  3. derives the other two models from the new RGB
//  4. notifies subscribers of all three models
//
// Every notification carries SourceDerived: it reports a pushed value, not a
// typed one. Feeding such an update back into Apply is a no-op, so a display
// that echoes every programmatic change as an edit cannot start a feedback
// loop. Applying the same edit twice yields the same three views.
//
// Textual input that does not parse as an integer leaves the state
// untouched; the returned snapshot holds the last valid value to show.
package colorstate
