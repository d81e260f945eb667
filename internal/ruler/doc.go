// Package ruler provides the value model behind the ruler picker.
//
// A [Model] holds the picked value together with its range and tick size:
//
//   - values are clamped to [Minimum, Maximum] on every set
//   - the host is notified with the tick-rounded value when it lands on a
//     whole number of ticks
//   - a zero tick disables interaction; see [Model.Trackable]
//
// # Thread Safety
//
// Model instances are NOT thread-safe. All mutation is expected to happen on
// the host's event loop.
package ruler
