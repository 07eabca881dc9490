// SPDX-License-Identifier: MIT
// Package matrix: test-only accessors to unexported state.

package matrix

// SetNativeSolveHook installs f to run right before every native solve and
// returns a func restoring the previous hook. Not safe for parallel tests.
func SetNativeSolveHook(f func(op string)) (restore func()) {
	prev := onNativeSolve
	onNativeSolve = f

	return func() { onNativeSolve = prev }
}

// EffectiveOptions exposes the flags produced by gatherOptions.
func EffectiveOptions(opts ...Option) (validateNaNInf, rhsCheck bool) {
	o := gatherOptions(opts...)

	return o.validateNaNInf, o.rhsCheck
}

// ValidatesNaNInf reports the numeric policy carried by m.
func (m *Dense[T]) ValidatesNaNInf() bool { return m.validateNaNInf }
