//go:build veekaydebug

package math

// debugAssert panics when a builder receives degenerate input. Release
// builds keep the silent garbage-in, garbage-out behaviour.
func debugAssert(ok bool, msg string) {
	if !ok {
		panic(msg)
	}
}
