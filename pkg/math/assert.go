//go:build !veekaydebug

package math

// debugAssert is compiled out unless built with -tags veekaydebug.
func debugAssert(bool, string) {}
