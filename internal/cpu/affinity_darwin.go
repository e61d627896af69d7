//go:build darwin

package cpu

// pinToCore is unavailable on macOS; the thread stays locked but unpinned.
func pinToCore(int) (uintptr, error) {
	return 0, ErrPinningUnsupported
}
