//go:build !windows

package dma

const HasASIO = false

func newASIODriver() asioDriver {
	return nil
}
