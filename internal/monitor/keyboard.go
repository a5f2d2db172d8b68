package monitor

import (
	"bufio"
	"io"
	"os"
)

// EnterKey is closed once a line has been read from stdin.
func EnterKey() <-chan struct{} {
	return lineRead(os.Stdin)
}

func lineRead(r io.Reader) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		bufio.NewReader(r).ReadBytes('\n')
		close(done)
	}()
	return done
}
