//go:build !(darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris)

package main

import (
	"fmt"
	"os"
	"os/signal"
)

// notifySignals routes signals to ed.sigch until the returned
// function is called.
func (ed *Editor) notifySignals() (stop func()) {
	signal.Notify(ed.sigch, os.Interrupt)
	return func() { signal.Stop(ed.sigch) }
}

func (ed *Editor) handleSignal(sig os.Signal) bool {
	if sig == os.Interrupt {
		ed.err = ErrInterrupt
		ed.mode = ModeNormal
		fmt.Fprintf(ed.stderr, "\n%s\n", ErrDefault)
	}
	return false
}
