//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// notifySignals routes signals to ed.sigch until the returned
// function is called.
func (ed *Editor) notifySignals() (stop func()) {
	signal.Notify(ed.sigch, syscall.SIGINT, syscall.SIGHUP, syscall.SIGQUIT)
	return func() { signal.Stop(ed.sigch) }
}

// handleSignal reacts to sig and reports whether the session is over.
// SIGINT abandons text entry, SIGHUP ends the session and SIGQUIT is
// ignored.
func (ed *Editor) handleSignal(sig os.Signal) bool {
	switch sig {
	case syscall.SIGINT:
		ed.err = ErrInterrupt
		ed.mode = ModeNormal
		fmt.Fprintf(ed.stderr, "\n%s\n", ErrDefault)
	case syscall.SIGHUP:
		return true
	case syscall.SIGQUIT:
		// ignore
	}
	if ed.verbose && ed.err != nil {
		fmt.Fprintln(ed.stderr, ed.err)
	}
	return false
}
