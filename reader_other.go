//go:build !unix

package tui

import (
	"errors"
	"os"
)

// NewEventReader is only implemented for unix terminals.
func NewEventReader(in *os.File) (EventReader, error) {
	return nil, errors.New("tui: terminal input is only supported on unix")
}
