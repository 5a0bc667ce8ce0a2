package utils

import (
	"errors"
	"strings"
)

var ErrNameSplit = errors.New("display name must contain first and last name")

// SplitDisplayName derives first/last name parts from a profile display
// name. Everything after the first space becomes the last name.
func SplitDisplayName(displayName string) (first, last string, err error) {
	pieces := strings.Fields(displayName)
	if len(pieces) < 2 {
		return "", "", ErrNameSplit
	}
	return pieces[0], strings.Join(pieces[1:], " "), nil
}
