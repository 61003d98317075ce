package util

import (
	"strings"

	"github.com/pterm/pterm"
)

func ContainsFold(list []string, str string) bool {
	for _, v := range list {
		if strings.EqualFold(v, str) {
			return true
		}
	}
	return false
}

// Fatal prints err and exits. Only main should call it.
func Fatal(err error) {
	if err != nil {
		pterm.Fatal.Println(err)
	}
}
