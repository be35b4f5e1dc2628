package notes

import (
	"strings"
	"unicode/utf8"
)

type Stats struct {
	Words      int
	Characters int
}

func CountStats(content string) Stats {
	return Stats{
		Words:      len(strings.Fields(content)),
		Characters: utf8.RuneCountInString(content),
	}
}
