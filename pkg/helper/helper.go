package helper

import (
	"fmt"
	"strings"
)

// method to convert from seconds to minutes:seconds.milliseconds
func SecondsToMinutes(seconds float64) string {
	if seconds <= 0 {
		return "-"
	}
	minutes := int(seconds / 60)
	seconds = seconds - float64(minutes*60)
	milliseconds := int((seconds-float64(int(seconds)))*1000 + 0.5)
	if milliseconds == 1000 {
		milliseconds = 0
		seconds++
		if int(seconds) == 60 {
			seconds = 0
			minutes++
		}
	}
	return fmt.Sprintf("%02d:%02d.%03d", minutes, int(seconds), milliseconds)
}

// GetDriverCodeName builds a three letter code from a full name: the first
// letter of the name and the first two letters of the surname.
func GetDriverCodeName(name string) string {
	words := strings.Fields(name)
	if len(words) == 0 {
		return ""
	}
	first := []rune(words[0])
	code := string(first[0])
	if len(words) > 1 {
		surname := []rune(words[1])
		if len(surname) > 2 {
			surname = surname[:2]
		}
		code += string(surname)
	} else if len(first) > 2 {
		code += string(first[1:3])
	} else {
		code = string(first)
	}
	return strings.ToUpper(code)
}

// SanitizeFileName makes a session name safe to use as a file name in the
// export directory.
func SanitizeFileName(name string) string {
	replacer := strings.NewReplacer("/", "_", "\\", "_", "\x00", "")
	name = strings.TrimSpace(replacer.Replace(name))
	if name == "." || name == ".." {
		return ""
	}
	return name
}
