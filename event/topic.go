package event

import "strings"

// validPattern rejects empty topics and empty dot segments.
func validPattern(pattern string) bool {
	if pattern == "" {
		return false
	}
	for _, seg := range strings.Split(pattern, ".") {
		if seg == "" {
			return false
		}
	}
	return true
}

// Match reports whether topic matches pattern.
// "*" matches exactly one segment and "**" matches zero or more.
func Match(pattern, topic string) bool {
	if pattern == topic {
		return true
	}
	return matchSegments(strings.Split(pattern, "."), strings.Split(topic, "."))
}

func matchSegments(pat, top []string) bool {
	for len(pat) > 0 {
		switch pat[0] {
		case "**":
			rest := pat[1:]
			for i := 0; i <= len(top); i++ {
				if matchSegments(rest, top[i:]) {
					return true
				}
			}
			return false
		case "*":
			if len(top) == 0 {
				return false
			}
		default:
			if len(top) == 0 || pat[0] != top[0] {
				return false
			}
		}
		pat, top = pat[1:], top[1:]
	}
	return len(top) == 0
}
