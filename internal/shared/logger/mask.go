package logger

// MaskUsername keeps the first character only.
// Example: admin -> a***
func MaskUsername(username string) string {
	runes := []rune(username)
	if len(runes) == 0 {
		return ""
	}
	if len(runes) == 1 {
		return "***"
	}
	return string(runes[:1]) + "***"
}
