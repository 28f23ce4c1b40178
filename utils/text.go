package utils

// AvatarOrDefault returns the user's profile picture URL, falling back to the
// platform default avatar when the user has none.
func AvatarOrDefault(profilePic, defaultAvatar string) string {
	if profilePic == "" {
		return defaultAvatar
	}
	return profilePic
}

// Preview shortens content for use in notification messages.
func Preview(content string, maxRunes int) string {
	runes := []rune(content)
	if len(runes) <= maxRunes {
		return content
	}
	return string(runes[:maxRunes]) + "..."
}
