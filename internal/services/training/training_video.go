package training

import "regexp"

var youtubeIDPattern = regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([^&\s]+)`)

// EmbedURL derives a playable embed URL from a recognized video-hosting URL.
// Unrecognized URLs come back unchanged.
func EmbedURL(url string) string {
	m := youtubeIDPattern.FindStringSubmatch(url)
	if len(m) == 2 && m[1] != "" {
		return "https://www.youtube.com/embed/" + m[1] + "?autoplay=1"
	}

	return url
}
