package training

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmbedURL(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{
			"https://www.youtube.com/watch?v=MDJ8a07NokM",
			"https://www.youtube.com/embed/MDJ8a07NokM?autoplay=1",
		},
		{
			"https://www.youtube.com/watch?v=MDJ8a07NokM&t=30s",
			"https://www.youtube.com/embed/MDJ8a07NokM?autoplay=1",
		},
		{
			"https://youtu.be/jBbnb71RnEM",
			"https://www.youtube.com/embed/jBbnb71RnEM?autoplay=1",
		},
		{
			"https://www.youtube.com/embed/r3g-7_W4AuI",
			"https://www.youtube.com/embed/r3g-7_W4AuI?autoplay=1",
		},
		{
			"https://vimeo.com/123456",
			"https://vimeo.com/123456",
		},
		{"", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, EmbedURL(tc.in), "url %q", tc.in)
	}
}
