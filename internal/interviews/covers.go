package interviews

import "math/rand"

// Opaque cover references served by the front-end; one is picked at random
// for each new interview.
var coverImages = []string{
	"/covers/adobe.png",
	"/covers/amazon.png",
	"/covers/facebook.png",
	"/covers/hostinger.png",
	"/covers/pinterest.png",
	"/covers/quora.png",
	"/covers/reddit.png",
	"/covers/skype.png",
	"/covers/spotify.png",
	"/covers/telegram.png",
	"/covers/tiktok.png",
	"/covers/yahoo.png",
}

func randomCover() string {
	return coverImages[rand.Intn(len(coverImages))]
}
