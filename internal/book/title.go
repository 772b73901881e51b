package book

import (
	"net/url"
)

// titleDecodeRounds is how many rounds of percent-encoding DecodeTitle
// undoes. Clients encode the title once and some proxies encode it again.
const titleDecodeRounds = 2

// DecodeTitle percent-decodes raw up to two times. A round that hits a
// malformed escape stops decoding and keeps what was decoded so far.
// '+' is kept as is.
func DecodeTitle(raw string) string {
	title := raw
	for i := 0; i < titleDecodeRounds; i++ {
		decoded, err := url.PathUnescape(title)
		if err != nil {
			break
		}
		title = decoded
	}
	return title
}
