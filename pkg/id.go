package pkg

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// GenerateID returns a 9 character random base-36 fragment followed by the
// base-36 millisecond timestamp. Collisions are unlikely, not impossible.
func GenerateID() string {
	return generateID(time.Now())
}

func generateID(now time.Time) string {
	var b strings.Builder
	for i := 0; i < 9; i++ {
		b.WriteByte(base36[rand.Intn(len(base36))])
	}
	b.WriteString(strconv.FormatInt(now.UnixMilli(), 36))
	return b.String()
}

// ShortSuffix is the 4 character disambiguator appended to colliding slugs.
func ShortSuffix() string {
	return GenerateID()[:4]
}
