package service

import "crypto/rand"

// slugAlphabet holds the 64 URL-safe symbols a generated slug is drawn from.
// 64 symbols means every random byte maps onto the alphabet without bias.
const slugAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789_-"

// DefaultSlugLength keeps generated short URLs compact. 64^5 candidates make
// a collision on insert negligible; the allocator retries if one happens.
const DefaultSlugLength = 5

// GenerateSlug produces a random slug candidate of the given length from a
// cryptographically strong source, so existing slugs cannot be enumerated.
func GenerateSlug(length int) (string, error) {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	for i := range b {
		b[i] = slugAlphabet[b[i]&63]
	}

	return string(b), nil
}
