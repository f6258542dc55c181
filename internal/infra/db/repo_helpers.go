package db

import "strings"

// escapeLike neutralizes LIKE metacharacters in user-supplied search
// strings so they match literally.
func escapeLike(value string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(value)
}
