// internal/cache/keys.go
package cache

import "fmt"

const keyPrefix = "bingo"

func calledNumbersKey(roundID int64) string {
	return fmt.Sprintf("%s:round:%d:called", keyPrefix, roundID)
}

func roundResultKey(roundID int64) string {
	return fmt.Sprintf("%s:round:%d:result", keyPrefix, roundID)
}
