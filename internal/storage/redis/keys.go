package redis

import (
	"fmt"

	"github.com/ewhitmore/scorepad-go/internal/model"
)

// Key prefix for all scorepad data
const keyPrefix = "scorepad"

// sessionKey returns the Redis key for a table session
func sessionKey(code model.TableCode) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, code)
}
