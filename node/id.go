package node

import (
	"strconv"

	"github.com/godruoyi/go-snowflake"
)

// NewInstanceID returns a fresh node id for hosts that do not assign one.
func NewInstanceID() string {
	return strconv.FormatUint(snowflake.ID(), 36)
}
