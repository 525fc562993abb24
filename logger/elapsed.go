package logger

import (
	"strconv"
	"strings"
	"time"
)

// FormatElapsed renders d as whole hours, minutes and seconds ("1h1m5s").
// Every segment whose number is zero is dropped on its own, so 3605s reads
// "1h5s" and zero reads "".
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	var b strings.Builder
	for _, seg := range [...]string{
		strconv.FormatInt(hours, 10) + "h",
		strconv.FormatInt(minutes, 10) + "m",
		strconv.FormatInt(seconds, 10) + "s",
	} {
		if seg[0] == '0' {
			continue
		}
		b.WriteString(seg)
	}
	return b.String()
}
