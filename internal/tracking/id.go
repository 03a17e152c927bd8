package tracking

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// GenerateTrackingID mints a human-readable identifier of the form
// TRK-<UTC yyyymmdd>-<8 uppercase hex chars>. Collisions are accepted
// as negligible; no store lookup is performed.
func GenerateTrackingID() string {
	date := time.Now().UTC().Format("20060102")

	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand on supported platforms does not fail; if it ever
		// does the process has bigger problems than a tracking id.
		panic(err)
	}
	suffix := strings.ToUpper(hex.EncodeToString(buf))

	return fmt.Sprintf("TRK-%s-%s", date, suffix)
}
