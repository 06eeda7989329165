package tracking_number

import (
	"strings"

	"github.com/google/uuid"
)

// Номер отдается получателю голосом и смской, поэтому короткий,
// только верхний регистр.
const (
	prefix = "TRK-"
	length = 12
)

type TrackingNumberFactory struct{}

func New() *TrackingNumberFactory {
	return &TrackingNumberFactory{}
}

func (f *TrackingNumberFactory) NewTrackingNumber() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + strings.ToUpper(raw[:length])
}
