package steps

import "encoding/json"

// Sentinel value of the inspection dropdowns meaning the inspection is done.
const EnumDone = "YAPILDI"

// Status is the computed state of one stage. The Turkish literals are the
// wire format the dashboard expects; internally everything compares Statuses.
type Status int

const (
	NotStarted Status = iota
	InProgress
	Completed
)

func (s Status) String() string {
	switch s {
	case Completed:
		return "TAMAMLANDI"
	case InProgress:
		return "DEVAM EDİYOR"
	default:
		return "BAŞLAMADI"
	}
}

func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Bucket is the coarse whole-order state used by stat cards and filters.
type Bucket int

const (
	BucketNotStarted Bucket = iota
	BucketInProgress
	BucketCompleted
)

func (b Bucket) String() string {
	switch b {
	case BucketCompleted:
		return "tamamlanan"
	case BucketInProgress:
		return "devamEden"
	default:
		return "baslamayan"
	}
}

func (b Bucket) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}
