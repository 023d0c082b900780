package valueobjects

import "fmt"

type RequestType string

const (
	RequestTypeCorrective RequestType = "CORRECTIVE"
	RequestTypePreventive RequestType = "PREVENTIVE"
)

const DefaultRequestType = RequestTypeCorrective

func NewRequestType(s string) (RequestType, error) {
	t := RequestType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid request type: %s", s)
	}
	return t, nil
}

func (t RequestType) String() string {
	return string(t)
}

func (t RequestType) IsValid() bool {
	return t == RequestTypeCorrective || t == RequestTypePreventive
}
