package timezone

import (
	"errors"
	"fmt"
	"time"
	_ "time/tzdata"
)

// Default is the zone classes are created in when the client does not ask
// for another one.
const Default = "Asia/Kolkata"

var ErrInvalidTimezone = errors.New("invalid timezone")

// Resolve maps an IANA zone name to a location. An empty name resolves to
// Default. "Local" is rejected because the result would depend on the host.
func Resolve(name string) (*time.Location, error) {
	if name == "" {
		name = Default
	}

	if name == "Local" {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTimezone, name)
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTimezone, name)
	}

	return loc, nil
}
