package kernel

import (
	"fmt"
	"strings"

	"github.com/chiefroqa/baruk-app/internal/pkg/errs"
)

// Zone is a fixed geographic catchment used to match delivery riders to
// parcels destined for their home area. Matching is exact: a rider may
// accept a delivery job only when the parcel's delivery zone equals the
// rider's home zone (an admin may override this during dispatch).
type Zone string

const (
	ZoneCentral Zone = "central"
	ZoneNorth   Zone = "north"
	ZoneSouth   Zone = "south"
	ZoneEast    Zone = "east"
	ZoneWest    Zone = "west"
)

// Zones returns the full set of valid zones.
func Zones() []Zone {
	return []Zone{ZoneCentral, ZoneNorth, ZoneSouth, ZoneEast, ZoneWest}
}

// ZoneFromString parses a zone from its string representation,
// ignoring case and surrounding whitespace.
func ZoneFromString(s string) (Zone, error) {
	z := Zone(strings.ToLower(strings.TrimSpace(s)))
	if err := z.Validate(); err != nil {
		return "", err
	}
	return z, nil
}

// Validate checks that the zone is one of the enumerated catchments.
func (z Zone) Validate() error {
	switch z {
	case ZoneCentral, ZoneNorth, ZoneSouth, ZoneEast, ZoneWest:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("zone",
		fmt.Errorf("%q is not a valid zone", string(z)))
}

// String implements fmt.Stringer.
func (z Zone) String() string {
	return string(z)
}

// Matches reports whether two zones are the same catchment.
func (z Zone) Matches(other Zone) bool {
	return z == other
}
