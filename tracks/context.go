package tracks

import (
	"fmt"
	"math/rand"
	"time"
)

// A Context owns the cumulative state of one document run: the primary
// track and the determinism settings. It is built once per document and
// discarded afterwards; repeated runs over unchanged source start from the
// same seed and zone, so they produce identical output.
type Context struct {
	Name     string
	Primary  *Track
	Rand     *rand.Rand
	Location *time.Location
}

func NewContext(name string, seed int64, zone string) (*Context, error) {
	location, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("load time zone %s: %w", zone, err)
	}
	return &Context{
		Name:     name,
		Primary:  NewTrack(name),
		Rand:     rand.New(rand.NewSource(seed)),
		Location: location,
	}, nil
}
