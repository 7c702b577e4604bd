package modes

// Mode tells providers whether they run under a test or for real, so
// scope construction stays identical in both.
type Mode int

const (
	ModeProduction Mode = iota
	ModeDevelopment
)
