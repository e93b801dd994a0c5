package domain

// MaxOwnerCutBps is the exclusive upper bound for the platform owner cut,
// expressed in basis points.
const MaxOwnerCutBps = 10000

// Config is the singleton marketplace configuration, created once by the
// platform deployer and read by every settlement.
type Config struct {
	// Owner is the platform owner identity receiving the owner cut.
	Owner Identity
	// OwnerCutBps is the owner cut fraction in basis points, [0, 10000).
	OwnerCutBps uint16
	// Initialized marks the config as created. It is never cleared.
	Initialized bool
}

// NewConfig returns an initialized marketplace config after validating the
// owner cut. The initialization-once guard belongs to the repository, which
// refuses to store a second config.
func NewConfig(owner Identity, ownerCutBps uint16) (*Config, error) {
	if ownerCutBps >= MaxOwnerCutBps {
		return nil, ErrInvalidOwnerCut
	}

	return &Config{
		Owner:       owner,
		OwnerCutBps: ownerCutBps,
		Initialized: true,
	}, nil
}
