package ecs

// Config holds process-wide runtime toggles for the package.
var Config config = config{Checked: true}

type config struct {
	// Checked enables precondition checks (UnknownEntity, ComponentMissing,
	// ConcurrentModification, …). Release builds may flip this off for
	// speed; callers must not rely on the checks once disabled.
	Checked bool
}

// SetChecked toggles checked-build precondition enforcement.
func (c *config) SetChecked(v bool) {
	c.Checked = v
}
