package domain

// Actor is the authenticated caller of a workflow operation. The single
// capability check lives here so services never reach into user records to
// decide authorization.
type Actor struct {
	ID      int
	IsStaff bool
}

func (a Actor) HasStaffCapability() bool {
	return a.IsStaff
}
