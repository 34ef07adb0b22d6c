package material

// Handle identifies one material entry in a Store
// Handles are allocated monotonically and never reused, so a dangling
// handle (owner destroyed, entry orphaned) can never alias a new entry
type Handle uint64

// HandleNone is the sentinel for an unassigned material reference
const HandleNone Handle = 0
