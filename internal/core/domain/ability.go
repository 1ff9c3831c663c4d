package domain

// Action is a CRUD operation evaluated against a listing.
type Action string

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Authorize decides whether caller may perform action on the given listing.
// It is a pure function: the caller's roles and the listing's owner are the
// only inputs, there is no ambient request state.
//
// Rules, first match wins:
//   - agent: anything, on any listing.
//   - client: create always (the created listing is owned by the caller),
//     read always, update/delete only on listings the caller owns.
//   - public or anonymous: read only.
//   - anything else: denied.
//
// Read is deliberately unrestricted for every role — listings are public.
// apartment may be nil for create and for collection reads, where no
// resource exists yet to check ownership against.
func Authorize(caller Caller, action Action, apartment *Apartment) bool {
	switch {
	case caller.HasRole(RoleAgent):
		return true
	case caller.HasRole(RoleClient):
		switch action {
		case ActionCreate, ActionRead:
			return true
		case ActionUpdate, ActionDelete:
			return apartment != nil && apartment.OwnedBy(caller.ID)
		}
		return false
	default:
		return action == ActionRead
	}
}
