package domain

// PaintStatus says whether a paint sits on the shelf or on the shopping list.
type PaintStatus string

const (
	StatusOwned     PaintStatus = "OWNED"
	StatusWantToBuy PaintStatus = "WANT_TO_BUY"
)

func (s PaintStatus) String() string { return string(s) }

func (s PaintStatus) IsValid() bool {
	switch s {
	case StatusOwned, StatusWantToBuy:
		return true
	}
	return false
}

// Role represents the authorization level of a token holder.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	}
	return false
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// ChangeAction represents the kind of mutation announced to watchers.
type ChangeAction string

const (
	ChangeActionCreate ChangeAction = "CREATE"
	ChangeActionUpdate ChangeAction = "UPDATE"
	ChangeActionDelete ChangeAction = "DELETE"
)

func (a ChangeAction) String() string { return string(a) }

func (a ChangeAction) IsValid() bool {
	switch a {
	case ChangeActionCreate, ChangeActionUpdate, ChangeActionDelete:
		return true
	}
	return false
}
