package user

// RoleName identifies one of the three fixed permission bundles.
type RoleName string

const (
	RoleLegal    RoleName = "legal"
	RoleFinance  RoleName = "finance"
	RoleBusiness RoleName = "business"
)

// User is one of the demo identities. There is no password; login is by
// exact email match.
type User struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Role       RoleName `json:"role"`
	Department string   `json:"department"`
}

// Directory is the fixed in-memory user table, initialized at process start
// and never mutated.
type Directory struct {
	items []User
}

// NewDirectory returns the directory preloaded with the demo identities.
func NewDirectory() *Directory {
	return &Directory{items: []User{
		{ID: "1", Name: "Sarah Johnson", Email: "sarah.johnson@bbg.com", Role: RoleLegal, Department: "Legal"},
		{ID: "2", Name: "Mike Chen", Email: "mike.chen@bbg.com", Role: RoleFinance, Department: "Finance"},
		{ID: "3", Name: "Jennifer Smith", Email: "jennifer.smith@bbg.com", Role: RoleBusiness, Department: "Business Development"},
	}}
}

// ByID looks up a user by identifier.
func (d *Directory) ByID(id string) (User, bool) {
	for _, u := range d.items {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}

// ByEmail looks up a user by exact email match.
func (d *Directory) ByEmail(email string) (User, bool) {
	for _, u := range d.items {
		if u.Email == email {
			return u, true
		}
	}
	return User{}, false
}

// All returns the demo identities.
func (d *Directory) All() []User {
	return append([]User(nil), d.items...)
}
