package roles

import "fmt"

// Role is the closed set of back-office roles.
type Role string

const (
	Manager       Role = "manager"
	Storekeeper   Role = "storekeeper"
	Administrator Role = "administrator"
)

// Parse normalizes a role code reported by the backend. The legacy API
// spells administrator with a capital A.
func Parse(value string) (Role, error) {
	switch value {
	case "manager":
		return Manager, nil
	case "storekeeper":
		return Storekeeper, nil
	case "administrator", "Administrator":
		return Administrator, nil
	default:
		return "", fmt.Errorf("unknown role: %q", value)
	}
}

// IsValid reports whether the role belongs to the known set.
func (r Role) IsValid() bool {
	switch r {
	case Manager, Storekeeper, Administrator:
		return true
	default:
		return false
	}
}

// DisplayValue returns the label shown in the interface.
func (r Role) DisplayValue() string {
	switch r {
	case Manager:
		return "Менеджер"
	case Storekeeper:
		return "Кладовщик"
	case Administrator:
		return "Администратор"
	default:
		return string(r)
	}
}

// LandingRoute returns the screen a freshly authenticated user of this role
// lands on. The second return is false for roles outside the known set.
func (r Role) LandingRoute() (string, bool) {
	switch r {
	case Manager:
		return "/manager/invoices", true
	case Storekeeper:
		return "/storekeeper/dashboard", true
	case Administrator:
		return "/admin/dashboard", true
	default:
		return "", false
	}
}

// String returns the role code.
func (r Role) String() string {
	return string(r)
}
