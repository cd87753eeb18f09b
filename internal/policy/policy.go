// Package policy decides whether a principal may perform an operation on a
// resource collection. The decision is a pure function of the principal's
// role and the kind of operation; it never looks at the resource instance.
package policy

// Role classifies the principal making a request.
type Role int

const (
	// RoleAnonymous is a principal without a valid bearer credential.
	RoleAnonymous Role = iota
	// RoleUser is an authenticated regular user.
	RoleUser
	// RoleAdmin is an authenticated administrator.
	RoleAdmin
)

// ParseRole maps a JWT role claim to a Role. Anything unrecognised is
// treated as anonymous and therefore denied everything.
func ParseRole(claim string) Role {
	switch claim {
	case "admin":
		return RoleAdmin
	case "user":
		return RoleUser
	default:
		return RoleAnonymous
	}
}

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleUser:
		return "user"
	default:
		return "anonymous"
	}
}

// Operation classifies an API operation as safe or unsafe.
type Operation int

const (
	// OperationRead covers the safe operations: list and get.
	OperationRead Operation = iota
	// OperationWrite covers the unsafe operations: create, update and delete.
	OperationWrite
)

// Allow reports whether the given role may perform the given operation.
// Anonymous principals are denied everything, regular users may only read,
// admins may do anything.
func Allow(role Role, op Operation) bool {
	switch role {
	case RoleAdmin:
		return true
	case RoleUser:
		return op == OperationRead
	default:
		return false
	}
}
