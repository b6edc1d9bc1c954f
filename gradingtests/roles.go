package gradingtests

import "github.com/launchdarkly/grading-contract-tests/servicedef"

// Role is one of the fixture account types that the backend is seeded with.
type Role int

const (
	Student Role = iota
	Teacher
	Admin
)

// Credentials is a fixture account's login.
type Credentials struct {
	Username string
	Password string
}

var fixtureAccounts = map[Role]Credentials{
	Student: {Username: "student", Password: "password"},
	Teacher: {Username: "teacher", Password: "password"},
	Admin:   {Username: "admin", Password: "password"},
}

// Credentials returns the fixed login for the role's fixture account.
func (r Role) Credentials() Credentials {
	return fixtureAccounts[r]
}

// WireName is the role name used in backend responses, such as "STUDENT".
func (r Role) WireName() string {
	switch r {
	case Student:
		return servicedef.RoleStudent
	case Teacher:
		return servicedef.RoleTeacher
	case Admin:
		return servicedef.RoleAdmin
	default:
		return ""
	}
}

func (r Role) String() string {
	switch r {
	case Student:
		return "Student"
	case Teacher:
		return "Teacher"
	case Admin:
		return "Admin"
	default:
		return "Unknown"
	}
}
