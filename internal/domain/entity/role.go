package entity

// Role IDs carried in access token claims. Accounts and roles are managed by the identity service.
const (
	RoleIDHospital = 2
	RoleIDPatient  = 3
)

// RoleNames constants
const (
	RoleHospital = "hospital"
	RolePatient  = "patient"
)
