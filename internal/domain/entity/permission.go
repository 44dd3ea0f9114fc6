package entity

// Permissions checked by the HTTP layer.
const (
	PermissionChangeUser    = "changeUser"
	PermissionChangeProfile = "changeProfile"
)
