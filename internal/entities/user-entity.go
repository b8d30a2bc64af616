package entities

const (
	RoleUser        = "user"
	RoleTechnician  = "technician"
	RoleCoordinator = "coordinator"
	RoleAdmin       = "admin"
)

type User struct {
	UUID  string `json:"uuid"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Timestamps
}
