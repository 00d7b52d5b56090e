package apiv1

type User struct {
	ID          string   `json:"id"`
	UserName    string   `json:"userName"`
	Email       string   `json:"email"`
	IsSuperuser bool     `json:"isSuperuser"`
	Roles       []string `json:"roles"`
}

type GetCurrentUserRequest struct{}

type GetCurrentUserResponse struct {
	User *User `json:"user"`
}

type AddUserRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Superuser bool   `json:"superuser"`
}

type AddUserResponse struct {
	User *User `json:"user"`
}

type GetUserByEmailRequest struct {
	Email string `json:"email"`
}

type GetUserByEmailResponse struct {
	User *User `json:"user"`
}

type GetUserByNameRequest struct {
	UserName string `json:"userName"`
}

type GetUserByNameResponse struct {
	User *User `json:"user"`
}

type Role struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type ListRolesRequest struct{}

type ListRolesResponse struct {
	Roles []*Role `json:"roles"`
}

type CreateRoleRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CreateRoleResponse struct {
	Role *Role `json:"role"`
}

type UpdateRoleRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

type UpdateRoleResponse struct {
	Role *Role `json:"role"`
}

type DeleteRoleRequest struct {
	Name string `json:"name"`
}

type DeleteRoleResponse struct {
	Deleted bool `json:"deleted"`
}

type GrantRoleRequest struct {
	UserName string `json:"userName"`
	Role     string `json:"role"`
}

type GrantRoleResponse struct {
	User *User `json:"user"`
}

type RevokeRoleRequest struct {
	UserName string `json:"userName"`
	Role     string `json:"role"`
}

type RevokeRoleResponse struct {
	User *User `json:"user"`
}
