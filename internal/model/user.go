package model

// 用户角色
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// User 用户 — 对应 users 工作表的一行（列序：role, display_name, username, password_hash）
// 用户由外部开通流程维护，本系统只读
type User struct {
	Role         string `json:"role"`
	DisplayName  string `json:"display_name"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}
