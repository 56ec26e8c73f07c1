package dto

type LoginRequest struct {
	UserName string `json:"UserName" validate:"required"`
	Password string `json:"Password" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	EmployeeCode string `json:"EmployeeCode"`
	RoleID       int    `json:"RoleID"`
	FullName     string `json:"FullName"`
}

type RefreshResponse struct {
	AccessToken string `json:"accessToken"`
}
