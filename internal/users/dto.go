package users

// UpdateProfileRequest carries the PATCH /users/me payload. Both fields are
// required; a partial update is rejected as bad input.
type UpdateProfileRequest struct {
	Name  string `json:"name" validate:"required,min=2,max=30"`
	About string `json:"about" validate:"required,min=2,max=200"`
}

// UpdateAvatarRequest carries the PATCH /users/me/avatar payload.
type UpdateAvatarRequest struct {
	Avatar string `json:"avatar" validate:"required,url"`
}
