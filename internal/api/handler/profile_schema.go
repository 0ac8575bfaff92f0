package handler

// updateProfileRequest carries a partial update: absent fields leave the
// stored value untouched. Only profile attributes are bindable; email,
// password and role have no place here.
type updateProfileRequest struct {
	Name       *string `json:"name"`
	Phone      *string `json:"phone"`
	PostalCode *string `json:"postal_code"`
	Region     *string `json:"region"`
	Address    *string `json:"address"`
	ImageURL   *string `json:"image_url" validate:"omitempty,url"`
}

type updateProfileResponse struct {
	Message string          `json:"message"`
	Account accountResponse `json:"account"`
}

type listProfilesResponse struct {
	Data []accountResponse `json:"data"`
}
