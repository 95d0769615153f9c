package request_models

// Car endpoints accept multipart form data (the image rides along as a
// file part) as well as plain JSON; gin picks the binding from the
// content type.

type CreateCarRequest struct {
	Brand    string `form:"brand" json:"brand" binding:"required"`
	CarModel string `form:"carModel" json:"carModel" binding:"required"`
	// Kept for wire compatibility; the stored owner is always the
	// authenticated account, never this field.
	UserID string `form:"userId" json:"userId" binding:"required"`
	Image  string `form:"image" json:"image"`
}

type EditCarRequest struct {
	ID       string `form:"_id" json:"_id" binding:"required"`
	Brand    string `form:"brand" json:"brand" binding:"required"`
	CarModel string `form:"carModel" json:"carModel" binding:"required"`
	Image    string `form:"image" json:"image"`
}

// Delete runs no field validation: a missing or unknown _id simply
// reads as the car not being found.
type DeleteCarRequest struct {
	ID string `form:"_id" json:"_id"`
}
