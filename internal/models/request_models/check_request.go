package request_models

// Indices are pointers so that a present checkIndex of 0 survives the
// required binding.

type NewCheckRequest struct {
	CarID        string `json:"carId" binding:"required"`
	Title        string `json:"title" binding:"required"`
	Color        string `json:"color" binding:"required"`
	InitialCheck string `json:"initialCheck" binding:"required"`
	NextCheck    string `json:"nextCheck" binding:"required"`
	Notes        string `json:"notes"`
}

type EditCheckRequest struct {
	CarID        string `json:"carId" binding:"required"`
	CheckIndex   *int   `json:"checkIndex" binding:"required,gte=0"`
	HistoryIndex *int   `json:"historyIndex" binding:"required,gte=0"`
	Title        string `json:"title" binding:"required"`
	Color        string `json:"color" binding:"required"`
	InitialCheck string `json:"initialCheck"`
	NextCheck    string `json:"nextCheck"`
	CheckedOn    string `json:"checkedOn"`
	Notes        string `json:"notes"`
}

type DeleteCheckRequest struct {
	CarID      string `json:"carId" binding:"required"`
	CheckIndex *int   `json:"checkIndex" binding:"required,gte=0"`
}

type CompleteCheckRequest struct {
	CarID      string `json:"carId" binding:"required"`
	CheckIndex *int   `json:"checkIndex" binding:"required,gte=0"`
}

type DeleteCheckHistoryItemRequest struct {
	CarID        string `json:"carId" binding:"required"`
	CheckIndex   *int   `json:"checkIndex" binding:"required,gte=0"`
	HistoryIndex *int   `json:"historyIndex" binding:"required,gte=0"`
}
