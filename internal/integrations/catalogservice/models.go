package catalogservice

// Profile витринная карточка ресурса из CatalogService
type Profile struct {
	ResourceID  int64  `json:"resource_id"`
	DisplayName string `json:"display_name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

// ErrorResponse модель ошибки от CatalogService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
