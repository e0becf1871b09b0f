package request

type MovieRequest struct {
	Title       string `json:"title" validate:"required,max=150"`
	ReleaseDate string `json:"release_date" validate:"required,datetime=2006-01-02"`
	Genre       string `json:"genre" validate:"required,max=50"`
}
