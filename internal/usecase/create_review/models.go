package create_review

// Request входные данные создания отзыва
type Request struct {
	UserID    int64
	BookingID int64
	Rating    int
	Comment   *string
}
