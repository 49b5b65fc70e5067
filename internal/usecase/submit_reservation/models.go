package submit_reservation

// Request модель запроса на подтверждение бронирования
type Request struct {
	DraftID string // ID черновика
	UserID  int64  // ID пользователя из заголовка авторизации
}

// Response модель ответа после успешного подтверждения
type Response struct {
	ReservationID int64   // ID созданного бронирования
	ListingID     int64   // ID листинга
	BusinessName  string  // Название заведения
	Date          string  // Дата бронирования (YYYY-MM-DD)
	Time          string  // Время начала слота
	TotalPrice    float64 // Итоговая сумма
	Status        string  // Статус бронирования
}

// LoginRedirect ответ для неавторизованного пользователя:
// черновик сохраняется, клиенту отдается адрес страницы входа
type LoginRedirect struct {
	LoginURL string // Адрес страницы входа
}
