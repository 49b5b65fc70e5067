package domain

// ListingSnapshot слепок данных листинга, загружаемый один раз при открытии
// мастера бронирования. Владелец данных - внешний ListingService; здесь
// хранятся только копии полей, нужных мастеру
type ListingSnapshot struct {
	ListingID    int64
	BusinessName string
	Services     []SelectedService
	Providers    []SelectedProvider
	Week         WeekSchedule
}

// FindService ищет услугу в каталоге по ID
func (s *ListingSnapshot) FindService(serviceID int64) *SelectedService {
	for i := range s.Services {
		if s.Services[i].ID == serviceID {
			return &s.Services[i]
		}
	}
	return nil
}

// FindProvider ищет мастера по ID
func (s *ListingSnapshot) FindProvider(providerID int64) *SelectedProvider {
	for i := range s.Providers {
		if s.Providers[i].ID == providerID {
			return &s.Providers[i]
		}
	}
	return nil
}
