package select_provider

// SelectProviderRequest HTTP request model
type SelectProviderRequest struct {
	ProviderID int64 `json:"providerId"`
}
