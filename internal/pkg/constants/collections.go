package constants

// Document store collection names
const (
	CollectionAccounts    = "accounts"
	CollectionTechnicians = "technicians"
)
