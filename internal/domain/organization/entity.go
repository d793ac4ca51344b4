package organization

// Organization is a restaurant venue mirrored from the POS system.
type Organization struct {
	ID       int64
	IIKOID   *string
	Name     string
	Code     *string
	IsActive bool
}
