package domain

// Release is one published application release from the update feed.
type Release struct {
	Version  string
	AssetURL string
}

// UpdateCheck is the result of comparing the running build to the feed.
type UpdateCheck struct {
	CurrentVersion string
	Latest         Release
	Newer          bool
}
