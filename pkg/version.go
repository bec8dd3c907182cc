package taxseed

var (
	// Version of taxseed.
	Version = "v0.1.0"
	// Build timestamp, set during compilation.
	Build = "n/a"
)
