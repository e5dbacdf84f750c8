package constants

// Redis key formats
const (
	// User service
	KeyUserOTP = "user:otp:%s" // Format: user:otp:{email}

	// Scrapper positions
	KeyScrapperGeo = "scrapper:geo" // geo set of all scrapper positions
)
