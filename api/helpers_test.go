package api_test

func intPtr(n int) *int {
	return &n
}
