package model_test

// ptr 建立字串指標，用來區分 nil 與空字串
func ptr(s string) *string {
	return &s
}
