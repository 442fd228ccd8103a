package domain

// ClassifiedFailure is a failed TestResult with its group name and final
// category tag attached. Created once per failed result, immutable after.
type ClassifiedFailure struct {
	Result   TestResult
	Group    string
	Category CategoryTag
}

// CategoryGroup collects the classified failures sharing one category tag
type CategoryGroup struct {
	Category CategoryTag
	Failures []ClassifiedFailure
}
