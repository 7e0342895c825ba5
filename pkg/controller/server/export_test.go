package server

var (
	RefToBranchForTest              = refToBranch
	GitHubEventToUpdateInputForTest = githubEventToUpdateInput
)
