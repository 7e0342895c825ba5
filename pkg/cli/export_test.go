package cli

var (
	LoadExcludeFileForTest  = loadExcludeFile
	ParseRemoteURLForTest   = parseRemoteURL
	DetectGitHubRepoForTest = detectGitHubRepo
	PrintRunSummaryForTest  = printRunSummary
	PrintHookRecordsForTest = printHookRecords
	ResolveOwnersForTest    = resolveOwners
)
