package cli

var (
	IsRemoteLocation  = isRemoteLocation
	ParseGitHubRemote = parseGitHubRemote
	RepoName          = repoName
)

var RenderCache = renderCache

var RunPredict = runPredict
