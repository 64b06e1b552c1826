package wikipedia

const (
	sourceName     = "wikipedia"
	defaultBaseURL = "https://en.wikipedia.org/api/rest_v1"

	// Display strings returned by FetchFact.
	MsgNoTopic   = "Add a topic to see a quick fact."
	MsgLoadFail  = "We couldn't load a fact right now. Try again soon."
	MsgNoSummary = "We couldn't find a summary for that topic."
)
