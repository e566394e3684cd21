package domain

// Scope selects the ranking used for category and trending views
type Scope string

const (
	ScopeGlobal   Scope = "Global"
	ScopeRegional Scope = "Regional"
)

// Pseudo categories
const (
	CategoryAll      = "All"
	CategoryTrending = "Trending"
)

// VideoQuery holds the filter parameters of a catalog query
type VideoQuery struct {
	Page     int
	PageSize int
	Category string
	Query    string
	Scope    Scope
}

// VideoPage is one page of a catalog query
type VideoPage struct {
	Videos   []Video `json:"videos"`
	HasMore  bool    `json:"hasMore"`
	Page     int     `json:"page"`
	PageSize int     `json:"pageSize"`
	Total    int     `json:"total"`
}

// SuggestionType tags a search suggestion
type SuggestionType string

const (
	SuggestionQuery   SuggestionType = "query"
	SuggestionChannel SuggestionType = "channel"
	SuggestionKeyword SuggestionType = "keyword"
	SuggestionVideo   SuggestionType = "video"
)

// Suggestion is one search-as-you-type entry; exactly one payload field is set
type Suggestion struct {
	Type    SuggestionType   `json:"type"`
	Query   string           `json:"query,omitempty"`
	Keyword string           `json:"keyword,omitempty"`
	Channel *FollowedChannel `json:"channel,omitempty"`
	Video   *Video           `json:"video,omitempty"`
}

// QuerySuggestion echoes the raw query as typed
func QuerySuggestion(q string) Suggestion {
	return Suggestion{Type: SuggestionQuery, Query: q}
}

// KeywordSuggestion offers a category name
func KeywordSuggestion(keyword string) Suggestion {
	return Suggestion{Type: SuggestionKeyword, Keyword: keyword}
}

// ChannelSuggestion offers a directory channel
func ChannelSuggestion(ch FollowedChannel) Suggestion {
	return Suggestion{Type: SuggestionChannel, Channel: &ch}
}

// VideoSuggestion offers a video by title
func VideoSuggestion(v Video) Suggestion {
	return Suggestion{Type: SuggestionVideo, Video: &v}
}
