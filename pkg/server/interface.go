/*
Package server implements msgpack IPC for the classification and search core.

The host application (the expense tracker UI) talks to the core over
stdin/stdout with binary msgpack messages. Each message carries an ID and
an action; responses echo the ID and include timing info in microseconds.

Classify requests use this structure:

	{"id": "req_001", "action": "classify", "t": "sbux coffee run"}

and come back ranked:

	{"id": "req_001", "cat": "Coffee", "conf": 0.95, "why": "...", "alts": [...], "t": 180}

Search requests carry the record texts inline, one string slice per item,
in the same order as the index's configured fields:

	{"id": "s_001", "action": "search", "q": "stabucks", "items": [["Coffee at Starbucks"], ["Grocery run"]], "typos": 2}

Learn requests feed corrections back into the engine:

	{"id": "l_001", "action": "learn", "t": "xyz widget", "cat": "Electronics"}

Every learning event is also forwarded to the configured sink so the host
can persist it; the core itself stores nothing.
*/
package server

// ClassifyRequest asks for a category decision on one description.
type ClassifyRequest struct {
	ID     string `msgpack:"id"`
	Action string `msgpack:"action"`
	Text   string `msgpack:"t"`
	// Limit caps alternatives; zero means the configured default.
	Limit int `msgpack:"l,omitempty"`
	// Trace requests the processing trace in the response.
	Trace bool `msgpack:"trace,omitempty"`
}

// AltCandidate is one alternative category in a classify response.
type AltCandidate struct {
	Category   string  `msgpack:"cat"`
	Confidence float64 `msgpack:"conf"`
	Algorithm  string  `msgpack:"algo"`
	Note       string  `msgpack:"why,omitempty"`
}

// ClassifyResponse is the ranked decision.
type ClassifyResponse struct {
	ID           string         `msgpack:"id"`
	Category     string         `msgpack:"cat"`
	CategoryKind uint8          `msgpack:"kind"`
	Confidence   float64        `msgpack:"conf"`
	Explanation  string         `msgpack:"why"`
	Alternatives []AltCandidate `msgpack:"alts,omitempty"`
	Trace        []string       `msgpack:"trace,omitempty"`
	TimeTaken    int64          `msgpack:"t"`
}

// SearchRequest ranks host-supplied field texts against a query. Items
// carry one string per configured field, in field order.
type SearchRequest struct {
	ID       string     `msgpack:"id"`
	Action   string     `msgpack:"action"`
	Query    string     `msgpack:"q"`
	Items    [][]string `msgpack:"items"`
	MaxTypos int        `msgpack:"typos,omitempty"`
}

// HitSpan is a [start,end) character range into original field text.
type HitSpan struct {
	Start int `msgpack:"s"`
	End   int `msgpack:"e"`
}

// SearchHit is one ranked search result.
type SearchHit struct {
	Index      int                  `msgpack:"i"`
	Score      float64              `msgpack:"sc"`
	Highlights map[string][]HitSpan `msgpack:"hl,omitempty"`
}

// SearchResponse carries the ranked hits.
type SearchResponse struct {
	ID        string      `msgpack:"id"`
	Hits      []SearchHit `msgpack:"hits"`
	Count     int         `msgpack:"c"`
	TimeTaken int64       `msgpack:"t"`
}

// LearnRequest records a user correction.
type LearnRequest struct {
	ID       string `msgpack:"id"`
	Action   string `msgpack:"action"`
	Text     string `msgpack:"t"`
	Category string `msgpack:"cat"`
}

// LearnResponse acknowledges a correction.
type LearnResponse struct {
	ID     string `msgpack:"id"`
	Status string `msgpack:"status"`
}

// StatusResponse answers health and ready notifications.
type StatusResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"status"`
}

// ErrorResponse holds basic error information for failed requests.
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
