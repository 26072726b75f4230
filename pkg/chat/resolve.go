package chat

import (
	"sort"
	"strings"

	"github.com/wanderplan/wanderplan/pkg/models"
)

// Candidate is one possible referent for an ambiguous node mention.
type Candidate struct {
	NodeID string  `json:"node_id"`
	Title  string  `json:"title"`
	Day    int     `json:"day"`
	Score  float64 `json:"score"`
}

// Scoring weights. Title similarity dominates; day proximity and
// conversational recency break ties between similarly named nodes.
const (
	titleWeight     = 0.6
	proximityWeight = 0.25
	recencyWeight   = 0.15

	// minCandidateScore filters nodes with no meaningful title overlap.
	minCandidateScore = 0.25

	// disambiguationBand: when the top two candidates score within this
	// distance the mention is genuinely ambiguous and the traveller decides.
	disambiguationBand = 0.1

	maxCandidates = 3
)

// resolveNodes ranks the itinerary's nodes against a free-text mention.
// scopeDay biases toward the named day (zero means no bias); recentIDs are
// node identifiers referenced earlier in the conversation, most recent first.
func resolveNodes(it *models.Itinerary, reference string, scopeDay int, recentIDs []string) []Candidate {
	tokens := tokenize(reference)
	if len(tokens) == 0 {
		return nil
	}

	recencyRank := make(map[string]int, len(recentIDs))
	for i, id := range recentIDs {
		if _, seen := recencyRank[id]; !seen {
			recencyRank[id] = i
		}
	}

	var candidates []Candidate
	for di := range it.Days {
		day := &it.Days[di]
		for ni := range day.Nodes {
			node := &day.Nodes[ni]
			title := titleScore(tokens, reference, node)
			if title == 0 {
				continue
			}
			score := titleWeight*title +
				proximityWeight*proximityScore(day.Number, scopeDay, len(it.Days)) +
				recencyWeight*recencyScore(recencyRank, node.ID)
			if score < minCandidateScore {
				continue
			}
			candidates = append(candidates, Candidate{
				NodeID: node.ID,
				Title:  node.Title,
				Day:    day.Number,
				Score:  score,
			})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	if len(candidates) > maxCandidates {
		candidates = candidates[:maxCandidates]
	}
	return candidates
}

// ambiguous reports whether the ranking needs the traveller to choose.
func ambiguous(candidates []Candidate) bool {
	return len(candidates) >= 2 &&
		candidates[0].Score-candidates[1].Score < disambiguationBand
}

// titleScore measures overlap between the mention and the node's title plus
// type word ("the museum" should match an attraction titled "National Museum"
// as well as one whose type is meal for "lunch").
func titleScore(tokens []string, reference string, node *models.Node) float64 {
	haystack := strings.ToLower(node.Title + " " + string(node.Type))
	if name := locationName(node); name != "" {
		haystack += " " + strings.ToLower(name)
	}

	if t := strings.ToLower(strings.TrimSpace(reference)); t != "" && strings.Contains(haystack, t) {
		return 1
	}

	matched := 0
	for _, tok := range tokens {
		if strings.Contains(haystack, tok) {
			matched++
		}
	}
	return float64(matched) / float64(len(tokens))
}

func locationName(node *models.Node) string {
	if node.Location == nil {
		return ""
	}
	return node.Location.Name
}

// proximityScore favours nodes on or near the scoped day. Without a scope
// every day scores alike.
func proximityScore(day, scopeDay, totalDays int) float64 {
	if scopeDay <= 0 || totalDays <= 1 {
		return 0.5
	}
	distance := day - scopeDay
	if distance < 0 {
		distance = -distance
	}
	return 1 - float64(distance)/float64(totalDays-1)
}

// recencyScore rewards nodes the conversation touched recently.
func recencyScore(recencyRank map[string]int, nodeID string) float64 {
	rank, ok := recencyRank[nodeID]
	if !ok {
		return 0
	}
	// Most recent mention scores 1, decaying by position.
	return 1 / float64(rank+1)
}

// stopwords that carry no referent information in node mentions.
var stopwords = map[string]bool{
	"the": true, "a": true, "an": true, "that": true, "this": true,
	"my": true, "our": true, "one": true, "on": true, "in": true,
	"at": true, "of": true, "to": true, "for": true, "day": true,
}

func tokenize(s string) []string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	})
	tokens := fields[:0]
	for _, f := range fields {
		if !stopwords[f] {
			tokens = append(tokens, f)
		}
	}
	return tokens
}
