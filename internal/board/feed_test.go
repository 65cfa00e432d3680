package board

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleMessages() []Message {
	return []Message{
		{ID: 3, Author: "Carol", Text: "Go is fun", Owner: "B"},
		{ID: 2, Author: "Bob", Text: "hello WORLD", Owner: "A"},
		{ID: 1, Author: "alice", Text: "first post", Owner: "A"},
	}
}

func TestBuildFeedWithoutFilterKeepsOrder(t *testing.T) {
	req := require.New(t)
	feed := BuildFeed(sampleMessages(), "", "A")

	req.Len(feed.Rows, 3)
	req.Equal([]int64{3, 2, 1}, []int64{feed.Rows[0].ID, feed.Rows[1].ID, feed.Rows[2].ID})
	req.Equal(3, feed.Total)
	req.Equal(2, feed.Own)
	req.False(feed.Rows[0].Own)
	req.True(feed.Rows[1].Own)
	req.Equal("Bob (You)", feed.Rows[1].AuthorLabel())
	req.Equal("Carol", feed.Rows[0].AuthorLabel())
	req.Empty(feed.Placeholder())
}

func TestBuildFeedFilterMatchesTextOrAuthorCaseInsensitively(t *testing.T) {
	cases := []struct {
		filter string
		want   []int64
	}{
		{"world", []int64{2}},
		{"ALICE", []int64{1}},
		{"o", []int64{3, 2, 1}},
		{"post", []int64{1}},
		{"fun", []int64{3}},
		{" ", []int64{3, 2, 1}},
	}
	for _, tc := range cases {
		feed := BuildFeed(sampleMessages(), tc.filter, "A")
		got := make([]int64, 0, len(feed.Rows))
		for _, r := range feed.Rows {
			got = append(got, r.ID)
		}
		require.Equal(t, tc.want, got, "filter %q", tc.filter)
		require.Equal(t, 3, feed.Total, "counters ignore the filter")
		require.Equal(t, 2, feed.Own, "counters ignore the filter")
	}
}

func TestPlaceholderDistinguishesNoResultsFromEmptyBoard(t *testing.T) {
	req := require.New(t)

	noResults := BuildFeed(sampleMessages(), "zzz", "A")
	req.True(noResults.Empty())
	req.Equal(PlaceholderNoResults, noResults.Placeholder())
	req.Equal(3, noResults.Total)

	empty := BuildFeed(nil, "", "A")
	req.True(empty.Empty())
	req.Equal(PlaceholderNoMessages, empty.Placeholder())

	emptyFiltered := BuildFeed(nil, "x", "A")
	req.Equal(PlaceholderNoResults, emptyFiltered.Placeholder())
}

func TestFeedIndexOf(t *testing.T) {
	feed := BuildFeed(sampleMessages(), "", "A")
	require.Equal(t, 1, feed.IndexOf(2))
	require.Equal(t, -1, feed.IndexOf(99))
}
