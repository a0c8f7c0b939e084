package metrics

import "testing"

func TestSelectBest(t *testing.T) {
	power := func(p NormalizedPost) int64 { return p.Likes + 2*p.Comments }

	posts := []NormalizedPost{
		{Likes: 10, Comments: 2, Text: "a"},  // 14
		{Likes: 20, Comments: 10, Text: "b"}, // 40
		{Likes: 30, Comments: 1, Text: "c"},  // 32
	}

	best, ok := SelectBest(posts, power)
	if !ok {
		t.Fatal("expected a best post")
	}
	if best.Text != "b" {
		t.Errorf("best = %q, want %q", best.Text, "b")
	}
}

func TestSelectBestTieKeepsFirst(t *testing.T) {
	power := func(p NormalizedPost) int64 { return p.Likes }

	posts := []NormalizedPost{
		{Likes: 50, Text: "first"},
		{Likes: 50, Text: "second"},
		{Likes: 50, Text: "third"},
	}

	best, ok := SelectBest(posts, power)
	if !ok {
		t.Fatal("expected a best post")
	}
	if best.Text != "first" {
		t.Errorf("tie must keep the first-encountered post, got %q", best.Text)
	}
}

func TestSelectBestEmpty(t *testing.T) {
	power := func(p NormalizedPost) int64 { return p.Likes }
	if _, ok := SelectBest(nil, power); ok {
		t.Error("empty input must not produce a best post")
	}
}
